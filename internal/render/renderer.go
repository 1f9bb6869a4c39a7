package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/taigrr/pls/internal/gitstatus"
	"github.com/taigrr/pls/internal/icons"
	"github.com/taigrr/pls/internal/node"
	"github.com/taigrr/pls/internal/stats"
	"github.com/taigrr/pls/internal/types"
)

// Renderer assembles the listing table for a set of nodes.
type Renderer struct {
	opts      types.ListOptions
	icons     *icons.Index
	styles    Styles
	gitActive bool
}

// New creates a Renderer for one listing.
func New(opts types.ListOptions, iconIndex *icons.Index, gitActive bool) *Renderer {
	return &Renderer{
		opts:      opts,
		icons:     iconIndex,
		styles:    DefaultStyles(),
		gitActive: gitActive,
	}
}

// Render returns the final table. Headers appear only when detail
// columns are active, mirroring the bare name-and-icon default view.
func (r *Renderer) Render(nodes []*node.Node) string {
	cols := Columns(r.opts, r.gitActive)

	t := table.New().
		Border(lipgloss.Border{}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().PaddingRight(1)
			if col < len(cols) && columnSpecs[cols[col]].right {
				style = style.Align(lipgloss.Right)
			}
			if row == table.HeaderRow {
				style = style.Inherit(r.styles.Header)
			}
			return style
		})

	if r.opts.DetailsActive() {
		headers := make([]string, len(cols))
		for i, col := range cols {
			headers[i] = columnSpecs[col].title
		}
		t.Headers(headers...)
	}

	for _, n := range nodes {
		cells := r.row(n)
		rowCells := make([]string, len(cols))
		for i, col := range cols {
			rowCells[i] = cells[col]
		}
		t.Row(rowCells...)
	}

	return t.String()
}

// row builds the cell map for one node. Only visible, existing nodes
// reach this point, so the stat result is always populated.
func (r *Renderer) row(n *node.Node) map[string]string {
	cells := map[string]string{
		"name": r.Name(n),
		"icon": r.Icon(n),
	}
	if !r.opts.DetailsActive() {
		return cells
	}

	cells["inode"] = strconv.FormatUint(n.Inode(), 10)
	cells["links"] = strconv.FormatUint(n.NLinks(), 10)
	cells["type"] = r.styles.Dim.Render(n.Type.Char())
	cells["perms"] = r.perms(n)
	cells["user"], cells["group"] = r.owner(n)
	cells["size"] = r.size(n)
	cells["ctime"] = stats.Time(n.ChangeTime(), r.opts.TimeFormat)
	cells["mtime"] = stats.Time(n.ModTime(), r.opts.TimeFormat)
	cells["atime"] = stats.Time(n.AccessTime(), r.opts.TimeFormat)
	if r.gitActive {
		cells["git"] = r.gitCell(n)
	}
	return cells
}

// nodeStyle computes the color and weight for a node's name and icon:
// broken nodes red, spec colors next, directories cyan; importance
// maps to underline, bold or dim, and git-ignored nodes dim too.
func (r *Renderer) nodeStyle(n *node.Node) lipgloss.Style {
	style := lipgloss.NewStyle()

	switch {
	case !n.Exists:
		style = style.Inherit(r.styles.Broken)
	case n.SpecColor() != "":
		style = style.Foreground(Color(n.SpecColor()))
	case n.Type == types.TypeDir:
		style = style.Inherit(r.styles.Dir)
	}

	switch n.SpecImportance() {
	case 2:
		style = style.Inherit(r.styles.Underline)
	case 1:
		style = style.Inherit(r.styles.Bold)
	case -1:
		style = style.Inherit(r.styles.Dim)
	default:
		if n.GitStatus == "!!" {
			style = style.Inherit(r.styles.Dim)
		}
	}

	if n.Name == ".pls.yml" {
		style = style.Inherit(r.styles.Italic)
	}
	return style
}

// Name renders the node name with its type suffix. Names of dotfiles
// get their leading dot dimmed; everything else gets a leading space
// so names align on the first real character, unless --no-align.
func (r *Renderer) Name(n *node.Node) string {
	style := r.nodeStyle(n)

	var b strings.Builder
	switch {
	case strings.HasPrefix(n.Name, ".") && !r.opts.NoAlign:
		b.WriteString(r.styles.Dim.Render("."))
		b.WriteString(style.Render(n.Name[1:]))
	case !r.opts.NoAlign:
		b.WriteString(" ")
		b.WriteString(style.Render(n.Name))
	default:
		b.WriteString(style.Render(n.Name))
	}
	b.WriteString(r.Suffix(n))
	return b.String()
}

// Suffix renders the symbol after the node name. Broken nodes warn,
// symlinks chain into their destination's rendered name, loops show
// the loop marker with the unresolvable target, and directories,
// sockets and FIFOs carry their type characters.
func (r *Renderer) Suffix(n *node.Node) string {
	if !n.Exists {
		return r.styles.Broken.Render("⚠")
	}

	if n.Type == types.TypeSymlink {
		if n.IsLoop {
			return r.styles.Dim.Render("@ ↺") + " " + r.styles.Broken.Render(n.LoopTarget)
		}
		return r.styles.Dim.Render("@ →") + " " + r.destName(n.Dest)
	}

	if ch := n.Type.Suffix(); ch != "" {
		return r.styles.Dim.Render(ch)
	}
	return ""
}

// destName renders a symlink destination: the raw link text with the
// destination's own suffix, so chains and dangling targets read
// naturally.
func (r *Renderer) destName(dest *node.Node) string {
	if dest == nil {
		return ""
	}
	return r.nodeStyle(dest).Render(dest.Name) + r.Suffix(dest)
}

// Icon picks the node's icon: the first spec that names one, or the
// folder icon for directories.
func (r *Renderer) Icon(n *node.Node) string {
	if r.opts.Icons == types.IconsNone {
		return ""
	}

	name := n.SpecIcon()
	if name == "" && n.Type == types.TypeDir {
		name = icons.FolderIcon
	}
	if name == "" {
		return ""
	}

	glyph, ok := r.icons.Get(r.opts.Icons, name)
	if !ok {
		return ""
	}
	return r.nodeStyle(n).Render(glyph)
}

// perms colors each permission letter by its kind.
func (r *Renderer) perms(n *node.Node) string {
	var b strings.Builder
	for _, ch := range stats.Perms(n.Info.Mode()) {
		s := string(ch)
		switch ch {
		case 'r':
			s = r.styles.PermRead.Render(s)
		case 'w':
			s = r.styles.PermWrite.Render(s)
		case 'x', 's', 't':
			s = r.styles.PermExec.Render(s)
		default:
			s = r.styles.Dim.Render(s)
		}
		b.WriteString(s)
	}
	return b.String()
}

// owner renders the user and group cells, dimming names that are not
// the invoking user's.
func (r *Renderer) owner(n *node.Node) (string, string) {
	uid, gid, ok := n.Owner()
	if !ok {
		return "", ""
	}

	userName, isCurrent := stats.User(uid)
	if !isCurrent {
		userName = r.styles.Dim.Render(userName)
	}
	groupName, isCurrent := stats.Group(gid)
	if !isCurrent {
		groupName = r.styles.Dim.Render(groupName)
	}
	return userName, groupName
}

// size renders the size cell; directory sizes are meaningless and show
// a dimmed dash instead.
func (r *Renderer) size(n *node.Node) string {
	if n.Type == types.TypeDir {
		return r.styles.Dim.Render("-")
	}
	return stats.Size(n.Size(), r.opts.Units)
}

// gitCell styles the two porcelain letters: index state green,
// worktree state red, ignored entries dimmed whole.
func (r *Renderer) gitCell(n *node.Node) string {
	code := n.GitStatus
	if code == "" || code == gitstatus.DefaultCode {
		return gitstatus.DefaultCode
	}
	if code == "!!" {
		return r.styles.Dim.Render(code)
	}

	var b strings.Builder
	if code[0] != ' ' {
		b.WriteString(r.styles.GitIndex.Render(string(code[0])))
	} else {
		b.WriteString(" ")
	}
	if len(code) > 1 && code[1] != ' ' {
		b.WriteString(r.styles.GitWorktree.Render(string(code[1])))
	} else {
		b.WriteString(" ")
	}
	return b.String()
}
