// Package node models a single entry of a directory listing: its stat
// result, its type, its symlink destination chain and the node specs
// that decorate it.
package node

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/taigrr/pls/internal/config"
	"github.com/taigrr/pls/internal/types"
)

// Node is any file, folder, symlink or special file in the listed
// directory. A nil stat (Exists == false) marks a broken node; those
// render with the warning suffix instead of failing the listing.
type Node struct {
	Name string
	Path string

	Info   fs.FileInfo
	Exists bool
	Type   types.NodeType

	// Dest is the next step of a symlink chain, nil for non-links.
	// IsLoop marks cyclic chains; LoopTarget keeps the raw link text
	// that could not be resolved.
	Dest       *Node
	IsLoop     bool
	LoopTarget string

	// GitStatus is the two-letter porcelain code, "  " outside repos.
	GitStatus string

	specs []*config.Spec
}

// New builds a node for the named entry, following symlink chains one
// link at a time.
func New(name, path string) *Node {
	n := &Node{
		Name:      name,
		Path:      path,
		GitStatus: "  ",
	}

	info, err := os.Lstat(path)
	if err != nil {
		return n
	}
	n.Info = info
	n.Exists = true
	n.Type = types.TypeOf(info.Mode())

	if n.Type == types.TypeSymlink {
		n.populateDest()
	}
	return n
}

// populateDest resolves one step of the symlink chain. Relative targets
// resolve against the link's parent directory. A link whose chain ends
// up cyclic is unresolvable, so every link on (or into) the cycle is
// itself a loop: it keeps the raw link text and no destination node.
func (n *Node) populateDest() {
	target, err := os.Readlink(n.Path)
	if err != nil {
		n.Exists = false
		return
	}

	if chainLoops(n.Path) {
		n.IsLoop = true
		n.LoopTarget = target
		return
	}

	n.Dest = New(target, resolveTarget(n.Path, target))
}

// resolveTarget resolves a readlink result against the link's parent.
func resolveTarget(linkPath, target string) string {
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(linkPath), target)
	}
	return filepath.Clean(target)
}

// chainLoops walks the readlink chain from a symlink and reports
// whether it revisits a resolved path.
func chainLoops(path string) bool {
	seen := map[string]bool{filepath.Clean(path): true}
	current := path
	for {
		info, err := os.Lstat(current)
		if err != nil || info.Mode()&fs.ModeSymlink == 0 {
			return false
		}
		target, err := os.Readlink(current)
		if err != nil {
			return false
		}
		resolved := resolveTarget(current, target)
		if seen[resolved] {
			return true
		}
		seen[resolved] = true
		current = resolved
	}
}

// PureName returns the case-normalised name with leading dots
// stripped, used for name sorting and hidden-file checks.
func (n *Node) PureName() string {
	return strings.ToLower(strings.TrimLeft(n.Name, "."))
}

// Ext returns the portion of the name after the last dot, or "".
func (n *Node) Ext() string {
	idx := strings.LastIndex(n.Name, ".")
	if idx == -1 {
		return ""
	}
	return n.Name[idx+1:]
}

// MatchSpecs stores every spec whose selector matches this node.
func (n *Node) MatchSpecs(specs []*config.Spec) {
	n.specs = nil
	for _, spec := range specs {
		if spec.Match(n.Name) {
			n.specs = append(n.specs, spec)
		}
	}
}

// HasSpecs reports whether any spec matched this node.
func (n *Node) HasSpecs() bool {
	return len(n.specs) > 0
}

// SpecIcon returns the icon name from the first matched spec that
// provides one.
func (n *Node) SpecIcon() string {
	for _, spec := range n.specs {
		if spec.Icon != "" {
			return spec.Icon
		}
	}
	return ""
}

// SpecColor returns the color from the first matched spec that
// provides one.
func (n *Node) SpecColor() string {
	for _, spec := range n.specs {
		if spec.Color != "" {
			return spec.Color
		}
	}
	return ""
}

// SpecImportance returns the importance from the first matched spec
// that sets one. Zero means normal.
func (n *Node) SpecImportance() int {
	for _, spec := range n.specs {
		if spec.Importance != 0 {
			return spec.Importance
		}
	}
	return 0
}

// IsVisible reports whether the node should be rendered given the
// active filters. Dotfiles without a matching spec stay hidden, as do
// nodes a spec marks importance -2, unless --all was passed.
func (n *Node) IsVisible(opts types.ListOptions) bool {
	if opts.NoDirs && n.Type == types.TypeDir {
		return false
	}
	if opts.NoFiles && n.Type == types.TypeFile {
		return false
	}
	if opts.ShowAll {
		return true
	}
	if !n.HasSpecs() && strings.HasPrefix(n.Name, ".") {
		return false
	}
	if n.SpecImportance() == -2 {
		return false
	}
	return true
}

// Size returns the node size in bytes, zero for broken nodes.
func (n *Node) Size() int64 {
	if n.Info == nil {
		return 0
	}
	return n.Info.Size()
}

// ModTime returns the modification time, zero for broken nodes.
func (n *Node) ModTime() time.Time {
	if n.Info == nil {
		return time.Time{}
	}
	return n.Info.ModTime()
}
