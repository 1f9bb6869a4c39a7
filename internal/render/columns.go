package render

import "github.com/taigrr/pls/internal/types"

// spacerColumn separates column groups with an empty cell.
const spacerColumn = "spacer"

type columnSpec struct {
	title string
	right bool
}

var columnSpecs = map[string]columnSpec{
	"inode": {title: "inode", right: true},
	"links": {title: "link#", right: true},
	"type":  {title: "type"},
	"perms": {title: "perms"},
	"user":  {title: "user"},
	"group": {title: "group"},
	"size":  {title: "size", right: true},
	"ctime": {title: "created at"},
	"mtime": {title: "modified at"},
	"atime": {title: "accessed at"},
	"git":   {title: "git"},
	"icon":  {},
	"name":  {title: "name"},
	spacerColumn: {},
}

// detailGroups clusters related detail columns; a spacer separates
// groups in the rendered table and groups with no chosen column
// collapse entirely.
var detailGroups = [][]string{
	{"inode", "links"},
	{"type", "perms"},
	{"user", "group"},
	{"size"},
	{"ctime", "mtime", "atime"},
	{"git"},
}

// Columns resolves the flags into the flat column order of the table,
// spacers included. The icon and name group always comes last.
func Columns(opts types.ListOptions, gitActive bool) []string {
	var groups [][]string
	if opts.DetailsActive() {
		for _, group := range detailGroups {
			var chosen []string
			for _, col := range group {
				if col == "git" && !gitActive {
					continue
				}
				if opts.Detail(col) {
					chosen = append(chosen, col)
				}
			}
			groups = append(groups, chosen)
		}
	}

	nameGroup := []string{"name"}
	if opts.Icons != types.IconsNone {
		nameGroup = []string{"icon", "name"}
	}
	groups = append(groups, nameGroup)

	var flat []string
	for i, group := range groups {
		if len(group) == 0 {
			continue
		}
		flat = append(flat, group...)
		if i != len(groups)-1 {
			flat = append(flat, spacerColumn)
		}
	}
	return flat
}
