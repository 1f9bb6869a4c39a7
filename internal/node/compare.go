package node

import (
	"cmp"
	"strings"
)

// Compare orders two nodes by the given sort field, ascending. Name and
// extension sorts use the dot-stripped lowercase name so dotfiles
// interleave with their siblings; extension sorting falls back to the
// name as a tiebreak.
func Compare(a, b *Node, field string) int {
	switch field {
	case "ext":
		if c := strings.Compare(strings.ToLower(a.Ext()), strings.ToLower(b.Ext())); c != 0 {
			return c
		}
		return strings.Compare(a.PureName(), b.PureName())
	case "inode":
		return cmp.Compare(a.Inode(), b.Inode())
	case "links":
		return cmp.Compare(a.NLinks(), b.NLinks())
	case "type":
		return strings.Compare(a.Type.Char(), b.Type.Char())
	case "size":
		return cmp.Compare(a.Size(), b.Size())
	case "ctime":
		return a.ChangeTime().Compare(b.ChangeTime())
	case "mtime":
		return a.ModTime().Compare(b.ModTime())
	case "atime":
		return a.AccessTime().Compare(b.AccessTime())
	default: // name
		return strings.Compare(a.PureName(), b.PureName())
	}
}
