// Package types defines the shared data structures used across pls.
package types

import "io/fs"

// NodeType classifies a filesystem node by what lstat reports.
type NodeType int

const (
	TypeSymlink NodeType = iota
	TypeDir
	TypeFile
	TypeFIFO
	TypeSocket
	TypeCharDevice
	TypeBlockDevice
	TypeUnknown
)

// TypeOf maps an lstat file mode to a NodeType. Symlinks are checked
// first so that links to directories are still reported as links.
func TypeOf(mode fs.FileMode) NodeType {
	switch {
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	case mode.IsDir():
		return TypeDir
	case mode&fs.ModeNamedPipe != 0:
		return TypeFIFO
	case mode&fs.ModeSocket != 0:
		return TypeSocket
	case mode&fs.ModeCharDevice != 0:
		return TypeCharDevice
	case mode&fs.ModeDevice != 0:
		return TypeBlockDevice
	case mode.IsRegular():
		return TypeFile
	default:
		return TypeUnknown
	}
}

// Char returns the single character shown in the type detail column.
func (t NodeType) Char() string {
	switch t {
	case TypeSymlink:
		return "l"
	case TypeDir:
		return "d"
	case TypeFile:
		return "f"
	case TypeFIFO:
		return "p"
	case TypeSocket:
		return "s"
	case TypeCharDevice:
		return "c"
	case TypeBlockDevice:
		return "b"
	default:
		return "?"
	}
}

// Suffix returns the symbol appended after the node name for types that
// carry one. Symlinks and broken nodes are handled separately because
// their suffixes depend on the resolved destination.
func (t NodeType) Suffix() string {
	switch t {
	case TypeDir:
		return "/"
	case TypeSocket:
		return "="
	case TypeFIFO:
		return "|"
	default:
		return ""
	}
}
