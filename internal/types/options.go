package types

import (
	"fmt"
	"strings"
)

// IconSet selects which icon index to draw node icons from.
type IconSet string

const (
	IconsNerd  IconSet = "nerd"
	IconsEmoji IconSet = "emoji"
	IconsNone  IconSet = "none"
)

// ParseIconSet validates an --icon flag value.
func ParseIconSet(value string) (IconSet, error) {
	switch IconSet(strings.ToLower(value)) {
	case IconsNerd:
		return IconsNerd, nil
	case IconsEmoji:
		return IconsEmoji, nil
	case IconsNone:
		return IconsNone, nil
	}
	return "", fmt.Errorf("invalid icon set %q (choose from nerd, emoji, none)", value)
}

// UnitSystem selects how file sizes are scaled.
type UnitSystem string

const (
	UnitsBinary  UnitSystem = "binary"
	UnitsDecimal UnitSystem = "decimal"
	UnitsNone    UnitSystem = "none"
)

// ParseUnitSystem validates a --units flag value.
func ParseUnitSystem(value string) (UnitSystem, error) {
	switch UnitSystem(strings.ToLower(value)) {
	case UnitsBinary:
		return UnitsBinary, nil
	case UnitsDecimal:
		return UnitsDecimal, nil
	case UnitsNone:
		return UnitsNone, nil
	}
	return "", fmt.Errorf("invalid unit system %q (choose from binary, decimal, none)", value)
}

// DetailColumns is the canonical order of the optional detail columns.
var DetailColumns = []string{
	"inode", "links", "type", "perms", "user", "group",
	"size", "ctime", "mtime", "atime", "git",
}

// SortFields lists the fields nodes can be sorted by. Columns whose
// values have no meaningful order (perms, user, group, git) are absent.
var SortFields = []string{
	"name", "ext", "inode", "links", "type", "size", "ctime", "mtime", "atime",
}

// ListOptions carries every knob that shapes a single listing.
type ListOptions struct {
	Directory   string
	Icons       IconSet
	NoAlign     bool
	Details     map[string]bool // nil when -d was not given
	Units       UnitSystem
	TimeFormat  string
	SortField   string
	SortDesc    bool
	DirsFirst   bool
	ShowAll     bool
	NoDirs      bool
	NoFiles     bool
	ConfigDepth int
	ExportPath  string
}

// DetailsActive reports whether any detail columns were requested.
func (o ListOptions) DetailsActive() bool {
	return len(o.Details) > 0
}

// Detail reports whether a specific detail column was requested.
func (o ListOptions) Detail(column string) bool {
	return o.Details[column]
}
