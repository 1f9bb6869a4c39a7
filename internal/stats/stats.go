// Package stats formats stat-derived detail cells: permissions, owner
// names, sizes and timestamps.
package stats

import (
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"strconv"
	"time"

	"github.com/taigrr/pls/internal/types"
)

var (
	binaryUnits  = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}
	decimalUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}
)

// Size renders a byte count in the chosen unit system. Values below
// one unit step stay integral; scaled values keep one decimal.
func Size(bytes int64, units types.UnitSystem) string {
	var names []string
	var step float64
	switch units {
	case types.UnitsBinary:
		names, step = binaryUnits, 1024
	case types.UnitsDecimal:
		names, step = decimalUnits, 1000
	default:
		return strconv.FormatInt(bytes, 10)
	}

	value := float64(bytes)
	unit := 0
	for value >= step && unit < len(names)-1 {
		value /= step
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d %s", bytes, names[0])
	}
	return fmt.Sprintf("%.1f %s", value, names[unit])
}

// Perms renders the nine-character symbolic permission string.
func Perms(mode fs.FileMode) string {
	const symbols = "rwxrwxrwx"
	perms := make([]byte, 9)
	for i := range 9 {
		if mode&(1<<uint(8-i)) != 0 {
			perms[i] = symbols[i]
		} else {
			perms[i] = '-'
		}
	}
	out := string(perms)
	if mode&fs.ModeSetuid != 0 {
		out = replaceAt(out, 2, "sS")
	}
	if mode&fs.ModeSetgid != 0 {
		out = replaceAt(out, 5, "sS")
	}
	if mode&fs.ModeSticky != 0 {
		out = replaceAt(out, 8, "tT")
	}
	return out
}

// replaceAt swaps the execute slot at idx for the special-bit letter,
// lowercase when the execute bit is also set.
func replaceAt(perms string, idx int, letters string) string {
	letter := letters[1:]
	if perms[idx] == 'x' {
		letter = letters[:1]
	}
	return perms[:idx] + letter + perms[idx+1:]
}

// User resolves a uid to a user name, falling back to the number, and
// reports whether it is the invoking user. Cells for other users
// render dimmed.
func User(uid uint32) (string, bool) {
	name := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(name); err == nil && u.Username != "" {
		name = u.Username
	}
	return name, int(uid) == os.Getuid()
}

// Group resolves a gid to a group name, falling back to the number,
// and reports whether it is the invoking user's primary group.
func Group(gid uint32) (string, bool) {
	name := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(name); err == nil && g.Name != "" {
		name = g.Name
	}
	return name, int(gid) == os.Getgid()
}

// Time renders a timestamp with the configured layout. Zero times (for
// broken nodes) render empty.
func Time(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}
