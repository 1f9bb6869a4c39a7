// Package render turns a list of nodes into the styled table pls
// prints, and exposes the style registry the cells draw from.
package render

import "github.com/charmbracelet/lipgloss"

// Styles is the registry of every visual style the listing uses.
// Keeping them in one place keeps the cell builders declarative.
type Styles struct {
	Dim       lipgloss.Style
	Bold      lipgloss.Style
	Underline lipgloss.Style
	Italic    lipgloss.Style

	Dir    lipgloss.Style
	Broken lipgloss.Style
	Header lipgloss.Style

	PermRead  lipgloss.Style
	PermWrite lipgloss.Style
	PermExec  lipgloss.Style

	GitIndex    lipgloss.Style
	GitWorktree lipgloss.Style
}

// DefaultStyles builds the registry with the standard ANSI palette so
// the output follows the user's terminal theme.
func DefaultStyles() Styles {
	return Styles{
		Dim:       lipgloss.NewStyle().Faint(true),
		Bold:      lipgloss.NewStyle().Bold(true),
		Underline: lipgloss.NewStyle().Underline(true),
		Italic:    lipgloss.NewStyle().Italic(true),

		Dir:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Broken: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Header: lipgloss.NewStyle().Underline(true),

		PermRead:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		PermWrite: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		PermExec:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),

		GitIndex:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		GitWorktree: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// namedColors maps the color names accepted in node specs to their
// ANSI slots. Anything else is passed through so hex values work too.
var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

// Color resolves a spec color name to a lipgloss color.
func Color(name string) lipgloss.Color {
	if slot, ok := namedColors[name]; ok {
		return lipgloss.Color(slot)
	}
	return lipgloss.Color(name)
}
