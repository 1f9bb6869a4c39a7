// Package export writes the rendered listing to an HTML file.
package export

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"os"
	"regexp"
)

// Solarized-dark base colors, matching the terminal theme the exported
// snippet is styled after.
const (
	background = "#002b36"
	foreground = "#839496"
)

var (
	// ErrExportTarget is returned when the export path exists but is
	// not a regular file.
	ErrExportTarget = errors.New("export target must be a file path")

	ansiSequences = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

//go:embed export.html.gotmpl
var exportTemplate string

var page = template.Must(template.New("export").Parse(exportTemplate))

type pageData struct {
	Background string
	Foreground string
	Code       string
}

// ValidateTarget rejects export paths that exist and are not regular
// files, before any listing work happens.
func ValidateTarget(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return nil // nothing there yet, fine
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrExportTarget, path)
	}
	return nil
}

// Write strips terminal styling from the rendered listing and writes
// it as an HTML snippet to path.
func Write(path, rendered string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer out.Close()

	data := pageData{
		Background: background,
		Foreground: foreground,
		Code:       StripANSI(rendered),
	}
	if err := page.Execute(out, data); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}

// StripANSI removes terminal escape sequences from rendered output.
func StripANSI(s string) string {
	return ansiSequences.ReplaceAllString(s, "")
}
