package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStripANSI(t *testing.T) {
	styled := "\x1b[1mREADME.md\x1b[0m \x1b[36msrc\x1b[0m/"
	if got := StripANSI(styled); got != "README.md src/" {
		t.Errorf("StripANSI() = %q", got)
	}
}

func TestValidateTarget(t *testing.T) {
	t.Run("missing path is fine", func(t *testing.T) {
		if err := ValidateTarget(filepath.Join(t.TempDir(), "out.html")); err != nil {
			t.Errorf("ValidateTarget() error: %v", err)
		}
	})

	t.Run("existing file is fine", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.html")
		if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if err := ValidateTarget(path); err != nil {
			t.Errorf("ValidateTarget() error: %v", err)
		}
	})

	t.Run("directory is rejected", func(t *testing.T) {
		if err := ValidateTarget(t.TempDir()); !errors.Is(err, ErrExportTarget) {
			t.Errorf("error = %v, want ErrExportTarget", err)
		}
	})
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listing.html")
	if err := Write(path, "\x1b[36msrc\x1b[0m/ <main.go>"); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	html := string(data)

	if strings.Contains(html, "\x1b[") {
		t.Error("export should not contain ANSI escapes")
	}
	if !strings.Contains(html, "src/ &lt;main.go&gt;") {
		t.Errorf("export should HTML-escape the listing, got:\n%s", html)
	}
	if !strings.Contains(html, "#002b36") {
		t.Error("export should carry the solarized background")
	}
	if !strings.Contains(html, "<pre") || !strings.Contains(html, "<code") {
		t.Error("export should wrap the listing in pre/code")
	}
}
