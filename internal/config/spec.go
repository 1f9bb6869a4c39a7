package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/taigrr/pls/internal/types"
)

// Spec is a compiled node spec. It decorates every node whose name it
// matches with an icon, a color and an importance level.
type Spec struct {
	name    string
	ext     string
	pattern *regexp.Regexp

	Icon       string
	Color      string
	Importance int
}

// Match reports whether the spec applies to a node with the given name.
func (s *Spec) Match(name string) bool {
	switch {
	case s.name != "":
		return name == s.name
	case s.ext != "":
		// Leading-dot names still carry an extension: ".gitignore"
		// has extension "gitignore", matching what nodes report.
		idx := strings.LastIndex(name, ".")
		return idx != -1 && name[idx+1:] != "" && strings.EqualFold(name[idx+1:], s.ext)
	case s.pattern != nil:
		return s.pattern.MatchString(name)
	}
	return false
}

// CompileSpecs turns node_specs entries into matchers, preserving file
// order. The first matching spec wins per attribute, so earlier entries
// shadow later ones.
func CompileSpecs(entries []types.SpecEntry) ([]*Spec, error) {
	specs := make([]*Spec, 0, len(entries))
	for i, entry := range entries {
		spec, err := compileSpec(entry)
		if err != nil {
			return nil, fmt.Errorf("node spec %d: %w", i, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func compileSpec(entry types.SpecEntry) (*Spec, error) {
	selectors := 0
	for _, sel := range []string{entry.Name, entry.Extension, entry.Pattern} {
		if sel != "" {
			selectors++
		}
	}
	if selectors != 1 {
		return nil, ErrSpecSelector
	}
	if entry.Importance < -2 || entry.Importance > 2 {
		return nil, ErrSpecImportance
	}

	spec := &Spec{
		name:       entry.Name,
		ext:        strings.TrimPrefix(entry.Extension, "."),
		Icon:       entry.Icon,
		Color:      entry.Color,
		Importance: entry.Importance,
	}
	if entry.Pattern != "" {
		// Patterns match the name case-insensitively so built-in specs
		// cover readme/README and friends with one entry.
		pattern, err := regexp.Compile("(?i)" + entry.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSpecPattern, err)
		}
		spec.pattern = pattern
	}
	return spec, nil
}
