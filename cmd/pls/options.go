package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/taigrr/pls/internal/export"
	"github.com/taigrr/pls/internal/types"
)

// buildOptions resolves the parsed flags into ListOptions, validating
// every choice before any filesystem work starts.
func buildOptions(args []string) (types.ListOptions, error) {
	var opts types.ListOptions

	dir, err := resolveDirectory(args)
	if err != nil {
		return opts, err
	}
	opts.Directory = dir

	opts.Icons, err = types.ParseIconSet(flags.icon)
	if err != nil {
		return opts, err
	}
	opts.Units, err = types.ParseUnitSystem(flags.units)
	if err != nil {
		return opts, err
	}
	opts.Details, err = resolveDetails(flags.details)
	if err != nil {
		return opts, err
	}
	opts.SortField, opts.SortDesc, err = resolveSort(flags.sortBy)
	if err != nil {
		return opts, err
	}

	opts.NoAlign = flags.noAlign
	opts.TimeFormat = flags.timeFmt
	opts.DirsFirst = !flags.noDirsFirst
	opts.ShowAll = flags.all
	opts.NoDirs = flags.noDirs
	opts.NoFiles = flags.noFiles
	opts.ConfigDepth = flags.depth

	if flags.exportPath != "" {
		path, err := filepath.Abs(flags.exportPath)
		if err != nil {
			return opts, err
		}
		if err := export.ValidateTarget(path); err != nil {
			return opts, err
		}
		opts.ExportPath = path
	}

	return opts, nil
}

// resolveDirectory turns the optional positional argument into an
// absolute path to an existing directory, defaulting to the cwd.
func resolveDirectory(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("directory must be a path to a directory: %s", dir)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("directory must be a path to a directory: %s", dir)
	}
	return abs, nil
}

// resolveDetails expands and validates the -d selections. "+" (or
// "all") selects every detail column.
func resolveDetails(selected []string) (map[string]bool, error) {
	if len(selected) == 0 {
		return nil, nil
	}

	details := make(map[string]bool)
	for _, item := range selected {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		if item == "+" || item == "all" {
			for _, col := range types.DetailColumns {
				details[col] = true
			}
			continue
		}
		if !slices.Contains(types.DetailColumns, item) {
			return nil, fmt.Errorf("invalid detail column %q (choose from %s, or + for all)",
				item, strings.Join(types.DetailColumns, ", "))
		}
		details[item] = true
	}
	return details, nil
}

// resolveSort splits the optional descending suffix off the sort flag
// and validates the field.
func resolveSort(value string) (string, bool, error) {
	field := strings.ToLower(strings.TrimSpace(value))
	desc := strings.HasSuffix(field, "-")
	field = strings.TrimSuffix(field, "-")

	if !slices.Contains(types.SortFields, field) {
		return "", false, fmt.Errorf("invalid sort field %q (choose from %s, each optionally suffixed with -)",
			value, strings.Join(types.SortFields, ", "))
	}
	return field, desc, nil
}
