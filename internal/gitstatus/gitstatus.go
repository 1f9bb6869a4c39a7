// Package gitstatus collects the git working-tree status for the
// listed directory so nodes can show their two-letter porcelain code.
package gitstatus

import (
	"context"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultCode is the status shown for clean or non-repo nodes.
const DefaultCode = "  "

// Status maps repo-relative paths to their porcelain status codes.
type Status struct {
	root  string
	codes map[string]string
}

// Detect runs git for the given directory and gathers its status. It
// returns nil when git is not installed, the directory is not inside a
// work tree, or git fails; the listing proceeds without a git column.
func Detect(ctx context.Context, dir string) *Status {
	rootOut, err := exec.CommandContext(ctx, "git", "-C", dir, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return nil
	}
	root := strings.TrimSpace(string(rootOut))
	if root == "" {
		return nil
	}

	statusOut, err := exec.CommandContext(ctx, "git", "-C", root, "status", "--porcelain", "--ignored").Output()
	if err != nil {
		return nil
	}

	return &Status{
		root:  root,
		codes: parsePorcelain(string(statusOut)),
	}
}

// Code returns the porcelain status for an absolute path, or the
// default blank code when git has nothing to report for it. Untracked
// and ignored directories are reported by git with a trailing slash,
// which Code accounts for.
func (s *Status) Code(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return DefaultCode
	}
	rel = filepath.ToSlash(rel)
	if code, ok := s.codes[rel]; ok {
		return code
	}
	if code, ok := s.codes[rel+"/"]; ok {
		return code
	}
	return DefaultCode
}

// parsePorcelain reads `git status --porcelain` output into a path to
// status-code map. Renames map the new path; quoted paths are
// unescaped the way git quotes them.
func parsePorcelain(output string) map[string]string {
	codes := make(map[string]string)
	for line := range strings.Lines(output) {
		line = strings.TrimSuffix(line, "\n")
		if len(line) < 4 {
			continue
		}
		code, rest := line[:2], line[3:]

		if idx := strings.Index(rest, " -> "); idx != -1 {
			rest = rest[idx+4:]
		}
		if strings.HasPrefix(rest, `"`) {
			if unquoted, err := strconv.Unquote(rest); err == nil {
				rest = unquoted
			}
		}
		if rest == "" {
			continue
		}
		codes[rest] = code
	}
	return codes
}
