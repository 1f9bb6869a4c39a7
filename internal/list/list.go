// Package list reads a directory and prepares its nodes for
// rendering: stat, spec matching, git state, filtering and sorting.
package list

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/taigrr/pls/internal/config"
	"github.com/taigrr/pls/internal/gitstatus"
	"github.com/taigrr/pls/internal/node"
	"github.com/taigrr/pls/internal/types"
)

// Service produces the node list for one directory.
type Service struct {
	opts  types.ListOptions
	specs []*config.Spec
	git   *gitstatus.Status
}

// New creates a listing service. git may be nil when the directory is
// not inside a repository.
func New(opts types.ListOptions, specs []*config.Spec, git *gitstatus.Status) *Service {
	return &Service{
		opts:  opts,
		specs: specs,
		git:   git,
	}
}

// GitActive reports whether git state is available for this listing.
func (s *Service) GitActive() bool {
	return s.git != nil
}

// Nodes reads the directory and returns its visible nodes in render
// order. Entries that vanish between the readdir and the lstat are
// dropped rather than failing the listing.
func (s *Service) Nodes(ctx context.Context) ([]*node.Node, error) {
	entries, err := os.ReadDir(s.opts.Directory)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("directory not found: %s", s.opts.Directory)
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("permission denied: %s", s.opts.Directory)
		}
		return nil, fmt.Errorf("failed to list directory: %s - %w", s.opts.Directory, err)
	}

	nodes := make([]*node.Node, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n := node.New(entry.Name(), filepath.Join(s.opts.Directory, entry.Name()))
		if !n.Exists {
			continue
		}
		n.MatchSpecs(s.specs)
		if s.git != nil {
			n.GitStatus = s.git.Code(n.Path)
		}
		if !n.IsVisible(s.opts) {
			continue
		}
		nodes = append(nodes, n)
	}

	s.sortNodes(nodes)
	return nodes, nil
}

// sortNodes orders nodes by the configured field, directories first
// unless --no-dirs-first. The sort is stable so equal keys keep their
// readdir order.
func (s *Service) sortNodes(nodes []*node.Node) {
	field := s.opts.SortField
	if field == "" {
		field = "name"
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if s.opts.DirsFirst {
			aDir := a.Type == types.TypeDir
			bDir := b.Type == types.TypeDir
			if aDir != bDir {
				return aDir
			}
		}
		c := node.Compare(a, b, field)
		if s.opts.SortDesc {
			return c > 0
		}
		return c < 0
	})
}
