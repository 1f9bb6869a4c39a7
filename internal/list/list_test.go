package list

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/taigrr/pls/internal/config"
	"github.com/taigrr/pls/internal/node"
	"github.com/taigrr/pls/internal/types"
)

func setupDir(t *testing.T, files []string, dirs []string) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range dirs {
		if err := os.Mkdir(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	for _, file := range files {
		if err := os.WriteFile(filepath.Join(root, file), []byte(file), 0o644); err != nil {
			t.Fatalf("write %s: %v", file, err)
		}
	}
	return root
}

func names(nodes []*node.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}

func listNames(t *testing.T, opts types.ListOptions, specs []*config.Spec) []string {
	t.Helper()
	nodes, err := New(opts, specs, nil).Nodes(context.Background())
	if err != nil {
		t.Fatalf("Nodes() error: %v", err)
	}
	return names(nodes)
}

func TestNodes(t *testing.T) {
	t.Run("dirs first, names sorted", func(t *testing.T) {
		root := setupDir(t, []string{"zeta.txt", "alpha.txt"}, []string{"src", "docs"})
		got := listNames(t, types.ListOptions{Directory: root, DirsFirst: true}, nil)

		want := []string{"docs", "src", "alpha.txt", "zeta.txt"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no-dirs-first mixes everything", func(t *testing.T) {
		root := setupDir(t, []string{"alpha.txt"}, []string{"src"})
		got := listNames(t, types.ListOptions{Directory: root}, nil)

		want := []string{"alpha.txt", "src"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("descending sort", func(t *testing.T) {
		root := setupDir(t, []string{"a.txt", "b.txt"}, nil)
		got := listNames(t, types.ListOptions{
			Directory: root,
			SortField: "name",
			SortDesc:  true,
		}, nil)

		want := []string{"b.txt", "a.txt"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("size sort ascending", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, "big"), []byte("xxxxxxxx"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(root, "small"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		got := listNames(t, types.ListOptions{Directory: root, SortField: "size"}, nil)
		want := []string{"small", "big"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("dotfiles hidden without --all", func(t *testing.T) {
		root := setupDir(t, []string{".hidden", "shown.txt"}, nil)

		got := listNames(t, types.ListOptions{Directory: root}, nil)
		if diff := cmp.Diff([]string{"shown.txt"}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}

		got = listNames(t, types.ListOptions{Directory: root, ShowAll: true}, nil)
		if diff := cmp.Diff([]string{".hidden", "shown.txt"}, got); diff != "" {
			t.Errorf("mismatch with --all (-want +got):\n%s", diff)
		}
	})

	t.Run("a matching spec reveals a dotfile", func(t *testing.T) {
		root := setupDir(t, []string{".gitignore"}, nil)
		specs, err := config.CompileSpecs([]types.SpecEntry{{Name: ".gitignore", Icon: "git"}})
		if err != nil {
			t.Fatalf("CompileSpecs() error: %v", err)
		}

		got := listNames(t, types.ListOptions{Directory: root}, specs)
		if diff := cmp.Diff([]string{".gitignore"}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("type filters", func(t *testing.T) {
		root := setupDir(t, []string{"file.txt"}, []string{"dir"})

		got := listNames(t, types.ListOptions{Directory: root, NoDirs: true}, nil)
		if diff := cmp.Diff([]string{"file.txt"}, got); diff != "" {
			t.Errorf("--no-dirs mismatch (-want +got):\n%s", diff)
		}

		got = listNames(t, types.ListOptions{Directory: root, NoFiles: true}, nil)
		if diff := cmp.Diff([]string{"dir"}, got); diff != "" {
			t.Errorf("--no-files mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		opts := types.ListOptions{Directory: filepath.Join(t.TempDir(), "gone")}
		if _, err := New(opts, nil, nil).Nodes(context.Background()); err == nil {
			t.Error("Nodes() should fail for a missing directory")
		}
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		root := setupDir(t, []string{"a.txt"}, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := New(types.ListOptions{Directory: root}, nil, nil).Nodes(ctx); err == nil {
			t.Error("Nodes() should return the context error")
		}
	})
}
