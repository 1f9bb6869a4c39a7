// Package main implements pls, a prettier ls for the pros.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/pls/internal/config"
	"github.com/taigrr/pls/internal/export"
	"github.com/taigrr/pls/internal/gitstatus"
	"github.com/taigrr/pls/internal/icons"
	"github.com/taigrr/pls/internal/list"
	"github.com/taigrr/pls/internal/render"
)

var flags struct {
	icon        string
	noAlign     bool
	details     []string
	units       string
	timeFmt     string
	sortBy      string
	noDirsFirst bool
	all         bool
	noDirs      bool
	noFiles     bool
	depth       int
	exportPath  string
}

func main() {
	cmd := &cobra.Command{
		Use:   "pls [directory]",
		Short: "A prettier ls for the pros",
		Long: `pls lists the contents of a directory as a styled table. Nodes
carry type suffixes (/ for directories, @ for symlinks with their
resolved targets, | for FIFOs, = for sockets), icons, git status and
the detail columns you ask for, decorated by node specs from the
nearest .pls.yml.`,
		Example: "pls ~/projects",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runList,
	}

	f := cmd.Flags()
	f.StringVarP(&flags.icon, "icon", "i", "nerd", "icon set to show beside nodes (nerd, emoji, none)")
	f.BoolVar(&flags.noAlign, "no-align", false, "turn off alignment for leading dots")
	f.StringSliceVarP(&flags.details, "details", "d", nil, "detail columns to show (+ means all)")
	f.Lookup("details").NoOptDefVal = "type,perms"
	f.StringVarP(&flags.units, "units", "u", "binary", "unit system for file sizes (binary, decimal, none)")
	f.StringVarP(&flags.timeFmt, "time-fmt", "t", "2006-01-02 15:04:05", "layout for timestamp columns")
	f.StringVarP(&flags.sortBy, "sort", "s", "name", "field to sort by, suffix - for descending")
	f.BoolVar(&flags.noDirsFirst, "no-dirs-first", false, "mix directories and files while sorting")
	f.BoolVar(&flags.all, "all", false, "show all nodes, including hidden ones")
	f.BoolVar(&flags.noDirs, "no-dirs", false, "hide directories in the output")
	f.BoolVar(&flags.noFiles, "no-files", false, "hide files in the output")
	f.IntVar(&flags.depth, "depth", 4, "max ancestor levels searched for a .pls.yml")
	f.StringVarP(&flags.exportPath, "export", "e", "", "file to write an HTML rendering of the output")

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func runList(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(args)
	if err != nil {
		return err
	}

	cfg, specs, err := config.Load(opts.Directory, opts.ConfigDepth)
	if err != nil {
		return err
	}

	iconIndex, err := icons.Load()
	if err != nil {
		return err
	}
	iconIndex.Extend(cfg)

	git := gitstatus.Detect(cmd.Context(), opts.Directory)

	svc := list.New(opts, specs, git)
	nodes, err := svc.Nodes(cmd.Context())
	if err != nil {
		return err
	}

	rendered := render.New(opts, iconIndex, svc.GitActive()).Render(nodes)
	fmt.Fprintln(cmd.OutOrStdout(), rendered)

	if opts.ExportPath != "" {
		if err := export.Write(opts.ExportPath, rendered); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Output written to file.")
	}
	return nil
}
