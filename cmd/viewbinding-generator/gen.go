package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"goa.design/clue/log"

	"viewbinding-generator/internal/gen"
)

func newGenCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [packages...]",
		Short: "Write <owner>_viewbinding.go files for marked fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.settings(args)
			if err != nil {
				return err
			}

			ctx := opts.context(cmd.ErrOrStderr())

			a, err := prepare(ctx, cfg)
			if err != nil {
				return err
			}

			sink := gen.NewFileSink(newRenderer(cfg), a, gen.FileSinkConfig{
				OutputDir:    cfg.OutputDir,
				DryRun:       opts.dryRun,
				DebugOutline: opts.debugOutline,
			})

			report := newDriver(a, sink, cfg).Run(ctx)
			printDiagnostics(cmd.ErrOrStderr(), report.Diagnostics)

			for _, f := range sink.Files() {
				dir := cfg.OutputDir
				if dir == "" {
					dir = a.PackageDir(f.Namespace)
				}
				fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(dir, f.Filename))
			}

			if !report.DidWork() {
				log.Info(ctx, log.KV{K: "msg", V: "no marked fields found"})
			}

			if report.Diagnostics.HasErrors() {
				return report.Diagnostics.Error()
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.debugOutline, "debug-outline", false,
		"write a .outline.txt sidecar for units that fail to render")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "render and list files without writing them")

	return cmd
}
