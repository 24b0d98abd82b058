package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"viewbinding-generator/internal/gen"
)

// errStale is returned by check when a generated file is missing or differs.
var errStale = errors.New("generated files are out of date")

func newCheckCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [packages...]",
		Short: "Report generated files that are missing or out of date",
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

			sink := gen.NewMemorySink(newRenderer(cfg), a)

			report := newDriver(a, sink, cfg).Run(ctx)
			printDiagnostics(cmd.ErrOrStderr(), report.Diagnostics)

			out := cmd.OutOrStdout()
			stale := 0

			for _, key := range sink.Keys() {
				f, _ := sink.Get(key)
				dir := cfg.OutputDir
				if dir == "" {
					dir = a.PackageDir(f.Namespace)
				}
				if dir == "" {
					return fmt.Errorf("%w %s", gen.ErrNoPackageDir, f.Namespace)
				}
				path := filepath.Join(dir, f.Filename)

				status := "ok"
				existing, err := os.ReadFile(path)
				switch {
				case errors.Is(err, os.ErrNotExist):
					status = "missing"
				case err != nil:
					return fmt.Errorf("failed to read %s: %w", path, err)
				case !bytes.Equal(existing, f.Content):
					status = "stale"
				}
				if status != "ok" {
					stale++
				}

				fmt.Fprintf(out, "%-7s %s\n", status, path)
				if opts.show {
					fmt.Fprintln(out, "===", f.Filename, "===")
					fmt.Fprintln(out, string(f.Content))
				}
			}

			if report.Diagnostics.HasErrors() {
				return report.Diagnostics.Error()
			}
			if stale > 0 {
				return fmt.Errorf("%w: %d of %d", errStale, stale, len(sink.Keys()))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.show, "show", false, "print the rendered files")

	return cmd
}
