package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"goa.design/clue/log"

	"viewbinding-generator/internal/analyze"
	"viewbinding-generator/internal/config"
	"viewbinding-generator/internal/diagnostic"
	"viewbinding-generator/internal/gen"
	"viewbinding-generator/internal/pipeline"
	"viewbinding-generator/internal/synth"
)

var version = "dev"

type options struct {
	configPath   string
	output       string
	marker       string
	lookupMethod string
	stable       bool
	debug        bool
	debugOutline bool
	dryRun       bool
	show         bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "viewbinding-generator",
		Short:        "Generate view binding companions for marked struct fields",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultFile, "config file (optional)")
	flags.StringVarP(&opts.output, "output", "o", "", "output directory (default: next to each package)")
	flags.StringVar(&opts.marker, "marker", "", "marker tag key and directive name")
	flags.StringVar(&opts.lookupMethod, "lookup-method", "", "owner method resolving a lookup id")
	flags.BoolVar(&opts.stable, "stable", false, "sort declarations before grouping")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logs")

	root.AddCommand(
		newGenCmd(opts),
		newCheckCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)

	return root
}

// settings loads the config file and applies flag and argument overrides.
func (o *options) settings(args []string) (*config.Config, error) {
	cfg, err := config.LoadOptional(o.configPath)
	if err != nil {
		return nil, err
	}

	if o.output != "" {
		cfg.OutputDir = o.output
	}
	if o.marker != "" {
		cfg.Marker = o.marker
	}
	if o.lookupMethod != "" {
		cfg.LookupMethod = o.lookupMethod
	}
	if o.stable {
		cfg.StableOrder = true
	}
	if len(args) > 0 {
		cfg.Packages = args
	}

	return cfg, nil
}

func (o *options) context(w io.Writer) context.Context {
	format := log.FormatJSON
	if log.IsTerminal() {
		format = log.FormatTerminal
	}

	ctx := log.Context(context.Background(), log.WithFormat(format), log.WithOutput(w))
	log.FlushAndDisableBuffering(ctx)
	if o.debug {
		ctx = log.Context(ctx, log.WithDebug())
		log.Debugf(ctx, "debug logs enabled")
	}

	return ctx
}

// prepare loads the packages named by cfg.
func prepare(ctx context.Context, cfg *config.Config) (*analyze.Analyzer, error) {
	log.Print(ctx,
		log.KV{K: "config", V: cfg.Version},
		log.KV{K: "marker", V: cfg.Marker},
		log.KV{K: "packages", V: cfg.Packages},
	)

	a := analyze.NewAnalyzer("")
	if err := a.Load(ctx, cfg.Packages...); err != nil {
		return nil, err
	}

	for _, pkg := range a.Packages() {
		log.Debug(ctx,
			log.KV{K: "msg", V: "loaded package"},
			log.KV{K: "path", V: pkg.Path},
			log.KV{K: "dir", V: pkg.Dir},
		)
	}

	return a, nil
}

func newRenderer(cfg *config.Config) *gen.Renderer {
	return gen.NewRenderer(gen.RendererConfig{LookupMethod: cfg.LookupMethod})
}

func newDriver(a *analyze.Analyzer, sink gen.Sink, cfg *config.Config) *pipeline.Driver {
	return pipeline.New(a, sink,
		pipeline.WithMarker(cfg.Marker),
		pipeline.WithStableOrder(cfg.StableOrder),
		pipeline.WithSynthesizer(synth.New(synth.Config{Capability: cfg.Unbinder.Capability()})),
	)
}

func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the generator version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "viewbinding-generator %s\n", version)
		},
	}
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config [packages...]",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.settings(args)
			if err != nil {
				return err
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
