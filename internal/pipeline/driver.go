package pipeline

import (
	"context"
	"fmt"
	"go/token"

	"goa.design/clue/log"

	"viewbinding-generator/binder"
	"viewbinding-generator/internal/analyze"
	"viewbinding-generator/internal/diagnostic"
	"viewbinding-generator/internal/gen"
	"viewbinding-generator/internal/group"
	"viewbinding-generator/internal/model"
	"viewbinding-generator/internal/synth"
)

// Host supplies the marked symbols of a run and their metadata.
// *analyze.Analyzer implements it.
type Host interface {
	Enumerate(marker string) []analyze.Symbol
	EnclosingNamespace(t analyze.TypeHandle) string
	Metadata(s analyze.Symbol) (analyze.Binding, error)
}

// Linter is implemented by hosts that can report tag keys resembling the
// marker. Run turns each one into a warning.
type Linter interface {
	NearMisses(marker string) []analyze.NearMiss
}

// Option configures a Driver.
type Option func(*Driver)

// WithMarker sets the marker the host enumerates. Defaults to binder.Marker.
func WithMarker(marker string) Option {
	return func(d *Driver) { d.marker = marker }
}

// WithStableOrder sorts declarations before grouping so the output does not
// depend on the host's enumeration order.
func WithStableOrder(stable bool) Option {
	return func(d *Driver) { d.stable = stable }
}

// WithSynthesizer replaces the default synthesizer.
func WithSynthesizer(s *synth.Synthesizer) Option {
	return func(d *Driver) { d.synth = s }
}

// Driver wires a Host and a Sink together.
type Driver struct {
	host   Host
	sink   gen.Sink
	marker string
	stable bool
	synth  *synth.Synthesizer
}

// New creates a Driver.
func New(host Host, sink gen.Sink, opts ...Option) *Driver {
	d := &Driver{
		host:   host,
		sink:   sink,
		marker: binder.Marker,
		synth:  synth.New(synth.DefaultConfig()),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Report is the outcome of a run.
type Report struct {
	// Emitted is the number of units the sink accepted.
	Emitted int
	// Units lists the emitted units as "namespace.Type_ViewBinding".
	Units []string
	// Diagnostics collects skipped symbols and failures.
	Diagnostics diagnostic.Diagnostics
}

// DidWork reports whether at least one unit was emitted.
func (r *Report) DidWork() bool {
	return r.Emitted > 0
}

// Run enumerates the host's marked symbols and processes them.
func (d *Driver) Run(ctx context.Context) *Report {
	report := d.Process(ctx, d.host.Enumerate(d.marker))

	if l, ok := d.host.(Linter); ok {
		for _, m := range l.NearMisses(d.marker) {
			log.Warn(ctx,
				log.KV{K: "msg", V: "possible misspelled marker"},
				log.KV{K: "key", V: m.Key},
				log.KV{K: "field", V: m.Owner + "." + m.Field},
				log.KV{K: "pos", V: m.Pos.String()},
			)
			report.Diagnostics.AddWarning(diagnostic.CodeNearMissMarker,
				fmt.Sprintf("tag key %q looks like a misspelled %q; field not bound", m.Key, d.marker),
				"", m.Owner+"."+m.Field, m.Pos)
		}
	}

	return report
}

// Process runs the pipeline over symbols.
func (d *Driver) Process(ctx context.Context, symbols []analyze.Symbol) *Report {
	report := &Report{}

	log.Debug(ctx, log.KV{K: "msg", V: "discovered symbols"}, log.KV{K: "count", V: len(symbols)})

	decls := d.declarations(ctx, symbols, &report.Diagnostics)
	if d.stable {
		model.SortDeclarations(decls)
	}

	idx := group.Build(decls)
	if idx.Empty() {
		log.Debug(ctx, log.KV{K: "msg", V: "no bindable fields"})

		return report
	}

	log.Debug(ctx,
		log.KV{K: "msg", V: "grouped declarations"},
		log.KV{K: "declarations", V: idx.Len()},
		log.KV{K: "namespaces", V: len(idx.Namespaces())},
		log.KV{K: "types", V: idx.CellCount()},
	)

	for _, ns := range idx.Namespaces() {
		log.Debug(ctx, log.KV{K: "namespace", V: ns}, log.KV{K: "types", V: idx.Owners(ns)})
	}

	for _, cell := range idx.Cells() {
		unit := d.synth.Synthesize(cell.Namespace, cell.Owner, cell.Fields)

		if err := d.sink.Write(cell.Namespace, unit); err != nil {
			log.Errorf(ctx, err, "failed to emit %s", unit.Key())
			report.Diagnostics.AddError(diagnostic.CodeEmitFailed,
				fmt.Sprintf("failed to emit: %v", err), unit.Key(), "", token.Position{})

			continue
		}

		log.Info(ctx,
			log.KV{K: "msg", V: "emitted"},
			log.KV{K: "unit", V: unit.Key()},
			log.KV{K: "fields", V: unit.Fields()},
		)

		report.Emitted++
		report.Units = append(report.Units, unit.Key())
	}

	return report
}

// declarations converts field symbols into declarations. Other kinds are
// skipped; symbols with unreadable metadata are reported and skipped.
func (d *Driver) declarations(ctx context.Context, symbols []analyze.Symbol, diags *diagnostic.Diagnostics) []model.Declaration {
	decls := make([]model.Declaration, 0, len(symbols))

	for _, sym := range symbols {
		log.Debugf(ctx, "symbol %s (%s)", sym.SimpleName(), sym.Kind())

		switch sym.Kind() {
		case analyze.SymbolField:
		case analyze.SymbolMethod, analyze.SymbolType, analyze.SymbolOther:
			diags.AddInfo(diagnostic.CodeSkippedSymbol,
				fmt.Sprintf("marker on %s ignored: only fields are bound", kindName(sym.Kind())),
				"", sym.SimpleName(), position(sym))

			continue
		default:
			panic(fmt.Sprintf("unhandled symbol kind %s", sym.Kind()))
		}

		owner := sym.EnclosingType()

		binding, err := d.host.Metadata(sym)
		if err != nil {
			log.Errorf(ctx, err, "skipping %s.%s", owner.Name(), sym.SimpleName())
			diags.AddError(diagnostic.CodeInvalidMetadata, err.Error(),
				"", owner.Name()+"."+sym.SimpleName(), position(sym))

			continue
		}

		decls = append(decls, model.Declaration{
			Namespace: d.host.EnclosingNamespace(owner),
			Owner:     owner.Name(),
			Field:     sym.SimpleName(),
			LookupID:  binding.LookupID,
			Pos:       position(sym),
		})
	}

	return decls
}

func kindName(k analyze.SymbolKind) string {
	switch k {
	case analyze.SymbolMethod:
		return "method"
	case analyze.SymbolType:
		return "type"
	default:
		return "declaration"
	}
}

func position(sym analyze.Symbol) token.Position {
	if p, ok := sym.(interface{ Position() token.Position }); ok {
		return p.Position()
	}

	return token.Position{}
}
