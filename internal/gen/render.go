package gen

import (
	"bytes"
	"errors"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/thorn-jmh/errorst"

	"viewbinding-generator/internal/synth"
)

var (
	ErrRender           = errorst.NewError("render failed")
	ErrUnknownStatement = errorst.NewError("unknown statement kind")
)

// RendererConfig holds configuration for rendering units to Go source.
type RendererConfig struct {
	// LookupMethod is the owner method resolving a lookup id.
	LookupMethod string
	// Receiver is the receiver name of the generated methods.
	Receiver string
	// Generator names the tool in the "Code generated" header.
	Generator string
}

// DefaultRendererConfig returns the default renderer configuration.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		LookupMethod: "FindViewByID",
		Receiver:     "b",
		Generator:    "viewbinding-generator",
	}
}

// Renderer renders units to gofmt'd Go source.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a Renderer. Empty config fields take their defaults.
func NewRenderer(config RendererConfig) *Renderer {
	def := DefaultRendererConfig()
	if config.LookupMethod == "" {
		config.LookupMethod = def.LookupMethod
	}
	if config.Receiver == "" {
		config.Receiver = def.Receiver
	}
	if config.Generator == "" {
		config.Generator = def.Generator
	}

	return &Renderer{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Namespace is the import path of the package the file belongs to.
	Namespace string
	// Filename is the name of the file (e.g., "main_viewbinding.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Filename returns the file name of the generated unit.
func Filename(u *synth.Unit) string {
	return strings.ToLower(u.Owner) + "_viewbinding.go"
}

// Render renders u as a file of package pkgName.
func (r *Renderer) Render(pkgName string, u *synth.Unit) (*GeneratedFile, error) {
	f := jen.NewFilePathName(u.Namespace, pkgName)
	f.HeaderComment("Code generated by " + r.config.Generator + ". DO NOT EDIT.")

	if err := r.declare(f, u); err != nil {
		return nil, errorst.Wrap(err, "failed to declare %s", u.Key())
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, errorst.Wrap(errors.Join(ErrRender, err), "failed to render %s", u.Key())
	}

	return &GeneratedFile{
		Namespace: u.Namespace,
		Filename:  Filename(u),
		Content:   buf.Bytes(),
	}, nil
}

func (r *Renderer) declare(f *jen.File, u *synth.Unit) error {
	// first the type and its held field
	f.Commentf("%s binds the marked fields of %s.", u.TypeName, u.Owner)
	f.Type().Id(u.TypeName).Struct(
		jen.Id(u.Held.Name).Op("*").Id(u.Held.Type),
	)

	// second the capability assertions
	for _, c := range u.Implements {
		f.Line()
		f.Var().Id("_").Qual(c.Path, c.Name).Op("=").
			Parens(jen.Op("*").Id(u.TypeName)).Call(jen.Nil())
	}

	// third the methods
	for _, m := range []synth.Method{u.Bind, u.Unbind} {
		body, err := r.body(u, m)
		if err != nil {
			return errorst.Wrap(err, "failed to build method %s", m.Name)
		}

		params := make([]jen.Code, 0, len(m.Params))
		for _, p := range m.Params {
			params = append(params, jen.Id(p.Name).Op("*").Id(p.Type))
		}

		f.Line()
		if m.Overrides != nil {
			f.Commentf("%s implements %s.", m.Name, m.Overrides.Name)
		} else {
			f.Commentf("%s resolves the marked fields of %s.", m.Name, bindParam(u))
		}
		f.Func().Params(jen.Id(r.config.Receiver).Op("*").Id(u.TypeName)).
			Id(m.Name).Params(params...).Block(body...)
	}

	return nil
}

func (r *Renderer) body(u *synth.Unit, m synth.Method) ([]jen.Code, error) {
	held := func() *jen.Statement {
		return jen.Id(r.config.Receiver).Dot(u.Held.Name)
	}
	param := bindParam(u)

	stmts := make([]jen.Code, 0, len(m.Body))
	for _, st := range m.Body {
		switch st.Kind {
		case synth.StmtAssignHeld:
			stmts = append(stmts, held().Op("=").Id(param))
		case synth.StmtLookupField:
			stmts = append(stmts, held().Dot(st.Field).Op("=").
				Id(param).Dot(r.config.LookupMethod).Call(jen.Lit(st.LookupID)))
		case synth.StmtClearField:
			stmts = append(stmts, held().Dot(st.Field).Op("=").Nil())
		case synth.StmtClearHeld:
			stmts = append(stmts, held().Op("=").Nil())
		default:
			return nil, errorst.Wrap(ErrUnknownStatement, "%s", st.Kind)
		}
	}

	return stmts, nil
}

func bindParam(u *synth.Unit) string {
	if len(u.Bind.Params) == 0 {
		return synth.BindParamName
	}

	return u.Bind.Params[0].Name
}
