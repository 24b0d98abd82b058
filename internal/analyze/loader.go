package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"viewbinding-generator/internal/common"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// ErrForeignSymbol is returned by Metadata for symbols the Analyzer did not
// produce.
var ErrForeignSymbol = errors.New("symbol was not enumerated by this analyzer")

// Analyzer loads Go packages and enumerates marked declarations.
type Analyzer struct {
	dir      string
	pkgs     []*packages.Package // load order
	packages map[string]*PackageInfo
}

// NewAnalyzer creates a new Analyzer. Packages are resolved relative to dir;
// an empty dir means the current directory.
func NewAnalyzer(dir string) *Analyzer {
	return &Analyzer{
		dir:      dir,
		packages: make(map[string]*PackageInfo),
	}
}

// Load loads the specified packages. Patterns are standard Go package
// patterns (e.g., "./...", "viewbinding-generator/examples/basic"). List and
// parse errors fail the load; type errors do not.
func (a *Analyzer) Load(ctx context.Context, patterns ...string) error {
	cfg := &packages.Config{
		Context: ctx,
		Dir:     a.dir,
		Mode:    LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}

	// Type errors are skipped; TypesInfo is still filled in. They come from
	// stale generated files that reference removed fields.
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.TypeError {
				continue
			}
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		if _, seen := a.packages[pkg.PkgPath]; seen {
			continue
		}

		info := &PackageInfo{
			Path: pkg.PkgPath,
			Name: pkg.Name,
		}
		if len(pkg.GoFiles) > 0 {
			info.Dir = filepath.Dir(pkg.GoFiles[0])
		}

		a.packages[pkg.PkgPath] = info
		a.pkgs = append(a.pkgs, pkg)
	}

	return nil
}

// Packages returns the loaded packages in load order.
func (a *Analyzer) Packages() []*PackageInfo {
	out := make([]*PackageInfo, 0, len(a.pkgs))
	for _, pkg := range a.pkgs {
		out = append(out, a.packages[pkg.PkgPath])
	}

	return out
}

// Enumerate returns every declaration of the loaded packages that carries
// marker, as a struct tag key or as a doc comment directive. Symbols come out
// in package load order, then file order, then source order.
func (a *Analyzer) Enumerate(marker string) []Symbol {
	var out []Symbol

	for _, pkg := range a.pkgs {
		for _, file := range pkg.Syntax {
			out = a.enumerateFile(out, pkg, file, marker)
		}
	}

	return out
}

func (a *Analyzer) enumerateFile(out []Symbol, pkg *packages.Package, file *ast.File, marker string) []Symbol {
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				out = a.enumerateSpec(out, pkg, d, spec, marker)
			}

		case *ast.FuncDecl:
			raw, ok := directiveValue(d.Doc, marker)
			if !ok {
				continue
			}

			sym := &symbol{
				kind:   SymbolOther,
				name:   d.Name.Name,
				raw:    raw,
				source: sourceDirective,
				pos:    pkg.Fset.Position(d.Pos()),
			}
			if d.Recv != nil && len(d.Recv.List) > 0 {
				sym.kind = SymbolMethod
				sym.owner = typeNameOf(pkg, receiverIdent(d.Recv.List[0].Type))
			}

			out = append(out, sym)
		}
	}

	return out
}

func (a *Analyzer) enumerateSpec(out []Symbol, pkg *packages.Package, d *ast.GenDecl, spec ast.Spec, marker string) []Symbol {
	switch s := spec.(type) {
	case *ast.TypeSpec:
		if raw, ok := directiveValue(specDoc(d, s.Doc), marker); ok {
			out = append(out, &symbol{
				kind:   SymbolType,
				name:   s.Name.Name,
				raw:    raw,
				source: sourceDirective,
				pos:    pkg.Fset.Position(s.Pos()),
			})
		}

		if st, ok := s.Type.(*ast.StructType); ok {
			out = a.enumerateFields(out, pkg, typeNameOf(pkg, s.Name), st, marker)
		}

	case *ast.ValueSpec:
		raw, ok := directiveValue(specDoc(d, s.Doc), marker)
		if !ok {
			break
		}

		for _, name := range s.Names {
			out = append(out, &symbol{
				kind:   SymbolOther,
				name:   name.Name,
				raw:    raw,
				source: sourceDirective,
				pos:    pkg.Fset.Position(name.Pos()),
			})
		}
	}

	return out
}

func (a *Analyzer) enumerateFields(out []Symbol, pkg *packages.Package, owner *types.TypeName, st *ast.StructType, marker string) []Symbol {
	if st.Fields == nil {
		return out
	}

	for _, field := range st.Fields.List {
		raw, source, ok := fieldMarker(field, marker)
		if !ok {
			continue
		}

		names := make([]string, 0, len(field.Names))
		positions := make([]token.Pos, 0, len(field.Names))
		for _, n := range field.Names {
			names = append(names, n.Name)
			positions = append(positions, n.Pos())
		}
		if len(field.Names) == 0 {
			names = append(names, embeddedName(field.Type))
			positions = append(positions, field.Type.Pos())
		}

		for i, name := range names {
			out = append(out, &symbol{
				kind:   SymbolField,
				name:   name,
				owner:  owner,
				raw:    raw,
				source: source,
				pos:    pkg.Fset.Position(positions[i]),
			})
		}
	}

	return out
}

// fieldMarker returns the marker value of a struct field. The struct tag
// wins over a doc directive.
func fieldMarker(field *ast.Field, marker string) (string, markerSource, bool) {
	if raw, ok := tagValue(field.Tag, marker); ok {
		return raw, sourceTag, true
	}

	if raw, ok := directiveValue(field.Doc, marker); ok {
		return raw, sourceDirective, true
	}

	return "", sourceTag, false
}

// specDoc returns the doc of a spec, falling back to the doc of an
// unparenthesized declaration.
func specDoc(d *ast.GenDecl, doc *ast.CommentGroup) *ast.CommentGroup {
	if doc == nil && !d.Lparen.IsValid() {
		return d.Doc
	}

	return doc
}

// typeNameOf resolves ident to the *types.TypeName it defines or uses.
func typeNameOf(pkg *packages.Package, ident *ast.Ident) *types.TypeName {
	if ident == nil || pkg.TypesInfo == nil {
		return nil
	}

	obj := pkg.TypesInfo.Defs[ident]
	if obj == nil {
		obj = pkg.TypesInfo.Uses[ident]
	}

	tn, _ := obj.(*types.TypeName)

	return tn
}

// Metadata parses the marker value of a symbol returned by Enumerate.
func (a *Analyzer) Metadata(s Symbol) (Binding, error) {
	sym, ok := s.(*symbol)
	if !ok {
		return Binding{}, fmt.Errorf("%w: %v", ErrForeignSymbol, s.SimpleName())
	}

	id, err := ParseLookupID(sym.raw)
	if err != nil {
		return Binding{}, fmt.Errorf("%s %s at %s: %w", sym.source, sym, sym.pos, err)
	}

	return Binding{LookupID: id}, nil
}

// EnclosingNamespace returns the import path of the package declaring t.
func (a *Analyzer) EnclosingNamespace(t TypeHandle) string {
	if t == nil || t.Pkg() == nil {
		return ""
	}

	return t.Pkg().Path()
}

// PackageName returns the package name for an import path. Unknown paths
// fall back to the last path element.
func (a *Analyzer) PackageName(namespace string) string {
	if info, ok := a.packages[namespace]; ok && info.Name != "" {
		return info.Name
	}

	return common.PkgAlias(namespace)
}

// PackageDir returns the source directory of a loaded package, or "".
func (a *Analyzer) PackageDir(namespace string) string {
	if info, ok := a.packages[namespace]; ok {
		return info.Dir
	}

	return ""
}
