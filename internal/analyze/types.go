package analyze

import (
	"go/token"
	"go/types"
)

//go:generate go tool stringer -type=SymbolKind -trimprefix=Symbol

// SymbolKind is the kind of a marked declaration.
type SymbolKind int

const (
	SymbolOther  SymbolKind = iota // funcs, vars, consts
	SymbolField                    // struct fields
	SymbolMethod                   // methods
	SymbolType                     // type specs
)

// TypeHandle identifies the type enclosing a symbol. *types.TypeName
// satisfies it.
type TypeHandle interface {
	Name() string
	Pkg() *types.Package
}

// Symbol is one marked declaration.
type Symbol interface {
	Kind() SymbolKind
	SimpleName() string
	// EnclosingType returns the owning type of a field or method, nil for
	// package-level declarations.
	EnclosingType() TypeHandle
}

// Binding is the metadata carried by a marker.
type Binding struct {
	LookupID int
}

// markerSource records where a marker was found.
type markerSource int

const (
	sourceTag markerSource = iota
	sourceDirective
)

// String returns a human-readable marker source.
func (s markerSource) String() string {
	if s == sourceDirective {
		return "directive"
	}

	return "tag"
}

// symbol is the Analyzer's Symbol implementation.
type symbol struct {
	kind   SymbolKind
	name   string
	owner  *types.TypeName
	raw    string // marker value, e.g. "101" or "id=101"
	source markerSource
	pos    token.Position
}

func (s *symbol) Kind() SymbolKind { return s.kind }

func (s *symbol) SimpleName() string { return s.name }

func (s *symbol) EnclosingType() TypeHandle {
	if s.owner == nil {
		return nil
	}

	return s.owner
}

// Position returns where the marked declaration appears in source.
func (s *symbol) Position() token.Position { return s.pos }

// String returns "Owner.name" or "name".
func (s *symbol) String() string {
	if s.owner == nil {
		return s.name
	}

	return s.owner.Name() + "." + s.name
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path string // Import path
	Name string // Package name
	Dir  string // Directory holding the package sources
}
