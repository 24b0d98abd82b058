package model

import (
	"cmp"
	"go/token"
	"slices"
)

// Declaration is one marked field occurrence.
type Declaration struct {
	Namespace string // package import path of the owner, e.g. "example.com/app"
	Owner     string // owning struct type name, e.g. "Main"
	Field     string // field name, e.g. "title"
	LookupID  int    // id passed to the runtime lookup

	// Pos is where the field was declared. Diagnostics only; zero for
	// declarations that did not come from source.
	Pos token.Position
}

// Key identifies the (namespace, owner) cell a Declaration belongs to.
type Key struct {
	Namespace string
	Owner     string
}

// String returns "namespace.Owner".
func (k Key) String() string {
	if k.Namespace == "" {
		return k.Owner
	}

	return k.Namespace + "." + k.Owner
}

// Key returns the cell key of d.
func (d Declaration) Key() Key {
	return Key{Namespace: d.Namespace, Owner: d.Owner}
}

// String returns "namespace.Owner.Field".
func (d Declaration) String() string {
	return d.Key().String() + "." + d.Field
}

// SortDeclarations orders decls by namespace, owner and field name in place.
// Grouping a sorted slice gives output that does not depend on the order the
// host enumerated symbols in.
func SortDeclarations(decls []Declaration) {
	slices.SortStableFunc(decls, func(a, b Declaration) int {
		return cmp.Or(
			cmp.Compare(a.Namespace, b.Namespace),
			cmp.Compare(a.Owner, b.Owner),
			cmp.Compare(a.Field, b.Field),
		)
	})
}
