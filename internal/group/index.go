package group

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"viewbinding-generator/internal/model"
)

type typeMap = orderedmap.OrderedMap[string, []model.Declaration]

// Index is the two-level ordered grouping of declarations.
type Index struct {
	namespaces *orderedmap.OrderedMap[string, *typeMap]
	size       int
}

// Cell is one (namespace, owner) group with its fields in insertion order.
type Cell struct {
	Namespace string
	Owner     string
	Fields    []model.Declaration
}

// Key returns the cell key.
func (c Cell) Key() model.Key {
	return model.Key{Namespace: c.Namespace, Owner: c.Owner}
}

// Build groups decls in a single pass. An empty input yields an empty index.
func Build(decls []model.Declaration) *Index {
	idx := &Index{
		namespaces: orderedmap.New[string, *typeMap](),
	}

	for _, d := range decls {
		idx.add(d)
	}

	return idx
}

func (idx *Index) add(d model.Declaration) {
	types, ok := idx.namespaces.Get(d.Namespace)
	if !ok {
		types = orderedmap.New[string, []model.Declaration]()
		idx.namespaces.Set(d.Namespace, types)
	}

	// Set keeps the original position of an existing key.
	fields, _ := types.Get(d.Owner)
	types.Set(d.Owner, append(fields, d))

	idx.size++
}

// Len returns the total number of declarations in the index.
func (idx *Index) Len() int {
	return idx.size
}

// Empty reports whether the index holds no declarations.
func (idx *Index) Empty() bool {
	return idx.size == 0
}

// Namespaces returns the namespaces in first-seen order.
func (idx *Index) Namespaces() []string {
	out := make([]string, 0, idx.namespaces.Len())
	for p := idx.namespaces.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}

// Owners returns the owner types of namespace in first-seen order, or nil if
// the namespace is unknown.
func (idx *Index) Owners(namespace string) []string {
	types, ok := idx.namespaces.Get(namespace)
	if !ok {
		return nil
	}

	out := make([]string, 0, types.Len())
	for p := types.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}

// Fields returns the declarations grouped under (namespace, owner).
func (idx *Index) Fields(namespace, owner string) []model.Declaration {
	types, ok := idx.namespaces.Get(namespace)
	if !ok {
		return nil
	}

	fields, _ := types.Get(owner)

	return fields
}

// Cells flattens the index into (namespace, owner, fields) cells, namespace
// order first, owner order second.
func (idx *Index) Cells() []Cell {
	cells := make([]Cell, 0, idx.CellCount())

	for _, ns := range idx.Namespaces() {
		for _, owner := range idx.Owners(ns) {
			fields := idx.Fields(ns, owner)
			if len(fields) == 0 {
				continue
			}

			cells = append(cells, Cell{
				Namespace: ns,
				Owner:     owner,
				Fields:    fields,
			})
		}
	}

	return cells
}

// CellCount returns the number of (namespace, owner) cells.
func (idx *Index) CellCount() int {
	n := 0
	for ns := idx.namespaces.Oldest(); ns != nil; ns = ns.Next() {
		n += ns.Value.Len()
	}

	return n
}
