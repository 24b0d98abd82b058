package group

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viewbinding-generator/internal/model"
)

func decl(ns, owner, field string, id int) model.Declaration {
	return model.Declaration{Namespace: ns, Owner: owner, Field: field, LookupID: id}
}

func fieldNames(decls []model.Declaration) []string {
	out := make([]string, 0, len(decls))
	for _, d := range decls {
		out = append(out, d.Field)
	}

	return out
}

func TestBuild_Empty(t *testing.T) {
	idx := Build(nil)

	assert.True(t, idx.Empty())
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Namespaces())
	assert.Empty(t, idx.Cells())
	assert.Equal(t, 0, idx.CellCount())
}

func TestBuild_SingleOwner(t *testing.T) {
	idx := Build([]model.Declaration{
		decl("app", "Main", "title", 101),
		decl("app", "Main", "subtitle", 102),
	})

	require.Equal(t, 2, idx.Len())
	assert.Equal(t, []string{"app"}, idx.Namespaces())
	assert.Equal(t, []string{"Main"}, idx.Owners("app"))
	assert.Equal(t, []string{"title", "subtitle"}, fieldNames(idx.Fields("app", "Main")))

	cells := idx.Cells()
	require.Len(t, cells, 1, spew.Sdump(cells))
	assert.Equal(t, model.Key{Namespace: "app", Owner: "Main"}, cells[0].Key())
}

func TestBuild_FirstSeenOrder(t *testing.T) {
	idx := Build([]model.Declaration{
		decl("b", "Zeta", "z1", 1),
		decl("a", "Main", "m1", 2),
		decl("b", "Alpha", "a1", 3),
		decl("b", "Zeta", "z2", 4),
		decl("a", "Detail", "d1", 5),
		decl("a", "Main", "m2", 6),
	})

	assert.Equal(t, []string{"b", "a"}, idx.Namespaces())
	assert.Equal(t, []string{"Zeta", "Alpha"}, idx.Owners("b"))
	assert.Equal(t, []string{"Main", "Detail"}, idx.Owners("a"))
	assert.Equal(t, []string{"z1", "z2"}, fieldNames(idx.Fields("b", "Zeta")))
	assert.Equal(t, []string{"m1", "m2"}, fieldNames(idx.Fields("a", "Main")))

	var keys []string
	for _, c := range idx.Cells() {
		keys = append(keys, c.Key().String())
	}

	assert.Equal(t, []string{"b.Zeta", "b.Alpha", "a.Main", "a.Detail"}, keys)
	assert.Equal(t, 4, idx.CellCount())
}

func TestBuild_SameOwnerNameInDifferentNamespaces(t *testing.T) {
	idx := Build([]model.Declaration{
		decl("app", "Main", "title", 1),
		decl("lib", "Main", "title", 2),
	})

	cells := idx.Cells()
	require.Len(t, cells, 2)
	assert.Equal(t, 1, cells[0].Fields[0].LookupID)
	assert.Equal(t, 2, cells[1].Fields[0].LookupID)
}

func TestIndex_UnknownLookups(t *testing.T) {
	idx := Build([]model.Declaration{decl("app", "Main", "title", 1)})

	assert.Nil(t, idx.Owners("missing"))
	assert.Nil(t, idx.Fields("missing", "Main"))
	assert.Nil(t, idx.Fields("app", "Missing"))
}

func TestBuild_Deterministic(t *testing.T) {
	input := []model.Declaration{
		decl("app", "Main", "title", 101),
		decl("app", "Detail", "body", 201),
		decl("app", "Main", "subtitle", 102),
	}

	assert.Equal(t, Build(input).Cells(), Build(input).Cells())
}

func TestBuild_SortedInputIsOrderIndependent(t *testing.T) {
	a := []model.Declaration{
		decl("app", "Main", "title", 101),
		decl("app", "Detail", "body", 201),
		decl("app", "Main", "subtitle", 102),
	}
	b := []model.Declaration{a[2], a[1], a[0]}

	model.SortDeclarations(a)
	model.SortDeclarations(b)

	assert.Equal(t, Build(a).Cells(), Build(b).Cells())
}
