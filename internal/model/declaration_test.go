package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeclaration_Key(t *testing.T) {
	d := Declaration{Namespace: "example.com/app", Owner: "Main", Field: "title", LookupID: 101}

	assert.Equal(t, Key{Namespace: "example.com/app", Owner: "Main"}, d.Key())
	assert.Equal(t, "example.com/app.Main", d.Key().String())
	assert.Equal(t, "example.com/app.Main.title", d.String())
}

func TestKey_StringWithoutNamespace(t *testing.T) {
	assert.Equal(t, "Main", Key{Owner: "Main"}.String())
}

func TestSortDeclarations(t *testing.T) {
	decls := []Declaration{
		{Namespace: "b", Owner: "Main", Field: "title"},
		{Namespace: "a", Owner: "Main", Field: "subtitle"},
		{Namespace: "a", Owner: "Detail", Field: "body"},
		{Namespace: "a", Owner: "Main", Field: "icon"},
	}

	SortDeclarations(decls)

	var got []string
	for _, d := range decls {
		got = append(got, d.String())
	}

	assert.Equal(t, []string{
		"a.Detail.body",
		"a.Main.icon",
		"a.Main.subtitle",
		"b.Main.title",
	}, got)
}
