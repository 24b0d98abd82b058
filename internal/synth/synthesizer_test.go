package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viewbinding-generator/internal/model"
)

func fields(ns, owner string, names ...string) []model.Declaration {
	out := make([]model.Declaration, 0, len(names))
	for i, n := range names {
		out = append(out, model.Declaration{Namespace: ns, Owner: owner, Field: n, LookupID: 100 + i + 1})
	}

	return out
}

func TestSynthesize_MainExample(t *testing.T) {
	u := Synthesize("app", "Main", fields("app", "Main", "title", "subtitle"))

	assert.Equal(t, "app", u.Namespace)
	assert.Equal(t, "Main", u.Owner)
	assert.Equal(t, "Main_ViewBinding", u.TypeName)
	assert.Equal(t, "app.Main_ViewBinding", u.Key())
	assert.Equal(t, Field{Name: "target", Type: "Main"}, u.Held)

	assert.Equal(t, "Bind", u.Bind.Name)
	assert.Equal(t, []Param{{Name: "owner", Type: "Main"}}, u.Bind.Params)
	assert.Nil(t, u.Bind.Overrides)
	assert.Equal(t, []Statement{
		{Kind: StmtAssignHeld},
		{Kind: StmtLookupField, Field: "title", LookupID: 101},
		{Kind: StmtLookupField, Field: "subtitle", LookupID: 102},
	}, u.Bind.Body)

	assert.Equal(t, "Unbind", u.Unbind.Name)
	assert.Empty(t, u.Unbind.Params)
	require.NotNil(t, u.Unbind.Overrides)
	assert.Equal(t, DefaultCapability(), *u.Unbind.Overrides)
	assert.Equal(t, []Statement{
		{Kind: StmtClearField, Field: "title"},
		{Kind: StmtClearField, Field: "subtitle"},
		{Kind: StmtClearHeld},
	}, u.Unbind.Body)

	assert.Equal(t, []Capability{DefaultCapability()}, u.Implements)
	assert.Equal(t, []string{"title", "subtitle"}, u.Fields())
}

func TestSynthesize_SingleField(t *testing.T) {
	u := Synthesize("app", "Detail", fields("app", "Detail", "body"))

	assert.Len(t, u.Bind.Body, 2)
	assert.Len(t, u.Unbind.Body, 2)
}

func TestSynthesize_NoFields(t *testing.T) {
	// Grouping never produces an empty cell, but synthesis still yields the
	// held-level statements.
	u := Synthesize("app", "Empty", nil)

	assert.Equal(t, []Statement{{Kind: StmtAssignHeld}}, u.Bind.Body)
	assert.Equal(t, []Statement{{Kind: StmtClearHeld}}, u.Unbind.Body)
}

func TestSynthesize_Deterministic(t *testing.T) {
	in := fields("app", "Main", "title", "subtitle", "icon")

	a := Synthesize("app", "Main", in)
	b := Synthesize("app", "Main", in)

	assert.Equal(t, a, b)
	assert.Equal(t, a.Outline(), b.Outline())
}

func TestSynthesizer_CustomCapability(t *testing.T) {
	capability := Capability{Path: "example.com/ui", Name: "Releaser", Method: "Release"}
	s := New(Config{Capability: capability})

	u := s.Synthesize("app", "Main", fields("app", "Main", "title"))

	assert.Equal(t, "Release", u.Unbind.Name)
	assert.Equal(t, []Capability{capability}, u.Implements)
	assert.Equal(t, "example.com/ui.Releaser", u.Implements[0].String())
}

func TestNew_ZeroConfigUsesDefaultCapability(t *testing.T) {
	u := New(Config{}).Synthesize("app", "Main", nil)

	assert.Equal(t, []Capability{DefaultCapability()}, u.Implements)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "Main_ViewBinding", TypeName("Main"))
}

func TestStatementKind_String(t *testing.T) {
	assert.Equal(t, "assign-held", StmtAssignHeld.String())
	assert.Equal(t, "lookup-field", StmtLookupField.String())
	assert.Equal(t, "clear-field", StmtClearField.String())
	assert.Equal(t, "clear-held", StmtClearHeld.String())
	assert.Equal(t, "StatementKind(9)", StatementKind(9).String())
}
