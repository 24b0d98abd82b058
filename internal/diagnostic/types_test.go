package diagnostic

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddBySeverity(t *testing.T) {
	var d Diagnostics

	d.AddInfo(CodeSkippedSymbol, "not a field", "", "Helper", token.Position{})
	d.AddWarning("VB900", "odd", "", "", token.Position{})
	d.AddError(CodeEmitFailed, "disk full", "app.Main_ViewBinding", "", token.Position{})

	assert.Len(t, d.Infos, 1)
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Errors, 1)
	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticWarning, all[1].Severity)
	assert.Equal(t, DiagnosticInfo, all[2].Severity)
}

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	assert.NoError(t, d.Error())

	d.AddError(CodeEmitFailed, "disk full", "app.Main_ViewBinding", "", token.Position{})
	d.AddError(CodeInvalidMetadata, "bad id", "", "Main.title", token.Position{})

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[app.Main_ViewBinding]: [VB201] disk full; Main.title: [VB101] bad id",
		err.Error())
}

func TestDiagnostics_AddKeepsPosition(t *testing.T) {
	var d Diagnostics
	pos := token.Position{Filename: "kinds.go", Line: 30, Column: 1}

	d.AddInfo(CodeSkippedSymbol, "marker on type ignored", "", "Marked", pos)

	require.Len(t, d.Infos, 1)
	assert.Equal(t, pos, d.Infos[0].Pos)
	assert.Equal(t, "kinds.go:30:1 Marked: [VB001] marker on type ignored", d.Infos[0].String())
}

func TestDiagnostic_StringWithPosition(t *testing.T) {
	d := Diagnostic{
		Severity: DiagnosticError,
		Code:     CodeInvalidMetadata,
		Message:  "invalid lookup id",
		Symbol:   "Broken.broken",
		Pos:      token.Position{Filename: "kinds.go", Line: 44, Column: 2},
	}

	assert.Equal(t, "kinds.go:44:2 Broken.broken: [VB101] invalid lookup id", d.String())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
