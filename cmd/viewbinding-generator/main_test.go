package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicPkg = "viewbinding-generator/examples/basic"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "viewbinding-generator dev\n", out)
}

func TestConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewbinding.yaml")
	require.NoError(t, os.WriteFile(path, []byte("marker: view\nlookup_method: Find\n"), 0o644))

	out, err := execute(t, "config", "--config", path, "--lookup-method", "Lookup", "--stable", "./ui/...")
	require.NoError(t, err)

	assert.Contains(t, out, "marker: view")
	assert.Contains(t, out, "lookup_method: Lookup")
	assert.Contains(t, out, "stable_order: true")
	assert.Contains(t, out, "- ./ui/...")
}

func TestConfig_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewbinding.yaml")
	require.NoError(t, os.WriteFile(path, []byte("marker: [\n"), 0o644))

	_, err := execute(t, "config", "--config", path)
	assert.Error(t, err)
}

func TestGenThenCheck(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "check", "-o", dir, basicPkg)
	require.ErrorIs(t, err, errStale)

	out, err := execute(t, "gen", "-o", dir, basicPkg)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "main_viewbinding.go"),
		filepath.Join(dir, "detail_viewbinding.go"),
	}, strings.Fields(out))

	content, err := os.ReadFile(filepath.Join(dir, "main_viewbinding.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package basic")
	assert.Contains(t, string(content), "b.target.title = owner.FindViewByID(101)")
	assert.NotContains(t, string(content), "footer")

	out, err = execute(t, "check", "-o", dir, basicPkg)
	require.NoError(t, err)
	assert.Contains(t, out, "ok      "+filepath.Join(dir, "main_viewbinding.go"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "detail_viewbinding.go"), []byte("package basic\n"), 0o644))

	out, err = execute(t, "check", "-o", dir, basicPkg)
	require.ErrorIs(t, err, errStale)
	assert.Contains(t, out, "stale   "+filepath.Join(dir, "detail_viewbinding.go"))
}

func TestCheck_Show(t *testing.T) {
	out, err := execute(t, "check", "--show", "-o", t.TempDir(), "--lookup-method", "View", basicPkg)
	require.Error(t, err)

	assert.Contains(t, out, "=== main_viewbinding.go ===")
	assert.Contains(t, out, "b.target.body = owner.View(201)")
}

func TestGen_InvalidMarkerValue(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "gen", "-o", dir, "viewbinding-generator/examples/kinds")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VB101")

	// Valid fields of the same run are still written.
	_, statErr := os.Stat(filepath.Join(dir, "widget_viewbinding.go"))
	assert.NoError(t, statErr)
}

func TestGen_LoadError(t *testing.T) {
	_, err := execute(t, "gen", "-o", t.TempDir(), "viewbinding-generator/examples/does-not-exist")
	assert.Error(t, err)
}

func TestGen_DryRun(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "gen", "--dry-run", "-o", dir, basicPkg)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "main_viewbinding.go"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
