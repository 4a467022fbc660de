package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("statement"))
	assert.NotNil(t, r.Get("STATEMENT"))
	assert.Nil(t, r.Get("unknown"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&StatementParser{})
	assert.Panics(t, func() {
		r.Register(&StatementParser{})
	})
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	importPath := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(filepath.Join(importPath, "processed"), 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(importPath, "statement.csv"), []byte("a,b\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(importPath, "UPPER.CSV"), []byte("a,b\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(importPath, "notes.txt"), []byte("x"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)

	names := []string{files[0].Name, files[1].Name}
	assert.Contains(t, names, "statement.csv")
	assert.Contains(t, names, "UPPER.CSV")
}

func TestScan_NoImportDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	importPath := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importPath, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(importPath, "done.csv"), []byte("a,b\n"), 0o644))

	require.NoError(t, MarkProcessed(dir, "done.csv"))

	_, err := os.Stat(filepath.Join(importPath, "done.csv"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(importPath, "processed", "done.csv"))
	assert.NoError(t, err)
}
