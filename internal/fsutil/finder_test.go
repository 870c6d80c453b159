package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested", "deep"), 0o755))
	for _, name := range []string{"b.hcl", "a.yaml", "nested/c.yml", "nested/deep/d.hcl", "ignored.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	files, err := FindFilesByExtensions(dir, ".hcl", ".yaml", ".yml")
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "nested", "c.yml"),
		filepath.Join(dir, "nested", "deep", "d.hcl"),
	}
	assert.Equal(t, want, files, "results are sorted and recursive")
}

func TestFindFilesByExtensionsMissingRoot(t *testing.T) {
	_, err := FindFilesByExtensions(filepath.Join(t.TempDir(), "nope"), ".hcl")
	assert.Error(t, err)
}
