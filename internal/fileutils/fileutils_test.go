package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "statement.pdf")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0o644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing.pdf")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "statement.pdf")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0o644))

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(file))
	assert.False(t, DirectoryExists(filepath.Join(dir, "missing")))
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))

	// A second call on an existing directory is a no-op.
	require.NoError(t, EnsureDirectoryExists(dir))
}

func TestFileSize(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "statement.pdf")
	require.NoError(t, os.WriteFile(file, []byte("12345"), 0o644))

	size, err := FileSize(file)
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	_, err = FileSize(dir)
	assert.Error(t, err)

	_, err = FileSize(filepath.Join(dir, "missing.pdf"))
	assert.Error(t, err)
}

func TestHasExtension(t *testing.T) {
	assert.True(t, HasExtension("statement.pdf", ".pdf"))
	assert.True(t, HasExtension("STATEMENT.PDF", ".pdf"))
	assert.False(t, HasExtension("statement.txt", ".pdf"))
	assert.False(t, HasExtension("statement", ".pdf"))
}

func TestListFilesWithExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.PDF"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "c.pdf"), []byte("c"), 0o644))

	files, err := ListFilesWithExtension(dir, ".pdf")
	require.NoError(t, err)
	assert.Len(t, files, 3)

	_, err = ListFilesWithExtension(filepath.Join(dir, "missing"), ".pdf")
	assert.Error(t, err)
}
