package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"old"}`), 0644))

	require.NoError(t, WriteFile(path, []byte(`{"name":"new"}`), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"new"}`, string(data))
}

func TestWriteFileCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")

	require.NoError(t, WriteFile(path, []byte("# demo-app\n"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# demo-app\n", string(data))
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "file.txt")
	assert.Error(t, WriteFile(path, []byte("x"), 0644))
}
