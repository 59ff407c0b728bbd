package filehandler

import (
	"os"
	"path/filepath"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/fanlog/core"
)

func TestFileHandler_Writes(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "nested", "dir", "test.log")

	h, err := NewFileHandler(FileConfig{Filename: filename})
	require.NoError(t, err)

	require.NoError(t, h.Log(core.InfoLevel, "first {n}", core.Context{"n": 1}))
	require.NoError(t, h.Log(core.ErrorLevel, "second", nil))
	require.NoError(t, h.Close())

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "[info] first 1\n[error] second\n", string(content))
	assert.Equal(t, filename, h.Filename())
}

func TestFileHandler_Appends(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.WriteFile(filename, []byte("existing\n"), 0644))

	h, err := NewFileHandler(FileConfig{Filename: filename})
	require.NoError(t, err)
	require.NoError(t, h.Log(core.NoticeLevel, "appended", nil))
	require.NoError(t, h.Close())

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "existing\n[notice] appended\n", string(content))
}

func TestFileHandler_RequiresFilename(t *testing.T) {
	_, err := NewFileHandler(FileConfig{})
	require.Error(t, err)
}

func TestFileHandler_CloseIdempotent(t *testing.T) {
	h, err := NewFileHandler(FileConfig{Filename: filepath.Join(t.TempDir(), "test.log")})
	require.NoError(t, err)

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())
}

func TestFileHandler_WriteAfterClose(t *testing.T) {
	h, err := NewFileHandler(FileConfig{Filename: filepath.Join(t.TempDir(), "test.log")})
	require.NoError(t, err)
	require.NoError(t, h.Close())

	err = h.Log(core.InfoLevel, "too late", nil)
	require.Error(t, err)
	assert.ErrorIs(t, pkgerrors.Cause(err), os.ErrClosed)
	assert.Equal(t, uint64(1), h.Stats().FailedTotal)
}
