package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirIsIdempotent(t *testing.T) {
	s := &Storage{}
	dir := filepath.Join(t.TempDir(), "results", "q1")

	require.NoError(t, s.EnsureDir(dir))
	require.NoError(t, s.EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveFileOverwrites(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "links.csv")

	require.NoError(t, s.SaveFile(path, []byte("first version\n")))
	require.NoError(t, s.SaveFile(path, []byte("second\n")))

	data, err := s.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))

	stats, err := s.GetFileStats(path)
	require.NoError(t, err)
	assert.EqualValues(t, 7, stats.SizeBytes)
	assert.True(t, s.HasFile(path))
	assert.False(t, s.HasFile(path+".missing"))
	assert.False(t, s.HasFile(filepath.Dir(path)), "directories are not files")
}

func TestSaveFileMissingDirectory(t *testing.T) {
	s := &Storage{}
	err := s.SaveFile(filepath.Join(t.TempDir(), "nope", "points.csv"), []byte("x"))
	assert.Error(t, err)
}
