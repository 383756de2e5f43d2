package yaml

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ochairo/symscrape/internal/domain/entities"
)

func TestIndexRepository_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	outputDir := filepath.Join(t.TempDir(), "index")
	repo := NewIndexRepository(outputDir)

	require.NoError(t, repo.SaveIndex(ctx, sampleIndex()))

	path := filepath.Join(outputDir, "symbols_lib.yaml")
	assert.Equal(t, path, repo.PathFor(entities.ArchiveClass))
	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := repo.LoadIndex(ctx, entities.ArchiveClass)
	require.NoError(t, err)
	assert.Equal(t, sampleIndex().Keys(), loaded.Keys())
}

func TestIndexRepository_SaveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewIndexRepository(t.TempDir())
	path := repo.PathFor(entities.ArchiveClass)

	require.NoError(t, repo.SaveIndex(ctx, sampleIndex()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, repo.SaveIndex(ctx, sampleIndex()))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestIndexRepository_LoadMissing(t *testing.T) {
	repo := NewIndexRepository(t.TempDir())

	_, err := repo.LoadIndex(context.Background(), entities.ObjectClass)

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestIndexRepository_SaveUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	// output directory path runs through a regular file
	repo := NewIndexRepository(filepath.Join(blocker, "index"))

	err := repo.SaveIndex(context.Background(), sampleIndex())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output directory")
}
