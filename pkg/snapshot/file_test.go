package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoadWhenAbsent(t *testing.T) {
	store, err := NewFile(filepath.Join(t.TempDir(), "ledger.json"))
	require.NoError(t, err)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ledger.json")
	store, err := NewFile(path)
	require.NoError(t, err)
	want := sampleLedger()

	require.NoError(t, store.Save(context.Background(), want))
	got, err := store.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	// No temp file left behind after the rename.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileSaveOverwrites(t *testing.T) {
	store, err := NewFile(filepath.Join(t.TempDir(), "ledger.json"))
	require.NoError(t, err)

	first := sampleLedger()
	require.NoError(t, store.Save(context.Background(), first))

	second := first.Clone()
	second.Courses = second.Courses[:1]
	require.NoError(t, store.Save(context.Background(), second))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Courses, 1)
}

func TestFileLoadCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	store, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err = store.Load(context.Background())
	require.Error(t, err)
}
