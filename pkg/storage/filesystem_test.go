package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveReadExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	assert.False(t, store.Exists("lookup.json"))

	path, err := store.Save("lookup.json", []byte(`{"LT1":"A (1)"}`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lookup.json"), path)
	assert.True(t, store.Exists("lookup.json"))

	data, err := store.Read("lookup.json")
	require.NoError(t, err)
	assert.Equal(t, `{"LT1":"A (1)"}`, string(data))

	_, err = store.Save("lookup.json", []byte(`{}`))
	require.NoError(t, err)
	data, err = store.Read("lookup.json")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalStorageExistsIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	assert.False(t, store.Exists("nested"))
	_, err = store.Read("missing.json")
	require.Error(t, err)
}
