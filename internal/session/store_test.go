package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SetGetClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := NewFileStore(path)

	assert.Empty(t, store.Get(), "absent token reads as empty, not an error")

	require.NoError(t, store.Set("tok-123"))
	assert.Equal(t, "tok-123", store.Get())

	// A second store over the same path sees the token, i.e. it survives a
	// process restart.
	assert.Equal(t, "tok-123", NewFileStore(path).Get())

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Get())

	// Clearing an already-absent token is not an error.
	require.NoError(t, store.Clear())
}

func TestFileStore_UnreadablePath(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "no", "such", "dir", "token"))
	assert.Empty(t, store.Get())
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	assert.Empty(t, store.Get())
	require.NoError(t, store.Set("abc"))
	assert.Equal(t, "abc", store.Get())
	require.NoError(t, store.Clear())
	assert.Empty(t, store.Get())
}
