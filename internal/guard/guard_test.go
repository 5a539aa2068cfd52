package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/session"
)

func TestRequireSession(t *testing.T) {
	store := session.NewMemoryStore()

	assert.ErrorIs(t, RequireSession(store), ErrNotSignedIn)

	require.NoError(t, store.Set("tok"))
	assert.NoError(t, RequireSession(store))

	require.NoError(t, store.Clear())
	assert.ErrorIs(t, RequireSession(store), ErrNotSignedIn)
}

func TestRequireAnonymous(t *testing.T) {
	store := session.NewMemoryStore()

	assert.NoError(t, RequireAnonymous(store))

	require.NoError(t, store.Set("tok"))
	assert.ErrorIs(t, RequireAnonymous(store), ErrSignedIn)
}
