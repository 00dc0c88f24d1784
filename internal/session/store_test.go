package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholar-portal/internal/models"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := NewFileStore(path)

	current, err := store.Current()
	require.NoError(t, err)
	assert.Nil(t, current, "empty store should report no session")

	err = store.Save(&Session{
		AccessToken: "tok-123",
		TokenType:   "bearer",
		Role:        models.RoleStudent,
		UserID:      7,
		Email:       "student@example.edu",
	})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	current, err = store.Current()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "tok-123", current.AccessToken)
	assert.Equal(t, models.RoleStudent, current.Role)
	assert.False(t, current.SavedAt.IsZero())
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewFileStore(path)

	require.NoError(t, store.Save(&Session{AccessToken: "tok"}))
	require.NoError(t, store.Clear())

	current, err := store.Current()
	require.NoError(t, err)
	assert.Nil(t, current)

	// Clearing an already empty store is not an error.
	assert.NoError(t, store.Clear())
}

func TestFileStoreIgnoresBlankToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte(`{"access_token":""}`), 0o600))

	current, err := NewFileStore(path).Current()
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(&Session{AccessToken: "tok"}))

	current, err := store.Current()
	require.NoError(t, err)
	current.AccessToken = "mutated"

	again, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, "tok", again.AccessToken, "callers must not mutate stored state")
}
