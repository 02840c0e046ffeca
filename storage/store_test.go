package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "saves"))
	require.NoError(t, err)

	_, found, err := store.Load(KeyHighScore)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save(KeyHighScore, []byte("high_score: 12\n")))
	data, found, err := store.Load(KeyHighScore)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "high_score: 12\n", string(data))
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	assert.ErrorIs(t, store.Save("../escape", nil), ErrInvalidKey)
}

func TestProgress_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	log := zap.NewNop()

	require.NoError(t, SaveAchievements(store, map[string]bool{"first_piece": true}))
	require.NoError(t, SaveHighScore(store, 4200))

	assert.Equal(t, map[string]bool{"first_piece": true}, LoadAchievements(store, log))
	assert.Equal(t, 4200, LoadHighScore(store, log))
}

func TestProgress_CorruptDataFallsBack(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	log := zap.NewNop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyAchievements+".yaml"), []byte("{{not yaml"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyHighScore+".yaml"), []byte("high_score: lots"), 0o644))

	assert.Empty(t, LoadAchievements(store, log))
	assert.Zero(t, LoadHighScore(store, log))
}

func TestProgress_EmptyStore(t *testing.T) {
	store := NewMemoryStore()
	assert.Empty(t, LoadAchievements(store, zap.NewNop()))
	assert.Zero(t, LoadHighScore(store, zap.NewNop()))
}
