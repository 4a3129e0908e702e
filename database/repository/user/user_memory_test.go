package userRepo

import (
	"errors"
	"testing"
	"time"

	"goleironow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed() []models.User {
	return []models.User{
		{ID: 1, Name: "Carlos Silva", City: "São Paulo", Favorites: []int{2, 4}},
		{ID: 2, Name: "Ana Pereira", City: "Rio de Janeiro", Favorites: []int{1}},
	}
}

func TestGetByIDReturnsCopy(t *testing.T) {
	repo := NewMemoryUserRepo(seed(), 0)

	u, err := repo.GetByID(1)
	require.NoError(t, err)
	require.NotNil(t, u)

	// Mutating the returned value must not leak into the store.
	u.Name = "Hacked"
	u.Favorites[0] = 99

	again, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Carlos Silva", again.Name)
	assert.Equal(t, []int{2, 4}, again.Favorites)
}

func TestGetByIDMissIsNil(t *testing.T) {
	repo := NewMemoryUserRepo(seed(), 0)

	u, err := repo.GetByID(99)
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestToggleFavoriteAddAndRemove(t *testing.T) {
	repo := NewMemoryUserRepo(seed(), 0)

	u, err := repo.ToggleFavorite(1, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{4}, u.Favorites)

	u, err = repo.ToggleFavorite(1, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{2, 4}, u.Favorites)

	// Unknown user resolves to nothing, not an error.
	u, err = repo.ToggleFavorite(99, 1)
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestForcedFailure(t *testing.T) {
	repo := NewMemoryUserRepo(seed(), 0)
	boom := errors.New("boom")

	repo.SetFailure(boom)
	_, err := repo.GetByID(1)
	assert.ErrorIs(t, err, boom)
	_, err = repo.ToggleFavorite(1, 2)
	assert.ErrorIs(t, err, boom)

	repo.SetFailure(nil)
	_, err = repo.GetByID(1)
	assert.NoError(t, err)
}

func TestSimulatedLatency(t *testing.T) {
	repo := NewMemoryUserRepo(seed(), 20*time.Millisecond)

	start := time.Now()
	_, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
