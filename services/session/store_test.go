package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore()

	require.NoError(t, store.Save("abc", []byte(`{"role":"client"}`), time.Hour))

	data, err := store.Get("abc")
	require.NoError(t, err)
	assert.Equal(t, `{"role":"client"}`, string(data))

	require.NoError(t, store.Delete("abc"))
	_, err = store.Get("abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Deleting a missing record is not an error.
	assert.NoError(t, store.Delete("abc"))
}

func TestMemoryStoreMiss(t *testing.T) {
	store := NewMemorySessionStore()

	_, err := store.Get("never-saved")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore()

	require.NoError(t, store.Save("short", []byte("x"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := store.Get("short")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreCopiesData(t *testing.T) {
	store := NewMemorySessionStore()

	original := []byte("abc")
	require.NoError(t, store.Save("id", original, 0))
	original[0] = 'z'

	data, err := store.Get("id")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))

	// Mutating the returned slice must not touch the stored copy either.
	data[0] = 'z'
	again, err := store.Get("id")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
