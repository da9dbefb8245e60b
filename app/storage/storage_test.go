package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func testStoreRoundTrip(t *testing.T, store Store) {
	t.Helper()

	var missing payload
	ok, err := store.Load("nope", &missing)
	require.NoError(t, err)
	assert.False(t, ok)

	saved := payload{Name: "cart", Count: 3}
	require.NoError(t, store.Save(CartKey, saved))

	var loaded payload
	ok, err = store.Load(CartKey, &loaded)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, saved, loaded)

	// overwrite wins
	require.NoError(t, store.Save(CartKey, payload{Name: "cart", Count: 9}))
	ok, err = store.Load(CartKey, &loaded)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 9, loaded.Count)

	require.NoError(t, store.Delete(CartKey))
	ok, err = store.Load(CartKey, &loaded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryRoundTrip(t *testing.T) {
	store := NewMemory()
	defer store.Close()
	testStoreRoundTrip(t, store)
}

func TestBadgerRoundTrip(t *testing.T) {
	store, err := NewBadger(BadgerOptions{InMemory: true})
	require.NoError(t, err)
	defer store.Close()
	testStoreRoundTrip(t, store)
}

func TestBadgerPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewBadger(DefaultBadgerOptions(dir))
	require.NoError(t, err)
	require.NoError(t, store.Save(AuthKey, payload{Name: "auth", Count: 1}))
	require.NoError(t, store.Close())

	reopened, err := NewBadger(DefaultBadgerOptions(dir))
	require.NoError(t, err)
	defer reopened.Close()

	var loaded payload
	ok, err := reopened.Load(AuthKey, &loaded)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "auth", loaded.Name)
}
