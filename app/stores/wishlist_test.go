package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velmora/storefront/app/storage"
	"go.uber.org/zap"
)

func TestWishlistMembership(t *testing.T) {
	wl := NewWishlist(storage.NewMemory(), zap.NewNop())

	assert.False(t, wl.IsInWishlist("p1"))

	wl.AddItem(testProduct("p1", 50))
	assert.True(t, wl.IsInWishlist("p1"))
	assert.False(t, wl.IsInWishlist("p2"))

	wl.RemoveItem("p1")
	assert.False(t, wl.IsInWishlist("p1"))
}

func TestWishlistClear(t *testing.T) {
	wl := NewWishlist(storage.NewMemory(), zap.NewNop())
	wl.AddItem(testProduct("p1", 50))
	wl.AddItem(testProduct("p2", 60))

	wl.ClearWishlist()

	assert.Empty(t, wl.Items())
}

func TestWishlistRehydratesFromStorage(t *testing.T) {
	store := storage.NewMemory()

	first := NewWishlist(store, zap.NewNop())
	first.AddItem(testProduct("p1", 50))

	second := NewWishlist(store, zap.NewNop())
	require.Len(t, second.Items(), 1)
	assert.True(t, second.IsInWishlist("p1"))
}
