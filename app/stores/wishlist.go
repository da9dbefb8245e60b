package stores

import (
	"sync"

	"github.com/velmora/storefront/app/models"
	"github.com/velmora/storefront/app/storage"
	"go.uber.org/zap"
)

type wishlistSnapshot struct {
	Items []models.Product `json:"items"`
}

// Wishlist is the persisted set of favorited products. Membership is
// by product id; AddItem appends unconditionally, so callers check
// IsInWishlist first (set semantics by convention, not constraint).
type Wishlist struct {
	mu     sync.Mutex
	items  []models.Product
	store  storage.Store
	logger *zap.Logger
}

func NewWishlist(store storage.Store, logger *zap.Logger) *Wishlist {
	w := &Wishlist{
		store:  store,
		logger: logger,
	}

	var snap wishlistSnapshot
	ok, err := store.Load(storage.WishlistKey, &snap)
	if err != nil {
		logger.Warn("failed to load wishlist snapshot", zap.Error(err))
		return w
	}
	if ok {
		w.items = snap.Items
	}
	return w
}

func (w *Wishlist) AddItem(product models.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.items = append(w.items, product)
	w.persist()
}

func (w *Wishlist) RemoveItem(productID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	kept := w.items[:0]
	for _, item := range w.items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	w.items = kept
	w.persist()
}

func (w *Wishlist) IsInWishlist(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, item := range w.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

func (w *Wishlist) ClearWishlist() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.items = nil
	w.persist()
}

func (w *Wishlist) Items() []models.Product {
	w.mu.Lock()
	defer w.mu.Unlock()

	items := make([]models.Product, len(w.items))
	copy(items, w.items)
	return items
}

func (w *Wishlist) persist() {
	if err := w.store.Save(storage.WishlistKey, wishlistSnapshot{Items: w.items}); err != nil {
		w.logger.Warn("failed to persist wishlist snapshot", zap.Error(err))
	}
}
