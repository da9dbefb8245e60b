package stores

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/velmora/storefront/app/models"
	"github.com/velmora/storefront/app/storage"
	"go.uber.org/zap"
)

type cartSnapshot struct {
	Items []models.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
}

// Cart holds the items a shopper has placed in the cart, keyed by
// product id, with a running total maintained incrementally on every
// mutation (invariant: total = Σ price×quantity). Mutations are
// synchronous; no stock-limit check is applied here. Every mutation
// persists the full snapshot under storage.CartKey.
type Cart struct {
	mu     sync.Mutex
	items  []models.CartItem
	total  decimal.Decimal
	store  storage.Store
	logger *zap.Logger
}

// NewCart rehydrates the cart from the storage port. A corrupt or
// unreadable snapshot logs a warning and starts the cart empty.
func NewCart(store storage.Store, logger *zap.Logger) *Cart {
	c := &Cart{
		total:  decimal.Zero,
		store:  store,
		logger: logger,
	}

	var snap cartSnapshot
	ok, err := store.Load(storage.CartKey, &snap)
	if err != nil {
		logger.Warn("failed to load cart snapshot", zap.Error(err))
		return c
	}
	if ok {
		c.items = snap.Items
		c.total = snap.Total
	}
	return c
}

// AddItem puts one unit of product in the cart. An item with the
// same product id merges into the existing entry instead of creating
// a second one.
func (c *Cart) AddItem(product models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity++
			c.total = c.total.Add(product.Price)
			c.persist()
			return
		}
	}

	c.items = append(c.items, models.CartItem{Product: product, Quantity: 1})
	c.total = c.total.Add(product.Price)
	c.persist()
}

// RemoveItem drops the entry for productID. Unknown ids are a no-op.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.total = c.total.Sub(c.items[i].Subtotal())
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return
		}
	}
}

// UpdateQuantity sets the entry's quantity verbatim and adjusts the
// total by the delta. Callers are expected to clamp the quantity;
// unknown ids are a no-op.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			delta := int64(quantity - c.items[i].Quantity)
			c.total = c.total.Add(c.items[i].Product.Price.Mul(decimal.NewFromInt(delta)))
			c.items[i].Quantity = quantity
			c.persist()
			return
		}
	}
}

func (c *Cart) ClearCart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.total = decimal.Zero
	c.persist()
}

func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Count reports the number of distinct cart entries.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// persist is called with c.mu held. Storage write failures are
// logged, not surfaced; the in-memory state stays authoritative.
func (c *Cart) persist() {
	snap := cartSnapshot{Items: c.items, Total: c.total}
	if err := c.store.Save(storage.CartKey, snap); err != nil {
		c.logger.Warn("failed to persist cart snapshot", zap.Error(err))
	}
}
