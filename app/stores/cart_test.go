package stores

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velmora/storefront/app/models"
	"github.com/velmora/storefront/app/storage"
	"go.uber.org/zap"
)

func testProduct(id string, price int64) models.Product {
	return models.Product{
		ID:    id,
		Name:  "product " + id,
		Price: decimal.NewFromInt(price),
		Images: []models.ProductImage{
			{URL: "https://img.example/" + id + ".jpg", IsMain: true},
		},
	}
}

// recomputed total straight from the items, to check the
// incrementally maintained one against.
func sumItems(items []models.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}

func TestCartTotalInvariant(t *testing.T) {
	cart := NewCart(storage.NewMemory(), zap.NewNop())

	check := func() {
		t.Helper()
		assert.True(t, cart.Total().Equal(sumItems(cart.Items())),
			"total %s != sum of items %s", cart.Total(), sumItems(cart.Items()))
	}

	cart.AddItem(testProduct("p1", 100))
	check()
	cart.AddItem(testProduct("p2", 30))
	check()
	cart.AddItem(testProduct("p1", 100))
	check()
	cart.UpdateQuantity("p2", 5)
	check()
	cart.RemoveItem("p1")
	check()
	cart.UpdateQuantity("p2", 1)
	check()
	cart.RemoveItem("p2")
	check()
	assert.True(t, cart.Total().IsZero())
}

func TestCartAddItemMergesByProductID(t *testing.T) {
	cart := NewCart(storage.NewMemory(), zap.NewNop())

	cart.AddItem(testProduct("p1", 40))
	cart.AddItem(testProduct("p1", 40))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(80)))
}

func TestCartRemoveItemAbsentIsNoOp(t *testing.T) {
	cart := NewCart(storage.NewMemory(), zap.NewNop())
	cart.AddItem(testProduct("p1", 25))

	cart.RemoveItem("missing")

	assert.Equal(t, 1, cart.Count())
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(25)))
}

func TestCartUpdateQuantityAbsentIsNoOp(t *testing.T) {
	cart := NewCart(storage.NewMemory(), zap.NewNop())
	cart.AddItem(testProduct("p1", 25))

	cart.UpdateQuantity("missing", 7)

	assert.Equal(t, 1, cart.Count())
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(25)))
}

func TestCartClear(t *testing.T) {
	cart := NewCart(storage.NewMemory(), zap.NewNop())
	cart.AddItem(testProduct("p1", 10))
	cart.AddItem(testProduct("p2", 20))

	cart.ClearCart()

	assert.Empty(t, cart.Items())
	assert.True(t, cart.Total().IsZero())
}

func TestCartRehydratesFromStorage(t *testing.T) {
	store := storage.NewMemory()

	first := NewCart(store, zap.NewNop())
	first.AddItem(testProduct("p1", 100))
	first.AddItem(testProduct("p1", 100))
	first.AddItem(testProduct("p2", 9))

	second := NewCart(store, zap.NewNop())
	require.Equal(t, 2, second.Count())
	assert.True(t, second.Total().Equal(decimal.NewFromInt(209)))

	items := second.Items()
	assert.Equal(t, "p1", items[0].Product.ID)
	assert.Equal(t, 2, items[0].Quantity)
}
