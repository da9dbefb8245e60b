package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTax(t *testing.T) {
	assert.True(t, CalculateTax(decimal.NewFromInt(100)).Equal(decimal.NewFromInt(10)))
	assert.True(t, CalculateTax(decimal.NewFromFloat(49.90)).Equal(decimal.NewFromFloat(4.99)))
	assert.True(t, CalculateTax(decimal.Zero).IsZero())
}

func TestCalculateOrderTotal(t *testing.T) {
	subtotal := decimal.NewFromInt(100)
	tax := CalculateTax(subtotal)

	total := CalculateOrderTotal(subtotal, StandardShippingCost, tax, false)
	assert.True(t, total.Equal(decimal.NewFromInt(115)), "got %s", total)

	total = CalculateOrderTotal(subtotal, ExpressShippingCost, tax, false)
	assert.True(t, total.Equal(decimal.NewFromInt(125)), "got %s", total)
}

func TestCalculateOrderTotalEmptyCart(t *testing.T) {
	// an empty cart still quotes shipping, nothing else
	total := CalculateOrderTotal(decimal.Zero, StandardShippingCost, decimal.Zero, true)
	assert.True(t, total.Equal(StandardShippingCost))

	total = CalculateOrderTotal(decimal.Zero, ExpressShippingCost, decimal.Zero, true)
	assert.True(t, total.Equal(ExpressShippingCost))
}

func TestGetTaxPercent(t *testing.T) {
	assert.True(t, GetTaxPercent().Equal(decimal.NewFromInt(10)))
}
