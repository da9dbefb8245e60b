package models

import "github.com/shopspring/decimal"

// CartItem is a product snapshot plus the quantity placed in the
// cart. Items are keyed by product id; size/color/variant record the
// shopper's selection when the product has options.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size,omitempty"`
	Color    string  `json:"color,omitempty"`
	Variant  string  `json:"variant,omitempty"`
}

func (ci CartItem) Subtotal() decimal.Decimal {
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
