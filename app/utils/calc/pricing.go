package calc

import "github.com/shopspring/decimal"

// Flat shipping rates by method.
var (
	StandardShippingCost = decimal.NewFromInt(5)
	ExpressShippingCost  = decimal.NewFromInt(15)
)

func GetTaxPercent() decimal.Decimal {
	var taxPercent = decimal.NewFromInt(10)

	return taxPercent
}

func CalculateTax(baseTotal decimal.Decimal) decimal.Decimal {

	taxPercent := GetTaxPercent()

	return baseTotal.Mul(taxPercent).Div(decimal.NewFromInt(100))

}

// CalculateOrderTotal sums subtotal, shipping and tax. An empty cart
// totals to the shipping cost alone; whether that is the intended
// pricing policy is tracked as an open product question, so the
// behavior is kept rather than corrected here.
func CalculateOrderTotal(subtotal, shippingCost, taxAmount decimal.Decimal, emptyCart bool) decimal.Decimal {
	if emptyCart {
		return shippingCost
	}
	return subtotal.Add(shippingCost).Add(taxAmount)
}
