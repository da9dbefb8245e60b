package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var usd = accounting.Accounting{Symbol: "$", Precision: 2}

// FormatPrice renders a currency value as "$1,234.56". Unparseable
// or missing amounts render as "$0.00" rather than erroring, since
// a price label is always displayed.
func FormatPrice(amount interface{}) string {
	var decAmount decimal.Decimal
	switch v := amount.(type) {
	case decimal.Decimal:
		decAmount = v
	case float64:
		decAmount = decimal.NewFromFloat(v)
	case int:
		decAmount = decimal.NewFromInt(int64(v))
	case int64:
		decAmount = decimal.NewFromInt(v)
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return "$0.00"
		}
		decAmount = parsed
	default:
		return "$0.00"
	}

	return usd.FormatMoneyDecimal(decAmount)
}
