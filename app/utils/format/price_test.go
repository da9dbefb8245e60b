package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name   string
		amount interface{}
		want   string
	}{
		{"decimal", decimal.NewFromFloat(19.99), "$19.99"},
		{"float", 5.5, "$5.50"},
		{"int", 100, "$100.00"},
		{"int64", int64(7), "$7.00"},
		{"numeric string", "1234.5", "$1,234.50"},
		{"thousands grouping", decimal.NewFromInt(1000000), "$1,000,000.00"},
		{"rounds to cents", decimal.NewFromFloat(2.345), "$2.35"},
		{"zero", decimal.Zero, "$0.00"},
		{"garbage string", "not a price", "$0.00"},
		{"nil", nil, "$0.00"},
		{"unsupported type", []int{1}, "$0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.amount))
		})
	}
}
