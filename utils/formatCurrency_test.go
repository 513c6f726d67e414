package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "PKR 2,500,000", FormatCurrency(decimal.NewFromInt(2500000)))
	assert.Equal(t, "PKR 0", FormatCurrency(decimal.Zero))
	assert.Equal(t, "PKR 999", FormatCurrency(decimal.NewFromInt(999)))
	assert.Equal(t, "PKR 1,000", FormatCurrency(decimal.NewFromInt(1000)))
}

func TestFormatCurrency_TruncatesFractions(t *testing.T) {
	amount, _ := decimal.NewFromString("1250000.75")
	assert.Equal(t, "PKR 1,250,000", FormatCurrency(amount))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "15 Mar 2024", FormatDate(MustDate("2024-03-15")))
	assert.Equal(t, "1 Jan 2024", FormatDate(MustDate("2024-01-01")))
}
