package classify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPurchaseBoundaries(t *testing.T) {
	tests := []struct {
		amount string
		want   Band
	}{
		{"0", BandExpense},
		{"249.99", BandExpense},
		{"250.00", BandGWG},
		{"500", BandGWG},
		{"800.00", BandGWG},
		{"800.01", BandAsset},
		{"15000", BandAsset},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			band, err := Purchase(dec(tt.amount))
			require.NoError(t, err)
			assert.Equal(t, tt.want, band)
		})
	}
}

func TestPurchaseNegative(t *testing.T) {
	_, err := Purchase(dec("-1"))
	assert.Error(t, err)
}
