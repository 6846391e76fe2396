package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEuerLine(t *testing.T) {
	assert.Equal(t, 25, EuerLine("fremdleistungen"))
	assert.Equal(t, 27, EuerLine("vorsteuer"))
	assert.Equal(t, 30, EuerLine("afa"))
	assert.Equal(t, 14, EuerLine("erloese_19"))
}

func TestEuerLineFallback(t *testing.T) {
	assert.Equal(t, LineOther, EuerLine("kryptowaehrung"))
	assert.Equal(t, LineOther, EuerLine(""))
}

func TestAccountGroupOf(t *testing.T) {
	tests := []struct {
		account string
		want    AccountGroup
	}{
		{"0027", GroupAssets},
		{"999", GroupAssets},
		{"1000", GroupFinance},
		{"1576", GroupFinance},
		{"2000", GroupExpense},
		{"4930", GroupExpense},
		{"7999", GroupExpense},
		{"8000", GroupIncome},
		{"8400", GroupIncome},
		{"9999", GroupIncome},
		{"10000", GroupOther},
		{"-5", GroupOther},
		{"abc", GroupOther},
		{"", GroupOther},
	}
	for _, tt := range tests {
		t.Run(tt.account, func(t *testing.T) {
			assert.Equal(t, tt.want, AccountGroupOf(tt.account))
		})
	}
}

func TestGroupOrderFixed(t *testing.T) {
	// Rendering order is the declaration order, residual group last.
	assert.Equal(t, []AccountGroup{GroupAssets, GroupFinance, GroupExpense, GroupIncome, GroupOther}, GroupOrder)
}
