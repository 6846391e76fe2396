// Package classify maps records onto German reporting structures:
// GWG threshold bands, EÜR form lines and SKR03 account groups.
package classify

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Band is the accounting treatment of a purchase by its net amount.
type Band string

const (
	// BandExpense: below the GWG floor, deducted immediately.
	BandExpense Band = "expense"
	// BandGWG: low-value asset, may be fully expensed in the purchase year.
	BandGWG Band = "gwg"
	// BandAsset: must be capitalized and depreciated (AfA).
	BandAsset Band = "asset"
)

// GWG threshold boundaries (net, euros), both inclusive on the GWG side.
var (
	gwgLower = decimal.NewFromInt(250)
	gwgUpper = decimal.NewFromInt(800)
)

// Purchase classifies a net purchase amount against the GWG bands:
// below 250 an ordinary expense, 250 to 800 inclusive a low-value
// asset, above 800 a capitalized asset. The result is advisory; it
// does not create an asset record.
func Purchase(net decimal.Decimal) (Band, error) {
	if net.IsNegative() {
		return "", fmt.Errorf("purchase amount %s is negative", net.StringFixed(2))
	}
	switch {
	case net.LessThan(gwgLower):
		return BandExpense, nil
	case net.LessThanOrEqual(gwgUpper):
		return BandGWG, nil
	default:
		return BandAsset, nil
	}
}
