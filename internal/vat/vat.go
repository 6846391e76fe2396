// Package vat converts between net and gross monetary amounts under
// German value-added-tax rules.
//
// All results are rounded to two decimal places using round half away
// from zero (kaufmännisches Runden), applied after every multiply or
// divide so that net + vat == gross holds within one cent.
package vat

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// The closed set of German VAT rates: zero-rated, reduced, standard.
const (
	RateZero     = 0
	RateReduced  = 7
	RateStandard = 19
)

// Rates lists all valid rates in ascending order.
var Rates = []int{RateZero, RateReduced, RateStandard}

// Breakdown is a monetary amount split into its net, VAT and gross parts.
type Breakdown struct {
	Net   decimal.Decimal
	Vat   decimal.Decimal
	Gross decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// ValidRate reports whether rate is one of the known VAT rates.
func ValidRate(rate int) bool {
	for _, r := range Rates {
		if r == rate {
			return true
		}
	}
	return false
}

// FromNet computes VAT and gross from a net amount. Negative nets are
// valid (credit notes) and propagate their sign. For rate 0 the VAT is
// exactly zero and gross equals net.
func FromNet(net decimal.Decimal, rate int) (Breakdown, error) {
	if !ValidRate(rate) {
		return Breakdown{}, fmt.Errorf("invalid VAT rate %d%%: must be one of %v", rate, Rates)
	}

	tax := Round2(net.Mul(decimal.NewFromInt(int64(rate))).Div(hundred))
	return Breakdown{
		Net:   Round2(net),
		Vat:   tax,
		Gross: Round2(net.Add(tax)),
	}, nil
}

// FromGross computes net and VAT from a gross amount. The parts always
// re-add to the original gross: vat is derived as gross - net rather
// than recomputed from the rate.
func FromGross(gross decimal.Decimal, rate int) (Breakdown, error) {
	if !ValidRate(rate) {
		return Breakdown{}, fmt.Errorf("invalid VAT rate %d%%: must be one of %v", rate, Rates)
	}

	divisor := hundred.Add(decimal.NewFromInt(int64(rate))).Div(hundred)
	net := Round2(gross.Div(divisor))
	return Breakdown{
		Net:   net,
		Vat:   Round2(gross.Sub(net)),
		Gross: Round2(gross),
	}, nil
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
