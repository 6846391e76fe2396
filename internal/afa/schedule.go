// Package afa generates straight-line depreciation schedules for
// capitalized assets. The purchase year is prorated by months held, so a
// mid-year purchase spreads over lifeYears+1 calendar years; the final
// row absorbs rounding drift so the cumulative amount equals the
// purchase price exactly.
package afa

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fiskal-dev/fiskal/internal/model"
	"github.com/fiskal-dev/fiskal/internal/vat"
)

var twelve = decimal.NewFromInt(12)

// Schedule computes the per-year depreciation rows for a straight-line
// write-off of price over lifeYears, starting in the month of purchase.
func Schedule(price decimal.Decimal, purchase time.Time, lifeYears int) ([]model.ScheduleYear, error) {
	if lifeYears < 1 {
		return nil, fmt.Errorf("useful life must be at least 1 year, got %d", lifeYears)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("purchase price %s is negative", price.StringFixed(2))
	}

	annual := vat.Round2(price.Div(decimal.NewFromInt(int64(lifeYears))))

	// A January purchase is written off over exactly lifeYears calendar
	// years; any later month adds a prorated final year.
	lastYear := purchase.Year() + lifeYears
	if purchase.Month() == time.January {
		lastYear--
	}

	var rows []model.ScheduleYear
	cumulative := decimal.Zero

	for year := purchase.Year(); year <= lastYear; year++ {
		months := 12
		switch year {
		case purchase.Year():
			months = 13 - int(purchase.Month())
		case lastYear:
			if purchase.Month() != time.January {
				months = int(purchase.Month()) - 1
			}
		}

		var amount decimal.Decimal
		switch {
		case year == lastYear:
			// The final year absorbs rounding drift.
			amount = price.Sub(cumulative)
		case months < 12:
			amount = vat.Round2(annual.Mul(decimal.NewFromInt(int64(months))).Div(twelve))
		default:
			amount = annual
		}

		cumulative = cumulative.Add(amount)
		rows = append(rows, model.ScheduleYear{
			Year:       year,
			MonthsHeld: months,
			Annual:     amount,
			Cumulative: cumulative,
			BookValue:  price.Sub(cumulative),
		})
	}

	return rows, nil
}
