package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetRecord is a capitalized purchase depreciated over its useful life.
// The method is always straight-line; the schedule is generated once at
// creation or edit time and read-only afterwards.
type AssetRecord struct {
	ID              string
	Name            string
	PurchaseDate    time.Time
	PurchasePrice   decimal.Decimal // net
	UsefulLifeYears int
	Schedule        []ScheduleYear
}

// ScheduleYear is one row of a depreciation schedule.
type ScheduleYear struct {
	Year       int
	MonthsHeld int
	Annual     decimal.Decimal
	Cumulative decimal.Decimal
	BookValue  decimal.Decimal
}

// BookValueAt resolves the asset's book value for a year: the latest
// schedule entry at or before that year, or the purchase price if the
// schedule has not started yet.
func (a AssetRecord) BookValueAt(year int) decimal.Decimal {
	value := a.PurchasePrice
	for _, row := range a.Schedule {
		if row.Year > year {
			break
		}
		value = row.BookValue
	}
	return value
}
