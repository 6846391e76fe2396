package reports

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fiskal-dev/fiskal/internal/model"
	"github.com/fiskal-dev/fiskal/internal/period"
	"github.com/fiskal-dev/fiskal/internal/vat"
)

// RateSum is the taxable net base and output VAT collected at one rate.
type RateSum struct {
	Rate int
	Net  decimal.Decimal
	Vat  decimal.Decimal
}

// UStVA is the VAT pre-declaration summary for a period.
type UStVA struct {
	Period            period.Period
	Umsatzsteuer      []RateSum // ascending by rate, only rates present
	TotalUmsatzsteuer decimal.Decimal
	Vorsteuer         decimal.Decimal // deductible input VAT
	Zahllast          decimal.Decimal // negative = refund owed to the taxpayer
	NoData            bool
}

// BuildUStVA sums a period's income by VAT rate into output VAT, sums
// deductible input VAT from expenses, and derives the signed Zahllast.
func BuildUStVA(p period.Period, records []model.LedgerRecord) (UStVA, error) {
	if err := p.Validate(); err != nil {
		return UStVA{}, err
	}

	out := UStVA{Period: p}
	byRate := map[int]RateSum{}
	matched := 0

	for _, r := range records {
		if !p.Contains(r.Date) {
			continue
		}
		matched++

		breakdown, err := vat.FromNet(r.Net, r.VatRate)
		if err != nil {
			return UStVA{}, fmt.Errorf("record %s: %w", r.ID, err)
		}

		switch r.Type {
		case model.RecordIncome:
			sum := byRate[r.VatRate]
			sum.Rate = r.VatRate
			sum.Net = sum.Net.Add(breakdown.Net)
			sum.Vat = sum.Vat.Add(breakdown.Vat)
			byRate[r.VatRate] = sum
			out.TotalUmsatzsteuer = out.TotalUmsatzsteuer.Add(breakdown.Vat)
		case model.RecordExpense:
			out.Vorsteuer = out.Vorsteuer.Add(r.ScaleDeductible(breakdown.Vat))
		}
	}

	out.NoData = matched == 0

	rates := make([]int, 0, len(byRate))
	for rate := range byRate {
		rates = append(rates, rate)
	}
	sort.Ints(rates)
	for _, rate := range rates {
		out.Umsatzsteuer = append(out.Umsatzsteuer, byRate[rate])
	}

	out.Zahllast = out.TotalUmsatzsteuer.Sub(out.Vorsteuer)
	return out, nil
}
