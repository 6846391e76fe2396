package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fiskal-dev/fiskal/internal/model"
	"github.com/fiskal-dev/fiskal/internal/period"
)

// ZMEntry is the summed cross-border revenue for one EU VAT ID.
type ZMEntry struct {
	VatID  string
	Amount decimal.Decimal
}

// ZM is the EU recapitulative statement for a period.
type ZM struct {
	Period  period.Period
	Entries []ZMEntry // ascending by VAT ID
	Total   decimal.Decimal
	Count   int
	NoData  bool
}

// BuildZM groups a period's income records carrying an EU client VAT ID
// by that ID, summing net amounts.
func BuildZM(p period.Period, records []model.LedgerRecord) ZM {
	out := ZM{Period: p}
	byID := map[string]decimal.Decimal{}

	for _, r := range records {
		if r.Type != model.RecordIncome || r.ClientVatID == "" || !p.Contains(r.Date) {
			continue
		}
		byID[r.ClientVatID] = byID[r.ClientVatID].Add(r.Net)
		out.Total = out.Total.Add(r.Net)
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		out.Entries = append(out.Entries, ZMEntry{VatID: id, Amount: byID[id]})
	}

	out.Count = len(out.Entries)
	out.NoData = out.Count == 0
	return out
}
