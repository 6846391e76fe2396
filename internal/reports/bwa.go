// Package reports folds classified ledger records into the standard
// German report shapes: BWA, USt-VA, EÜR, SuSa and ZM. Every build is a
// pure function of the period and the record slice; running one twice
// on the same input yields identical output by value.
package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fiskal-dev/fiskal/internal/model"
	"github.com/fiskal-dev/fiskal/internal/period"
	"github.com/fiskal-dev/fiskal/internal/vat"
)

// BWAMonth holds one month's (or the year total's) figures.
type BWAMonth struct {
	Income       map[string]decimal.Decimal // by income category
	Expense      map[string]decimal.Decimal // by expense category
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Profit       decimal.Decimal
	MarginPct    decimal.Decimal // profit/income*100, 0 when income is 0
}

// BWA is the monthly P&L matrix for one calendar year.
type BWA struct {
	Year              int
	Months            [12]BWAMonth // index 0 = January
	IncomeCategories  []string     // sorted union across all months
	ExpenseCategories []string
	Total             BWAMonth // year totals, folded independently
	NoData            bool
}

// BuildBWA folds a year's records into the 12-month matrix. Category
// columns are the union of categories seen anywhere in the year; months
// without a category carry an explicit zero.
func BuildBWA(year int, records []model.LedgerRecord) BWA {
	bwa := BWA{Year: year}
	p := period.Year(year)

	incomeCats := map[string]bool{}
	expenseCats := map[string]bool{}

	matched := 0
	for _, r := range records {
		if !p.Contains(r.Date) {
			continue
		}
		matched++
		switch r.Type {
		case model.RecordIncome:
			incomeCats[r.Category] = true
		case model.RecordExpense:
			expenseCats[r.Category] = true
		}
	}
	bwa.NoData = matched == 0
	bwa.IncomeCategories = sortedKeys(incomeCats)
	bwa.ExpenseCategories = sortedKeys(expenseCats)

	for m := range bwa.Months {
		bwa.Months[m] = foldMonth(period.Month(year, m+1), records, bwa.IncomeCategories, bwa.ExpenseCategories)
	}
	// Year totals are an independent fold over the same records, not a
	// re-sum of the month rows.
	bwa.Total = foldMonth(p, records, bwa.IncomeCategories, bwa.ExpenseCategories)

	return bwa
}

func foldMonth(p period.Period, records []model.LedgerRecord, incomeCats, expenseCats []string) BWAMonth {
	row := BWAMonth{
		Income:  zeroed(incomeCats),
		Expense: zeroed(expenseCats),
	}

	for _, r := range records {
		if !p.Contains(r.Date) {
			continue
		}
		switch r.Type {
		case model.RecordIncome:
			row.Income[r.Category] = row.Income[r.Category].Add(r.Net)
			row.TotalIncome = row.TotalIncome.Add(r.Net)
		case model.RecordExpense:
			net := r.DeductibleNet()
			row.Expense[r.Category] = row.Expense[r.Category].Add(net)
			row.TotalExpense = row.TotalExpense.Add(net)
		}
	}

	row.Profit = row.TotalIncome.Sub(row.TotalExpense)
	if !row.TotalIncome.IsZero() {
		row.MarginPct = vat.Round2(row.Profit.Div(row.TotalIncome).Mul(decimal.NewFromInt(100)))
	}
	return row
}

func zeroed(categories []string) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(categories))
	for _, c := range categories {
		m[c] = decimal.Zero
	}
	return m
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
