package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fiskal-dev/fiskal/internal/classify"
	"github.com/fiskal-dev/fiskal/internal/model"
	"github.com/fiskal-dev/fiskal/internal/period"
)

// LineSum is one EÜR form line with its annual total.
type LineSum struct {
	Line   int
	Amount decimal.Decimal
}

// EUeR is the annual cash-basis profit calculation.
type EUeR struct {
	Year         int
	IncomeLines  []LineSum // ascending by line number
	ExpenseLines []LineSum
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Gewinn       decimal.Decimal // negative = loss
	NoData       bool
}

// BuildEUeR sums a year's records into their EÜR form lines via the
// category table; unknown categories land on the residual line.
func BuildEUeR(year int, records []model.LedgerRecord) EUeR {
	out := EUeR{Year: year}
	p := period.Year(year)

	income := map[int]decimal.Decimal{}
	expense := map[int]decimal.Decimal{}
	matched := 0

	for _, r := range records {
		if !p.Contains(r.Date) {
			continue
		}
		matched++

		line := classify.EuerLine(r.Category)
		switch r.Type {
		case model.RecordIncome:
			income[line] = income[line].Add(r.Net)
			out.TotalIncome = out.TotalIncome.Add(r.Net)
		case model.RecordExpense:
			net := r.DeductibleNet()
			expense[line] = expense[line].Add(net)
			out.TotalExpense = out.TotalExpense.Add(net)
		}
	}

	out.NoData = matched == 0
	out.IncomeLines = sortedLines(income)
	out.ExpenseLines = sortedLines(expense)
	out.Gewinn = out.TotalIncome.Sub(out.TotalExpense)
	return out
}

func sortedLines(byLine map[int]decimal.Decimal) []LineSum {
	lines := make([]int, 0, len(byLine))
	for l := range byLine {
		lines = append(lines, l)
	}
	sort.Ints(lines)

	sums := make([]LineSum, 0, len(lines))
	for _, l := range lines {
		sums = append(sums, LineSum{Line: l, Amount: byLine[l]})
	}
	return sums
}
