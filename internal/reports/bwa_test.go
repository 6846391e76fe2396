package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiskal-dev/fiskal/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func income(y, m int, category, net string, rate int) model.LedgerRecord {
	return model.LedgerRecord{
		Date:     date(y, m, 15),
		Type:     model.RecordIncome,
		Category: category,
		Net:      dec(net),
		VatRate:  rate,
	}
}

func expense(y, m int, category, net string, rate int) model.LedgerRecord {
	return model.LedgerRecord{
		Date:     date(y, m, 15),
		Type:     model.RecordExpense,
		Category: category,
		Net:      dec(net),
		VatRate:  rate,
	}
}

func TestBuildBWAYearTotals(t *testing.T) {
	// Two active months, ten empty ones.
	records := []model.LedgerRecord{
		income(2025, 3, "erloese_19", "5000", 19),
		expense(2025, 3, "miete", "3000", 19),
		income(2025, 8, "erloese_19", "5000", 19),
		expense(2025, 8, "miete", "3000", 19),
	}

	bwa := BuildBWA(2025, records)

	assert.False(t, bwa.NoData)
	assert.True(t, bwa.Total.TotalIncome.Equal(dec("10000")))
	assert.True(t, bwa.Total.TotalExpense.Equal(dec("6000")))
	assert.True(t, bwa.Total.Profit.Equal(dec("4000")))
	assert.True(t, bwa.Total.MarginPct.Equal(dec("40")), "margin = %s", bwa.Total.MarginPct)
}

func TestBuildBWAMonthRows(t *testing.T) {
	records := []model.LedgerRecord{
		income(2025, 3, "erloese_19", "5000", 19),
		expense(2025, 3, "miete", "3000", 19),
	}

	bwa := BuildBWA(2025, records)

	march := bwa.Months[2]
	assert.True(t, march.TotalIncome.Equal(dec("5000")))
	assert.True(t, march.Profit.Equal(dec("2000")))
	assert.True(t, march.MarginPct.Equal(dec("40")))

	// An empty month carries explicit zeros for every observed category.
	april := bwa.Months[3]
	assert.True(t, april.TotalIncome.IsZero())
	assert.True(t, april.MarginPct.IsZero(), "margin is 0 when income is 0")
	require.Contains(t, april.Income, "erloese_19")
	assert.True(t, april.Income["erloese_19"].IsZero())
	require.Contains(t, april.Expense, "miete")
}

func TestBuildBWACategoryUnion(t *testing.T) {
	records := []model.LedgerRecord{
		income(2025, 1, "erloese_19", "100", 19),
		income(2025, 6, "erloese_7", "200", 7),
		expense(2025, 12, "telefon", "50", 19),
	}

	bwa := BuildBWA(2025, records)

	assert.Equal(t, []string{"erloese_19", "erloese_7"}, bwa.IncomeCategories)
	assert.Equal(t, []string{"telefon"}, bwa.ExpenseCategories)
}

func TestBuildBWAIdempotent(t *testing.T) {
	records := []model.LedgerRecord{
		income(2025, 3, "erloese_19", "5000", 19),
		expense(2025, 3, "miete", "3000", 19),
		income(2025, 8, "erloese_7", "123.45", 7),
	}

	first := BuildBWA(2025, records)
	second := BuildBWA(2025, records)
	assert.Equal(t, first, second)
}

func TestBuildBWAIgnoresOtherYears(t *testing.T) {
	records := []model.LedgerRecord{
		income(2024, 12, "erloese_19", "999", 19),
		income(2025, 1, "erloese_19", "100", 19),
	}

	bwa := BuildBWA(2025, records)
	assert.True(t, bwa.Total.TotalIncome.Equal(dec("100")))
}

func TestBuildBWANoData(t *testing.T) {
	bwa := BuildBWA(2025, nil)
	assert.True(t, bwa.NoData)
	assert.True(t, bwa.Total.TotalIncome.IsZero())
}

func TestBuildBWADeductiblePct(t *testing.T) {
	r := expense(2025, 2, "telefon", "100", 19)
	r.DeductiblePct = dec("50")

	bwa := BuildBWA(2025, []model.LedgerRecord{r})
	assert.True(t, bwa.Total.TotalExpense.Equal(dec("50")))
}
