package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fiskal-dev/fiskal/internal/classify"
	"github.com/fiskal-dev/fiskal/internal/model"
	"github.com/fiskal-dev/fiskal/internal/period"
)

// AccountBalance is one ledger account's aggregated debit/credit totals,
// either derived from records or fed in by an external store.
type AccountBalance struct {
	Account string // SKR03 account number as digits
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

// SuSaRow is one account row in the trial balance.
type SuSaRow struct {
	Account string
	Debit   decimal.Decimal
	Credit  decimal.Decimal
	Balance decimal.Decimal // debit - credit
}

// SuSaGroup aggregates the rows of one SKR03 account group.
type SuSaGroup struct {
	Group   classify.AccountGroup
	Rows    []SuSaRow
	Debit   decimal.Decimal
	Credit  decimal.Decimal
	Balance decimal.Decimal
}

// SuSa is the trial balance (Summen- und Saldenliste) for a period.
// Empty distinguishes "no non-zero accounts at all" from a report whose
// totals merely cancel to zero.
type SuSa struct {
	Period       period.Period
	Groups       []SuSaGroup // in classify.GroupOrder, empty groups omitted
	TotalDebit   decimal.Decimal
	TotalCredit  decimal.Decimal
	TotalBalance decimal.Decimal
	Empty        bool
}

// BalancesFromRecords derives per-account debit/credit totals from a
// period's records: expenses post as debits, income as credits, net
// amounts. Records without an account number collect under "".
func BalancesFromRecords(p period.Period, records []model.LedgerRecord) []AccountBalance {
	byAccount := map[string]*AccountBalance{}
	var order []string

	for _, r := range records {
		if !p.Contains(r.Date) {
			continue
		}
		b, ok := byAccount[r.Account]
		if !ok {
			b = &AccountBalance{Account: r.Account}
			byAccount[r.Account] = b
			order = append(order, r.Account)
		}
		switch r.Type {
		case model.RecordExpense:
			b.Debit = b.Debit.Add(r.DeductibleNet())
		case model.RecordIncome:
			b.Credit = b.Credit.Add(r.Net)
		}
	}

	sort.Strings(order)
	balances := make([]AccountBalance, 0, len(order))
	for _, acct := range order {
		balances = append(balances, *byAccount[acct])
	}
	return balances
}

// BuildSuSa groups account balances into the four SKR03 ranges plus the
// residual group, always in declaration order. Accounts with zero debit
// and zero credit are excluded entirely.
func BuildSuSa(p period.Period, balances []AccountBalance) SuSa {
	out := SuSa{Period: p}

	grouped := map[classify.AccountGroup][]SuSaRow{}
	for _, b := range balances {
		if b.Debit.IsZero() && b.Credit.IsZero() {
			continue
		}
		row := SuSaRow{
			Account: b.Account,
			Debit:   b.Debit,
			Credit:  b.Credit,
			Balance: b.Debit.Sub(b.Credit),
		}
		g := classify.AccountGroupOf(b.Account)
		grouped[g] = append(grouped[g], row)
	}

	for _, g := range classify.GroupOrder {
		rows := grouped[g]
		if len(rows) == 0 {
			continue
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].Account < rows[j].Account })

		group := SuSaGroup{Group: g, Rows: rows}
		for _, row := range rows {
			group.Debit = group.Debit.Add(row.Debit)
			group.Credit = group.Credit.Add(row.Credit)
		}
		group.Balance = group.Debit.Sub(group.Credit)

		out.TotalDebit = out.TotalDebit.Add(group.Debit)
		out.TotalCredit = out.TotalCredit.Add(group.Credit)
		out.Groups = append(out.Groups, group)
	}

	out.TotalBalance = out.TotalDebit.Sub(out.TotalCredit)
	out.Empty = len(out.Groups) == 0
	return out
}
