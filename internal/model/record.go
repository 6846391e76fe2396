package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordType distinguishes income from expense entries.
type RecordType string

const (
	RecordIncome  RecordType = "income"
	RecordExpense RecordType = "expense"
)

// LedgerRecord is a single classified income or expense entry as read
// from records.csv. Amounts are net; gross is derived via the vat package.
type LedgerRecord struct {
	ID            string
	Date          time.Time
	Type          RecordType
	Category      string          // income or expense category code, e.g. "fremdleistungen"
	Account       string          // SKR03 account number as digits, may be empty
	Description   string          //nolint:revive // plain field name is clearest
	Net           decimal.Decimal // negative = credit note / refund
	VatRate       int             // percent: 0, 7 or 19
	ClientVatID   string          // EU VAT ID for ZM reporting, may be empty
	DeductiblePct decimal.Decimal // 0-100; business share of a mixed expense
}

// DeductibleNet returns the business share of the net amount.
// A zero percentage means the record predates mixed-use tracking and is
// treated as fully deductible.
func (r LedgerRecord) DeductibleNet() decimal.Decimal {
	return r.ScaleDeductible(r.Net)
}

// ScaleDeductible applies the record's deductible percentage to an amount,
// rounded to two decimal places. Used for both net and VAT shares.
func (r LedgerRecord) ScaleDeductible(d decimal.Decimal) decimal.Decimal {
	if r.DeductiblePct.IsZero() {
		return d
	}
	hundred := decimal.NewFromInt(100)
	return d.Mul(r.DeductiblePct).Div(hundred).Round(2)
}
