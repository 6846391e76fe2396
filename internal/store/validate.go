package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fiskal-dev/fiskal/internal/model"
	"github.com/fiskal-dev/fiskal/internal/vat"
)

// ValidationError describes a single invariant violation on a record.
type ValidationError struct {
	Invariant int
	RecordID  string
	Reason    string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.RecordID, e.Reason)
}

var hundred = decimal.NewFromInt(100)

// ValidateRecords enforces 4 invariants on a set of ledger records:
// known record type, known VAT rate, deductible percentage in 0-100,
// and no more than two decimal places on the net amount.
func ValidateRecords(records []model.LedgerRecord) []ValidationError {
	var errs []ValidationError

	for _, r := range records {
		// Invariant 1: type is income or expense.
		if r.Type != model.RecordIncome && r.Type != model.RecordExpense {
			errs = append(errs, ValidationError{
				Invariant: 1,
				RecordID:  r.ID,
				Reason:    fmt.Sprintf("unknown record type %q", r.Type),
			})
		}

		// Invariant 2: VAT rate is one of the known rates.
		if !vat.ValidRate(r.VatRate) {
			errs = append(errs, ValidationError{
				Invariant: 2,
				RecordID:  r.ID,
				Reason:    fmt.Sprintf("unknown VAT rate %d", r.VatRate),
			})
		}

		// Invariant 3: deductible percentage within 0-100.
		if r.DeductiblePct.IsNegative() || r.DeductiblePct.GreaterThan(hundred) {
			errs = append(errs, ValidationError{
				Invariant: 3,
				RecordID:  r.ID,
				Reason:    fmt.Sprintf("deductible_pct %s outside 0-100", r.DeductiblePct),
			})
		}

		// Invariant 4: exact decimals, no more than 2 places.
		scaled := r.Net.Mul(hundred)
		if !scaled.Equal(scaled.Floor()) && !scaled.Equal(scaled.Ceil()) {
			errs = append(errs, ValidationError{
				Invariant: 4,
				RecordID:  r.ID,
				Reason:    fmt.Sprintf("net %s has more than 2 decimal places", r.Net),
			})
		}
	}

	return errs
}
