// Package elster drives the preparation and submission of official tax
// filings. The actual validation, XML generation and status bookkeeping
// live in an external filing service; this package holds the client for
// it and the workflow state machine that sequences the calls.
package elster

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fiskal-dev/fiskal/internal/model"
	"github.com/fiskal-dev/fiskal/internal/period"
)

// ValidationResult is the outcome of the external validation call.
// Valid is false while Errors is non-empty; Warnings never block.
type ValidationResult struct {
	Valid    bool                       `json:"valid"`
	Errors   []string                   `json:"errors"`
	Warnings []string                   `json:"warnings"`
	TaxData  map[string]decimal.Decimal `json:"taxData"`
}

// GenerationResult is the outcome of the external generation call: the
// persisted submission record plus the opaque filing payload.
type GenerationResult struct {
	Submission model.SubmissionRecord     `json:"submission"`
	XML        string                     `json:"xml"`
	TaxData    map[string]decimal.Decimal `json:"taxData"`
}

// StatusUpdate mutates a persisted submission's status.
type StatusUpdate struct {
	Status         model.SubmissionStatus `json:"status"`
	TransferTicket string                 `json:"transferTicket,omitempty"`
}

// FilingService is the external ELSTER-facing service consumed by the
// workflow. Timeouts and retries are the transport's concern; a call
// either succeeds or returns an error with no partial effect assumed.
type FilingService interface {
	Validate(ctx context.Context, subType model.SubmissionType, p period.Period) (ValidationResult, error)
	Generate(ctx context.Context, subType model.SubmissionType, p period.Period, testMode bool) (GenerationResult, error)
	UpdateStatus(ctx context.Context, submissionID string, update StatusUpdate) error
}

// Recorder receives submission records for the local audit log.
type Recorder interface {
	Append(rec model.SubmissionRecord) error
}
