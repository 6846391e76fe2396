package model

import "time"

// SubmissionType identifies which filing a submission carries.
type SubmissionType string

const (
	SubmissionUStVA SubmissionType = "ustva" // VAT pre-declaration
	SubmissionZM    SubmissionType = "zm"    // EU sales list
	SubmissionEUeR  SubmissionType = "euer"  // annual profit statement
)

// SubmissionStatus is the storage-side lifecycle of one filing attempt.
type SubmissionStatus string

const (
	StatusDraft     SubmissionStatus = "draft"
	StatusValidated SubmissionStatus = "validated"
	StatusSubmitted SubmissionStatus = "submitted"
	StatusAccepted  SubmissionStatus = "accepted"
	StatusRejected  SubmissionStatus = "rejected"
)

// SubmissionRecord is one filing attempt. Records are never deleted,
// only superseded by a new attempt for the same period.
type SubmissionRecord struct {
	ID             string
	Type           SubmissionType
	PeriodKey      string // e.g. "2025-Q3"
	Status         SubmissionStatus
	Payload        string // generated filing XML, opaque to this core
	TransferTicket string // authority-issued, set on confirm
	TestMode       bool
	CreatedAt      time.Time
}
