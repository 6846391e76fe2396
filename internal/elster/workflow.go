package elster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fiskal-dev/fiskal/internal/logger"
	"github.com/fiskal-dev/fiskal/internal/model"
	"github.com/fiskal-dev/fiskal/internal/period"
)

// State is the workflow stage of one submission attempt.
type State string

const (
	StateReview    State = "review"
	StateValidated State = "validated"
	StateGenerated State = "generated"
	StateConfirmed State = "confirmed"
)

var (
	// ErrTransition is returned when a transition is attempted from the
	// wrong state. The workflow's state is unchanged.
	ErrTransition = errors.New("invalid workflow transition")
	// ErrNotValid blocks generation while the stored validation result
	// carries blocking errors.
	ErrNotValid = errors.New("filing has blocking validation errors")
)

// Workflow sequences one filing attempt through
// review → validated → generated → confirmed. A workflow instance is
// confined to a single submission attempt and must not be driven
// concurrently; workflows for different periods are fully independent.
type Workflow struct {
	svc      FilingService
	recorder Recorder
	log      zerolog.Logger

	subType  model.SubmissionType
	period   period.Period
	testMode bool

	state      State
	validation *ValidationResult
	result     *GenerationResult
}

// NewWorkflow starts a workflow in the review state. The recorder may be
// nil, in which case no local audit rows are written.
func NewWorkflow(svc FilingService, recorder Recorder, subType model.SubmissionType, p period.Period, testMode bool) (*Workflow, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Workflow{
		svc:      svc,
		recorder: recorder,
		log:      logger.WithComponent("submission-workflow"),
		subType:  subType,
		period:   p,
		testMode: testMode,
		state:    StateReview,
	}, nil
}

// State returns the current workflow stage.
func (w *Workflow) State() State {
	return w.state
}

// Validation returns the stored validation result, nil before Validate.
func (w *Workflow) Validation() *ValidationResult {
	return w.validation
}

// Result returns the stored generation result, nil before Generate.
func (w *Workflow) Result() *GenerationResult {
	return w.result
}

// Validate performs review → validated. The transition happens even when
// the service reports the filing invalid, so the errors can be shown;
// Generate is refused until a later attempt validates cleanly. On a
// service error the workflow stays in review.
func (w *Workflow) Validate(ctx context.Context) (ValidationResult, error) {
	if w.state != StateReview {
		return ValidationResult{}, fmt.Errorf("%w: validate from %s", ErrTransition, w.state)
	}

	result, err := w.svc.Validate(ctx, w.subType, w.period)
	if err != nil {
		return ValidationResult{}, err
	}

	w.validation = &result
	w.state = StateValidated
	w.log.Info().
		Str("period", w.period.Key()).
		Bool("valid", result.Valid).
		Int("errors", len(result.Errors)).
		Int("warnings", len(result.Warnings)).
		Msg("filing validated")
	return result, nil
}

// Generate performs validated → generated, guarded on a clean validation
// result. On a service error the workflow stays in validated; the call
// is safe to retry.
func (w *Workflow) Generate(ctx context.Context) (GenerationResult, error) {
	if w.state != StateValidated {
		return GenerationResult{}, fmt.Errorf("%w: generate from %s", ErrTransition, w.state)
	}
	if !w.validation.Valid {
		return GenerationResult{}, ErrNotValid
	}

	result, err := w.svc.Generate(ctx, w.subType, w.period, w.testMode)
	if err != nil {
		return GenerationResult{}, err
	}

	w.result = &result
	w.state = StateGenerated
	w.record(result.Submission, model.StatusValidated, "")
	w.log.Info().
		Str("period", w.period.Key()).
		Str("submission_id", result.Submission.ID).
		Msg("filing generated")
	return result, nil
}

// Confirm performs generated → confirmed, marking the persisted
// submission as submitted with an optional transfer ticket. A failure
// leaves the workflow in generated and is never retried automatically:
// an ambiguous failure could mean the authority already accepted the
// filing, and a blind retry would double-submit.
func (w *Workflow) Confirm(ctx context.Context, transferTicket string) error {
	if w.state != StateGenerated {
		return fmt.Errorf("%w: confirm from %s", ErrTransition, w.state)
	}

	update := StatusUpdate{Status: model.StatusSubmitted, TransferTicket: transferTicket}
	if err := w.svc.UpdateStatus(ctx, w.result.Submission.ID, update); err != nil {
		return err
	}

	w.state = StateConfirmed
	w.record(w.result.Submission, model.StatusSubmitted, transferTicket)
	w.log.Info().
		Str("period", w.period.Key()).
		Str("submission_id", w.result.Submission.ID).
		Msg("filing confirmed")
	return nil
}

// Reset discards all in-memory state of an unconfirmed attempt and
// returns to review. Nothing is persisted; an abandoned attempt leaves
// no partial submission behind.
func (w *Workflow) Reset() {
	w.state = StateReview
	w.validation = nil
	w.result = nil
}

func (w *Workflow) record(sub model.SubmissionRecord, status model.SubmissionStatus, ticket string) {
	if w.recorder == nil {
		return
	}
	rec := sub
	rec.Type = w.subType
	rec.PeriodKey = w.period.Key()
	rec.Status = status
	rec.TestMode = w.testMode
	if ticket != "" {
		rec.TransferTicket = ticket
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if err := w.recorder.Append(rec); err != nil {
		// The audit log is best-effort; a write failure must not undo a
		// transition that already happened remotely.
		w.log.Warn().Err(err).Str("submission_id", rec.ID).Msg("appending submission log failed")
	}
}
