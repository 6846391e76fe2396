package elster

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiskal-dev/fiskal/internal/model"
	"github.com/fiskal-dev/fiskal/internal/period"
)

// fakeService scripts the three filing calls.
type fakeService struct {
	validateResult ValidationResult
	validateErr    error
	generateResult GenerationResult
	generateErr    error
	updateErr      error

	validateCalls int
	generateCalls int
	updateCalls   int
	lastUpdateID  string
	lastUpdate    StatusUpdate
}

func (f *fakeService) Validate(_ context.Context, _ model.SubmissionType, _ period.Period) (ValidationResult, error) {
	f.validateCalls++
	return f.validateResult, f.validateErr
}

func (f *fakeService) Generate(_ context.Context, _ model.SubmissionType, _ period.Period, _ bool) (GenerationResult, error) {
	f.generateCalls++
	return f.generateResult, f.generateErr
}

func (f *fakeService) UpdateStatus(_ context.Context, id string, update StatusUpdate) error {
	f.updateCalls++
	f.lastUpdateID = id
	f.lastUpdate = update
	return f.updateErr
}

type memRecorder struct {
	rows []model.SubmissionRecord
}

func (m *memRecorder) Append(rec model.SubmissionRecord) error {
	m.rows = append(m.rows, rec)
	return nil
}

func validService() *fakeService {
	return &fakeService{
		validateResult: ValidationResult{Valid: true},
		generateResult: GenerationResult{
			Submission: model.SubmissionRecord{ID: "sub-1", Status: model.StatusDraft},
			XML:        "<Anmeldungssteuern/>",
		},
	}
}

func newTestWorkflow(t *testing.T, svc FilingService, rec Recorder) *Workflow {
	t.Helper()
	w, err := NewWorkflow(svc, rec, model.SubmissionUStVA, period.Quarter(2025, 3), true)
	require.NoError(t, err)
	return w
}

func TestWorkflowHappyPath(t *testing.T) {
	svc := validService()
	rec := &memRecorder{}
	w := newTestWorkflow(t, svc, rec)
	ctx := context.Background()

	assert.Equal(t, StateReview, w.State())

	result, err := w.Validate(ctx)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, StateValidated, w.State())

	gen, err := w.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sub-1", gen.Submission.ID)
	assert.Equal(t, StateGenerated, w.State())

	require.NoError(t, w.Confirm(ctx, "et-42"))
	assert.Equal(t, StateConfirmed, w.State())
	assert.Equal(t, "sub-1", svc.lastUpdateID)
	assert.Equal(t, model.StatusSubmitted, svc.lastUpdate.Status)
	assert.Equal(t, "et-42", svc.lastUpdate.TransferTicket)

	// Audit trail: one row on generate, one on confirm.
	require.Len(t, rec.rows, 2)
	assert.Equal(t, model.StatusValidated, rec.rows[0].Status)
	assert.Equal(t, "2025-Q3", rec.rows[0].PeriodKey)
	assert.Equal(t, model.StatusSubmitted, rec.rows[1].Status)
	assert.Equal(t, "et-42", rec.rows[1].TransferTicket)
	assert.True(t, rec.rows[1].TestMode)
}

func TestWorkflowInvalidStillTransitions(t *testing.T) {
	svc := validService()
	svc.validateResult = ValidationResult{
		Valid:  false,
		Errors: []string{"Steuernummer fehlt"},
	}
	w := newTestWorkflow(t, svc, nil)

	result, err := w.Validate(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Valid)
	// Transition happens anyway so the errors can be displayed.
	assert.Equal(t, StateValidated, w.State())
	require.NotNil(t, w.Validation())
	assert.Equal(t, []string{"Steuernummer fehlt"}, w.Validation().Errors)
}

func TestWorkflowGenerateRefusedWhileInvalid(t *testing.T) {
	svc := validService()
	svc.validateResult = ValidationResult{Valid: false, Errors: []string{"nope"}}
	w := newTestWorkflow(t, svc, nil)
	ctx := context.Background()

	_, err := w.Validate(ctx)
	require.NoError(t, err)

	_, err = w.Generate(ctx)
	require.ErrorIs(t, err, ErrNotValid)
	// State unchanged, the service was never asked to generate.
	assert.Equal(t, StateValidated, w.State())
	assert.Zero(t, svc.generateCalls)
}

func TestWorkflowValidateServiceError(t *testing.T) {
	svc := validService()
	svc.validateErr = errors.New("connection refused")
	w := newTestWorkflow(t, svc, nil)

	_, err := w.Validate(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateReview, w.State())
	assert.Nil(t, w.Validation())
}

func TestWorkflowGenerateRetrySafe(t *testing.T) {
	svc := validService()
	svc.generateErr = errors.New("timeout")
	w := newTestWorkflow(t, svc, nil)
	ctx := context.Background()

	_, err := w.Validate(ctx)
	require.NoError(t, err)

	_, err = w.Generate(ctx)
	require.Error(t, err)
	assert.Equal(t, StateValidated, w.State())

	// Service recovers; the retry succeeds from the same state.
	svc.generateErr = nil
	_, err = w.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateGenerated, w.State())
}

func TestWorkflowConfirmFailureStaysGenerated(t *testing.T) {
	svc := validService()
	w := newTestWorkflow(t, svc, nil)
	ctx := context.Background()

	_, err := w.Validate(ctx)
	require.NoError(t, err)
	_, err = w.Generate(ctx)
	require.NoError(t, err)

	svc.updateErr = errors.New("gateway timeout")
	err = w.Confirm(ctx, "")
	require.Error(t, err)
	// No automatic retry: exactly one call went out, the user decides.
	assert.Equal(t, 1, svc.updateCalls)
	assert.Equal(t, StateGenerated, w.State())
}

func TestWorkflowTransitionOrderEnforced(t *testing.T) {
	svc := validService()
	w := newTestWorkflow(t, svc, nil)
	ctx := context.Background()

	_, err := w.Generate(ctx)
	require.ErrorIs(t, err, ErrTransition)
	err = w.Confirm(ctx, "")
	require.ErrorIs(t, err, ErrTransition)

	_, err = w.Validate(ctx)
	require.NoError(t, err)
	// Validate is not repeatable from validated.
	_, err = w.Validate(ctx)
	require.ErrorIs(t, err, ErrTransition)
}

func TestWorkflowReset(t *testing.T) {
	svc := validService()
	rec := &memRecorder{}
	w := newTestWorkflow(t, svc, rec)
	ctx := context.Background()

	_, err := w.Validate(ctx)
	require.NoError(t, err)
	w.Reset()

	assert.Equal(t, StateReview, w.State())
	assert.Nil(t, w.Validation())
	assert.Nil(t, w.Result())
	// An abandoned attempt persists nothing.
	assert.Empty(t, rec.rows)

	// The workflow is usable again after a reset.
	_, err = w.Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateValidated, w.State())
}
