package elster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/fiskal-dev/fiskal/internal/logger"
	"github.com/fiskal-dev/fiskal/internal/model"
	"github.com/fiskal-dev/fiskal/internal/period"
)

// Client is the HTTP implementation of FilingService. It performs no
// retries; timeout and cancellation come in via the context and the
// supplied http.Client.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a filing service client. A nil httpClient uses
// http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		log:     logger.WithComponent("elster-client"),
	}
}

type filingRequest struct {
	Type       model.SubmissionType `json:"type"`
	Year       int                  `json:"year"`
	Period     int                  `json:"period"`
	PeriodType string               `json:"periodType"`
	TestMode   bool                 `json:"testMode,omitempty"`
}

func newFilingRequest(subType model.SubmissionType, p period.Period, testMode bool) filingRequest {
	req := filingRequest{Type: subType, Year: p.Year, PeriodType: "year", TestMode: testMode}
	switch {
	case p.Quarter != 0:
		req.Period = p.Quarter
		req.PeriodType = "quarter"
	case p.Month != 0:
		req.Period = p.Month
		req.PeriodType = "month"
	}
	return req
}

// Validate calls POST /validate.
func (c *Client) Validate(ctx context.Context, subType model.SubmissionType, p period.Period) (ValidationResult, error) {
	c.log.Debug().Str("type", string(subType)).Str("period", p.Key()).Msg("validating filing")

	var result ValidationResult
	if err := c.post(ctx, "/validate", newFilingRequest(subType, p, false), &result); err != nil {
		return ValidationResult{}, fmt.Errorf("validate %s %s: %w", subType, p.Key(), err)
	}
	return result, nil
}

// Generate calls POST /generate.
func (c *Client) Generate(ctx context.Context, subType model.SubmissionType, p period.Period, testMode bool) (GenerationResult, error) {
	c.log.Debug().Str("type", string(subType)).Str("period", p.Key()).Bool("test_mode", testMode).Msg("generating filing")

	var result GenerationResult
	if err := c.post(ctx, "/generate", newFilingRequest(subType, p, testMode), &result); err != nil {
		return GenerationResult{}, fmt.Errorf("generate %s %s: %w", subType, p.Key(), err)
	}
	return result, nil
}

// UpdateStatus calls POST /submissions/{id}/status.
func (c *Client) UpdateStatus(ctx context.Context, submissionID string, update StatusUpdate) error {
	c.log.Debug().Str("submission_id", submissionID).Str("status", string(update.Status)).Msg("updating submission status")

	path := "/submissions/" + url.PathEscape(submissionID) + "/status"
	if err := c.post(ctx, path, update, nil); err != nil {
		return fmt.Errorf("update status of %s: %w", submissionID, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling filing service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("filing service returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
