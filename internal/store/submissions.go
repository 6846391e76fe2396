package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fiskal-dev/fiskal/internal/model"
)

// SubmissionHeader is the CSV header for the append-only submissions log.
// The log is an audit trail: attempts are appended and never rewritten,
// so a superseding attempt simply appears as a later row for the period.
const SubmissionHeader = "timestamp,id,type,period,status,transfer_ticket,test_mode"

const (
	submissionFields = 7
	submissionsFile  = "logs/submissions.csv"
	colSubTimestamp  = 0
	colSubID         = 1
	colSubType       = 2
	colSubPeriod     = 3
	colSubStatus     = 4
	colSubTicket     = 5
	colSubTestMode   = 6
)

// SubmissionLog appends submission attempts to <repoRoot>/logs/submissions.csv.
type SubmissionLog struct {
	repoRoot string
}

// NewSubmissionLog creates a log rooted at repoRoot.
func NewSubmissionLog(repoRoot string) *SubmissionLog {
	return &SubmissionLog{repoRoot: repoRoot}
}

// Append writes one submission record, creating the file and header if needed.
func (l *SubmissionLog) Append(rec model.SubmissionRecord) error {
	dir := filepath.Join(l.repoRoot, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(l.repoRoot, submissionsFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening submissions log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(SubmissionHeader, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	row := make([]string, submissionFields)
	row[colSubTimestamp] = rec.CreatedAt.Format(time.RFC3339)
	row[colSubID] = rec.ID
	row[colSubType] = string(rec.Type)
	row[colSubPeriod] = rec.PeriodKey
	row[colSubStatus] = string(rec.Status)
	row[colSubTicket] = rec.TransferTicket
	row[colSubTestMode] = strconv.FormatBool(rec.TestMode)
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("writing submission row: %w", err)
	}

	return cw.Error()
}

// Read returns all logged submission attempts, oldest first. A missing
// log file yields an empty slice.
func (l *SubmissionLog) Read() ([]model.SubmissionRecord, error) {
	path := filepath.Join(l.repoRoot, submissionsFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening submissions log: %w", err)
	}
	defer f.Close()

	return readSubmissions(f)
}

func readSubmissions(r io.Reader) ([]model.SubmissionRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = submissionFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading submissions CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var recs []model.SubmissionRecord
	for i, row := range rows[1:] {
		ts, err := time.Parse(time.RFC3339, row[colSubTimestamp])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing timestamp %q: %w", i+2, row[colSubTimestamp], err)
		}
		testMode, err := strconv.ParseBool(row[colSubTestMode])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing test_mode %q: %w", i+2, row[colSubTestMode], err)
		}
		recs = append(recs, model.SubmissionRecord{
			ID:             row[colSubID],
			Type:           model.SubmissionType(row[colSubType]),
			PeriodKey:      row[colSubPeriod],
			Status:         model.SubmissionStatus(row[colSubStatus]),
			TransferTicket: row[colSubTicket],
			TestMode:       testMode,
			CreatedAt:      ts,
		})
	}
	return recs, nil
}
