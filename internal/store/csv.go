// Package store reads and writes the year-partitioned CSV files that
// hold ledger records and assets, and the append-only submissions log.
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fiskal-dev/fiskal/internal/model"
)

// RecordHeader is the CSV header for records.csv.
const RecordHeader = "id,date,type,category,account,description,net,vat_rate,client_vat_id,deductible_pct"

const (
	recordFields  = 10
	dateFormat    = "2006-01-02"
	colID         = 0
	colDate       = 1
	colType       = 2
	colCategory   = 3
	colAccount    = 4
	colDesc       = 5
	colNet        = 6
	colRate       = 7
	colVatID      = 8
	colDeductible = 9
)

// ReadRecords reads all ledger records from a records.csv reader.
func ReadRecords(r io.Reader) ([]model.LedgerRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = recordFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading records CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// Skip header row.
	var records []model.LedgerRecord
	for i, row := range rows[1:] {
		rec, err := UnmarshalRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteRecords writes records to a records.csv writer (including header).
func WriteRecords(w io.Writer, records []model.LedgerRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(RecordHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalRecord converts a LedgerRecord to a CSV row.
func MarshalRecord(rec model.LedgerRecord) []string {
	row := make([]string, recordFields)
	row[colID] = rec.ID
	row[colDate] = rec.Date.Format(dateFormat)
	row[colType] = string(rec.Type)
	row[colCategory] = rec.Category
	row[colAccount] = rec.Account
	row[colDesc] = rec.Description
	row[colNet] = rec.Net.StringFixed(2)
	row[colRate] = strconv.Itoa(rec.VatRate)
	row[colVatID] = rec.ClientVatID
	if !rec.DeductiblePct.IsZero() {
		row[colDeductible] = rec.DeductiblePct.String()
	}
	return row
}

// UnmarshalRecord converts a CSV row to a LedgerRecord.
func UnmarshalRecord(row []string) (model.LedgerRecord, error) {
	if len(row) != recordFields {
		return model.LedgerRecord{}, fmt.Errorf("expected %d fields, got %d", recordFields, len(row))
	}

	date, err := time.Parse(dateFormat, row[colDate])
	if err != nil {
		return model.LedgerRecord{}, fmt.Errorf("parsing date %q: %w", row[colDate], err)
	}

	net, err := decimal.NewFromString(row[colNet])
	if err != nil {
		return model.LedgerRecord{}, fmt.Errorf("parsing net %q: %w", row[colNet], err)
	}

	rate, err := strconv.Atoi(row[colRate])
	if err != nil {
		return model.LedgerRecord{}, fmt.Errorf("parsing vat_rate %q: %w", row[colRate], err)
	}

	var deductible decimal.Decimal
	if row[colDeductible] != "" {
		deductible, err = decimal.NewFromString(row[colDeductible])
		if err != nil {
			return model.LedgerRecord{}, fmt.Errorf("parsing deductible_pct %q: %w", row[colDeductible], err)
		}
	}

	return model.LedgerRecord{
		ID:            row[colID],
		Date:          date,
		Type:          model.RecordType(row[colType]),
		Category:      row[colCategory],
		Account:       row[colAccount],
		Description:   row[colDesc],
		Net:           net,
		VatRate:       rate,
		ClientVatID:   row[colVatID],
		DeductiblePct: deductible,
	}, nil
}
