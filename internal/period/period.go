// Package period identifies the reporting window records are aggregated
// over: a year, optionally narrowed to a quarter or a calendar month.
package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period bounds which records a report covers. Quarter and Month are
// mutually exclusive; both zero means the full year.
type Period struct {
	Year    int
	Quarter int // 1-4, 0 if unset
	Month   int // 1-12, 0 if unset
}

// Year returns a full-year period.
func Year(year int) Period {
	return Period{Year: year}
}

// Quarter returns a quarterly period.
func Quarter(year, quarter int) Period {
	return Period{Year: year, Quarter: quarter}
}

// Month returns a monthly period.
func Month(year, month int) Period {
	return Period{Year: year, Month: month}
}

// Key formats a period as "2025", "2025-Q3" or "2025-11".
func (p Period) Key() string {
	switch {
	case p.Quarter != 0:
		return fmt.Sprintf("%04d-Q%d", p.Year, p.Quarter)
	case p.Month != 0:
		return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
	default:
		return fmt.Sprintf("%04d", p.Year)
	}
}

// Parse parses a period key like "2025", "2025-Q3" or "2025-11".
func Parse(key string) (Period, error) {
	yearPart, rest, hasRest := strings.Cut(key, "-")

	year, err := strconv.Atoi(yearPart)
	if err != nil || year < 1 {
		return Period{}, fmt.Errorf("invalid year in period key %q", key)
	}

	if !hasRest {
		return Period{Year: year}, nil
	}

	if q, ok := strings.CutPrefix(rest, "Q"); ok {
		quarter, err := strconv.Atoi(q)
		if err != nil || quarter < 1 || quarter > 4 {
			return Period{}, fmt.Errorf("invalid quarter in period key %q", key)
		}
		return Period{Year: year, Quarter: quarter}, nil
	}

	month, err := strconv.Atoi(rest)
	if err != nil || month < 1 || month > 12 {
		return Period{}, fmt.Errorf("invalid month in period key %q", key)
	}
	return Period{Year: year, Month: month}, nil
}

// Contains reports whether a date falls inside the period.
func (p Period) Contains(t time.Time) bool {
	if t.Year() != p.Year {
		return false
	}
	month := int(t.Month())
	switch {
	case p.Quarter != 0:
		return (month-1)/3+1 == p.Quarter
	case p.Month != 0:
		return month == p.Month
	default:
		return true
	}
}

// Validate checks the period's fields are in range.
func (p Period) Validate() error {
	if p.Year < 1 {
		return fmt.Errorf("invalid year %d", p.Year)
	}
	if p.Quarter != 0 && p.Month != 0 {
		return fmt.Errorf("period %q sets both quarter and month", p.Key())
	}
	if p.Quarter < 0 || p.Quarter > 4 {
		return fmt.Errorf("invalid quarter %d", p.Quarter)
	}
	if p.Month < 0 || p.Month > 12 {
		return fmt.Errorf("invalid month %d", p.Month)
	}
	return nil
}
