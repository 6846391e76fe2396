package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fiskal-dev/fiskal/internal/model"
)

// Service reads the year-partitioned record and asset files under a
// repository root: records/<year>/records.csv and records/<year>/assets.csv.
type Service struct {
	repoRoot string
}

// NewService creates a store Service rooted at repoRoot.
func NewService(repoRoot string) *Service {
	return &Service{repoRoot: repoRoot}
}

// ReadYear reads all ledger records for a year. A missing file is an
// empty year, not an error.
func (s *Service) ReadYear(year int) ([]model.LedgerRecord, error) {
	path := s.recordsPath(year)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening records %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("reading records %s: %w", path, err)
	}

	if verrs := ValidateRecords(records); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return nil, fmt.Errorf("invalid records in %s: %s", path, strings.Join(msgs, "; "))
	}
	return records, nil
}

// ReadYearAssets reads all assets purchased up to and including a year,
// schedules included. A missing file is an empty list.
func (s *Service) ReadYearAssets(year int) ([]model.AssetRecord, error) {
	path := s.assetsPath(year)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening assets %s: %w", path, err)
	}
	defer f.Close()

	assets, err := ReadAssets(f)
	if err != nil {
		return nil, fmt.Errorf("reading assets %s: %w", path, err)
	}
	return assets, nil
}

// SaveYear writes a year's records, creating the directory if needed.
func (s *Service) SaveYear(year int, records []model.LedgerRecord) error {
	if verrs := ValidateRecords(records); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("refusing to save invalid records: %s", strings.Join(msgs, "; "))
	}

	path := s.recordsPath(year)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating records dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating records file: %w", err)
	}
	defer f.Close()

	if err := WriteRecords(f, records); err != nil {
		return fmt.Errorf("writing records %s: %w", path, err)
	}
	return nil
}

// SaveYearAssets writes a year's asset list.
func (s *Service) SaveYearAssets(year int, assets []model.AssetRecord) error {
	path := s.assetsPath(year)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating records dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating assets file: %w", err)
	}
	defer f.Close()

	if err := WriteAssets(f, assets); err != nil {
		return fmt.Errorf("writing assets %s: %w", path, err)
	}
	return nil
}

func (s *Service) recordsPath(year int) string {
	return filepath.Join(s.repoRoot, "records", fmt.Sprintf("%04d", year), "records.csv")
}

func (s *Service) assetsPath(year int) string {
	return filepath.Join(s.repoRoot, "records", fmt.Sprintf("%04d", year), "assets.csv")
}
