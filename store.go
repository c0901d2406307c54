package screener

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
)

// Store holds the records of a single dataset, in ingestion order, and the
// default criteria used to screen them.
//
// A Store is read-only once Load has returned, it can then be safely shared.
// Load must not be called concurrently with any other method.
type Store struct {
	criteria Criteria
	records  []Record
	warnings []*RowError
}

// NewStore creates an empty store, screening with 'c' by default.
func NewStore(c Criteria) *Store {
	return &Store{criteria: c}
}

// Criteria returns the default criteria of the store.
func (s *Store) Criteria() Criteria { return s.criteria }

// Len returns the number of loaded records.
func (s *Store) Len() int { return len(s.records) }

// Records returns all loaded records in ingestion order.
func (s *Store) Records() []Record { return slices.Clone(s.records) }

// Warnings returns the rows skipped during the last load.
func (s *Store) Warnings() []*RowError { return slices.Clone(s.warnings) }

// Load decodes records from 'r' and replaces the store content with them.
//
// See Decode for the format. On error, the store content is left untouched,
// but warnings are still updated.
func (s *Store) Load(r io.Reader) (int, error) {
	records, warnings, err := Decode(r)
	s.warnings = warnings
	if err != nil {
		return 0, err
	}
	s.records = records
	return len(records), nil
}

// LoadFile loads the file at 'path' into the store.
//
// It returns an error matching ErrNotFound if the file does not exist, and
// ErrIO if it cannot be read.
func (s *Store) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("input %q: %w: %w", path, ErrNotFound, err)
	}
	if err != nil {
		return 0, fmt.Errorf("input %q: %w: %w", path, ErrIO, err)
	}
	defer f.Close()

	n, err := s.Load(f)
	if err != nil {
		return 0, fmt.Errorf("input %q: %w", path, err)
	}
	return n, nil
}

// Filter returns the records meeting the store criteria, best valuation first.
// Options override the store criteria for this call only.
func (s *Store) Filter(opts ...Option) []Record {
	return Filter(s.records, s.criteria.apply(opts...))
}

// Ranked returns all records, best valuation first.
func (s *Store) Ranked() []Record {
	return Rank(s.records)
}

// Statistics summarizes all loaded records, regardless of any criteria.
func (s *Store) Statistics() (Statistics, bool) {
	return Summarize(s.records)
}

// Report returns the screening report for the store criteria overridden by 'opts'.
func (s *Store) Report(opts ...Option) *Report {
	c := s.criteria.apply(opts...)
	return &Report{
		Criteria: c,
		Analyzed: len(s.records),
		Records:  Filter(s.records, c),
	}
}
