package screener

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when the source does not exist.
	ErrNotFound = errors.New("not found")
	// ErrIO is returned when a source cannot be read or a destination cannot be written.
	ErrIO = errors.New("i/o error")
	// ErrNoRecords is returned when a source was read but none of its rows could be used.
	ErrNoRecords = errors.New("no usable records")
	// ErrNonPositivePrice is the reason for skipping a row whose price is not strictly positive.
	ErrNonPositivePrice = errors.New("price must be strictly positive")
	// ErrEmptyValue is the reason for skipping a row with an empty mandatory value.
	ErrEmptyValue = errors.New("empty value")
	// ErrNotFinite is the reason for skipping a row whose metrics overflow the float64 range.
	ErrNotFinite = errors.New("metrics are not finite")
)

// SchemaError reports that the header of a source lacks mandatory columns.
type SchemaError struct {
	Missing []string // mandatory columns not found
	Found   []string // columns found in the header
}

func (e *SchemaError) Error() string {
	if len(e.Found) == 0 {
		return fmt.Sprintf("empty header, required columns: %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("missing required columns: %s (found: %s)", strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}

// RowError is a warning about a row that has been skipped.
type RowError struct {
	Line int    // line number in the source, the header being line 1
	Name string // record name, if it could be read
	Err  error
}

func (e *RowError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("row %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("row %d (%q): %v", e.Line, e.Name, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
