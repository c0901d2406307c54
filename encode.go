package screener

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Format is an export format.
type Format int

const (
	CSV  Format = iota // semicolon separated, same columns as the input plus the metrics
	JSON               // one JSON object per line
)

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses a format name: "csv", or "json" (also "jsonl").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv", "":
		return CSV, nil
	case "json", "jsonl":
		return JSON, nil
	default:
		return CSV, fmt.Errorf("unknown format %q, want csv or json", s)
	}
}

// FormatOf guesses the format from a file name extension, defaulting to CSV.
func FormatOf(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return CSV
	}
	return f
}

// Fixed formats 'v' with exactly two decimals, rounding half away from zero
// its shortest decimal representation. It is used by exports and displays alike.
//
// NaN and infinities, which decoded records never carry, are formatted as by strconv.
func Fixed(v float64) string {
	if !finite(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// fields returns the record values in the export column order.
func (r Record) fields() []string {
	return []string{
		r.Name(),
		r.Category(),
		Fixed(r.Price()),
		Fixed(r.EarningsPerUnit()),
		Fixed(r.IncomePerUnit()),
		Fixed(r.GrowthPercent()),
		Fixed(r.RiskScore()),
		Fixed(r.ReturnPct()),
		Fixed(r.ValuationScore()),
	}
}

// MarshalJSON writes the record as a JSON object using the export column
// names as keys, numbers being rounded to two decimals.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for i, v := range r.fields() {
		if i < 2 {
			w.Append(exportColumns[i], v)
			continue
		}
		w.Append(exportColumns[i], json.Number(v))
	}
	return w.MarshalJSON()
}

// EncodeCSV writes 'records' to 'w' in the semicolon separated format,
// including the derived roi and valuatie_index columns.
func EncodeCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	cw.Comma = Separator
	if err := cw.Write(exportColumns); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.fields()); err != nil {
			return fmt.Errorf("cannot write record %q: %w", r.Name(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeJSON writes 'records' to 'w' as JSON lines.
func EncodeJSON(w io.Writer, records []Record) error {
	for _, r := range records {
		data, err := r.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal record %q: %w", r.Name(), err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write record %q: %w", r.Name(), err)
		}
	}
	return nil
}

// Encode writes 'records' to 'w' in format 'f'.
func Encode(w io.Writer, f Format, records []Record) error {
	switch f {
	case CSV:
		return EncodeCSV(w, records)
	case JSON:
		return EncodeJSON(w, records)
	default:
		return fmt.Errorf("unsupported format %v", f)
	}
}

// SaveFile writes 'records' into the file at 'path' in format 'f'.
//
// Any failure to create or write the file matches ErrIO.
func SaveFile(path string, f Format, records []Record) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output %q: %w: %w", path, ErrIO, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("output %q: %w: %w", path, ErrIO, cerr)
		}
	}()

	if err := Encode(file, f, records); err != nil {
		return fmt.Errorf("output %q: %w: %w", path, ErrIO, err)
	}
	return nil
}
