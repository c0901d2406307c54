package screener

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

// layout locates each known column in a source header. Absent columns are -1.
type layout struct {
	name, category, price, earnings, income, growth, risk int
}

// newLayout maps the header onto a layout, or returns a *SchemaError if a required column is missing.
func newLayout(header []string) (layout, error) {
	index := make(map[string]int, len(header))
	found := make([]string, 0, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if _, exists := index[h]; exists || h == "" {
			continue
		}
		index[h] = i
		found = append(found, h)
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		slices.Sort(found)
		return layout{}, &SchemaError{Missing: missing, Found: found}
	}

	col := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		return -1
	}
	return layout{
		name:     col(ColName),
		category: col(ColCategory),
		price:    col(ColPrice),
		earnings: col(ColEarnings),
		income:   col(ColIncome),
		growth:   col(ColGrowth),
		risk:     col(ColRisk),
	}, nil
}

// cell returns the trimmed value at column i, "" if the column is absent or the row is short.
func cell(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

// parseNumber parses a mandatory numeric value.
func parseNumber(column, s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%s: %w", column, ErrEmptyValue)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", column, s)
	}
	if !finite(v) {
		return 0, fmt.Errorf("%s: not a finite number %q", column, s)
	}
	return v, nil
}

// parseOptional parses an optional numeric value, returning def when it is empty.
func parseOptional(column, s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	return parseNumber(column, s)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// inputs converts a single row into validated Inputs.
func (l layout) inputs(fields []string) (in Inputs, err error) {
	in.Name = cell(fields, l.name)
	in.Category = cell(fields, l.category)
	if in.Name == "" {
		return in, fmt.Errorf("%s: %w", ColName, ErrEmptyValue)
	}
	if in.Price, err = parseNumber(ColPrice, cell(fields, l.price)); err != nil {
		return in, err
	}
	if in.EarningsPerUnit, err = parseNumber(ColEarnings, cell(fields, l.earnings)); err != nil {
		return in, err
	}
	if in.IncomePerUnit, err = parseOptional(ColIncome, cell(fields, l.income), 0); err != nil {
		return in, err
	}
	if in.GrowthPercent, err = parseOptional(ColGrowth, cell(fields, l.growth), 0); err != nil {
		return in, err
	}
	if in.RiskScore, err = parseOptional(ColRisk, cell(fields, l.risk), DefaultRiskScore); err != nil {
		return in, err
	}
	if in.Price <= 0 {
		return in, fmt.Errorf("%s %v: %w", ColPrice, in.Price, ErrNonPositivePrice)
	}
	return in, nil
}

// Decode reads records from 'r' in the semicolon separated format.
//
// The first line is the header. Its columns can be in any order, but it must
// contain at least bedrijf, sector, koers and winst_per_aandeel, otherwise a
// *SchemaError is returned. Optional columns dividend and groei_percentage
// default to 0, and risico defaults to DefaultRiskScore.
//
// Rows that cannot be used, including rows whose metrics overflow, are skipped
// and reported as warnings. If no row can be used at all, ErrNoRecords is
// returned.
func Decode(r io.Reader) ([]Record, []*RowError, error) {
	cr := csv.NewReader(r)
	cr.Comma = Separator
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, &SchemaError{Missing: slices.Clone(requiredColumns)}
	}
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return nil, nil, fmt.Errorf("malformed header: %w", err)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read header: %w: %w", ErrIO, err)
	}
	l, err := newLayout(header)
	if err != nil {
		return nil, nil, err
	}

	var (
		records  []Record
		warnings []*RowError
	)
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if errors.As(err, &perr) {
				warnings = append(warnings, &RowError{Line: perr.StartLine, Err: perr.Err})
				continue
			}
			return nil, nil, fmt.Errorf("cannot read rows: %w: %w", ErrIO, err)
		}
		line, _ := cr.FieldPos(0)

		in, err := l.inputs(fields)
		if err != nil {
			warnings = append(warnings, &RowError{Line: line, Name: in.Name, Err: err})
			continue
		}
		rec := NewRecord(in)
		if !finite(rec.ReturnPct()) || !finite(rec.ValuationScore()) {
			err := fmt.Errorf("%s %v, %s %v: %w", ColReturn, rec.ReturnPct(), ColValuation, rec.ValuationScore(), ErrNotFinite)
			warnings = append(warnings, &RowError{Line: line, Name: in.Name, Err: err})
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, warnings, ErrNoRecords
	}
	return records, warnings, nil
}
