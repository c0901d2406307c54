package screener

import (
	"errors"
	"fmt"
	"math"
)

// Default screening thresholds.
const (
	DefaultMinValuation = 10.0
	DefaultMaxRisk      = 5.0
)

// Criteria holds the thresholds used to screen records.
type Criteria struct {
	MinValuation float64 // inclusive lower bound on the valuation score
	MaxRisk      float64 // inclusive upper bound on the risk score
}

// DefaultCriteria returns the default thresholds.
func DefaultCriteria() Criteria {
	return Criteria{MinValuation: DefaultMinValuation, MaxRisk: DefaultMaxRisk}
}

// Match reports whether r meets both thresholds.
func (c Criteria) Match(r Record) bool {
	return r.ValuationScore() >= c.MinValuation && r.RiskScore() <= c.MaxRisk
}

// Validate returns an error if the thresholds cannot be compared with.
func (c Criteria) Validate() error {
	var errs []error
	if math.IsNaN(c.MinValuation) {
		errs = append(errs, fmt.Errorf("minimum valuation is not a number"))
	}
	if math.IsNaN(c.MaxRisk) {
		errs = append(errs, fmt.Errorf("maximum risk is not a number"))
	}
	return errors.Join(errs...)
}

// Option overrides one of the store's thresholds for a single call.
type Option func(*Criteria)

// WithMinValuation overrides the minimum valuation score.
func WithMinValuation(v float64) Option { return func(c *Criteria) { c.MinValuation = v } }

// WithMaxRisk overrides the maximum risk score.
func WithMaxRisk(v float64) Option { return func(c *Criteria) { c.MaxRisk = v } }

// apply returns a copy of c with all options applied.
func (c Criteria) apply(opts ...Option) Criteria {
	for _, o := range opts {
		o(&c)
	}
	return c
}
