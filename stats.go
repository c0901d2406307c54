package screener

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Aggregate holds the mean, maximum and minimum of one metric.
type Aggregate struct {
	Mean float64
	Max  float64
	Min  float64
}

// Statistics summarizes a set of records.
type Statistics struct {
	Count     int
	Return    Aggregate // of ReturnPct
	Valuation Aggregate // of ValuationScore
	Risk      Aggregate // of RiskScore
}

// Summarize computes the statistics of 'records'.
//
// It returns false if 'records' is empty: there are no statistics to compute.
func Summarize(records []Record) (Statistics, bool) {
	if len(records) == 0 {
		return Statistics{}, false
	}

	returns := make([]float64, len(records))
	valuations := make([]float64, len(records))
	risks := make([]float64, len(records))
	for i, r := range records {
		returns[i] = r.ReturnPct()
		valuations[i] = r.ValuationScore()
		risks[i] = r.RiskScore()
	}

	return Statistics{
		Count:     len(records),
		Return:    aggregate(returns),
		Valuation: aggregate(valuations),
		Risk:      aggregate(risks),
	}, true
}

// aggregate requires a non empty slice.
func aggregate(x []float64) Aggregate {
	return Aggregate{
		Mean: stat.Mean(x, nil),
		Max:  floats.Max(x),
		Min:  floats.Min(x),
	}
}
