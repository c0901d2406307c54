package screener

import (
	"cmp"
	"slices"
)

// Filter returns the records matching 'c', ordered by decreasing valuation score.
//
// Records with the same valuation score keep their relative order from 'records'.
// The result is never nil, but it can be empty.
func Filter(records []Record, c Criteria) []Record {
	selected := make([]Record, 0, len(records))
	for _, r := range records {
		if c.Match(r) {
			selected = append(selected, r)
		}
	}
	sortByValuation(selected)
	return selected
}

// Rank returns a copy of 'records' ordered by decreasing valuation score.
func Rank(records []Record) []Record {
	ranked := slices.Clone(records)
	if ranked == nil {
		ranked = []Record{}
	}
	sortByValuation(ranked)
	return ranked
}

func sortByValuation(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(b.ValuationScore(), a.ValuationScore())
	})
}
