package screener

// Report is the result of screening a store.
type Report struct {
	Criteria Criteria // criteria actually applied
	Analyzed int      // number of records screened
	Records  []Record // matching records, best valuation first
}

// Empty reports whether no record met the criteria.
func (r *Report) Empty() bool { return len(r.Records) == 0 }
