package screener

// DefaultRiskScore is the risk score of a record whose risk is not provided.
const DefaultRiskScore = 1.0

// Inputs holds the raw values of a record, as read from a source.
type Inputs struct {
	Name            string
	Category        string
	Price           float64
	EarningsPerUnit float64
	IncomePerUnit   float64
	GrowthPercent   float64
	RiskScore       float64
}

// Record is a single screened company.
//
// A Record is immutable: derived metrics are computed once by NewRecord and are
// therefore always consistent with the inputs.
type Record struct {
	in        Inputs
	returnPct float64
	valuation float64
}

// NewRecord creates a record from its inputs, computing its derived metrics.
func NewRecord(in Inputs) Record {
	r := Record{in: in}
	r.returnPct, r.valuation = Metrics(in.Price, in.EarningsPerUnit, in.IncomePerUnit, in.GrowthPercent, in.RiskScore)
	return r
}

func (r Record) Name() string             { return r.in.Name }
func (r Record) Category() string         { return r.in.Category }
func (r Record) Price() float64           { return r.in.Price }
func (r Record) EarningsPerUnit() float64 { return r.in.EarningsPerUnit }
func (r Record) IncomePerUnit() float64   { return r.in.IncomePerUnit }
func (r Record) GrowthPercent() float64   { return r.in.GrowthPercent }
func (r Record) RiskScore() float64       { return r.in.RiskScore }

// Inputs returns a copy of the raw values the record was created from.
func (r Record) Inputs() Inputs { return r.in }

// ReturnPct returns the return percentage: (earnings + income) / price * 100.
func (r Record) ReturnPct() float64 { return r.returnPct }

// ValuationScore returns the composite score: return * growth / risk.
func (r Record) ValuationScore() float64 { return r.valuation }
