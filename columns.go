package screener

// Column names of the tabular format, both for input and export.
const (
	ColName      = "bedrijf"
	ColCategory  = "sector"
	ColPrice     = "koers"
	ColEarnings  = "winst_per_aandeel"
	ColIncome    = "dividend"
	ColGrowth    = "groei_percentage"
	ColRisk      = "risico"
	ColReturn    = "roi"
	ColValuation = "valuatie_index"
)

// Separator is the field delimiter of the tabular format.
const Separator = ';'

// requiredColumns must all be present in the header of a source.
var requiredColumns = []string{ColName, ColCategory, ColPrice, ColEarnings}

// exportColumns is the ordered header of an export.
var exportColumns = []string{
	ColName, ColCategory, ColPrice, ColEarnings, ColIncome, ColGrowth, ColRisk,
	ColReturn, ColValuation,
}
