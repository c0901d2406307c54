package screener

// Metrics computes the derived metrics of a record from its raw inputs.
//
//	returnPct = (earnings + income) / price * 100
//	valuation = returnPct * growth / risk
//
// A zero (or negative) price yields a zero return, and a zero (or negative) risk
// yields a zero valuation. Values are never rounded here.
func Metrics(price, earnings, income, growth, risk float64) (returnPct, valuation float64) {
	if price > 0 {
		returnPct = (earnings + income) / price * 100
	}
	if risk > 0 {
		valuation = returnPct * growth / risk
	}
	return returnPct, valuation
}
