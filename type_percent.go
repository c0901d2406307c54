package screener

// Percent is a value already expressed in percent (10 means 10%).
type Percent float64

// String formats the percentage with two decimals, the same way as Fixed.
func (p Percent) String() string {
	return Fixed(float64(p)) + "%"
}
