package screener

import (
	"math"
	"strings"
	"testing"
)

// rec is a helper to create a record with the default category.
func rec(name string, price, earnings, income, growth, risk float64) Record {
	return NewRecord(Inputs{
		Name:            name,
		Category:        "Tech",
		Price:           price,
		EarningsPerUnit: earnings,
		IncomePerUnit:   income,
		GrowthPercent:   growth,
		RiskScore:       risk,
	})
}

// mustDecode decodes 'src' or fails the test.
func mustDecode(t *testing.T, src string) []Record {
	t.Helper()
	records, _, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return records
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func names(records []Record) []string {
	var res []string
	for _, r := range records {
		res = append(res, r.Name())
	}
	return res
}
