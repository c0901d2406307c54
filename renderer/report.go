package renderer

import (
	"bytes"

	"github.com/etnz/screener"
	md "github.com/nao1215/markdown"
)

// reportView is the data of the report template.
type reportView struct {
	*screener.Report
	Table string
}

// ReportMarkdown renders the full screening report: the criteria, then every
// metric of the matching records.
func ReportMarkdown(r *screener.Report) string {
	partials := map[string]string{
		"report_title":    "report_title.md",
		"report_criteria": "report_criteria.md",
	}
	view := reportView{Report: r, Table: recordsTable(r.Records)}
	return renderTemplate("report", "report.md", partials, view)
}

// TableMarkdown renders the concise screening table: name, sector, risk,
// return and valuation score of the matching records.
func TableMarkdown(r *screener.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if r.Empty() {
		doc.PlainText(NoMatch)
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Name", "Sector", "Risk", "ROI (%)", "Index"},
	}
	for _, rec := range r.Records {
		table.Rows = append(table.Rows, []string{
			rec.Name(),
			rec.Category(),
			screener.Fixed(rec.RiskScore()),
			screener.Fixed(rec.ReturnPct()),
			screener.Fixed(rec.ValuationScore()),
		})
	}
	doc.Table(table)
	return doc.String()
}

// ListingMarkdown renders all 'records' without any filtering.
func ListingMarkdown(records []screener.Record) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("All Records")
	doc.PlainText(recordsTable(records))
	return doc.String()
}

// recordsTable renders the full table of 'records', or NoMatch.
func recordsTable(records []screener.Record) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(records) == 0 {
		doc.PlainText(NoMatch)
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Name", "Sector", "Price", "EPS", "Dividend", "Growth %", "Risk", "ROI %", "Valuation"},
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []string{
			r.Name(),
			r.Category(),
			screener.Fixed(r.Price()),
			screener.Fixed(r.EarningsPerUnit()),
			screener.Fixed(r.IncomePerUnit()),
			screener.Fixed(r.GrowthPercent()),
			screener.Fixed(r.RiskScore()),
			screener.Fixed(r.ReturnPct()),
			screener.Fixed(r.ValuationScore()),
		})
	}
	doc.Table(table)
	return doc.String()
}
