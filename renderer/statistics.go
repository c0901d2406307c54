package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/screener"
	md "github.com/nao1215/markdown"
)

// StatisticsMarkdown renders the statistics of all loaded records.
//
// 'ok' is the second result of screener.Summarize: when false, there are no
// statistics to render.
func StatisticsMarkdown(s screener.Statistics, ok bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Statistics")
	if !ok {
		doc.PlainText("No statistics available.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("Total records loaded: %d", s.Count))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Metric", "Average", "Maximum", "Minimum"},
		Rows: [][]string{
			{"ROI", screener.Percent(s.Return.Mean).String(), screener.Percent(s.Return.Max).String(), screener.Percent(s.Return.Min).String()},
			{"Valuation", screener.Fixed(s.Valuation.Mean), screener.Fixed(s.Valuation.Max), screener.Fixed(s.Valuation.Min)},
			{"Risk", screener.Fixed(s.Risk.Mean), screener.Fixed(s.Risk.Max), screener.Fixed(s.Risk.Min)},
		},
	})
	return doc.String()
}
