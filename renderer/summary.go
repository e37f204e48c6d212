package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/tickoo/fixedincome"
)

func SummaryMarkdown(s *fixedincome.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary: %s", s.Portfolio))
	doc.PlainText(fmt.Sprintf("Evaluated on %s", s.Date))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Market Value", s.TotalMarketValue.String()},
			{"Weighted Yield to Worst", formatOptional(s.WeightedYieldToWorst, "")},
			{"Average Maturity (yrs)", formatOptional(s.AverageMaturityYears, "")},
		},
	})

	return doc.String()
}

func DurationMarkdown(r *fixedincome.DurationReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Duration: %s", r.Portfolio))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Weighted Duration", formatOptional(r.WeightedDuration, "")},
		},
	})

	return doc.String()
}
