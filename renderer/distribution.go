package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/tickoo/fixedincome"
)

// DistributionMarkdown renders one weighted distribution as a two-column
// table under the given title.
func DistributionMarkdown(title string, d fixedincome.Distribution) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s: %s", title, d.Portfolio))
	if d.IsEmpty() {
		doc.PlainText(fmt.Sprintf("No %s data found in the holdings table.", title))
		return doc.String()
	}

	rows := make([][]string, 0, len(d.Entries))
	for _, e := range d.Entries {
		rows = append(rows, []string{e.Key, e.Percent.String()})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{d.Dimension, "Market Value %"},
		Rows:      rows,
	})

	return doc.String()
}

// BreakdownsMarkdown renders the generic categorical breakdowns, one section
// per column, preserving column order.
func BreakdownsMarkdown(breakdowns []fixedincome.Distribution) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(breakdowns) == 0 {
		doc.PlainText("No categorical columns found in the holdings table.")
		return doc.String()
	}
	doc.H1(fmt.Sprintf("Categorical Breakdowns: %s", breakdowns[0].Portfolio))
	for _, d := range breakdowns {
		doc.H2(d.Dimension)
		rows := make([][]string, 0, len(d.Entries))
		for _, e := range d.Entries {
			rows = append(rows, []string{e.Key, e.Percent.String()})
		}
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{d.Dimension, "Market Value %"},
			Rows:      rows,
		})
	}

	return doc.String()
}
