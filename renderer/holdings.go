package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/tickoo/fixedincome"
)

func HoldingsMarkdown(r *fixedincome.HoldingsRank) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Top Holdings: %s", r.Portfolio))
	if len(r.Holdings) == 0 {
		doc.PlainText("No issuer column found in the holdings table.")
		return doc.String()
	}

	rows := make([][]string, 0, len(r.Holdings))
	for i, h := range r.Holdings {
		rows = append(rows, []string{fmt.Sprint(i + 1), h.Issuer, h.MarketValue.String()})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight},
		Header:    []string{"#", "Issuer", "Market Value"},
		Rows:      rows,
	})

	return doc.String()
}
