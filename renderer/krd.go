package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/tickoo/fixedincome"
)

func KRDMarkdown(p *fixedincome.KRDProfile) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Key-Rate Duration Profile: %s", p.Portfolio))
	if p.IsEmpty() {
		doc.PlainText("No KRD contribution columns found in the holdings table.")
		return doc.String()
	}

	rows := make([][]string, 0, len(p.Tenors))
	for _, t := range p.Tenors {
		rows = append(rows, []string{t.Tenor, formatFloat(t.Weighted)})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Tenor", "Weighted Contribution"},
		Rows:      rows,
	})

	return doc.String()
}
