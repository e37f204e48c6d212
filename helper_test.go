package fixedincome

import (
	"math"
	"testing"
	"time"
)

// holdingsTable builds a table from row-major cells for tests. A nil cell is
// missing; float64 fills numeric columns, string fills text columns, Date
// fills date columns.
func holdingsTable(t *testing.T, columns []Column, rows [][]any) *Table {
	t.Helper()
	table, err := NewTable(columns, len(rows))
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	for r, row := range rows {
		if len(row) != len(columns) {
			t.Fatalf("row %d has %d cells, want %d", r, len(row), len(columns))
		}
		for c, cell := range row {
			if cell == nil {
				continue
			}
			name := columns[c].Name
			switch v := cell.(type) {
			case float64:
				table.SetFloat(name, r, v)
			case int:
				table.SetFloat(name, r, float64(v))
			case string:
				table.SetText(name, r, v)
			case Date:
				table.SetDate(name, r, v)
			default:
				t.Fatalf("unsupported cell type %T", cell)
			}
		}
	}
	return table
}

// mustAnalyzer builds an analyzer or fails the test.
func mustAnalyzer(t *testing.T, table *Table, name string) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(table, name, "USD")
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}
	return a
}

// evalDate is the fixed evaluation date used by maturity tests.
var evalDate = NewDate(2026, time.January, 1)

// inYears returns a maturity date the given number of 365-day years after
// evalDate.
func inYears(years float64) Date {
	return evalDate.Add(int(math.Round(years * 365)))
}

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
