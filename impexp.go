package fixedincome

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to handle the holdings import format and the
// flat report export format. Inputs are already-clean tabular files: the
// engine does not parse spreadsheet layouts.

// identityColumns never get numeric coercion on import, whatever their cells
// look like.
var identityColumns = map[string]bool{
	"CUSIP":                true,
	"Security Description": true,
	"Ticker":               true,
}

// ImportCSV reads a holdings table from CSV. The first record is the header
// (names trimmed); raw tenor labels like "2Y" or "6M" are renamed to the
// "KRD Contribution <tenor>" form. Column kinds are inferred: a column whose
// non-empty cells all parse as numbers becomes numeric (identity columns
// excepted), the "Maturity" column becomes a date column (unparseable cells
// missing), everything else is text. A malformed CSV is a hard error.
func ImportCSV(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse holdings CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("holdings CSV is empty")
	}
	header := records[0]
	names := make([]string, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if IsTenorLabel(name) {
			name = krdPrefix + name
		}
		names[i] = name
	}
	rows := records[1:]

	cells := func(col int) []string {
		out := make([]string, len(rows))
		for i, rec := range rows {
			out[i] = strings.TrimSpace(rec[col])
		}
		return out
	}

	columns := make([]Column, len(names))
	for i, name := range names {
		columns[i] = Column{Name: name, Kind: inferKind(name, cells(i))}
	}
	t, err := NewTable(columns, len(rows))
	if err != nil {
		return nil, err
	}
	for col, c := range columns {
		for row, raw := range cells(col) {
			setCell(t, c, row, raw)
		}
	}
	return t, nil
}

// inferKind decides the column kind from its name and raw cells.
func inferKind(name string, cells []string) Kind {
	if name == maturityColumn {
		return KindDate
	}
	if identityColumns[name] {
		return KindText
	}
	numeric := false
	for _, raw := range cells {
		if raw == "" {
			continue
		}
		if math.IsNaN(parseNumber(raw)) {
			return KindText
		}
		numeric = true
	}
	if numeric {
		return KindNumeric
	}
	return KindText
}

func setCell(t *Table, c Column, row int, raw string) {
	switch c.Kind {
	case KindNumeric:
		t.SetFloat(c.Name, row, parseNumber(raw))
	case KindDate:
		if d, err := ParseDate(raw); err == nil {
			t.SetDate(c.Name, row, d)
		}
	default:
		t.SetText(c.Name, row, raw)
	}
}

// DefaultRowsPath is the jsonpath used by ImportJSON when none is given.
const DefaultRowsPath = "$.holdings"

// ImportJSON reads a holdings table from a JSON document. Vendor holdings
// snapshots usually wrap the position array in an envelope, so rowsPath is a
// jsonpath expression selecting the array of row objects (DefaultRowsPath
// when empty). Columns are the union of the row object keys, sorted, with
// the same kind inference as ImportCSV.
func ImportJSON(r io.Reader, rowsPath string) (*Table, error) {
	if rowsPath == "" {
		rowsPath = DefaultRowsPath
	}
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse holdings JSON: %w", err)
	}
	jrows, err := jsonpath.Get(rowsPath, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot select holdings rows %q: %w", rowsPath, err)
	}
	list, ok := jrows.([]any)
	if !ok {
		return nil, fmt.Errorf("holdings rows %q is not an array", rowsPath)
	}

	// Union of keys; JSON objects are unordered, so columns are sorted to
	// keep resolution deterministic.
	var names []string
	keyOf := make(map[string]string) // final column name -> original object key
	objects := make([]map[string]any, 0, len(list))
	for i, jrow := range list {
		obj, ok := jrow.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("holdings row %d is not an object", i)
		}
		objects = append(objects, obj)
		for key := range obj {
			name := strings.TrimSpace(key)
			if IsTenorLabel(name) {
				name = krdPrefix + name
			}
			if _, seen := keyOf[name]; !seen {
				keyOf[name] = key
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)

	raw := func(obj map[string]any, name string) string {
		v, found := obj[keyOf[name]]
		if !found || v == nil {
			return ""
		}
		switch val := v.(type) {
		case string:
			return strings.TrimSpace(val)
		case float64:
			return strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(val)
		default:
			return fmt.Sprint(val)
		}
	}

	columns := make([]Column, len(names))
	for i, name := range names {
		cells := make([]string, len(objects))
		for row, obj := range objects {
			cells[row] = raw(obj, name)
		}
		columns[i] = Column{Name: name, Kind: inferKind(name, cells)}
	}
	t, err := NewTable(columns, len(objects))
	if err != nil {
		return nil, err
	}
	for _, c := range columns {
		for row, obj := range objects {
			setCell(t, c, row, raw(obj, c.Name))
		}
	}
	return t, nil
}

// The export format is a flat CSV per report: a key column, a value column,
// and a trailing "Portfolio" label column, so that same-shaped reports from
// several portfolios concatenate into one combined table.

// ExportSummary writes the one-row summary report.
func ExportSummary(w io.Writer, s *Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Portfolio", "Total Market Value", "Weighted Yield to Worst", "Average Maturity (yrs)"}); err != nil {
		return err
	}
	if err := cw.Write([]string{
		s.Portfolio,
		strconv.FormatFloat(s.TotalMarketValue.AsFloat(), 'f', 2, 64),
		formatOptional(s.WeightedYieldToWorst),
		formatOptional(s.AverageMaturityYears),
	}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// ExportDuration writes the one-row duration report.
func ExportDuration(w io.Writer, r *DurationReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Portfolio", "Weighted Duration"}); err != nil {
		return err
	}
	if err := cw.Write([]string{r.Portfolio, formatOptional(r.WeightedDuration)}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// ExportDistribution writes a distribution with the given key column header
// ("Rating", "Sector", ...).
func ExportDistribution(w io.Writer, keyHeader string, d Distribution) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{keyHeader, "Market Value %", "Portfolio"}); err != nil {
		return err
	}
	for _, e := range d.Entries {
		if err := cw.Write([]string{e.Key, strconv.FormatFloat(float64(e.Percent), 'f', 6, 64), d.Portfolio}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportHoldings writes the top-holdings report.
func ExportHoldings(w io.Writer, r *HoldingsRank) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Issuer", "Market Value", "Portfolio"}); err != nil {
		return err
	}
	for _, h := range r.Holdings {
		if err := cw.Write([]string{h.Issuer, strconv.FormatFloat(h.MarketValue.AsFloat(), 'f', 2, 64), r.Portfolio}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportKRD writes the key-rate-duration profile.
func ExportKRD(w io.Writer, p *KRDProfile) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Tenor", "Contribution", "Portfolio"}); err != nil {
		return err
	}
	for _, t := range p.Tenors {
		if err := cw.Write([]string{t.Tenor, strconv.FormatFloat(t.Weighted, 'f', 6, 64), p.Portfolio}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CombineReports concatenates same-shaped report CSVs into one table,
// keeping only the first header. Purely structural: the multi-portfolio
// combiner has no engine logic.
func CombineReports(w io.Writer, readers ...io.Reader) error {
	cw := csv.NewWriter(w)
	wroteHeader := false
	for _, r := range readers {
		records, err := csv.NewReader(r).ReadAll()
		if err != nil {
			return fmt.Errorf("cannot parse report to combine: %w", err)
		}
		for i, rec := range records {
			if i == 0 {
				if wroteHeader {
					continue
				}
				wroteHeader = true
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 6, 64)
}
