package fixedincome

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the declared semantic kind of a table column.
type Kind int

const (
	// Numeric columns hold float64 values; missing is representable.
	KindNumeric Kind = iota
	// Text columns hold strings; the empty string is missing.
	KindText
	// Dates columns hold day-granularity dates; the zero Date is missing.
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	case KindDate:
		return "date"
	}
	return "unknown"
}

// Column describes one column of a holdings table.
type Column struct {
	Name string
	Kind Kind
}

// Table is an ordered, strongly typed holdings table: a sequence of column
// definitions plus column-major storage of optional values. One row per bond
// position. Missing cells are valid everywhere; see Kind for the per-kind
// missing representation.
type Table struct {
	cols  []Column
	nums  map[string][]float64
	texts map[string][]string
	dates map[string][]Date
	nrows int
}

// NewTable creates an empty table with the given columns and row count.
// Column names are trimmed. Duplicate or empty column names are rejected.
func NewTable(columns []Column, nrows int) (*Table, error) {
	if nrows < 0 {
		return nil, fmt.Errorf("invalid row count %d", nrows)
	}
	t := &Table{
		nums:  make(map[string][]float64),
		texts: make(map[string][]string),
		dates: make(map[string][]Date),
		nrows: nrows,
	}
	for _, c := range columns {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			return nil, fmt.Errorf("empty column name")
		}
		if t.HasColumn(c.Name) {
			return nil, fmt.Errorf("duplicate column %q", c.Name)
		}
		t.cols = append(t.cols, c)
		switch c.Kind {
		case KindNumeric:
			cells := make([]float64, nrows)
			for i := range cells {
				cells[i] = math.NaN()
			}
			t.nums[c.Name] = cells
		case KindText:
			t.texts[c.Name] = make([]string, nrows)
		case KindDate:
			t.dates[c.Name] = make([]Date, nrows)
		default:
			return nil, fmt.Errorf("column %q: unknown kind %d", c.Name, c.Kind)
		}
	}
	return t, nil
}

// Columns returns the column definitions in table order.
func (t *Table) Columns() []Column {
	cols := make([]Column, len(t.cols))
	copy(cols, t.cols)
	return cols
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return t.nrows }

// HasColumn reports whether a column with that exact name exists.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.cols {
		if c.Name == name {
			return true
		}
	}
	return false
}

// ColumnKind returns the kind of the named column.
func (t *Table) ColumnKind(name string) (Kind, bool) {
	for _, c := range t.cols {
		if c.Name == name {
			return c.Kind, true
		}
	}
	return 0, false
}

// Float returns the numeric value at (name, row). ok is false when the cell
// is missing, the column does not exist, or it is not numeric.
func (t *Table) Float(name string, row int) (v float64, ok bool) {
	cells, found := t.nums[name]
	if !found || row < 0 || row >= t.nrows {
		return 0, false
	}
	v = cells[row]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Text returns the text value at (name, row). ok is false when the cell is
// missing (empty), the column does not exist, or it is not text.
func (t *Table) Text(name string, row int) (v string, ok bool) {
	cells, found := t.texts[name]
	if !found || row < 0 || row >= t.nrows {
		return "", false
	}
	v = cells[row]
	return v, v != ""
}

// Date returns the date value at (name, row). ok is false when the cell is
// missing, the column does not exist, or it is not a date column.
func (t *Table) Date(name string, row int) (v Date, ok bool) {
	cells, found := t.dates[name]
	if !found || row < 0 || row >= t.nrows {
		return Date{}, false
	}
	v = cells[row]
	return v, !v.IsZero()
}

// SetFloat stores a numeric value. Out-of-range rows and unknown columns are
// ignored; use NaN to store a missing value.
func (t *Table) SetFloat(name string, row int, v float64) {
	if cells, found := t.nums[name]; found && row >= 0 && row < t.nrows {
		cells[row] = v
	}
}

// SetText stores a text value (leading/trailing spaces trimmed).
func (t *Table) SetText(name string, row int, v string) {
	if cells, found := t.texts[name]; found && row >= 0 && row < t.nrows {
		cells[row] = strings.TrimSpace(v)
	}
}

// SetDate stores a date value.
func (t *Table) SetDate(name string, row int, v Date) {
	if cells, found := t.dates[name]; found && row >= 0 && row < t.nrows {
		cells[row] = v
	}
}

// Copy returns a deep copy of the table.
func (t *Table) Copy() *Table {
	c := &Table{
		cols:  make([]Column, len(t.cols)),
		nums:  make(map[string][]float64, len(t.nums)),
		texts: make(map[string][]string, len(t.texts)),
		dates: make(map[string][]Date, len(t.dates)),
		nrows: t.nrows,
	}
	copy(c.cols, t.cols)
	for name, cells := range t.nums {
		dup := make([]float64, len(cells))
		copy(dup, cells)
		c.nums[name] = dup
	}
	for name, cells := range t.texts {
		dup := make([]string, len(cells))
		copy(dup, cells)
		c.texts[name] = dup
	}
	for name, cells := range t.dates {
		dup := make([]Date, len(cells))
		copy(dup, cells)
		c.dates[name] = dup
	}
	return c
}

// coerceNumeric converts a text column in place to a numeric one, turning
// unparseable cells into missing values. No-op when the column is already
// numeric or does not exist.
func (t *Table) coerceNumeric(name string) {
	cells, found := t.texts[name]
	if !found {
		return
	}
	nums := make([]float64, t.nrows)
	for i, s := range cells {
		nums[i] = parseNumber(s)
	}
	delete(t.texts, name)
	t.nums[name] = nums
	for i := range t.cols {
		if t.cols[i].Name == name {
			t.cols[i].Kind = KindNumeric
		}
	}
}

// parseNumber coerces a cell to a float64, NaN when missing or unparseable.
// Thousands separators are tolerated.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
