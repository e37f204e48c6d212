package fixedincome

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// maturity bucket boundaries, half-open and lower-inclusive: a bond exactly
// 3.0 years out falls in "3-5y". Already-matured positions (negative years)
// fall outside every bucket and outside the percentage denominator.
var maturityBuckets = []struct {
	label  string
	lo, hi float64
}{
	{"0-3y", 0, 3},
	{"3-5y", 3, 5},
	{"5-10y", 5, 10},
	{"10-30y", 10, 30},
	{"30y+", 30, math.Inf(1)},
}

// ratingPriority is the fixed agency order used to build composite ratings.
var ratingPriority = []string{"Fitch", "Moody", "S&P", "MSCI"}

// Analyzer answers the fixed set of portfolio analytics queries over one
// holdings table. It owns a private copy of the table, so concurrent
// analyzers never interfere; a single analyzer is not safe for concurrent
// use because of the composite-rating cache (see CompositeRatings).
type Analyzer struct {
	t    *Table
	name string
	cur  string // reporting currency, display only

	ratingCols  []string
	sectorCol   string
	issuerCol   string
	currencyCol string

	// composite is the write-once per-row composite rating cache,
	// nil until first needed ("" marks a row with no rating).
	composite []string
}

// NewAnalyzer builds an analyzer over a defensive copy of the table.
// The reporting currency only affects Money display. The one hard failure
// is a table without a "Market Value" column.
func NewAnalyzer(t *Table, name, reportingCurrency string) (*Analyzer, error) {
	if t == nil {
		return nil, fmt.Errorf("nil holdings table")
	}
	if !t.HasColumn(marketValueColumn) {
		return nil, fmt.Errorf("holdings table has no %q column", marketValueColumn)
	}
	a := &Analyzer{t: t.Copy(), name: name, cur: reportingCurrency}
	// Market Value must be numeric; a text column is coerced cell by cell,
	// unparseable cells becoming missing.
	a.t.coerceNumeric(marketValueColumn)
	a.ratingCols = FindColumns(a.t, RoleRating)
	a.sectorCol = PrimaryColumn(a.t, RoleSector)
	a.issuerCol = PrimaryColumn(a.t, RoleIssuer)
	a.currencyCol = PrimaryColumn(a.t, RoleCurrency)
	return a, nil
}

// Name returns the portfolio label.
func (a *Analyzer) Name() string { return a.name }

// totalMarketValue sums the Market Value column, missing cells excluded.
func (a *Analyzer) totalMarketValue() float64 {
	var present []float64
	for row := 0; row < a.t.NumRows(); row++ {
		if mv, ok := a.t.Float(marketValueColumn, row); ok {
			present = append(present, mv)
		}
	}
	return floats.Sum(present)
}

// weightedAverage computes sum(metric_i * mv_i) / sum(mv_i) over all rows.
// The denominator is the full portfolio market value; rows missing the
// metric contribute nothing to the numerator. ok is false when the column
// does not exist or the portfolio market value is zero.
func (a *Analyzer) weightedAverage(column string) (v float64, ok bool) {
	if !a.t.HasColumn(column) {
		return 0, false
	}
	total := a.totalMarketValue()
	if total == 0 {
		return 0, false
	}
	var weighted float64
	for row := 0; row < a.t.NumRows(); row++ {
		metric, ok := a.t.Float(column, row)
		if !ok {
			continue
		}
		mv, ok := a.t.Float(marketValueColumn, row)
		if !ok {
			continue
		}
		weighted += metric * mv
	}
	return weighted / total, true
}

// Summary computes the portfolio overview on the given evaluation date.
// Average maturity is measured from that date, making the figure
// time-dependent by design.
func (a *Analyzer) Summary(on Date) *Summary {
	s := &Summary{
		Portfolio:        a.name,
		Date:             on,
		TotalMarketValue: M(a.totalMarketValue(), a.cur),
	}
	if v, ok := a.weightedAverage(yieldColumn); ok {
		s.WeightedYieldToWorst = &v
	}
	if a.t.HasColumn(maturityColumn) {
		var years []float64
		for row := 0; row < a.t.NumRows(); row++ {
			if d, ok := a.t.Date(maturityColumn, row); ok {
				years = append(years, on.YearsUntil(d))
			}
		}
		if len(years) > 0 {
			avg := stat.Mean(years, nil)
			s.AverageMaturityYears = &avg
		}
	}
	return s
}

// Duration computes the market-value-weighted duration, locating the metric
// by case-insensitive substring match for "duration" among column names.
func (a *Analyzer) Duration() *DurationReport {
	r := &DurationReport{Portfolio: a.name}
	if col := durationColumn(a.t); col != "" {
		if v, ok := a.weightedAverage(col); ok {
			r.WeightedDuration = &v
		}
	}
	return r
}

// CompositeRatings returns the per-row composite rating ("" where no agency
// rated the row) and whether any rating columns exist at all. The result is
// computed once and cached; repeated calls return the same slice.
//
// For each row, agencies are walked in fixed priority order (Fitch, Moody,
// S&P, MSCI); within an agency the first matching column in table order
// wins; the first non-missing value found is the composite.
func (a *Analyzer) CompositeRatings() ([]string, bool) {
	if len(a.ratingCols) == 0 {
		return nil, false
	}
	if a.composite != nil {
		return a.composite, true
	}
	composite := make([]string, a.t.NumRows())
	for row := range composite {
		for _, agency := range ratingPriority {
			lower := strings.ToLower(agency)
			for _, col := range a.ratingCols {
				if !strings.Contains(strings.ToLower(col), lower) {
					continue
				}
				if v, ok := a.t.Text(col, row); ok {
					composite[row] = v
					break
				}
			}
			if composite[row] != "" {
				break
			}
		}
	}
	a.composite = composite
	return a.composite, true
}

// CreditDistribution groups market value by composite rating, ascending by
// rating label. Empty when the table has no rating columns.
func (a *Analyzer) CreditDistribution() Distribution {
	d := Distribution{Portfolio: a.name, Dimension: "Composite Rating"}
	composite, ok := a.CompositeRatings()
	if !ok {
		return d
	}
	d.Entries = a.distribution(func(row int) (string, bool) {
		return composite[row], composite[row] != ""
	}, byKey)
	return d
}

// RatingDistributions returns one distribution per individual rating column
// found (not composite), each ascending by rating label, in column order.
func (a *Analyzer) RatingDistributions() []Distribution {
	var out []Distribution
	for _, col := range a.ratingCols {
		out = append(out, Distribution{
			Portfolio: a.name,
			Dimension: col,
			Entries:   a.distributionByText(col, byKey),
		})
	}
	return out
}

// SectorExposure groups market value by the primary sector column,
// descending by percentage. Empty when no sector column resolves.
func (a *Analyzer) SectorExposure() Distribution {
	return a.exposure(a.sectorCol)
}

// CurrencyExposure groups market value by the primary currency column,
// descending by percentage. Empty when no currency column resolves.
func (a *Analyzer) CurrencyExposure() Distribution {
	return a.exposure(a.currencyCol)
}

func (a *Analyzer) exposure(col string) Distribution {
	d := Distribution{Portfolio: a.name, Dimension: col}
	if col == "" {
		return d
	}
	d.Entries = a.distributionByText(col, byPercent)
	return d
}

// breakdownExclusions are verbose free-text columns skipped by
// CategoricalBreakdowns.
var breakdownExclusions = map[string]bool{
	"Issuer Name": true,
	"Description": true,
}

// CategoricalBreakdowns computes the weighted distribution of every text
// column (except the fixed exclusion set), descending by percentage and
// trimmed to the top N entries, in table column order.
func (a *Analyzer) CategoricalBreakdowns(topN int) []Distribution {
	if topN <= 0 {
		topN = 10
	}
	var out []Distribution
	for _, c := range a.t.Columns() {
		if c.Kind != KindText || breakdownExclusions[c.Name] {
			continue
		}
		entries := a.distributionByText(c.Name, byPercent)
		if len(entries) > topN {
			entries = entries[:topN]
		}
		out = append(out, Distribution{Portfolio: a.name, Dimension: c.Name, Entries: entries})
	}
	return out
}

// TopHoldings groups market value by the primary issuer column and keeps the
// n largest issuers, descending. Empty when no issuer column resolves.
func (a *Analyzer) TopHoldings(n int) *HoldingsRank {
	if n <= 0 {
		n = 10
	}
	r := &HoldingsRank{Portfolio: a.name}
	if a.issuerCol == "" {
		return r
	}
	sums := make(map[string]float64)
	var order []string
	for row := 0; row < a.t.NumRows(); row++ {
		issuer, ok := a.t.Text(a.issuerCol, row)
		if !ok {
			continue
		}
		if _, seen := sums[issuer]; !seen {
			order = append(order, issuer)
		}
		if mv, ok := a.t.Float(marketValueColumn, row); ok {
			sums[issuer] += mv
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		if sums[order[i]] != sums[order[j]] {
			return sums[order[i]] > sums[order[j]]
		}
		return order[i] < order[j]
	})
	if len(order) > n {
		order = order[:n]
	}
	for _, issuer := range order {
		r.Holdings = append(r.Holdings, IssuerHolding{Issuer: issuer, MarketValue: M(sums[issuer], a.cur)})
	}
	return r
}

// KRDProfile computes the market-value-weighted KRD contribution per tenor,
// preserving original tenor column order. Empty when the table carries no
// KRD contribution columns.
func (a *Analyzer) KRDProfile() *KRDProfile {
	p := &KRDProfile{Portfolio: a.name}
	cols, tenors := krdColumns(a.t)
	for i, col := range cols {
		v, _ := a.weightedAverage(col)
		p.Tenors = append(p.Tenors, TenorContribution{Tenor: tenors[i], Weighted: v})
	}
	return p
}

// MaturityBuckets computes the weighted percentage distribution over the
// fixed maturity buckets, measured from the evaluation date. All five
// buckets are always present (zero when unpopulated), in definition order.
// Empty when the table has no Maturity column.
func (a *Analyzer) MaturityBuckets(on Date) Distribution {
	d := Distribution{Portfolio: a.name, Dimension: "Maturity Bucket"}
	if !a.t.HasColumn(maturityColumn) {
		return d
	}
	sums := make([]float64, len(maturityBuckets))
	var total float64
	for row := 0; row < a.t.NumRows(); row++ {
		maturity, ok := a.t.Date(maturityColumn, row)
		if !ok {
			continue
		}
		mv, ok := a.t.Float(marketValueColumn, row)
		if !ok {
			continue
		}
		years := on.YearsUntil(maturity)
		for i, b := range maturityBuckets {
			if years >= b.lo && years < b.hi {
				sums[i] += mv
				total += mv
				break
			}
		}
	}
	for i, b := range maturityBuckets {
		var pct float64
		if total != 0 {
			pct = sums[i] / total * 100
		}
		d.Entries = append(d.Entries, DistributionEntry{Key: b.label, Percent: Percent(pct)})
	}
	return d
}

// entry ordering policies
type entryOrder int

const (
	byKey     entryOrder = iota // grouping label ascending
	byPercent                   // percentage descending, label ascending on ties
)

// distributionByText is distribution keyed by a text column.
func (a *Analyzer) distributionByText(col string, order entryOrder) []DistributionEntry {
	return a.distribution(func(row int) (string, bool) {
		return a.t.Text(col, row)
	}, order)
}

// distribution implements the one shared algorithmic shape: group rows by
// key, sum market value per group, convert to percentages of the grand
// total, and order the entries. Rows with a missing key are excluded, so
// percentages sum to 100 over non-missing groups.
func (a *Analyzer) distribution(key func(row int) (string, bool), order entryOrder) []DistributionEntry {
	sums := make(map[string]float64)
	for row := 0; row < a.t.NumRows(); row++ {
		k, ok := key(row)
		if !ok {
			continue
		}
		if _, seen := sums[k]; !seen {
			sums[k] = 0
		}
		if mv, ok := a.t.Float(marketValueColumn, row); ok {
			sums[k] += mv
		}
	}
	if len(sums) == 0 {
		return nil
	}
	keys := make([]string, 0, len(sums))
	var total float64
	for k, sum := range sums {
		keys = append(keys, k)
		total += sum
	}
	sort.Strings(keys)
	if order == byPercent {
		sort.SliceStable(keys, func(i, j int) bool {
			return sums[keys[i]] > sums[keys[j]]
		})
	}
	entries := make([]DistributionEntry, 0, len(keys))
	for _, k := range keys {
		var pct float64
		if total != 0 {
			pct = sums[k] / total * 100
		}
		entries = append(entries, DistributionEntry{Key: k, Percent: Percent(pct)})
	}
	return entries
}
