package fixedincome

// Summary is the at-a-glance overview of one portfolio.
type Summary struct {
	Portfolio        string `json:"portfolio"`
	Date             Date   `json:"-"`
	TotalMarketValue Money  `json:"total_market_value"`
	// WeightedYieldToWorst is nil when the table has no "Yield to Worst"
	// column (a valid steady state, not an error).
	WeightedYieldToWorst *float64 `json:"weighted_yield_to_worst"`
	// AverageMaturityYears is nil when the table has no "Maturity" column.
	// It depends on the evaluation date passed to Analyzer.Summary.
	AverageMaturityYears *float64 `json:"average_maturity_years"`
}

// DurationReport holds the market-value-weighted portfolio duration.
type DurationReport struct {
	Portfolio string `json:"portfolio"`
	// WeightedDuration is nil when no duration column resolves.
	WeightedDuration *float64 `json:"weighted_duration"`
}

// DistributionEntry is one labeled share of the portfolio's market value.
type DistributionEntry struct {
	Key     string  `json:"key"`
	Percent Percent `json:"percent"`
}

// Distribution is a market-value-weighted percentage distribution over the
// distinct values of one grouping column. Entry order is significant: it
// drives the row order of the consumer report.
type Distribution struct {
	Portfolio string `json:"portfolio"`
	// Dimension is the grouping column ("Composite Rating", the sector
	// column name, ...).
	Dimension string              `json:"dimension"`
	Entries   []DistributionEntry `json:"entries"`
}

// IsEmpty reports whether the distribution carries no entries, e.g. because
// no column resolved for its dimension.
func (d Distribution) IsEmpty() bool { return len(d.Entries) == 0 }

// IssuerHolding is one aggregated issuer position.
type IssuerHolding struct {
	Issuer      string `json:"issuer"`
	MarketValue Money  `json:"market_value"`
}

// HoldingsRank lists the largest issuers by total market value, descending.
type HoldingsRank struct {
	Portfolio string          `json:"portfolio"`
	Holdings  []IssuerHolding `json:"holdings"`
}

// TenorContribution is the portfolio-level weighted KRD contribution of one
// tenor bucket.
type TenorContribution struct {
	Tenor    string  `json:"tenor"`
	Weighted float64 `json:"weighted"`
}

// KRDProfile maps tenor labels to weighted key-rate-duration contributions,
// in original tenor column order.
type KRDProfile struct {
	Portfolio string              `json:"portfolio"`
	Tenors    []TenorContribution `json:"tenors"`
}

// IsEmpty reports whether the table carried no KRD contribution columns.
func (k KRDProfile) IsEmpty() bool { return len(k.Tenors) == 0 }
