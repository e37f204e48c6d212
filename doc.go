// Package fixedincome computes descriptive risk and composition analytics
// over a fixed-income holdings table (one row per bond position).
//
// The entry point is the Analyzer: it takes a typed holdings Table plus a
// portfolio label and answers a fixed set of independent queries: summary
// statistics, market-value-weighted categorical distributions, a key-rate
// duration profile, maturity bucketing and top holdings. Each query returns
// a flat report struct that downstream collaborators (CSV export, terminal
// renderer, dashboard API) consume as-is.
//
// The engine never touches the filesystem and never mutates caller-owned
// data: a defensive copy of the table is taken at construction, and the only
// derived state is a write-once composite-rating cache on the analyzer.
package fixedincome
