package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tickoo/fixedincome"
)

const testHoldings = `Issuer Name,Market Value,Yield to Worst,Fitch Rating,Sector,Currency,Maturity,2Y
Acme Corp,100,4.0,AA,Utilities,USD,2031-06-15,0.10
Zeta Inc,300,6.0,BBB,Financials,EUR,2029-01-31,0.20
`

func testServer(t *testing.T) *Server {
	t.Helper()
	table, err := fixedincome.ImportCSV(strings.NewReader(testHoldings))
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	a, err := fixedincome.NewAnalyzer(table, "fund", "USD")
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}
	return New(zerolog.Nop(), map[string]*fixedincome.Analyzer{"fund": a})
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("cannot decode response %s: %v", rec.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	s := testServer(t)
	var body map[string]string
	decode(t, get(t, s, "/health"), &body)
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
}

func TestPortfolios(t *testing.T) {
	s := testServer(t)
	var body struct {
		Portfolios []string `json:"portfolios"`
	}
	decode(t, get(t, s, "/api/portfolios"), &body)
	if len(body.Portfolios) != 1 || body.Portfolios[0] != "fund" {
		t.Errorf("portfolios = %v, want [fund]", body.Portfolios)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	s := testServer(t)
	var body struct {
		Portfolio            string   `json:"portfolio"`
		WeightedYieldToWorst *float64 `json:"weighted_yield_to_worst"`
	}
	decode(t, get(t, s, "/api/portfolios/fund/summary?date=2026-01-01"), &body)
	if body.Portfolio != "fund" {
		t.Errorf("portfolio = %q, want fund", body.Portfolio)
	}
	// (4*100 + 6*300) / 400
	if body.WeightedYieldToWorst == nil || *body.WeightedYieldToWorst != 5.5 {
		t.Errorf("weighted_yield_to_worst = %v, want 5.5", body.WeightedYieldToWorst)
	}
}

func TestSummaryEndpointBadDate(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/api/portfolios/fund/summary?date=nonsense")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUnknownPortfolio(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/api/portfolios/other/summary")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCreditEndpoint(t *testing.T) {
	s := testServer(t)
	var body struct {
		Dimension string `json:"dimension"`
		Entries   []struct {
			Key     string  `json:"key"`
			Percent float64 `json:"percent"`
		} `json:"entries"`
	}
	decode(t, get(t, s, "/api/portfolios/fund/credit"), &body)
	if body.Dimension != "Composite Rating" {
		t.Errorf("dimension = %q, want Composite Rating", body.Dimension)
	}
	if len(body.Entries) != 2 || body.Entries[0].Key != "AA" || body.Entries[0].Percent != 25 {
		t.Errorf("entries = %v, want AA at 25%% first", body.Entries)
	}
}

func TestHoldingsEndpointLimit(t *testing.T) {
	s := testServer(t)
	var body struct {
		Holdings []struct {
			Issuer string `json:"issuer"`
		} `json:"holdings"`
	}
	decode(t, get(t, s, "/api/portfolios/fund/holdings?n=1"), &body)
	if len(body.Holdings) != 1 || body.Holdings[0].Issuer != "Zeta Inc" {
		t.Errorf("holdings = %v, want just Zeta Inc", body.Holdings)
	}
}

func TestMaturityEndpoint(t *testing.T) {
	s := testServer(t)
	var body struct {
		Entries []struct {
			Key     string  `json:"key"`
			Percent float64 `json:"percent"`
		} `json:"entries"`
	}
	decode(t, get(t, s, "/api/portfolios/fund/maturity?date=2026-01-01"), &body)
	if len(body.Entries) != 5 {
		t.Fatalf("got %d buckets, want all 5", len(body.Entries))
	}
	// Acme matures 2031-06-15 (5-10y), Zeta 2029-01-31 (3-5y)
	byKey := make(map[string]float64)
	for _, e := range body.Entries {
		byKey[e.Key] = e.Percent
	}
	if byKey["3-5y"] != 75 || byKey["5-10y"] != 25 {
		t.Errorf("buckets = %v, want 3-5y at 75 and 5-10y at 25", byKey)
	}
}

func TestKRDEndpoint(t *testing.T) {
	s := testServer(t)
	var body struct {
		Tenors []struct {
			Tenor    string  `json:"tenor"`
			Weighted float64 `json:"weighted"`
		} `json:"tenors"`
	}
	decode(t, get(t, s, "/api/portfolios/fund/krd"), &body)
	if len(body.Tenors) != 1 || body.Tenors[0].Tenor != "2Y" {
		t.Fatalf("tenors = %v, want just 2Y", body.Tenors)
	}
	// (0.10*100 + 0.20*300) / 400
	if diff := body.Tenors[0].Weighted - 0.175; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("weighted 2Y = %v, want 0.175", body.Tenors[0].Weighted)
	}
}
