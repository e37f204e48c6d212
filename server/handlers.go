package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tickoo/fixedincome"
)

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("failed to encode response")
	}
}

// analyzer resolves the {name} path parameter, writing a 404 when the
// portfolio is not loaded.
func (s *Server) analyzer(w http.ResponseWriter, r *http.Request) *fixedincome.Analyzer {
	name := chi.URLParam(r, "name")
	a, found := s.portfolios[name]
	if !found {
		http.Error(w, "unknown portfolio "+name, http.StatusNotFound)
		return nil
	}
	return a
}

// evalDate reads the optional ?date=YYYY-MM-DD parameter, defaulting to
// today. A second return of false means the date was present but invalid
// (already reported to the client).
func (s *Server) evalDate(w http.ResponseWriter, r *http.Request) (fixedincome.Date, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return fixedincome.Today(), true
	}
	on, err := fixedincome.ParseDate(raw)
	if err != nil {
		http.Error(w, "invalid date "+raw, http.StatusBadRequest)
		return fixedincome.Date{}, false
	}
	return on, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handlePortfolios(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]any{"portfolios": s.names()})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	a := s.analyzer(w, r)
	if a == nil {
		return
	}
	on, ok := s.evalDate(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	summary := a.Summary(on)
	s.mu.Unlock()
	s.writeJSON(w, summary)
}

func (s *Server) handleDuration(w http.ResponseWriter, r *http.Request) {
	a := s.analyzer(w, r)
	if a == nil {
		return
	}
	s.mu.Lock()
	report := a.Duration()
	s.mu.Unlock()
	s.writeJSON(w, report)
}

func (s *Server) handleCredit(w http.ResponseWriter, r *http.Request) {
	a := s.analyzer(w, r)
	if a == nil {
		return
	}
	s.mu.Lock()
	dist := a.CreditDistribution()
	s.mu.Unlock()
	s.writeJSON(w, dist)
}

func (s *Server) handleRatings(w http.ResponseWriter, r *http.Request) {
	a := s.analyzer(w, r)
	if a == nil {
		return
	}
	s.mu.Lock()
	dists := a.RatingDistributions()
	s.mu.Unlock()
	s.writeJSON(w, map[string]any{"distributions": dists})
}

func (s *Server) handleSector(w http.ResponseWriter, r *http.Request) {
	a := s.analyzer(w, r)
	if a == nil {
		return
	}
	s.mu.Lock()
	dist := a.SectorExposure()
	s.mu.Unlock()
	s.writeJSON(w, dist)
}

func (s *Server) handleCurrency(w http.ResponseWriter, r *http.Request) {
	a := s.analyzer(w, r)
	if a == nil {
		return
	}
	s.mu.Lock()
	dist := a.CurrencyExposure()
	s.mu.Unlock()
	s.writeJSON(w, dist)
}

func (s *Server) handleMaturity(w http.ResponseWriter, r *http.Request) {
	a := s.analyzer(w, r)
	if a == nil {
		return
	}
	on, ok := s.evalDate(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	dist := a.MaturityBuckets(on)
	s.mu.Unlock()
	s.writeJSON(w, dist)
}

func (s *Server) handleKRD(w http.ResponseWriter, r *http.Request) {
	a := s.analyzer(w, r)
	if a == nil {
		return
	}
	s.mu.Lock()
	profile := a.KRDProfile()
	s.mu.Unlock()
	s.writeJSON(w, profile)
}

func (s *Server) handleHoldings(w http.ResponseWriter, r *http.Request) {
	a := s.analyzer(w, r)
	if a == nil {
		return
	}
	n := queryInt(r, "n", 10)
	s.mu.Lock()
	rank := a.TopHoldings(n)
	s.mu.Unlock()
	s.writeJSON(w, rank)
}

func (s *Server) handleBreakdowns(w http.ResponseWriter, r *http.Request) {
	a := s.analyzer(w, r)
	if a == nil {
		return
	}
	topN := queryInt(r, "top", 10)
	s.mu.Lock()
	breakdowns := a.CategoricalBreakdowns(topN)
	s.mu.Unlock()
	s.writeJSON(w, map[string]any{"breakdowns": breakdowns})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
