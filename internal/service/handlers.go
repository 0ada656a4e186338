package service

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"biteutil/internal/components/chrono"
	"biteutil/lib/nav"
	"biteutil/lib/textutil"
)

// naive readings have no zone, so they are printed without one
const naiveLayout = "2006-01-02T15:04:05"

type pacificResponse struct {
	UTC           string `json:"utc"`
	Pacific       string `json:"pacific"`
	Abbreviation  string `json:"abbreviation"`
	OffsetSeconds int    `json:"offset_seconds"`
	StartString   string `json:"start_string"`
}

func newPacificResponse(utc time.Time) pacificResponse {
	pacific := chrono.ConvertUTCToPacific(utc)
	abbreviation, offset := pacific.Zone()
	return pacificResponse{
		UTC:           utc.UTC().Format(time.RFC3339),
		Pacific:       pacific.Format(time.RFC3339),
		Abbreviation:  abbreviation,
		OffsetSeconds: offset,
		StartString:   chrono.FormatPacificStartString(pacific),
	}
}

// GET /v1/pacific?utc=<RFC3339>, the current time is used when utc is absent.
func (s UtilService) handlePacific(w http.ResponseWriter, r *http.Request) {
	utc := s.clock.Now()
	if raw := r.URL.Query().Get("utc"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("utc: %w", err))
			return
		}
		utc = parsed
	}
	s.writeJSON(w, http.StatusOK, newPacificResponse(utc))
}

type dstWindowResponse struct {
	Year  int    `json:"year"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// GET /v1/dst-window?year=<n>, defaults to the current Pacific year.
func (s UtilService) handleDSTWindow(w http.ResponseWriter, r *http.Request) {
	year := s.clock.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 9999 {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("year: invalid value %q", raw))
			return
		}
		year = parsed
	}
	window := chrono.DSTWindowFor(year)
	s.writeJSON(w, http.StatusOK, dstWindowResponse{
		Year:  year,
		Start: window.Start.Format(naiveLayout),
		End:   window.End.Format(naiveLayout),
	})
}

type percentResponse struct {
	Percent string `json:"percent"`
}

func parseFloatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%s: missing", name)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return value, nil
}

// GET /v1/percent?numerator=&denominator=&digits=
func (s UtilService) handlePercent(w http.ResponseWriter, r *http.Request) {
	numerator, err := parseFloatParam(r, "numerator")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	denominator, err := parseFloatParam(r, "denominator")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	digits := s.config.PercentDigits
	if raw := r.URL.Query().Get("digits"); raw != "" {
		digits, err = strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("digits: %w", err))
			return
		}
		if digits < textutil.MinDigits || digits > textutil.MaxDigits {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf(
				"digits: %d is outside [%d, %d]",
				digits, textutil.MinDigits, textutil.MaxDigits,
			))
			return
		}
	}

	s.writeJSON(w, http.StatusOK, percentResponse{
		Percent: textutil.PercentStringDigits(numerator, denominator, digits),
	})
}

type setActiveNavRequest struct {
	Nav  nav.MainNav `json:"nav"`
	Name string      `json:"name"`
}

// POST /v1/nav/active with {nav, name}, responds with the updated nav.
func (s UtilService) handleSetActiveNav(w http.ResponseWriter, r *http.Request) {
	var req setActiveNavRequest
	if !s.readJSON(w, r, &req) {
		return
	}

	if !nav.HasScope(req.Nav, req.Name) {
		closest, score := nav.ClosestScope(req.Nav, req.Name)
		s.tel.ReportWarning(
			report_nav_no_match,
			slog.String("name", req.Name),
			slog.String("closest", closest),
			slog.Float64("similarity", score),
		)
	}
	nav.SetActiveNav(&req.Nav, req.Name)

	s.writeJSON(w, http.StatusOK, req.Nav)
}
