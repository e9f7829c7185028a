package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/elonulator/wealth-calculator/internal/calculation"
	"github.com/elonulator/wealth-calculator/internal/comparison"
	"github.com/elonulator/wealth-calculator/internal/output"
	money "github.com/elonulator/wealth-calculator/pkg/decimal"
)

type compareResponse struct {
	Billionaire        output.PersonDocument `json:"billionaire"`
	Direction          string                `json:"direction"`
	BillionaireAmount  float64               `json:"billionaireAmount"`
	MedianAmount       float64               `json:"medianAmount"`
	BillionaireWorth   float64               `json:"billionaireNetWorth"`
	MedianWorth        float64               `json:"medianNetWorth"`
	BillionaireLabel   string                `json:"billionaireLabel"`
	MedianLabel        string                `json:"medianLabel"`
	PercentageOfWealth string                `json:"percentageOfWealth"`
	EquivalentDisplay  string                `json:"equivalentDisplay"`
	Message            string                `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func setAPIHeaders(h http.Header) {
	h.Set("Content-Type", "application/json")
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	setAPIHeaders(w.Header())

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	switch r.URL.Path {
	case "/api/billionaires":
		s.handleBillionaires(w, r)
	case "/api/compare":
		s.handleCompare(w, r)
	default:
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "Unknown API endpoint"})
	}
}

func (s *Server) handleBillionaires(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, output.NewBillionairesDocument(output.NewListing(s.data)))
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	subject := s.data.First()
	if raw := q.Get("billionaire"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "billionaire must be a numeric id"})
			return
		}
		p, ok := s.data.Find(id)
		if !ok {
			s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "Unknown billionaire"})
			return
		}
		subject = p
	}

	direction, err := comparison.ParseDirection(q.Get("direction"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	amount, err := money.ParseMoney(q.Get("amount"))
	if err != nil {
		msg := err.Error()
		if errors.Is(err, money.ErrEmptyInput) {
			msg = "amount is required"
		}
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return
	}

	subjectWorth, err := optionalFigure(q, "netWorth")
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	medianWorth, err := optionalFigure(q, "medianNetWorth")
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	view := comparison.NewView(subject).
		UpdateAmount(amount.Ptr()).
		OverrideSubjectNetWorth(subjectWorth).
		OverrideMedianNetWorth(medianWorth)
	if direction != view.Direction {
		view = view.SwapDirection()
	}

	res, err := comparison.Compute(view, s.data.MedianNetWorth())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, calculation.ErrInvalidValue) || errors.Is(err, calculation.ErrMissingArgument) {
			status = http.StatusBadRequest
		}
		s.writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, compareResponse{
		Billionaire:        output.NewPersonDocument(subject),
		Direction:          res.Direction.String(),
		BillionaireAmount:  roundedFloat(res.SubjectAmount),
		MedianAmount:       roundedFloat(res.ReferenceAmount),
		BillionaireWorth:   roundedFloat(res.SubjectNetWorth),
		MedianWorth:        roundedFloat(res.ReferenceNetWorth),
		BillionaireLabel:   res.SubjectLabel,
		MedianLabel:        res.ReferenceLabel,
		PercentageOfWealth: res.Percentage,
		EquivalentDisplay:  res.EquivalentDisplay,
		Message:            res.Message,
	})
}

// optionalFigure reads a net worth typed over the dataset figure. An absent parameter yields nil.
func optionalFigure(q url.Values, key string) (*decimal.Decimal, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	m, err := money.ParseMoney(raw)
	if errors.Is(err, money.ErrEmptyInput) {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return m.Ptr(), nil
}

// roundedFloat keeps cents precision in JSON numbers.
func roundedFloat(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("Failed to encode response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		s.logger.Debug("Failed to write response", "error", err)
	}
}
