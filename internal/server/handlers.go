package server

import (
	"errors"
	"net/http"

	"github.com/theirongolddev/tripcost/internal/catalog"
	"github.com/theirongolddev/tripcost/internal/model"
	"github.com/theirongolddev/tripcost/internal/planner"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// CatalogResponse is served at /v1/catalog.
type CatalogResponse struct {
	Currency      string              `json:"currency"`
	HopDistanceKm float64             `json:"hop_distance_km"`
	Routes        []catalog.Route     `json:"routes"`
	Cities        []catalog.City      `json:"cities"`
	Hotels        []catalog.HotelTier `json:"hotels"`
	Transports    []catalog.Transport `json:"transports"`
	Limits        planner.Limits      `json:"limits"`
}

// EstimateResponse is served at /v1/estimate.
type EstimateResponse struct {
	Currency  string              `json:"currency"`
	Result    model.TripResult    `json:"result"`
	Series    []model.SeriesPoint `json:"series"`
	Remaining float64             `json:"remaining"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *Server) handleCatalog(c *gin.Context) {
	cat := s.planner.Catalog()
	c.JSON(http.StatusOK, CatalogResponse{
		Currency:      s.cfg.Currency,
		HopDistanceKm: cat.HopDistanceKm(),
		Routes:        cat.Routes(),
		Cities:        cat.Cities(),
		Hotels:        cat.Hotels(),
		Transports:    cat.Transports(),
		Limits:        s.planner.Limits(),
	})
}

func (s *Server) handleEstimate(c *gin.Context) {
	var req model.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.Estimates.WithLabelValues(outcomeBadRequest).Inc()
		respondError(c, http.StatusBadRequest, "bad_request", "", "invalid JSON body: "+err.Error())
		return
	}

	res, err := s.planner.Evaluate(req)
	if err != nil {
		var (
			le *planner.LookupError
			re *planner.RangeError
		)
		switch {
		case errors.As(err, &le):
			s.metrics.Estimates.WithLabelValues(outcomeLookupError).Inc()
			respondError(c, http.StatusBadRequest, "unknown_key", le.Field, err.Error())
		case errors.As(err, &re):
			s.metrics.Estimates.WithLabelValues(outcomeRangeError).Inc()
			respondError(c, http.StatusBadRequest, "out_of_range", re.Field, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "internal", "", err.Error())
		}
		return
	}

	outcome := outcomeOverBudget
	if res.Sufficient {
		outcome = outcomeSufficient
	}
	s.metrics.Estimates.WithLabelValues(outcome).Inc()
	s.metrics.GrandTotal.Observe(res.GrandTotal)

	c.JSON(http.StatusOK, EstimateResponse{
		Currency:  s.cfg.Currency,
		Result:    res,
		Series:    res.Series(),
		Remaining: res.Remaining(),
	})
}

func respondError(c *gin.Context, status int, code, field, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     msg,
		Code:      code,
		Field:     field,
		RequestID: GetRequestID(c),
	})
}
