package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/panacureo/panacureo-backend/internal/domain"
	"github.com/panacureo/panacureo-backend/internal/service/assessment"
)

// AssessmentHandler serves the calculator endpoints. The calculations are
// pure functions, so the handler calls them directly.
type AssessmentHandler struct {
	log *slog.Logger
}

// NewAssessmentHandler creates an AssessmentHandler.
func NewAssessmentHandler(logger *slog.Logger) *AssessmentHandler {
	return &AssessmentHandler{log: logger.With("handler", "assessment")}
}

type bmiRequest struct {
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
	Unit   string  `json:"unit"`
}

type hrvRequest struct {
	Sex string  `json:"sex"`
	Age int     `json:"age"`
	HRV float64 `json:"hrv"`
}

// BMI handles POST /assess/bmi.
func (h *AssessmentHandler) BMI(w http.ResponseWriter, r *http.Request) {
	var req bmiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := assessment.CalculateBMI(req.Height, req.Weight, domain.UnitSystem(req.Unit))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HRV handles POST /assess/hrv.
func (h *AssessmentHandler) HRV(w http.ResponseWriter, r *http.Request) {
	var req hrvRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := assessment.ClassifyHRV(domain.Sex(req.Sex), req.Age, req.HRV)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *AssessmentHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
