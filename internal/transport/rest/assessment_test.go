package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/panacureo/panacureo-backend/internal/service/assessment"
)

func newAssessmentHandler() *AssessmentHandler {
	return NewAssessmentHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBMI_Metric(t *testing.T) {
	t.Parallel()
	h := newAssessmentHandler()

	body := `{"height": 175, "weight": 70, "unit": "metric"}`
	req := httptest.NewRequest(http.MethodPost, "/assess/bmi", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.BMI(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200: %s", rec.Code, rec.Body)
	}

	var result assessment.BMIResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.BMI != 22.9 {
		t.Errorf("BMI: got %v, want 22.9", result.BMI)
	}
	if result.Category != "Normal" {
		t.Errorf("Category: got %q, want Normal", result.Category)
	}
}

func TestBMI_InvalidInput(t *testing.T) {
	t.Parallel()
	h := newAssessmentHandler()

	body := `{"height": 0, "weight": 70, "unit": "metric"}`
	req := httptest.NewRequest(http.MethodPost, "/assess/bmi", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.BMI(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestBMI_MalformedBody(t *testing.T) {
	t.Parallel()
	h := newAssessmentHandler()

	req := httptest.NewRequest(http.MethodPost, "/assess/bmi", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.BMI(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestHRV_Classification(t *testing.T) {
	t.Parallel()
	h := newAssessmentHandler()

	body := `{"sex": "male", "age": 30, "hrv": 60}`
	req := httptest.NewRequest(http.MethodPost, "/assess/hrv", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HRV(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200: %s", rec.Code, rec.Body)
	}

	var result assessment.HRVResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Category != "Above Average" {
		t.Errorf("Category: got %q, want Above Average", result.Category)
	}
}

func TestHRV_UnknownSex(t *testing.T) {
	t.Parallel()
	h := newAssessmentHandler()

	body := `{"sex": "other", "age": 30, "hrv": 60}`
	req := httptest.NewRequest(http.MethodPost, "/assess/hrv", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HRV(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}
