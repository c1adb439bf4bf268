package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/panacureo/panacureo-backend/internal/domain"
	"github.com/panacureo/panacureo-backend/internal/service/profile"
	"github.com/panacureo/panacureo-backend/pkg/ctxutil"
)

// profileService defines the minimal interface needed by ProfileHandler.
type profileService interface {
	ListGoals(ctx context.Context, userID uuid.UUID) ([]domain.HealthGoal, error)
	AddGoal(ctx context.Context, userID uuid.UUID, input profile.GoalInput) (domain.HealthGoal, error)
	UpdateGoal(ctx context.Context, userID uuid.UUID, goalID string, input profile.GoalInput) (domain.HealthGoal, error)
	DeleteGoal(ctx context.Context, userID uuid.UUID, goalID string) error
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID uuid.UUID, notificationID string) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	ClearNotifications(ctx context.Context, userID uuid.UUID) error
	SavedRecipes(ctx context.Context, userID uuid.UUID) ([]domain.Recipe, error)
	SaveRecipe(ctx context.Context, userID uuid.UUID, recipeID string) error
	UnsaveRecipe(ctx context.Context, userID uuid.UUID, recipeID string) error
}

// ProfileHandler serves the per-user profile endpoints. All routes
// require an authenticated context user.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type goalRequest struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Target     float64 `json:"target"`
	Current    float64 `json:"currentValue"`
	Unit       string  `json:"unit"`
	Progress   int     `json:"progress"`
	StartDate  string  `json:"startDate"`
	TargetDate string  `json:"targetDate"`
	Status     string  `json:"status"`
}

func (req goalRequest) input() profile.GoalInput {
	return profile.GoalInput{
		Name:       req.Name,
		Category:   domain.GoalCategory(req.Category),
		Target:     req.Target,
		Current:    req.Current,
		Unit:       req.Unit,
		Progress:   req.Progress,
		StartDate:  req.StartDate,
		TargetDate: req.TargetDate,
		Status:     domain.GoalStatus(req.Status),
	}
}

type saveRecipeRequest struct {
	RecipeID string `json:"recipeId"`
}

// requireUser extracts the authenticated user id, writing a 401 if absent.
func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok || userID == uuid.Nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// ListGoals handles GET /profile/goals.
func (h *ProfileHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	goals, err := h.svc.ListGoals(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

// AddGoal handles POST /profile/goals.
func (h *ProfileHandler) AddGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	goal, err := h.svc.AddGoal(r.Context(), userID, req.input())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, goal)
}

// UpdateGoal handles PUT /profile/goals/{id}.
func (h *ProfileHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	goal, err := h.svc.UpdateGoal(r.Context(), userID, r.PathValue("id"), req.input())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

// DeleteGoal handles DELETE /profile/goals/{id}.
func (h *ProfileHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteGoal(r.Context(), userID, r.PathValue("id")); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListNotifications handles GET /profile/notifications.
func (h *ProfileHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	notifications, err := h.svc.ListNotifications(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

// MarkRead handles POST /profile/notifications/{id}/read.
func (h *ProfileHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.MarkRead(r.Context(), userID, r.PathValue("id")); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// MarkAllRead handles POST /profile/notifications/read-all.
func (h *ProfileHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.MarkAllRead(r.Context(), userID); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ClearNotifications handles DELETE /profile/notifications.
func (h *ProfileHandler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.ClearNotifications(r.Context(), userID); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSavedRecipes handles GET /profile/recipes. Returns the resolved
// recipes, not just ids.
func (h *ProfileHandler) ListSavedRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	recipes, err := h.svc.SavedRecipes(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// SaveRecipe handles POST /profile/recipes.
func (h *ProfileHandler) SaveRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req saveRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.SaveRecipe(r.Context(), userID, req.RecipeID); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

// UnsaveRecipe handles DELETE /profile/recipes/{id}.
func (h *ProfileHandler) UnsaveRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.UnsaveRecipe(r.Context(), userID, r.PathValue("id")); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProfileHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
