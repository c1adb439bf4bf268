package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/panacureo/panacureo-backend/internal/domain"
	"github.com/panacureo/panacureo-backend/internal/service/catalog"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	SearchTests(ctx context.Context, input catalog.SearchTestsInput) ([]domain.HealthTest, error)
	GetTest(ctx context.Context, id string) (domain.HealthTest, error)
	FeaturedTests(ctx context.Context) ([]domain.HealthTest, error)
	TestCategories(ctx context.Context) ([]string, error)
	SearchRecipes(ctx context.Context, input catalog.SearchRecipesInput) ([]domain.Recipe, error)
	GetRecipe(ctx context.Context, id string) (domain.Recipe, error)
	FeaturedRecipes(ctx context.Context) ([]domain.Recipe, error)
	RelatedRecipes(ctx context.Context, input catalog.RelatedRecipesInput) ([]domain.Recipe, error)
	SearchDiseases(ctx context.Context, input catalog.SearchDiseasesInput) ([]domain.Disease, error)
	GetDisease(ctx context.Context, id string) (domain.Disease, error)
	FeaturedDiseases(ctx context.Context) ([]domain.Disease, error)
	RelatedDiseases(ctx context.Context, id string) ([]domain.Disease, error)
	DiseaseCategories(ctx context.Context) ([]catalog.DiseaseCategory, error)
}

// CatalogHandler serves the read-only catalog endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

// ListTests handles GET /tests.
func (h *CatalogHandler) ListTests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tests, err := h.svc.SearchTests(r.Context(), catalog.SearchTestsInput{
		Query:      q.Get("q"),
		Category:   q.Get("category"),
		Difficulty: q.Get("difficulty"),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tests)
}

// GetTest handles GET /tests/{id}.
func (h *CatalogHandler) GetTest(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetTest(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// FeaturedTests handles GET /tests/featured.
func (h *CatalogHandler) FeaturedTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.svc.FeaturedTests(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tests)
}

// TestCategories handles GET /tests/categories.
func (h *CatalogHandler) TestCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.TestCategories(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// ListRecipes handles GET /recipes.
func (h *CatalogHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	recipes, err := h.svc.SearchRecipes(r.Context(), catalog.SearchRecipesInput{
		Query:      q.Get("q"),
		Dietary:    q.Get("dietary"),
		MealType:   q.Get("mealType"),
		Difficulty: q.Get("difficulty"),
		Sort:       q.Get("sort"),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// GetRecipe handles GET /recipes/{id}.
func (h *CatalogHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.svc.GetRecipe(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}

// FeaturedRecipes handles GET /recipes/featured.
func (h *CatalogHandler) FeaturedRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.svc.FeaturedRecipes(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// RelatedRecipes handles GET /recipes/{id}/related.
func (h *CatalogHandler) RelatedRecipes(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	recipes, err := h.svc.RelatedRecipes(r.Context(), catalog.RelatedRecipesInput{
		RecipeID: r.PathValue("id"),
		Limit:    limit,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// ListDiseases handles GET /diseases.
func (h *CatalogHandler) ListDiseases(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	diseases, err := h.svc.SearchDiseases(r.Context(), catalog.SearchDiseasesInput{
		Query:    q.Get("q"),
		Category: q.Get("category"),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, diseases)
}

// GetDisease handles GET /diseases/{id}.
func (h *CatalogHandler) GetDisease(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDisease(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// FeaturedDiseases handles GET /diseases/featured.
func (h *CatalogHandler) FeaturedDiseases(w http.ResponseWriter, r *http.Request) {
	diseases, err := h.svc.FeaturedDiseases(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, diseases)
}

// RelatedDiseases handles GET /diseases/{id}/related.
func (h *CatalogHandler) RelatedDiseases(w http.ResponseWriter, r *http.Request) {
	diseases, err := h.svc.RelatedDiseases(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, diseases)
}

// DiseaseCategories handles GET /diseases/categories.
func (h *CatalogHandler) DiseaseCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.DiseaseCategories(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
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
