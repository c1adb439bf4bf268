package rest

import (
	"net/http"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	Catalog    *CatalogHandler
	Assessment *AssessmentHandler
	Profile    *ProfileHandler
	Dashboard  *DashboardHandler
	Health     *HealthHandler
	Metrics    http.Handler
}

// NewRouter builds the HTTP route table. Literal segments such as
// /tests/featured are registered alongside /tests/{id}; the mux prefers
// the more specific pattern.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// Session
	mux.HandleFunc("POST /auth/signup", h.Auth.SignUp)
	mux.HandleFunc("POST /auth/signin", h.Auth.SignIn)
	mux.HandleFunc("POST /auth/google", h.Auth.Google)
	mux.HandleFunc("POST /auth/reset", h.Auth.Reset)
	mux.HandleFunc("POST /auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /auth/signout", h.Auth.SignOut)
	mux.HandleFunc("GET /auth/me", h.Auth.Me)

	// Health test catalog
	mux.HandleFunc("GET /tests", h.Catalog.ListTests)
	mux.HandleFunc("GET /tests/featured", h.Catalog.FeaturedTests)
	mux.HandleFunc("GET /tests/categories", h.Catalog.TestCategories)
	mux.HandleFunc("GET /tests/{id}", h.Catalog.GetTest)

	// Recipe catalog
	mux.HandleFunc("GET /recipes", h.Catalog.ListRecipes)
	mux.HandleFunc("GET /recipes/featured", h.Catalog.FeaturedRecipes)
	mux.HandleFunc("GET /recipes/{id}", h.Catalog.GetRecipe)
	mux.HandleFunc("GET /recipes/{id}/related", h.Catalog.RelatedRecipes)

	// Disease library
	mux.HandleFunc("GET /diseases", h.Catalog.ListDiseases)
	mux.HandleFunc("GET /diseases/featured", h.Catalog.FeaturedDiseases)
	mux.HandleFunc("GET /diseases/categories", h.Catalog.DiseaseCategories)
	mux.HandleFunc("GET /diseases/{id}", h.Catalog.GetDisease)
	mux.HandleFunc("GET /diseases/{id}/related", h.Catalog.RelatedDiseases)

	// Calculators
	mux.HandleFunc("POST /assess/bmi", h.Assessment.BMI)
	mux.HandleFunc("POST /assess/hrv", h.Assessment.HRV)

	// Profile
	mux.HandleFunc("GET /profile/goals", h.Profile.ListGoals)
	mux.HandleFunc("POST /profile/goals", h.Profile.AddGoal)
	mux.HandleFunc("PUT /profile/goals/{id}", h.Profile.UpdateGoal)
	mux.HandleFunc("DELETE /profile/goals/{id}", h.Profile.DeleteGoal)
	mux.HandleFunc("GET /profile/notifications", h.Profile.ListNotifications)
	mux.HandleFunc("POST /profile/notifications/read-all", h.Profile.MarkAllRead)
	mux.HandleFunc("POST /profile/notifications/{id}/read", h.Profile.MarkRead)
	mux.HandleFunc("DELETE /profile/notifications", h.Profile.ClearNotifications)
	mux.HandleFunc("GET /profile/recipes", h.Profile.ListSavedRecipes)
	mux.HandleFunc("POST /profile/recipes", h.Profile.SaveRecipe)
	mux.HandleFunc("DELETE /profile/recipes/{id}", h.Profile.UnsaveRecipe)

	// Dashboard
	mux.HandleFunc("GET /dashboard", h.Dashboard.Overview)

	// Operational
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /live", h.Health.Live)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	return mux
}
