package domain

// FacetAll is the sentinel facet value meaning "do not filter on this
// dimension". An empty string is treated the same way.
const FacetAll = "all"

// RecipeSort selects the comparator applied after filtering.
type RecipeSort string

const (
	RecipeSortDefault      RecipeSort = "default"
	RecipeSortTimeAsc      RecipeSort = "prep-time-asc"
	RecipeSortTimeDesc     RecipeSort = "prep-time-desc"
	RecipeSortCaloriesAsc  RecipeSort = "calories-asc"
	RecipeSortCaloriesDesc RecipeSort = "calories-desc"
)

func (s RecipeSort) String() string { return string(s) }

func (s RecipeSort) IsValid() bool {
	switch s {
	case RecipeSortDefault, RecipeSortTimeAsc, RecipeSortTimeDesc,
		RecipeSortCaloriesAsc, RecipeSortCaloriesDesc:
		return true
	}
	return false
}

// RecipeFilter combines a free-text query, facet equality filters, and a
// sort option. Facets left empty or set to FacetAll are skipped; the rest
// are AND-combined with the text query.
type RecipeFilter struct {
	Query      string
	Dietary    string
	MealType   string
	Difficulty string
	Sort       RecipeSort
}

// TestFilter filters the health-test catalog.
type TestFilter struct {
	Query      string
	Category   string
	Difficulty string
}

// DiseaseFilter filters the disease library.
type DiseaseFilter struct {
	Query    string
	Category string
}
