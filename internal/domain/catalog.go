package domain

// Nutrition holds per-serving macros for a recipe.
type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
	Sugar    int `json:"sugar"`
}

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Notes  string `json:"notes,omitempty"`
}

// Recipe is an immutable catalog record. All recipes are defined at process
// start; nothing mutates them afterwards.
type Recipe struct {
	ID                 string       `json:"id"`
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	Image              string       `json:"image"`
	PrepTime           int          `json:"prepTime"` // minutes
	CookTime           int          `json:"cookTime"` // minutes
	Servings           int          `json:"servings"`
	Difficulty         Difficulty   `json:"difficulty"`
	MealType           MealType     `json:"mealType"`
	DietaryPreferences []string     `json:"dietaryPreferences"`
	Tags               []string     `json:"tags"`
	Ingredients        []Ingredient `json:"ingredients"`
	Instructions       []string     `json:"instructions"`
	Nutrition          Nutrition    `json:"nutritionInfo"`
}

// TotalTime is prep plus cook time in minutes. Sorting by time uses this.
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// HealthTest is an immutable catalog record describing a self-assessment.
type HealthTest struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	LongDescription string     `json:"longDescription"`
	Image           string     `json:"image"`
	Category        string     `json:"category"`
	Difficulty      Difficulty `json:"difficulty"`
	EstimatedTime   int        `json:"estimatedTime"` // minutes
	Tags            []string   `json:"tags,omitempty"`
	Featured        bool       `json:"featured"`
}

// Disease is an immutable catalog record from the disease library.
// RelatedIDs may reference records that no longer exist; readers drop
// broken references silently rather than treating them as errors.
type Disease struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	Symptoms        []string `json:"symptoms"`
	Causes          string   `json:"causes"`
	RiskFactors     []string `json:"riskFactors"`
	Prevention      []string `json:"prevention"`
	Treatment       []string `json:"treatment"`
	WhenToSeeDoctor string   `json:"whenToSeeDoctor"`
	RelatedIDs      []string `json:"relatedDiseases"`
	Featured        bool     `json:"featured"`
	Sources         []string `json:"sources"`
}
