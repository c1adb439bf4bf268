package domain

// Difficulty is the effort rating shared by health tests and recipes.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// MealType classifies a recipe by the meal it is intended for.
type MealType string

const (
	MealTypeBreakfast MealType = "Breakfast"
	MealTypeLunch     MealType = "Lunch"
	MealTypeDinner    MealType = "Dinner"
	MealTypeSnack     MealType = "Snack"
	MealTypeDessert   MealType = "Dessert"
)

func (m MealType) String() string { return string(m) }

func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack, MealTypeDessert:
		return true
	}
	return false
}

// GoalStatus tracks where a health goal stands.
type GoalStatus string

const (
	GoalStatusInProgress GoalStatus = "in-progress"
	GoalStatusCompleted  GoalStatus = "completed"
	GoalStatusAtRisk     GoalStatus = "at-risk"
	GoalStatusMissed     GoalStatus = "missed"
)

func (s GoalStatus) String() string { return string(s) }

func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusInProgress, GoalStatusCompleted, GoalStatusAtRisk, GoalStatusMissed:
		return true
	}
	return false
}

// GoalCategory groups health goals on the dashboard.
type GoalCategory string

const (
	GoalCategoryWeight    GoalCategory = "weight"
	GoalCategoryFitness   GoalCategory = "fitness"
	GoalCategoryWellness  GoalCategory = "wellness"
	GoalCategoryMedical   GoalCategory = "medical"
	GoalCategoryNutrition GoalCategory = "nutrition"
)

func (c GoalCategory) String() string { return string(c) }

func (c GoalCategory) IsValid() bool {
	switch c {
	case GoalCategoryWeight, GoalCategoryFitness, GoalCategoryWellness,
		GoalCategoryMedical, GoalCategoryNutrition:
		return true
	}
	return false
}

// NotificationType labels the origin of a notification.
type NotificationType string

const (
	NotificationTypeTest    NotificationType = "test"
	NotificationTypeRecipe  NotificationType = "recipe"
	NotificationTypeGoal    NotificationType = "goal"
	NotificationTypeArticle NotificationType = "article"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeTest, NotificationTypeRecipe, NotificationTypeGoal, NotificationTypeArticle:
		return true
	}
	return false
}

// UnitSystem selects metric or imperial inputs for the BMI calculator.
type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"
	UnitImperial UnitSystem = "imperial"
)

func (u UnitSystem) String() string { return string(u) }

func (u UnitSystem) IsValid() bool {
	return u == UnitMetric || u == UnitImperial
}

// Sex selects the HRV reference table.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func (s Sex) String() string { return string(s) }

func (s Sex) IsValid() bool {
	return s == SexMale || s == SexFemale
}
