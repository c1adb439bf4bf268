package domain

// HealthGoal is a user-defined target tracked on the dashboard.
// Progress is entered by the user independently of Current/Target; the
// product never derives one from the other, so neither do we.
type HealthGoal struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Category   GoalCategory `json:"category"`
	Target     float64      `json:"target"`
	Current    float64      `json:"currentValue"`
	Unit       string       `json:"unit"`
	Progress   int          `json:"progress"` // 0-100
	StartDate  string       `json:"startDate"`
	TargetDate string       `json:"targetDate"`
	Status     GoalStatus   `json:"status"`
}

// Notification is an in-app notice. Time is a relative display label
// ("2 hours ago"), not a timestamp; it is carried verbatim.
type Notification struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Time        string           `json:"time"`
	Read        bool             `json:"isRead"`
	Type        NotificationType `json:"type"`
}

// Profile is the per-user preference record. The three lists are persisted
// as opaque JSON blobs and always rewritten whole on mutation.
type Profile struct {
	Goals         []HealthGoal
	Notifications []Notification
	SavedRecipes  []string // recipe ids, set semantics
}

// DefaultProfile is the profile a user starts with. New accounts get the
// four sample notifications so the panel is not empty on first sign-in.
func DefaultProfile() Profile {
	return Profile{
		Notifications: []Notification{
			{
				ID:          "1",
				Title:       "New health test available",
				Description: "Try our new Mental Wellness Assessment test.",
				Time:        "2 hours ago",
				Type:        NotificationTypeTest,
			},
			{
				ID:          "2",
				Title:       "Recipe of the week",
				Description: "Healthy Mediterranean bowl - perfect for summer!",
				Time:        "1 day ago",
				Type:        NotificationTypeRecipe,
			},
			{
				ID:          "3",
				Title:       "Goal completed",
				Description: "Congratulations! You've reached your steps goal for the week.",
				Time:        "3 days ago",
				Read:        true,
				Type:        NotificationTypeGoal,
			},
			{
				ID:          "4",
				Title:       "New article published",
				Description: "Learn about managing stress during busy periods.",
				Time:        "5 days ago",
				Read:        true,
				Type:        NotificationTypeArticle,
			},
		},
	}
}
