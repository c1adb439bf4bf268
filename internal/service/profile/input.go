package profile

import (
	"strings"

	"github.com/panacureo/panacureo-backend/internal/domain"
)

// GoalInput holds the user-supplied fields of a health goal. It is used
// for both creation and update; the goal id comes from elsewhere.
type GoalInput struct {
	Name       string
	Category   domain.GoalCategory
	Target     float64
	Current    float64
	Unit       string
	Progress   int
	StartDate  string
	TargetDate string
	Status     domain.GoalStatus
}

// Validate checks all fields and collects all errors.
func (i *GoalInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be weight, fitness, wellness, medical, or nutrition"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be in-progress, completed, at-risk, or missed"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// goal materializes the input as a domain goal with the given id.
// Progress is clamped to 0-100 rather than rejected; the status
// defaults to in-progress.
func (i *GoalInput) goal(id string) domain.HealthGoal {
	status := i.Status
	if status == "" {
		status = domain.GoalStatusInProgress
	}
	return domain.HealthGoal{
		ID:         id,
		Name:       strings.TrimSpace(i.Name),
		Category:   i.Category,
		Target:     i.Target,
		Current:    i.Current,
		Unit:       i.Unit,
		Progress:   clampProgress(i.Progress),
		StartDate:  i.StartDate,
		TargetDate: i.TargetDate,
		Status:     status,
	}
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// NotificationInput holds the fields of a new notification.
type NotificationInput struct {
	Title       string
	Description string
	Time        string
	Type        domain.NotificationType
}

// Validate checks all fields and collects all errors.
func (i *NotificationInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be test, recipe, goal, or article"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
