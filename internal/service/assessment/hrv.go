package assessment

import "github.com/panacureo/panacureo-backend/internal/domain"

// HRVResult is the outcome of an HRV classification.
type HRVResult struct {
	Category string `json:"category"`
}

// hrvCategories name the reference bands in ascending order.
var hrvCategories = [4]string{"Below Average", "Average", "Above Average", "Excellent"}

// hrvThresholds holds the reference values per sex and age bucket, in the
// same ascending order as hrvCategories.
var hrvThresholds = map[domain.Sex][5][4]float64{
	domain.SexMale: {
		{55, 65, 75, 85}, // 18-25
		{50, 60, 70, 80}, // 26-35
		{45, 55, 65, 75}, // 36-45
		{40, 50, 60, 70}, // 46-55
		{35, 45, 55, 65}, // 56+
	},
	domain.SexFemale: {
		{60, 70, 80, 90}, // 18-25
		{55, 65, 75, 85}, // 26-35
		{50, 60, 70, 80}, // 36-45
		{45, 55, 65, 75}, // 46-55
		{40, 50, 60, 70}, // 56+
	},
}

// ClassifyHRV places an HRV reading (RMSSD, milliseconds) into a category
// using sex- and age-specific reference values. The reading is compared
// against the thresholds in ascending order and takes the name of the
// first one it is strictly below; a reading at or above every threshold
// is Excellent.
func ClassifyHRV(sex domain.Sex, age int, ms float64) (HRVResult, error) {
	var errs []domain.FieldError
	if !sex.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sex", Message: "must be male or female"})
	}
	if age < 1 || age > 120 {
		errs = append(errs, domain.FieldError{Field: "age", Message: "must be between 1 and 120"})
	}
	if ms <= 0 {
		errs = append(errs, domain.FieldError{Field: "hrv", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return HRVResult{}, domain.NewValidationErrors(errs)
	}

	thresholds := hrvThresholds[sex][ageBucket(age)]
	for i, t := range thresholds {
		if ms < t {
			return HRVResult{Category: hrvCategories[i]}, nil
		}
	}
	return HRVResult{Category: hrvCategories[3]}, nil
}

func ageBucket(age int) int {
	switch {
	case age <= 25:
		return 0
	case age <= 35:
		return 1
	case age <= 45:
		return 2
	case age <= 55:
		return 3
	default:
		return 4
	}
}
