// Package assessment implements the self-assessment calculators. The
// calculators are pure: given valid input they always produce a result.
package assessment

import (
	"math"

	"github.com/panacureo/panacureo-backend/internal/domain"
)

// BMIResult is the outcome of a BMI calculation.
type BMIResult struct {
	BMI         float64 `json:"bmi"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// bmiBands is ordered by upper bound; the first band the value falls
// under wins. The last band has no upper bound.
var bmiBands = []struct {
	upper       float64
	category    string
	description string
}{
	{18.5, "Underweight", "You may need to gain weight. Consult with a healthcare professional."},
	{25, "Normal", "You have a healthy weight for your height."},
	{30, "Overweight", "You may need to lose some weight for health reasons."},
	{35, "Obese", "You may be at risk for health problems. Consider consulting a healthcare professional."},
	{math.Inf(1), "Severely Obese", "Your health may be at risk. Please consult with a healthcare professional."},
}

// CalculateBMI computes Body Mass Index from height and weight. Metric
// input is centimeters and kilograms; imperial is inches and pounds.
func CalculateBMI(height, weight float64, units domain.UnitSystem) (BMIResult, error) {
	var errs []domain.FieldError
	if !units.IsValid() {
		errs = append(errs, domain.FieldError{Field: "units", Message: "must be metric or imperial"})
	}
	if height <= 0 {
		errs = append(errs, domain.FieldError{Field: "height", Message: "must be positive"})
	}
	if weight <= 0 {
		errs = append(errs, domain.FieldError{Field: "weight", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return BMIResult{}, domain.NewValidationErrors(errs)
	}

	var bmi float64
	switch units {
	case domain.UnitMetric:
		m := height / 100
		bmi = weight / (m * m)
	case domain.UnitImperial:
		bmi = 703 * weight / (height * height)
	}
	bmi = math.Round(bmi*10) / 10

	for _, band := range bmiBands {
		if bmi < band.upper {
			return BMIResult{BMI: bmi, Category: band.category, Description: band.description}, nil
		}
	}
	// Unreachable: the last band's bound is +Inf.
	last := bmiBands[len(bmiBands)-1]
	return BMIResult{BMI: bmi, Category: last.category, Description: last.description}, nil
}
