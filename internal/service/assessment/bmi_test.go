package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panacureo/panacureo-backend/internal/domain"
)

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name         string
		height       float64
		weight       float64
		units        domain.UnitSystem
		wantBMI      float64
		wantCategory string
	}{
		{
			name:   "metric normal",
			height: 175, weight: 70, units: domain.UnitMetric,
			wantBMI: 22.9, wantCategory: "Normal",
		},
		{
			name:   "imperial normal",
			height: 69, weight: 155, units: domain.UnitImperial,
			wantBMI: 22.9, wantCategory: "Normal",
		},
		{
			name:   "metric normal low end",
			height: 170, weight: 56.65, units: domain.UnitMetric,
			wantBMI: 19.6, wantCategory: "Normal",
		},
		{
			name:   "underweight",
			height: 180, weight: 55, units: domain.UnitMetric,
			wantBMI: 17.0, wantCategory: "Underweight",
		},
		{
			name:   "underweight extreme",
			height: 170, weight: 30, units: domain.UnitMetric,
			wantBMI: 10.4, wantCategory: "Underweight",
		},
		{
			name:   "overweight",
			height: 170, weight: 80, units: domain.UnitMetric,
			wantBMI: 27.7, wantCategory: "Overweight",
		},
		{
			name:   "obese",
			height: 165, weight: 88, units: domain.UnitMetric,
			wantBMI: 32.3, wantCategory: "Obese",
		},
		{
			name:   "severely obese",
			height: 160, weight: 100, units: domain.UnitMetric,
			wantBMI: 39.1, wantCategory: "Severely Obese",
		},
		{
			name:   "boundary 18.5 is normal",
			height: 200, weight: 74, units: domain.UnitMetric,
			wantBMI: 18.5, wantCategory: "Normal",
		},
		{
			name:   "boundary 25 is overweight",
			height: 200, weight: 100, units: domain.UnitMetric,
			wantBMI: 25.0, wantCategory: "Overweight",
		},
		{
			name:   "boundary 35 is severely obese",
			height: 200, weight: 140, units: domain.UnitMetric,
			wantBMI: 35.0, wantCategory: "Severely Obese",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateBMI(tt.height, tt.weight, tt.units)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantBMI, got.BMI, 0.001)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.NotEmpty(t, got.Description)
		})
	}
}

func TestCalculateBMIInvalid(t *testing.T) {
	_, err := CalculateBMI(0, 70, domain.UnitMetric)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = CalculateBMI(175, -1, domain.UnitMetric)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = CalculateBMI(175, 70, "stone")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
