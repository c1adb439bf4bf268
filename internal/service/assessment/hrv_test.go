package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panacureo/panacureo-backend/internal/domain"
)

func TestClassifyHRV(t *testing.T) {
	tests := []struct {
		name string
		sex  domain.Sex
		age  int
		ms   float64
		want string
	}{
		{"male young low", domain.SexMale, 22, 40, "Below Average"},
		{"male young average", domain.SexMale, 22, 60, "Average"},
		{"male young excellent band", domain.SexMale, 22, 80, "Excellent"},
		{"male young above all", domain.SexMale, 22, 120, "Excellent"},
		{"female young low", domain.SexFemale, 20, 50, "Below Average"},
		{"female mid above average", domain.SexFemale, 40, 65, "Above Average"},
		{"male senior", domain.SexMale, 70, 50, "Above Average"},
		{"female senior below", domain.SexFemale, 60, 35, "Below Average"},
		// A reading equal to a threshold is not strictly below it, so it
		// lands in the next band up.
		{"male 26-35 at 60 is above average", domain.SexMale, 30, 60, "Above Average"},
		{"male 26-35 just under 60 is average", domain.SexMale, 30, 59.9, "Average"},
		{"female 46-55 at 45 is average", domain.SexFemale, 50, 45, "Average"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyHRV(tt.sex, tt.age, tt.ms)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Category)
		})
	}
}

func TestClassifyHRVInvalid(t *testing.T) {
	_, err := ClassifyHRV("other", 30, 60)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = ClassifyHRV(domain.SexMale, 0, 60)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = ClassifyHRV(domain.SexMale, 30, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAgeBucket(t *testing.T) {
	assert.Equal(t, 0, ageBucket(18))
	assert.Equal(t, 0, ageBucket(25))
	assert.Equal(t, 1, ageBucket(26))
	assert.Equal(t, 2, ageBucket(45))
	assert.Equal(t, 3, ageBucket(55))
	assert.Equal(t, 4, ageBucket(56))
	assert.Equal(t, 4, ageBucket(99))
}
