package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"soundhire/internal/domain"
)

func TestTotal(t *testing.T) {
	standard := domain.Package{ID: 2, Name: "Standard", DailyRate: 300000}

	assert.Equal(t, 850000.0, Total(standard, true, 550000))
	assert.Equal(t, 300000.0, Total(standard, false, 550000))
	assert.Equal(t, 300000.0, Total(standard, false, 0))
	assert.Equal(t, 300000.0, Total(standard, true, 0))
}

func TestBuildChoices(t *testing.T) {
	packages := []domain.Package{
		{ID: 1, Name: "Basic", DailyRate: 250000},
		{ID: 2, Name: "Standard", DailyRate: 300000},
	}

	choices := BuildChoices(packages, 550000)
	assert.Len(t, choices, 2)
	assert.Equal(t, "1", choices[0].ID)
	assert.Equal(t, "Basic - UGX 250,000 (+UGX 550,000 for DJ)", choices[0].Label)
	assert.Equal(t, "Standard - UGX 300,000 (+UGX 550,000 for DJ)", choices[1].Label)
}

func TestBuildChoices_NoDJSuffixWhenRateZero(t *testing.T) {
	choices := BuildChoices([]domain.Package{{ID: 3, Name: "Premium", DailyRate: 750000}}, 0)

	assert.Equal(t, "Premium - UGX 750,000", choices[0].Label)
}

func TestBuildChoices_EmptySnapshot(t *testing.T) {
	assert.Empty(t, BuildChoices(nil, 550000))
}
