package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/acc-api/internal/models"
)

func grade(v float64) *float64 { return &v }

func TestWeightedAverage(t *testing.T) {
	items := []models.GradedItem{
		{ID: "a", Weight: 60, GradeReceived: grade(90)},
		{ID: "b", Weight: 40, GradeReceived: grade(80)},
	}

	s := WeightedAverage(items)
	assert.InDelta(t, 100, s.ScoredWeight, 1e-9)
	assert.InDelta(t, 86, s.PointsEarned, 1e-9)
	assert.InDelta(t, 86, s.Average, 1e-9)
}

func TestWeightedAverageSkipsUngraded(t *testing.T) {
	items := []models.GradedItem{
		{ID: "a", Weight: 60, GradeReceived: grade(90)},
		{ID: "b", Weight: 40},
	}

	s := WeightedAverage(items)
	assert.InDelta(t, 60, s.ScoredWeight, 1e-9)
	assert.InDelta(t, 90, s.Average, 1e-9)
}

func TestWeightedAverageZeroGradeIsScored(t *testing.T) {
	items := []models.GradedItem{{ID: "a", Weight: 50, GradeReceived: grade(0)}}

	s := WeightedAverage(items)
	assert.InDelta(t, 50, s.ScoredWeight, 1e-9)
	assert.InDelta(t, 0, s.Average, 1e-9)
}

func TestWeightedAverageEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, WeightedAverage(nil))
	assert.Equal(t, Summary{}, WeightedAverage([]models.GradedItem{{ID: "a", Weight: 30}}))
}

func TestWeightedAverageOrderIndependent(t *testing.T) {
	a := models.GradedItem{ID: "a", Weight: 12.5, GradeReceived: grade(77.7)}
	b := models.GradedItem{ID: "b", Weight: 33.3, GradeReceived: grade(91.2)}
	c := models.GradedItem{ID: "c", Weight: 54.2, GradeReceived: grade(64)}

	fwd := WeightedAverage([]models.GradedItem{a, b, c})
	rev := WeightedAverage([]models.GradedItem{c, b, a})
	assert.InDelta(t, fwd.Average, rev.Average, 1e-9)
	assert.InDelta(t, fwd.PointsEarned, rev.PointsEarned, 1e-9)
}

func TestBreakdownByType(t *testing.T) {
	items := []models.GradedItem{
		{ID: "a", Type: models.TypeLab, Weight: 10, GradeReceived: grade(80)},
		{ID: "b", Type: models.TypeFinal, Weight: 40},
		{ID: "c", Type: models.TypeLab, Weight: 10, GradeReceived: grade(100)},
	}

	breakdown := BreakdownByType(items)
	require.Len(t, breakdown, 2)

	assert.Equal(t, models.TypeLab, breakdown[0].Type)
	assert.InDelta(t, 20, breakdown[0].TotalWeight, 1e-9)
	assert.InDelta(t, 90, breakdown[0].Average, 1e-9)
	assert.Len(t, breakdown[0].Items, 2)

	assert.Equal(t, models.TypeFinal, breakdown[1].Type)
	assert.InDelta(t, 40, breakdown[1].TotalWeight, 1e-9)
	assert.InDelta(t, 0, breakdown[1].Average, 1e-9)
}

func TestBreakdownByTypeEmpty(t *testing.T) {
	assert.Empty(t, BreakdownByType(nil))
}

func TestGapToTarget(t *testing.T) {
	assert.InDelta(t, 4, GapToTarget(86, 90), 1e-9)
	assert.InDelta(t, -6, GapToTarget(91, 85), 1e-9)
}

func TestTotalWeight(t *testing.T) {
	items := []models.GradedItem{
		{ID: "a", Weight: 30},
		{ID: "b", Weight: 45.5, GradeReceived: grade(70)},
	}
	assert.InDelta(t, 75.5, TotalWeight(items), 1e-9)
}
