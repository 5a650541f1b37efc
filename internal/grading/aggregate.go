// Package grading holds the pure grade-computation functions: weighted
// averages, per-type breakdowns, the gap to a target grade, and the derived
// display status. Nothing here mutates or stores state.
package grading

import "github.com/noah-isme/acc-api/internal/models"

// Summary aggregates the scored portion of a set of graded items.
type Summary struct {
	// ScoredWeight is the total weight of items that have received a grade.
	ScoredWeight float64 `json:"scored_weight"`
	// PointsEarned is the weight-scaled points earned over the scored items.
	PointsEarned float64 `json:"points_earned"`
	// Average is PointsEarned/ScoredWeight as a percentage, or 0 when nothing
	// has been scored yet.
	Average float64 `json:"average"`
}

// WeightedAverage computes the weighted grade summary over the scored subset
// of items. An empty or fully-ungraded input yields a zero summary, not an
// error; callers decide how to present "no grades yet".
func WeightedAverage(items []models.GradedItem) Summary {
	var s Summary
	for _, item := range items {
		if item.GradeReceived == nil {
			continue
		}
		s.ScoredWeight += item.Weight
		s.PointsEarned += item.Weight * *item.GradeReceived / 100
	}
	if s.ScoredWeight > 0 {
		s.Average = s.PointsEarned / s.ScoredWeight * 100
	}
	return s
}

// TotalWeight sums the weight of all items, graded or not. The engine only
// reports this figure; keeping it near 100 is the caller's concern.
func TotalWeight(items []models.GradedItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Weight
	}
	return total
}

// TypeBreakdown is the weighted summary for one item type.
type TypeBreakdown struct {
	Type        models.ItemType     `json:"type"`
	TotalWeight float64             `json:"total_weight"`
	Average     float64             `json:"average"`
	Items       []models.GradedItem `json:"items"`
}

// BreakdownByType groups items by type and summarises each group. Types with
// no items are omitted; groups appear in the canonical type order.
func BreakdownByType(items []models.GradedItem) []TypeBreakdown {
	groups := make(map[models.ItemType][]models.GradedItem)
	for _, item := range items {
		groups[item.Type] = append(groups[item.Type], item)
	}
	var out []TypeBreakdown
	for _, t := range models.ItemTypes {
		subset, ok := groups[t]
		if !ok {
			continue
		}
		out = append(out, TypeBreakdown{
			Type:        t,
			TotalWeight: TotalWeight(subset),
			Average:     WeightedAverage(subset).Average,
			Items:       subset,
		})
	}
	return out
}

// GapToTarget returns how far the current average sits below the target
// grade. Zero or negative means the target is met or exceeded.
func GapToTarget(currentAverage, targetGrade float64) float64 {
	return targetGrade - currentAverage
}
