package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradedItemApplyPatch(t *testing.T) {
	due := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	item := GradedItem{
		ID:       "a1",
		CourseID: "c1",
		Name:     "Quiz 1",
		DueDate:  due,
		Weight:   10,
		Priority: PriorityMedium,
		Status:   StatusNotStarted,
		Type:     TypeQuiz,
	}

	name := "Quiz 1 (retake)"
	grade := 88.0
	status := StatusSubmitted
	patched := item.ApplyPatch(GradedItemPatch{Name: &name, GradeReceived: &grade, Status: &status})

	assert.Equal(t, "Quiz 1 (retake)", patched.Name)
	require.NotNil(t, patched.GradeReceived)
	assert.Equal(t, 88.0, *patched.GradeReceived)
	assert.Equal(t, StatusSubmitted, patched.Status)

	// Untouched fields carry through; the receiver is unchanged.
	assert.Equal(t, due, patched.DueDate)
	assert.Equal(t, "Quiz 1", item.Name)
	assert.Nil(t, item.GradeReceived)
}

func TestGradedItemCloneIsDeep(t *testing.T) {
	grade := 72.0
	item := GradedItem{
		ID:            "a1",
		GradeReceived: &grade,
		Links:         []Link{{Title: "Syllabus", URL: "https://example.edu/syllabus"}},
	}

	clone := item.Clone()
	*clone.GradeReceived = 99
	clone.Links[0].Title = "changed"

	assert.Equal(t, 72.0, *item.GradeReceived)
	assert.Equal(t, "Syllabus", item.Links[0].Title)
}

func TestParseEnumsCoerceUnknown(t *testing.T) {
	assert.Equal(t, PriorityHigh, ParsePriority("High"))
	assert.Equal(t, PriorityMedium, ParsePriority("ASAP"))
	assert.Equal(t, StatusSubmitted, ParseStatus("Submitted"))
	assert.Equal(t, StatusNotStarted, ParseStatus("done"))
	assert.Equal(t, TypeFinal, ParseItemType("Final"))
	assert.Equal(t, TypeAssignment, ParseItemType("homework"))
}
