package models

import "time"

func ptr[T any](v T) *T { return &v }

// SeedLedger builds the default starter ledger used when no snapshot exists
// or the stored snapshot cannot be decoded.
func SeedLedger(now time.Time) Ledger {
	termStart := now.AddDate(0, 0, -30)
	termEnd := now.AddDate(0, 0, 90)
	return Ledger{
		TermStart: &termStart,
		TermEnd:   &termEnd,
		Courses: []Course{
			{
				ID:          "c1",
				Name:        "Introduction to Computer Science",
				Code:        "CS101",
				Color:       "#3b82f6",
				TargetGrade: 90,
				Credits:     3,
				Term:        ptr("Fall 2024"),
			},
			{
				ID:          "c2",
				Name:        "Calculus I",
				Code:        "MATH101",
				Color:       "#ef4444",
				TargetGrade: 85,
				Credits:     4,
				Term:        ptr("Fall 2024"),
			},
		},
		Items: []GradedItem{
			{
				ID:            "a1",
				CourseID:      "c2",
				Name:          "Problem Set 1",
				Description:   "Foundational exercises.",
				DueDate:       now.AddDate(0, 0, 2),
				Weight:        5,
				GradeReceived: ptr(95.0),
				Priority:      PriorityLow,
				Status:        StatusSubmitted,
				Type:          TypeAssignment,
				Notes:         ptr("Remember to check the derivative rules."),
				Links:         []Link{{Title: "Khan Academy Reference", URL: "https://khanacademy.org"}},
			},
			{
				ID:            "a2",
				CourseID:      "c1",
				Name:          "Assignment 1: Hello World",
				Description:   "Basic coding lab.",
				DueDate:       now.AddDate(0, 0, 5),
				Weight:        10,
				GradeReceived: ptr(100.0),
				Priority:      PriorityMedium,
				Status:        StatusSubmitted,
				Type:          TypeLab,
			},
		},
		Trash: []TrashRecord{},
	}
}
