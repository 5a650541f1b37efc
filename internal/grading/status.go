package grading

import (
	"time"

	"github.com/noah-isme/acc-api/internal/models"
)

// availableHorizon is how far out a due date must be for a not-started item
// to display as "Available" rather than "Not Started".
const availableHorizon = 14 * 24 * time.Hour

// DisplayStatus is the derived, time-sensitive view of an item's status.
type DisplayStatus struct {
	Label       string `json:"label"`
	IsAvailable bool   `json:"is_available"`
}

// ResolveDisplayStatus derives the display status of an item at the given
// instant. The result is a function of now and must be recomputed on every
// read: a not-started item flips from "Available" to "Not Started" on its own
// as the due date comes within the horizon.
func ResolveDisplayStatus(item models.GradedItem, now time.Time) DisplayStatus {
	if item.Status == models.StatusNotStarted {
		if item.DueDate.Sub(now) > availableHorizon {
			return DisplayStatus{Label: "Available", IsAvailable: true}
		}
		return DisplayStatus{Label: string(models.StatusNotStarted)}
	}
	return DisplayStatus{Label: string(item.Status)}
}
