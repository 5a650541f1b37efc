package models

import "time"

// TrashKind discriminates what a trash record wraps.
type TrashKind string

const (
	TrashKindCourse     TrashKind = "course"
	TrashKindGradedItem TrashKind = "graded_item"
)

// CourseBundle snapshots a course together with all of its graded items at
// deletion time.
type CourseBundle struct {
	Course Course       `json:"course"`
	Items  []GradedItem `json:"items"`
}

// TrashRecord is a recoverable deletion. Exactly one of Course or Item is set,
// according to Kind. The record carries its own id, distinct from the wrapped
// entity's id.
type TrashRecord struct {
	ID        string        `json:"id"`
	Kind      TrashKind     `json:"kind"`
	Course    *CourseBundle `json:"course,omitempty"`
	Item      *GradedItem   `json:"item,omitempty"`
	DeletedAt time.Time     `json:"deleted_at"`
}

// Clone returns a deep copy of the trash record.
func (t TrashRecord) Clone() TrashRecord {
	out := t
	if t.Course != nil {
		bundle := CourseBundle{Course: t.Course.Course.Clone(), Items: cloneItems(t.Course.Items)}
		out.Course = &bundle
	}
	if t.Item != nil {
		item := t.Item.Clone()
		out.Item = &item
	}
	return out
}

func cloneItems(items []GradedItem) []GradedItem {
	if items == nil {
		return nil
	}
	out := make([]GradedItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
