package models

import "time"

// Ledger is the canonical in-memory state: live courses and graded items plus
// the recoverable trash. Mutations always produce a new Ledger value; the
// store package is the only writer.
type Ledger struct {
	Courses   []Course      `json:"courses"`
	Items     []GradedItem  `json:"graded_items"`
	Trash     []TrashRecord `json:"trash"`
	TermStart *time.Time    `json:"term_start,omitempty"`
	TermEnd   *time.Time    `json:"term_end,omitempty"`
}

// Clone returns a deep copy of the ledger.
func (l Ledger) Clone() Ledger {
	out := Ledger{
		TermStart: clonePtr(l.TermStart),
		TermEnd:   clonePtr(l.TermEnd),
	}
	if l.Courses != nil {
		out.Courses = make([]Course, len(l.Courses))
		for i, c := range l.Courses {
			out.Courses[i] = c.Clone()
		}
	}
	out.Items = cloneItems(l.Items)
	if l.Trash != nil {
		out.Trash = make([]TrashRecord, len(l.Trash))
		for i, t := range l.Trash {
			out.Trash[i] = t.Clone()
		}
	}
	return out
}

// CourseByID looks up a live course.
func (l Ledger) CourseByID(id string) (Course, bool) {
	for _, c := range l.Courses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}

// ItemByID looks up a live graded item.
func (l Ledger) ItemByID(id string) (GradedItem, bool) {
	for _, item := range l.Items {
		if item.ID == id {
			return item, true
		}
	}
	return GradedItem{}, false
}

// ItemsByCourse returns the live graded items belonging to a course.
func (l Ledger) ItemsByCourse(courseID string) []GradedItem {
	var out []GradedItem
	for _, item := range l.Items {
		if item.CourseID == courseID {
			out = append(out, item)
		}
	}
	return out
}

// TrashByID looks up a trash record.
func (l Ledger) TrashByID(id string) (TrashRecord, bool) {
	for _, t := range l.Trash {
		if t.ID == id {
			return t, true
		}
	}
	return TrashRecord{}, false
}
