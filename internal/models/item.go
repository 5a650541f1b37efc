package models

import "time"

// Priority ranks how urgent a graded item is.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Status is the stored progress state of a graded item. The display label a
// reader sees may differ; see the grading package.
type Status string

const (
	StatusNotStarted   Status = "Not Started"
	StatusInProgress   Status = "In Progress"
	StatusNotSubmitted Status = "Not Submitted"
	StatusSubmitted    Status = "Submitted"
)

// ItemType categorises a graded item for grouping and reporting.
type ItemType string

const (
	TypeAssignment ItemType = "Assignment"
	TypeLab        ItemType = "Lab"
	TypeQuiz       ItemType = "Quiz"
	TypeMidterm    ItemType = "Midterm"
	TypeFinal      ItemType = "Final"
	TypeOther      ItemType = "Other"
)

// ItemTypes lists all item types in display order.
var ItemTypes = []ItemType{TypeAssignment, TypeLab, TypeQuiz, TypeMidterm, TypeFinal, TypeOther}

// ParsePriority maps a raw value onto a known priority, defaulting to Medium.
func ParsePriority(raw string) Priority {
	switch Priority(raw) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(raw)
	}
	return PriorityMedium
}

// ParseStatus maps a raw value onto a known status, defaulting to Not Started.
func ParseStatus(raw string) Status {
	switch Status(raw) {
	case StatusNotStarted, StatusInProgress, StatusNotSubmitted, StatusSubmitted:
		return Status(raw)
	}
	return StatusNotStarted
}

// ParseItemType maps a raw value onto a known type, defaulting to Assignment.
func ParseItemType(raw string) ItemType {
	switch ItemType(raw) {
	case TypeAssignment, TypeLab, TypeQuiz, TypeMidterm, TypeFinal, TypeOther:
		return ItemType(raw)
	}
	return TypeAssignment
}

// Link is a titled reference URL attached to a graded item.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// GradedItem is any gradable unit belonging to a course. A nil GradeReceived
// means "ungraded", which is distinct from a grade of zero.
type GradedItem struct {
	ID            string    `json:"id"`
	CourseID      string    `json:"course_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	DueDate       time.Time `json:"due_date"`
	Weight        float64   `json:"weight"`
	GradeReceived *float64  `json:"grade_received,omitempty"`
	Priority      Priority  `json:"priority"`
	Status        Status    `json:"status"`
	Type          ItemType  `json:"type"`
	Notes         *string   `json:"notes,omitempty"`
	Links         []Link    `json:"links,omitempty"`
}

// GradedItemPatch carries partial item updates; nil fields are left untouched.
type GradedItemPatch struct {
	Name          *string    `json:"name,omitempty"`
	Description   *string    `json:"description,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	Weight        *float64   `json:"weight,omitempty"`
	GradeReceived *float64   `json:"grade_received,omitempty"`
	Priority      *Priority  `json:"priority,omitempty"`
	Status        *Status    `json:"status,omitempty"`
	Type          *ItemType  `json:"type,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	Links         *[]Link    `json:"links,omitempty"`
}

// ApplyPatch returns a copy of the item with non-nil patch fields merged in.
func (g GradedItem) ApplyPatch(p GradedItemPatch) GradedItem {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.DueDate != nil {
		g.DueDate = *p.DueDate
	}
	if p.Weight != nil {
		g.Weight = *p.Weight
	}
	if p.GradeReceived != nil {
		g.GradeReceived = p.GradeReceived
	}
	if p.Priority != nil {
		g.Priority = *p.Priority
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
	if p.Type != nil {
		g.Type = *p.Type
	}
	if p.Notes != nil {
		g.Notes = p.Notes
	}
	if p.Links != nil {
		g.Links = cloneLinks(*p.Links)
	}
	return g
}

// Clone returns a deep copy of the item.
func (g GradedItem) Clone() GradedItem {
	out := g
	out.GradeReceived = clonePtr(g.GradeReceived)
	out.Notes = clonePtr(g.Notes)
	out.Links = cloneLinks(g.Links)
	return out
}

func cloneLinks(links []Link) []Link {
	if links == nil {
		return nil
	}
	out := make([]Link, len(links))
	copy(out, links)
	return out
}
