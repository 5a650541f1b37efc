// Package reconcile turns an independently edited scratch copy of a course's
// graded items into the net set of create, update, and delete operations
// against the original it was cloned from. Items carry no operation tag:
// whether an item is new is derived purely from id membership in the original
// set.
package reconcile

import "github.com/noah-isme/acc-api/internal/models"

// Field names an item attribute the differ compares when deciding whether an
// existing item was changed.
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldDueDate     Field = "due_date"
	FieldWeight      Field = "weight"
	FieldGrade       Field = "grade"
	FieldPriority    Field = "priority"
	FieldStatus      Field = "status"
	FieldType        Field = "type"
)

// DefaultFields matches the batch weight-editing flow: only name and weight
// edits generate updates.
var DefaultFields = []Field{FieldName, FieldWeight}

// ParseField maps a raw value onto a known field.
func ParseField(raw string) (Field, bool) {
	switch Field(raw) {
	case FieldName, FieldDescription, FieldDueDate, FieldWeight, FieldGrade, FieldPriority, FieldStatus, FieldType:
		return Field(raw), true
	}
	return "", false
}

// ItemUpdate pairs an existing item id with the patch that brings it in line
// with the edited copy.
type ItemUpdate struct {
	ID    string                 `json:"id"`
	Patch models.GradedItemPatch `json:"patch"`
}

// Changeset is the net difference between an original and an edited item
// list. The three sets operate on disjoint ids; Create entries still carry
// their scratch ids, which the store discards when minting real ones.
type Changeset struct {
	Create []models.GradedItem `json:"create"`
	Update []ItemUpdate        `json:"update"`
	Delete []string            `json:"delete"`
}

// Empty reports whether the changeset contains no operations.
func (c Changeset) Empty() bool {
	return len(c.Create) == 0 && len(c.Update) == 0 && len(c.Delete) == 0
}

// Option adjusts diff behaviour.
type Option func(*differ)

// WithFields sets which item fields are compared for the update set. An empty
// list falls back to the default name+weight pair.
func WithFields(fields []Field) Option {
	return func(d *differ) {
		if len(fields) > 0 {
			d.fields = fields
		}
	}
}

type differ struct {
	fields []Field
}

// Diff classifies every edited item against the original list.
//
//   - ids present in original but absent from edited are deletions
//   - ids present in both with at least one compared field changed are
//     updates, carrying only the changed fields as a patch
//   - ids absent from original are creations
//
// An edited-then-removed item lands only in Delete; an item created and
// re-edited during the session lands once in Create with its final fields.
// Diffing a list against itself yields an empty changeset, so applying a
// changeset and re-diffing is idempotent.
func Diff(original, edited []models.GradedItem, opts ...Option) Changeset {
	d := differ{fields: DefaultFields}
	for _, opt := range opts {
		opt(&d)
	}

	originals := make(map[string]models.GradedItem, len(original))
	for _, item := range original {
		originals[item.ID] = item
	}
	editedIDs := make(map[string]struct{}, len(edited))
	for _, item := range edited {
		editedIDs[item.ID] = struct{}{}
	}

	var cs Changeset
	for _, item := range original {
		if _, ok := editedIDs[item.ID]; !ok {
			cs.Delete = append(cs.Delete, item.ID)
		}
	}
	for _, item := range edited {
		orig, exists := originals[item.ID]
		if !exists {
			cs.Create = append(cs.Create, item.Clone())
			continue
		}
		patch, changed := d.patch(orig, item)
		if changed {
			cs.Update = append(cs.Update, ItemUpdate{ID: item.ID, Patch: patch})
		}
	}
	return cs
}

// patch builds a patch containing only the compared fields that differ.
func (d differ) patch(orig, edited models.GradedItem) (models.GradedItemPatch, bool) {
	var patch models.GradedItemPatch
	changed := false
	for _, f := range d.fields {
		switch f {
		case FieldName:
			if orig.Name != edited.Name {
				v := edited.Name
				patch.Name = &v
				changed = true
			}
		case FieldDescription:
			if orig.Description != edited.Description {
				v := edited.Description
				patch.Description = &v
				changed = true
			}
		case FieldDueDate:
			if !orig.DueDate.Equal(edited.DueDate) {
				v := edited.DueDate
				patch.DueDate = &v
				changed = true
			}
		case FieldWeight:
			if orig.Weight != edited.Weight {
				v := edited.Weight
				patch.Weight = &v
				changed = true
			}
		case FieldGrade:
			if !gradeEqual(orig.GradeReceived, edited.GradeReceived) && edited.GradeReceived != nil {
				patch.GradeReceived = edited.GradeReceived
				changed = true
			}
		case FieldPriority:
			if orig.Priority != edited.Priority {
				v := edited.Priority
				patch.Priority = &v
				changed = true
			}
		case FieldStatus:
			if orig.Status != edited.Status {
				v := edited.Status
				patch.Status = &v
				changed = true
			}
		case FieldType:
			if orig.Type != edited.Type {
				v := edited.Type
				patch.Type = &v
				changed = true
			}
		}
	}
	return patch, changed
}

func gradeEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ItemStore is the slice of the ledger store the applier needs.
type ItemStore interface {
	AddItem(item models.GradedItem) (models.GradedItem, bool)
	UpdateItem(id string, patch models.GradedItemPatch) (models.GradedItem, bool)
	DeleteItem(id string) (models.TrashRecord, bool)
}

// Apply runs the changeset through the store, deletions first so observers
// re-rendering between steps never see transiently inflated totals. Each
// operation applies independently; there is no partial-abort path.
func Apply(store ItemStore, cs Changeset) {
	for _, id := range cs.Delete {
		store.DeleteItem(id)
	}
	for _, upd := range cs.Update {
		store.UpdateItem(upd.ID, upd.Patch)
	}
	for _, item := range cs.Create {
		store.AddItem(item)
	}
}
