package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/acc-api/internal/models"
	"github.com/noah-isme/acc-api/internal/reconcile"
	appErrors "github.com/noah-isme/acc-api/pkg/errors"
)

type reconcileStore interface {
	Course(id string) (models.Course, bool)
	Items(courseID string) []models.GradedItem
	AddItem(item models.GradedItem) (models.GradedItem, bool)
	UpdateItem(id string, patch models.GradedItemPatch) (models.GradedItem, bool)
	DeleteItem(id string) (models.TrashRecord, bool)
}

// ScratchItem is one row of an edited scratch list. Existing rows keep the id
// they were cloned with; rows added during the session carry whatever scratch
// id the editor minted. Nothing in the payload says which is which.
type ScratchItem struct {
	ID            string        `json:"id" validate:"required"`
	Name          string        `json:"name" validate:"required"`
	Description   string        `json:"description"`
	DueDate       time.Time     `json:"due_date"`
	Weight        float64       `json:"weight" validate:"gte=0"`
	GradeReceived *float64      `json:"grade_received" validate:"omitempty,gte=0,lte=100"`
	Priority      string        `json:"priority"`
	Status        string        `json:"status"`
	Type          string        `json:"type"`
	Notes         *string       `json:"notes"`
	Links         []models.Link `json:"links"`
}

// ReconcileRequest hands over a fully edited scratch list for one course.
// Compare optionally overrides which fields generate updates.
type ReconcileRequest struct {
	Items   []ScratchItem `json:"items" validate:"dive"`
	Compare []string      `json:"compare"`
}

// ReconcileResult reports what the batch commit did.
type ReconcileResult struct {
	Changeset reconcile.Changeset `json:"changeset"`
	Created   int                 `json:"created"`
	Updated   int                 `json:"updated"`
	Deleted   int                 `json:"deleted"`
}

// ReconcileService commits edited scratch lists back to the canonical ledger.
// Competing scratch sessions over the same course are not coordinated: the
// last commit wins, there is no version token on any entity.
type ReconcileService struct {
	store     reconcileStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewReconcileService constructs service.
func NewReconcileService(store reconcileStore, validate *validator.Validate, logger *zap.Logger) *ReconcileService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReconcileService{store: store, validator: validate, logger: logger}
}

// Reconcile diffs the edited list against the course's live items and applies
// the resulting changeset through the store, deletions first. Each operation
// applies independently; once the commit starts there is no abort path.
func (s *ReconcileService) Reconcile(courseID string, req ReconcileRequest) (ReconcileResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return ReconcileResult{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid scratch list payload")
	}
	if _, ok := s.store.Course(courseID); !ok {
		return ReconcileResult{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}

	fields := make([]reconcile.Field, 0, len(req.Compare))
	for _, raw := range req.Compare {
		f, ok := reconcile.ParseField(raw)
		if !ok {
			return ReconcileResult{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown compare field %q", raw))
		}
		fields = append(fields, f)
	}

	edited := make([]models.GradedItem, len(req.Items))
	for i, row := range req.Items {
		edited[i] = models.GradedItem{
			ID:            row.ID,
			CourseID:      courseID,
			Name:          row.Name,
			Description:   row.Description,
			DueDate:       row.DueDate,
			Weight:        row.Weight,
			GradeReceived: row.GradeReceived,
			Priority:      models.ParsePriority(row.Priority),
			Status:        models.ParseStatus(row.Status),
			Type:          models.ParseItemType(row.Type),
			Notes:         row.Notes,
			Links:         row.Links,
		}
	}

	original := s.store.Items(courseID)
	cs := reconcile.Diff(original, edited, reconcile.WithFields(fields))
	reconcile.Apply(s.store, cs)

	s.logger.Info("scratch list reconciled",
		zap.String("course_id", courseID),
		zap.Int("created", len(cs.Create)),
		zap.Int("updated", len(cs.Update)),
		zap.Int("deleted", len(cs.Delete)),
	)
	return ReconcileResult{
		Changeset: cs,
		Created:   len(cs.Create),
		Updated:   len(cs.Update),
		Deleted:   len(cs.Delete),
	}, nil
}
