package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/acc-api/internal/grading"
	"github.com/noah-isme/acc-api/internal/models"
	appErrors "github.com/noah-isme/acc-api/pkg/errors"
)

type itemStore interface {
	Items(courseID string) []models.GradedItem
	Item(id string) (models.GradedItem, bool)
	AddItem(item models.GradedItem) (models.GradedItem, bool)
	UpdateItem(id string, patch models.GradedItemPatch) (models.GradedItem, bool)
	DeleteItem(id string) (models.TrashRecord, bool)
}

// CreateItemRequest handles graded item creation payload. Enum-valued fields
// arrive as raw strings and coerce to documented defaults when unknown.
type CreateItemRequest struct {
	CourseID      string        `json:"course_id" validate:"required"`
	Name          string        `json:"name" validate:"required"`
	Description   string        `json:"description"`
	DueDate       time.Time     `json:"due_date" validate:"required"`
	Weight        float64       `json:"weight" validate:"gte=0"`
	GradeReceived *float64      `json:"grade_received" validate:"omitempty,gte=0,lte=100"`
	Priority      string        `json:"priority"`
	Status        string        `json:"status"`
	Type          string        `json:"type"`
	Notes         *string       `json:"notes"`
	Links         []models.Link `json:"links"`
}

// Item builds the graded item the request describes; the id is left for the
// store to mint.
func (r CreateItemRequest) Item() models.GradedItem {
	return models.GradedItem{
		CourseID:      r.CourseID,
		Name:          r.Name,
		Description:   r.Description,
		DueDate:       r.DueDate,
		Weight:        r.Weight,
		GradeReceived: r.GradeReceived,
		Priority:      models.ParsePriority(r.Priority),
		Status:        models.ParseStatus(r.Status),
		Type:          models.ParseItemType(r.Type),
		Notes:         r.Notes,
		Links:         r.Links,
	}
}

// ItemService manages graded item lifecycle over the ledger store.
type ItemService struct {
	store     itemStore
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewItemService constructs service.
func NewItemService(store itemStore, validate *validator.Validate, logger *zap.Logger) *ItemService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItemService{store: store, validator: validate, logger: logger, now: time.Now}
}

// List returns live graded items, optionally filtered by course.
func (s *ItemService) List(courseID string) []models.GradedItem {
	return s.store.Items(courseID)
}

// Get returns one graded item by id.
func (s *ItemService) Get(id string) (models.GradedItem, error) {
	item, ok := s.store.Item(id)
	if !ok {
		return models.GradedItem{}, appErrors.Clone(appErrors.ErrNotFound, "graded item not found")
	}
	return item, nil
}

// Create validates and appends a new graded item under its course.
func (s *ItemService) Create(req CreateItemRequest) (models.GradedItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.GradedItem{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid graded item payload")
	}
	item, ok := s.store.AddItem(req.Item())
	if !ok {
		return models.GradedItem{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	s.logger.Info("graded item created", zap.String("item_id", item.ID), zap.String("course_id", item.CourseID))
	return item, nil
}

// Update merges patch fields into an existing graded item.
func (s *ItemService) Update(id string, patch models.GradedItemPatch) (models.GradedItem, error) {
	item, ok := s.store.UpdateItem(id, patch)
	if !ok {
		return models.GradedItem{}, appErrors.Clone(appErrors.ErrNotFound, "graded item not found")
	}
	return item, nil
}

// Delete soft-deletes the graded item into trash.
func (s *ItemService) Delete(id string) (models.TrashRecord, error) {
	record, ok := s.store.DeleteItem(id)
	if !ok {
		return models.TrashRecord{}, appErrors.Clone(appErrors.ErrNotFound, "graded item not found")
	}
	return record, nil
}

// DisplayStatus resolves the item's time-sensitive display status at the
// current instant.
func (s *ItemService) DisplayStatus(id string) (grading.DisplayStatus, error) {
	item, ok := s.store.Item(id)
	if !ok {
		return grading.DisplayStatus{}, appErrors.Clone(appErrors.ErrNotFound, "graded item not found")
	}
	return grading.ResolveDisplayStatus(item, s.now()), nil
}
