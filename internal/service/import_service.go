package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/acc-api/internal/models"
	appErrors "github.com/noah-isme/acc-api/pkg/errors"
)

type importStore interface {
	ImportBatch(course models.Course, items []models.GradedItem) (models.Course, []models.GradedItem)
}

// ImportCourse is the course half of an import payload.
type ImportCourse struct {
	Name        string                 `json:"name" validate:"required"`
	Code        string                 `json:"code" validate:"required"`
	Color       string                 `json:"color"`
	TargetGrade float64                `json:"target_grade" validate:"gte=0,lte=100"`
	Credits     int                    `json:"credits" validate:"gt=0"`
	Term        *string                `json:"term"`
	Schedule    []models.ScheduleBlock `json:"schedule"`
}

// ImportItem is one graded item of an import payload. Enum fields holding
// unknown values coerce to Medium / Not Started / Assignment instead of being
// rejected.
type ImportItem struct {
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

// ImportRequest carries one course and its graded items. A payload missing
// either half is the one condition the engine reports loudly instead of
// treating as a no-op: silently dropping an import would lose user intent.
type ImportRequest struct {
	Course      *ImportCourse `json:"course" validate:"required"`
	GradedItems *[]ImportItem `json:"graded_items" validate:"required,dive"`
}

// ImportResult is the created course with its re-keyed items.
type ImportResult struct {
	Course models.Course       `json:"course"`
	Items  []models.GradedItem `json:"items"`
}

// ImportService brings externally produced course data into the ledger.
type ImportService struct {
	store     importStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewImportService constructs service.
func NewImportService(store importStore, validate *validator.Validate, logger *zap.Logger) *ImportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{store: store, validator: validate, logger: logger}
}

// Import validates shape, coerces enums, and appends the batch under fresh
// ids with every item rebound to the new course.
func (s *ImportService) Import(req ImportRequest) (ImportResult, error) {
	if req.Course == nil || req.GradedItems == nil {
		return ImportResult{}, appErrors.Clone(appErrors.ErrValidation, "import payload must contain course and graded_items")
	}
	if err := s.validator.Struct(req); err != nil {
		return ImportResult{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid import payload")
	}

	course := models.Course{
		Name:        req.Course.Name,
		Code:        req.Course.Code,
		Color:       req.Course.Color,
		TargetGrade: req.Course.TargetGrade,
		Credits:     req.Course.Credits,
		Term:        req.Course.Term,
		Schedule:    req.Course.Schedule,
	}
	items := make([]models.GradedItem, len(*req.GradedItems))
	for i, raw := range *req.GradedItems {
		items[i] = models.GradedItem{
			Name:          raw.Name,
			Description:   raw.Description,
			DueDate:       raw.DueDate,
			Weight:        raw.Weight,
			GradeReceived: raw.GradeReceived,
			Priority:      models.ParsePriority(raw.Priority),
			Status:        models.ParseStatus(raw.Status),
			Type:          models.ParseItemType(raw.Type),
			Notes:         raw.Notes,
			Links:         raw.Links,
		}
	}

	created, imported := s.store.ImportBatch(course, items)
	s.logger.Info("course batch imported", zap.String("course_id", created.ID), zap.Int("items", len(imported)))
	return ImportResult{Course: created, Items: imported}, nil
}
