package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/acc-api/internal/grading"
	"github.com/noah-isme/acc-api/internal/models"
	appErrors "github.com/noah-isme/acc-api/pkg/errors"
)

type courseStore interface {
	Courses() []models.Course
	Course(id string) (models.Course, bool)
	Items(courseID string) []models.GradedItem
	AddCourse(course models.Course) models.Course
	UpdateCourse(id string, patch models.CoursePatch) (models.Course, bool)
	DeleteCourse(id string) (models.TrashRecord, bool)
}

// CreateCourseRequest handles course creation payload.
type CreateCourseRequest struct {
	Name        string                 `json:"name" validate:"required"`
	Code        string                 `json:"code" validate:"required"`
	Color       string                 `json:"color"`
	TargetGrade float64                `json:"target_grade" validate:"gte=0,lte=100"`
	Credits     int                    `json:"credits" validate:"gt=0"`
	Term        *string                `json:"term"`
	Schedule    []models.ScheduleBlock `json:"schedule"`
}

// CourseSummary bundles the weighted-grade view of one course.
type CourseSummary struct {
	Course      models.Course           `json:"course"`
	Summary     grading.Summary         `json:"summary"`
	TotalWeight float64                 `json:"total_weight"`
	Breakdown   []grading.TypeBreakdown `json:"breakdown"`
	GapToTarget float64                 `json:"gap_to_target"`
}

// CourseService manages course lifecycle over the ledger store.
type CourseService struct {
	store     courseStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs service.
func NewCourseService(store courseStore, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{store: store, validator: validate, logger: logger}
}

// List returns all live courses.
func (s *CourseService) List() []models.Course {
	return s.store.Courses()
}

// Get returns one course by id.
func (s *CourseService) Get(id string) (models.Course, error) {
	course, ok := s.store.Course(id)
	if !ok {
		return models.Course{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return course, nil
}

// Create validates and appends a new course.
func (s *CourseService) Create(req CreateCourseRequest) (models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Course{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	course := s.store.AddCourse(models.Course{
		Name:        req.Name,
		Code:        req.Code,
		Color:       req.Color,
		TargetGrade: req.TargetGrade,
		Credits:     req.Credits,
		Term:        req.Term,
		Schedule:    req.Schedule,
	})
	s.logger.Info("course created", zap.String("course_id", course.ID), zap.String("code", course.Code))
	return course, nil
}

// Update merges patch fields into an existing course.
func (s *CourseService) Update(id string, patch models.CoursePatch) (models.Course, error) {
	course, ok := s.store.UpdateCourse(id, patch)
	if !ok {
		return models.Course{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return course, nil
}

// Delete soft-deletes the course and its items into trash.
func (s *CourseService) Delete(id string) (models.TrashRecord, error) {
	record, ok := s.store.DeleteCourse(id)
	if !ok {
		return models.TrashRecord{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	s.logger.Info("course trashed", zap.String("course_id", id), zap.String("trash_id", record.ID))
	return record, nil
}

// Summary computes the weighted-grade view for one course. A course with no
// scored items reports a zero summary rather than an error.
func (s *CourseService) Summary(id string) (CourseSummary, error) {
	course, ok := s.store.Course(id)
	if !ok {
		return CourseSummary{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	items := s.store.Items(id)
	summary := grading.WeightedAverage(items)
	return CourseSummary{
		Course:      course,
		Summary:     summary,
		TotalWeight: grading.TotalWeight(items),
		Breakdown:   grading.BreakdownByType(items),
		GapToTarget: grading.GapToTarget(summary.Average, course.TargetGrade),
	}, nil
}
