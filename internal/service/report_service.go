package service

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/acc-api/internal/grading"
	"github.com/noah-isme/acc-api/internal/models"
	appErrors "github.com/noah-isme/acc-api/pkg/errors"
	"github.com/noah-isme/acc-api/pkg/export"
)

type reportStore interface {
	Course(id string) (models.Course, bool)
	Items(courseID string) []models.GradedItem
}

// ReportFormat names a supported download format.
type ReportFormat string

const (
	FormatCSV ReportFormat = "csv"
	FormatPDF ReportFormat = "pdf"
)

// Report is a rendered course grade report ready to serve.
type Report struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReportService renders per-course grade reports.
type ReportService struct {
	store  reportStore
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
	now    func() time.Time
}

// NewReportService constructs service.
func NewReportService(store reportStore, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		store:  store,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
		now:    time.Now,
	}
}

var reportHeaders = []string{"Name", "Type", "Due", "Weight", "Grade", "Status"}

// Render builds the grade report for one course in the requested format.
func (s *ReportService) Render(courseID string, format ReportFormat) (Report, error) {
	course, ok := s.store.Course(courseID)
	if !ok {
		return Report{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	items := s.store.Items(courseID)
	now := s.now()

	dataset := export.Dataset{Headers: reportHeaders}
	for _, item := range items {
		grade := "-"
		if item.GradeReceived != nil {
			grade = fmt.Sprintf("%.1f", *item.GradeReceived)
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Name":   item.Name,
			"Type":   string(item.Type),
			"Due":    item.DueDate.Format("2006-01-02"),
			"Weight": fmt.Sprintf("%.1f", item.Weight),
			"Grade":  grade,
			"Status": grading.ResolveDisplayStatus(item, now).Label,
		})
	}

	base := strings.ToLower(strings.ReplaceAll(course.Code, " ", "-"))
	switch format {
	case FormatCSV:
		data, err := s.csv.Render(dataset)
		if err != nil {
			return Report{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv report")
		}
		return Report{Filename: base + "-grades.csv", ContentType: "text/csv", Data: data}, nil
	case FormatPDF:
		summary := grading.WeightedAverage(items)
		line := fmt.Sprintf("Weighted average %.1f%% over %.1f scored weight (target %.0f%%)",
			summary.Average, summary.ScoredWeight, course.TargetGrade)
		data, err := s.pdf.Render(dataset, course.Name, line)
		if err != nil {
			return Report{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf report")
		}
		return Report{Filename: base + "-grades.pdf", ContentType: "application/pdf", Data: data}, nil
	}
	return Report{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported report format %q", format))
}
