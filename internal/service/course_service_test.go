package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/acc-api/internal/models"
	"github.com/noah-isme/acc-api/internal/store"
	appErrors "github.com/noah-isme/acc-api/pkg/errors"
	"github.com/noah-isme/acc-api/pkg/snapshot"
)

type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func newLedgerStore(t *testing.T) *store.Store {
	t.Helper()
	fixed := func() time.Time { return time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC) }
	return store.New(context.Background(), snapshot.NewMemory(), zap.NewNop(),
		store.WithIDGenerator(&seqIDs{}), store.WithClock(fixed))
}

func TestCourseServiceCreate(t *testing.T) {
	svc := NewCourseService(newLedgerStore(t), nil, zap.NewNop())

	course, err := svc.Create(CreateCourseRequest{
		Name:        "Linear Algebra",
		Code:        "MATH201",
		TargetGrade: 88,
		Credits:     4,
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", course.ID)
	assert.Equal(t, "MATH201", course.Code)

	got, err := svc.Get(course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Linear Algebra", got.Name)
}

func TestCourseServiceCreateRejectsInvalidPayload(t *testing.T) {
	svc := NewCourseService(newLedgerStore(t), nil, zap.NewNop())

	_, err := svc.Create(CreateCourseRequest{Name: "", Code: "X", Credits: 0})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCourseServiceGetMissing(t *testing.T) {
	svc := NewCourseService(newLedgerStore(t), nil, zap.NewNop())

	_, err := svc.Get("missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCourseServiceUpdate(t *testing.T) {
	svc := NewCourseService(newLedgerStore(t), nil, zap.NewNop())
	target := 92.0

	course, err := svc.Update("c1", models.CoursePatch{TargetGrade: &target})
	require.NoError(t, err)
	assert.Equal(t, 92.0, course.TargetGrade)

	_, err = svc.Update("missing", models.CoursePatch{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCourseServiceDelete(t *testing.T) {
	svc := NewCourseService(newLedgerStore(t), nil, zap.NewNop())

	record, err := svc.Delete("c2")
	require.NoError(t, err)
	assert.Equal(t, models.TrashKindCourse, record.Kind)

	_, err = svc.Get("c2")
	require.Error(t, err)
}

func TestCourseServiceSummary(t *testing.T) {
	st := newLedgerStore(t)
	svc := NewCourseService(st, nil, zap.NewNop())

	// Seed course c1 has one graded lab: weight 10, grade 100, target 90.
	summary, err := svc.Summary("c1")
	require.NoError(t, err)
	assert.InDelta(t, 10, summary.Summary.ScoredWeight, 1e-9)
	assert.InDelta(t, 100, summary.Summary.Average, 1e-9)
	assert.InDelta(t, 10, summary.TotalWeight, 1e-9)
	assert.InDelta(t, -10, summary.GapToTarget, 1e-9)
	require.Len(t, summary.Breakdown, 1)
	assert.Equal(t, models.TypeLab, summary.Breakdown[0].Type)
}

func TestCourseServiceSummaryEmptyCourse(t *testing.T) {
	st := newLedgerStore(t)
	svc := NewCourseService(st, nil, zap.NewNop())
	created := st.AddCourse(models.Course{Name: "Seminar", Code: "SEM1", TargetGrade: 80, Credits: 1})

	summary, err := svc.Summary(created.ID)
	require.NoError(t, err)
	assert.Zero(t, summary.Summary.ScoredWeight)
	assert.Zero(t, summary.Summary.Average)
	assert.Empty(t, summary.Breakdown)
	assert.InDelta(t, 80, summary.GapToTarget, 1e-9)
}
