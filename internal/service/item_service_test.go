package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/acc-api/internal/models"
	appErrors "github.com/noah-isme/acc-api/pkg/errors"
)

func TestItemServiceCreate(t *testing.T) {
	svc := NewItemService(newLedgerStore(t), nil, zap.NewNop())

	item, err := svc.Create(CreateItemRequest{
		CourseID: "c1",
		Name:     "Lab 2",
		DueDate:  time.Now().AddDate(0, 0, 7),
		Weight:   10,
		Priority: "High",
		Type:     "Lab",
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", item.ID)
	assert.Equal(t, models.PriorityHigh, item.Priority)
	assert.Equal(t, models.StatusNotStarted, item.Status)
	assert.Equal(t, models.TypeLab, item.Type)
}

func TestItemServiceCreateUnknownCourse(t *testing.T) {
	svc := NewItemService(newLedgerStore(t), nil, zap.NewNop())

	_, err := svc.Create(CreateItemRequest{
		CourseID: "missing",
		Name:     "Lab 2",
		DueDate:  time.Now(),
		Weight:   10,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestItemServiceCreateRejectsInvalidGrade(t *testing.T) {
	svc := NewItemService(newLedgerStore(t), nil, zap.NewNop())
	grade := 120.0

	_, err := svc.Create(CreateItemRequest{
		CourseID:      "c1",
		Name:          "Lab 2",
		DueDate:       time.Now(),
		Weight:        10,
		GradeReceived: &grade,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestItemServiceListByCourse(t *testing.T) {
	svc := NewItemService(newLedgerStore(t), nil, zap.NewNop())

	all := svc.List("")
	assert.Len(t, all, 2)

	scoped := svc.List("c2")
	require.Len(t, scoped, 1)
	assert.Equal(t, "a1", scoped[0].ID)
}

func TestItemServiceUpdateAndDelete(t *testing.T) {
	svc := NewItemService(newLedgerStore(t), nil, zap.NewNop())
	weight := 12.0

	item, err := svc.Update("a2", models.GradedItemPatch{Weight: &weight})
	require.NoError(t, err)
	assert.Equal(t, 12.0, item.Weight)

	record, err := svc.Delete("a2")
	require.NoError(t, err)
	assert.Equal(t, models.TrashKindGradedItem, record.Kind)

	_, err = svc.Get("a2")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestItemServiceDisplayStatus(t *testing.T) {
	st := newLedgerStore(t)
	svc := NewItemService(st, nil, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC) }

	far := svc.now().AddDate(0, 0, 20)
	item, err := svc.Create(CreateItemRequest{
		CourseID: "c1",
		Name:     "Final Project",
		DueDate:  far,
		Weight:   25,
	})
	require.NoError(t, err)

	status, err := svc.DisplayStatus(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Available", status.Label)
	assert.True(t, status.IsAvailable)
}
