package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/acc-api/pkg/errors"
)

func TestReconcileServiceCommitsEditedList(t *testing.T) {
	st := newLedgerStore(t)
	svc := NewReconcileService(st, nil, zap.NewNop())

	// Course c2 starts with the seed item a1 (weight 5). The session renames
	// it, bumps the weight, and adds a scratch row.
	result, err := svc.Reconcile("c2", ReconcileRequest{
		Items: []ScratchItem{
			{ID: "a1", Name: "Problem Set 1 (revised)", Weight: 8, DueDate: time.Now()},
			{ID: "scratch-1", Name: "Problem Set 2", Weight: 12, DueDate: time.Now()},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Deleted)

	items := st.Items("c2")
	require.Len(t, items, 2)
	kept, ok := st.Item("a1")
	require.True(t, ok)
	assert.Equal(t, "Problem Set 1 (revised)", kept.Name)
	assert.Equal(t, 8.0, kept.Weight)
}

func TestReconcileServiceDeletesRemovedRows(t *testing.T) {
	st := newLedgerStore(t)
	svc := NewReconcileService(st, nil, zap.NewNop())

	result, err := svc.Reconcile("c2", ReconcileRequest{Items: []ScratchItem{}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Deleted)
	assert.Empty(t, st.Items("c2"))

	// Removed rows land in trash, not oblivion.
	require.Len(t, st.Trash(), 1)
}

func TestReconcileServiceUnknownCourse(t *testing.T) {
	svc := NewReconcileService(newLedgerStore(t), nil, zap.NewNop())

	_, err := svc.Reconcile("missing", ReconcileRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestReconcileServiceRejectsUnknownCompareField(t *testing.T) {
	svc := NewReconcileService(newLedgerStore(t), nil, zap.NewNop())

	_, err := svc.Reconcile("c2", ReconcileRequest{Compare: []string{"colour"}})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestReconcileServiceCompareOverride(t *testing.T) {
	st := newLedgerStore(t)
	svc := NewReconcileService(st, nil, zap.NewNop())
	seed, ok := st.Item("a1")
	require.True(t, ok)

	// Only the grade changed; with the default name+weight comparison this
	// would be a no-op, but the caller asked to compare grades.
	grade := 70.0
	result, err := svc.Reconcile("c2", ReconcileRequest{
		Items: []ScratchItem{{
			ID:            "a1",
			Name:          seed.Name,
			Weight:        seed.Weight,
			DueDate:       seed.DueDate,
			GradeReceived: &grade,
		}},
		Compare: []string{"grade"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)

	updated, ok := st.Item("a1")
	require.True(t, ok)
	require.NotNil(t, updated.GradeReceived)
	assert.Equal(t, 70.0, *updated.GradeReceived)
}

func TestReconcileServiceIsIdempotent(t *testing.T) {
	st := newLedgerStore(t)
	svc := NewReconcileService(st, nil, zap.NewNop())

	req := ReconcileRequest{
		Items: []ScratchItem{
			{ID: "a1", Name: "Problem Set 1", Weight: 9, DueDate: time.Now()},
		},
	}
	first, err := svc.Reconcile("c2", req)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Updated)

	second, err := svc.Reconcile("c2", req)
	require.NoError(t, err)
	assert.True(t, second.Changeset.Empty())
}
