package service

import (
	"go.uber.org/zap"

	"github.com/noah-isme/acc-api/internal/models"
	appErrors "github.com/noah-isme/acc-api/pkg/errors"
)

type trashStore interface {
	Trash() []models.TrashRecord
	Restore(trashID string) bool
	EmptyTrash()
}

// TrashService exposes the recoverable-deletion lifecycle.
type TrashService struct {
	store  trashStore
	logger *zap.Logger
}

// NewTrashService constructs service.
func NewTrashService(store trashStore, logger *zap.Logger) *TrashService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TrashService{store: store, logger: logger}
}

// List returns all trash records.
func (s *TrashService) List() []models.TrashRecord {
	return s.store.Trash()
}

// Restore re-inserts a trashed entity into the live collections with its
// original ids intact.
func (s *TrashService) Restore(trashID string) error {
	if !s.store.Restore(trashID) {
		return appErrors.Clone(appErrors.ErrNotFound, "trash record not found")
	}
	s.logger.Info("trash record restored", zap.String("trash_id", trashID))
	return nil
}

// Empty irrevocably clears the trash.
func (s *TrashService) Empty() {
	s.store.EmptyTrash()
	s.logger.Info("trash emptied")
}
