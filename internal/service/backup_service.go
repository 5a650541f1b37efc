package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/acc-api/internal/models"
	appErrors "github.com/noah-isme/acc-api/pkg/errors"
)

type backupStore interface {
	Ledger() models.Ledger
	ReplaceSnapshot(ledger models.Ledger)
	SetTermWindow(start, end *time.Time)
}

// TermWindowRequest sets the term start/end timestamps. Either side may be
// omitted to clear it.
type TermWindowRequest struct {
	TermStart *time.Time `json:"term_start"`
	TermEnd   *time.Time `json:"term_end"`
}

// BackupService exposes the full-ledger export/restore contract and term
// window settings. Export followed by Restore reproduces an equal ledger.
type BackupService struct {
	store  backupStore
	logger *zap.Logger
}

// NewBackupService constructs service.
func NewBackupService(store backupStore, logger *zap.Logger) *BackupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackupService{store: store, logger: logger}
}

// Export returns the complete current ledger.
func (s *BackupService) Export() models.Ledger {
	return s.store.Ledger()
}

// Restore wholesale-replaces the ledger with the imported snapshot. Beyond
// structural shape no validation is applied; the payload passes through.
func (s *BackupService) Restore(ledger *models.Ledger) error {
	if ledger == nil {
		return appErrors.Clone(appErrors.ErrValidation, "backup payload required")
	}
	s.store.ReplaceSnapshot(*ledger)
	s.logger.Info("ledger replaced from backup",
		zap.Int("courses", len(ledger.Courses)),
		zap.Int("items", len(ledger.Items)),
		zap.Int("trash", len(ledger.Trash)),
	)
	return nil
}

// SetTermWindow updates the term start/end timestamps.
func (s *BackupService) SetTermWindow(req TermWindowRequest) models.Ledger {
	s.store.SetTermWindow(req.TermStart, req.TermEnd)
	return s.store.Ledger()
}
