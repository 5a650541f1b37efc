package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acc-api/internal/models"
	"github.com/noah-isme/acc-api/internal/service"
	appErrors "github.com/noah-isme/acc-api/pkg/errors"
	"github.com/noah-isme/acc-api/pkg/response"
)

// BackupHandler exposes the full-ledger export/restore contract and term
// window settings.
type BackupHandler struct {
	backups *service.BackupService
}

// NewBackupHandler constructs handler.
func NewBackupHandler(backups *service.BackupService) *BackupHandler {
	return &BackupHandler{backups: backups}
}

// Export godoc
// @Summary Export the complete ledger
// @Tags Backup
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /backup [get]
func (h *BackupHandler) Export(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.backups.Export())
}

// Restore godoc
// @Summary Replace the ledger with an exported snapshot
// @Tags Backup
// @Accept json
// @Produce json
// @Param payload body models.Ledger true "Exported ledger"
// @Success 200 {object} response.Envelope
// @Router /backup [post]
func (h *BackupHandler) Restore(c *gin.Context) {
	var ledger models.Ledger
	if err := c.ShouldBindJSON(&ledger); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.backups.Restore(&ledger); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, h.backups.Export())
}

// SetTermWindow godoc
// @Summary Set term start and end timestamps
// @Tags Backup
// @Accept json
// @Produce json
// @Param payload body service.TermWindowRequest true "Term window"
// @Success 200 {object} response.Envelope
// @Router /term [put]
func (h *BackupHandler) SetTermWindow(c *gin.Context) {
	var req service.TermWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	ledger := h.backups.SetTermWindow(req)
	response.JSON(c, http.StatusOK, gin.H{"term_start": ledger.TermStart, "term_end": ledger.TermEnd})
}
