package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acc-api/internal/service"
	"github.com/noah-isme/acc-api/pkg/response"
)

// TrashHandler exposes the recoverable-deletion endpoints.
type TrashHandler struct {
	trash *service.TrashService
}

// NewTrashHandler constructs handler.
func NewTrashHandler(trash *service.TrashService) *TrashHandler {
	return &TrashHandler{trash: trash}
}

// List godoc
// @Summary List trash records
// @Tags Trash
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /trash [get]
func (h *TrashHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.trash.List())
}

// Restore godoc
// @Summary Restore a trashed entity
// @Tags Trash
// @Produce json
// @Param id path string true "Trash record ID"
// @Success 204 "restored"
// @Router /trash/{id}/restore [post]
func (h *TrashHandler) Restore(c *gin.Context) {
	if err := h.trash.Restore(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Empty godoc
// @Summary Empty the trash irrevocably
// @Tags Trash
// @Success 204 "emptied"
// @Router /trash [delete]
func (h *TrashHandler) Empty(c *gin.Context) {
	h.trash.Empty()
	response.NoContent(c)
}
