package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acc-api/internal/service"
	appErrors "github.com/noah-isme/acc-api/pkg/errors"
	"github.com/noah-isme/acc-api/pkg/response"
)

// ImportHandler brings externally produced course batches into the ledger.
type ImportHandler struct {
	imports *service.ImportService
}

// NewImportHandler constructs handler.
func NewImportHandler(imports *service.ImportService) *ImportHandler {
	return &ImportHandler{imports: imports}
}

// Import godoc
// @Summary Import one course with its graded items
// @Tags Import
// @Accept json
// @Produce json
// @Param payload body service.ImportRequest true "Course batch"
// @Success 201 {object} response.Envelope
// @Router /import [post]
func (h *ImportHandler) Import(c *gin.Context) {
	var req service.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.imports.Import(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
