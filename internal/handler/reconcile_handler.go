package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acc-api/internal/service"
	appErrors "github.com/noah-isme/acc-api/pkg/errors"
	"github.com/noah-isme/acc-api/pkg/response"
)

// ReconcileHandler commits edited scratch lists for a course.
type ReconcileHandler struct {
	reconciler *service.ReconcileService
}

// NewReconcileHandler constructs handler.
func NewReconcileHandler(reconciler *service.ReconcileService) *ReconcileHandler {
	return &ReconcileHandler{reconciler: reconciler}
}

// Reconcile godoc
// @Summary Commit an edited scratch list of graded items
// @Description Diffs the submitted list against the course's live items and
// @Description applies the net creates, updates, and deletes in one batch.
// @Tags Reconcile
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param payload body service.ReconcileRequest true "Edited scratch list"
// @Success 200 {object} response.Envelope
// @Router /courses/{id}/reconcile [post]
func (h *ReconcileHandler) Reconcile(c *gin.Context) {
	var req service.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.reconciler.Reconcile(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
