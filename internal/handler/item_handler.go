package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acc-api/internal/models"
	"github.com/noah-isme/acc-api/internal/service"
	appErrors "github.com/noah-isme/acc-api/pkg/errors"
	"github.com/noah-isme/acc-api/pkg/response"
)

// ItemHandler exposes graded item endpoints.
type ItemHandler struct {
	items *service.ItemService
}

// NewItemHandler constructs handler.
func NewItemHandler(items *service.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

// List godoc
// @Summary List graded items
// @Tags Graded Items
// @Produce json
// @Param courseId query string false "Filter by course"
// @Success 200 {object} response.Envelope
// @Router /items [get]
func (h *ItemHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.items.List(c.Query("courseId")))
}

// Get godoc
// @Summary Get graded item
// @Tags Graded Items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.Envelope
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	item, err := h.items.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Create godoc
// @Summary Create graded item
// @Tags Graded Items
// @Accept json
// @Produce json
// @Param payload body service.CreateItemRequest true "Item payload"
// @Success 201 {object} response.Envelope
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	var req service.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	item, err := h.items.Create(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Update graded item
// @Tags Graded Items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param payload body models.GradedItemPatch true "Patch payload"
// @Success 200 {object} response.Envelope
// @Router /items/{id} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	var patch models.GradedItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	item, err := h.items.Update(c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Delete godoc
// @Summary Soft-delete graded item to trash
// @Tags Graded Items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.Envelope
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	record, err := h.items.Delete(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record)
}

// Status godoc
// @Summary Resolved display status for a graded item
// @Tags Graded Items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.Envelope
// @Router /items/{id}/status [get]
func (h *ItemHandler) Status(c *gin.Context) {
	status, err := h.items.DisplayStatus(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, status)
}
