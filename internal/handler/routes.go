package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers bundles the API surface for route registration.
type Handlers struct {
	Courses   *CourseHandler
	Items     *ItemHandler
	Trash     *TrashHandler
	Reconcile *ReconcileHandler
	Import    *ImportHandler
	Backup    *BackupHandler
	Reports   *ReportHandler

	// ExportsEnabled gates the report download endpoint.
	ExportsEnabled bool
}

// Register wires all resource routes under the given group.
func (h Handlers) Register(api *gin.RouterGroup) {
	courses := api.Group("/courses")
	{
		courses.GET("", h.Courses.List)
		courses.POST("", h.Courses.Create)
		courses.GET("/:id", h.Courses.Get)
		courses.PUT("/:id", h.Courses.Update)
		courses.DELETE("/:id", h.Courses.Delete)
		courses.GET("/:id/summary", h.Courses.Summary)
		courses.POST("/:id/reconcile", h.Reconcile.Reconcile)
		if h.ExportsEnabled {
			courses.GET("/:id/export", h.Reports.Export)
		}
	}

	items := api.Group("/items")
	{
		items.GET("", h.Items.List)
		items.POST("", h.Items.Create)
		items.GET("/:id", h.Items.Get)
		items.PUT("/:id", h.Items.Update)
		items.DELETE("/:id", h.Items.Delete)
		items.GET("/:id/status", h.Items.Status)
	}

	trash := api.Group("/trash")
	{
		trash.GET("", h.Trash.List)
		trash.DELETE("", h.Trash.Empty)
		trash.POST("/:id/restore", h.Trash.Restore)
	}

	api.POST("/import", h.Import.Import)
	api.GET("/backup", h.Backup.Export)
	api.POST("/backup", h.Backup.Restore)
	api.PUT("/term", h.Backup.SetTermWindow)
}
