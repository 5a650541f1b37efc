package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Academic Command Center API",
        "description": "Course and graded-item ledger with soft delete, weighted grade statistics, and batch reconciliation",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Courses", "description": "Course lifecycle and weighted grade summaries"},
        {"name": "Graded Items", "description": "Assignments, labs, quizzes, and exams"},
        {"name": "Trash", "description": "Recoverable deletions"},
        {"name": "Reconcile", "description": "Batch scratch-list commits"},
        {"name": "Import", "description": "External course batches"},
        {"name": "Backup", "description": "Full ledger export and restore"},
        {"name": "Reports", "description": "Grade report downloads"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "responses": {
                    "201": {"description": "Created"}
                }
            }
        },
        "/courses/{id}/summary": {
            "get": {
                "tags": ["Courses"],
                "summary": "Weighted grade summary",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/courses/{id}/reconcile": {
            "post": {
                "tags": ["Reconcile"],
                "summary": "Commit an edited scratch list",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/items": {
            "get": {
                "tags": ["Graded Items"],
                "summary": "List graded items",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Graded Items"],
                "summary": "Create graded item",
                "responses": {
                    "201": {"description": "Created"}
                }
            }
        },
        "/trash": {
            "get": {
                "tags": ["Trash"],
                "summary": "List trash records",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Trash"],
                "summary": "Empty trash",
                "responses": {
                    "204": {"description": "Emptied"}
                }
            }
        },
        "/backup": {
            "get": {
                "tags": ["Backup"],
                "summary": "Export ledger",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Backup"],
                "summary": "Restore ledger",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
