package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/acc-api/internal/service"
	"github.com/noah-isme/acc-api/internal/store"
	"github.com/noah-isme/acc-api/pkg/snapshot"
)

func buildRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(context.Background(), snapshot.NewMemory(), zap.NewNop())
	logger := zap.NewNop()

	handlers := Handlers{
		Courses:        NewCourseHandler(service.NewCourseService(st, nil, logger)),
		Items:          NewItemHandler(service.NewItemService(st, nil, logger)),
		Trash:          NewTrashHandler(service.NewTrashService(st, logger)),
		Reconcile:      NewReconcileHandler(service.NewReconcileService(st, nil, logger)),
		Import:         NewImportHandler(service.NewImportService(st, nil, logger)),
		Backup:         NewBackupHandler(service.NewBackupService(st, logger)),
		Reports:        NewReportHandler(service.NewReportService(st, logger)),
		ExportsEnabled: true,
	}

	router := gin.New()
	handlers.Register(router.Group("/api/v1"))
	return router, st
}

func performRequest(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body == nil {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = bytes.NewBuffer(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRoutesIntegration(t *testing.T) {
	router, st := buildRouter(t)

	t.Run("list courses", func(t *testing.T) {
		resp := performRequest(router, http.MethodGet, "/api/v1/courses", nil)
		require.Equal(t, http.StatusOK, resp.Code)
		require.Contains(t, resp.Body.String(), `"CS101"`)
	})

	t.Run("create course", func(t *testing.T) {
		payload := `{"name":"Linear Algebra","code":"MATH201","credits":4,"target_grade":88}`
		resp := performRequest(router, http.MethodPost, "/api/v1/courses", []byte(payload))
		require.Equal(t, http.StatusCreated, resp.Code)
		require.Contains(t, resp.Body.String(), `"MATH201"`)
	})

	t.Run("create course invalid payload", func(t *testing.T) {
		resp := performRequest(router, http.MethodPost, "/api/v1/courses", []byte(`{"code":"X"}`))
		require.Equal(t, http.StatusBadRequest, resp.Code)
		require.Contains(t, resp.Body.String(), `"VALIDATION_ERROR"`)
	})

	t.Run("get course missing", func(t *testing.T) {
		resp := performRequest(router, http.MethodGet, "/api/v1/courses/missing", nil)
		require.Equal(t, http.StatusNotFound, resp.Code)
		require.Contains(t, resp.Body.String(), `"NOT_FOUND"`)
	})

	t.Run("course summary", func(t *testing.T) {
		resp := performRequest(router, http.MethodGet, "/api/v1/courses/c1/summary", nil)
		require.Equal(t, http.StatusOK, resp.Code)
		require.Contains(t, resp.Body.String(), `"scored_weight"`)
	})

	t.Run("items filtered by course", func(t *testing.T) {
		resp := performRequest(router, http.MethodGet, "/api/v1/items?courseId=c2", nil)
		require.Equal(t, http.StatusOK, resp.Code)
		require.Contains(t, resp.Body.String(), `"Problem Set 1"`)
		require.NotContains(t, resp.Body.String(), `"Assignment 1: Hello World"`)
	})

	t.Run("item display status", func(t *testing.T) {
		resp := performRequest(router, http.MethodGet, "/api/v1/items/a1/status", nil)
		require.Equal(t, http.StatusOK, resp.Code)
		require.Contains(t, resp.Body.String(), `"label"`)
	})

	t.Run("reconcile scratch list", func(t *testing.T) {
		payload := `{"items":[{"id":"a1","name":"Problem Set 1","weight":9,"due_date":"2024-10-03T00:00:00Z"}]}`
		resp := performRequest(router, http.MethodPost, "/api/v1/courses/c2/reconcile", []byte(payload))
		require.Equal(t, http.StatusOK, resp.Code)
		require.Contains(t, resp.Body.String(), `"updated":1`)
	})

	t.Run("delete and restore item", func(t *testing.T) {
		resp := performRequest(router, http.MethodDelete, "/api/v1/items/a2", nil)
		require.Equal(t, http.StatusOK, resp.Code)

		var envelope struct {
			Data struct {
				ID string `json:"id"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
		require.NotEmpty(t, envelope.Data.ID)

		resp = performRequest(router, http.MethodPost, "/api/v1/trash/"+envelope.Data.ID+"/restore", nil)
		require.Equal(t, http.StatusNoContent, resp.Code)

		_, live := st.Item("a2")
		require.True(t, live)
	})

	t.Run("restore missing trash record", func(t *testing.T) {
		resp := performRequest(router, http.MethodPost, "/api/v1/trash/missing/restore", nil)
		require.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("empty trash", func(t *testing.T) {
		resp := performRequest(router, http.MethodDelete, "/api/v1/trash", nil)
		require.Equal(t, http.StatusNoContent, resp.Code)
		require.Empty(t, st.Trash())
	})

	t.Run("import batch", func(t *testing.T) {
		payload := `{"course":{"name":"Statistics","code":"STAT1","credits":3},"graded_items":[{"name":"Quiz 1","weight":10,"due_date":"2024-11-01T00:00:00Z"}]}`
		resp := performRequest(router, http.MethodPost, "/api/v1/import", []byte(payload))
		require.Equal(t, http.StatusCreated, resp.Code)
		require.Contains(t, resp.Body.String(), `"STAT1"`)
	})

	t.Run("import rejects partial payload", func(t *testing.T) {
		resp := performRequest(router, http.MethodPost, "/api/v1/import", []byte(`{"graded_items":[]}`))
		require.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("backup export and restore", func(t *testing.T) {
		resp := performRequest(router, http.MethodGet, "/api/v1/backup", nil)
		require.Equal(t, http.StatusOK, resp.Code)

		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))

		resp = performRequest(router, http.MethodPost, "/api/v1/backup", envelope.Data)
		require.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("set term window", func(t *testing.T) {
		payload := `{"term_start":"2025-01-06T00:00:00Z","term_end":"2025-05-16T00:00:00Z"}`
		resp := performRequest(router, http.MethodPut, "/api/v1/term", []byte(payload))
		require.Equal(t, http.StatusOK, resp.Code)
		require.Contains(t, resp.Body.String(), `"term_start"`)
	})

	t.Run("export csv report", func(t *testing.T) {
		resp := performRequest(router, http.MethodGet, "/api/v1/courses/c1/export?format=csv", nil)
		require.Equal(t, http.StatusOK, resp.Code)
		require.Equal(t, "text/csv", resp.Header().Get("Content-Type"))
		require.Contains(t, resp.Header().Get("Content-Disposition"), "cs101-grades.csv")
	})

	t.Run("export unsupported format", func(t *testing.T) {
		resp := performRequest(router, http.MethodGet, "/api/v1/courses/c1/export?format=xlsx", nil)
		require.Equal(t, http.StatusBadRequest, resp.Code)
	})
}
