package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/mocks"
	"knowledge-base/internal/service"
)

func exportRouter(h *ExportHandler) *gin.Engine {
	router := gin.New()
	router.GET("/api/v1/groups/:groupId/export", h.ExportGroup)
	return router
}

func TestExportGroup_NDJSON(t *testing.T) {
	mockService := mocks.NewMockExportServiceInterface(t)
	handler := NewExportHandler(mockService)

	mockService.EXPECT().
		StreamGroup(mock.Anything, int64(4), domain.FormatNDJSON, mock.AnythingOfType("*handler.ginStreamWriter")).
		Run(func(ctx context.Context, groupID int64, format domain.TransferFormat, writer service.StreamWriter) {
			_ = writer.Write([]byte(`{"resource_key":10,"parent_resource_key":0,"title":"A"}` + "\n"))
			_ = writer.Write([]byte(`{"resource_key":11,"parent_resource_key":10,"title":"A1"}` + "\n"))
		}).
		Return(2, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/4/export", nil)
	w := httptest.NewRecorder()
	exportRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/x-ndjson")
	assert.Equal(t, `attachment; filename="group-4.ndjson"`, w.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	for i, line := range lines {
		var rec domain.ArticleRecord
		require.NoError(t, json.Unmarshal([]byte(line), &rec), "line %d should be valid JSON", i)
	}
}

func TestExportGroup_CSV(t *testing.T) {
	mockService := mocks.NewMockExportServiceInterface(t)
	handler := NewExportHandler(mockService)

	mockService.EXPECT().
		StreamGroup(mock.Anything, int64(4), domain.FormatCSV, mock.Anything).
		Run(func(ctx context.Context, groupID int64, format domain.TransferFormat, writer service.StreamWriter) {
			_ = writer.Write([]byte(strings.Join(service.CSVColumns, ",") + "\n"))
		}).
		Return(0, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/4/export?format=csv", nil)
	w := httptest.NewRecorder()
	exportRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.True(t, strings.HasPrefix(w.Body.String(), "resource_key,parent_resource_key"))
}

func TestExportGroup_BadRequest(t *testing.T) {
	handler := NewExportHandler(mocks.NewMockExportServiceInterface(t))

	tests := []struct {
		name string
		path string
	}{
		{name: "invalid format", path: "/api/v1/groups/4/export?format=xml"},
		{name: "invalid group", path: "/api/v1/groups/zero/export"},
		{name: "non positive group", path: "/api/v1/groups/0/export"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			exportRouter(handler).ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestExportGroup_ServiceErrorBeforeStreaming(t *testing.T) {
	mockService := mocks.NewMockExportServiceInterface(t)
	handler := NewExportHandler(mockService)

	mockService.EXPECT().
		StreamGroup(mock.Anything, int64(4), domain.FormatNDJSON, mock.Anything).
		Return(0, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/4/export", nil)
	w := httptest.NewRecorder()
	exportRouter(handler).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}

func TestExportGroup_ServiceErrorMidStream(t *testing.T) {
	mockService := mocks.NewMockExportServiceInterface(t)
	handler := NewExportHandler(mockService)

	mockService.EXPECT().
		StreamGroup(mock.Anything, int64(4), domain.FormatNDJSON, mock.Anything).
		Run(func(ctx context.Context, groupID int64, format domain.TransferFormat, writer service.StreamWriter) {
			_ = writer.Write([]byte(`{"resource_key":10}` + "\n"))
		}).
		Return(1, context.Canceled)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/4/export", nil)
	w := httptest.NewRecorder()
	exportRouter(handler).ServeHTTP(w, req)

	// Headers were already sent with the first record
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"resource_key":10}`+"\n", w.Body.String())
}
