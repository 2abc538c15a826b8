package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"knowledge-base/internal/attachment"
	"knowledge-base/internal/mocks"
)

func uploadRequest(t *testing.T, dir, fileName, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attachments/"+dir, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAttachmentUpload(t *testing.T) {
	store, err := attachment.NewFileStore(t.TempDir())
	require.NoError(t, err)
	svc := mocks.NewMockArticleServiceInterface(t)
	h := NewAttachmentHandler(svc, store, newTestEncoder(t))

	router := gin.New()
	router.POST("/api/v1/articles/:resourceKey/attachments", h.PrepareAttachments)
	router.POST("/api/v1/attachments/:dir", h.Upload)

	svc.EXPECT().PrepareAttachments(mock.Anything, int64(101)).
		RunAndReturn(func(ctx context.Context, key int64) (string, error) {
			return store.PrepareTemp(ctx, key)
		})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/articles/101/attachments", nil))
	require.Equal(t, http.StatusCreated, w.Code)

	var prepared struct {
		Dir string `json:"attachments_dir"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prepared))
	require.NotEmpty(t, prepared.Dir)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, prepared.Dir, "diagram.png", "png-bytes"))
	require.Equal(t, http.StatusCreated, w.Code)

	dir, err := store.TempDir(prepared.Dir)
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "diagram.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestAttachmentUpload_Rejects(t *testing.T) {
	store, err := attachment.NewFileStore(t.TempDir())
	require.NoError(t, err)
	h := NewAttachmentHandler(mocks.NewMockArticleServiceInterface(t), store, newTestEncoder(t))

	router := gin.New()
	router.POST("/api/v1/attachments/:dir", h.Upload)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "00000000000000000001", "a.txt", "x"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	name, err := store.PrepareTemp(context.Background(), 0)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, name, "..", "x"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attachments/"+name, nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
