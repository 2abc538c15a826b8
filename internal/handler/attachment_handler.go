package handler

import (
	"context"
	"errors"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"knowledge-base/internal/attachment"
	"knowledge-base/internal/idgen"
	"knowledge-base/internal/service"
)

// AttachmentHandler handles attachment upload dirs.
type AttachmentHandler struct {
	articles ArticleAttachmentPreparer
	uploader service.AttachmentUploader
	ids      *idgen.Encoder
}

// ArticleAttachmentPreparer is the part of the article service used here.
type ArticleAttachmentPreparer interface {
	PrepareAttachments(ctx context.Context, resourceKey int64) (string, error)
}

// NewAttachmentHandler creates a new AttachmentHandler.
func NewAttachmentHandler(articles ArticleAttachmentPreparer, uploader service.AttachmentUploader, ids *idgen.Encoder) *AttachmentHandler {
	return &AttachmentHandler{articles: articles, uploader: uploader, ids: ids}
}

// PrepareAttachments handles POST /api/v1/articles/:resourceKey/attachments
// It returns a fresh upload dir seeded with the article's current files.
func (h *AttachmentHandler) PrepareAttachments(c *gin.Context) {
	key, ok := parseResourceKey(c, h.ids)
	if !ok {
		return
	}
	dir, err := h.articles.PrepareAttachments(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"attachments_dir": dir})
}

// Upload handles POST /api/v1/attachments/:dir
// The multipart field "file" is stored in the upload dir under its own file name.
func (h *AttachmentHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		badRequest(c, "failed to open uploaded file")
		return
	}
	defer file.Close()

	err = h.uploader.SaveTemp(c.Request.Context(), c.Param("dir"), fileHeader.Filename, file)
	switch {
	case errors.Is(err, attachment.ErrInvalidDir):
		badRequest(c, err.Error())
		return
	case errors.Is(err, fs.ErrNotExist):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "upload dir not found"})
		return
	case err != nil:
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"attachments_dir": c.Param("dir"),
		"file_name":       fileHeader.Filename,
		"size":            fileHeader.Size,
	})
}
