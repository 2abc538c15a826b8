package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/service"
)

// ImportHandler handles group import requests.
type ImportHandler struct {
	importService service.ImportServiceInterface
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService service.ImportServiceInterface) *ImportHandler {
	return &ImportHandler{
		importService: importService,
	}
}

// ImportResponse reports the outcome of an import.
type ImportResponse struct {
	GroupID       int64                `json:"group_id"`
	TotalRecords  int                  `json:"total_records"`
	SuccessCount  int                  `json:"success_count"`
	FailureCount  int                  `json:"failure_count"`
	Errors        []domain.RecordError `json:"errors"`
	ErrorsDropped int                  `json:"errors_dropped,omitempty"`
	// ResourceKeys maps exported resource keys to the keys created here.
	ResourceKeys map[int64]int64 `json:"resource_keys"`
}

// formatFromFilename infers the transfer format from a file extension.
func formatFromFilename(name string) domain.TransferFormat {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return domain.FormatCSV
	case ".ndjson", ".jsonl":
		return domain.FormatNDJSON
	}
	return ""
}

// ImportGroup handles POST /api/v1/groups/:groupId/import
func (h *ImportHandler) ImportGroup(c *gin.Context) {
	group, ok := groupID(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return
	}
	defer file.Close()

	format := domain.TransferFormat(c.PostForm("format"))
	if format == "" {
		format = formatFromFilename(header.Filename)
	}
	if !domain.IsValidFormat(string(format)) {
		badRequest(c, "format must be one of: ndjson, csv")
		return
	}

	authorID := strings.TrimSpace(c.PostForm("author_id"))
	result, err := h.importService.ImportGroup(c.Request.Context(), group, format, authorID, file)
	if err != nil {
		respondError(c, err)
		return
	}

	errs := result.Errors
	if errs == nil {
		errs = []domain.RecordError{}
	}
	c.JSON(http.StatusOK, ImportResponse{
		GroupID:       group,
		TotalRecords:  result.TotalRecords,
		SuccessCount:  result.SuccessCount,
		FailureCount:  result.FailureCount,
		Errors:        errs,
		ErrorsDropped: result.ErrorsDropped,
		ResourceKeys:  result.ResourceKeys,
	})
}
