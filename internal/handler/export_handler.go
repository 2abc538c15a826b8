package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/logger"
	"knowledge-base/internal/service"
)

// ExportHandler handles group export requests.
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ginStreamWriter wraps gin.ResponseWriter for streaming.
type ginStreamWriter struct {
	writer gin.ResponseWriter
}

func (w *ginStreamWriter) Write(data []byte) error {
	_, err := w.writer.Write(data)
	return err
}

func (w *ginStreamWriter) Flush() {
	w.writer.Flush()
}

// ExportGroup handles GET /api/v1/groups/:groupId/export?format=...
func (h *ExportHandler) ExportGroup(c *gin.Context) {
	group, ok := groupID(c)
	if !ok {
		return
	}

	// Default format is ndjson
	format := domain.TransferFormat(c.DefaultQuery("format", string(domain.FormatNDJSON)))
	if !domain.IsValidFormat(string(format)) {
		badRequest(c, "format must be one of: ndjson, csv")
		return
	}

	contentType := "application/x-ndjson"
	if format == domain.FormatCSV {
		contentType = "text/csv"
	}
	c.Header("Content-Type", contentType)
	c.Header("X-Content-Type-Options", "nosniff")
	filename := "group-" + strconv.FormatInt(group, 10) + "." + string(format)
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")

	ctx := c.Request.Context()
	count, err := h.exportService.StreamGroup(ctx, group, format, &ginStreamWriter{writer: c.Writer})
	if err != nil {
		if !c.Writer.Written() {
			c.Header("Content-Type", "")
			c.Header("Content-Disposition", "")
			respondError(c, err)
			return
		}
		// The status line is gone, the client sees a truncated body
		logger.ErrorContext(ctx, "Streaming export failed",
			slog.Int64("group_id", group),
			slog.Int("records", count),
			slog.String("error", err.Error()))
		return
	}
	if !c.Writer.Written() {
		c.Status(http.StatusOK)
	}
}
