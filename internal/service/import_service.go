package service

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/logger"
	"knowledge-base/internal/metrics"
)

const (
	// ScannerBufferSize is the initial buffer size for NDJSON scanner
	ScannerBufferSize = 64 * 1024 // 64KB
	// ScannerMaxBufferSize is the maximum buffer size for NDJSON scanner
	ScannerMaxBufferSize = 4 * 1024 * 1024 // 4MB

	// MaxReportedErrors caps the record errors kept in an ImportResult.
	MaxReportedErrors = 100
)

// ArticleCreator creates one article.
type ArticleCreator interface {
	CreateArticle(ctx context.Context, in CreateArticleInput, nc domain.NotifyContext) (*domain.ArticleVersion, error)
}

// ImportService recreates exported article trees inside a group.
type ImportService struct {
	articles ArticleCreator
}

// NewImportService creates a new ImportService.
func NewImportService(articles ArticleCreator) *ImportService {
	return &ImportService{articles: articles}
}

// recordFunc receives each parsed record. rowErr is set when the row could not be parsed.
type recordFunc func(row int, rec domain.ArticleRecord, rowErr *domain.RecordError) error

// ImportGroup creates one new article per record, in file order. Exported
// resource keys are remapped to freshly allocated ones, so a record's parent
// must appear earlier in the file. A non-empty authorID replaces the
// recorded authors. Records that fail are reported and skipped; persistence
// failures abort the import.
func (s *ImportService) ImportGroup(ctx context.Context, groupID int64, format domain.TransferFormat, authorID string, r io.Reader) (_ *domain.ImportResult, err error) {
	timer := metrics.NewTimer()
	defer func() {
		result := "success"
		if err != nil {
			result = "error"
		}
		metrics.ObserveOperation("import", result, timer.Seconds())
	}()

	if groupID <= 0 {
		return nil, &domain.ValidationError{Kind: domain.InvalidInput, Field: "group_id"}
	}

	result := &domain.ImportResult{ResourceKeys: make(map[int64]int64)}
	handle := func(row int, rec domain.ArticleRecord, rowErr *domain.RecordError) error {
		result.TotalRecords++
		if rowErr != nil {
			addRecordError(result, *rowErr)
			return nil
		}
		return s.importRecord(ctx, groupID, authorID, row, rec, result)
	}

	switch format {
	case domain.FormatNDJSON:
		err = readNDJSON(r, handle)
	case domain.FormatCSV:
		err = readCSV(r, handle)
	default:
		return nil, &domain.ValidationError{Kind: domain.InvalidInput, Field: "format"}
	}
	if err != nil {
		return result, err
	}

	logger.InfoContext(ctx, "Group imported",
		slog.Int64("group_id", groupID),
		slog.String("format", string(format)),
		slog.Int("total", result.TotalRecords),
		slog.Int("created", result.SuccessCount),
		slog.Int("failed", result.FailureCount))
	return result, nil
}

func (s *ImportService) importRecord(ctx context.Context, groupID int64, authorID string, row int, rec domain.ArticleRecord, result *domain.ImportResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	parent := domain.RootResourceKey
	if rec.ParentResourceKey != domain.RootResourceKey {
		mapped, ok := result.ResourceKeys[rec.ParentResourceKey]
		if !ok {
			addRecordError(result, domain.RecordError{
				Row:    row,
				Field:  "parent_resource_key",
				Reason: fmt.Sprintf("parent %d was not imported", rec.ParentResourceKey),
			})
			return nil
		}
		parent = mapped
	}

	author := rec.AuthorID
	if authorID != "" {
		author = authorID
	}

	created, err := s.articles.CreateArticle(ctx, CreateArticleInput{
		GroupID:           groupID,
		ParentResourceKey: parent,
		Priority:          rec.Priority,
		Title:             rec.Title,
		Content:           rec.Content,
		Description:       rec.Description,
		AuthorID:          author,
	}, domain.NotifyContext{})
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			addRecordError(result, domain.RecordError{Row: row, Field: verr.Field, Reason: verr.Error()})
			return nil
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrCycle), errors.Is(err, domain.ErrConflict):
			addRecordError(result, domain.RecordError{Row: row, Field: "record", Reason: err.Error()})
			return nil
		}
		return fmt.Errorf("import row %d: %w", row, err)
	}

	result.SuccessCount++
	if rec.ResourceKey > 0 {
		result.ResourceKeys[rec.ResourceKey] = created.ResourceKey
	}
	return nil
}

func addRecordError(result *domain.ImportResult, recErr domain.RecordError) {
	result.FailureCount++
	if len(result.Errors) >= MaxReportedErrors {
		result.ErrorsDropped++
		return
	}
	result.Errors = append(result.Errors, recErr)
}

func readNDJSON(r io.Reader, fn recordFunc) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, ScannerBufferSize)
	scanner.Buffer(buf, ScannerMaxBufferSize)

	row := 0
	for scanner.Scan() {
		row++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			// Blank lines don't count as records
			continue
		}

		var rec domain.ArticleRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			if err := fn(row, rec, &domain.RecordError{Row: row, Field: "record", Reason: fmt.Sprintf("invalid JSON: %v", err)}); err != nil {
				return err
			}
			continue
		}
		if err := fn(row, rec, nil); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read ndjson at row %d: %w", row+1, err)
	}
	return nil
}

func readCSV(r io.Reader, fn recordFunc) error {
	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		return &domain.ValidationError{Kind: domain.InvalidInput, Field: "header"}
	}

	colMap := make(map[string]int, len(header))
	for i, col := range header {
		colMap[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, required := range []string{"title", "content"} {
		if _, ok := colMap[required]; !ok {
			return &domain.ValidationError{Kind: domain.InvalidInput, Field: required}
		}
	}

	row := 1 // row 0 is the header
	for {
		fields, err := csvReader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if err := fn(row, domain.ArticleRecord{}, &domain.RecordError{Row: row, Field: "csv", Reason: err.Error()}); err != nil {
				return err
			}
			row++
			continue
		}

		rec, rowErr := parseCSVRecord(row, colMap, fields)
		if err := fn(row, rec, rowErr); err != nil {
			return err
		}
		row++
	}
}

func parseCSVRecord(row int, colMap map[string]int, fields []string) (domain.ArticleRecord, *domain.RecordError) {
	get := func(col string) string {
		if i, ok := colMap[col]; ok && i < len(fields) {
			return fields[i]
		}
		return ""
	}
	parseInt := func(col string) (int64, *domain.RecordError) {
		raw := strings.TrimSpace(get(col))
		if raw == "" {
			return 0, nil
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, &domain.RecordError{Row: row, Field: col, Reason: fmt.Sprintf("not an integer: %q", raw)}
		}
		return v, nil
	}

	rec := domain.ArticleRecord{
		Title:       get("title"),
		Description: get("description"),
		Content:     get("content"),
		AuthorID:    get("author_id"),
	}
	var rowErr *domain.RecordError
	if rec.ResourceKey, rowErr = parseInt("resource_key"); rowErr != nil {
		return rec, rowErr
	}
	if rec.ParentResourceKey, rowErr = parseInt("parent_resource_key"); rowErr != nil {
		return rec, rowErr
	}
	priority, rowErr := parseInt("priority")
	if rowErr != nil {
		return rec, rowErr
	}
	rec.Priority = int(priority)
	return rec, nil
}
