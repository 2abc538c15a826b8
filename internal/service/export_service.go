package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/logger"
	"knowledge-base/internal/metrics"
)

// exportFlushEvery is how many records are written between flushes.
const exportFlushEvery = 100

// CSVColumns is the header row of CSV group exports.
var CSVColumns = []string{
	"resource_key", "parent_resource_key", "priority", "version",
	"title", "description", "content", "author_id", "author_name", "modified_at",
}

// StreamWriter is the destination of a streamed export.
type StreamWriter interface {
	Write(data []byte) error
	Flush()
}

// GroupLister returns the latest version of every article of a group.
type GroupLister interface {
	ListGroup(ctx context.Context, groupID int64) ([]domain.ArticleVersion, error)
}

// ExportService streams group article trees.
type ExportService struct {
	articles GroupLister
}

// NewExportService creates a new ExportService.
func NewExportService(articles GroupLister) *ExportService {
	return &ExportService{articles: articles}
}

// StreamGroup writes the latest version of every article of a group in tree
// order: each parent before its children, siblings by priority. It returns
// the number of records written.
func (s *ExportService) StreamGroup(ctx context.Context, groupID int64, format domain.TransferFormat, w StreamWriter) (_ int, err error) {
	timer := metrics.NewTimer()
	defer func() {
		result := "success"
		if err != nil {
			result = "error"
		}
		metrics.ObserveOperation("export", result, timer.Seconds())
	}()

	if !domain.IsValidFormat(string(format)) {
		return 0, &domain.ValidationError{Kind: domain.InvalidInput, Field: "format"}
	}

	articles, err := s.articles.ListGroup(ctx, groupID)
	if err != nil {
		return 0, err
	}
	records := treeOrder(articles)

	var count int
	if format == domain.FormatCSV {
		count, err = writeCSV(ctx, records, w)
	} else {
		count, err = writeNDJSON(ctx, records, w)
	}
	if err != nil {
		return count, fmt.Errorf("export group %d: %w", groupID, err)
	}
	w.Flush()

	logger.InfoContext(ctx, "Group exported",
		slog.Int64("group_id", groupID),
		slog.String("format", string(format)),
		slog.Int("records", count))
	return count, nil
}

// treeOrder lays out articles depth first from the root. Articles whose
// parent is missing from the group follow, ordered by resource key.
func treeOrder(articles []domain.ArticleVersion) []domain.ArticleRecord {
	children := make(map[int64][]domain.ArticleVersion)
	byKey := make(map[int64]bool, len(articles))
	for _, a := range articles {
		children[a.ParentResourceKey] = append(children[a.ParentResourceKey], a)
		byKey[a.ResourceKey] = true
	}
	for parent := range children {
		siblings := children[parent]
		sort.Slice(siblings, func(i, j int) bool {
			if siblings[i].Priority != siblings[j].Priority {
				return siblings[i].Priority < siblings[j].Priority
			}
			return siblings[i].ResourceKey < siblings[j].ResourceKey
		})
	}

	out := make([]domain.ArticleRecord, 0, len(articles))
	visited := make(map[int64]bool, len(articles))
	var walk func(parent int64)
	walk = func(parent int64) {
		for _, a := range children[parent] {
			if visited[a.ResourceKey] {
				continue
			}
			visited[a.ResourceKey] = true
			out = append(out, toRecord(a))
			walk(a.ResourceKey)
		}
	}
	walk(domain.RootResourceKey)

	var orphanParents []int64
	for parent := range children {
		if parent != domain.RootResourceKey && !byKey[parent] {
			orphanParents = append(orphanParents, parent)
		}
	}
	sort.Slice(orphanParents, func(i, j int) bool { return orphanParents[i] < orphanParents[j] })
	for _, parent := range orphanParents {
		walk(parent)
	}
	return out
}

func toRecord(a domain.ArticleVersion) domain.ArticleRecord {
	return domain.ArticleRecord{
		ResourceKey:       a.ResourceKey,
		ParentResourceKey: a.ParentResourceKey,
		Priority:          a.Priority,
		Version:           a.Version,
		Title:             a.Title,
		Description:       a.Description,
		Content:           a.Content,
		AuthorID:          a.AuthorID,
		AuthorName:        a.AuthorName,
		ModifiedAt:        a.ModifiedAt.Format(time.RFC3339),
	}
}

func writeNDJSON(ctx context.Context, records []domain.ArticleRecord, w StreamWriter) (int, error) {
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		line, err := json.Marshal(rec)
		if err != nil {
			return i, fmt.Errorf("write json: %w", err)
		}
		if err := w.Write(append(line, '\n')); err != nil {
			return i, err
		}
		if (i+1)%exportFlushEvery == 0 {
			w.Flush()
		}
	}
	return len(records), nil
}

// streamAdapter lets encoding/csv write through a StreamWriter.
type streamAdapter struct {
	w StreamWriter
}

func (a streamAdapter) Write(p []byte) (int, error) {
	if err := a.w.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func writeCSV(ctx context.Context, records []domain.ArticleRecord, w StreamWriter) (int, error) {
	writer := csv.NewWriter(streamAdapter{w: w})
	if err := writer.Write(CSVColumns); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		row := []string{
			strconv.FormatInt(rec.ResourceKey, 10),
			strconv.FormatInt(rec.ParentResourceKey, 10),
			strconv.Itoa(rec.Priority),
			strconv.Itoa(rec.Version),
			rec.Title,
			rec.Description,
			rec.Content,
			rec.AuthorID,
			rec.AuthorName,
			rec.ModifiedAt,
		}
		if err := writer.Write(row); err != nil {
			return i, fmt.Errorf("write row: %w", err)
		}
		if (i+1)%exportFlushEvery == 0 {
			writer.Flush()
			w.Flush()
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return len(records), fmt.Errorf("flush csv: %w", err)
	}
	return len(records), nil
}
