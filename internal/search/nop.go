package search

import (
	"context"

	"knowledge-base/internal/domain"
)

// NopIndexer is used when no Redis address is configured. Searches return no hits.
type NopIndexer struct{}

func (NopIndexer) Upsert(context.Context, domain.ArticleVersion) error { return nil }

func (NopIndexer) Remove(context.Context, int64) error { return nil }

func (NopIndexer) Search(_ context.Context, _ string, page, size int) (*domain.SearchResult, error) {
	return domain.EmptySearchResult(page, size), nil
}

func (NopIndexer) Ping(context.Context) error { return nil }
