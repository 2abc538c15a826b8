package domain

import "time"

// SearchHit is one article returned by the search index.
type SearchHit struct {
	ResourceKey int64     `json:"resource_key"`
	GroupID     int64     `json:"group_id"`
	Version     int       `json:"version"`
	Title       string    `json:"title"`
	Snippet     string    `json:"snippet"`
	AuthorName  string    `json:"author_name"`
	ModifiedAt  time.Time `json:"modified_at"`
}

// SearchResult is one page of search hits ordered by relevance.
type SearchResult struct {
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Size       int         `json:"size"`
	TotalPages int         `json:"total_pages"`
	Hits       []SearchHit `json:"hits"`
}

// EmptySearchResult returns a result with no hits for the given page.
func EmptySearchResult(page, size int) *SearchResult {
	return &SearchResult{Page: page, Size: size, Hits: []SearchHit{}}
}
