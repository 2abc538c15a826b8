package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/idgen"
	"knowledge-base/internal/service"
)

// SearchHandler handles full-text search over the latest article versions.
type SearchHandler struct {
	searcher service.Searcher
	ids      *idgen.Encoder
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searcher service.Searcher, ids *idgen.Encoder) *SearchHandler {
	return &SearchHandler{searcher: searcher, ids: ids}
}

// SearchHitResponse is one ranked article.
type SearchHitResponse struct {
	ResourceKey int64  `json:"resource_key"`
	PublicID    string `json:"public_id"`
	GroupID     int64  `json:"group_id"`
	Version     int    `json:"version"`
	Title       string `json:"title"`
	Snippet     string `json:"snippet"`
	AuthorName  string `json:"author_name"`
	ModifiedAt  string `json:"modified_at"`
}

// SearchResponse is one page of search hits.
type SearchResponse struct {
	Query      string              `json:"query"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Size       int                 `json:"size"`
	TotalPages int                 `json:"total_pages"`
	Hits       []SearchHitResponse `json:"hits"`
}

// Search handles GET /api/v1/search?q=...&page=1&size=20
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		badRequest(c, "q is required")
		return
	}
	page, ok := queryInt(c, "page", 1)
	if !ok {
		return
	}
	size, ok := queryInt(c, "size", DefaultSearchPageSize)
	if !ok {
		return
	}
	if page < 1 {
		badRequest(c, "page must be at least 1")
		return
	}
	if size < 1 || size > MaxSearchPageSize {
		badRequest(c, "size must be between 1 and 100")
		return
	}

	result, err := h.searcher.Search(c.Request.Context(), query, page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toResponse(query, result))
}

func (h *SearchHandler) toResponse(query string, result *domain.SearchResult) SearchResponse {
	resp := SearchResponse{
		Query:      query,
		Total:      result.Total,
		Page:       result.Page,
		Size:       result.Size,
		TotalPages: result.TotalPages,
		Hits:       make([]SearchHitResponse, 0, len(result.Hits)),
	}
	for _, hit := range result.Hits {
		publicID, _ := h.ids.EncodeArticle(hit.ResourceKey)
		resp.Hits = append(resp.Hits, SearchHitResponse{
			ResourceKey: hit.ResourceKey,
			PublicID:    publicID,
			GroupID:     hit.GroupID,
			Version:     hit.Version,
			Title:       hit.Title,
			Snippet:     hit.Snippet,
			AuthorName:  hit.AuthorName,
			ModifiedAt:  hit.ModifiedAt.Format(TimeFormat),
		})
	}
	return resp
}
