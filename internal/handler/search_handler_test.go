package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/mocks"
)

func TestSearch(t *testing.T) {
	searcher := mocks.NewMockSearcher(t)
	ids := newTestEncoder(t)
	router := gin.New()
	router.GET("/api/v1/search", NewSearchHandler(searcher, ids).Search)

	searcher.EXPECT().Search(mock.Anything, "tree move", 2, 5).Return(&domain.SearchResult{
		Total:      6,
		Page:       2,
		Size:       5,
		TotalPages: 2,
		Hits: []domain.SearchHit{{
			ResourceKey: 101,
			GroupID:     7,
			Version:     3,
			Title:       "Moving trees",
			Snippet:     "How to move",
			ModifiedAt:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		}},
	}, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/search?q=+tree+move+&page=2&size=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(6), resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
	require.Len(t, resp.Hits, 1)
	assert.Equal(t, "Moving trees", resp.Hits[0].Title)
	assert.NotEmpty(t, resp.Hits[0].PublicID)
}

func TestSearch_Defaults(t *testing.T) {
	searcher := mocks.NewMockSearcher(t)
	router := gin.New()
	router.GET("/api/v1/search", NewSearchHandler(searcher, newTestEncoder(t)).Search)

	searcher.EXPECT().Search(mock.Anything, "tree", 1, DefaultSearchPageSize).
		Return(domain.EmptySearchResult(1, DefaultSearchPageSize), nil)

	w := doJSON(router, http.MethodGet, "/api/v1/search?q=tree", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hits":[]`)
}

func TestSearch_BadRequest(t *testing.T) {
	router := gin.New()
	router.GET("/api/v1/search", NewSearchHandler(mocks.NewMockSearcher(t), newTestEncoder(t)).Search)

	for _, path := range []string{
		"/api/v1/search",
		"/api/v1/search?q=%20%20",
		"/api/v1/search?q=tree&page=0",
		"/api/v1/search?q=tree&size=0",
		"/api/v1/search?q=tree&size=101",
		"/api/v1/search?q=tree&page=one",
	} {
		w := doJSON(router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestSearch_IndexDown(t *testing.T) {
	searcher := mocks.NewMockSearcher(t)
	router := gin.New()
	router.GET("/api/v1/search", NewSearchHandler(searcher, newTestEncoder(t)).Search)

	searcher.EXPECT().Search(mock.Anything, "tree", 1, DefaultSearchPageSize).
		Return(nil, errors.New("dial tcp: connection refused"))

	w := doJSON(router, http.MethodGet, "/api/v1/search?q=tree", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
