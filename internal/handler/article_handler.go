package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/idgen"
	"knowledge-base/internal/service"
)

// ArticleHandler handles article HTTP requests.
type ArticleHandler struct {
	articles service.ArticleServiceInterface
	ids      *idgen.Encoder
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles service.ArticleServiceInterface, ids *idgen.Encoder) *ArticleHandler {
	return &ArticleHandler{articles: articles, ids: ids}
}

// CreateArticleRequest is the body of POST /api/v1/groups/:groupId/articles.
// A zero resource_key lets the store allocate one.
type CreateArticleRequest struct {
	ResourceKey       int64                `json:"resource_key"`
	UUID              string               `json:"uuid"`
	ParentResourceKey int64                `json:"parent_resource_key"`
	Priority          int                  `json:"priority"`
	Title             string               `json:"title"`
	Content           string               `json:"content"`
	Description       string               `json:"description"`
	AuthorID          string               `json:"author_id"`
	AttachmentsDir    string               `json:"attachments_dir"`
	Notify            domain.NotifyContext `json:"notify"`
}

// UpdateArticleRequest is the body of PUT /api/v1/articles/:resourceKey.
// Omitted position fields keep the current parent and priority.
type UpdateArticleRequest struct {
	ParentResourceKey *int64               `json:"parent_resource_key"`
	Priority          *int                 `json:"priority"`
	Title             string               `json:"title"`
	Content           string               `json:"content"`
	Description       string               `json:"description"`
	AuthorID          string               `json:"author_id"`
	AttachmentsDir    string               `json:"attachments_dir"`
	Notify            domain.NotifyContext `json:"notify"`
}

// MoveArticleRequest is the body of PUT /api/v1/articles/:resourceKey/position.
type MoveArticleRequest struct {
	ParentResourceKey int64 `json:"parent_resource_key"`
	Priority          int   `json:"priority"`
}

// ArticleResponse represents one article version in API responses.
type ArticleResponse struct {
	ResourceKey       int64  `json:"resource_key"`
	PublicID          string `json:"public_id"`
	UUID              string `json:"uuid"`
	GroupID           int64  `json:"group_id"`
	Version           int    `json:"version"`
	ParentResourceKey int64  `json:"parent_resource_key"`
	Priority          int    `json:"priority"`
	Title             string `json:"title"`
	Content           string `json:"content"`
	Description       string `json:"description"`
	AuthorID          string `json:"author_id"`
	AuthorName        string `json:"author_name"`
	CreatedAt         string `json:"created_at"`
	ModifiedAt        string `json:"modified_at"`
}

// ArticleListResponse is one page of sibling articles.
type ArticleListResponse struct {
	Items  []ArticleResponse `json:"items"`
	Total  int               `json:"total"`
	Offset int               `json:"offset"`
	Limit  int               `json:"limit"`
}

func (h *ArticleHandler) toResponse(a *domain.ArticleVersion) ArticleResponse {
	publicID, _ := h.ids.EncodeArticle(a.ResourceKey)
	return ArticleResponse{
		ResourceKey:       a.ResourceKey,
		PublicID:          publicID,
		UUID:              a.UUID,
		GroupID:           a.GroupID,
		Version:           a.Version,
		ParentResourceKey: a.ParentResourceKey,
		Priority:          a.Priority,
		Title:             a.Title,
		Content:           a.Content,
		Description:       a.Description,
		AuthorID:          a.AuthorID,
		AuthorName:        a.AuthorName,
		CreatedAt:         a.CreatedAt.Format(TimeFormat),
		ModifiedAt:        a.ModifiedAt.Format(TimeFormat),
	}
}

func (h *ArticleHandler) toResponses(articles []domain.ArticleVersion) []ArticleResponse {
	out := make([]ArticleResponse, len(articles))
	for i := range articles {
		out[i] = h.toResponse(&articles[i])
	}
	return out
}

// parseResourceKey reads :resourceKey as a number or as a public id.
func parseResourceKey(c *gin.Context, ids *idgen.Encoder) (int64, bool) {
	raw := c.Param("resourceKey")
	if key, err := strconv.ParseInt(raw, 10, 64); err == nil && key > 0 {
		return key, true
	}
	if key, err := ids.DecodeArticle(raw); err == nil && key > 0 {
		return key, true
	}
	badRequest(c, "resourceKey must be a positive integer or a public id")
	return 0, false
}

func groupID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("groupId"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "groupId must be a positive integer")
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, name+" must be an integer")
		return 0, false
	}
	return v, true
}

// CreateArticle handles POST /api/v1/groups/:groupId/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	group, ok := groupID(c)
	if !ok {
		return
	}
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	article, err := h.articles.CreateArticle(c.Request.Context(), service.CreateArticleInput{
		ResourceKey:       req.ResourceKey,
		UUID:              req.UUID,
		GroupID:           group,
		ParentResourceKey: req.ParentResourceKey,
		Priority:          req.Priority,
		Title:             req.Title,
		Content:           req.Content,
		Description:       req.Description,
		AuthorID:          req.AuthorID,
		AttachmentsDir:    req.AttachmentsDir,
	}, req.Notify)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.toResponse(article))
}

// ListChildren handles GET /api/v1/groups/:groupId/articles
func (h *ArticleHandler) ListChildren(c *gin.Context) {
	group, ok := groupID(c)
	if !ok {
		return
	}
	parent, err := strconv.ParseInt(c.DefaultQuery("parent", "0"), 10, 64)
	if err != nil || parent < 0 {
		badRequest(c, "parent must be a non-negative integer")
		return
	}
	offset, ok := queryInt(c, "offset", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}

	scope := domain.Scope{GroupID: group, ParentResourceKey: parent}
	page := domain.Page{Offset: offset, Limit: limit}
	articles, err := h.articles.ListChildren(c.Request.Context(), scope, domain.ArticleOrder(c.Query("order")), page)
	if err != nil {
		respondError(c, err)
		return
	}
	total, err := h.articles.CountChildren(c.Request.Context(), scope)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ArticleListResponse{
		Items:  h.toResponses(articles),
		Total:  total,
		Offset: offset,
		Limit:  limit,
	})
}

// DeleteGroup handles DELETE /api/v1/groups/:groupId/articles
func (h *ArticleHandler) DeleteGroup(c *gin.Context) {
	group, ok := groupID(c)
	if !ok {
		return
	}
	deleted, err := h.articles.DeleteGroup(c.Request.Context(), group)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ReindexGroup handles POST /api/v1/groups/:groupId/reindex
func (h *ArticleHandler) ReindexGroup(c *gin.Context) {
	group, ok := groupID(c)
	if !ok {
		return
	}
	indexed, err := h.articles.ReindexGroup(c.Request.Context(), group)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"indexed": indexed})
}

// GetArticle handles GET /api/v1/articles/:resourceKey
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	key, ok := parseResourceKey(c, h.ids)
	if !ok {
		return
	}
	article, err := h.articles.GetLatest(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(article))
}

// UpdateArticle handles PUT /api/v1/articles/:resourceKey
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	key, ok := parseResourceKey(c, h.ids)
	if !ok {
		return
	}
	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	article, err := h.articles.UpdateArticle(c.Request.Context(), key, service.UpdateArticleInput{
		ParentResourceKey: req.ParentResourceKey,
		Priority:          req.Priority,
		Title:             req.Title,
		Content:           req.Content,
		Description:       req.Description,
		AuthorID:          req.AuthorID,
		AttachmentsDir:    req.AttachmentsDir,
	}, req.Notify)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(article))
}

// MoveArticle handles PUT /api/v1/articles/:resourceKey/position
func (h *ArticleHandler) MoveArticle(c *gin.Context) {
	key, ok := parseResourceKey(c, h.ids)
	if !ok {
		return
	}
	var req MoveArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	article, err := h.articles.MoveArticle(c.Request.Context(), key, req.ParentResourceKey, req.Priority)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(article))
}

// DeleteArticle handles DELETE /api/v1/articles/:resourceKey
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	key, ok := parseResourceKey(c, h.ids)
	if !ok {
		return
	}
	deleted, err := h.articles.DeleteArticle(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ListVersions handles GET /api/v1/articles/:resourceKey/versions
func (h *ArticleHandler) ListVersions(c *gin.Context) {
	key, ok := parseResourceKey(c, h.ids)
	if !ok {
		return
	}
	versions, err := h.articles.ListVersions(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.toResponses(versions), "total": len(versions)})
}

// GetVersion handles GET /api/v1/articles/:resourceKey/versions/:version
func (h *ArticleHandler) GetVersion(c *gin.Context) {
	key, ok := parseResourceKey(c, h.ids)
	if !ok {
		return
	}
	version, err := strconv.Atoi(c.Param("version"))
	if err != nil || version < 1 {
		badRequest(c, "version must be a positive integer")
		return
	}

	article, err := h.articles.GetVersion(c.Request.Context(), key, version)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(article))
}
