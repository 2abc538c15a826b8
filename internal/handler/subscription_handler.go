package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"knowledge-base/internal/domain"
)

// SubscriptionService is the part of the article service used for change mail subscriptions.
type SubscriptionService interface {
	Subscribe(ctx context.Context, sub *domain.Subscription) error
	Unsubscribe(ctx context.Context, sub domain.Subscription) error
}

// SubscriptionHandler handles change mail subscriptions.
type SubscriptionHandler struct {
	subscriptions SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptions SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

// SubscriptionRequest is the body of POST /api/v1/groups/:groupId/subscriptions.
// A zero resource_key subscribes to the whole group.
type SubscriptionRequest struct {
	UserID      string `json:"user_id"`
	ResourceKey int64  `json:"resource_key"`
}

// SubscriptionResponse represents a stored subscription.
type SubscriptionResponse struct {
	ID          string `json:"id"`
	GroupID     int64  `json:"group_id"`
	UserID      string `json:"user_id"`
	ResourceKey int64  `json:"resource_key"`
	CreatedAt   string `json:"created_at"`
}

// Subscribe handles POST /api/v1/groups/:groupId/subscriptions
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	group, ok := groupID(c)
	if !ok {
		return
	}
	var req SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	sub := &domain.Subscription{GroupID: group, UserID: req.UserID, ResourceKey: req.ResourceKey}
	if err := h.subscriptions.Subscribe(c.Request.Context(), sub); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SubscriptionResponse{
		ID:          sub.ID,
		GroupID:     sub.GroupID,
		UserID:      sub.UserID,
		ResourceKey: sub.ResourceKey,
		CreatedAt:   sub.CreatedAt.Format(TimeFormat),
	})
}

// Unsubscribe handles DELETE /api/v1/groups/:groupId/subscriptions?user_id=...&resource_key=...
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	group, ok := groupID(c)
	if !ok {
		return
	}
	resourceKey, err := strconv.ParseInt(c.DefaultQuery("resource_key", "0"), 10, 64)
	if err != nil {
		badRequest(c, "resource_key must be an integer")
		return
	}

	sub := domain.Subscription{GroupID: group, UserID: c.Query("user_id"), ResourceKey: resourceKey}
	if err := h.subscriptions.Unsubscribe(c.Request.Context(), sub); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
