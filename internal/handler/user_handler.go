package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/validator"
)

// IdentityStore reads and writes author identities.
type IdentityStore interface {
	FindIdentity(ctx context.Context, userID string) (*domain.Identity, error)
	UpsertIdentity(ctx context.Context, identity domain.Identity) error
}

// UserHandler manages the identities used for author names and change mail.
type UserHandler struct {
	users     IdentityStore
	validator *validator.Validator
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users IdentityStore, v *validator.Validator) *UserHandler {
	return &UserHandler{users: users, validator: v}
}

// UserRequest is the body of PUT /api/v1/users/:userId.
type UserRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// PutUser handles PUT /api/v1/users/:userId
func (h *UserHandler) PutUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	identity := domain.Identity{
		ID:       c.Param("userId"),
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
	}
	if err := h.validator.ValidateIdentity(&identity); err != nil {
		respondError(c, err)
		return
	}
	if err := h.users.UpsertIdentity(c.Request.Context(), identity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, identity)
}

// GetUser handles GET /api/v1/users/:userId
func (h *UserHandler) GetUser(c *gin.Context) {
	identity, err := h.users.FindIdentity(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if identity == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		return
	}
	c.JSON(http.StatusOK, identity)
}
