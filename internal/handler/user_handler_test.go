package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/repository"
	"knowledge-base/internal/validator"
)

func TestUserHandler(t *testing.T) {
	store := repository.NewMemoryStore(1)
	h := NewUserHandler(store, validator.NewValidator())

	router := gin.New()
	router.PUT("/api/v1/users/:userId", h.PutUser)
	router.GET("/api/v1/users/:userId", h.GetUser)

	w := doJSON(router, http.MethodGet, "/api/v1/users/ada", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodPut, "/api/v1/users/ada", UserRequest{FullName: " Ada Lovelace ", Email: "Ada@Example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/users/ada", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var identity domain.Identity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &identity))
	assert.Equal(t, domain.Identity{ID: "ada", FullName: "Ada Lovelace", Email: "ada@example.com"}, identity)

	w = doJSON(router, http.MethodPut, "/api/v1/users/ada", UserRequest{Email: "not-an-email"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "email", resp.Field)
}
