package repository

import (
	"context"
	"fmt"

	"knowledge-base/internal/domain"
)

// IdentityResolver resolves author identities from a UserRepository.
type IdentityResolver struct {
	users UserRepository
}

// NewIdentityResolver creates a new IdentityResolver.
func NewIdentityResolver(users UserRepository) *IdentityResolver {
	return &IdentityResolver{users: users}
}

// Resolve returns the identity of userID or an error matching domain.ErrNotFound.
func (r *IdentityResolver) Resolve(ctx context.Context, userID string) (domain.Identity, error) {
	identity, err := r.users.FindIdentity(ctx, userID)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("resolve identity %s: %w", userID, err)
	}
	if identity == nil {
		return domain.Identity{}, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return *identity, nil
}
