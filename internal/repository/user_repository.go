package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"knowledge-base/internal/domain"
)

// PostgresUserRepository implements UserRepository using PostgreSQL.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgresUserRepository.
func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// FindIdentity retrieves the display identity of a user.
func (r *PostgresUserRepository) FindIdentity(ctx context.Context, userID string) (*domain.Identity, error) {
	var identity domain.Identity
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT id, full_name, email FROM users WHERE id = $1
	`, userID).Scan(&identity.ID, &identity.FullName, &identity.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &identity, nil
}

// UpsertIdentity creates a user or refreshes its name and email.
func (r *PostgresUserRepository) UpsertIdentity(ctx context.Context, identity domain.Identity) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO users (id, full_name, email, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET full_name = EXCLUDED.full_name, email = EXCLUDED.email, updated_at = NOW()
	`, identity.ID, identity.FullName, identity.Email)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}
