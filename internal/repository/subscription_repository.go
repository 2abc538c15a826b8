package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"knowledge-base/internal/domain"
)

// PostgresSubscriptionRepository implements SubscriptionRepository using PostgreSQL.
type PostgresSubscriptionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSubscriptionRepository creates a new PostgresSubscriptionRepository.
func NewPostgresSubscriptionRepository(pool *pgxpool.Pool) *PostgresSubscriptionRepository {
	return &PostgresSubscriptionRepository{pool: pool}
}

// Subscribe stores a subscription, keeping the existing row on repeat calls.
func (r *PostgresSubscriptionRepository) Subscribe(ctx context.Context, sub *domain.Subscription) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	err := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO article_subscriptions (id, group_id, user_id, resource_key, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (group_id, user_id, resource_key) DO UPDATE SET group_id = EXCLUDED.group_id
		RETURNING id, created_at
	`, sub.ID, sub.GroupID, sub.UserID, sub.ResourceKey).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

// Unsubscribe removes a subscription. Removing a missing one is not an error.
func (r *PostgresSubscriptionRepository) Unsubscribe(ctx context.Context, groupID int64, userID string, resourceKey int64) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		DELETE FROM article_subscriptions
		WHERE group_id = $1 AND user_id = $2 AND resource_key = $3
	`, groupID, userID, resourceKey)
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}

// DeleteByResource removes every subscription on one article.
func (r *PostgresSubscriptionRepository) DeleteByResource(ctx context.Context, resourceKey int64) error {
	_, err := conn(ctx, r.pool).Exec(ctx,
		`DELETE FROM article_subscriptions WHERE resource_key = $1`, resourceKey)
	if err != nil {
		return fmt.Errorf("delete resource subscriptions: %w", err)
	}
	return nil
}

// FindRecipients lists distinct users subscribed to the group or to the article.
func (r *PostgresSubscriptionRepository) FindRecipients(ctx context.Context, groupID, resourceKey int64) ([]domain.Identity, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT DISTINCT u.id, u.full_name, u.email
		FROM article_subscriptions s
		JOIN users u ON u.id = s.user_id
		WHERE s.group_id = $1 AND (s.resource_key = 0 OR s.resource_key = $2)
		ORDER BY u.id
	`, groupID, resourceKey)
	if err != nil {
		return nil, fmt.Errorf("query recipients: %w", err)
	}
	defer rows.Close()

	var recipients []domain.Identity
	for rows.Next() {
		var identity domain.Identity
		if err := rows.Scan(&identity.ID, &identity.FullName, &identity.Email); err != nil {
			return nil, fmt.Errorf("scan recipient: %w", err)
		}
		recipients = append(recipients, identity)
	}
	return recipients, rows.Err()
}
