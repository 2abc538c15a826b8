package repository

import (
	"context"
	"time"

	"knowledge-base/internal/domain"
)

// Transactor runs fn inside one all-or-nothing transaction. The context passed
// to fn carries the transaction; repository calls made with it join it.
// Nested calls reuse the outer transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ArticleRepository defines methods for versioned article data access.
// Lookups return (nil, nil) when nothing matches.
type ArticleRepository interface {
	FindLatest(ctx context.Context, resourceKey int64) (*domain.ArticleVersion, error)
	FindVersion(ctx context.Context, resourceKey int64, version int) (*domain.ArticleVersion, error)
	// FindVersions returns every version of a resource ordered by version ascending.
	FindVersions(ctx context.Context, resourceKey int64) ([]domain.ArticleVersion, error)
	CountVersions(ctx context.Context, resourceKey int64) (int, error)

	// FindChildren returns the latest version of every resource in scope.
	FindChildren(ctx context.Context, scope domain.Scope, order domain.ArticleOrder, page domain.Page) ([]domain.ArticleVersion, error)
	CountChildren(ctx context.Context, scope domain.Scope) (int, error)
	// FindGroup returns the latest version of every resource of a group.
	FindGroup(ctx context.Context, groupID int64) ([]domain.ArticleVersion, error)

	FindPosition(ctx context.Context, resourceKey int64) (*domain.Position, error)
	// FindPositions returns the positions in scope ordered by priority, then resource key.
	FindPositions(ctx context.Context, scope domain.Scope) ([]domain.Position, error)

	NextResourceKey(ctx context.Context) (int64, error)
	// InsertResource registers a new resource. It fails with *domain.ConflictError
	// when the key is taken.
	InsertResource(ctx context.Context, pos domain.Position, uuid string, createdAt time.Time) error
	// InsertVersion appends a version row and sets its ID.
	InsertVersion(ctx context.Context, version *domain.ArticleVersion) error
	UpdatePosition(ctx context.Context, pos domain.Position) error
	// DeleteAllVersions removes every version of a resource and the resource itself.
	DeleteAllVersions(ctx context.Context, resourceKey int64) error

	// LockScope serializes writers of one sibling bucket until the transaction ends.
	LockScope(ctx context.Context, scope domain.Scope) error
}

// SubscriptionRepository defines methods for change-mail subscriptions.
type SubscriptionRepository interface {
	// Subscribe is idempotent.
	Subscribe(ctx context.Context, sub *domain.Subscription) error
	Unsubscribe(ctx context.Context, groupID int64, userID string, resourceKey int64) error
	DeleteByResource(ctx context.Context, resourceKey int64) error
	// FindRecipients returns the identities subscribed to the group or to the resource.
	FindRecipients(ctx context.Context, groupID, resourceKey int64) ([]domain.Identity, error)
}

// UserRepository defines methods for author identity data access.
type UserRepository interface {
	FindIdentity(ctx context.Context, userID string) (*domain.Identity, error)
	UpsertIdentity(ctx context.Context, identity domain.Identity) error
}

var (
	_ ArticleRepository      = (*PostgresArticleRepository)(nil)
	_ SubscriptionRepository = (*PostgresSubscriptionRepository)(nil)
	_ UserRepository         = (*PostgresUserRepository)(nil)
	_ Transactor             = (*PostgresTransactor)(nil)

	_ ArticleRepository      = (*MemoryStore)(nil)
	_ SubscriptionRepository = (*MemoryStore)(nil)
	_ UserRepository         = (*MemoryStore)(nil)
	_ Transactor             = (*MemoryStore)(nil)
)
