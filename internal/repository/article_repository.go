package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"knowledge-base/internal/domain"
)

// Latest reads take parent and priority from article_resources, the
// authoritative position; version reads return the stored snapshot.
const latestColumns = `
	v.id, v.resource_key, r.uuid, r.group_id, v.version, r.parent_resource_key, r.priority,
	v.title, v.content, v.description, v.author_id, v.author_name, v.created_at, v.modified_at`

const snapshotColumns = `
	v.id, v.resource_key, r.uuid, v.group_id, v.version, v.parent_resource_key, v.priority,
	v.title, v.content, v.description, v.author_id, v.author_name, v.created_at, v.modified_at`

const latestFrom = `
	FROM article_resources r
	JOIN LATERAL (
		SELECT * FROM article_versions lv
		WHERE lv.resource_key = r.resource_key
		ORDER BY lv.version DESC
		LIMIT 1
	) v ON true`

var orderClauses = map[domain.ArticleOrder]string{
	"":                       "r.priority ASC, r.resource_key ASC",
	domain.OrderPriorityAsc:  "r.priority ASC, r.resource_key ASC",
	domain.OrderPriorityDesc: "r.priority DESC, r.resource_key DESC",
	domain.OrderTitleAsc:     "v.title ASC, r.resource_key ASC",
	domain.OrderTitleDesc:    "v.title DESC, r.resource_key DESC",
	domain.OrderModifiedAsc:  "v.modified_at ASC, r.resource_key ASC",
	domain.OrderModifiedDesc: "v.modified_at DESC, r.resource_key DESC",
}

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

func scanArticle(row pgx.Row) (*domain.ArticleVersion, error) {
	var a domain.ArticleVersion
	err := row.Scan(&a.ID, &a.ResourceKey, &a.UUID, &a.GroupID, &a.Version, &a.ParentResourceKey, &a.Priority,
		&a.Title, &a.Content, &a.Description, &a.AuthorID, &a.AuthorName, &a.CreatedAt, &a.ModifiedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectArticles(rows pgx.Rows) ([]domain.ArticleVersion, error) {
	defer rows.Close()

	var articles []domain.ArticleVersion
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *a)
	}
	return articles, rows.Err()
}

// FindLatest retrieves the newest version of a resource with its current position.
func (r *PostgresArticleRepository) FindLatest(ctx context.Context, resourceKey int64) (*domain.ArticleVersion, error) {
	a, err := scanArticle(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT`+latestColumns+latestFrom+` WHERE r.resource_key = $1`, resourceKey))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest article: %w", err)
	}
	return a, nil
}

// FindVersion retrieves one stored version snapshot.
func (r *PostgresArticleRepository) FindVersion(ctx context.Context, resourceKey int64, version int) (*domain.ArticleVersion, error) {
	a, err := scanArticle(conn(ctx, r.pool).QueryRow(ctx, `
		SELECT`+snapshotColumns+`
		FROM article_versions v
		JOIN article_resources r ON r.resource_key = v.resource_key
		WHERE v.resource_key = $1 AND v.version = $2
	`, resourceKey, version))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query article version: %w", err)
	}
	return a, nil
}

// FindVersions retrieves the full history of a resource.
func (r *PostgresArticleRepository) FindVersions(ctx context.Context, resourceKey int64) ([]domain.ArticleVersion, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT`+snapshotColumns+`
		FROM article_versions v
		JOIN article_resources r ON r.resource_key = v.resource_key
		WHERE v.resource_key = $1
		ORDER BY v.version ASC
	`, resourceKey)
	if err != nil {
		return nil, fmt.Errorf("query article versions: %w", err)
	}
	return collectArticles(rows)
}

// CountVersions counts the stored versions of a resource.
func (r *PostgresArticleRepository) CountVersions(ctx context.Context, resourceKey int64) (int, error) {
	var count int
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT COUNT(*) FROM article_versions WHERE resource_key = $1`, resourceKey).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count article versions: %w", err)
	}
	return count, nil
}

// FindChildren lists the latest versions in one sibling bucket.
func (r *PostgresArticleRepository) FindChildren(ctx context.Context, scope domain.Scope, order domain.ArticleOrder, page domain.Page) ([]domain.ArticleVersion, error) {
	orderBy, ok := orderClauses[order]
	if !ok {
		return nil, fmt.Errorf("unsupported order %q", order)
	}

	query := `SELECT` + latestColumns + latestFrom + `
		WHERE r.group_id = $1 AND r.parent_resource_key = $2
		ORDER BY ` + orderBy
	args := []any{scope.GroupID, scope.ParentResourceKey}
	if page.Limit > 0 {
		query += ` LIMIT $3 OFFSET $4`
		args = append(args, page.Limit, page.Offset)
	} else if page.Offset > 0 {
		query += ` OFFSET $3`
		args = append(args, page.Offset)
	}

	rows, err := conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query children: %w", err)
	}
	return collectArticles(rows)
}

// CountChildren counts the resources in one sibling bucket.
func (r *PostgresArticleRepository) CountChildren(ctx context.Context, scope domain.Scope) (int, error) {
	var count int
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT COUNT(*) FROM article_resources
		WHERE group_id = $1 AND parent_resource_key = $2
	`, scope.GroupID, scope.ParentResourceKey).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count children: %w", err)
	}
	return count, nil
}

// FindGroup lists the latest version of every resource in a group.
func (r *PostgresArticleRepository) FindGroup(ctx context.Context, groupID int64) ([]domain.ArticleVersion, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT`+latestColumns+latestFrom+`
		WHERE r.group_id = $1
		ORDER BY r.resource_key
	`, groupID)
	if err != nil {
		return nil, fmt.Errorf("query group articles: %w", err)
	}
	return collectArticles(rows)
}

// FindPosition retrieves the current position of a resource.
func (r *PostgresArticleRepository) FindPosition(ctx context.Context, resourceKey int64) (*domain.Position, error) {
	var p domain.Position
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT resource_key, group_id, parent_resource_key, priority
		FROM article_resources
		WHERE resource_key = $1
	`, resourceKey).Scan(&p.ResourceKey, &p.GroupID, &p.ParentResourceKey, &p.Priority)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query position: %w", err)
	}
	return &p, nil
}

// FindPositions lists the positions in one sibling bucket.
func (r *PostgresArticleRepository) FindPositions(ctx context.Context, scope domain.Scope) ([]domain.Position, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT resource_key, group_id, parent_resource_key, priority
		FROM article_resources
		WHERE group_id = $1 AND parent_resource_key = $2
		ORDER BY priority, resource_key
	`, scope.GroupID, scope.ParentResourceKey)
	if err != nil {
		return nil, fmt.Errorf("query positions: %w", err)
	}
	defer rows.Close()

	var positions []domain.Position
	for rows.Next() {
		var p domain.Position
		if err := rows.Scan(&p.ResourceKey, &p.GroupID, &p.ParentResourceKey, &p.Priority); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

// NextResourceKey allocates a resource key from the sequence.
func (r *PostgresArticleRepository) NextResourceKey(ctx context.Context) (int64, error) {
	var key int64
	if err := conn(ctx, r.pool).QueryRow(ctx, `SELECT nextval('article_resource_key_seq')`).Scan(&key); err != nil {
		return 0, fmt.Errorf("allocate resource key: %w", err)
	}
	return key, nil
}

// InsertResource registers a resource and its initial position.
func (r *PostgresArticleRepository) InsertResource(ctx context.Context, pos domain.Position, uuid string, createdAt time.Time) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO article_resources (resource_key, uuid, group_id, parent_resource_key, priority, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, pos.ResourceKey, uuid, pos.GroupID, pos.ParentResourceKey, pos.Priority, createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return &domain.ConflictError{ResourceKey: pos.ResourceKey}
		}
		return fmt.Errorf("insert article resource: %w", err)
	}
	return nil
}

// InsertVersion appends a version row.
func (r *PostgresArticleRepository) InsertVersion(ctx context.Context, v *domain.ArticleVersion) error {
	err := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO article_versions (resource_key, version, group_id, parent_resource_key, priority,
			title, content, description, author_id, author_name, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`, v.ResourceKey, v.Version, v.GroupID, v.ParentResourceKey, v.Priority,
		v.Title, v.Content, v.Description, v.AuthorID, v.AuthorName, v.CreatedAt, v.ModifiedAt).Scan(&v.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("version %d of article %d already written: %w", v.Version, v.ResourceKey, domain.ErrConflict)
		}
		return fmt.Errorf("insert article version: %w", err)
	}
	return nil
}

// UpdatePosition moves a resource.
func (r *PostgresArticleRepository) UpdatePosition(ctx context.Context, pos domain.Position) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE article_resources
		SET parent_resource_key = $2, priority = $3
		WHERE resource_key = $1
	`, pos.ResourceKey, pos.ParentResourceKey, pos.Priority)
	if err != nil {
		return fmt.Errorf("update position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{ResourceKey: pos.ResourceKey}
	}
	return nil
}

// DeleteAllVersions removes a resource with its whole history.
func (r *PostgresArticleRepository) DeleteAllVersions(ctx context.Context, resourceKey int64) error {
	q := conn(ctx, r.pool)
	if _, err := q.Exec(ctx, `DELETE FROM article_versions WHERE resource_key = $1`, resourceKey); err != nil {
		return fmt.Errorf("delete article versions: %w", err)
	}
	if _, err := q.Exec(ctx, `DELETE FROM article_resources WHERE resource_key = $1`, resourceKey); err != nil {
		return fmt.Errorf("delete article resource: %w", err)
	}
	return nil
}

// LockScope takes a transaction-scoped advisory lock on a sibling bucket.
func (r *PostgresArticleRepository) LockScope(ctx context.Context, scope domain.Scope) error {
	_, err := conn(ctx, r.pool).Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended('article_scope:' || $1::bigint::text || ':' || $2::bigint::text, 0))`,
		scope.GroupID, scope.ParentResourceKey)
	if err != nil {
		return fmt.Errorf("lock scope %d/%d: %w", scope.GroupID, scope.ParentResourceKey, err)
	}
	return nil
}
