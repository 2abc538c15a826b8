package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/repository"
)

var knowledgeBaseTables = []string{"article_versions", "article_resources", "article_subscriptions", "users"}

// TestDB holds a migrated PostgreSQL container for integration tests.
type TestDB struct {
	Pool      *pgxpool.Pool
	Container testcontainers.Container
}

// SetupTestDB starts PostgreSQL, applies migrations and registers cleanup.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()

	_, currentFile, _, _ := runtime.Caller(0)
	migrationsPath := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("knowledgebase"),
		postgres.WithUsername("kb"),
		postgres.WithPassword("kb"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "connection string")

	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), connStr)
	require.NoError(t, err, "create migrate instance")
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	m.Close()

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err, "create pool")
	t.Cleanup(pool.Close)
	require.NoError(t, pool.Ping(ctx), "ping database")

	return &TestDB{Pool: pool, Container: pgContainer}
}

// Reset clears every knowledge base table between subtests.
func (tdb *TestDB) Reset(t *testing.T) {
	t.Helper()
	for _, table := range knowledgeBaseTables {
		_, err := tdb.Pool.Exec(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "truncate %s", table)
	}
}

// seedArticle inserts a resource with one version through the repository.
func seedArticle(t *testing.T, ctx context.Context, repo repository.ArticleRepository, pos domain.Position, title string) domain.ArticleVersion {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)

	require.NoError(t, repo.InsertResource(ctx, pos, uuid.New().String(), now))
	v := domain.ArticleVersion{
		ResourceKey:       pos.ResourceKey,
		GroupID:           pos.GroupID,
		Version:           domain.DefaultVersion,
		ParentResourceKey: pos.ParentResourceKey,
		Priority:          pos.Priority,
		Title:             title,
		Content:           "content of " + title,
		AuthorID:          "author-1",
		AuthorName:        "Author One",
		CreatedAt:         now,
		ModifiedAt:        now,
	}
	require.NoError(t, repo.InsertVersion(ctx, &v))
	return v
}
