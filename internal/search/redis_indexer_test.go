package search

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"knowledge-base/internal/domain"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "start redis container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func article(key int64, title, content string) domain.ArticleVersion {
	return domain.ArticleVersion{
		ResourceKey: key,
		GroupID:     1,
		Version:     1,
		Title:       title,
		Content:     content,
		AuthorName:  "Ada",
		ModifiedAt:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRedisIndexer(t *testing.T) {
	client := setupRedis(t)
	indexer := NewRedisIndexer(client)
	ctx := context.Background()

	require.NoError(t, indexer.Ping(ctx))

	t.Run("title matches rank above content matches", func(t *testing.T) {
		require.NoError(t, client.FlushDB(ctx).Err())
		require.NoError(t, indexer.Upsert(ctx, article(1, "Backup notes", "How to restore a **cluster**")))
		require.NoError(t, indexer.Upsert(ctx, article(2, "Cluster setup", "Nodes and networking")))

		result, err := indexer.Search(ctx, "cluster", 1, 10)
		require.NoError(t, err)
		require.Len(t, result.Hits, 2)
		assert.Equal(t, int64(2), result.Total)
		assert.Equal(t, int64(2), result.Hits[0].ResourceKey)
		assert.Equal(t, int64(1), result.Hits[1].ResourceKey)
		assert.Equal(t, "Ada", result.Hits[0].AuthorName)
	})

	t.Run("all terms must match", func(t *testing.T) {
		result, err := indexer.Search(ctx, "cluster networking", 1, 10)
		require.NoError(t, err)
		require.Len(t, result.Hits, 1)
		assert.Equal(t, int64(2), result.Hits[0].ResourceKey)
	})

	t.Run("upsert replaces old terms", func(t *testing.T) {
		updated := article(2, "Node setup", "Nodes and networking")
		updated.Version = 2
		require.NoError(t, indexer.Upsert(ctx, updated))

		result, err := indexer.Search(ctx, "cluster", 1, 10)
		require.NoError(t, err)
		require.Len(t, result.Hits, 1)
		assert.Equal(t, int64(1), result.Hits[0].ResourceKey)

		result, err = indexer.Search(ctx, "node", 1, 10)
		require.NoError(t, err)
		require.Len(t, result.Hits, 1)
		assert.Equal(t, 2, result.Hits[0].Version)
	})

	t.Run("remove drops every term", func(t *testing.T) {
		require.NoError(t, indexer.Remove(ctx, 1))

		result, err := indexer.Search(ctx, "cluster", 1, 10)
		require.NoError(t, err)
		assert.Empty(t, result.Hits)
		assert.Equal(t, int64(0), result.Total)

		exists, err := client.Exists(ctx, wordsKey(1), articleKey(1)).Result()
		require.NoError(t, err)
		assert.Zero(t, exists)
	})

	t.Run("remove of unknown article is a no-op", func(t *testing.T) {
		assert.NoError(t, indexer.Remove(ctx, 999))
	})

	t.Run("paging", func(t *testing.T) {
		require.NoError(t, client.FlushDB(ctx).Err())
		for key := int64(1); key <= 5; key++ {
			require.NoError(t, indexer.Upsert(ctx, article(key, fmt.Sprintf("Runbook %d", key), "ops")))
		}

		result, err := indexer.Search(ctx, "runbook", 2, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(5), result.Total)
		assert.Equal(t, 3, result.TotalPages)
		assert.Len(t, result.Hits, 2)
	})

	t.Run("blank query", func(t *testing.T) {
		result, err := indexer.Search(ctx, "  ", 1, 10)
		require.NoError(t, err)
		assert.Empty(t, result.Hits)
	})
}

func TestNopIndexer(t *testing.T) {
	var nop NopIndexer
	ctx := context.Background()

	assert.NoError(t, nop.Upsert(ctx, article(1, "a", "b")))
	assert.NoError(t, nop.Remove(ctx, 1))
	result, err := nop.Search(ctx, "a", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, result.Hits)
}
