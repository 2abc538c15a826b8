// Package search keeps a Redis inverted index of the latest article versions.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/logger"
	"knowledge-base/internal/metrics"
	"knowledge-base/internal/parser"
)

const (
	KeyNamespace = "kb:"

	KeyPrefixArticle     = KeyNamespace + "search:article:"
	KeyPrefixIndex       = KeyNamespace + "search:index:"
	KeyPrefixWords       = KeyNamespace + "search:words:"
	KeyPrefixResultCache = KeyNamespace + "search:result:"
	ResultCacheTTL       = 10 * time.Minute

	WeightTitle   = 10.0
	WeightContent = 1.0

	snippetRunes = 150
)

// RedisIndexer indexes article title and content into per-term sorted sets.
type RedisIndexer struct {
	client *redis.Client
}

// NewRedisIndexer creates an indexer on an existing client.
func NewRedisIndexer(client *redis.Client) *RedisIndexer {
	return &RedisIndexer{client: client}
}

func articleKey(resourceKey int64) string {
	return KeyPrefixArticle + strconv.FormatInt(resourceKey, 10)
}

func wordsKey(resourceKey int64) string {
	return KeyPrefixWords + strconv.FormatInt(resourceKey, 10)
}

func indexKey(token string) string {
	return KeyPrefixIndex + token
}

// Upsert replaces the indexed terms and stored fields of an article.
func (r *RedisIndexer) Upsert(ctx context.Context, article domain.ArticleVersion) error {
	member := strconv.FormatInt(article.ResourceKey, 10)

	oldWords, err := r.client.SMembers(ctx, wordsKey(article.ResourceKey)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("load indexed terms of %d: %w", article.ResourceKey, err)
	}

	content := parser.PlainText(article.Content)
	weights := weightedTokens(article.Title, content)

	pipe := r.client.TxPipeline()
	for _, word := range oldWords {
		if _, keep := weights[word]; !keep {
			pipe.ZRem(ctx, indexKey(word), member)
		}
	}
	pipe.Del(ctx, wordsKey(article.ResourceKey))

	pipe.HSet(ctx, articleKey(article.ResourceKey), map[string]interface{}{
		"resource_key": article.ResourceKey,
		"group_id":     article.GroupID,
		"version":      article.Version,
		"title":        article.Title,
		"snippet":      parser.Excerpt(article.Content, snippetRunes),
		"author_name":  article.AuthorName,
		"modified_at":  article.ModifiedAt.Format(time.RFC3339Nano),
	})

	words := make([]interface{}, 0, len(weights))
	for token, weight := range weights {
		words = append(words, token)
		pipe.ZAdd(ctx, indexKey(token), redis.Z{Score: weight, Member: member})
	}
	if len(words) > 0 {
		pipe.SAdd(ctx, wordsKey(article.ResourceKey), words...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("index article %d: %w", article.ResourceKey, err)
	}
	logger.DebugContext(ctx, "Article indexed",
		slog.Int64("resource_key", article.ResourceKey),
		slog.Int("terms", len(weights)))
	return nil
}

// Remove drops an article and all of its terms from the index.
func (r *RedisIndexer) Remove(ctx context.Context, resourceKey int64) error {
	member := strconv.FormatInt(resourceKey, 10)

	words, err := r.client.SMembers(ctx, wordsKey(resourceKey)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("load indexed terms of %d: %w", resourceKey, err)
	}

	pipe := r.client.TxPipeline()
	for _, word := range words {
		pipe.ZRem(ctx, indexKey(word), member)
	}
	pipe.Del(ctx, wordsKey(resourceKey), articleKey(resourceKey))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("remove article %d from index: %w", resourceKey, err)
	}
	return nil
}

// Search returns articles containing every term of query, most relevant first.
// Pages start at 1.
func (r *RedisIndexer) Search(ctx context.Context, query string, page, size int) (result *domain.SearchResult, err error) {
	defer func() {
		if err != nil {
			metrics.SearchQueries.WithLabelValues("error").Inc()
		} else if result.Total == 0 {
			metrics.SearchQueries.WithLabelValues("empty").Inc()
		} else {
			metrics.SearchQueries.WithLabelValues("hit").Inc()
		}
	}()

	tokens := tokenize(query)
	if len(tokens) == 0 {
		return domain.EmptySearchResult(page, size), nil
	}

	keys := make([]string, len(tokens))
	for i, token := range tokens {
		keys[i] = indexKey(token)
	}

	resultKey := KeyPrefixResultCache + uuid.New().String()
	defer r.client.Del(context.WithoutCancel(ctx), resultKey)

	if err := r.client.ZInterStore(ctx, resultKey, &redis.ZStore{Keys: keys, Aggregate: "SUM"}).Err(); err != nil {
		return nil, fmt.Errorf("intersect search terms: %w", err)
	}
	r.client.Expire(ctx, resultKey, ResultCacheTTL)

	total, err := r.client.ZCard(ctx, resultKey).Result()
	if err != nil {
		return nil, fmt.Errorf("count search results: %w", err)
	}
	if total == 0 {
		return domain.EmptySearchResult(page, size), nil
	}

	start := int64((page - 1) * size)
	members, err := r.client.ZRevRange(ctx, resultKey, start, start+int64(size)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("page search results: %w", err)
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(members))
	for i, member := range members {
		cmds[i] = pipe.HGetAll(ctx, KeyPrefixArticle+member)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("load search hits: %w", err)
	}

	hits := make([]domain.SearchHit, 0, len(members))
	for i, member := range members {
		data, err := cmds[i].Result()
		if err != nil || len(data) == 0 {
			logger.WarnContext(ctx, "Indexed article has no stored fields", slog.String("member", member))
			continue
		}
		hits = append(hits, hitFromHash(data))
	}

	return &domain.SearchResult{
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: int((total + int64(size) - 1) / int64(size)),
		Hits:       hits,
	}, nil
}

// Ping checks the Redis connection.
func (r *RedisIndexer) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func hitFromHash(data map[string]string) domain.SearchHit {
	hit := domain.SearchHit{
		Title:      data["title"],
		Snippet:    data["snippet"],
		AuthorName: data["author_name"],
	}
	hit.ResourceKey, _ = strconv.ParseInt(data["resource_key"], 10, 64)
	hit.GroupID, _ = strconv.ParseInt(data["group_id"], 10, 64)
	hit.Version, _ = strconv.Atoi(data["version"])
	if t, err := time.Parse(time.RFC3339Nano, data["modified_at"]); err == nil {
		hit.ModifiedAt = t
	}
	return hit
}
