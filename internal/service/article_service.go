package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/logger"
	"knowledge-base/internal/metrics"
	"knowledge-base/internal/repository"
	"knowledge-base/internal/validator"
)

// CreateArticleInput holds the fields of a new article. A zero ResourceKey
// asks the store to allocate one; an empty UUID gets a random one.
type CreateArticleInput struct {
	ResourceKey       int64
	UUID              string
	GroupID           int64
	ParentResourceKey int64
	Priority          int
	Title             string
	Content           string
	Description       string
	AuthorID          string
	AttachmentsDir    string
}

// UpdateArticleInput holds the fields of an edit. Nil position fields keep
// the current parent and priority. An empty AttachmentsDir leaves the
// article's attachments alone.
type UpdateArticleInput struct {
	ParentResourceKey *int64
	Priority          *int
	Title             string
	Content           string
	Description       string
	AuthorID          string
	AttachmentsDir    string
}

// ArticleService is the versioned article store.
type ArticleService struct {
	articles      repository.ArticleRepository
	subscriptions repository.SubscriptionRepository
	tx            repository.Transactor
	indexer       Indexer
	notifier      Notifier
	attachments   AttachmentStore
	identities    IdentityResolver
	validator     *validator.Validator
	policy        domain.PositionPolicy

	now     func() time.Time
	newUUID func() string
}

// NewArticleService creates a new ArticleService. An unknown policy falls back to metadata.
func NewArticleService(
	articles repository.ArticleRepository,
	subscriptions repository.SubscriptionRepository,
	tx repository.Transactor,
	indexer Indexer,
	notifier Notifier,
	attachments AttachmentStore,
	identities IdentityResolver,
	v *validator.Validator,
	policy domain.PositionPolicy,
) *ArticleService {
	if !domain.IsValidPositionPolicy(string(policy)) {
		policy = domain.PositionPolicyMetadata
	}
	return &ArticleService{
		articles:      articles,
		subscriptions: subscriptions,
		tx:            tx,
		indexer:       indexer,
		notifier:      notifier,
		attachments:   attachments,
		identities:    identities,
		validator:     v,
		policy:        policy,
		now:           func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		newUUID:       func() string { return uuid.New().String() },
	}
}

// CreateArticle writes version 1 of a new resource and places it among its siblings.
func (s *ArticleService) CreateArticle(ctx context.Context, in CreateArticleInput, nc domain.NotifyContext) (_ *domain.ArticleVersion, err error) {
	timer := metrics.NewTimer()
	defer func() { observe("create", timer, err) }()

	if err := s.validator.ValidateArticleFields(in.Title, in.Content); err != nil {
		return nil, err
	}
	if in.GroupID <= 0 {
		return nil, &domain.ValidationError{Kind: domain.InvalidInput, Field: "group_id"}
	}
	author, err := s.resolveAuthor(ctx, in.AuthorID)
	if err != nil {
		return nil, err
	}

	var created *domain.ArticleVersion
	var moved int
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkParent(ctx, in.GroupID, 0, in.ParentResourceKey); err != nil {
			return err
		}

		key := in.ResourceKey
		if key <= 0 {
			allocated, err := s.articles.NextResourceKey(ctx)
			if err != nil {
				return err
			}
			key = allocated
		}
		resourceUUID := in.UUID
		if resourceUUID == "" {
			resourceUUID = s.newUUID()
		}

		now := s.now()
		initial := domain.Position{
			ResourceKey:       key,
			GroupID:           in.GroupID,
			ParentResourceKey: in.ParentResourceKey,
			Priority:          in.Priority,
		}
		if err := s.articles.InsertResource(ctx, initial, resourceUUID, now); err != nil {
			return err
		}

		pos, siblings, err := s.place(ctx, &initial, in.ParentResourceKey, in.Priority)
		if err != nil {
			return err
		}
		moved = len(siblings)

		created = &domain.ArticleVersion{
			ResourceKey:       key,
			UUID:              resourceUUID,
			GroupID:           in.GroupID,
			Version:           domain.DefaultVersion,
			ParentResourceKey: pos.ParentResourceKey,
			Priority:          pos.Priority,
			Title:             in.Title,
			Content:           in.Content,
			Description:       in.Description,
			AuthorID:          author.ID,
			AuthorName:        author.FullName,
			CreatedAt:         now,
			ModifiedAt:        now,
		}
		if err := s.articles.InsertVersion(ctx, created); err != nil {
			return err
		}
		return s.recordSiblingMoves(ctx, siblings, &author)
	})
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	metrics.AddVersionsWritten("create", 1)
	metrics.AddPositionsRewritten(moved)
	logger.InfoContext(ctx, "Article created",
		slog.Int64("resource_key", created.ResourceKey),
		slog.Int64("group_id", created.GroupID),
		slog.Int64("parent_resource_key", created.ParentResourceKey),
		slog.Int("priority", created.Priority),
		slog.Int("siblings_moved", moved),
	)

	s.indexArticle(ctx, *created)
	s.copyAttachments(ctx, in.AttachmentsDir, created.ResourceKey)
	s.notifier.NotifyCreated(ctx, *created, nc)

	return created, nil
}

// UpdateArticle appends a new version to an existing resource, moving it
// when the parent or priority changes.
func (s *ArticleService) UpdateArticle(ctx context.Context, resourceKey int64, in UpdateArticleInput, nc domain.NotifyContext) (_ *domain.ArticleVersion, err error) {
	timer := metrics.NewTimer()
	defer func() { observe("update", timer, err) }()

	author, err := s.resolveAuthor(ctx, in.AuthorID)
	if err != nil {
		return nil, err
	}

	var updated *domain.ArticleVersion
	var moved int
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		latest, err := s.articles.FindLatest(ctx, resourceKey)
		if err != nil {
			return err
		}
		if latest == nil {
			return &domain.NotFoundError{ResourceKey: resourceKey}
		}
		if err := s.validator.ValidateArticleFields(in.Title, in.Content); err != nil {
			return err
		}

		newParent := latest.ParentResourceKey
		if in.ParentResourceKey != nil {
			newParent = *in.ParentResourceKey
		}
		newPriority := latest.Priority
		if in.Priority != nil {
			newPriority = *in.Priority
		}

		if err := s.lockScopes(ctx, moveScopes(latest.GroupID, latest.ParentResourceKey, newParent)); err != nil {
			return err
		}
		if err := s.checkParent(ctx, latest.GroupID, resourceKey, newParent); err != nil {
			return err
		}

		from := domain.Position{
			ResourceKey:       resourceKey,
			GroupID:           latest.GroupID,
			ParentResourceKey: latest.ParentResourceKey,
			Priority:          latest.Priority,
		}
		pos, siblings, err := s.place(ctx, &from, newParent, newPriority)
		if err != nil {
			return err
		}
		moved = len(siblings)

		updated = &domain.ArticleVersion{
			ResourceKey:       resourceKey,
			UUID:              latest.UUID,
			GroupID:           latest.GroupID,
			Version:           latest.Version + 1,
			ParentResourceKey: pos.ParentResourceKey,
			Priority:          pos.Priority,
			Title:             in.Title,
			Content:           in.Content,
			Description:       in.Description,
			AuthorID:          author.ID,
			AuthorName:        author.FullName,
			CreatedAt:         latest.CreatedAt,
			ModifiedAt:        s.now(),
		}
		if err := s.articles.InsertVersion(ctx, updated); err != nil {
			return err
		}
		return s.recordSiblingMoves(ctx, siblings, &author)
	})
	if err != nil {
		return nil, fmt.Errorf("update article %d: %w", resourceKey, err)
	}

	metrics.AddVersionsWritten("edit", 1)
	metrics.AddPositionsRewritten(moved)
	logger.InfoContext(ctx, "Article updated",
		slog.Int64("resource_key", resourceKey),
		slog.Int("version", updated.Version),
		slog.Int("siblings_moved", moved),
	)

	s.indexArticle(ctx, *updated)
	if in.AttachmentsDir != "" {
		s.removeAttachments(ctx, resourceKey)
		s.copyAttachments(ctx, in.AttachmentsDir, resourceKey)
	}
	s.notifier.NotifyUpdated(ctx, *updated, nc)

	return updated, nil
}

// MoveArticle reorders a resource without editing its content.
func (s *ArticleService) MoveArticle(ctx context.Context, resourceKey, newParentResourceKey int64, newPriority int) (_ *domain.ArticleVersion, err error) {
	timer := metrics.NewTimer()
	defer func() { observe("reorder", timer, err) }()

	var moved int
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		from, err := s.articles.FindPosition(ctx, resourceKey)
		if err != nil {
			return err
		}
		if from == nil {
			return &domain.NotFoundError{ResourceKey: resourceKey}
		}
		if err := s.lockScopes(ctx, moveScopes(from.GroupID, from.ParentResourceKey, newParentResourceKey)); err != nil {
			return err
		}
		if err := s.checkParent(ctx, from.GroupID, resourceKey, newParentResourceKey); err != nil {
			return err
		}

		pos, siblings, err := s.place(ctx, from, newParentResourceKey, newPriority)
		if err != nil {
			return err
		}
		if pos != *from {
			siblings = append(siblings, pos)
		}
		moved = len(siblings)
		return s.recordSiblingMoves(ctx, siblings, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("move article %d: %w", resourceKey, err)
	}

	metrics.AddPositionsRewritten(moved)
	logger.InfoContext(ctx, "Article moved",
		slog.Int64("resource_key", resourceKey),
		slog.Int64("parent_resource_key", newParentResourceKey),
		slog.Int("priority", newPriority),
		slog.Int("positions_changed", moved),
	)

	return s.GetLatest(ctx, resourceKey)
}

// DeleteArticle removes a resource, every descendant and their histories, then
// compacts the remaining siblings. It returns the number of resources removed.
func (s *ArticleService) DeleteArticle(ctx context.Context, resourceKey int64) (_ int, err error) {
	timer := metrics.NewTimer()
	defer func() { observe("delete", timer, err) }()

	var deleted []int64
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		deleted = deleted[:0]

		pos, err := s.articles.FindPosition(ctx, resourceKey)
		if err != nil {
			return err
		}
		if pos == nil {
			return &domain.NotFoundError{ResourceKey: resourceKey}
		}

		scope := domain.Scope{GroupID: pos.GroupID, ParentResourceKey: pos.ParentResourceKey}
		if err := s.articles.LockScope(ctx, scope); err != nil {
			return err
		}
		if err := s.deleteTree(ctx, pos.GroupID, resourceKey, make(map[int64]bool), &deleted); err != nil {
			return err
		}

		remaining, err := s.articles.FindPositions(ctx, scope)
		if err != nil {
			return err
		}
		compacted, err := s.renumber(ctx, remaining)
		if err != nil {
			return err
		}
		return s.recordSiblingMoves(ctx, compacted, nil)
	})
	if err != nil {
		return 0, fmt.Errorf("delete article %d: %w", resourceKey, err)
	}

	metrics.CascadeDeleteSize.Observe(float64(len(deleted)))
	logger.InfoContext(ctx, "Article deleted",
		slog.Int64("resource_key", resourceKey),
		slog.Int("resources_removed", len(deleted)),
	)
	s.cleanupDeleted(ctx, deleted)

	return len(deleted), nil
}

// DeleteGroup removes every article of a group.
func (s *ArticleService) DeleteGroup(ctx context.Context, groupID int64) (_ int, err error) {
	timer := metrics.NewTimer()
	defer func() { observe("delete_group", timer, err) }()

	var deleted []int64
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		deleted = deleted[:0]

		scope := domain.Scope{GroupID: groupID, ParentResourceKey: domain.RootResourceKey}
		if err := s.articles.LockScope(ctx, scope); err != nil {
			return err
		}
		roots, err := s.articles.FindPositions(ctx, scope)
		if err != nil {
			return err
		}

		visited := make(map[int64]bool)
		for _, root := range roots {
			if err := s.deleteTree(ctx, groupID, root.ResourceKey, visited, &deleted); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("delete group %d: %w", groupID, err)
	}

	logger.InfoContext(ctx, "Group articles deleted",
		slog.Int64("group_id", groupID),
		slog.Int("resources_removed", len(deleted)),
	)
	s.cleanupDeleted(ctx, deleted)

	return len(deleted), nil
}

// deleteTree removes children depth-first before the resource itself.
func (s *ArticleService) deleteTree(ctx context.Context, groupID, resourceKey int64, visited map[int64]bool, deleted *[]int64) error {
	if visited[resourceKey] {
		logger.WarnContext(ctx, "Skipping article already visited during delete",
			slog.Int64("resource_key", resourceKey))
		return nil
	}
	visited[resourceKey] = true

	// Creates and moves into this bucket wait until the delete commits
	scope := domain.Scope{GroupID: groupID, ParentResourceKey: resourceKey}
	if err := s.articles.LockScope(ctx, scope); err != nil {
		return err
	}
	children, err := s.articles.FindPositions(ctx, scope)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := s.deleteTree(ctx, groupID, child.ResourceKey, visited, deleted); err != nil {
			return err
		}
	}

	if err := s.articles.DeleteAllVersions(ctx, resourceKey); err != nil {
		return err
	}
	if err := s.subscriptions.DeleteByResource(ctx, resourceKey); err != nil {
		return err
	}
	*deleted = append(*deleted, resourceKey)
	return nil
}

func (s *ArticleService) cleanupDeleted(ctx context.Context, deleted []int64) {
	for _, key := range deleted {
		if err := s.indexer.Remove(ctx, key); err != nil {
			logger.WarnContext(ctx, "Failed to remove article from index",
				slog.Int64("resource_key", key),
				slog.String("error", err.Error()))
			metrics.RecordSideEffectFailure("index")
		}
		s.removeAttachments(ctx, key)
	}
}

// GetLatest returns the newest version of a resource.
func (s *ArticleService) GetLatest(ctx context.Context, resourceKey int64) (*domain.ArticleVersion, error) {
	latest, err := s.articles.FindLatest(ctx, resourceKey)
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", resourceKey, err)
	}
	if latest == nil {
		return nil, &domain.NotFoundError{ResourceKey: resourceKey}
	}
	return latest, nil
}

// GetVersion returns one exact version of a resource.
func (s *ArticleService) GetVersion(ctx context.Context, resourceKey int64, version int) (*domain.ArticleVersion, error) {
	v, err := s.articles.FindVersion(ctx, resourceKey, version)
	if err != nil {
		return nil, fmt.Errorf("get article %d version %d: %w", resourceKey, version, err)
	}
	if v == nil {
		return nil, &domain.NotFoundError{ResourceKey: resourceKey, Version: version}
	}
	return v, nil
}

// ListVersions returns the whole history of a resource, oldest first.
func (s *ArticleService) ListVersions(ctx context.Context, resourceKey int64) ([]domain.ArticleVersion, error) {
	versions, err := s.articles.FindVersions(ctx, resourceKey)
	if err != nil {
		return nil, fmt.Errorf("list versions of %d: %w", resourceKey, err)
	}
	if len(versions) == 0 {
		return nil, &domain.NotFoundError{ResourceKey: resourceKey}
	}
	return versions, nil
}

// CountVersions returns how many versions a resource has.
func (s *ArticleService) CountVersions(ctx context.Context, resourceKey int64) (int, error) {
	count, err := s.articles.CountVersions(ctx, resourceKey)
	if err != nil {
		return 0, fmt.Errorf("count versions of %d: %w", resourceKey, err)
	}
	return count, nil
}

// ListChildren returns the latest versions of one sibling bucket.
func (s *ArticleService) ListChildren(ctx context.Context, scope domain.Scope, order domain.ArticleOrder, page domain.Page) ([]domain.ArticleVersion, error) {
	if err := s.validator.ValidateListing(order, page); err != nil {
		return nil, err
	}
	children, err := s.articles.FindChildren(ctx, scope, order, page)
	if err != nil {
		return nil, fmt.Errorf("list children of %d/%d: %w", scope.GroupID, scope.ParentResourceKey, err)
	}
	return children, nil
}

// CountChildren returns the size of one sibling bucket.
func (s *ArticleService) CountChildren(ctx context.Context, scope domain.Scope) (int, error) {
	count, err := s.articles.CountChildren(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("count children of %d/%d: %w", scope.GroupID, scope.ParentResourceKey, err)
	}
	return count, nil
}

// ListGroup returns the latest version of every article in a group.
func (s *ArticleService) ListGroup(ctx context.Context, groupID int64) ([]domain.ArticleVersion, error) {
	articles, err := s.articles.FindGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list group %d: %w", groupID, err)
	}
	return articles, nil
}

// Subscribe registers a user for change mail on a group or one of its articles.
func (s *ArticleService) Subscribe(ctx context.Context, sub *domain.Subscription) error {
	if err := s.validator.ValidateSubscription(sub); err != nil {
		return err
	}
	if err := s.checkSubscriptionTarget(ctx, *sub); err != nil {
		return err
	}
	if err := s.subscriptions.Subscribe(ctx, sub); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	logger.InfoContext(ctx, "Subscription added",
		slog.Int64("group_id", sub.GroupID),
		slog.String("user_id", sub.UserID),
		slog.Int64("resource_key", sub.ResourceKey),
	)
	return nil
}

// Unsubscribe removes a subscription.
func (s *ArticleService) Unsubscribe(ctx context.Context, sub domain.Subscription) error {
	if err := s.validator.ValidateSubscription(&sub); err != nil {
		return err
	}
	if sub.IsGroupWide() {
		sub.ResourceKey = 0
	}
	if err := s.subscriptions.Unsubscribe(ctx, sub.GroupID, sub.UserID, sub.ResourceKey); err != nil {
		return fmt.Errorf("unsubscribe: %w", err)
	}
	return nil
}

func (s *ArticleService) checkSubscriptionTarget(ctx context.Context, sub domain.Subscription) error {
	if sub.IsGroupWide() {
		return nil
	}
	pos, err := s.articles.FindPosition(ctx, sub.ResourceKey)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	if pos == nil {
		return &domain.NotFoundError{ResourceKey: sub.ResourceKey}
	}
	if pos.GroupID != sub.GroupID {
		return &domain.ValidationError{Kind: domain.InvalidInput, Field: "group_id"}
	}
	return nil
}

// PrepareAttachments creates an upload directory for editing an article's
// attachments. A zero resourceKey prepares an empty directory for a new article.
func (s *ArticleService) PrepareAttachments(ctx context.Context, resourceKey int64) (string, error) {
	if resourceKey > 0 {
		pos, err := s.articles.FindPosition(ctx, resourceKey)
		if err != nil {
			return "", fmt.Errorf("prepare attachments: %w", err)
		}
		if pos == nil {
			return "", &domain.NotFoundError{ResourceKey: resourceKey}
		}
	}
	dir, err := s.attachments.PrepareTemp(ctx, resourceKey)
	if err != nil {
		return "", fmt.Errorf("prepare attachments for %d: %w", resourceKey, err)
	}
	return dir, nil
}

// ReindexGroup pushes the latest version of every article in a group to the index.
func (s *ArticleService) ReindexGroup(ctx context.Context, groupID int64) (_ int, err error) {
	timer := metrics.NewTimer()
	defer func() { observe("reindex", timer, err) }()

	articles, err := s.articles.FindGroup(ctx, groupID)
	if err != nil {
		return 0, fmt.Errorf("reindex group %d: %w", groupID, err)
	}
	for _, a := range articles {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if err := s.indexer.Upsert(ctx, a); err != nil {
			return 0, fmt.Errorf("reindex article %d: %w", a.ResourceKey, err)
		}
	}

	logger.InfoContext(ctx, "Group reindexed",
		slog.Int64("group_id", groupID),
		slog.Int("articles", len(articles)),
	)
	return len(articles), nil
}

// checkParent verifies that parentKey can hold resourceKey. It locks the
// bucket under parentKey first, so a concurrent delete of the parent either
// sees the new child or makes the parent lookup fail. A zero resourceKey
// skips the ancestry walk for resources that do not exist yet.
func (s *ArticleService) checkParent(ctx context.Context, groupID, resourceKey, parentKey int64) error {
	if parentKey == domain.RootResourceKey {
		return nil
	}
	if parentKey == resourceKey {
		return &domain.CycleError{ResourceKey: resourceKey, ParentResourceKey: parentKey}
	}

	if err := s.articles.LockScope(ctx, domain.Scope{GroupID: groupID, ParentResourceKey: parentKey}); err != nil {
		return err
	}
	parent, err := s.articles.FindPosition(ctx, parentKey)
	if err != nil {
		return err
	}
	if parent == nil {
		return &domain.NotFoundError{ResourceKey: parentKey}
	}
	if parent.GroupID != groupID {
		return &domain.ValidationError{Kind: domain.InvalidInput, Field: "parent_resource_key"}
	}
	if resourceKey == 0 {
		return nil
	}

	visited := map[int64]bool{parentKey: true}
	for ancestor := parent.ParentResourceKey; ancestor != domain.RootResourceKey; {
		if ancestor == resourceKey || visited[ancestor] {
			return &domain.CycleError{ResourceKey: resourceKey, ParentResourceKey: parentKey}
		}
		visited[ancestor] = true

		pos, err := s.articles.FindPosition(ctx, ancestor)
		if err != nil {
			return err
		}
		if pos == nil {
			break
		}
		ancestor = pos.ParentResourceKey
	}
	return nil
}

// place moves the resource at from into the bucket of newParent at
// newPriority, clamped to the bucket size, and renumbers both the source and
// target buckets to 0..N-1. Only changed positions are written. It returns
// the resource's final position and the siblings whose position changed.
func (s *ArticleService) place(ctx context.Context, from *domain.Position, newParent int64, newPriority int) (domain.Position, []domain.Position, error) {
	key := from.ResourceKey
	target := domain.Scope{GroupID: from.GroupID, ParentResourceKey: newParent}
	source := domain.Scope{GroupID: from.GroupID, ParentResourceKey: from.ParentResourceKey}
	parentChanged := source != target

	scopes := []domain.Scope{target}
	if parentChanged {
		scopes = append(scopes, source)
	}
	if err := s.lockScopes(ctx, scopes); err != nil {
		return domain.Position{}, nil, err
	}

	var changed []domain.Position
	if parentChanged {
		old, err := s.articles.FindPositions(ctx, source)
		if err != nil {
			return domain.Position{}, nil, err
		}
		compacted, err := s.renumber(ctx, withoutResource(old, key))
		if err != nil {
			return domain.Position{}, nil, err
		}
		changed = append(changed, compacted...)
	}

	current, err := s.articles.FindPositions(ctx, target)
	if err != nil {
		return domain.Position{}, nil, err
	}
	siblings := withoutResource(current, key)

	index := newPriority
	if index < 0 {
		index = 0
	}
	if index > len(siblings) {
		index = len(siblings)
	}

	final := domain.Position{ResourceKey: key, GroupID: from.GroupID, ParentResourceKey: newParent, Priority: index}
	ordered := make([]domain.Position, 0, len(siblings)+1)
	ordered = append(ordered, siblings[:index]...)
	ordered = append(ordered, final)
	ordered = append(ordered, siblings[index:]...)

	if final != *from {
		if err := s.articles.UpdatePosition(ctx, final); err != nil {
			return domain.Position{}, nil, err
		}
	}
	for i, p := range ordered {
		if p.ResourceKey == key || p.Priority == i {
			continue
		}
		p.Priority = i
		if err := s.articles.UpdatePosition(ctx, p); err != nil {
			return domain.Position{}, nil, err
		}
		changed = append(changed, p)
	}

	return final, changed, nil
}

// renumber rewrites positions to 0..N-1 in their current order.
func (s *ArticleService) renumber(ctx context.Context, positions []domain.Position) ([]domain.Position, error) {
	var changed []domain.Position
	for i, p := range positions {
		if p.Priority == i {
			continue
		}
		p.Priority = i
		if err := s.articles.UpdatePosition(ctx, p); err != nil {
			return nil, err
		}
		changed = append(changed, p)
	}
	return changed, nil
}

// moveScopes returns the source and target buckets of a move.
func moveScopes(groupID, fromParent, toParent int64) []domain.Scope {
	scopes := []domain.Scope{{GroupID: groupID, ParentResourceKey: toParent}}
	if fromParent != toParent {
		scopes = append(scopes, domain.Scope{GroupID: groupID, ParentResourceKey: fromParent})
	}
	return scopes
}

// lockScopes locks buckets in a fixed order so concurrent moves cannot deadlock.
func (s *ArticleService) lockScopes(ctx context.Context, scopes []domain.Scope) error {
	sort.Slice(scopes, func(i, j int) bool {
		return scopes[i].ParentResourceKey < scopes[j].ParentResourceKey
	})
	for _, scope := range scopes {
		if err := s.articles.LockScope(ctx, scope); err != nil {
			return err
		}
	}
	return nil
}

// recordSiblingMoves appends a version per moved resource under the version
// position policy. A nil author keeps each resource's last author.
func (s *ArticleService) recordSiblingMoves(ctx context.Context, moved []domain.Position, author *domain.Identity) error {
	if s.policy != domain.PositionPolicyVersion || len(moved) == 0 {
		return nil
	}

	now := s.now()
	for _, p := range moved {
		latest, err := s.articles.FindLatest(ctx, p.ResourceKey)
		if err != nil {
			return err
		}
		if latest == nil {
			continue
		}
		next := *latest
		next.ID = 0
		next.Version = latest.Version + 1
		next.ModifiedAt = now
		if author != nil {
			next.AuthorID = author.ID
			next.AuthorName = author.FullName
		}
		if err := s.articles.InsertVersion(ctx, &next); err != nil {
			return err
		}
	}
	metrics.AddVersionsWritten("reorder", len(moved))
	return nil
}

func (s *ArticleService) resolveAuthor(ctx context.Context, authorID string) (domain.Identity, error) {
	if authorID == "" {
		return domain.Identity{}, nil
	}
	identity, err := s.identities.Resolve(ctx, authorID)
	if errors.Is(err, domain.ErrNotFound) {
		logger.DebugContext(ctx, "Unknown author, using id as name", slog.String("author_id", authorID))
		return domain.Identity{ID: authorID, FullName: authorID}, nil
	}
	if err != nil {
		return domain.Identity{}, fmt.Errorf("resolve author: %w", err)
	}
	return identity, nil
}

func (s *ArticleService) indexArticle(ctx context.Context, article domain.ArticleVersion) {
	if err := s.indexer.Upsert(ctx, article); err != nil {
		logger.WarnContext(ctx, "Failed to index article",
			slog.Int64("resource_key", article.ResourceKey),
			slog.String("error", err.Error()))
		metrics.RecordSideEffectFailure("index")
	}
}

func (s *ArticleService) copyAttachments(ctx context.Context, fromDir string, resourceKey int64) {
	if err := s.attachments.Copy(ctx, fromDir, resourceKey); err != nil {
		logger.WarnContext(ctx, "Failed to copy attachments",
			slog.Int64("resource_key", resourceKey),
			slog.String("dir", fromDir),
			slog.String("error", err.Error()))
		metrics.RecordSideEffectFailure("attachment")
	}
}

func (s *ArticleService) removeAttachments(ctx context.Context, resourceKey int64) {
	if err := s.attachments.Remove(ctx, resourceKey); err != nil {
		logger.WarnContext(ctx, "Failed to remove attachments",
			slog.Int64("resource_key", resourceKey),
			slog.String("error", err.Error()))
		metrics.RecordSideEffectFailure("attachment")
	}
}

func withoutResource(positions []domain.Position, resourceKey int64) []domain.Position {
	out := make([]domain.Position, 0, len(positions))
	for _, p := range positions {
		if p.ResourceKey != resourceKey {
			out = append(out, p)
		}
	}
	return out
}

func observe(operation string, timer *metrics.Timer, err error) {
	metrics.ObserveOperation(operation, resultOf(err), timer.Seconds())
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrCycle):
		return "cycle"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
