package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"knowledge-base/internal/domain"
)

type memoryTxKey struct{}

// memoryTx marks the context of the running transaction.
type memoryTx struct {
	store *MemoryStore
}

type memoryResource struct {
	pos       domain.Position
	uuid      string
	createdAt time.Time
}

type memorySubscriptionKey struct {
	groupID     int64
	userID      string
	resourceKey int64
}

// MemoryStore keeps articles, subscriptions and users in process memory.
// It implements ArticleRepository, SubscriptionRepository, UserRepository and
// Transactor. A transaction holds the store lock until it commits, so other
// callers never observe its intermediate writes. Failed transactions are
// rolled back by restoring a snapshot taken at begin.
type MemoryStore struct {
	mu sync.RWMutex
	tx atomic.Pointer[memoryTx]

	resources     map[int64]*memoryResource
	versions      map[int64][]domain.ArticleVersion
	subscriptions map[memorySubscriptionKey]domain.Subscription
	users         map[string]domain.Identity
	nextKey       int64
	nextVersionID int64
}

// NewMemoryStore creates an empty MemoryStore. Allocated resource keys start at firstKey.
func NewMemoryStore(firstKey int64) *MemoryStore {
	if firstKey < 1 {
		firstKey = 1
	}
	return &MemoryStore{
		resources:     make(map[int64]*memoryResource),
		versions:      make(map[int64][]domain.ArticleVersion),
		subscriptions: make(map[memorySubscriptionKey]domain.Subscription),
		users:         make(map[string]domain.Identity),
		nextKey:       firstKey,
	}
}

type memorySnapshot struct {
	resources     map[int64]*memoryResource
	versions      map[int64][]domain.ArticleVersion
	subscriptions map[memorySubscriptionKey]domain.Subscription
	users         map[string]domain.Identity
	nextKey       int64
	nextVersionID int64
}

// snapshot copies the store state. Callers hold mu.
func (s *MemoryStore) snapshot() memorySnapshot {
	snap := memorySnapshot{
		resources:     make(map[int64]*memoryResource, len(s.resources)),
		versions:      make(map[int64][]domain.ArticleVersion, len(s.versions)),
		subscriptions: make(map[memorySubscriptionKey]domain.Subscription, len(s.subscriptions)),
		users:         make(map[string]domain.Identity, len(s.users)),
		nextKey:       s.nextKey,
		nextVersionID: s.nextVersionID,
	}
	for k, r := range s.resources {
		cp := *r
		snap.resources[k] = &cp
	}
	for k, v := range s.versions {
		snap.versions[k] = append([]domain.ArticleVersion(nil), v...)
	}
	for k, v := range s.subscriptions {
		snap.subscriptions[k] = v
	}
	for k, v := range s.users {
		snap.users[k] = v
	}
	return snap
}

// restore puts a snapshot back. Callers hold mu.
func (s *MemoryStore) restore(snap memorySnapshot) {
	s.resources = snap.resources
	s.versions = snap.versions
	s.subscriptions = snap.subscriptions
	s.users = snap.users
	s.nextKey = snap.nextKey
	s.nextVersionID = snap.nextVersionID
}

// WithinTx runs fn while holding the store lock and undoes its writes when it fails.
// Store calls inside fn must use the context passed to fn.
func (s *MemoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryTx{store: s}
	s.tx.Store(tx)
	defer s.tx.Store(nil)

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, memoryTxKey{}, tx)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// inTx reports whether ctx belongs to the transaction currently holding mu.
func (s *MemoryStore) inTx(ctx context.Context) bool {
	tx, _ := ctx.Value(memoryTxKey{}).(*memoryTx)
	return tx != nil && tx.store == s && s.tx.Load() == tx
}

// lock takes mu for writing unless the running transaction already holds it.
func (s *MemoryStore) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// rlock takes mu for reading unless the running transaction already holds it.
func (s *MemoryStore) rlock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// latest overlays the current position on the newest stored version.
// Callers hold mu.
func (s *MemoryStore) latest(resourceKey int64) (domain.ArticleVersion, bool) {
	res, ok := s.resources[resourceKey]
	if !ok {
		return domain.ArticleVersion{}, false
	}
	history := s.versions[resourceKey]
	if len(history) == 0 {
		return domain.ArticleVersion{}, false
	}
	a := history[len(history)-1]
	a.UUID = res.uuid
	a.GroupID = res.pos.GroupID
	a.ParentResourceKey = res.pos.ParentResourceKey
	a.Priority = res.pos.Priority
	return a, true
}

// FindLatest retrieves the newest version of a resource with its current position.
func (s *MemoryStore) FindLatest(ctx context.Context, resourceKey int64) (*domain.ArticleVersion, error) {
	defer s.rlock(ctx)()

	a, ok := s.latest(resourceKey)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// FindVersion retrieves one stored version snapshot.
func (s *MemoryStore) FindVersion(ctx context.Context, resourceKey int64, version int) (*domain.ArticleVersion, error) {
	defer s.rlock(ctx)()

	for _, v := range s.versions[resourceKey] {
		if v.Version == version {
			a := v
			return &a, nil
		}
	}
	return nil, nil
}

// FindVersions retrieves the full history of a resource.
func (s *MemoryStore) FindVersions(ctx context.Context, resourceKey int64) ([]domain.ArticleVersion, error) {
	defer s.rlock(ctx)()

	return append([]domain.ArticleVersion(nil), s.versions[resourceKey]...), nil
}

// CountVersions counts the stored versions of a resource.
func (s *MemoryStore) CountVersions(ctx context.Context, resourceKey int64) (int, error) {
	defer s.rlock(ctx)()

	return len(s.versions[resourceKey]), nil
}

func lessArticles(order domain.ArticleOrder) (func(a, b domain.ArticleVersion) bool, error) {
	byKey := func(a, b domain.ArticleVersion, desc bool) bool {
		if desc {
			return a.ResourceKey > b.ResourceKey
		}
		return a.ResourceKey < b.ResourceKey
	}

	switch order {
	case "", domain.OrderPriorityAsc:
		return func(a, b domain.ArticleVersion) bool {
			if a.Priority != b.Priority {
				return a.Priority < b.Priority
			}
			return byKey(a, b, false)
		}, nil
	case domain.OrderPriorityDesc:
		return func(a, b domain.ArticleVersion) bool {
			if a.Priority != b.Priority {
				return a.Priority > b.Priority
			}
			return byKey(a, b, true)
		}, nil
	case domain.OrderTitleAsc:
		return func(a, b domain.ArticleVersion) bool {
			if a.Title != b.Title {
				return a.Title < b.Title
			}
			return byKey(a, b, false)
		}, nil
	case domain.OrderTitleDesc:
		return func(a, b domain.ArticleVersion) bool {
			if a.Title != b.Title {
				return a.Title > b.Title
			}
			return byKey(a, b, true)
		}, nil
	case domain.OrderModifiedAsc:
		return func(a, b domain.ArticleVersion) bool {
			if !a.ModifiedAt.Equal(b.ModifiedAt) {
				return a.ModifiedAt.Before(b.ModifiedAt)
			}
			return byKey(a, b, false)
		}, nil
	case domain.OrderModifiedDesc:
		return func(a, b domain.ArticleVersion) bool {
			if !a.ModifiedAt.Equal(b.ModifiedAt) {
				return a.ModifiedAt.After(b.ModifiedAt)
			}
			return byKey(a, b, true)
		}, nil
	}
	return nil, fmt.Errorf("unsupported order %q", order)
}

// FindChildren lists the latest versions in one sibling bucket.
func (s *MemoryStore) FindChildren(ctx context.Context, scope domain.Scope, order domain.ArticleOrder, page domain.Page) ([]domain.ArticleVersion, error) {
	less, err := lessArticles(order)
	if err != nil {
		return nil, err
	}

	unlock := s.rlock(ctx)
	var children []domain.ArticleVersion
	for key, res := range s.resources {
		if res.pos.GroupID != scope.GroupID || res.pos.ParentResourceKey != scope.ParentResourceKey {
			continue
		}
		if a, ok := s.latest(key); ok {
			children = append(children, a)
		}
	}
	unlock()

	sort.Slice(children, func(i, j int) bool { return less(children[i], children[j]) })

	if page.Offset > 0 {
		if page.Offset >= len(children) {
			return nil, nil
		}
		children = children[page.Offset:]
	}
	if page.Limit > 0 && page.Limit < len(children) {
		children = children[:page.Limit]
	}
	return children, nil
}

// CountChildren counts the resources in one sibling bucket.
func (s *MemoryStore) CountChildren(ctx context.Context, scope domain.Scope) (int, error) {
	defer s.rlock(ctx)()

	count := 0
	for _, res := range s.resources {
		if res.pos.GroupID == scope.GroupID && res.pos.ParentResourceKey == scope.ParentResourceKey {
			count++
		}
	}
	return count, nil
}

// FindGroup lists the latest version of every resource in a group.
func (s *MemoryStore) FindGroup(ctx context.Context, groupID int64) ([]domain.ArticleVersion, error) {
	defer s.rlock(ctx)()

	var articles []domain.ArticleVersion
	for key, res := range s.resources {
		if res.pos.GroupID != groupID {
			continue
		}
		if a, ok := s.latest(key); ok {
			articles = append(articles, a)
		}
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i].ResourceKey < articles[j].ResourceKey })
	return articles, nil
}

// FindPosition retrieves the current position of a resource.
func (s *MemoryStore) FindPosition(ctx context.Context, resourceKey int64) (*domain.Position, error) {
	defer s.rlock(ctx)()

	res, ok := s.resources[resourceKey]
	if !ok {
		return nil, nil
	}
	pos := res.pos
	return &pos, nil
}

// FindPositions lists the positions in one sibling bucket.
func (s *MemoryStore) FindPositions(ctx context.Context, scope domain.Scope) ([]domain.Position, error) {
	unlock := s.rlock(ctx)
	var positions []domain.Position
	for _, res := range s.resources {
		if res.pos.GroupID == scope.GroupID && res.pos.ParentResourceKey == scope.ParentResourceKey {
			positions = append(positions, res.pos)
		}
	}
	unlock()

	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Priority != positions[j].Priority {
			return positions[i].Priority < positions[j].Priority
		}
		return positions[i].ResourceKey < positions[j].ResourceKey
	})
	return positions, nil
}

// NextResourceKey allocates a resource key not used by any stored resource.
func (s *MemoryStore) NextResourceKey(ctx context.Context) (int64, error) {
	defer s.lock(ctx)()

	for {
		key := s.nextKey
		s.nextKey++
		if _, taken := s.resources[key]; !taken {
			return key, nil
		}
	}
}

// InsertResource registers a resource and its initial position.
func (s *MemoryStore) InsertResource(ctx context.Context, pos domain.Position, uuid string, createdAt time.Time) error {
	defer s.lock(ctx)()

	if _, exists := s.resources[pos.ResourceKey]; exists {
		return &domain.ConflictError{ResourceKey: pos.ResourceKey}
	}
	for _, res := range s.resources {
		if res.uuid == uuid {
			return fmt.Errorf("uuid %s already used: %w", uuid, domain.ErrConflict)
		}
	}
	s.resources[pos.ResourceKey] = &memoryResource{pos: pos, uuid: uuid, createdAt: createdAt}
	return nil
}

// InsertVersion appends a version row.
func (s *MemoryStore) InsertVersion(ctx context.Context, v *domain.ArticleVersion) error {
	defer s.lock(ctx)()

	res, ok := s.resources[v.ResourceKey]
	if !ok {
		return fmt.Errorf("insert article version: %w", &domain.NotFoundError{ResourceKey: v.ResourceKey})
	}
	for _, existing := range s.versions[v.ResourceKey] {
		if existing.Version == v.Version {
			return fmt.Errorf("version %d of article %d already written: %w", v.Version, v.ResourceKey, domain.ErrConflict)
		}
	}

	s.nextVersionID++
	v.ID = s.nextVersionID
	stored := *v
	stored.UUID = res.uuid
	s.versions[v.ResourceKey] = append(s.versions[v.ResourceKey], stored)
	sort.Slice(s.versions[v.ResourceKey], func(i, j int) bool {
		return s.versions[v.ResourceKey][i].Version < s.versions[v.ResourceKey][j].Version
	})
	return nil
}

// UpdatePosition moves a resource.
func (s *MemoryStore) UpdatePosition(ctx context.Context, pos domain.Position) error {
	defer s.lock(ctx)()

	res, ok := s.resources[pos.ResourceKey]
	if !ok {
		return &domain.NotFoundError{ResourceKey: pos.ResourceKey}
	}
	res.pos.ParentResourceKey = pos.ParentResourceKey
	res.pos.Priority = pos.Priority
	return nil
}

// DeleteAllVersions removes a resource with its whole history.
func (s *MemoryStore) DeleteAllVersions(ctx context.Context, resourceKey int64) error {
	defer s.lock(ctx)()

	delete(s.versions, resourceKey)
	delete(s.resources, resourceKey)
	return nil
}

// LockScope is a no-op; a transaction already holds the whole store.
func (s *MemoryStore) LockScope(_ context.Context, _ domain.Scope) error {
	return nil
}

// Subscribe stores a subscription, keeping the existing one on repeat calls.
func (s *MemoryStore) Subscribe(ctx context.Context, sub *domain.Subscription) error {
	defer s.lock(ctx)()

	key := memorySubscriptionKey{groupID: sub.GroupID, userID: sub.UserID, resourceKey: sub.ResourceKey}
	if existing, ok := s.subscriptions[key]; ok {
		*sub = existing
		return nil
	}
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}
	s.subscriptions[key] = *sub
	return nil
}

// Unsubscribe removes a subscription.
func (s *MemoryStore) Unsubscribe(ctx context.Context, groupID int64, userID string, resourceKey int64) error {
	defer s.lock(ctx)()

	delete(s.subscriptions, memorySubscriptionKey{groupID: groupID, userID: userID, resourceKey: resourceKey})
	return nil
}

// DeleteByResource removes every subscription on one article.
func (s *MemoryStore) DeleteByResource(ctx context.Context, resourceKey int64) error {
	defer s.lock(ctx)()

	for key := range s.subscriptions {
		if key.resourceKey == resourceKey {
			delete(s.subscriptions, key)
		}
	}
	return nil
}

// FindRecipients lists distinct known users subscribed to the group or to the article.
func (s *MemoryStore) FindRecipients(ctx context.Context, groupID, resourceKey int64) ([]domain.Identity, error) {
	defer s.rlock(ctx)()

	seen := make(map[string]bool)
	var recipients []domain.Identity
	for key, sub := range s.subscriptions {
		if key.groupID != groupID || (!sub.IsGroupWide() && key.resourceKey != resourceKey) {
			continue
		}
		identity, ok := s.users[key.userID]
		if !ok || seen[identity.ID] {
			continue
		}
		seen[identity.ID] = true
		recipients = append(recipients, identity)
	}
	sort.Slice(recipients, func(i, j int) bool { return recipients[i].ID < recipients[j].ID })
	return recipients, nil
}

// FindIdentity retrieves the display identity of a user.
func (s *MemoryStore) FindIdentity(ctx context.Context, userID string) (*domain.Identity, error) {
	defer s.rlock(ctx)()

	identity, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	return &identity, nil
}

// UpsertIdentity creates a user or refreshes its name and email.
func (s *MemoryStore) UpsertIdentity(ctx context.Context, identity domain.Identity) error {
	defer s.lock(ctx)()

	s.users[identity.ID] = identity
	return nil
}
