package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/mocks"
	"knowledge-base/internal/repository"
	"knowledge-base/internal/service"
	"knowledge-base/internal/validator"
)

type fixture struct {
	store       *repository.MemoryStore
	indexer     *mocks.MockIndexer
	notifier    *mocks.MockNotifier
	attachments *mocks.MockAttachmentStore
	svc         *service.ArticleService
}

func newFixture(t *testing.T, policy domain.PositionPolicy) *fixture {
	t.Helper()
	store := repository.NewMemoryStore(1000)
	require.NoError(t, store.UpsertIdentity(context.Background(), domain.Identity{ID: "ada", FullName: "Ada Lovelace", Email: "ada@example.com"}))

	f := &fixture{
		store:       store,
		indexer:     mocks.NewMockIndexer(t),
		notifier:    mocks.NewMockNotifier(t),
		attachments: mocks.NewMockAttachmentStore(t),
	}
	f.svc = service.NewArticleService(
		store,
		store,
		store,
		f.indexer,
		f.notifier,
		f.attachments,
		repository.NewIdentityResolver(store),
		validator.NewValidator(),
		policy,
	)
	return f
}

// allowWrites accepts the side effects of creates and updates.
func (f *fixture) allowWrites() {
	f.indexer.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.attachments.EXPECT().Copy(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.notifier.EXPECT().NotifyCreated(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	f.notifier.EXPECT().NotifyUpdated(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
}

func (f *fixture) create(t *testing.T, group, parent int64, priority int, title string) *domain.ArticleVersion {
	t.Helper()
	a, err := f.svc.CreateArticle(context.Background(), service.CreateArticleInput{
		GroupID:           group,
		ParentResourceKey: parent,
		Priority:          priority,
		Title:             title,
		Content:           "content of " + title,
		AuthorID:          "ada",
	}, domain.NotifyContext{})
	require.NoError(t, err)
	return a
}

func (f *fixture) priorities(t *testing.T, group, parent int64) map[int64]int {
	t.Helper()
	positions, err := f.store.FindPositions(context.Background(), domain.Scope{GroupID: group, ParentResourceKey: parent})
	require.NoError(t, err)
	out := make(map[int64]int, len(positions))
	for _, p := range positions {
		out[p.ResourceKey] = p.Priority
	}
	return out
}

func assertDense(t *testing.T, f *fixture, group, parent int64) {
	t.Helper()
	positions, err := f.store.FindPositions(context.Background(), domain.Scope{GroupID: group, ParentResourceKey: parent})
	require.NoError(t, err)
	for i, p := range positions {
		assert.Equal(t, i, p.Priority, "resource %d under %d", p.ResourceKey, parent)
	}
}

func TestArticleService_SiblingLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyMetadata)
	f.allowWrites()

	a := f.create(t, 1, 0, 0, "T")
	latest, err := f.svc.GetLatest(ctx, a.ResourceKey)
	require.NoError(t, err)
	assert.Equal(t, 1, latest.Version)
	assert.Equal(t, 0, latest.Priority)

	b := f.create(t, 1, 0, 0, "B")
	assert.Equal(t, 0, b.Priority)
	latest, err = f.svc.GetLatest(ctx, a.ResourceKey)
	require.NoError(t, err)
	assert.Equal(t, 1, latest.Priority)
	assert.Equal(t, 1, latest.Version, "metadata policy does not version moved siblings")

	updated, err := f.svc.UpdateArticle(ctx, a.ResourceKey, service.UpdateArticleInput{
		Title:    "T2",
		Content:  "C2",
		AuthorID: "ada",
	}, domain.NotifyContext{})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, 1, updated.Priority, "priority unchanged unless passed")
	assert.Equal(t, a.CreatedAt, updated.CreatedAt)
	assert.Equal(t, a.UUID, updated.UUID)

	first, err := f.svc.GetVersion(ctx, a.ResourceKey, 1)
	require.NoError(t, err)
	assert.Equal(t, "T", first.Title)
	assert.Equal(t, "content of T", first.Content)
	assert.Equal(t, 1, a.Version, "returned values are never mutated")
	assert.Equal(t, "T", a.Title)

	f.indexer.EXPECT().Remove(mock.Anything, b.ResourceKey).Return(nil).Once()
	f.attachments.EXPECT().Remove(mock.Anything, b.ResourceKey).Return(nil).Once()
	count, err := f.svc.DeleteArticle(ctx, b.ResourceKey)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	children, err := f.svc.ListChildren(ctx, domain.Scope{GroupID: 1}, "", domain.Page{})
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, a.ResourceKey, children[0].ResourceKey)
	assert.Equal(t, 2, children[0].Version)
	assert.Equal(t, 0, children[0].Priority, "siblings compacted after delete")
}

func TestArticleService_CascadeDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyMetadata)
	f.allowWrites()

	p := f.create(t, 1, 0, 0, "P")
	c1 := f.create(t, 1, p.ResourceKey, 0, "C1")
	c2 := f.create(t, 1, p.ResourceKey, 1, "C2")
	g := f.create(t, 1, c1.ResourceKey, 0, "G")
	other := f.create(t, 1, 0, 1, "Other")

	for _, key := range []int64{p.ResourceKey, c1.ResourceKey, c2.ResourceKey, g.ResourceKey} {
		f.indexer.EXPECT().Remove(mock.Anything, key).Return(nil).Once()
		f.attachments.EXPECT().Remove(mock.Anything, key).Return(nil).Once()
	}

	count, err := f.svc.DeleteArticle(ctx, p.ResourceKey)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	for _, key := range []int64{p.ResourceKey, c1.ResourceKey, c2.ResourceKey, g.ResourceKey} {
		_, err := f.svc.GetLatest(ctx, key)
		assert.True(t, errors.Is(err, domain.ErrNotFound), "resource %d", key)
		versions, err := f.store.FindVersions(ctx, key)
		require.NoError(t, err)
		assert.Empty(t, versions)
	}

	remaining, err := f.svc.GetLatest(ctx, other.ResourceKey)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining.Priority)
}

func TestArticleService_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyMetadata)
	f.allowWrites()
	a := f.create(t, 1, 0, 0, "A")

	f.indexer.EXPECT().Remove(mock.Anything, a.ResourceKey).Return(nil).Once()
	f.attachments.EXPECT().Remove(mock.Anything, a.ResourceKey).Return(nil).Once()
	_, err := f.svc.DeleteArticle(ctx, a.ResourceKey)
	require.NoError(t, err)

	_, err = f.svc.DeleteArticle(ctx, a.ResourceKey)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, a.ResourceKey, nf.ResourceKey)
	f.indexer.AssertNumberOfCalls(t, "Remove", 1)
}

func TestArticleService_DensePriorities(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyMetadata)
	f.allowWrites()

	a := f.create(t, 1, 0, 0, "A")
	b := f.create(t, 1, 0, 99, "B")
	c := f.create(t, 1, 0, -5, "C")
	d := f.create(t, 1, 0, 1, "D")

	assert.Equal(t, map[int64]int{c.ResourceKey: 0, d.ResourceKey: 1, a.ResourceKey: 2, b.ResourceKey: 3}, f.priorities(t, 1, 0))

	_, err := f.svc.MoveArticle(ctx, c.ResourceKey, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{d.ResourceKey: 0, a.ResourceKey: 1, b.ResourceKey: 2, c.ResourceKey: 3}, f.priorities(t, 1, 0))

	moved, err := f.svc.MoveArticle(ctx, a.ResourceKey, b.ResourceKey, 7)
	require.NoError(t, err)
	assert.Equal(t, b.ResourceKey, moved.ParentResourceKey)
	assert.Equal(t, 0, moved.Priority, "clamped to the end of an empty bucket")
	assert.Equal(t, map[int64]int{d.ResourceKey: 0, b.ResourceKey: 1, c.ResourceKey: 2}, f.priorities(t, 1, 0))

	_, err = f.svc.UpdateArticle(ctx, d.ResourceKey, service.UpdateArticleInput{
		ParentResourceKey: &b.ResourceKey,
		Priority:          intPtr(0),
		Title:             "D",
		Content:           "moved by edit",
	}, domain.NotifyContext{})
	require.NoError(t, err)

	assert.Equal(t, map[int64]int{d.ResourceKey: 0, a.ResourceKey: 1}, f.priorities(t, 1, b.ResourceKey))
	assertDense(t, f, 1, 0)
	assertDense(t, f, 1, b.ResourceKey)
}

func TestArticleService_RejectsCycles(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyMetadata)
	f.allowWrites()

	p := f.create(t, 1, 0, 0, "P")
	c := f.create(t, 1, p.ResourceKey, 0, "C")
	g := f.create(t, 1, c.ResourceKey, 0, "G")

	_, err := f.svc.MoveArticle(ctx, p.ResourceKey, g.ResourceKey, 0)
	assert.True(t, errors.Is(err, domain.ErrCycle))

	_, err = f.svc.MoveArticle(ctx, p.ResourceKey, p.ResourceKey, 0)
	assert.True(t, errors.Is(err, domain.ErrCycle))

	_, err = f.svc.UpdateArticle(ctx, c.ResourceKey, service.UpdateArticleInput{
		ParentResourceKey: &g.ResourceKey,
		Title:             "C",
		Content:           "C",
	}, domain.NotifyContext{})
	assert.True(t, errors.Is(err, domain.ErrCycle))

	latest, err := f.svc.GetLatest(ctx, p.ResourceKey)
	require.NoError(t, err)
	assert.Equal(t, int64(0), latest.ParentResourceKey)
	count, err := f.svc.CountVersions(ctx, c.ResourceKey)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "rejected update writes nothing")
}

func TestArticleService_ParentChecks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyMetadata)
	f.allowWrites()
	other := f.create(t, 2, 0, 0, "Other group")

	_, err := f.svc.CreateArticle(ctx, service.CreateArticleInput{
		GroupID: 1, ParentResourceKey: other.ResourceKey, Title: "T", Content: "C",
	}, domain.NotifyContext{})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "parent_resource_key", verr.Field)

	_, err = f.svc.CreateArticle(ctx, service.CreateArticleInput{
		GroupID: 1, ParentResourceKey: 424242, Title: "T", Content: "C",
	}, domain.NotifyContext{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	count, err := f.svc.CountChildren(ctx, domain.Scope{GroupID: 1})
	require.NoError(t, err)
	assert.Zero(t, count, "failed creates leave no resource behind")
}

func TestArticleService_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyMetadata)

	tests := []struct {
		name string
		in   service.CreateArticleInput
		kind domain.ValidationKind
	}{
		{name: "empty title", in: service.CreateArticleInput{GroupID: 1, Content: "C"}, kind: domain.EmptyTitle},
		{name: "empty content", in: service.CreateArticleInput{GroupID: 1, Title: "T"}, kind: domain.EmptyContent},
		{name: "missing group", in: service.CreateArticleInput{Title: "T", Content: "C"}, kind: domain.InvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateArticle(ctx, tt.in, domain.NotifyContext{})
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.kind, verr.Kind)
		})
	}

	f.allowWrites()
	a := f.create(t, 1, 0, 0, "A")

	_, err := f.svc.UpdateArticle(ctx, a.ResourceKey, service.UpdateArticleInput{Title: "T"}, domain.NotifyContext{})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = f.svc.UpdateArticle(ctx, 999, service.UpdateArticleInput{Title: "T", Content: "C"}, domain.NotifyContext{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	// The resource is looked up before its fields are checked
	_, err = f.svc.UpdateArticle(ctx, 999, service.UpdateArticleInput{}, domain.NotifyContext{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.False(t, errors.Is(err, domain.ErrValidation))

	latest, err := f.svc.GetLatest(ctx, a.ResourceKey)
	require.NoError(t, err)
	assert.Equal(t, 1, latest.Version, "rejected update writes nothing")

	_, err = f.svc.ListChildren(ctx, domain.Scope{GroupID: 1}, "version", domain.Page{})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestArticleService_VersionPolicy(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyVersion)
	f.allowWrites()

	a := f.create(t, 1, 0, 0, "A")
	b := f.create(t, 1, 0, 0, "B")

	history, err := f.svc.ListVersions(ctx, a.ResourceKey)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 0, history[0].Priority)
	assert.Equal(t, 1, history[1].Priority)
	assert.Equal(t, "A", history[1].Title, "content carried into the reorder version")

	_, err = f.svc.MoveArticle(ctx, b.ResourceKey, 0, 1)
	require.NoError(t, err)

	latestA, err := f.svc.GetLatest(ctx, a.ResourceKey)
	require.NoError(t, err)
	assert.Equal(t, 3, latestA.Version)
	assert.Equal(t, 0, latestA.Priority)

	latestB, err := f.svc.GetLatest(ctx, b.ResourceKey)
	require.NoError(t, err)
	assert.Equal(t, 2, latestB.Version, "the moved resource is versioned too")
	assert.Equal(t, 1, latestB.Priority)
}

func TestArticleService_ExplicitKeyConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyMetadata)
	f.allowWrites()
	in := service.CreateArticleInput{ResourceKey: 5000, GroupID: 1, Title: "T", Content: "C"}

	created, err := f.svc.CreateArticle(ctx, in, domain.NotifyContext{})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), created.ResourceKey)

	_, err = f.svc.CreateArticle(ctx, in, domain.NotifyContext{})
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestArticleService_AuthorResolution(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyMetadata)
	f.allowWrites()

	known := f.create(t, 1, 0, 0, "Known")
	assert.Equal(t, "Ada Lovelace", known.AuthorName)

	unknown, err := f.svc.CreateArticle(ctx, service.CreateArticleInput{
		GroupID: 1, Title: "T", Content: "C", AuthorID: "ghost",
	}, domain.NotifyContext{})
	require.NoError(t, err)
	assert.Equal(t, "ghost", unknown.AuthorID)
	assert.Equal(t, "ghost", unknown.AuthorName)
}

func TestArticleService_SideEffects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyMetadata)
	nc := domain.NotifyContext{LayoutURL: "https://kb.example.com", GroupName: "Docs"}

	f.indexer.EXPECT().Upsert(mock.Anything, mock.AnythingOfType("domain.ArticleVersion")).Return(errors.New("redis down")).Once()
	f.attachments.EXPECT().Copy(mock.Anything, "00000000000000000001", int64(1000)).Return(errors.New("disk full")).Once()
	f.notifier.EXPECT().NotifyCreated(mock.Anything, mock.Anything, nc).
		Run(func(_ context.Context, article domain.ArticleVersion, _ domain.NotifyContext) {
			assert.Equal(t, int64(1000), article.ResourceKey)
		}).
		Return().Once()

	created, err := f.svc.CreateArticle(ctx, service.CreateArticleInput{
		GroupID: 1, Title: "T", Content: "C", AttachmentsDir: "00000000000000000001",
	}, nc)
	require.NoError(t, err, "collaborator failures never fail the write")
	assert.Equal(t, int64(1000), created.ResourceKey)

	f.indexer.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Once()
	f.notifier.EXPECT().NotifyUpdated(mock.Anything, mock.Anything, nc).Return().Once()
	_, err = f.svc.UpdateArticle(ctx, created.ResourceKey, service.UpdateArticleInput{Title: "T", Content: "C2"}, nc)
	require.NoError(t, err, "no attachment calls without an upload dir")
}

func TestArticleService_DeleteGroup(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyMetadata)
	f.allowWrites()

	p := f.create(t, 1, 0, 0, "P")
	f.create(t, 1, p.ResourceKey, 0, "C")
	f.create(t, 1, 0, 1, "Q")
	kept := f.create(t, 2, 0, 0, "Elsewhere")

	f.indexer.EXPECT().Remove(mock.Anything, mock.Anything).Return(nil).Times(3)
	f.attachments.EXPECT().Remove(mock.Anything, mock.Anything).Return(nil).Times(3)

	count, err := f.svc.DeleteGroup(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	group, err := f.svc.ListGroup(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, group)
	_, err = f.svc.GetLatest(ctx, kept.ResourceKey)
	assert.NoError(t, err)
}

func TestArticleService_ReindexGroup(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyMetadata)
	f.allowWrites()
	f.create(t, 1, 0, 0, "A")
	f.create(t, 1, 0, 1, "B")

	reindex := mocks.NewMockIndexer(t)
	svc := service.NewArticleService(f.store, f.store, f.store, reindex, f.notifier, f.attachments,
		repository.NewIdentityResolver(f.store), validator.NewValidator(), "")
	reindex.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Times(2)

	count, err := svc.ReindexGroup(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestArticleService_Subscriptions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyMetadata)
	f.allowWrites()
	a := f.create(t, 1, 0, 0, "A")
	require.NoError(t, f.store.UpsertIdentity(ctx, domain.Identity{ID: "bob", FullName: "Bob", Email: "bob@example.com"}))

	require.NoError(t, f.svc.Subscribe(ctx, &domain.Subscription{GroupID: 1, UserID: "bob", ResourceKey: a.ResourceKey}))

	err := f.svc.Subscribe(ctx, &domain.Subscription{GroupID: 2, UserID: "bob", ResourceKey: a.ResourceKey})
	assert.True(t, errors.Is(err, domain.ErrValidation), "article belongs to another group")

	err = f.svc.Subscribe(ctx, &domain.Subscription{GroupID: 1, UserID: "bob", ResourceKey: 999})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	recipients, err := f.store.FindRecipients(ctx, 1, a.ResourceKey)
	require.NoError(t, err)
	require.Len(t, recipients, 1)
	assert.Equal(t, "bob", recipients[0].ID)

	require.NoError(t, f.svc.Unsubscribe(ctx, domain.Subscription{GroupID: 1, UserID: "bob", ResourceKey: a.ResourceKey}))
	recipients, err = f.store.FindRecipients(ctx, 1, a.ResourceKey)
	require.NoError(t, err)
	assert.Empty(t, recipients)
}

func TestArticleService_PrepareAttachments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyMetadata)
	f.allowWrites()
	a := f.create(t, 1, 0, 0, "A")

	f.attachments.EXPECT().PrepareTemp(mock.Anything, a.ResourceKey).Return("00000000000000000042", nil).Once()
	dir, err := f.svc.PrepareAttachments(ctx, a.ResourceKey)
	require.NoError(t, err)
	assert.Equal(t, "00000000000000000042", dir)

	_, err = f.svc.PrepareAttachments(ctx, 999)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func intPtr(v int) *int { return &v }
