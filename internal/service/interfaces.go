package service

import (
	"context"
	"io"

	"knowledge-base/internal/domain"
)

// Indexer keeps the search index in step with the latest article versions.
type Indexer interface {
	Upsert(ctx context.Context, article domain.ArticleVersion) error
	Remove(ctx context.Context, resourceKey int64) error
}

// Searcher answers full-text queries over indexed articles. Pages start at 1.
type Searcher interface {
	Search(ctx context.Context, query string, page, size int) (*domain.SearchResult, error)
}

// Notifier tells subscribers about new and edited articles. Delivery failures
// are handled by the implementation and never reach the caller.
type Notifier interface {
	NotifyCreated(ctx context.Context, article domain.ArticleVersion, nc domain.NotifyContext)
	NotifyUpdated(ctx context.Context, article domain.ArticleVersion, nc domain.NotifyContext)
}

// AttachmentStore manages the attachment directory of each article.
type AttachmentStore interface {
	// Copy creates the article directory and copies the files of an upload dir into it.
	// An empty fromDir only creates the directory.
	Copy(ctx context.Context, fromDir string, resourceKey int64) error
	Remove(ctx context.Context, resourceKey int64) error
	// PrepareTemp creates an upload dir seeded with the article's current files.
	PrepareTemp(ctx context.Context, resourceKey int64) (string, error)
}

// AttachmentUploader receives files into an upload dir created by PrepareTemp.
type AttachmentUploader interface {
	SaveTemp(ctx context.Context, dirName, fileName string, r io.Reader) error
}

// IdentityResolver looks up author display data. Unknown users yield an
// error matching domain.ErrNotFound.
type IdentityResolver interface {
	Resolve(ctx context.Context, userID string) (domain.Identity, error)
}

// ArticleServiceInterface defines the article store operations.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	CreateArticle(ctx context.Context, in CreateArticleInput, nc domain.NotifyContext) (*domain.ArticleVersion, error)
	UpdateArticle(ctx context.Context, resourceKey int64, in UpdateArticleInput, nc domain.NotifyContext) (*domain.ArticleVersion, error)
	MoveArticle(ctx context.Context, resourceKey, newParentResourceKey int64, newPriority int) (*domain.ArticleVersion, error)
	DeleteArticle(ctx context.Context, resourceKey int64) (int, error)
	DeleteGroup(ctx context.Context, groupID int64) (int, error)

	GetLatest(ctx context.Context, resourceKey int64) (*domain.ArticleVersion, error)
	GetVersion(ctx context.Context, resourceKey int64, version int) (*domain.ArticleVersion, error)
	ListVersions(ctx context.Context, resourceKey int64) ([]domain.ArticleVersion, error)
	CountVersions(ctx context.Context, resourceKey int64) (int, error)
	ListChildren(ctx context.Context, scope domain.Scope, order domain.ArticleOrder, page domain.Page) ([]domain.ArticleVersion, error)
	CountChildren(ctx context.Context, scope domain.Scope) (int, error)
	ListGroup(ctx context.Context, groupID int64) ([]domain.ArticleVersion, error)

	Subscribe(ctx context.Context, sub *domain.Subscription) error
	Unsubscribe(ctx context.Context, sub domain.Subscription) error
	PrepareAttachments(ctx context.Context, resourceKey int64) (string, error)
	ReindexGroup(ctx context.Context, groupID int64) (int, error)
}

// ExportServiceInterface streams a group's article tree.
type ExportServiceInterface interface {
	StreamGroup(ctx context.Context, groupID int64, format domain.TransferFormat, w StreamWriter) (int, error)
}

// ImportServiceInterface recreates an exported article tree in a group.
type ImportServiceInterface interface {
	ImportGroup(ctx context.Context, groupID int64, format domain.TransferFormat, authorID string, r io.Reader) (*domain.ImportResult, error)
}
