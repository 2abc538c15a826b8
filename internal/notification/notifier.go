// Package notification turns article changes into subscriber mail and push events.
package notification

import (
	"context"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"strings"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/event"
	"knowledge-base/internal/idgen"
	"knowledge-base/internal/logger"
	"knowledge-base/internal/metrics"
	"knowledge-base/internal/parser"
)

const (
	EventArticleAdded   = "article_added"
	EventArticleUpdated = "article_updated"
)

// Config controls which changes send mail and how the sender is presented.
// FromName and FromAddress may reference MailContext fields as templates.
type Config struct {
	AddedEnabled   bool
	UpdatedEnabled bool
	FromName       string
	FromAddress    string
	MailDomain     string
}

// Publisher queues events for background delivery.
type Publisher interface {
	Publish(topic event.Topic, payload any)
}

// IdentityResolver looks up the author of a change.
type IdentityResolver interface {
	Resolve(ctx context.Context, userID string) (domain.Identity, error)
}

// Notifier renders change mail and publishes it for the dispatcher.
type Notifier struct {
	cfg        Config
	identities IdentityResolver
	publisher  Publisher
	ids        *idgen.Encoder
	added      mailTemplates
	updated    mailTemplates
}

// NewNotifier creates a Notifier with the embedded mail templates.
func NewNotifier(cfg Config, identities IdentityResolver, publisher Publisher, ids *idgen.Encoder) (*Notifier, error) {
	added, err := loadMailTemplates("added")
	if err != nil {
		return nil, fmt.Errorf("load added templates: %w", err)
	}
	updated, err := loadMailTemplates("updated")
	if err != nil {
		return nil, fmt.Errorf("load updated templates: %w", err)
	}
	return &Notifier{
		cfg:        cfg,
		identities: identities,
		publisher:  publisher,
		ids:        ids,
		added:      added,
		updated:    updated,
	}, nil
}

// NotifyCreated announces version 1 of an article.
func (n *Notifier) NotifyCreated(ctx context.Context, article domain.ArticleVersion, nc domain.NotifyContext) {
	if !n.cfg.AddedEnabled {
		return
	}
	n.notify(ctx, EventArticleAdded, n.added, article, nc)
}

// NotifyUpdated announces a new version of an article.
func (n *Notifier) NotifyUpdated(ctx context.Context, article domain.ArticleVersion, nc domain.NotifyContext) {
	if !n.cfg.UpdatedEnabled {
		return
	}
	n.notify(ctx, EventArticleUpdated, n.updated, article, nc)
}

func (n *Notifier) notify(ctx context.Context, eventName string, tpl mailTemplates, article domain.ArticleVersion, nc domain.NotifyContext) {
	if nc.LayoutURL == "" {
		return
	}

	msg, push, err := n.build(ctx, eventName, tpl, article, nc)
	if err != nil {
		logger.WarnContext(ctx, "Failed to build article notification",
			slog.Int64("resource_key", article.ResourceKey),
			slog.String("event", eventName),
			slog.String("error", err.Error()))
		metrics.RecordSideEffectFailure("notification")
		return
	}

	n.publisher.Publish(event.TopicArticleMail, msg)
	n.publisher.Publish(event.TopicPushNotification, push)
}

func (n *Notifier) build(ctx context.Context, eventName string, tpl mailTemplates, article domain.ArticleVersion, nc domain.NotifyContext) (domain.MailMessage, domain.PushPayload, error) {
	author := n.author(ctx, article)

	publicID, err := n.ids.EncodeArticle(article.ResourceKey)
	if err != nil {
		return domain.MailMessage{}, domain.PushPayload{}, err
	}
	articleURL := strings.TrimRight(nc.LayoutURL, "/") + "/articles/" + publicID

	content, err := parser.MarkdownToHTML(article.Content)
	if err != nil {
		return domain.MailMessage{}, domain.PushPayload{}, fmt.Errorf("render content: %w", err)
	}

	mc := MailContext{
		ArticleTitle:   article.Title,
		ArticleURL:     articleURL,
		ArticleVersion: article.Version,
		ArticleContent: htmltemplate.HTML(content),
		AuthorName:     author.FullName,
		AuthorAddress:  author.Email,
		PortalURL:      nc.PortalURL,
		GroupName:      nc.GroupName,
	}
	if mc.FromName, err = renderText("from_name", n.cfg.FromName, mc); err != nil {
		return domain.MailMessage{}, domain.PushPayload{}, fmt.Errorf("render from name: %w", err)
	}
	if mc.FromAddress, err = renderText("from_address", n.cfg.FromAddress, mc); err != nil {
		return domain.MailMessage{}, domain.PushPayload{}, fmt.Errorf("render from address: %w", err)
	}

	subject, body, err := tpl.render(mc)
	if err != nil {
		return domain.MailMessage{}, domain.PushPayload{}, fmt.Errorf("render mail: %w", err)
	}

	msg := domain.MailMessage{
		GroupID:     article.GroupID,
		ResourceKey: article.ResourceKey,
		AuthorID:    article.AuthorID,
		FromName:    mc.FromName,
		FromAddress: mc.FromAddress,
		ReplyTo:     mc.FromAddress,
		Subject:     subject,
		Body:        body,
		MailID:      MailID(article.ResourceKey, n.cfg.MailDomain),
		HTML:        true,
	}
	push := domain.PushPayload{
		Event:       eventName,
		GroupID:     article.GroupID,
		ResourceKey: article.ResourceKey,
		Title:       article.Title,
		AuthorID:    article.AuthorID,
		AuthorName:  author.FullName,
		URL:         articleURL,
	}
	return msg, push, nil
}

// author prefers the live identity and falls back to the name stored on the version.
func (n *Notifier) author(ctx context.Context, article domain.ArticleVersion) domain.Identity {
	fallback := domain.Identity{ID: article.AuthorID, FullName: article.AuthorName}
	if article.AuthorID == "" {
		return fallback
	}
	identity, err := n.identities.Resolve(ctx, article.AuthorID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.WarnContext(ctx, "Failed to resolve article author",
				slog.String("author_id", article.AuthorID),
				slog.String("error", err.Error()))
		}
		return fallback
	}
	return identity
}

// MailID threads every mail about one article together.
func MailID(resourceKey int64, mailDomain string) string {
	return fmt.Sprintf("<knowledge_base.article.%d@%s>", resourceKey, mailDomain)
}
