package notification

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/validator"
)

type fixedRecipients struct {
	identities []domain.Identity
	err        error
}

func (f fixedRecipients) FindRecipients(context.Context, int64, int64) ([]domain.Identity, error) {
	return f.identities, f.err
}

type recordingSender struct {
	mu   sync.Mutex
	to   []string
	fail map[string]bool
}

func (s *recordingSender) Send(_ context.Context, to string, _ domain.MailMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail[to] {
		return errors.New("relay refused")
	}
	s.to = append(s.to, to)
	return nil
}

func TestDispatch(t *testing.T) {
	recipients := fixedRecipients{identities: []domain.Identity{
		{ID: "author", Email: "author@example.com"},
		{ID: "u1", Email: "one@example.com"},
		{ID: "u2", Email: "not-an-address"},
		{ID: "u3", Email: "ONE@example.com"},
		{ID: "u4", Email: "four@example.com"},
		{ID: "u5", Email: "broken@example.com"},
	}}
	sender := &recordingSender{fail: map[string]bool{"broken@example.com": true}}
	d := NewMailDispatcher(recipients, sender, validator.NewValidator(), 0)

	sent, err := d.Dispatch(context.Background(), domain.MailMessage{AuthorID: "author", ResourceKey: 1})

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, []string{"one@example.com", "four@example.com"}, sender.to)
}

func TestDispatch_RecipientLookupFails(t *testing.T) {
	d := NewMailDispatcher(fixedRecipients{err: errors.New("db down")}, &recordingSender{}, validator.NewValidator(), 0)

	_, err := d.Dispatch(context.Background(), domain.MailMessage{})

	assert.Error(t, err)
}

func TestHandle_IgnoresForeignPayload(t *testing.T) {
	sender := &recordingSender{}
	d := NewMailDispatcher(fixedRecipients{identities: []domain.Identity{{ID: "u1", Email: "one@example.com"}}}, sender, validator.NewValidator(), 0)

	d.Handle("not a mail")
	assert.Empty(t, sender.to)

	d.Handle(domain.MailMessage{GroupID: 1})
	assert.Equal(t, []string{"one@example.com"}, sender.to)
}

func TestBuildMessage(t *testing.T) {
	raw := string(buildMessage("one@example.com", domain.MailMessage{
		FromName:    "KB",
		FromAddress: "kb@example.com",
		ReplyTo:     "kb@example.com",
		Subject:     "Hello",
		Body:        "<p>hi</p>",
		MailID:      "<knowledge_base.article.1@example.com>",
		HTML:        true,
	}))

	assert.True(t, strings.HasPrefix(raw, "From: KB <kb@example.com>\r\nTo: one@example.com\r\n"))
	assert.Contains(t, raw, "Message-ID: <knowledge_base.article.1@example.com>\r\n")
	assert.Contains(t, raw, "Content-Type: text/html; charset=UTF-8\r\n\r\n<p>hi</p>")
}

func TestLogSender(t *testing.T) {
	assert.NoError(t, LogSender{}.Send(context.Background(), "one@example.com", domain.MailMessage{}))
}

func TestPushListener_IgnoresForeignPayload(t *testing.T) {
	assert.NotPanics(t, func() {
		PushListener{}.Handle(42)
		PushListener{}.Handle(domain.PushPayload{Event: EventArticleAdded})
	})
}
