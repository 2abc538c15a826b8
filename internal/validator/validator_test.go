package validator

import (
	"errors"
	"testing"

	"knowledge-base/internal/domain"
)

func TestValidateArticleFields(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		title    string
		content  string
		wantKind domain.ValidationKind
	}{
		{name: "valid", title: "Intro", content: "Hello"},
		{name: "empty title", title: "", content: "Hello", wantKind: domain.EmptyTitle},
		{name: "blank title", title: "   ", content: "Hello", wantKind: domain.EmptyTitle},
		{name: "empty content", title: "Intro", content: "", wantKind: domain.EmptyContent},
		{name: "title checked before content", title: "", content: "", wantKind: domain.EmptyTitle},
		{name: "whitespace content", title: "Intro", content: "\n\t", wantKind: domain.EmptyContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateArticleFields(tt.title, tt.content)
			if tt.wantKind == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Kind != tt.wantKind {
				t.Errorf("expected kind %q, got %q", tt.wantKind, verr.Kind)
			}
		})
	}
}

func TestValidateListing(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		order     domain.ArticleOrder
		page      domain.Page
		wantField string
	}{
		{name: "defaults", order: "", page: domain.Page{}},
		{name: "title desc with page", order: domain.OrderTitleDesc, page: domain.Page{Offset: 10, Limit: 20}},
		{name: "unknown order", order: "version", wantField: "order"},
		{name: "negative offset", page: domain.Page{Offset: -1}, wantField: "offset"},
		{name: "limit too large", page: domain.Page{Limit: MaxPageLimit + 1}, wantField: "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateListing(tt.order, tt.page)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Kind != domain.InvalidInput || verr.Field != tt.wantField {
				t.Errorf("expected invalid %q, got %q/%q", tt.wantField, verr.Kind, verr.Field)
			}
		})
	}
}

func TestValidateSubscription(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		sub       *domain.Subscription
		wantField string
	}{
		{name: "group wide", sub: &domain.Subscription{GroupID: 1, UserID: "u1"}},
		{name: "single article", sub: &domain.Subscription{GroupID: 1, UserID: "u1", ResourceKey: 5}},
		{name: "missing group", sub: &domain.Subscription{UserID: "u1"}, wantField: "group_id"},
		{name: "blank user", sub: &domain.Subscription{GroupID: 1, UserID: " "}, wantField: "user_id"},
		{name: "negative resource", sub: &domain.Subscription{GroupID: 1, UserID: "u1", ResourceKey: -2}, wantField: "resource_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSubscription(tt.sub)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, verr.Field)
			}
		})
	}
}

func TestValidateIdentity(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateIdentity(&domain.Identity{ID: "u1", Email: "one@example.com"}); err != nil {
		t.Errorf("expected valid identity, got %v", err)
	}
	if err := v.ValidateIdentity(&domain.Identity{ID: "u1"}); err != nil {
		t.Errorf("email is optional, got %v", err)
	}
	if err := v.ValidateIdentity(&domain.Identity{ID: "u1", Email: "not-an-email"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error for bad email, got %v", err)
	}
	if err := v.ValidateIdentity(&domain.Identity{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error for missing id, got %v", err)
	}
}

func TestIsEmail(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		addr string
		want bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"", false},
		{"missing-at.example.com", false},
		{"user@", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			if got := v.IsEmail(tt.addr); got != tt.want {
				t.Errorf("IsEmail(%q) = %v, want %v", tt.addr, got, tt.want)
			}
		})
	}
}

func TestConvertValidationError(t *testing.T) {
	if ConvertValidationError(nil) != nil {
		t.Error("nil should stay nil")
	}

	err := ConvertValidationError(errors.New("opaque"))
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Kind != domain.InvalidInput || verr.Field != "" {
		t.Errorf("unexpected conversion %v", err)
	}
}
