package validator

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"knowledge-base/internal/domain"
)

// MaxPageLimit caps listing page sizes.
const MaxPageLimit = 500

var validOrders = func() []interface{} {
	orders := make([]interface{}, 0, len(domain.ValidOrders)+1)
	orders = append(orders, domain.ArticleOrder(""))
	for _, o := range domain.ValidOrders {
		orders = append(orders, o)
	}
	return orders
}()

// Validator provides validation methods for article store input.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// notBlank rejects strings made only of whitespace.
var notBlank = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("blank", "cannot be blank")
	}
	return nil
})

// ValidateArticleFields checks the title and then the content of an article.
func (v *Validator) ValidateArticleFields(title, content string) error {
	if err := validation.Validate(title, validation.Required, notBlank); err != nil {
		return &domain.ValidationError{Kind: domain.EmptyTitle, Field: "title"}
	}
	if err := validation.Validate(content, validation.Required, notBlank); err != nil {
		return &domain.ValidationError{Kind: domain.EmptyContent, Field: "content"}
	}
	return nil
}

// ValidateListing checks a sibling listing request.
func (v *Validator) ValidateListing(order domain.ArticleOrder, page domain.Page) error {
	err := validation.Errors{
		"order":  validation.Validate(order, validation.In(validOrders...)),
		"offset": validation.Validate(page.Offset, validation.Min(0)),
		"limit":  validation.Validate(page.Limit, validation.Min(0), validation.Max(MaxPageLimit)),
	}.Filter()
	return ConvertValidationError(err)
}

// ValidateSubscription checks a subscription request.
func (v *Validator) ValidateSubscription(s *domain.Subscription) error {
	err := validation.ValidateStruct(s,
		validation.Field(&s.GroupID, validation.Required, validation.Min(int64(1))),
		validation.Field(&s.UserID, validation.Required, notBlank),
		validation.Field(&s.ResourceKey, validation.Min(int64(0))),
	)
	return ConvertValidationError(err)
}

// ValidateIdentity checks a user identity before it is stored.
func (v *Validator) ValidateIdentity(i *domain.Identity) error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.ID, validation.Required, notBlank),
		validation.Field(&i.Email, is.EmailFormat),
	)
	return ConvertValidationError(err)
}

// IsEmail reports whether addr is a deliverable-looking mail address.
func (v *Validator) IsEmail(addr string) bool {
	return addr != "" && validation.Validate(addr, is.EmailFormat) == nil
}

// ConvertValidationError maps ozzo errors onto a domain validation error
// naming the first failing field in alphabetical order. Struct fields are
// reported by their json tag.
func ConvertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &domain.ValidationError{Kind: domain.InvalidInput}
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return &domain.ValidationError{Kind: domain.InvalidInput, Field: fields[0]}
}
