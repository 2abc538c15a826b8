// Package idgen encodes resource keys as short public ids for article URLs.
package idgen

import (
	"errors"
	"fmt"
	mrand "math/rand"

	"github.com/sqids/sqids-go"
)

// DefaultAlphabet is shuffled by the salt to make ids deployment specific.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	// EntityArticle tags ids that refer to article resources.
	EntityArticle uint64 = 1

	minLength = 6
)

// ErrInvalidID is returned for ids that do not decode to an article key.
var ErrInvalidID = errors.New("invalid public id")

// Encoder converts resource keys to and from public ids.
type Encoder struct {
	sqids *sqids.Sqids
}

// NewEncoder creates an Encoder. An empty salt keeps the default alphabet.
func NewEncoder(salt string) (*Encoder, error) {
	alphabet := DefaultAlphabet
	if salt != "" {
		alphabet = shuffleAlphabet(salt)
	}

	s, err := sqids.New(sqids.Options{
		MinLength: minLength,
		Alphabet:  alphabet,
	})
	if err != nil {
		return nil, fmt.Errorf("create sqids encoder: %w", err)
	}
	return &Encoder{sqids: s}, nil
}

// shuffleAlphabet derives a deterministic alphabet permutation from salt.
func shuffleAlphabet(salt string) string {
	var seed int64
	for i, c := range salt {
		seed += int64(c) * int64(i+1)
	}

	r := mrand.New(mrand.NewSource(seed))
	alphabet := []rune(DefaultAlphabet)
	r.Shuffle(len(alphabet), func(i, j int) {
		alphabet[i], alphabet[j] = alphabet[j], alphabet[i]
	})
	return string(alphabet)
}

// EncodeArticle returns the public id of a resource key.
func (e *Encoder) EncodeArticle(resourceKey int64) (string, error) {
	if resourceKey < 0 {
		return "", fmt.Errorf("encode resource key %d: %w", resourceKey, ErrInvalidID)
	}
	id, err := e.sqids.Encode([]uint64{uint64(resourceKey), EntityArticle})
	if err != nil {
		return "", fmt.Errorf("encode resource key %d: %w", resourceKey, err)
	}
	return id, nil
}

// DecodeArticle returns the resource key of a public id.
func (e *Encoder) DecodeArticle(id string) (int64, error) {
	numbers := e.sqids.Decode(id)
	if len(numbers) != 2 || numbers[1] != EntityArticle {
		return 0, ErrInvalidID
	}
	// sqids decodes some foreign strings; only canonical encodings are accepted
	canonical, err := e.sqids.Encode(numbers)
	if err != nil || canonical != id {
		return 0, ErrInvalidID
	}
	return int64(numbers[0]), nil
}
