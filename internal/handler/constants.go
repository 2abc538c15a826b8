package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

const (
	// DefaultSearchPageSize is used when a search omits size.
	DefaultSearchPageSize = 20
	// MaxSearchPageSize caps search page sizes.
	MaxSearchPageSize = 100
	// MaxUploadBytes caps a single attachment upload.
	MaxUploadBytes = 32 << 20
)
