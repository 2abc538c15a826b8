package domain

// TransferFormat is the file format of group exports and imports.
type TransferFormat string

const (
	FormatNDJSON TransferFormat = "ndjson"
	FormatCSV    TransferFormat = "csv"
)

// ValidFormats contains all valid transfer formats.
var ValidFormats = []TransferFormat{FormatNDJSON, FormatCSV}

// IsValidFormat checks if a format is valid.
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if string(f) == format {
			return true
		}
	}
	return false
}

// ArticleRecord is one article in a group export. Records are written parents
// first, so an import can recreate the tree in a single pass.
type ArticleRecord struct {
	ResourceKey       int64  `json:"resource_key"`
	ParentResourceKey int64  `json:"parent_resource_key"`
	Priority          int    `json:"priority"`
	Version           int    `json:"version"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Content           string `json:"content"`
	AuthorID          string `json:"author_id"`
	AuthorName        string `json:"author_name"`
	ModifiedAt        string `json:"modified_at"`
}

// RecordError represents a per-record error during import.
type RecordError struct {
	Row    int    `json:"row"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ImportResult represents the final result of an import.
// ResourceKeys maps exported resource keys to the keys created by the import.
type ImportResult struct {
	TotalRecords  int             `json:"total_records"`
	SuccessCount  int             `json:"success_count"`
	FailureCount  int             `json:"failure_count"`
	Errors        []RecordError   `json:"errors,omitempty"`
	ResourceKeys  map[int64]int64 `json:"resource_keys,omitempty"`
	ErrorsDropped int             `json:"errors_dropped,omitempty"`
}
