package domain

import "time"

const (
	// DefaultVersion is the version number written by the first revision of a resource.
	DefaultVersion = 1

	// RootResourceKey is the parent key of resources placed at the top of a group.
	RootResourceKey int64 = 0
)

// ArticleVersion is an immutable snapshot of one revision of an article.
// ParentResourceKey and Priority are authoritative only on the latest version of a resource.
type ArticleVersion struct {
	ID                int64     `json:"id"`
	ResourceKey       int64     `json:"resource_key"`
	UUID              string    `json:"uuid"`
	GroupID           int64     `json:"group_id"`
	Version           int       `json:"version"`
	ParentResourceKey int64     `json:"parent_resource_key"`
	Priority          int       `json:"priority"`
	Title             string    `json:"title"`
	Content           string    `json:"content"`
	Description       string    `json:"description"`
	AuthorID          string    `json:"author_id"`
	AuthorName        string    `json:"author_name"`
	CreatedAt         time.Time `json:"created_at"`
	ModifiedAt        time.Time `json:"modified_at"`
}

// IsRoot reports whether the article sits at the top of its group.
func (a ArticleVersion) IsRoot() bool {
	return a.ParentResourceKey == RootResourceKey
}

// Position is the current place of a resource in its group tree.
type Position struct {
	ResourceKey       int64
	GroupID           int64
	ParentResourceKey int64
	Priority          int
}

// Scope identifies one sibling bucket.
type Scope struct {
	GroupID           int64
	ParentResourceKey int64
}

// PositionPolicy controls how sibling moves are recorded.
type PositionPolicy string

const (
	// PositionPolicyMetadata updates only the resource position row.
	PositionPolicyMetadata PositionPolicy = "metadata"
	// PositionPolicyVersion also appends a version row for every sibling whose position changed.
	PositionPolicyVersion PositionPolicy = "version"
)

// ValidPositionPolicies contains all supported position policies.
var ValidPositionPolicies = []PositionPolicy{PositionPolicyMetadata, PositionPolicyVersion}

// IsValidPositionPolicy checks if a position policy is supported.
func IsValidPositionPolicy(policy string) bool {
	for _, p := range ValidPositionPolicies {
		if string(p) == policy {
			return true
		}
	}
	return false
}

// ArticleOrder names a sort order for sibling listings.
type ArticleOrder string

const (
	OrderPriorityAsc  ArticleOrder = "priority"
	OrderPriorityDesc ArticleOrder = "-priority"
	OrderTitleAsc     ArticleOrder = "title"
	OrderTitleDesc    ArticleOrder = "-title"
	OrderModifiedAsc  ArticleOrder = "modified"
	OrderModifiedDesc ArticleOrder = "-modified"
)

// ValidOrders contains all valid listing orders.
var ValidOrders = []ArticleOrder{
	OrderPriorityAsc, OrderPriorityDesc,
	OrderTitleAsc, OrderTitleDesc,
	OrderModifiedAsc, OrderModifiedDesc,
}

// IsValidOrder checks if an order is valid. The empty string means priority ascending.
func IsValidOrder(order string) bool {
	if order == "" {
		return true
	}
	for _, o := range ValidOrders {
		if string(o) == order {
			return true
		}
	}
	return false
}

// Page bounds a listing. A zero Limit means no limit.
type Page struct {
	Offset int
	Limit  int
}
