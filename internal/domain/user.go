package domain

import "time"

// Identity is the display information of an article author.
type Identity struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// Subscription registers a user for change mail on a whole group
// (ResourceKey == 0) or on a single article.
type Subscription struct {
	ID          string    `json:"id"`
	GroupID     int64     `json:"group_id"`
	UserID      string    `json:"user_id"`
	ResourceKey int64     `json:"resource_key"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsGroupWide reports whether the subscription covers every article of the group.
func (s Subscription) IsGroupWide() bool {
	return s.ResourceKey <= 0
}
