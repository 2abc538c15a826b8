package domain

// NotifyContext carries the caller's portal information used to build change mail.
// Notification is skipped when LayoutURL is empty.
type NotifyContext struct {
	PortalURL string `json:"portal_url"`
	LayoutURL string `json:"layout_url"`
	GroupName string `json:"group_name"`
}

// MailMessage is a rendered change mail queued for delivery to subscribers.
type MailMessage struct {
	GroupID     int64  `json:"group_id"`
	ResourceKey int64  `json:"resource_key"`
	AuthorID    string `json:"author_id"`
	FromName    string `json:"from_name"`
	FromAddress string `json:"from_address"`
	ReplyTo     string `json:"reply_to"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	MailID      string `json:"mail_id"`
	HTML        bool   `json:"html"`
}

// PushPayload is the push notification emitted for every article change mail.
type PushPayload struct {
	Event       string `json:"event"`
	GroupID     int64  `json:"group_id"`
	ResourceKey int64  `json:"resource_key"`
	Title       string `json:"title"`
	AuthorID    string `json:"author_id"`
	AuthorName  string `json:"author_name"`
	URL         string `json:"url"`
}
