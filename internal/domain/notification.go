package domain

// NotificationContentLimit bounds notification content derived from free-form
// text. Templated fan-out content is short by construction and not truncated.
const NotificationContentLimit = 200

// Notification tells one agent that something needs their attention. It is
// mutated only to flip Delivered and never physically deleted.
type Notification struct {
	ID          string
	RecipientID string
	SenderID    string
	TaskID      *string
	MessageID   *string
	Content     string
	Delivered   bool
	CreatedAt   int64
}

// TruncateContent caps free-form content at NotificationContentLimit runes.
func TruncateContent(content string) string {
	runes := []rune(content)
	if len(runes) <= NotificationContentLimit {
		return content
	}
	return string(runes[:NotificationContentLimit])
}
