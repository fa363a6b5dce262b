package gmail

import "time"

// Priority levels assigned to messages from subject keywords.
const (
	PriorityUrgent    = "Urgent"
	PriorityImportant = "Important"
	PriorityNormal    = "Normal"
)

// Message is a simplified representation of a Gmail message.
type Message struct {
	ID        string
	ThreadID  string
	Sender    string
	Subject   string
	Snippet   string
	Timestamp time.Time
	Priority  string
	Unread    bool
}

// ListMessagesRequest is the input for listing Gmail messages.
type ListMessagesRequest struct {
	Query      string // Gmail search syntax, e.g. "is:unread"
	MaxResults int64
}
