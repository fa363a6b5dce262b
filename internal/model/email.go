package model

import "time"

// Email priority hints derived from the subject line.
const (
	EmailPriorityUrgent    = "Urgent"
	EmailPriorityImportant = "Important"
	EmailPriorityNormal    = "Normal"
)

// Email is a Gmail message summary.
type Email struct {
	GmailID   string    `json:"gmail_id"`
	Sender    string    `json:"sender"`
	Subject   string    `json:"subject"`
	Snippet   string    `json:"snippet"`
	Timestamp time.Time `json:"timestamp"`
	Priority  string    `json:"priority"`
	Read      bool      `json:"read"`
}
