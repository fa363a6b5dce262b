package assistant

import "intelliassist/internal/model"

// ChatInput is the user's conversational message.
type ChatInput struct {
	Message string
}

// ChatOutput is the assistant's reply and the intent it was routed to.
type ChatOutput struct {
	Reply  string `json:"response"`
	Intent string `json:"intent"`
}

// SuggestionsOutput lists proposed next actions, most relevant first.
type SuggestionsOutput struct {
	Suggestions []string `json:"suggestions"`
}

// PriorityEmailsOutput is the prioritized unread email view. Insights is
// empty when no language model is configured.
type PriorityEmailsOutput struct {
	Emails   []model.Email `json:"emails"`
	Insights string        `json:"insights,omitempty"`
	Analyzed int           `json:"emails_analyzed"`
}
