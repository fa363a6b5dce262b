package localtask

import "intelliassist/internal/model"

// CreateInput is the input for creating a task from free text.
type CreateInput struct {
	Message string // natural language task description
}

// CreateOutput is the result of task creation.
type CreateOutput struct {
	Task    model.LocalTask `json:"task"`
	Message string          `json:"message"` // human-readable confirmation
}

// SummaryOutput holds task counts by state.
type SummaryOutput struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	Completed    int `json:"completed"`
	Overdue      int `json:"overdue"`
	HighPriority int `json:"high_priority"`
	DueToday     int `json:"due_today"`
}
