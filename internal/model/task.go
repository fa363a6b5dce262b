package model

import "time"

// Task priorities. Calendar-derived and local tasks share this scale.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Task sources shown on the dashboard.
const (
	TaskSourceCalendar    = "calendar"
	TaskSourceGoogleTasks = "google_tasks"
)

// LocalTask is a task persisted in the local JSON store.
type LocalTask struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
}

// GoogleTask is a task fetched from the Google Tasks API.
type GoogleTask struct {
	GoogleTaskID string
	Title        string
	Notes        string
	DueDate      *time.Time
	Priority     string
	Completed    bool
}

// DashboardTask is the unified task row the dashboard shows, regardless of
// whether the task came from the calendar, Google Tasks, or the local store.
type DashboardTask struct {
	Title     string `json:"title"`
	DueDate   string `json:"due_date"` // formatted, or "No due date"
	Priority  string `json:"priority"`
	Source    string `json:"source"`
	Completed bool   `json:"completed"`
	TaskID    string `json:"task_id,omitempty"` // Google Task ID when Source is google_tasks
}
