package gtasks

import "time"

// DefaultTaskList addresses the user's primary task list.
const DefaultTaskList = "@default"

// Task is a simplified representation of a Google Tasks task.
type Task struct {
	ID        string
	Title     string
	Notes     string
	Due       *time.Time
	Completed bool
	ListID    string
}

// TaskList is a simplified representation of a Google Tasks list.
type TaskList struct {
	ID    string
	Title string
}

// CreateTaskRequest is the input for creating a task.
type CreateTaskRequest struct {
	ListID string // defaults to DefaultTaskList
	Title  string
	Notes  string
	Due    *time.Time
}
