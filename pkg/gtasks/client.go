package gtasks

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

// Client wraps the Google Tasks API service.
type Client struct {
	service *tasks.Service
}

// NewClientFromHTTP creates a Tasks client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{service: svc}, nil
}

// TaskLists returns the user's task lists.
func (c *Client) TaskLists(ctx context.Context) ([]TaskList, error) {
	result, err := c.service.Tasklists.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list task lists: %w", err)
	}

	lists := make([]TaskList, 0, len(result.Items))
	for _, item := range result.Items {
		lists = append(lists, TaskList{ID: item.Id, Title: item.Title})
	}
	return lists, nil
}

// ListTasks returns incomplete tasks from the given list.
func (c *Client) ListTasks(ctx context.Context, listID string) ([]Task, error) {
	if listID == "" {
		listID = DefaultTaskList
	}

	result, err := c.service.Tasks.List(listID).
		ShowCompleted(false).
		ShowDeleted(false).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	out := make([]Task, 0, len(result.Items))
	for _, item := range result.Items {
		out = append(out, toTask(item, listID))
	}
	return out, nil
}

// TodaysTasks returns incomplete tasks from the given list that are due
// today or earlier in the given location, plus tasks with no due date.
func (c *Client) TodaysTasks(ctx context.Context, listID string, now time.Time, loc *time.Location) ([]Task, error) {
	all, err := c.ListTasks(ctx, listID)
	if err != nil {
		return nil, err
	}

	year, month, day := now.In(loc).Date()
	endOfToday := time.Date(year, month, day, 23, 59, 59, 0, loc)

	out := make([]Task, 0, len(all))
	for _, t := range all {
		if t.Due == nil || !t.Due.After(endOfToday) {
			out = append(out, t)
		}
	}
	return out, nil
}

// CreateTask adds a task to the given list.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	listID := req.ListID
	if listID == "" {
		listID = DefaultTaskList
	}

	task := &tasks.Task{
		Title: req.Title,
		Notes: req.Notes,
	}
	if req.Due != nil {
		task.Due = req.Due.Format(time.RFC3339)
	}

	created, err := c.service.Tasks.Insert(listID, task).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	out := toTask(created, listID)
	return &out, nil
}

// DeleteTask removes a task from the given list.
func (c *Client) DeleteTask(ctx context.Context, listID, taskID string) error {
	if listID == "" {
		listID = DefaultTaskList
	}

	if err := c.service.Tasks.Delete(listID, taskID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	return nil
}

func toTask(item *tasks.Task, listID string) Task {
	out := Task{
		ID:        item.Id,
		Title:     item.Title,
		Notes:     item.Notes,
		Completed: item.Status == "completed",
		ListID:    listID,
	}
	if item.Due != "" {
		if due, err := time.Parse(time.RFC3339, item.Due); err == nil {
			out.Due = &due
		}
	}
	return out
}
