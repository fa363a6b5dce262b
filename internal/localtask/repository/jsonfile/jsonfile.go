package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"intelliassist/internal/localtask/repository"
	"intelliassist/internal/model"
	pkgLog "intelliassist/pkg/log"
)

// DefaultPath is the default location of the task store.
const DefaultPath = "data/tasks.json"

// Repository stores tasks as a JSON array in a single file. All operations
// rewrite the whole file, guarded by a mutex.
type Repository struct {
	l     pkgLog.Logger
	path  string
	mu    sync.Mutex
	tasks []model.LocalTask
}

var _ repository.Repository = (*Repository)(nil)

// New creates a JSON-file repository, loading any existing tasks. A missing
// or unreadable file starts the store empty rather than failing.
func New(l pkgLog.Logger, path string) (*Repository, error) {
	if path == "" {
		path = DefaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create task store directory: %w", err)
	}

	r := &Repository{l: l, path: path}
	r.tasks = r.load()
	return r, nil
}

func (r *Repository) load() []model.LocalTask {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.l.Errorf(context.Background(), "jsonfile: failed to read %s: %v", r.path, err)
		}
		return nil
	}

	var tasks []model.LocalTask
	if err := json.Unmarshal(data, &tasks); err != nil {
		r.l.Errorf(context.Background(), "jsonfile: failed to parse %s: %v", r.path, err)
		return nil
	}
	return tasks
}

// save writes the whole store to a temp file and renames it into place, so
// a crash mid-write never leaves a truncated tasks file behind.
func (r *Repository) save() error {
	data, err := json.MarshalIndent(r.tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write task store: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace task store: %w", err)
	}
	return nil
}

// All returns a copy of every stored task.
func (r *Repository) All(ctx context.Context) ([]model.LocalTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.LocalTask, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

// Insert adds a task and persists the store.
func (r *Repository) Insert(ctx context.Context, task model.LocalTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = append(r.tasks, task)
	if err := r.save(); err != nil {
		r.tasks = r.tasks[:len(r.tasks)-1]
		return err
	}
	return nil
}

// Update replaces the stored task with the same ID and persists the store.
func (r *Repository) Update(ctx context.Context, task model.LocalTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID == task.ID {
			prev := r.tasks[i]
			r.tasks[i] = task
			if err := r.save(); err != nil {
				r.tasks[i] = prev
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("task %s not found in store", task.ID)
}
