package repository

import (
	"context"

	"intelliassist/internal/model"
)

// Repository persists local tasks.
type Repository interface {
	// All returns every stored task.
	All(ctx context.Context) ([]model.LocalTask, error)

	// Insert adds a task to the store.
	Insert(ctx context.Context, task model.LocalTask) error

	// Update replaces the stored task with the same ID.
	Update(ctx context.Context, task model.LocalTask) error
}
