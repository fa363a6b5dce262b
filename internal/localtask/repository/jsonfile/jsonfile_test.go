package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"intelliassist/internal/model"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                   {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Info(ctx context.Context, arg ...any)                    {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                    {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Error(ctx context.Context, arg ...any)                   {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {
}
func (nopLogger) Panic(ctx context.Context, arg ...any)                   {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func newTestRepo(t *testing.T) (*Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	repo, err := New(nopLogger{}, path)
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	return repo, path
}

func TestInsertAndAll(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	task := model.LocalTask{
		ID:        "t1",
		Title:     "Review proposal",
		Priority:  model.PriorityMedium,
		CreatedAt: time.Now(),
	}
	if err := repo.Insert(ctx, task); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 1 || all[0].ID != "t1" {
		t.Errorf("unexpected tasks: %+v", all)
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	due := time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC)
	task := model.LocalTask{
		ID:        "t1",
		Title:     "Pay invoice",
		Priority:  model.PriorityHigh,
		DueDate:   &due,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Insert(ctx, task); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	reopened, err := New(nopLogger{}, path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}

	all, _ := reopened.All(ctx)
	if len(all) != 1 {
		t.Fatalf("expected 1 task after reopen, got %d", len(all))
	}
	if all[0].Title != "Pay invoice" || all[0].DueDate == nil || !all[0].DueDate.Equal(due) {
		t.Errorf("task fields lost on reload: %+v", all[0])
	}
}

func TestUpdate(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	task := model.LocalTask{ID: "t1", Title: "Draft report", Priority: model.PriorityLow}
	if err := repo.Insert(ctx, task); err != nil {
		t.Fatal(err)
	}

	task.Completed = true
	if err := repo.Update(ctx, task); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	all, _ := repo.All(ctx)
	if !all[0].Completed {
		t.Error("update not applied")
	}

	if err := repo.Update(ctx, model.LocalTask{ID: "missing"}); err == nil {
		t.Error("expected error updating missing task")
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Insert(ctx, model.LocalTask{ID: "t1", Title: "Book flights"}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind after save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("store file missing after save: %v", err)
	}
}

func TestInsertRollsBackOnSaveFailure(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	// A directory at the store path makes the rename step fail.
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}

	if err := repo.Insert(ctx, model.LocalTask{ID: "t1", Title: "Call the bank"}); err == nil {
		t.Fatal("expected Insert to fail when the store cannot be written")
	}

	all, _ := repo.All(ctx)
	if len(all) != 0 {
		t.Errorf("failed insert left task in memory: %+v", all)
	}
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	repo, err := New(nopLogger{}, path)
	if err != nil {
		t.Fatalf("expected corrupt file to be tolerated: %v", err)
	}

	all, _ := repo.All(context.Background())
	if len(all) != 0 {
		t.Errorf("expected empty store, got %+v", all)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	repo.Insert(ctx, model.LocalTask{ID: "t1", Title: "original"})

	all, _ := repo.All(ctx)
	all[0].Title = "mutated"

	again, _ := repo.All(ctx)
	if again[0].Title != "original" {
		t.Error("mutating returned slice changed the store")
	}
}
