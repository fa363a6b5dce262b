package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"intelliassist/internal/localtask"
	"intelliassist/internal/model"
	"intelliassist/pkg/datemath"
)

func newTestUseCase(gen Generator, repo *mockRepo) *implUseCase {
	dm, _ := datemath.NewParser("UTC")
	return New(mockLogger{}, gen, repo, dm, "UTC")
}

func TestCreateFromMessage(t *testing.T) {
	repo := &mockRepo{}
	gen := &stubGenerator{reply: `{"title": "Review proposal", "description": "Review the Q4 budget proposal", "priority": "high", "due_date": "2026-09-01T17:00:00Z"}`}
	uc := newTestUseCase(gen, repo)

	out, err := uc.CreateFromMessage(context.Background(), model.Scope{UserID: "u1"}, localtask.CreateInput{
		Message: "remind me to review the Q4 budget proposal by next Tuesday, it's important",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Task.Title != "Review proposal" {
		t.Errorf("unexpected title: %s", out.Task.Title)
	}
	if out.Task.Priority != model.PriorityHigh {
		t.Errorf("expected High priority, got %s", out.Task.Priority)
	}
	if out.Task.DueDate == nil || out.Task.DueDate.Format("2006-01-02") != "2026-09-01" {
		t.Errorf("unexpected due date: %v", out.Task.DueDate)
	}
	if out.Task.ID == "" {
		t.Error("expected generated task ID")
	}
	if len(repo.tasks) != 1 {
		t.Errorf("expected task persisted, store has %d", len(repo.tasks))
	}
}

func TestCreateFromMessage_MarkdownFences(t *testing.T) {
	repo := &mockRepo{}
	gen := &stubGenerator{reply: "```json\n{\"title\": \"Call dentist\", \"priority\": \"low\", \"due_date\": null}\n```"}
	uc := newTestUseCase(gen, repo)

	out, err := uc.CreateFromMessage(context.Background(), model.Scope{}, localtask.CreateInput{Message: "call the dentist sometime"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.Title != "Call dentist" {
		t.Errorf("unexpected title: %s", out.Task.Title)
	}
	if out.Task.DueDate != nil {
		t.Errorf("expected undated task, got %v", out.Task.DueDate)
	}
	// Description falls back to the title
	if out.Task.Description != "Call dentist" {
		t.Errorf("unexpected description: %s", out.Task.Description)
	}
}

func TestCreateFromMessage_RelativeDueDateFallback(t *testing.T) {
	repo := &mockRepo{}
	gen := &stubGenerator{reply: `{"title": "Submit report", "priority": "medium", "due_date": "tomorrow"}`}
	uc := newTestUseCase(gen, repo)

	out, err := uc.CreateFromMessage(context.Background(), model.Scope{}, localtask.CreateInput{Message: "submit the report tomorrow"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.DueDate == nil {
		t.Fatal("expected relative due date to resolve")
	}
	wantDay := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	if got := out.Task.DueDate.Format("2006-01-02"); got != wantDay {
		t.Errorf("expected due %s, got %s", wantDay, got)
	}
}

func TestCreateFromMessage_Errors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		uc := newTestUseCase(&stubGenerator{}, &mockRepo{})
		_, err := uc.CreateFromMessage(context.Background(), model.Scope{}, localtask.CreateInput{Message: "   "})
		if !errors.Is(err, localtask.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("nil llm", func(t *testing.T) {
		uc := newTestUseCase(nil, &mockRepo{})
		_, err := uc.CreateFromMessage(context.Background(), model.Scope{}, localtask.CreateInput{Message: "do something"})
		if !errors.Is(err, localtask.ErrLLMUnavailable) {
			t.Errorf("expected ErrLLMUnavailable, got %v", err)
		}
	})

	t.Run("llm failure", func(t *testing.T) {
		uc := newTestUseCase(&stubGenerator{err: errors.New("boom")}, &mockRepo{})
		_, err := uc.CreateFromMessage(context.Background(), model.Scope{}, localtask.CreateInput{Message: "do something"})
		if err == nil {
			t.Error("expected error from LLM failure")
		}
	})

	t.Run("unparseable reply", func(t *testing.T) {
		uc := newTestUseCase(&stubGenerator{reply: "sorry, I cannot help with that"}, &mockRepo{})
		_, err := uc.CreateFromMessage(context.Background(), model.Scope{}, localtask.CreateInput{Message: "do something"})
		if err == nil {
			t.Error("expected error from unparseable reply")
		}
	})
}
