package usecase

import (
	"context"
	"errors"

	"intelliassist/internal/model"
	"intelliassist/pkg/llmprovider"
)

// mockLogger discards all log output.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// mockRepo is an in-memory repository.
type mockRepo struct {
	tasks []model.LocalTask
}

func (m *mockRepo) All(ctx context.Context) ([]model.LocalTask, error) {
	out := make([]model.LocalTask, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

func (m *mockRepo) Insert(ctx context.Context, task model.LocalTask) error {
	m.tasks = append(m.tasks, task)
	return nil
}

func (m *mockRepo) Update(ctx context.Context, task model.LocalTask) error {
	for i := range m.tasks {
		if m.tasks[i].ID == task.ID {
			m.tasks[i] = task
			return nil
		}
	}
	return errors.New("not found")
}

// stubGenerator returns a fixed text reply or an error.
type stubGenerator struct {
	reply string
	err   error
}

func (s *stubGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: s.reply}},
		},
		Usage: &llmprovider.Usage{},
	}, nil
}
