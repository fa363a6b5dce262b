package usecase

import (
	"context"

	"intelliassist/internal/auth"
	"intelliassist/internal/localtask"
	"intelliassist/internal/model"
	"intelliassist/internal/router"
	"intelliassist/pkg/llmprovider"
)

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

// stubRouter always reports the same intent.
type stubRouter struct {
	intent router.Intent
}

func (s *stubRouter) Route(ctx context.Context, message string) router.Intent {
	return s.intent
}

// stubGenerator returns a fixed reply and remembers the last prompt.
type stubGenerator struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if len(req.Messages) > 0 && len(req.Messages[0].Parts) > 0 {
		s.lastPrompt = req.Messages[0].Parts[0].Text
	}
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: s.reply}}},
	}, nil
}

// stubProvider yields fixed Google services.
type stubProvider struct {
	services auth.Services
}

func (s *stubProvider) Services() auth.Services { return s.services }

// stubLocalTasks serves canned task data.
type stubLocalTasks struct {
	summary localtask.SummaryOutput
	pending []model.LocalTask
	overdue []model.LocalTask
	created localtask.CreateOutput
	err     error
}

func (s *stubLocalTasks) CreateFromMessage(ctx context.Context, sc model.Scope, input localtask.CreateInput) (localtask.CreateOutput, error) {
	return s.created, s.err
}
func (s *stubLocalTasks) List(ctx context.Context, includeCompleted bool) ([]model.LocalTask, error) {
	return s.pending, s.err
}
func (s *stubLocalTasks) Pending(ctx context.Context) ([]model.LocalTask, error) {
	return s.pending, s.err
}
func (s *stubLocalTasks) Overdue(ctx context.Context) ([]model.LocalTask, error) {
	return s.overdue, s.err
}
func (s *stubLocalTasks) Complete(ctx context.Context, sc model.Scope, title string) (model.LocalTask, error) {
	return model.LocalTask{}, s.err
}
func (s *stubLocalTasks) Summary(ctx context.Context) (localtask.SummaryOutput, error) {
	return s.summary, s.err
}
