package router_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"intelliassist/internal/router"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubClassifier struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *stubClassifier) ClassifyIntent(ctx context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.reply, s.err
}

func TestRoute(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		reply string
		err   error
		want  router.Intent
	}{
		{"exact match", "calendar", nil, router.IntentCalendar},
		{"email", "email", nil, router.IntentEmail},
		{"task", "task", nil, router.IntentTask},
		{"general", "general", nil, router.IntentGeneral},
		{"mixed case with trailing space", "CALENDAR ", nil, router.IntentCalendar},
		{"surrounding whitespace", "\n  task\t", nil, router.IntentTask},
		{"outside closed set", "unknown_category", nil, router.IntentGeneral},
		{"empty reply", "", nil, router.IntentGeneral},
		{"classifier error", "", errors.New("api unavailable"), router.IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := router.New(&stubClassifier{reply: tt.reply, err: tt.err}, &mockLogger{})
			got := r.Route(ctx, "what's on my schedule?")
			if got != tt.want {
				t.Errorf("Route() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRouteNilClassifier(t *testing.T) {
	r := router.New(nil, &mockLogger{})
	if got := r.Route(context.Background(), "hello"); got != router.IntentGeneral {
		t.Errorf("expected General with nil classifier, got %s", got)
	}
}

func TestRoutePromptContainsMessageAndClosedSet(t *testing.T) {
	stub := &stubClassifier{reply: "general"}
	r := router.New(stub, &mockLogger{})

	r.Route(context.Background(), "schedule a dentist visit")

	if !strings.Contains(stub.lastPrompt, "schedule a dentist visit") {
		t.Error("prompt does not contain the user message")
	}
	for _, intent := range []string{"calendar", "email", "task", "general"} {
		if !strings.Contains(stub.lastPrompt, intent) {
			t.Errorf("prompt does not mention intent %q", intent)
		}
	}
}

func TestParseIntent(t *testing.T) {
	if _, ok := router.ParseIntent("Calendar"); ok {
		t.Error("ParseIntent must not accept non-normalized input")
	}
	if intent, ok := router.ParseIntent("calendar"); !ok || intent != router.IntentCalendar {
		t.Errorf("ParseIntent(calendar) = %v, %v", intent, ok)
	}
}
