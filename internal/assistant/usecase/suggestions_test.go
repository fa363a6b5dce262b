package usecase

import (
	"context"
	"strings"
	"testing"

	"intelliassist/internal/auth"
	"intelliassist/internal/localtask"
	"intelliassist/internal/memory"
	"intelliassist/internal/router"
)

func TestSuggestions(t *testing.T) {
	t.Run("task deadlines take the top slots", func(t *testing.T) {
		tasks := &stubLocalTasks{summary: localtask.SummaryOutput{Overdue: 2, DueToday: 1}}
		uc := New(mockLogger{}, nil, &stubRouter{intent: router.IntentGeneral}, memory.New(0, 0, 0), &stubProvider{}, tasks, "UTC")

		out, err := uc.Suggestions(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Suggestions) != maxSuggestions {
			t.Fatalf("expected %d suggestions, got %d", maxSuggestions, len(out.Suggestions))
		}
		if !strings.Contains(out.Suggestions[0], "1 tasks due today") {
			t.Errorf("due-today suggestion not first: %q", out.Suggestions[0])
		}
		if !strings.Contains(out.Suggestions[1], "2 overdue tasks") {
			t.Errorf("overdue suggestion not second: %q", out.Suggestions[1])
		}
	})

	t.Run("without task store", func(t *testing.T) {
		uc := New(mockLogger{}, nil, &stubRouter{intent: router.IntentGeneral}, memory.New(0, 0, 0), &stubProvider{services: auth.Services{}}, nil, "UTC")

		out, err := uc.Suggestions(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Suggestions) == 0 || len(out.Suggestions) > maxSuggestions {
			t.Errorf("unexpected suggestion count: %d", len(out.Suggestions))
		}
	})
}

func TestTimeOfDaySuggestions(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{9, "What meetings do I have today?"},
		{12, "Review afternoon calendar"},
		{15, "Plan tomorrow's priorities"},
		{20, "Prepare agenda for tomorrow"},
		{3, "Prepare agenda for tomorrow"},
	}

	for _, tc := range cases {
		got := timeOfDaySuggestions(tc.hour)
		if len(got) != 3 {
			t.Fatalf("hour %d: expected 3 suggestions, got %d", tc.hour, len(got))
		}
		found := false
		for _, s := range got {
			if s == tc.want {
				found = true
			}
		}
		if !found {
			t.Errorf("hour %d: missing %q in %v", tc.hour, tc.want, got)
		}
	}
}
