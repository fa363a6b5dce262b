package classifier_test

import (
	"testing"
	"time"

	"intelliassist/internal/classifier"
	"intelliassist/internal/model"
)

func newClassifier(t *testing.T) *classifier.Classifier {
	t.Helper()
	c, err := classifier.New("UTC")
	if err != nil {
		t.Fatalf("unexpected error creating classifier: %v", err)
	}
	return c
}

func TestIsTask(t *testing.T) {
	c := newClassifier(t)

	tests := []struct {
		name      string
		title     string
		attendees []string
		want      bool
	}{
		{"meeting keyword veto", "Team sync", nil, false},
		{"meeting veto beats task keyword", "Deadline review meeting", nil, false},
		{"meeting veto with attendees", "1:1 call", []string{"a@x.com"}, false},
		{"explicit keyword overrides attendees", "Submit tax forms", []string{"a@x.com", "b@x.com"}, true},
		{"single person task keyword", "Dentist appointment", nil, true},
		{"single person personal pattern", "Workout", nil, true},
		{"personal pattern with attendees", "Morning run", []string{"a@x.com"}, false},
		{"plain multi attendee event", "Lunch with Bob", []string{"bob@x.com"}, false},
		{"plain single person event", "Lunch", nil, false},
		{"empty title", "", nil, false},
		{"case insensitive match", "SUBMIT REPORT", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.IsTask(tt.title, tt.attendees)
			if got != tt.want {
				t.Errorf("IsTask(%q, %v) = %v, want %v", tt.title, tt.attendees, got, tt.want)
			}
		})
	}
}

func TestMeetingKeywordVetoIsAbsolute(t *testing.T) {
	c := newClassifier(t)

	// Every meeting keyword must win even when combined with an explicit
	// task keyword and an empty attendee list.
	for _, kw := range classifier.MeetingKeywords {
		if c.IsTask("deadline "+kw, nil) {
			t.Errorf("meeting keyword %q did not veto classification", kw)
		}
	}
}

func TestClassifyPriority(t *testing.T) {
	c := newClassifier(t)
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	t.Run("due today is High", func(t *testing.T) {
		res := c.Classify(model.CalendarEvent{
			Title:     "Workout",
			StartTime: time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC),
		}, now)
		if !res.IsTask {
			t.Fatal("expected task")
		}
		if res.Priority != model.PriorityHigh {
			t.Errorf("expected High, got %s", res.Priority)
		}
	})

	t.Run("overdue is High", func(t *testing.T) {
		res := c.Classify(model.CalendarEvent{
			Title:     "Workout",
			StartTime: time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC),
		}, now)
		if res.Priority != model.PriorityHigh {
			t.Errorf("expected High, got %s", res.Priority)
		}
	})

	t.Run("next week is Medium", func(t *testing.T) {
		res := c.Classify(model.CalendarEvent{
			Title:     "Workout",
			StartTime: time.Date(2026, 9, 4, 18, 0, 0, 0, time.UTC),
		}, now)
		if res.Priority != model.PriorityMedium {
			t.Errorf("expected Medium, got %s", res.Priority)
		}
	})

	t.Run("meeting has no priority", func(t *testing.T) {
		res := c.Classify(model.CalendarEvent{
			Title:     "Team sync",
			StartTime: now,
		}, now)
		if res.IsTask {
			t.Fatal("expected meeting")
		}
		if res.Priority != "" {
			t.Errorf("expected empty priority, got %s", res.Priority)
		}
	})
}

func TestClassifyUsesLocalDate(t *testing.T) {
	// An event at 23:00 UTC on the 28th is already the 29th in Tokyo, so a
	// Tokyo classifier at 10:00 local on the 29th must treat it as today.
	c, err := classifier.New("Asia/Tokyo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Date(2026, 8, 29, 10, 0, 0, 0, c.Location())
	res := c.Classify(model.CalendarEvent{
		Title:     "Workout",
		StartTime: time.Date(2026, 8, 28, 23, 0, 0, 0, time.UTC),
	}, now)

	if res.Priority != model.PriorityHigh {
		t.Errorf("expected High for same local date, got %s", res.Priority)
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	c := newClassifier(t)
	now := time.Now()
	event := model.CalendarEvent{
		Title:     "Submit tax forms",
		Attendees: []string{"a@x.com", "b@x.com"},
		StartTime: now,
	}

	first := c.Classify(event, now)
	second := c.Classify(event, now)
	if first != second {
		t.Errorf("classification not idempotent: %+v vs %+v", first, second)
	}
}

func TestNewRejectsInvalidTimezone(t *testing.T) {
	if _, err := classifier.New("Not/AZone"); err == nil {
		t.Error("expected error for invalid timezone")
	}
}
