package classifier

import (
	"strings"
	"time"

	"intelliassist/internal/model"
)

// IsTask reports whether an event with the given title and attendees is a
// personal task rather than a meeting. The function is total: any input,
// including an empty title, produces a result, and the default is "meeting".
//
// Rule precedence, first match wins:
//  1. A meeting keyword in the title vetoes everything else.
//  2. Single-person event with a task keyword.
//  3. An explicit task keyword, regardless of attendee count.
//  4. Single-person event with a personal-activity pattern.
func (c *Classifier) IsTask(title string, attendees []string) bool {
	titleLower := strings.ToLower(title)

	if containsAny(titleLower, MeetingKeywords) {
		return false
	}

	isSinglePerson := len(attendees) == 0
	hasTaskKeywords := containsAny(titleLower, TaskKeywords)
	hasExplicitTaskKeywords := containsAny(titleLower, ExplicitTaskKeywords)
	hasPersonalPatterns := containsAny(titleLower, PersonalActivityPatterns)

	return (isSinglePerson && hasTaskKeywords) ||
		hasExplicitTaskKeywords ||
		(isSinglePerson && hasPersonalPatterns)
}

// Classify runs IsTask and, for tasks, derives the priority from the event's
// local calendar date relative to now: High when due today or earlier,
// Medium when later.
func (c *Classifier) Classify(event model.CalendarEvent, now time.Time) Result {
	if !c.IsTask(event.Title, event.Attendees) {
		return Result{IsTask: false}
	}

	eventDate := dateOf(event.StartTime.In(c.location))
	today := dateOf(now.In(c.location))

	priority := model.PriorityMedium
	if !eventDate.After(today) {
		priority = model.PriorityHigh
	}

	return Result{IsTask: true, Priority: priority}
}

// Location returns the classifier's local timezone, shared with callers that
// format event times for display.
func (c *Classifier) Location() *time.Location {
	return c.location
}

func containsAny(titleLower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(titleLower, kw) {
			return true
		}
	}
	return false
}

// dateOf truncates t to midnight in its own location.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
