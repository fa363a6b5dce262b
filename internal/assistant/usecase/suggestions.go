package usecase

import (
	"context"
	"fmt"
	"time"

	"intelliassist/internal/assistant"
)

// Suggestions proposes next actions for the current part of the day. Task
// deadlines take the top slots when the local store reports any.
func (uc *implUseCase) Suggestions(ctx context.Context) (assistant.SuggestionsOutput, error) {
	suggestions := timeOfDaySuggestions(time.Now().In(uc.location).Hour())

	if uc.localTasks != nil {
		summary, err := uc.localTasks.Summary(ctx)
		if err != nil {
			uc.l.Warnf(ctx, "assistant: could not load task suggestions: %v", err)
		} else {
			if summary.Overdue > 0 {
				suggestions = append([]string{fmt.Sprintf("Review %d overdue tasks", summary.Overdue)}, suggestions...)
			}
			if summary.DueToday > 0 {
				suggestions = append([]string{fmt.Sprintf("Complete %d tasks due today", summary.DueToday)}, suggestions...)
			}
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return assistant.SuggestionsOutput{Suggestions: suggestions}, nil
}

func timeOfDaySuggestions(hour int) []string {
	switch {
	case hour >= 8 && hour <= 10:
		return []string{
			"Check my unread emails from yesterday",
			"What meetings do I have today?",
			"Review my priority tasks for this morning",
		}
	case hour >= 11 && hour <= 13:
		return []string{
			"Schedule lunch meeting next week",
			"Review afternoon calendar",
			"Send follow-up emails from morning meetings",
		}
	case hour >= 14 && hour <= 17:
		return []string{
			"Plan tomorrow's priorities",
			"Check for urgent emails",
			"Schedule end-of-week review",
		}
	default:
		return []string{
			"Review today's accomplishments",
			"Prepare agenda for tomorrow",
			"Schedule follow-up tasks",
		}
	}
}
