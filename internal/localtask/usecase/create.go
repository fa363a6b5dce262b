package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"intelliassist/internal/localtask"
	"intelliassist/internal/model"
	"intelliassist/pkg/llmprovider"
)

// parsedTask is the JSON shape the LLM is asked to produce.
type parsedTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
}

// CreateFromMessage parses a natural language message into a task via the
// LLM and persists it.
func (uc *implUseCase) CreateFromMessage(ctx context.Context, sc model.Scope, input localtask.CreateInput) (localtask.CreateOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return localtask.CreateOutput{}, localtask.ErrEmptyInput
	}
	if uc.llm == nil {
		return localtask.CreateOutput{}, localtask.ErrLLMUnavailable
	}

	uc.l.Infof(ctx, "%s: user=%s message_length=%d", LogPrefixCreateFromMessage, sc.UserID, len(input.Message))

	parsed, err := uc.parseMessageWithLLM(ctx, input.Message)
	if err != nil {
		return localtask.CreateOutput{}, fmt.Errorf("failed to parse task message: %w", err)
	}

	now := time.Now()
	task := model.LocalTask{
		ID:          uuid.NewString(),
		Title:       parsed.Title,
		Description: parsed.Description,
		Priority:    normalizePriority(parsed.Priority),
		DueDate:     uc.resolveDueDate(ctx, parsed.DueDate, now),
		CreatedAt:   now,
	}
	if task.Description == "" {
		task.Description = task.Title
	}

	if err := uc.repo.Insert(ctx, task); err != nil {
		return localtask.CreateOutput{}, fmt.Errorf("failed to store task: %w", err)
	}

	return localtask.CreateOutput{
		Task:    task,
		Message: fmt.Sprintf("Created task: %s", task.Title),
	}, nil
}

// parseMessageWithLLM sends the message to the provider chain and decodes
// the JSON object from the reply.
func (uc *implUseCase) parseMessageWithLLM(ctx context.Context, message string) (parsedTask, error) {
	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		loc = time.UTC
	}
	prompt := fmt.Sprintf(PromptTaskExtraction, time.Now().In(loc).Format(time.RFC3339), message)

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: prompt}}},
		},
		Temperature: 0.2,
		MaxTokens:   512,
	})
	if err != nil {
		return parsedTask{}, fmt.Errorf("LLM request failed: %w", err)
	}

	responseText := resp.Text()
	cleanedJSON := sanitizeJSONResponse(responseText)

	var parsed parsedTask
	if err := json.Unmarshal([]byte(cleanedJSON), &parsed); err != nil {
		uc.l.Errorf(ctx, "%s: failed to parse LLM response. Raw=%q Cleaned=%q", LogPrefixCreateFromMessage, responseText, cleanedJSON)
		return parsedTask{}, fmt.Errorf("failed to parse LLM JSON response: %w", err)
	}
	if strings.TrimSpace(parsed.Title) == "" {
		return parsedTask{}, fmt.Errorf("LLM response missing task title")
	}

	return parsed, nil
}

// resolveDueDate turns the LLM's due_date string into a time. ISO timestamps
// and dates are tried first, then the relative-date parser. Unresolvable
// values leave the task undated.
func (uc *implUseCase) resolveDueDate(ctx context.Context, raw string, now time.Time) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "null") {
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if due, err := time.Parse(layout, raw); err == nil {
			return &due
		}
	}

	if uc.dateMath != nil {
		if due, err := uc.dateMath.Parse(raw, now); err == nil {
			return &due
		}
	}

	uc.l.Warnf(ctx, "%s: could not resolve due date %q, leaving task undated", LogPrefixCreateFromMessage, raw)
	return nil
}
