package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"intelliassist/internal/assistant"
	"intelliassist/internal/localtask"
	"intelliassist/internal/model"
	"intelliassist/internal/router"
	"intelliassist/pkg/gtasks"
	"intelliassist/pkg/llmprovider"
)

// Chat records the message, routes its intent, and dispatches to the
// matching handler. Handler failures degrade to apologetic replies rather
// than errors; only invalid input errors escape.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyMessage
	}

	sessionID := sc.SessionID
	if sessionID == "" {
		sessionID = defaultSessionID
	}
	uc.memory.Add(sessionID, model.ChatTurn{Role: model.RoleUser, Content: message})

	intent := uc.router.Route(ctx, message)
	uc.l.Infof(ctx, "%s: intent %s", LogPrefixChat, intent)

	var reply string
	switch intent {
	case router.IntentCalendar:
		reply = uc.handleCalendar(ctx)
	case router.IntentEmail:
		reply = uc.handleEmail(ctx, message)
	case router.IntentTask:
		reply = uc.handleTask(ctx, sc, message)
	default:
		reply = uc.handleGeneral(ctx, sessionID, message)
	}

	uc.memory.Add(sessionID, model.ChatTurn{Role: model.RoleAssistant, Content: reply})

	return assistant.ChatOutput{Reply: reply, Intent: string(intent)}, nil
}

// handleCalendar summarizes the upcoming week.
func (uc *implUseCase) handleCalendar(ctx context.Context) string {
	svcs := uc.provider.Services()
	if svcs.Calendar == nil {
		return ReplyNoCalendar
	}

	events, err := svcs.Calendar.UpcomingEvents(ctx, "primary", upcomingDays, maxChatEvents)
	if err != nil {
		uc.l.Errorf(ctx, "%s: calendar fetch failed: %v", LogPrefixChat, err)
		return "I could not reach your calendar just now. Please try again."
	}
	if len(events) == 0 {
		return ReplyNoEvents
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d upcoming events:\n\n", len(events))
	for i, ev := range events {
		local := ev.StartTime.In(uc.location)
		fmt.Fprintf(&b, "%d. %s on %s at %s", i+1, ev.Summary, local.Format("Monday, Jan 2"), local.Format("15:04"))
		if len(ev.Attendees) > 0 {
			fmt.Fprintf(&b, " with %d attendees", len(ev.Attendees))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// handleEmail answers inbox questions from the unread list.
func (uc *implUseCase) handleEmail(ctx context.Context, message string) string {
	svcs := uc.provider.Services()
	if svcs.Gmail == nil {
		return ReplyNoGmail
	}

	if !containsAnyWord(message, "unread", "check", "inbox") {
		return ReplyEmailHelp
	}

	emails, err := svcs.Gmail.UnreadMessages(ctx, maxChatEmails)
	if err != nil {
		uc.l.Errorf(ctx, "%s: gmail fetch failed: %v", LogPrefixChat, err)
		return "I could not reach your inbox just now. Please try again."
	}
	if len(emails) == 0 {
		return ReplyNoUnread
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d unread emails:\n\n", len(emails))
	for i, email := range emails {
		fmt.Fprintf(&b, "%d. %s\n   From: %s\n   Priority: %s\n\n", i+1, email.Subject, email.Sender, email.Priority)
	}
	return strings.TrimRight(b.String(), "\n")
}

// handleTask covers create, complete, and list operations on the local store,
// mirroring the create into Google Tasks when that service is connected.
func (uc *implUseCase) handleTask(ctx context.Context, sc model.Scope, message string) string {
	switch {
	case containsAnyWord(message, "create", "add", "new task"):
		return uc.handleTaskCreate(ctx, sc, message)
	case containsAnyWord(message, "complete", "done", "finish"):
		return uc.handleTaskComplete(ctx)
	case containsAnyWord(message, "list", "show", "tasks"):
		return uc.handleTaskList(ctx)
	default:
		return ReplyTaskHelp
	}
}

func (uc *implUseCase) handleTaskCreate(ctx context.Context, sc model.Scope, message string) string {
	output, err := uc.localTasks.CreateFromMessage(ctx, sc, localtask.CreateInput{Message: message})
	if err != nil {
		uc.l.Errorf(ctx, "%s: task create failed: %v", LogPrefixChat, err)
		return fmt.Sprintf("Error creating task: %v", err)
	}

	svcs := uc.provider.Services()
	if svcs.Tasks == nil {
		return output.Message
	}

	if err := uc.mirrorToGoogleTasks(ctx, output.Task); err != nil {
		uc.l.Warnf(ctx, "%s: google tasks mirror failed: %v", LogPrefixChat, err)
		return output.Message + "\nNote: could not sync to Google Tasks."
	}
	return output.Message + "\nTask also created in Google Tasks."
}

func (uc *implUseCase) handleTaskComplete(ctx context.Context) string {
	summary, err := uc.localTasks.Summary(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "%s: task summary failed: %v", LogPrefixChat, err)
		return fmt.Sprintf("Error managing tasks: %v", err)
	}
	pending, err := uc.localTasks.Pending(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "%s: pending tasks failed: %v", LogPrefixChat, err)
		return fmt.Sprintf("Error managing tasks: %v", err)
	}
	if len(pending) == 0 {
		return ReplyNoPending
	}

	var b strings.Builder
	for i, t := range pending {
		if i >= 5 {
			break
		}
		fmt.Fprintf(&b, "- %s\n", t.Title)
	}
	return fmt.Sprintf("You have %d pending tasks:\n%s\nTo complete a task, say 'complete [task name]'", summary.Pending, strings.TrimRight(b.String(), "\n"))
}

func (uc *implUseCase) handleTaskList(ctx context.Context) string {
	summary, err := uc.localTasks.Summary(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "%s: task summary failed: %v", LogPrefixChat, err)
		return fmt.Sprintf("Error managing tasks: %v", err)
	}
	pending, err := uc.localTasks.Pending(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "%s: pending tasks failed: %v", LogPrefixChat, err)
		return fmt.Sprintf("Error managing tasks: %v", err)
	}
	overdue, err := uc.localTasks.Overdue(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "%s: overdue tasks failed: %v", LogPrefixChat, err)
		return fmt.Sprintf("Error managing tasks: %v", err)
	}

	var b strings.Builder
	b.WriteString("Task Summary:\n")
	fmt.Fprintf(&b, "- %d pending tasks\n", summary.Pending)
	fmt.Fprintf(&b, "- %d completed\n", summary.Completed)
	if len(overdue) > 0 {
		fmt.Fprintf(&b, "- %d overdue\n", len(overdue))
	}
	if len(pending) > 0 {
		b.WriteString("\nNext 3 tasks:\n")
		for i, t := range pending {
			if i >= 3 {
				break
			}
			fmt.Fprintf(&b, "[%s] %s\n", t.Priority, t.Title)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// handleGeneral is the open conversation path: time context plus the last
// few turns of history around the user message.
func (uc *implUseCase) handleGeneral(ctx context.Context, sessionID, message string) string {
	if uc.llm == nil {
		return ReplyNoLLM
	}

	prompt := fmt.Sprintf(PromptGeneralConversation, uc.buildChatContext(ctx, sessionID), message)

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: prompt}}},
		},
		MaxTokens: chatMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: generation failed: %v", LogPrefixChat, err)
		return ReplyGeneralError
	}
	return resp.Text()
}

// buildChatContext assembles the ambient prompt context: the current time
// with week bounds, the connection state, and recent conversation history.
func (uc *implUseCase) buildChatContext(ctx context.Context, sessionID string) string {
	now := time.Now().In(uc.location)

	weekday := int(now.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1)) // Monday
	weekEnd := weekStart.AddDate(0, 0, 6)
	tomorrow := now.AddDate(0, 0, 1)

	var b strings.Builder
	fmt.Fprintf(&b, TimeContextTemplate,
		now.Format("Monday, January 2, 2006"),
		now.Format("15:04 MST"),
		weekStart.Format("2006-01-02"),
		weekEnd.Format("2006-01-02"),
		tomorrow.Format("2006-01-02"),
	)

	svcs := uc.provider.Services()
	if svcs.Calendar != nil || svcs.Gmail != nil || svcs.Tasks != nil {
		b.WriteString("\n\nYou have access to the user's Google Calendar and Gmail services.")
	} else {
		b.WriteString("\n\nNote: The user hasn't connected their Google services yet. You can help with general questions and guide them to connect Google for calendar and email features.")
	}

	history := uc.memory.History(sessionID)
	// The current user message is already in memory; context is the turns
	// before it.
	if len(history) > 1 {
		history = history[:len(history)-1]
		if len(history) > chatHistoryTurns {
			history = history[len(history)-chatHistoryTurns:]
		}
		b.WriteString("\n\nPrevious conversation:\n")
		for _, turn := range history {
			fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Content)
		}
	}

	return b.String()
}

func (uc *implUseCase) mirrorToGoogleTasks(ctx context.Context, task model.LocalTask) error {
	svcs := uc.provider.Services()
	_, err := svcs.Tasks.CreateTask(ctx, gtasks.CreateTaskRequest{
		Title: task.Title,
		Notes: task.Description,
		Due:   task.DueDate,
	})
	return err
}

func containsAnyWord(message string, words ...string) bool {
	lower := strings.ToLower(message)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
