package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"intelliassist/internal/assistant"
	"intelliassist/internal/model"
	"intelliassist/pkg/gmail"
	"intelliassist/pkg/llmprovider"
)

// PriorityEmails returns unread emails ordered most urgent first, with an
// LLM digest of what needs attention when a model is configured.
func (uc *implUseCase) PriorityEmails(ctx context.Context) (assistant.PriorityEmailsOutput, error) {
	svcs := uc.provider.Services()
	if svcs.Gmail == nil {
		return assistant.PriorityEmailsOutput{}, assistant.ErrNotAuthenticated
	}

	messages, err := svcs.Gmail.UnreadMessages(ctx, maxPriorityEmails)
	if err != nil {
		return assistant.PriorityEmailsOutput{}, fmt.Errorf("failed to fetch unread emails: %w", err)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		ri, rj := priorityRank(messages[i].Priority), priorityRank(messages[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return messages[i].Timestamp.After(messages[j].Timestamp)
	})

	out := assistant.PriorityEmailsOutput{
		Emails:   []model.Email{},
		Analyzed: len(messages),
	}
	for i, msg := range messages {
		if i >= priorityDisplayLimit {
			break
		}
		out.Emails = append(out.Emails, model.Email{
			GmailID:   msg.ID,
			Sender:    msg.Sender,
			Subject:   msg.Subject,
			Snippet:   msg.Snippet,
			Timestamp: msg.Timestamp,
			Priority:  msg.Priority,
			Read:      !msg.Unread,
		})
	}

	if uc.llm != nil && len(messages) > 0 {
		insights, err := uc.emailInsights(ctx, messages)
		if err != nil {
			uc.l.Warnf(ctx, "%s: insights generation failed: %v", LogPrefixPriorityEmails, err)
		} else {
			out.Insights = insights
		}
	}

	return out, nil
}

func (uc *implUseCase) emailInsights(ctx context.Context, messages []gmail.Message) (string, error) {
	summaries := make([]string, 0, maxInsightEmails)
	for i, msg := range messages {
		if i >= maxInsightEmails {
			break
		}
		summaries = append(summaries, fmt.Sprintf("From: %s\nSubject: %s\nPriority: %s", msg.Sender, msg.Subject, msg.Priority))
	}

	prompt := fmt.Sprintf(PromptEmailInsights, strings.Join(summaries, "\n---\n"))

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: prompt}}},
		},
		MaxTokens: chatMaxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func priorityRank(priority string) int {
	switch priority {
	case model.EmailPriorityUrgent:
		return 0
	case model.EmailPriorityImportant:
		return 1
	default:
		return 2
	}
}
