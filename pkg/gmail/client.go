package gmail

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const currentUser = "me"

// urgentKeywords and importantKeywords drive the subject-line priority hint.
var (
	urgentKeywords    = []string{"urgent", "asap", "critical", "emergency", "immediately"}
	importantKeywords = []string{"important", "deadline", "action required", "reminder", "review"}
)

// Client wraps the Gmail API service for the authenticated user.
type Client struct {
	service *gmail.Service
}

// NewClientFromHTTP creates a Gmail client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListMessages runs a Gmail search query and resolves each hit into a
// Message with sender, subject, snippet, and a priority hint.
func (c *Client) ListMessages(ctx context.Context, req ListMessagesRequest) ([]Message, error) {
	call := c.service.Users.Messages.List(currentUser).Context(ctx)
	if req.Query != "" {
		call = call.Q(req.Query)
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	result, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]Message, 0, len(result.Messages))
	for _, ref := range result.Messages {
		msg, err := c.service.Users.Messages.Get(currentUser, ref.Id).
			Format("metadata").
			MetadataHeaders("From", "Subject", "Date").
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("failed to get message %s: %w", ref.Id, err)
		}
		messages = append(messages, toMessage(msg))
	}

	return messages, nil
}

// UnreadMessages lists unread inbox messages, newest first.
func (c *Client) UnreadMessages(ctx context.Context, maxResults int64) ([]Message, error) {
	return c.ListMessages(ctx, ListMessagesRequest{Query: "is:unread", MaxResults: maxResults})
}

// TrashMessage moves a message to the trash.
func (c *Client) TrashMessage(ctx context.Context, messageID string) error {
	if _, err := c.service.Users.Messages.Trash(currentUser, messageID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to trash message %s: %w", messageID, err)
	}
	return nil
}

func toMessage(msg *gmail.Message) Message {
	out := Message{
		ID:        msg.Id,
		ThreadID:  msg.ThreadId,
		Snippet:   msg.Snippet,
		Timestamp: time.UnixMilli(msg.InternalDate),
	}

	if msg.Payload != nil {
		for _, h := range msg.Payload.Headers {
			switch h.Name {
			case "From":
				out.Sender = h.Value
			case "Subject":
				out.Subject = h.Value
			}
		}
	}

	for _, label := range msg.LabelIds {
		if label == "UNREAD" {
			out.Unread = true
			break
		}
	}

	out.Priority = classifyPriority(out.Subject)
	return out
}

// classifyPriority assigns a priority hint from subject keywords.
func classifyPriority(subject string) string {
	lower := strings.ToLower(subject)
	for _, kw := range urgentKeywords {
		if strings.Contains(lower, kw) {
			return PriorityUrgent
		}
	}
	for _, kw := range importantKeywords {
		if strings.Contains(lower, kw) {
			return PriorityImportant
		}
	}
	return PriorityNormal
}
