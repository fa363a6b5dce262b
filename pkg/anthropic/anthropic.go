package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// newAnthropicImpl creates a new Anthropic implementation
func newAnthropicImpl(cfg Config) *anthropicImpl {
	return &anthropicImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a generation request to the Anthropic Messages API
func (a *anthropicImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	wireReq := a.transformRequest(req)

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.baseURL+"/v1/messages", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to create request: %w", err)
	}

	httpReq.Header.Set("x-api-key", a.apiKey)
	httpReq.Header.Set("anthropic-version", APIVersion)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("anthropic: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("anthropic: API error %d: %s", resp.StatusCode, string(raw))
	}

	var wireResp messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("anthropic: failed to decode response: %w", err)
	}

	return a.transformResponse(&wireResp), nil
}

// Model returns the model being used
func (a *anthropicImpl) Model() string {
	return a.model
}

// transformRequest converts the normalized request to Messages API format
func (a *anthropicImpl) transformRequest(req *Request) *messagesRequest {
	wireReq := &messagesRequest{
		Model:     a.model,
		MaxTokens: req.MaxTokens,
		Messages:  make([]wireMessage, 0, len(req.Messages)),
	}
	if wireReq.MaxTokens <= 0 {
		wireReq.MaxTokens = DefaultMaxTokens
	}
	if req.Temperature > 0 {
		temp := req.Temperature
		wireReq.Temperature = &temp
	}

	if req.SystemInstruction != nil {
		wireReq.System = joinParts(req.SystemInstruction.Parts)
	}

	for _, msg := range req.Messages {
		role := msg.Role
		if role == "" {
			role = "user"
		}
		wireReq.Messages = append(wireReq.Messages, wireMessage{
			Role:    role,
			Content: joinParts(msg.Parts),
		})
	}

	return wireReq
}

func joinParts(parts []Part) string {
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n")
}

// transformResponse converts a Messages API response to the normalized format
func (a *anthropicImpl) transformResponse(resp *messagesResponse) *Response {
	content := Content{
		Role:  resp.Role,
		Parts: make([]Part, 0, len(resp.Content)),
	}
	for _, block := range resp.Content {
		if block.Type == "text" {
			content.Parts = append(content.Parts, Part{Text: block.Text})
		}
	}

	return &Response{
		Content: content,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
	}
}
