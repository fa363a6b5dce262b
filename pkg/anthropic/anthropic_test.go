package anthropic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"intelliassist/pkg/anthropic"
)

func TestConfigValidate(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		cfg := anthropic.Config{}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for missing API key")
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg := anthropic.Config{APIKey: "k"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != anthropic.DefaultModel {
			t.Errorf("expected default model, got %s", cfg.Model)
		}
		if cfg.BaseURL != anthropic.DefaultBaseURL {
			t.Errorf("expected default base URL, got %s", cfg.BaseURL)
		}
		if cfg.HTTPClient == nil {
			t.Error("expected default HTTP client")
		}
	})
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("missing x-api-key header")
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Errorf("missing anthropic-version header")
		}

		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)
		if req["max_tokens"] == nil {
			t.Error("max_tokens must always be set")
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "msg_1",
			"role": "assistant",
			"content": [{"type": "text", "text": "calendar"}],
			"usage": {"input_tokens": 12, "output_tokens": 3}
		}`))
	}))
	defer ts.Close()

	client, err := anthropic.New(anthropic.Config{
		APIKey:  "test-key",
		BaseURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &anthropic.Request{
		Messages: []anthropic.Content{
			{Role: "user", Parts: []anthropic.Part{{Text: "route this"}}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text != "calendar" {
		t.Errorf("unexpected content: %+v", resp.Content)
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("expected 15 total tokens, got %d", resp.Usage.TotalTokens)
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"type": "api_error"}}`))
	}))
	defer ts.Close()

	client, _ := anthropic.New(anthropic.Config{APIKey: "k", BaseURL: ts.URL})
	_, err := client.GenerateContent(context.Background(), &anthropic.Request{
		Messages: []anthropic.Content{{Role: "user", Parts: []anthropic.Part{{Text: "hi"}}}},
	})
	if err == nil {
		t.Error("expected error on 500 response")
	}
}
