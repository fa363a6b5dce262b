package usecase

import (
	"context"

	"intelliassist/internal/router"
	"intelliassist/pkg/llmprovider"
)

// classifierMaxTokens bounds the intent reply, which is a single word.
const classifierMaxTokens = 50

type textClassifier struct {
	llm Generator
}

var _ router.TextClassifier = (*textClassifier)(nil)

// NewTextClassifier adapts the LLM provider manager to the router's
// classification capability.
func NewTextClassifier(llm Generator) router.TextClassifier {
	return &textClassifier{llm: llm}
}

func (t *textClassifier) ClassifyIntent(ctx context.Context, prompt string) (string, error) {
	resp, err := t.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: prompt}}},
		},
		MaxTokens: classifierMaxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
