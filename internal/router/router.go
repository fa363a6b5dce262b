package router

import (
	"context"
	"fmt"
	"strings"
)

// Route determines the intent of a user message. Classification failures
// never escape the router: an unavailable capability, a call error, or a
// reply outside the closed set all degrade to General. Timeout and
// cancellation are owned by the caller via ctx.
func (r *IntentRouter) Route(ctx context.Context, message string) Intent {
	if r.classifier == nil {
		return RouterFallbackIntent
	}

	prompt := fmt.Sprintf(PromptIntentClassification, message)

	reply, err := r.classifier.ClassifyIntent(ctx, prompt)
	if err != nil {
		r.l.Warnf(ctx, "%s: classification failed, falling back to %s: %v", LogPrefixRoute, RouterFallbackIntent, err)
		return RouterFallbackIntent
	}

	normalized := strings.ToLower(strings.TrimSpace(reply))

	intent, ok := ParseIntent(normalized)
	if !ok {
		r.l.Warnf(ctx, "%s: reply %q outside intent set, falling back to %s", LogPrefixRoute, reply, RouterFallbackIntent)
		return RouterFallbackIntent
	}

	r.l.Infof(ctx, "%s: classified as %s", LogPrefixRoute, intent)
	return intent
}
