package anthropic

import "time"

const (
	// DefaultModel is the default Anthropic model
	DefaultModel = "claude-sonnet-4-20250514"

	// DefaultBaseURL is the default Anthropic API endpoint
	DefaultBaseURL = "https://api.anthropic.com"

	// APIVersion is the anthropic-version header value
	APIVersion = "2023-06-01"

	// DefaultMaxTokens is used when the request does not set one; the
	// Messages API requires max_tokens to be present.
	DefaultMaxTokens = 1024

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
