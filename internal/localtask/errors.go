package localtask

import "errors"

// Domain-specific errors for the local task store.
var (
	ErrEmptyInput     = errors.New("task message is empty")
	ErrLLMUnavailable = errors.New("task parsing requires an LLM provider")
	ErrTaskNotFound   = errors.New("task not found")
)
