package router

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// PromptIntentClassification instructs the text classifier to answer from the
// closed intent set only. The router normalizes the reply before matching, so
// the instruction does not need perfect model compliance.
const PromptIntentClassification = `Analyze this user message and determine the intent:

Message: %q

Classify into one of these categories:
- calendar: scheduling, meetings, availability, appointments
- email: checking emails, sending, replying, inbox management
- task: creating tasks, managing todos, reminders
- general: general questions or conversation

Respond with exactly one of: calendar, email, task, general.`

// RouterFallbackIntent is returned whenever the classification capability is
// unavailable, fails, or answers outside the closed set.
const RouterFallbackIntent = IntentGeneral
