package usecase

// Log prefixes
const (
	LogPrefixCreateFromMessage = "localtask.usecase.CreateFromMessage"
	LogPrefixComplete          = "localtask.usecase.Complete"
)

// PromptTaskExtraction asks the LLM to turn a free-text message into one
// task as a bare JSON object. %s placeholders: current time (RFC3339), the
// user message.
const PromptTaskExtraction = `Current time: %s

Extract task details from this message:
"%s"

Return a JSON object with:
- title: brief task title
- description: detailed description
- priority: "high", "medium", or "low"
- due_date: ISO format date if mentioned (resolve relative dates against the current time), null otherwise

Example: {"title": "Review proposal", "description": "Review the Q4 budget proposal from finance team", "priority": "medium", "due_date": "2026-06-30T17:00:00Z"}

Return only the JSON object.`
