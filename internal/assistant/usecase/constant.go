package usecase

// Log prefixes
const (
	LogPrefixChat           = "assistant.usecase.Chat"
	LogPrefixPriorityEmails = "assistant.usecase.PriorityEmails"
)

// PromptGeneralConversation frames a general chat turn. %s placeholders:
// ambient context (time, connection state, recent history), the user message.
const PromptGeneralConversation = `You are a helpful executive assistant. Be professional but friendly.%s

User message: %s

Provide a helpful response.`

// TimeContextTemplate is spliced into general conversation prompts so the
// model can resolve relative dates itself. %s placeholders: today's date
// with weekday, local time, week start, week end, tomorrow's date.
const TimeContextTemplate = `

Current date and time: Today is %s at %s.
This week runs %s to %s; tomorrow is %s.
Always resolve relative dates against these, format dates as YYYY-MM-DD, and never ask the user what day it is.`

// PromptEmailInsights asks the LLM for an actionable digest of the given
// email summaries. %s placeholder: the summaries joined with "---" separators.
const PromptEmailInsights = `Analyze these recent emails and provide actionable insights:

%s

Provide insights about:
1. Urgent items requiring immediate attention
2. Recurring themes or topics
3. People who need responses
4. Time-sensitive opportunities

Format as bullet points, be concise and actionable.`

// Canned replies used when a capability is missing or a handler has nothing
// better to say. Kept as constants so tests pin the exact wording.
const (
	ReplyNoCalendar   = "Calendar service is not available. Please connect Google first."
	ReplyNoGmail      = "Email service is not available. Please connect Google first."
	ReplyNoLLM        = "AI service is not available. Please check the language model configuration."
	ReplyNoEvents     = "You have no upcoming events in the next 7 days."
	ReplyNoUnread     = "You have no unread emails!"
	ReplyEmailHelp    = "I can help you check unread emails or manage your inbox. What would you like me to do?"
	ReplyTaskHelp     = "I can help you create new tasks, list existing ones, or mark them complete. What would you like to do?"
	ReplyNoPending    = "You have no pending tasks! Great work."
	ReplyGeneralError = "I'm here to help! Ask me about your calendar, emails, or anything else."
)
