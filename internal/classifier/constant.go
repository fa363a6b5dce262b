package classifier

// Keyword tables are data, not branching chains, so the precedence order
// (meeting veto → explicit task → single-person task → personal pattern)
// stays visible and independently testable.

// MeetingKeywords mark an event as a meeting with absolute priority over
// every other signal.
var MeetingKeywords = []string{
	"meeting", "call", "conference", "discussion", "standup",
	"sync", "review meeting", "team", "group", "session", "interview",
	"presentation", "demo", "workshop", "training", "seminar",
}

// TaskKeywords suggest a personal task when the event has no attendees.
var TaskKeywords = []string{
	"deadline", "due", "submit", "reminder", "task", "todo", "to do",
	"finish", "complete", "draft", "personal appointment", "prep", "prepare",
	"bedtime", "morning", "workout", "exercise", "study", "practice",
	"clean", "organize", "shopping", "errands", "pick up", "drop off",
	"appointment", "dentist", "doctor", "checkup", "visit",
}

// ExplicitTaskKeywords are high-confidence task markers. They classify an
// event as a task regardless of attendee count. That override is a known
// quirk kept for behavioral parity with the dashboards users already have;
// do not "fix" it without flagging the change.
var ExplicitTaskKeywords = []string{
	"deadline", "due", "submit", "reminder", "task", "todo", "to do",
}

// PersonalActivityPatterns mark single-person events as personal tasks.
var PersonalActivityPatterns = []string{
	"prep", "bedtime", "morning", "workout", "exercise", "study", "practice",
	"clean", "organize", "shopping", "errands",
}
