package classifier

// Result is the outcome of classifying a calendar event.
type Result struct {
	IsTask bool
	// Priority is set only when IsTask is true: High when the event's local
	// date is today or earlier, Medium otherwise.
	Priority string
}
