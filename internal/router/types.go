package router

// Intent is the inferred category of a user chat message, used to select a
// response-generating handler.
type Intent string

const (
	IntentCalendar Intent = "calendar"
	IntentEmail    Intent = "email"
	IntentTask     Intent = "task"
	IntentGeneral  Intent = "general"
)

// ParseIntent maps an already-normalized string onto the closed intent set.
func ParseIntent(s string) (Intent, bool) {
	switch Intent(s) {
	case IntentCalendar, IntentEmail, IntentTask, IntentGeneral:
		return Intent(s), true
	}
	return "", false
}
