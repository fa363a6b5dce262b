package model

import "time"

// CalendarEvent is a calendar entry fetched from Google Calendar.
// ExternalID is the Google event ID, carried through for later deletion
// and never interpreted by classification.
type CalendarEvent struct {
	Title           string
	Attendees       []string
	StartTime       time.Time
	DurationMinutes int
	Location        string
	ExternalID      string
}

// Meeting is a calendar event classified as an interpersonal meeting,
// shaped for dashboard display.
type Meeting struct {
	Title           string   `json:"title"`
	Date            string   `json:"date"` // local date, YYYY-MM-DD
	Time            string   `json:"time"` // local start time, HH:MM
	Attendees       []string `json:"attendees"`
	DurationMinutes int      `json:"duration_minutes"`
	Location        string   `json:"location,omitempty"`
	EventID         string   `json:"event_id"`
}
