package classifier

import (
	"fmt"
	"time"
)

// Classifier decides whether a calendar event is a personal task or an
// interpersonal meeting. It holds only the local timezone used for the
// priority date comparison; classification itself is a pure function of
// the event title and attendee list.
type Classifier struct {
	location *time.Location
}

// New creates a Classifier for the given IANA timezone (e.g. "Europe/London").
func New(timezone string) (*Classifier, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Classifier{location: loc}, nil
}
