package auth

import (
	"intelliassist/pkg/gcalendar"
	"intelliassist/pkg/gmail"
	"intelliassist/pkg/gtasks"
)

// BeginOutput carries the OAuth consent URL for the frontend to open.
type BeginOutput struct {
	AuthURL string `json:"auth_url"`
}

// CallbackInput carries the OAuth redirect parameters.
type CallbackInput struct {
	State string
	Code  string
}

// StatusOutput reports connection state per service.
type StatusOutput struct {
	Authenticated bool            `json:"authenticated"`
	Services      map[string]bool `json:"services"`
}

// Services is a snapshot of the Google clients built from the current token.
type Services struct {
	Calendar *gcalendar.Client
	Gmail    *gmail.Client
	Tasks    *gtasks.Client
}
