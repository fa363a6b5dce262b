package auth

import "context"

// UseCase defines the business logic interface for the Google auth domain.
type UseCase interface {
	// Begin starts the OAuth web flow and returns the consent URL.
	Begin(ctx context.Context) (BeginOutput, error)

	// Callback completes the flow: validates state, exchanges the code,
	// persists the token, and builds the Google service clients.
	Callback(ctx context.Context, input CallbackInput) error

	// Status reports whether the user is connected and which services are up.
	Status(ctx context.Context) StatusOutput

	// Disconnect tears down the Google services and removes the saved token.
	Disconnect(ctx context.Context) error

	// Services returns the current Google service clients. Fields are nil
	// when not authenticated.
	Services() Services
}
