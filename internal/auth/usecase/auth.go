package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"intelliassist/internal/auth"
	"intelliassist/pkg/gcalendar"
	"intelliassist/pkg/gmail"
	"intelliassist/pkg/googleauth"
	"intelliassist/pkg/gtasks"
)

// Begin starts the OAuth web flow and returns the consent URL.
func (uc *implUseCase) Begin(ctx context.Context) (auth.BeginOutput, error) {
	if uc.config == nil {
		return auth.BeginOutput{}, auth.ErrNotConfigured
	}

	state := uuid.NewString()
	uc.states.Add(state, struct{}{})

	return auth.BeginOutput{
		AuthURL: googleauth.AuthCodeURL(uc.config, state),
	}, nil
}

// Callback completes the flow: validates state, exchanges the code, persists
// the token, and builds the Google service clients.
func (uc *implUseCase) Callback(ctx context.Context, input auth.CallbackInput) error {
	if uc.config == nil {
		return auth.ErrNotConfigured
	}
	if input.Code == "" {
		return auth.ErrMissingCode
	}
	if _, ok := uc.states.Get(input.State); !ok {
		return auth.ErrInvalidState
	}
	uc.states.Remove(input.State)

	token, err := googleauth.Exchange(ctx, uc.config, input.Code)
	if err != nil {
		return err
	}

	if err := googleauth.SaveToken(uc.tokenPath, token); err != nil {
		// Auth still succeeds for this process; only persistence failed.
		uc.l.Errorf(ctx, "auth: failed to persist token: %v", err)
	}

	if err := uc.buildServices(ctx, token); err != nil {
		return err
	}

	uc.l.Info(ctx, "auth: Google services connected")
	return nil
}

// Status reports whether the user is connected and which services are up.
func (uc *implUseCase) Status(ctx context.Context) auth.StatusOutput {
	svcs := uc.Services()
	authenticated := svcs.Calendar != nil || svcs.Gmail != nil || svcs.Tasks != nil

	return auth.StatusOutput{
		Authenticated: authenticated,
		Services: map[string]bool{
			"calendar": svcs.Calendar != nil,
			"gmail":    svcs.Gmail != nil,
			"tasks":    svcs.Tasks != nil,
		},
	}
}

// Disconnect tears down the Google services and removes the saved token.
func (uc *implUseCase) Disconnect(ctx context.Context) error {
	uc.mu.Lock()
	uc.services = auth.Services{}
	uc.mu.Unlock()

	if err := googleauth.RemoveToken(uc.tokenPath); err != nil {
		return err
	}

	uc.l.Info(ctx, "auth: disconnected from Google")
	return nil
}

// Services returns the current Google service clients.
func (uc *implUseCase) Services() auth.Services {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.services
}

// restoreFromSavedToken rebuilds the service clients from a persisted token.
// Any failure leaves the use case unauthenticated.
func (uc *implUseCase) restoreFromSavedToken(ctx context.Context) {
	token, err := googleauth.TokenFromFile(uc.tokenPath)
	if err != nil {
		return
	}

	if err := uc.buildServices(ctx, token); err != nil {
		uc.l.Warnf(ctx, "auth: saved token found but service setup failed: %v", err)
		return
	}
	uc.l.Info(ctx, "auth: restored Google session from saved token")
}

func (uc *implUseCase) buildServices(ctx context.Context, token *oauth2.Token) error {
	// The HTTP client outlives the request that created it, so it must not
	// inherit the request context.
	httpClient := googleauth.Client(context.Background(), uc.config, token)

	calendarClient, err := gcalendar.NewClientFromHTTP(ctx, httpClient)
	if err != nil {
		return fmt.Errorf("failed to set up calendar client: %w", err)
	}
	gmailClient, err := gmail.NewClientFromHTTP(ctx, httpClient)
	if err != nil {
		return fmt.Errorf("failed to set up gmail client: %w", err)
	}
	tasksClient, err := gtasks.NewClientFromHTTP(ctx, httpClient)
	if err != nil {
		return fmt.Errorf("failed to set up tasks client: %w", err)
	}

	uc.mu.Lock()
	uc.services = auth.Services{
		Calendar: calendarClient,
		Gmail:    gmailClient,
		Tasks:    tasksClient,
	}
	uc.mu.Unlock()
	return nil
}
