package usecase

import (
	"context"

	"intelliassist/internal/dashboard"
	"intelliassist/internal/model"
)

// DeleteMeeting removes a calendar event.
func (uc *implUseCase) DeleteMeeting(ctx context.Context, sc model.Scope, eventID string) error {
	if eventID == "" {
		return dashboard.ErrMissingID
	}
	svcs := uc.provider.Services()
	if svcs.Calendar == nil {
		return dashboard.ErrNotAuthenticated
	}

	if err := svcs.Calendar.DeleteEvent(ctx, "", eventID); err != nil {
		return err
	}
	uc.l.Infof(ctx, "dashboard: user=%s deleted meeting %s", sc.UserID, eventID)
	return nil
}

// DeleteEmail moves a Gmail message to the trash.
func (uc *implUseCase) DeleteEmail(ctx context.Context, sc model.Scope, gmailID string) error {
	if gmailID == "" {
		return dashboard.ErrMissingID
	}
	svcs := uc.provider.Services()
	if svcs.Gmail == nil {
		return dashboard.ErrNotAuthenticated
	}

	if err := svcs.Gmail.TrashMessage(ctx, gmailID); err != nil {
		return err
	}
	uc.l.Infof(ctx, "dashboard: user=%s trashed email %s", sc.UserID, gmailID)
	return nil
}

// DeleteGoogleTask removes a task from the default Google Tasks list.
func (uc *implUseCase) DeleteGoogleTask(ctx context.Context, sc model.Scope, taskID string) error {
	if taskID == "" {
		return dashboard.ErrMissingID
	}
	svcs := uc.provider.Services()
	if svcs.Tasks == nil {
		return dashboard.ErrNotAuthenticated
	}

	if err := svcs.Tasks.DeleteTask(ctx, "", taskID); err != nil {
		return err
	}
	uc.l.Infof(ctx, "dashboard: user=%s deleted google task %s", sc.UserID, taskID)
	return nil
}
