package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"intelliassist/internal/localtask"
	"intelliassist/internal/model"
)

// List returns tasks newest first, optionally including completed ones.
func (uc *implUseCase) List(ctx context.Context, includeCompleted bool) ([]model.LocalTask, error) {
	all, err := uc.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.LocalTask, 0, len(all))
	for _, t := range all {
		if includeCompleted || !t.Completed {
			out = append(out, t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Pending returns incomplete tasks sorted by priority (High first) then by
// due date, undated tasks last within a priority.
func (uc *implUseCase) Pending(ctx context.Context) ([]model.LocalTask, error) {
	all, err := uc.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]model.LocalTask, 0, len(all))
	for _, t := range all {
		if !t.Completed {
			pending = append(pending, t)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		ri, rj := priorityRank(pending[i].Priority), priorityRank(pending[j].Priority)
		if ri != rj {
			return ri < rj
		}
		di, dj := pending[i].DueDate, pending[j].DueDate
		switch {
		case di == nil && dj == nil:
			return false
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.Before(*dj)
		}
	})
	return pending, nil
}

// Overdue returns incomplete tasks whose due date has passed.
func (uc *implUseCase) Overdue(ctx context.Context) ([]model.LocalTask, error) {
	all, err := uc.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]model.LocalTask, 0, len(all))
	for _, t := range all {
		if !t.Completed && t.DueDate != nil && t.DueDate.Before(now) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Complete marks the first incomplete task with the given title as done.
// Matching is case-insensitive.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, title string) (model.LocalTask, error) {
	all, err := uc.repo.All(ctx)
	if err != nil {
		return model.LocalTask{}, err
	}

	for _, t := range all {
		if strings.EqualFold(t.Title, title) && !t.Completed {
			t.Completed = true
			if err := uc.repo.Update(ctx, t); err != nil {
				return model.LocalTask{}, err
			}
			uc.l.Infof(ctx, "%s: user=%s completed task %q", LogPrefixComplete, sc.UserID, t.Title)
			return t, nil
		}
	}

	return model.LocalTask{}, localtask.ErrTaskNotFound
}

// Summary returns task counts by state.
func (uc *implUseCase) Summary(ctx context.Context) (localtask.SummaryOutput, error) {
	all, err := uc.repo.All(ctx)
	if err != nil {
		return localtask.SummaryOutput{}, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	out := localtask.SummaryOutput{Total: len(all)}
	for _, t := range all {
		if t.Completed {
			out.Completed++
			continue
		}
		out.Pending++
		if t.Priority == model.PriorityHigh {
			out.HighPriority++
		}
		if t.DueDate != nil {
			if t.DueDate.Before(now) {
				out.Overdue++
			}
			if t.DueDate.Format("2006-01-02") == today {
				out.DueToday++
			}
		}
	}
	return out, nil
}
