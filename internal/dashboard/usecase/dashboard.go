package usecase

import (
	"context"
	"fmt"
	"time"

	"intelliassist/internal/dashboard"
	"intelliassist/internal/model"
	"intelliassist/pkg/gcalendar"
)

// Get assembles meetings, emails, tasks, and stats.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope) (dashboard.Output, error) {
	svcs := uc.provider.Services()
	authenticated := svcs.Calendar != nil || svcs.Gmail != nil || svcs.Tasks != nil

	if !authenticated {
		return uc.unauthenticatedOutput(ctx), nil
	}

	now := time.Now()
	loc := uc.classifier.Location()
	today := now.In(loc).Format("2006-01-02")

	out := dashboard.Output{
		Authenticated: true,
		Meetings:      []model.Meeting{},
		Emails:        []model.Email{},
		Tasks:         []model.DashboardTask{},
	}

	// Calendar panel: split events into meetings and calendar-derived tasks.
	var todayMeetings, todayMeetingMinutes int
	if svcs.Calendar != nil {
		events, err := svcs.Calendar.UpcomingEvents(ctx, "primary", upcomingDays, maxEvents)
		if err != nil {
			uc.l.Errorf(ctx, "dashboard: calendar fetch failed: %v", err)
		} else {
			for _, ev := range events {
				event := toCalendarEvent(ev)
				local := event.StartTime.In(loc)

				result := uc.classifier.Classify(event, now)
				if result.IsTask {
					out.Tasks = append(out.Tasks, model.DashboardTask{
						Title:    event.Title,
						DueDate:  local.Format("2006-01-02 15:04"),
						Priority: result.Priority,
						Source:   model.TaskSourceCalendar,
					})
				} else {
					out.Meetings = append(out.Meetings, model.Meeting{
						Title:           event.Title,
						Date:            local.Format("2006-01-02"),
						Time:            local.Format("15:04"),
						Attendees:       event.Attendees,
						DurationMinutes: event.DurationMinutes,
						Location:        event.Location,
						EventID:         event.ExternalID,
					})
				}

				if local.Format("2006-01-02") == today {
					todayMeetings++
					todayMeetingMinutes += event.DurationMinutes
				}
			}
		}
	}

	// Email panel: unread messages, top N for display.
	var unreadCount int
	if svcs.Gmail != nil {
		messages, err := svcs.Gmail.UnreadMessages(ctx, maxEmails)
		if err != nil {
			uc.l.Errorf(ctx, "dashboard: gmail fetch failed: %v", err)
		} else {
			unreadCount = len(messages)
			for i, msg := range messages {
				if i >= displayLimit {
					break
				}
				out.Emails = append(out.Emails, model.Email{
					GmailID:   msg.ID,
					Sender:    msg.Sender,
					Subject:   msg.Subject,
					Snippet:   msg.Snippet,
					Timestamp: msg.Timestamp,
					Priority:  msg.Priority,
					Read:      !msg.Unread,
				})
			}
		}
	}

	// Task panel: today's Google Tasks after the calendar-derived ones.
	var pendingTasks int
	for _, t := range out.Tasks {
		if !t.Completed {
			pendingTasks++
		}
	}
	if svcs.Tasks != nil {
		googleTasks, err := svcs.Tasks.TodaysTasks(ctx, "", now, loc)
		if err != nil {
			uc.l.Errorf(ctx, "dashboard: google tasks fetch failed: %v", err)
		} else {
			for _, t := range googleTasks {
				gt := model.GoogleTask{
					GoogleTaskID: t.ID,
					Title:        t.Title,
					Notes:        t.Notes,
					DueDate:      t.Due,
					Priority:     model.PriorityMedium,
					Completed:    t.Completed,
				}
				out.Tasks = append(out.Tasks, googleTaskRow(gt, loc))
				if !gt.Completed {
					pendingTasks++
				}
			}
		}
	}
	if len(out.Tasks) > displayLimit {
		out.Tasks = out.Tasks[:displayLimit]
	}

	out.Stats = dashboard.Stats{
		Meetings: todayMeetings,
		Emails:   unreadCount,
		Tasks:    pendingTasks,
		FreeTime: freeTimeDisplay(now.In(loc), todayMeetings, todayMeetingMinutes),
	}
	return out, nil
}

// unauthenticatedOutput still surfaces local task data so the assistant is
// useful before Google is connected.
func (uc *implUseCase) unauthenticatedOutput(ctx context.Context) dashboard.Output {
	var pending int
	if uc.localTasks != nil {
		summary, err := uc.localTasks.Summary(ctx)
		if err != nil {
			uc.l.Warnf(ctx, "dashboard: could not load local task data: %v", err)
		} else {
			pending = summary.Pending
		}
	}

	return dashboard.Output{
		Authenticated: false,
		Meetings:      []model.Meeting{},
		Emails:        []model.Email{},
		Tasks:         []model.DashboardTask{},
		Stats:         dashboard.Stats{Tasks: pending, FreeTime: "0"},
		Message:       "AI assistant ready. Connect Google for email and calendar features.",
	}
}

// freeTimeDisplay renders the free-time stat: with no meetings today it
// describes the rest of the working day, otherwise the 8-hour day minus
// meeting time.
func freeTimeDisplay(nowLocal time.Time, todayMeetings, meetingMinutes int) string {
	if todayMeetings == 0 {
		hour := nowLocal.Hour()
		switch {
		case hour < 9:
			return "Full day available"
		case hour < 17:
			return fmt.Sprintf("%dh remaining today", 17-hour)
		default:
			return "Day complete"
		}
	}

	freeHours := 8 - float64(meetingMinutes)/60
	if freeHours < 0 {
		freeHours = 0
	}
	switch {
	case freeHours > 6:
		return fmt.Sprintf("%.1fh free", freeHours)
	case freeHours > 3:
		return fmt.Sprintf("%.1fh available", freeHours)
	case freeHours > 1:
		return fmt.Sprintf("%.1fh left", freeHours)
	default:
		return "Busy day"
	}
}

func googleTaskRow(gt model.GoogleTask, loc *time.Location) model.DashboardTask {
	due := "No due date"
	if gt.DueDate != nil {
		due = gt.DueDate.In(loc).Format("2006-01-02 15:04")
	}
	return model.DashboardTask{
		Title:     gt.Title,
		DueDate:   due,
		Priority:  gt.Priority,
		Source:    model.TaskSourceGoogleTasks,
		Completed: gt.Completed,
		TaskID:    gt.GoogleTaskID,
	}
}

func toCalendarEvent(ev gcalendar.Event) model.CalendarEvent {
	return model.CalendarEvent{
		Title:           ev.Summary,
		Attendees:       ev.Attendees,
		StartTime:       ev.StartTime,
		DurationMinutes: ev.DurationMinutes(),
		Location:        ev.Location,
		ExternalID:      ev.ID,
	}
}
