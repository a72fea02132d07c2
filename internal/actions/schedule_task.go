package actions

import (
	"context"
	"fmt"
	"time"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/gcalendar"
	"compliance-assistant/pkg/log"
	"compliance-assistant/pkg/platform"
)

const (
	defaultReminderTitle = "Compliance reminder"
	defaultEventHour     = 9
	defaultEventDuration = 30 * time.Minute
)

// CalendarWriter is the slice of the calendar client used for reminders.
type CalendarWriter interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type scheduleTaskHandler struct {
	platform   platform.IPlatform
	calendar   CalendarWriter // nil when no calendar is configured
	calendarID string         // empty targets the primary calendar
	timezone   string
	l          log.Logger
}

// NewScheduleTaskHandler creates the schedule_task handler. The platform
// task is authoritative; the calendar event is best-effort.
func NewScheduleTaskHandler(p platform.IPlatform, calendar CalendarWriter, calendarID, timezone string, l log.Logger) *scheduleTaskHandler {
	return &scheduleTaskHandler{platform: p, calendar: calendar, calendarID: calendarID, timezone: timezone, l: l}
}

func (h *scheduleTaskHandler) Name() string { return model.ActionScheduleTask }

func (h *scheduleTaskHandler) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}, snapshot model.ContextSnapshot) (model.ActionResult, error) {
	title := paramString(params, "title")
	if title == "" {
		title = defaultReminderTitle
	}

	req := platform.AssignTaskRequest{
		Title:         title,
		AssigneeEmail: sc.UserID,
		Priority:      "medium",
		CreatedBy:     sc.UserID,
	}
	due := paramTime(params, "due_date")
	if !due.IsZero() {
		req.DueAt = &due
	}

	task, err := h.platform.AssignTask(ctx, sc.WorkspaceID, req)
	if err != nil {
		return model.ActionResult{}, fmt.Errorf("task scheduling failed: %w", err)
	}

	data := map[string]interface{}{
		"task_id": task.ID,
		"title":   task.Title,
	}
	if task.DueAt != nil {
		data["due_at"] = task.DueAt.Format(time.RFC3339)
	}

	// Calendar failure degrades to platform-only scheduling.
	if h.calendar != nil && !due.IsZero() {
		start := eventStart(due)
		event, err := h.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  h.calendarID,
			Summary:     title,
			Description: fmt.Sprintf("Compliance task %s", task.ID),
			StartTime:   start,
			EndTime:     start.Add(defaultEventDuration),
			Timezone:    h.timezone,
			Attendees:   []string{sc.UserID},
		})
		if err != nil {
			h.l.Warnf(ctx, "actions: calendar event for task %s failed: %v", task.ID, err)
		} else {
			data["calendar_link"] = event.HtmlLink
		}
	}

	return model.ActionResult{
		Data: data,
		Actions: []model.ClientAction{
			{Type: model.ClientActionNavigate, Target: "/tasks"},
		},
	}, nil
}

// eventStart places midnight due dates at a working hour instead of 00:00.
func eventStart(due time.Time) time.Time {
	if due.Hour() == 0 && due.Minute() == 0 {
		return due.Add(defaultEventHour * time.Hour)
	}
	return due
}
