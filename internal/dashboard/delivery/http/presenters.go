package http

// deleteMeetingReq identifies the calendar event to remove.
type deleteMeetingReq struct {
	EventID string `json:"event_id" binding:"required"`
}

// deleteEmailReq identifies the Gmail message to trash.
type deleteEmailReq struct {
	EmailID string `json:"email_id" binding:"required"`
}

// deleteTaskReq identifies the Google task to remove.
type deleteTaskReq struct {
	TaskID string `json:"task_id" binding:"required"`
}
