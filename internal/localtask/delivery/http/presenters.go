package http

import (
	"intelliassist/internal/localtask"
	"intelliassist/internal/model"
)

// createReq carries the natural language task description.
type createReq struct {
	Message string `json:"message" binding:"required"`
}

// completeReq identifies the task by title.
type completeReq struct {
	Title string `json:"title" binding:"required"`
}

// listResp wraps the task list with its summary counts.
type listResp struct {
	Tasks   []model.LocalTask       `json:"tasks"`
	Summary localtask.SummaryOutput `json:"summary"`
}
