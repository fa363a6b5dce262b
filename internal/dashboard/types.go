package dashboard

import "intelliassist/internal/model"

// Stats summarizes the day at a glance.
type Stats struct {
	Meetings int    `json:"meetings"`
	Emails   int    `json:"emails"`
	Tasks    int    `json:"tasks"`
	FreeTime string `json:"free_time"`
}

// Output is the aggregated dashboard data.
type Output struct {
	Authenticated bool
	Meetings      []model.Meeting
	Emails        []model.Email
	Tasks         []model.DashboardTask
	Stats         Stats
	Message       string // set when not authenticated
}
