package domain

import "time"

// ExportResource names a collection that can be exported.
type ExportResource string

const (
	ExportLeads    ExportResource = "leads"
	ExportVisitors ExportResource = "visitors"
)

// ExportStatus is the lifecycle state of an export job.
type ExportStatus string

const (
	ExportPending ExportStatus = "pending"
	ExportRunning ExportStatus = "running"
	ExportDone    ExportStatus = "done"
	ExportFailed  ExportStatus = "failed"
)

// ExportJob tracks an asynchronous spreadsheet export.
type ExportJob struct {
	ID         string         `json:"id"`
	SessionID  string         `json:"-"`
	UserID     string         `json:"user_id"`
	Resource   ExportResource `json:"resource"`
	Status     ExportStatus   `json:"status"`
	Rows       int            `json:"rows"`
	FileName   string         `json:"file_name,omitempty"`
	Error      string         `json:"error,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	FinishedAt *time.Time     `json:"finished_at,omitempty"`
}
