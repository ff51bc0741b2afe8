package ports

import (
	"context"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
)

// ExportTask is one queued export. It carries a snapshot of the requesting
// session so the worker calls the backend with that user's token.
type ExportTask struct {
	JobID    string
	Session  *domain.Session
	Resource domain.ExportResource
	Query    ListQuery
}

// ExportProcessor runs a single export task.
type ExportProcessor interface {
	Process(ctx context.Context, task ExportTask) error
}

// ExportQueue accepts export tasks for asynchronous processing.
type ExportQueue interface {
	Enqueue(ctx context.Context, task ExportTask) error
}
