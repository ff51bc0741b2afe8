package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

type recordingQueue struct {
	tasks []ports.ExportTask
	err   error
}

func (q *recordingQueue) Enqueue(_ context.Context, task ports.ExportTask) error {
	if q.err != nil {
		return q.err
	}
	q.tasks = append(q.tasks, task)
	return nil
}

type stubRenderer struct{ err error }

func (r stubRenderer) Leads(leads []domain.Lead) ([]byte, error) {
	return []byte("leads"), r.err
}

func (r stubRenderer) Visitors(visitors []domain.Visitor) ([]byte, error) {
	return []byte("visitors"), r.err
}

type exportFixture struct {
	svc     *ExportService
	backend *stubBackend
	store   *memExports
	dedup   *memDedup
	queue   *recordingQueue
	notes   *memNotifications
}

func newExportFixture(renderer ExportRenderer) *exportFixture {
	leads := make([]domain.Lead, 0, 230)
	for i := 0; i < 230; i++ {
		leads = append(leads, domain.Lead{ID: "l"})
	}
	backend := &stubBackend{leads: leads, visitors: []domain.Visitor{{ID: "v1"}}}
	notify, notes := newTestNotifier()
	f := &exportFixture{
		backend: backend,
		store:   newMemExports(),
		dedup:   newMemDedup(),
		queue:   &recordingQueue{},
		notes:   notes,
	}
	f.svc = NewExportService(backend, backend, f.store, f.dedup, renderer, notify, zerolog.Nop())
	f.svc.now = func() time.Time { return time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC) }
	f.svc.UseQueue(f.queue)
	return f
}

func TestExportService_RequestAndProcess(t *testing.T) {
	f := newExportFixture(stubRenderer{})
	ctx := sessionCtx(domain.RoleCompanyAdmin)

	job, err := f.svc.Request(ctx, domain.ExportLeads, ports.ListQuery{Interests: "Hot"})
	require.NoError(t, err)
	assert.Equal(t, domain.ExportPending, job.Status)
	require.Len(t, f.queue.tasks, 1)
	task := f.queue.tasks[0]
	assert.Equal(t, "backend-token", task.Session.Token)

	_, _, err = f.svc.Download(ctx, job.ID)
	assert.ErrorIs(t, err, domain.ErrExportNotReady)

	require.NoError(t, f.svc.Process(context.Background(), task))

	got, data, err := f.svc.Download(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("leads"), data)
	assert.Equal(t, domain.ExportDone, got.Status)
	assert.Equal(t, 230, got.Rows)
	assert.Equal(t, "leads-20260203-040506.xlsx", got.FileName)
	assert.Equal(t, "Hot", f.backend.lastQuery.Interests)
	assert.Equal(t, 3, len(f.backend.called()), "230 rows are fetched in three pages")
	assert.Equal(t, []string{
		"info:Your leads export has been queued",
		"info:Your leads export is ready (230 rows)",
	}, f.notes.messages("s1"))

	// The slot is released, so the same export can be requested again.
	_, err = f.svc.Request(ctx, domain.ExportLeads, ports.ListQuery{})
	assert.NoError(t, err)
}

func TestExportService_DuplicateWhilePending(t *testing.T) {
	f := newExportFixture(stubRenderer{})
	ctx := sessionCtx(domain.RoleEmployee)

	_, err := f.svc.Request(ctx, domain.ExportVisitors, ports.ListQuery{})
	require.NoError(t, err)
	_, err = f.svc.Request(ctx, domain.ExportVisitors, ports.ListQuery{})
	assert.ErrorIs(t, err, domain.ErrExportInProgress)
	assert.Len(t, f.queue.tasks, 1)

	// A different resource is independent.
	_, err = f.svc.Request(ctx, domain.ExportLeads, ports.ListQuery{})
	assert.NoError(t, err)
}

func TestExportService_RejectsUnknownResource(t *testing.T) {
	f := newExportFixture(stubRenderer{})
	_, err := f.svc.Request(sessionCtx(domain.RoleEmployee), "companies", ports.ListQuery{})
	assert.ErrorIs(t, err, domain.ErrUnsupportedExport)
}

func TestExportService_EnqueueFailureReleasesSlot(t *testing.T) {
	f := newExportFixture(stubRenderer{})
	f.queue.err = context.DeadlineExceeded
	ctx := sessionCtx(domain.RoleEmployee)

	_, err := f.svc.Request(ctx, domain.ExportLeads, ports.ListQuery{})
	require.Error(t, err)

	f.queue.err = nil
	_, err = f.svc.Request(ctx, domain.ExportLeads, ports.ListQuery{})
	assert.NoError(t, err)
}

func TestExportService_ProcessFailureMarksJob(t *testing.T) {
	f := newExportFixture(stubRenderer{err: errors.New("disk full")})
	ctx := sessionCtx(domain.RoleEmployee)

	job, err := f.svc.Request(ctx, domain.ExportVisitors, ports.ListQuery{})
	require.NoError(t, err)
	require.Error(t, f.svc.Process(context.Background(), f.queue.tasks[0]))

	got, err := f.svc.Job(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportFailed, got.Status)
	assert.Equal(t, "disk full", got.Error)
	assert.Contains(t, f.notes.messages("s1"), "error:Export of visitors failed: disk full")
}

func TestExportService_JobIsPrivate(t *testing.T) {
	f := newExportFixture(stubRenderer{})
	job, err := f.svc.Request(sessionCtx(domain.RoleEmployee), domain.ExportLeads, ports.ListQuery{})
	require.NoError(t, err)

	other := domain.WithSession(context.Background(), &domain.Session{ID: "s2", User: domain.User{ID: "u2"}})
	_, err = f.svc.Job(other, job.ID)
	assert.ErrorIs(t, err, domain.ErrExportNotFound)
}
