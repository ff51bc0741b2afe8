package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/pkg/metrics"
)

// exportPageSize is the page size used to pull a whole collection.
const exportPageSize = 100

// ExportRenderer turns collections into spreadsheet bytes.
type ExportRenderer interface {
	Leads(leads []domain.Lead) ([]byte, error)
	Visitors(visitors []domain.Visitor) ([]byte, error)
}

// ExportService queues spreadsheet exports and runs them on the dispatcher.
type ExportService struct {
	leads    ports.LeadGateway
	visitors ports.VisitorGateway
	store    ports.ExportStore
	dedup    ports.ExportDedup
	renderer ExportRenderer
	notify   *NotificationService
	queue    ports.ExportQueue
	now      func() time.Time
	log      zerolog.Logger
}

func NewExportService(
	leads ports.LeadGateway,
	visitors ports.VisitorGateway,
	store ports.ExportStore,
	dedup ports.ExportDedup,
	renderer ExportRenderer,
	notify *NotificationService,
	log zerolog.Logger,
) *ExportService {
	return &ExportService{
		leads:    leads,
		visitors: visitors,
		store:    store,
		dedup:    dedup,
		renderer: renderer,
		notify:   notify,
		now:      time.Now,
		log:      log,
	}
}

// UseQueue sets the queue jobs are submitted to. The dispatcher needs the
// service as its processor, so the two are joined after construction.
func (s *ExportService) UseQueue(q ports.ExportQueue) {
	s.queue = q
}

// Request queues an export of resource for the session in ctx. An identical
// export still pending for the same session yields ErrExportInProgress.
func (s *ExportService) Request(ctx context.Context, resource domain.ExportResource, q ports.ListQuery) (*domain.ExportJob, error) {
	sess, ok := domain.SessionFromContext(ctx)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if resource != domain.ExportLeads && resource != domain.ExportVisitors {
		return nil, domain.ErrUnsupportedExport
	}
	if s.queue == nil {
		return nil, errors.New("export queue not configured")
	}

	key := dedupKey(sess.ID, resource)
	acquired, err := s.dedup.Acquire(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("acquire export slot: %w", err)
	}
	if !acquired {
		metrics.ExportJobsTotal.WithLabelValues(string(resource), "duplicate").Inc()
		s.notify.Warning(ctx, "An export of "+string(resource)+" is already in progress")
		return nil, domain.ErrExportInProgress
	}

	job := &domain.ExportJob{
		ID:        uuid.NewString(),
		SessionID: sess.ID,
		UserID:    sess.User.ID,
		Resource:  resource,
		Status:    domain.ExportPending,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.SaveJob(ctx, job); err != nil {
		s.release(ctx, key)
		return nil, fmt.Errorf("save export job: %w", err)
	}

	snapshot := *sess
	task := ports.ExportTask{JobID: job.ID, Session: &snapshot, Resource: resource, Query: q}
	if err := s.queue.Enqueue(ctx, task); err != nil {
		s.release(ctx, key)
		return nil, fmt.Errorf("enqueue export job: %w", err)
	}

	s.log.Info().Str("job_id", job.ID).Str("resource", string(resource)).Str("user_id", sess.User.ID).Msg("export queued")
	s.notify.Info(ctx, "Your "+string(resource)+" export has been queued")
	return job, nil
}

// Process runs one export task. It implements ports.ExportProcessor.
func (s *ExportService) Process(ctx context.Context, task ports.ExportTask) error {
	if task.Session == nil {
		return domain.ErrSessionNotFound
	}
	ctx = domain.WithSession(ctx, task.Session)
	defer s.release(ctx, dedupKey(task.Session.ID, task.Resource))

	job, err := s.store.GetJob(ctx, task.JobID)
	if err != nil {
		return fmt.Errorf("load export job: %w", err)
	}
	job.Status = domain.ExportRunning
	if err := s.store.SaveJob(ctx, job); err != nil {
		return fmt.Errorf("save export job: %w", err)
	}

	rows, data, err := s.render(ctx, task)
	if err == nil {
		err = s.store.SaveFile(ctx, job.ID, data)
	}

	finished := s.now().UTC()
	job.FinishedAt = &finished
	if err != nil {
		job.Status = domain.ExportFailed
		job.Error = domain.UserMessage(err)
		if saveErr := s.store.SaveJob(ctx, job); saveErr != nil {
			s.log.Error().Err(saveErr).Str("job_id", job.ID).Msg("failed to record export failure")
		}
		metrics.ExportJobsTotal.WithLabelValues(string(task.Resource), "failed").Inc()
		if notifiable(err) {
			s.notify.Error(ctx, "Export of "+string(task.Resource)+" failed: "+job.Error)
		}
		return err
	}

	job.Status = domain.ExportDone
	job.Rows = rows
	job.FileName = fmt.Sprintf("%s-%s.xlsx", task.Resource, finished.Format("20060102-150405"))
	if err := s.store.SaveJob(ctx, job); err != nil {
		return fmt.Errorf("save export job: %w", err)
	}

	metrics.ExportJobsTotal.WithLabelValues(string(task.Resource), "done").Inc()
	s.log.Info().Str("job_id", job.ID).Int("rows", rows).Msg("export finished")
	s.notify.Info(ctx, fmt.Sprintf("Your %s export is ready (%d rows)", task.Resource, rows))
	return nil
}

func (s *ExportService) render(ctx context.Context, task ports.ExportTask) (int, []byte, error) {
	switch task.Resource {
	case domain.ExportLeads:
		leads, err := collect(ctx, task.Query, s.leads.ListLeads)
		if err != nil {
			return 0, nil, err
		}
		data, err := s.renderer.Leads(leads)
		return len(leads), data, err
	case domain.ExportVisitors:
		visitors, err := collect(ctx, task.Query, s.visitors.ListVisitors)
		if err != nil {
			return 0, nil, err
		}
		data, err := s.renderer.Visitors(visitors)
		return len(visitors), data, err
	}
	return 0, nil, domain.ErrUnsupportedExport
}

// collect pages through a list endpoint until every item is fetched.
func collect[T any](ctx context.Context, q ports.ListQuery, list func(context.Context, ports.ListQuery) (*ports.Page[T], error)) ([]T, error) {
	q.Page, q.Limit = 1, exportPageSize
	var out []T
	for {
		page, err := list(ctx, q)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
		if len(page.Items) == 0 || q.Page >= page.TotalPages {
			return out, nil
		}
		q.Page++
	}
}

// Job returns an export owned by the session in ctx.
func (s *ExportService) Job(ctx context.Context, id string) (*domain.ExportJob, error) {
	sess, ok := domain.SessionFromContext(ctx)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	job, err := s.store.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.UserID != sess.User.ID {
		return nil, domain.ErrExportNotFound
	}
	return job, nil
}

// Download returns a finished export and its file.
func (s *ExportService) Download(ctx context.Context, id string) (*domain.ExportJob, []byte, error) {
	job, err := s.Job(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if job.Status != domain.ExportDone {
		return job, nil, domain.ErrExportNotReady
	}
	data, err := s.store.GetFile(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return job, data, nil
}

func (s *ExportService) release(ctx context.Context, key string) {
	if err := s.dedup.Release(context.WithoutCancel(ctx), key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to release export slot")
	}
}

func dedupKey(sessionID string, resource domain.ExportResource) string {
	return "export:" + sessionID + ":" + string(resource)
}
