package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
)

const defaultExportTTL = time.Hour

// ExportStore keeps export jobs and their rendered files.
// Key format: export:job:<id>, export:file:<id>
type ExportStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewExportStore(client *redis.Client, ttl time.Duration) *ExportStore {
	if ttl <= 0 {
		ttl = defaultExportTTL
	}
	return &ExportStore{client: client, ttl: ttl}
}

// jobRecord includes the session id, which the public JSON of ExportJob hides.
type jobRecord struct {
	domain.ExportJob
	SessionID string `json:"session_id"`
}

func (s *ExportStore) SaveJob(ctx context.Context, job *domain.ExportJob) error {
	b, err := json.Marshal(jobRecord{ExportJob: *job, SessionID: job.SessionID})
	if err != nil {
		return fmt.Errorf("encode export job: %w", err)
	}
	if err := s.client.Set(ctx, "export:job:"+job.ID, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("save export job: %w", err)
	}
	return nil
}

func (s *ExportStore) GetJob(ctx context.Context, id string) (*domain.ExportJob, error) {
	b, err := s.client.Get(ctx, "export:job:"+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrExportNotFound
		}
		return nil, fmt.Errorf("get export job: %w", err)
	}

	var rec jobRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode export job: %w", err)
	}
	job := rec.ExportJob
	job.SessionID = rec.SessionID
	return &job, nil
}

func (s *ExportStore) SaveFile(ctx context.Context, id string, data []byte) error {
	if err := s.client.Set(ctx, "export:file:"+id, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save export file: %w", err)
	}
	return nil
}

func (s *ExportStore) GetFile(ctx context.Context, id string) ([]byte, error) {
	b, err := s.client.Get(ctx, "export:file:"+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrExportNotFound
		}
		return nil, fmt.Errorf("get export file: %w", err)
	}
	return b, nil
}
