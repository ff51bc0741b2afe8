package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

type recordingProcessor struct {
	mu   sync.Mutex
	seen map[string][]string
	wg   sync.WaitGroup
	fail bool
}

func (p *recordingProcessor) Process(_ context.Context, task ports.ExportTask) error {
	defer p.wg.Done()
	p.mu.Lock()
	p.seen[task.Session.ID] = append(p.seen[task.Session.ID], task.JobID)
	p.mu.Unlock()
	if p.fail {
		return errors.New("render failed")
	}
	return nil
}

func task(sid, job string) ports.ExportTask {
	return ports.ExportTask{JobID: job, Session: &domain.Session{ID: sid}, Resource: domain.ExportLeads}
}

func TestDispatcher_PerSessionOrder(t *testing.T) {
	p := &recordingProcessor{seen: map[string][]string{}}
	d := NewDispatcher(3, p, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	p.wg.Add(6)
	for _, tk := range []ports.ExportTask{
		task("s1", "a"), task("s2", "x"), task("s1", "b"),
		task("s2", "y"), task("s1", "c"), task("s2", "z"),
	} {
		require.NoError(t, d.Enqueue(ctx, tk))
	}
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	assert.Equal(t, []string{"a", "b", "c"}, p.seen["s1"])
	assert.Equal(t, []string{"x", "y", "z"}, p.seen["s2"])
}

func TestDispatcher_ProcessorErrorKeepsWorkerAlive(t *testing.T) {
	p := &recordingProcessor{seen: map[string][]string{}, fail: true}
	d := NewDispatcher(1, p, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	p.wg.Add(2)
	require.NoError(t, d.Enqueue(ctx, task("s1", "a")))
	require.NoError(t, d.Enqueue(ctx, task("s1", "b")))
	p.wg.Wait()
	assert.Len(t, p.seen["s1"], 2)
}

func TestDispatcher_EnqueueHonoursContext(t *testing.T) {
	// Never started: the single buffer fills and Enqueue must give up.
	d := NewDispatcher(1, &recordingProcessor{}, zerolog.Nop())
	ctx := context.Background()
	for i := 0; i < channelBuffer; i++ {
		require.NoError(t, d.Enqueue(ctx, task("s1", "j")))
	}

	short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Enqueue(short, task("s1", "overflow")), context.DeadlineExceeded)
}

func TestShardIndex_Stable(t *testing.T) {
	d := NewDispatcher(8, &recordingProcessor{}, zerolog.Nop())
	assert.Equal(t, d.shardIndex("session-42"), d.shardIndex("session-42"))
	assert.Equal(t, "job-1", shardKey(ports.ExportTask{JobID: "job-1"}))
}
