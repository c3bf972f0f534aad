package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/internal/config"
)

type countingSweeper struct {
	mu      sync.Mutex
	calls   int
	removed int
	block   chan struct{}
}

func (c *countingSweeper) SweepDownloadTokens() int {
	if c.block != nil {
		<-c.block
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.removed
}

func (c *countingSweeper) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func newSweepConfig(enabled bool) *config.Config {
	return &config.Config{
		DownloadTokenSweep: config.DownloadTokenSweep{
			CronSchedule: "*/10 * * * *",
			Enabled:      enabled,
		},
	}
}

func TestDownloadTokenSweepService_Sweep(t *testing.T) {
	sweeper := &countingSweeper{removed: 4}
	service := NewDownloadTokenSweepService(sweeper, newSweepConfig(true))

	service.Sweep()

	assert.Equal(t, 1, sweeper.Calls())
	status := service.GetStatus()
	assert.Equal(t, 4, status["last_sweep_removed"])
	assert.Equal(t, false, status["sweep_running"])
	assert.False(t, status["last_sweep_completed_at"].(time.Time).IsZero())
}

func TestDownloadTokenSweepService_SkipsOverlappingRuns(t *testing.T) {
	sweeper := &countingSweeper{block: make(chan struct{})}
	service := NewDownloadTokenSweepService(sweeper, newSweepConfig(true))

	done := make(chan struct{})
	go func() {
		service.Sweep()
		close(done)
	}()

	require.Eventually(t, func() bool {
		return service.GetStatus()["sweep_running"] == true
	}, time.Second, 5*time.Millisecond)

	// returns immediately while the first pass is blocked
	service.Sweep()

	close(sweeper.block)
	<-done

	assert.Equal(t, 1, sweeper.Calls())
}

func TestDownloadTokenSweepService_Start(t *testing.T) {
	t.Run("disabled does not schedule", func(t *testing.T) {
		service := NewDownloadTokenSweepService(&countingSweeper{}, newSweepConfig(false))

		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("invalid cron expression", func(t *testing.T) {
		cfg := newSweepConfig(true)
		cfg.DownloadTokenSweep.CronSchedule = "every now and then"
		service := NewDownloadTokenSweepService(&countingSweeper{}, cfg)

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("schedules the sweep and stops with the context", func(t *testing.T) {
		service := NewDownloadTokenSweepService(&countingSweeper{}, newSweepConfig(true))
		ctx, cancel := context.WithCancel(context.Background())

		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)
		assert.True(t, service.scheduler.IsRunning())

		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 5*time.Millisecond)
	})
}

func TestDownloadTokenSweepService_TriggerManualSweep(t *testing.T) {
	sweeper := &countingSweeper{}
	service := NewDownloadTokenSweepService(sweeper, newSweepConfig(false))

	service.TriggerManualSweep()

	assert.Eventually(t, func() bool { return sweeper.Calls() == 1 }, time.Second, 5*time.Millisecond)
}
