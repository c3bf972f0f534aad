// Package scheduler runs the background jobs of the service
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/internal/config"
)

// TokenSweeper forgets burned download tokens once they expire
type TokenSweeper interface {
	SweepDownloadTokens() int
}

type DownloadTokenSweepConfig struct {
	CronSchedule string
	Enabled      bool
}

type DownloadTokenSweepService struct {
	scheduler            *gocron.Scheduler
	sweeper              TokenSweeper
	config               DownloadTokenSweepConfig
	sweepRunning         bool
	syncMutex            sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
	lastSweepRemoved     int
}

func NewDownloadTokenSweepService(sweeper TokenSweeper, cfg *config.Config) *DownloadTokenSweepService {
	sweepConfig := DownloadTokenSweepConfig{
		CronSchedule: cfg.DownloadTokenSweep.CronSchedule,
		Enabled:      cfg.DownloadTokenSweep.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
	}).Info("scheduler: download token sweep configuration loaded")

	return &DownloadTokenSweepService{
		scheduler: gocron.NewScheduler(time.Local),
		sweeper:   sweeper,
		config:    sweepConfig,
	}
}

func (s *DownloadTokenSweepService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("scheduler: download token sweep disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: starting download token sweep")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.Sweep)
	if err != nil {
		return fmt.Errorf("scheduling download token sweep: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping download token sweep")
		s.scheduler.Stop()
	}()

	return nil
}

// Sweep runs one pass, skipping it when another pass is still running
func (s *DownloadTokenSweepService) Sweep() {
	s.syncMutex.Lock()
	if s.sweepRunning {
		s.syncMutex.Unlock()
		logrus.Warn("scheduler: download token sweep already running")
		return
	}
	s.sweepRunning = true
	s.lastSweepStartedAt = time.Now()
	s.syncMutex.Unlock()

	removed := s.sweeper.SweepDownloadTokens()

	s.syncMutex.Lock()
	s.sweepRunning = false
	s.lastSweepCompletedAt = time.Now()
	s.lastSweepRemoved = removed
	s.syncMutex.Unlock()

	logrus.WithField("removed", removed).Debug("scheduler: download token sweep completed")
}

// TriggerManualSweep runs a pass in the background
func (s *DownloadTokenSweepService) TriggerManualSweep() {
	logrus.Info("scheduler: manual download token sweep requested")
	go s.Sweep()
}

func (s *DownloadTokenSweepService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sweep_enabled":           s.config.Enabled,
		"sweep_cron":              s.config.CronSchedule,
		"sweep_running":           s.sweepRunning,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
		"last_sweep_removed":      s.lastSweepRemoved,
	}
}
