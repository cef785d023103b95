package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StorageHealth abstracts the storage monitor.
type StorageHealth interface {
	IsOnline() bool
}

// Flushable is a write-through cache whose failed writes can be retried.
type Flushable interface {
	Flush(ctx context.Context) error
	Pending() bool
}

// FlusherConfig controls how often failed writes are retried.
type FlusherConfig struct {
	Interval time.Duration
}

// Flusher periodically retries collections whose last write to storage failed.
type Flusher struct {
	target  Flushable
	monitor StorageHealth
	logger  *zap.Logger
	cron    *cron.Cron
	cfg     FlusherConfig
}

func NewFlusher(target Flushable, monitor StorageHealth, logger *zap.Logger, cfg FlusherConfig) *Flusher {
	if cfg.Interval < time.Second {
		cfg.Interval = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	f := &Flusher{
		target:  target,
		monitor: monitor,
		logger:  logger,
		cfg:     cfg,
		cron:    cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = f.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := f.Run(ctx); err != nil {
			f.logger.Error("flush failed", zap.Error(err))
		}
	})

	return f
}

// Start launches the cron scheduler.
func (f *Flusher) Start() {
	if f == nil || f.cron == nil {
		return
	}
	f.cron.Start()
	f.logger.Info("flusher started", zap.Duration("interval", f.cfg.Interval))
}

// Stop gracefully stops the scheduler.
func (f *Flusher) Stop(ctx context.Context) {
	if f == nil || f.cron == nil {
		return
	}
	stopCtx := f.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	f.logger.Info("flusher stopped")
}

// Run retries pending writes once. It does nothing while storage is offline.
func (f *Flusher) Run(ctx context.Context) error {
	if f == nil || f.target == nil || !f.target.Pending() {
		return nil
	}
	if f.monitor != nil && !f.monitor.IsOnline() {
		f.logger.Debug("skipping flush (storage offline)")
		return nil
	}
	if err := f.target.Flush(ctx); err != nil {
		return err
	}
	f.logger.Info("pending collections flushed")
	return nil
}
