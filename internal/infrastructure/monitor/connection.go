package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pinger is implemented by every record store driver.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PendingReporter reports writes that have not reached storage yet.
type PendingReporter interface {
	Pending() bool
}

type Monitor struct {
	storage Pinger
	driver  string
	pending PendingReporter

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	logger   *zap.Logger
}

func New(storage Pinger, driver string, pending PendingReporter, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		storage:  storage,
		driver:   driver,
		pending:  pending,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
		status:   Status{Driver: driver},
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Storage
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Refresh checks the storage right away and returns the new status.
func (m *Monitor) Refresh() Status {
	status := Status{
		Storage:   m.checkStorage(),
		Driver:    m.driver,
		LastCheck: time.Now(),
	}
	if m.pending != nil {
		status.PendingFlush = m.pending.Pending()
	}

	m.mu.Lock()
	if m.status.Storage && !status.Storage {
		m.logger.Warn("storage went offline", zap.String("driver", m.driver))
	} else if !m.status.Storage && status.Storage && !m.status.LastCheck.IsZero() {
		m.logger.Info("storage back online", zap.String("driver", m.driver))
	}
	m.status = status
	m.mu.Unlock()
	return status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Refresh()
	for {
		select {
		case <-ticker.C:
			m.Refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) checkStorage() bool {
	if m.storage == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := m.storage.Ping(ctx); err != nil {
		m.logger.Debug("storage ping failed", zap.String("driver", m.driver), zap.Error(err))
		return false
	}
	return true
}
