package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"balbuss.rs/internal/models"
)

// Manager owns the fetched line catalog and hands out immutable
// snapshots of it. A snapshot is valid for the duration of one
// derive/resolve/filter pass; callers re-request it on the next
// interaction instead of holding on to it.
type Manager struct {
	source      string
	isLocalFile bool
	config      Config
	logger      *slog.Logger

	mu          sync.RWMutex
	lines       []models.Line
	lastUpdated time.Time

	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitManager fetches the catalog once from the configured source and
// starts periodic refresh when the source is a URL. A failed initial
// fetch is returned as ErrUnavailable; the caller decides whether to
// keep serving (the manager will keep retrying on its refresh schedule).
func InitManager(config Config, logger *slog.Logger) (*Manager, error) {
	isLocalFile := isLocalSource(config.LinesURL)

	manager := &Manager{
		source:       config.LinesURL,
		isLocalFile:  isLocalFile,
		config:       config,
		logger:       logger,
		shutdownChan: make(chan struct{}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.fetchTimeout())
	defer cancel()
	err := manager.Refresh(ctx)

	if !isLocalFile {
		manager.wg.Add(1)
		go manager.refreshPeriodically()
	}

	return manager, err
}

// Refresh fetches the catalog and replaces the snapshot. On failure the
// previous snapshot, if any, is kept.
func (manager *Manager) Refresh(ctx context.Context) error {
	lines, err := loadCatalog(ctx, manager.source, manager.isLocalFile)
	if err != nil {
		return err
	}

	manager.mu.Lock()
	manager.lines = lines
	manager.lastUpdated = time.Now()
	manager.mu.Unlock()

	if manager.config.Verbose {
		manager.logger.Info("catalog refreshed",
			slog.String("source", manager.source),
			slog.Int("lines", len(lines)))
	}
	return nil
}

func (manager *Manager) refreshPeriodically() {
	defer manager.wg.Done()

	ticker := time.NewTicker(manager.config.refreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), manager.config.fetchTimeout())
			err := manager.Refresh(ctx)
			cancel()
			if err != nil {
				// Keep serving the previous snapshot.
				manager.logger.Error("catalog refresh failed", "error", err)
			}
		case <-manager.shutdownChan:
			manager.logger.Info("stopping catalog refresh")
			return
		}
	}
}

// Shutdown stops the background refresh goroutine and waits for it.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
	})
}

// Snapshot returns the current catalog. It returns ErrUnavailable until
// the first successful fetch.
func (manager *Manager) Snapshot() ([]models.Line, error) {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	if manager.lines == nil {
		return nil, fmt.Errorf("%w: no snapshot fetched yet", ErrUnavailable)
	}
	return manager.lines, nil
}

// LastUpdated reports when the current snapshot was fetched; the zero
// time means no fetch has succeeded.
func (manager *Manager) LastUpdated() time.Time {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.lastUpdated
}

// LineByID finds a line in the current snapshot.
func (manager *Manager) LineByID(id int) (models.Line, bool, error) {
	lines, err := manager.Snapshot()
	if err != nil {
		return models.Line{}, false, err
	}
	for _, line := range lines {
		if line.ID == id {
			return line, true, nil
		}
	}
	return models.Line{}, false, nil
}
