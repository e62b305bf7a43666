// Package watch reruns the build pipeline on a cron schedule or when the
// source files change. It is a local convenience runner; the hosted rebuild
// goes through the external scheduler instead.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	rcron "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces bursts of file events (editors often write a
// file several times in quick succession).
const DefaultDebounce = 500 * time.Millisecond

// Options configures the watch service.
type Options struct {
	Schedule string   // cron expression; empty disables scheduled rebuilds
	Paths    []string // files to watch; empty disables file watching
	Debounce time.Duration
	Logger   *zap.Logger
}

// Service reruns a build function on schedule ticks and file changes.
type Service struct {
	rebuild  func() error
	schedule string
	paths    []string
	debounce time.Duration
	logger   *zap.Logger

	mu sync.Mutex // serializes rebuild runs
}

// NewService creates a watch service around the given rebuild function.
func NewService(rebuild func() error, opts Options) *Service {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		rebuild:  rebuild,
		schedule: opts.Schedule,
		paths:    opts.Paths,
		debounce: debounce,
		logger:   logger,
	}
}

// Start runs the service until the context is cancelled. At least one of a
// schedule or watched paths must be configured.
func (s *Service) Start(ctx context.Context) error {
	if s.schedule == "" && len(s.paths) == 0 {
		return fmt.Errorf("watch: nothing to do (no schedule and no paths)")
	}

	if s.schedule != "" {
		c := rcron.New()
		if _, err := c.AddFunc(s.schedule, s.fire); err != nil {
			return fmt.Errorf("watch: invalid schedule %q: %w", s.schedule, err)
		}
		c.Start()
		defer c.Stop()
		s.logger.Info("scheduled rebuilds enabled", zap.String("schedule", s.schedule))
	}

	if len(s.paths) > 0 {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("watch: failed to create watcher: %w", err)
		}
		defer func() { _ = watcher.Close() }()

		// Watch parent directories: editors typically replace files rather
		// than writing them in place.
		dirs := make(map[string]bool)
		for _, path := range s.paths {
			dirs[filepath.Dir(path)] = true
		}
		for dir := range dirs {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watch: failed to watch %s: %w", dir, err)
			}
		}
		s.logger.Info("file watching enabled", zap.Strings("paths", s.paths))

		go s.eventLoop(ctx, watcher)
	}

	<-ctx.Done()
	return nil
}

// eventLoop reads file events and fires debounced rebuilds.
func (s *Service) eventLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	watched := make(map[string]bool, len(s.paths))
	for _, path := range s.paths {
		watched[filepath.Clean(path)] = true
	}

	timer := time.NewTimer(s.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			s.logger.Debug("source changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			timer.Reset(s.debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("watch error", zap.Error(err))
		case <-timer.C:
			s.fire()
		}
	}
}

// fire runs one rebuild; a failed rebuild leaves the prior output in place
// and the service keeps running.
func (s *Service) fire() {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	if err := s.rebuild(); err != nil {
		s.logger.Error("rebuild failed", zap.Error(err))
		return
	}
	s.logger.Info("rebuild complete", zap.Duration("elapsed", time.Since(start)))
}
