package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/minutes/internal/core/domain"
	"github.com/custodia-labs/minutes/internal/core/ports/driven"
	"github.com/custodia-labs/minutes/internal/core/ports/driving"
	"github.com/custodia-labs/minutes/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// WatchService uploads audio files as they appear in a directory.
type WatchService struct {
	meetings      driving.MeetingService
	watcher       driven.AudioWatcher
	maxConcurrent int
}

// NewWatchService creates a watch service that runs at most maxConcurrent
// uploads at once. Values below 1 mean 1.
func NewWatchService(meetings driving.MeetingService, watcher driven.AudioWatcher, maxConcurrent int) *WatchService {
	if maxConcurrent < 1 {
		maxConcurrent = domain.DefaultWatchConcurrency
	}
	return &WatchService{
		meetings:      meetings,
		watcher:       watcher,
		maxConcurrent: maxConcurrent,
	}
}

// Watch blocks until ctx is cancelled or the watcher stops, calling report
// once per detected file. Calls to report never overlap. In-flight uploads
// are waited for before Watch returns.
func (s *WatchService) Watch(ctx context.Context, dir string, report func(driving.WatchEvent)) error {
	paths, errs, err := s.watcher.Watch(ctx, dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Info("Watching %s (max concurrent: %d)", dir, s.maxConcurrent)

	var (
		wg        sync.WaitGroup
		reportMu  sync.Mutex
		semaphore = make(chan struct{}, s.maxConcurrent)
	)
	defer wg.Wait()

	emit := func(event driving.WatchEvent) {
		if report == nil {
			return
		}
		reportMu.Lock()
		defer reportMu.Unlock()
		report(event)
	}

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Watch stopping, waiting for in-flight uploads")
			return nil

		case path, ok := <-paths:
			if !ok {
				return nil
			}
			logger.Debug("New audio file: %s", path)

			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				return nil
			}

			wg.Add(1)
			go func(path string) {
				defer wg.Done()
				defer func() { <-semaphore }()
				emit(s.process(ctx, path))
			}(path)

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

func (s *WatchService) process(ctx context.Context, path string) driving.WatchEvent {
	event := driving.WatchEvent{Path: path}

	selection, err := domain.NewUploadSelection(path)
	if err != nil {
		event.Err = err
		return event
	}

	event.Meeting, event.Err = s.meetings.Process(ctx, selection)
	return event
}
