package driving

import (
	"context"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

// WatchEvent reports the outcome of one file processed in watch mode.
type WatchEvent struct {
	// Path is the file that was uploaded.
	Path string

	// Meeting is set on success.
	Meeting *domain.Meeting

	// Err is set on failure.
	Err error
}

// WatchService uploads audio files as they appear in a directory.
type WatchService interface {
	// Watch blocks until ctx is cancelled, calling report for every file.
	Watch(ctx context.Context, dir string, report func(WatchEvent)) error
}
