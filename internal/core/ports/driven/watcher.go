package driven

import "context"

// AudioWatcher reports audio files created in a directory.
type AudioWatcher interface {
	// Watch sends the path of every new audio file in dir to the returned
	// channel until ctx is cancelled. The channel is closed on return.
	Watch(ctx context.Context, dir string) (<-chan string, <-chan error, error)
}
