package driven

import "context"

// URLOpener hands a URL to the system's default handler.
type URLOpener interface {
	// Open opens url. It returns once the handler is launched.
	Open(ctx context.Context, url string) error
}

// Clipboard places text on the system clipboard.
type Clipboard interface {
	// Copy replaces the clipboard contents with text.
	Copy(ctx context.Context, text string) error
}
