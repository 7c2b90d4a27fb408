package renderer

import "context"

// Engine opens page-rendering sessions. A session is exclusively owned by the
// scrape call that opened it and must be closed on every exit path.
type Engine interface {
	NewSession(ctx context.Context) (Session, error)
}

// Session drives one browser tab. Not safe for concurrent use; callers that
// fetch pages in parallel open one session per worker.
type Session interface {
	// HTML navigates to url, waits for the page to settle and returns the
	// rendered markup.
	HTML(ctx context.Context, url string) (string, error)
	Close()
}
