package test

import (
	"context"
	"fmt"
	"sync"

	"github.com/zathu/shopscrape/internal/adapter/renderer"
)

// RenderedPage scripts the outcome of rendering one URL.
type RenderedPage struct {
	HTML string
	Err  error
}

// EngineStub is a scripted page-rendering engine that counts opened and
// closed sessions so tests can assert resource release.
type EngineStub struct {
	Pages    map[string]RenderedPage
	FailOpen error

	mu     sync.Mutex
	opened int
	closed int
}

// NewSession returns a scripted session or the configured open failure.
func (e *EngineStub) NewSession(ctx context.Context) (renderer.Session, error) {
	if e.FailOpen != nil {
		return nil, e.FailOpen
	}
	e.mu.Lock()
	e.opened++
	e.mu.Unlock()
	return &sessionStub{engine: e}, nil
}

// Opened reports how many sessions were handed out.
func (e *EngineStub) Opened() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opened
}

// Leaked reports sessions opened but never closed.
func (e *EngineStub) Leaked() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opened - e.closed
}

type sessionStub struct {
	engine *EngineStub
}

func (s *sessionStub) HTML(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	page, ok := s.engine.Pages[url]
	if !ok {
		return "", fmt.Errorf("no page scripted for %s", url)
	}
	if page.Err != nil {
		return "", page.Err
	}
	return page.HTML, nil
}

func (s *sessionStub) Close() {
	s.engine.mu.Lock()
	s.engine.closed++
	s.engine.mu.Unlock()
}
