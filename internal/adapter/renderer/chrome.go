package renderer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"
)

// ChromeEngine renders pages with a headless Chrome driven over the DevTools
// protocol. Every session gets its own browser process so that a crashed or
// hung page cannot poison later scrape calls.
type ChromeEngine struct {
	headless bool
	timeout  time.Duration
	settle   time.Duration
	logger   *slog.Logger
}

// NewChromeEngine constructs the engine. timeout bounds a single page render,
// settle is the extra wait after navigation for scripts to fill the DOM.
func NewChromeEngine(headless bool, timeout, settle time.Duration, logger *slog.Logger) *ChromeEngine {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromeEngine{headless: headless, timeout: timeout, settle: settle, logger: logger}
}

type chromeSession struct {
	engine *ChromeEngine
	tabCtx context.Context
	cancel context.CancelFunc
}

// NewSession launches a browser and opens a single tab.
func (e *ChromeEngine) NewSession(ctx context.Context) (Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", e.headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		chromedp.WindowSize(1280, 900),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelTab()
		cancelAlloc()
	}

	// Start the browser eagerly so a broken Chrome install fails the scrape
	// call up front instead of on the first navigation.
	if err := chromedp.Run(tabCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	return &chromeSession{engine: e, tabCtx: tabCtx, cancel: cancel}, nil
}

// HTML navigates the tab and returns the rendered document markup.
func (s *chromeSession) HTML(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	runCtx, cancel := context.WithTimeout(s.tabCtx, s.engine.timeout)
	defer cancel()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(s.engine.settle),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", url, err)
	}
	return html, nil
}

func (s *chromeSession) Close() {
	s.cancel()
}
