package renderer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/zathu/shopscrape/internal/config"
)

// Module exposes the page-rendering engine to the fx graph.
var Module = fx.Provide(newEngine)

type engineParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newEngine(p engineParams) Engine {
	return NewChromeEngine(p.Config.ChromeHeadless, p.Config.RenderTimeout, p.Config.RenderSettle, p.Logger)
}
