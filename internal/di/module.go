package di

import (
	"go.uber.org/fx"

	"github.com/zathu/shopscrape/internal/adapter/renderer"
	"github.com/zathu/shopscrape/internal/app"
	"github.com/zathu/shopscrape/internal/config"
	"github.com/zathu/shopscrape/internal/logger"
	"github.com/zathu/shopscrape/internal/server/http/handlers"
	"github.com/zathu/shopscrape/internal/server/http/router"
	"github.com/zathu/shopscrape/internal/storage/postgres"
	"github.com/zathu/shopscrape/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		renderer.Module,
		usecase.Module,
		fx.Provide(func(f *app.ShopFacade) handlers.ShopFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
