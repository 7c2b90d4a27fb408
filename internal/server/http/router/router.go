package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/zathu/shopscrape/internal/config"
	"github.com/zathu/shopscrape/internal/server/http/handlers"
	"github.com/zathu/shopscrape/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS(cfg.AllowedOrigins))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	scrapeHandler := handlers.NewScrapeHandler(facade)
	rateHandler := handlers.NewRateHandler(facade)
	accountHandler := handlers.NewAccountHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")
	api.POST("/scrape", scrapeHandler.Scrape)
	api.POST("/updateRate", rateHandler.Update)
	api.GET("/rate", rateHandler.Current)
	api.GET("/users", accountHandler.List)
	api.POST("/updatePayment", accountHandler.UpdatePayment)
	api.POST("/updateTracking", accountHandler.UpdateTracking)
	api.POST("/saveOrder", orderHandler.Save)
	api.GET("/orderHistory/:phone", orderHandler.History)

	return engine
}
