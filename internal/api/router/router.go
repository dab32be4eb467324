package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/mkarpekin/wbwatch/internal/api/handlers/track"
	"github.com/mkarpekin/wbwatch/internal/middlewares"
)

func New(handler *track.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/tracks")
	{
		api.POST("/", handler.Create)
		api.GET("/", handler.List)
		api.GET("/:id", handler.Get)
		api.DELETE("/:id", handler.Delete)
		api.POST("/:id/pause", handler.Pause)
		api.POST("/:id/resume", handler.Resume)
		api.GET("/:id/similar", handler.Similar)
	}

	e.GET("/api/health", handler.Health)

	return e
}
