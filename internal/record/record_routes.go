package record

import (
	"record-viewer/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RouteConfig struct {
	UploadRatePerSec float64
	UploadRateBurst  int
}

func RegisterRoutes(
	router *gin.Engine,
	handler *Handler,
	cfg RouteConfig,
) {
	// HTML page and its form actions
	router.GET("/", handler.Page)
	router.POST("/search", handler.Search)
	router.POST("/upload",
		middleware.RateLimitByIP(rate.Limit(cfg.UploadRatePerSec), cfg.UploadRateBurst),
		handler.UploadForm,
	)

	api := router.Group("/api/v1")
	{
		api.GET("/records", handler.List)
		api.GET("/records/export", handler.Export)
		api.POST("/records/refresh", handler.Refresh)
		api.POST("/upload",
			middleware.RateLimitByIP(rate.Limit(cfg.UploadRatePerSec), cfg.UploadRateBurst),
			handler.Upload,
		)
	}
}
