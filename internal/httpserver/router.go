package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"coffee-order-bot/internal/repository/settings"
)

// buildRouter wires routes for the admin API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, repo settings.Repository) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/settings", getSettingsHandler(logger, repo))
		api.PATCH("/settings", updateSettingsHandler(logger, repo))
	}

	return router
}
