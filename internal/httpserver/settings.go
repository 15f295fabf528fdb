package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"coffee-order-bot/internal/repository/settings"
)

type updateSettingsRequest struct {
	BotActive           *bool `json:"botActive"`
	OnlinePaymentActive *bool `json:"onlinePaymentActive"`
}

func getSettingsHandler(logger *log.Logger, repo settings.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := repo.GetSettings(c.Request.Context())
		if err != nil {
			logger.Printf("get settings: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func updateSettingsHandler(logger *log.Logger, repo settings.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateSettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.BotActive == nil && req.OnlinePaymentActive == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		s, err := repo.UpdateSettings(c.Request.Context(), settings.UpdateInput{
			BotActive:           req.BotActive,
			OnlinePaymentActive: req.OnlinePaymentActive,
		})
		if err != nil {
			logger.Printf("update settings: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, s)
	}
}
