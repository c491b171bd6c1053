package routes

import (
	"skip_selector/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSkipSessions = "/skip-sessions"
)

func addSkipSessionRoutes(rg *gin.RouterGroup, h *handlers.SkipSessionHandler) {
	sessions := rg.Group(PathSkipSessions)
	{
		sessions.POST("", h.StartSession)
		sessions.GET("/:session_id", h.GetSession)
		sessions.DELETE("/:session_id", h.EndSession)
		sessions.POST("/:session_id/retry", h.Retry)

		// Page controls.
		sessions.PUT("/:session_id/price-filter", h.ApplyPriceFilter)
		sessions.DELETE("/:session_id/price-filter", h.ClearPriceFilter)
		sessions.POST("/:session_id/tax-mode/toggle", h.ToggleTaxMode)
		sessions.PUT("/:session_id/selection", h.SelectOffering)
	}
}
