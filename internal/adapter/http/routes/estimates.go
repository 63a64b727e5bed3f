package routes

import (
	"estimate_editor/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathLines     = PathEstimates + "/:estimate_id/lines"
	PathSession   = "/session"
)

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", h.CreateEstimate)
		estimates.GET("", h.FindEstimate)
		estimates.GET("/:estimate_id", h.GetEstimate)
		estimates.PATCH("/:estimate_id/rates", h.UpdateRates)
		estimates.GET("/:estimate_id/totals", h.ComputeTotals)
	}
}

// addLineRoutes exposes the line service consumed by editing sessions.
func addLineRoutes(rg *gin.RouterGroup, h *handlers.LineHandler) {
	lines := rg.Group(PathLines)
	{
		lines.GET("", h.ListLines)
		lines.POST("", h.CreateLine)
		lines.POST("/bulk", h.BulkUpdate)
		lines.PATCH("/:line_id", h.UpdateLine)
		lines.DELETE("/:line_id", h.DeleteLine)
	}
}

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.SessionHandler) {
	session := rg.Group(PathSession)
	{
		session.POST("", h.Activate)
		session.GET("", h.GetSession)
		session.DELETE("", h.Close)
		session.POST("/lines", h.AddLine)
		session.DELETE("/lines/:line_id", h.RemoveLine)
		session.GET("/lines/:line_id/status", h.LineStatus)
		session.PUT("/lines/:line_id/fields/:field", h.SetField)
		session.POST("/focus", h.Focus)
		session.DELETE("/focus", h.Blur)
		session.POST("/discard", h.DiscardChanges)
		session.POST("/retry", h.Retry)
		session.POST("/flush", h.Flush)
		session.POST("/refresh", h.Refresh)
		session.GET("/notifications", h.Notifications)
	}
}
