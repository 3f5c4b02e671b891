package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Открытые маршруты: каталог типов и health-check
	api.GET("/incidents/types", h.incidentTypes)
	api.GET("/system/health", h.healthCheck)

	// Остальные маршруты защищены API-ключом
	secured := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	incidents := secured.Group("/incidents")
	{
		incidents.POST("", h.reportIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/nearby", h.nearbyIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/vote", h.voteIncident)
		incidents.PUT("/:id/status", h.updateStatus)
	}

	// Оценка безопасности и тепловая карта
	secured.GET("/safety/score", h.safetyScore)
	secured.GET("/heatmap/data", h.heatmapData)
}
