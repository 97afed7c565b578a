package routes

import (
	"fmrental_prestige/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addHealthRoutes(router *gin.Engine, h *handlers.HealthHandler) {
	router.GET("/", h.Root)
	router.GET("/test", h.Diagnostics)
	router.GET("/ping", h.Ping)
}
