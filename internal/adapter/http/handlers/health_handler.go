package handlers

import (
	"net/http"

	response "fmrental_prestige/internal/adapter/http/dto/response"
	"fmrental_prestige/internal/usecase"

	"github.com/gin-gonic/gin"
)

const rootMessage = "FMRENTALPRESTIGE Backend attivo"

type HealthHandler struct {
	diagnostics usecase.IDiagnosticsUseCase
}

func NewHealthHandler(uc usecase.IDiagnosticsUseCase) *HealthHandler {
	return &HealthHandler{diagnostics: uc}
}

// Root godoc
// @Summary  Service banner
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.MessageResponse
// @Router   / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: rootMessage})
}

// Diagnostics godoc
// @Summary  Document store diagnostics
// @Tags     health
// @Produce  json
// @Success  200  {object}  usecase.DiagnosticsReport
// @Router   /test [get]
func (h *HealthHandler) Diagnostics(c *gin.Context) {
	c.JSON(http.StatusOK, h.diagnostics.Report(c.Request.Context()))
}

// Ping godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.MessageResponse
// @Router   /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: "pong"})
}
