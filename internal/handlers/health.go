package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	provider string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(provider string) *HealthHandler {
	return &HealthHandler{provider: provider}
}

// HealthResponse is the response for basic health check
type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider,omitempty"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Provider: h.provider,
	})
}

// RegisterRoutes registers health check routes
func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.Health)
}
