package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/parables-of-the-word-api/internal/catalog"
	"github.com/parables-of-the-word-api/internal/middleware"
	"github.com/parables-of-the-word-api/internal/services"
)

// InsightHandler handles AI commentary endpoints
type InsightHandler struct {
	catalog  *catalog.Catalog
	insights *services.InsightService
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(c *catalog.Catalog, insights *services.InsightService) *InsightHandler {
	return &InsightHandler{
		catalog:  c,
		insights: insights,
	}
}

// Insights handles POST /parables/:id/insights
func (h *InsightHandler) Insights(c echo.Context) error {
	parable, err := lookupParable(h.catalog, c)
	if err != nil {
		return err
	}

	viewer := c.Request().Header.Get(middleware.ViewerHeader)
	insights, err := h.insights.FetchInsightsFor(c.Request().Context(), viewer, parable)
	if err != nil {
		return modelError(err)
	}
	return c.JSON(http.StatusOK, insights)
}

// RegisterRoutes registers insight routes
func (h *InsightHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/parables/:id/insights", h.Insights)
}

// modelError maps a model failure to an HTTP error
func modelError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, services.ErrSuperseded):
		return echo.NewHTTPError(http.StatusConflict, "Request superseded by a newer selection")
	case errors.Is(err, context.DeadlineExceeded):
		return echo.NewHTTPError(http.StatusGatewayTimeout, "Model request timed out")
	case errors.Is(err, context.Canceled):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Request cancelled")
	case errors.Is(err, services.ErrEmptyResponse),
		errors.Is(err, services.ErrMalformedResponse),
		errors.Is(err, services.ErrIncompleteResponse):
		return echo.NewHTTPError(http.StatusBadGateway, "Model returned an invalid response: "+err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadGateway, "Model request failed: "+err.Error())
	}
}
