package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/parables-of-the-word-api/internal/browse"
	"github.com/parables-of-the-word-api/internal/catalog"
	"github.com/parables-of-the-word-api/internal/models"
)

// ParableHandler handles catalog browsing endpoints
type ParableHandler struct {
	catalog *catalog.Catalog
}

// NewParableHandler creates a new parable handler
func NewParableHandler(c *catalog.Catalog) *ParableHandler {
	return &ParableHandler{catalog: c}
}

// List handles GET /parables - search, filter and select
func (h *ParableHandler) List(c echo.Context) error {
	gospel := c.QueryParam("gospel")
	if gospel == "" {
		gospel = browse.AllGospels
	}

	engine := browse.NewEngine(h.catalog)
	engine.SetQuery(c.QueryParam("q"))
	engine.SetGospelFilter(gospel)
	if selected := c.QueryParam("selected"); selected != "" {
		engine.Select(selected)
	}

	results := engine.VisibleRecords()
	state := engine.State()
	return c.JSON(http.StatusOK, models.ParableListResponse{
		Query:    state.Query,
		Gospel:   state.Gospel,
		Count:    len(results),
		Results:  results,
		Selected: engine.SelectedRecord(),
	})
}

// Gospels handles GET /parables/gospels - the available filter values
func (h *ParableHandler) Gospels(c echo.Context) error {
	return c.JSON(http.StatusOK, append([]string{browse.AllGospels}, h.catalog.Gospels()...))
}

// Get handles GET /parables/:id
func (h *ParableHandler) Get(c echo.Context) error {
	parable, err := lookupParable(h.catalog, c)
	if err != nil {
		return err
	}

	prev, next := h.catalog.Neighbors(parable.ID)
	return c.JSON(http.StatusOK, models.ParableDetailResponse{
		Parable:  parable,
		Previous: prev,
		Next:     next,
	})
}

// RegisterRoutes registers parable routes
func (h *ParableHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/parables", h.List)
	g.GET("/parables/gospels", h.Gospels)
	g.GET("/parables/:id", h.Get)
}

func lookupParable(c *catalog.Catalog, ctx echo.Context) (models.Parable, error) {
	parable, ok := c.Get(ctx.Param("id"))
	if !ok {
		return models.Parable{}, echo.NewHTTPError(http.StatusNotFound, "Parable not found")
	}
	return parable, nil
}
