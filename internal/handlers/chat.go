package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/parables-of-the-word-api/internal/catalog"
	"github.com/parables-of-the-word-api/internal/models"
	"github.com/parables-of-the-word-api/internal/services"
)

// ChatHandler handles conversations about a parable
type ChatHandler struct {
	catalog *catalog.Catalog
	chat    *services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(c *catalog.Catalog, chat *services.ChatService) *ChatHandler {
	return &ChatHandler{
		catalog: c,
		chat:    chat,
	}
}

// Chat handles POST /parables/:id/chat. The caller sends back the session it
// received last time; a session for another parable starts over.
func (h *ChatHandler) Chat(c echo.Context) error {
	parable, err := lookupParable(h.catalog, c)
	if err != nil {
		return err
	}

	var req models.ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if strings.TrimSpace(req.Message) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Message is required")
	}

	session := h.chat.Resume(parable, req.Session)
	reply, err := h.chat.SendMessage(c.Request().Context(), session, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTranscript) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return modelError(err)
	}

	return c.JSON(http.StatusOK, models.ChatResponse{
		Session: *session,
		Reply:   reply,
	})
}

// RegisterRoutes registers chat routes
func (h *ChatHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/parables/:id/chat", h.Chat)
}
