package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ViewerHeader identifies the client whose insight requests supersede each other
const ViewerHeader = "X-Viewer-ID"

// CORSMiddleware returns a CORS middleware for the browser front end
func CORSMiddleware(origins []string) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{echo.HeaderContentType, ViewerHeader},
	})
}
