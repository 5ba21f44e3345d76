package router

import (
	"github.com/labstack/echo/v4"

	"gomarket/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware, rateLimitMiddleware)
	SetupFavoriteRouter(e, authMiddleware, rateLimitMiddleware)
	SetupHealthRouter(e)
}
