package router

import (
	"github.com/labstack/echo/v4"

	"gomarket/internal/adapter/api/handler"
	"gomarket/internal/adapter/api/middleware"
)

func SetupFavoriteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	favoriteHandler := handler.GetFavoriteHandler()

	// All favorite endpoints require authentication.
	mutations := e.Group("/v1/products/:id/favorite")
	mutations.Use(authMiddleware.Authenticate)
	mutations.Use(rateLimitMiddleware.Limit("favorite"))
	mutations.POST("", favoriteHandler.AddFavorite)
	mutations.DELETE("", favoriteHandler.RemoveFavorite)
	mutations.GET("", favoriteHandler.CheckFavorite)

	favorites := e.Group("/v1/favorites")
	favorites.Use(authMiddleware.Authenticate)
	favorites.GET("", favoriteHandler.ListFavorites)
}
