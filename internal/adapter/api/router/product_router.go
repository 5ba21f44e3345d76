package router

import (
	"github.com/labstack/echo/v4"

	"gomarket/internal/adapter/api/handler"
	"gomarket/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	productHandler := handler.GetProductHandler()

	// Reads are public; search and pagination ride on the same endpoint.
	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)

	writes := e.Group("/v1/products")
	writes.Use(authMiddleware.Authenticate)
	writes.Use(rateLimitMiddleware.Limit("product_write"))
	writes.POST("", productHandler.CreateProduct)
	writes.PUT("/:id", productHandler.UpdateProduct)
	writes.DELETE("/:id", productHandler.DeleteProduct)
}
