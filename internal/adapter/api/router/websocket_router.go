package router

import (
	"github.com/labstack/echo/v4"

	"gomarket/internal/adapter/api/handler"
)

func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/ws/favorites", wsHandler.HandleSync)
}
