package handler

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "gomarket/internal/infrastructure/websocket"
	"gomarket/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	manager    *ws.Manager
	authClient *auth.Client
}

func NewWebSocketHandler(manager *ws.Manager, authClient *auth.Client) *WebSocketHandler {
	return &WebSocketHandler{
		manager:    manager,
		authClient: authClient,
	}
}

// HandleSync upgrades the connection and subscribes the session to
// favorite-set updates. The token rides in a query parameter because
// browsers cannot set headers on WebSocket dials.
func (h *WebSocketHandler) HandleSync(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Token is required")
	}

	verified, err := h.authClient.VerifyIDToken(c.Request().Context(), token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	sessionID := c.QueryParam("session")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed: %v", err)
		return err
	}

	client := &ws.Client{
		UserID:    verified.UID,
		SessionID: sessionID,
		Conn:      conn,
		Send:      make(chan []byte, 16),
	}

	h.manager.Register <- client

	go client.WritePump()
	go client.ReadPump(h.manager)

	return nil
}
