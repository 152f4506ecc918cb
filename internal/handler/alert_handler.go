package handler

import (
	"os"

	"gym-retention-be/internal/pkg/logger"
	internalWS "gym-retention-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AlertHandler upgrades staff dashboard connections onto the alert hub.
type AlertHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewAlertHandler(hub *internalWS.Hub, log logger.ILogger) *AlertHandler {
	return &AlertHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *AlertHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/churn/v1/alerts/ws", h.ServeWs)
}

// ServeWs authenticates the handshake itself: browsers cannot set headers on
// websocket upgrades, so the token may arrive as a query param instead.
func (h *AlertHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("AlertHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	staffIDStr, ok := claims["user_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}
	staffID, err := uuid.Parse(staffIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user ID format in token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("AlertHandler", "Starting WebSocket session", map[string]interface{}{"staff_id": staffID})
			internalWS.ServeWs(h.hub, conn, staffID)
			h.logger.Info("AlertHandler", "WebSocket session ended", map[string]interface{}{"staff_id": staffID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
