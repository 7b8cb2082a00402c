package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/docflow/internal/config"
	"github.com/linskybing/docflow/internal/domain/notification"
	"github.com/linskybing/docflow/internal/notify"
	"github.com/linskybing/docflow/pkg/logger"
	"github.com/linskybing/docflow/pkg/response"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, allowed := range config.AllowedOrigins {
			if strings.HasPrefix(origin, allowed) {
				return true
			}
		}
		return false
	},
}

type noticeMessage struct {
	Type       notification.Type `json:"type"`
	DocumentID uint              `json:"document_id"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	ActionURL  string            `json:"action_url"`
}

type NotificationStream struct {
	hub *notify.Hub
}

func NewNotificationStream(hub *notify.Hub) *NotificationStream {
	return &NotificationStream{hub: hub}
}

// Stream godoc
// @Summary Live notification stream
// @Tags notifications
// @Security BearerAuth
// @Success 101 "Switching protocols"
// @Router /ws/notifications [get]
func (s *NotificationStream) Stream(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}
	log := logger.WithContext(c.Request.Context()).With(zap.Uint("user_id", actor.ID))

	notices, unsubscribe := s.hub.Subscribe(actor.ID)
	defer unsubscribe()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Warn("notification stream closed", zap.Error(err))
				}
				return
			}
		}
	}()

	pingTicker := time.NewTicker(pingPeriod)
	defer func() {
		pingTicker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case n, ok := <-notices:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(noticeMessage{
				Type:       n.Type,
				DocumentID: n.DocumentID,
				Title:      n.Title,
				Message:    n.Message,
				ActionURL:  n.ActionURL,
			}); err != nil {
				return
			}
		case <-pingTicker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
