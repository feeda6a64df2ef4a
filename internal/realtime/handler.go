// Package realtime – WebSocket endpoint
//
// This file upgrades HTTP requests to WebSocket subscriptions on a session
// room. The session token arrives as the :sessionToken path parameter and is
// validated against the session lifecycle rules before the upgrade, so dead
// or expired tokens are rejected with a regular HTTP status instead of a
// short-lived socket.
package realtime

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// SessionChecker validates that a session token refers to a live session.
// A nil return authorizes the subscription.
type SessionChecker func(ctx context.Context, sessionToken string) error

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 45 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin checks happen in the CORS middleware ahead of this
	// endpoint; diners connect from the restaurant's web menu origin.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Handler returns the gin handler serving GET /ws/sessions/:sessionToken.
// check decides whether the token may subscribe; errNotFound maps to 404 and
// any of goneErrs to 410. Other checker failures surface as 500.
func Handler(hub *Hub, check SessionChecker, errNotFound error, goneErrs ...error) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := c.Param("sessionToken")
		if err := check(c.Request.Context(), tok); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, errNotFound) {
				status = http.StatusNotFound
			} else {
				for _, gone := range goneErrs {
					if errors.Is(err, gone) {
						status = http.StatusGone
						break
					}
				}
			}
			c.AbortWithStatus(status)
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the HTTP error response.
			log.Debug().Err(err).Msg("realtime: upgrade failed")
			return
		}

		cl := hub.subscribe(tok)
		go writeLoop(conn, cl)
		readLoop(conn)
		hub.unsubscribe(tok, cl)
	}
}

// writeLoop is the connection's single writer: it drains the client queue
// and keeps the connection alive with pings.
func writeLoop(conn *websocket.Conn, cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case msg, ok := <-cl.send:
			if !ok {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readLoop consumes and discards inbound frames until the peer goes away.
// Subscriptions are receive-only; all mutations travel over the REST API.
func readLoop(conn *websocket.Conn) {
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
