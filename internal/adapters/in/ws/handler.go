package ws

import (
	"context"
	"net/http"
	"time"

	"parcelhub/internal/core/domain/model/account"
	"parcelhub/internal/core/ports"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const writeTimeout = 5 * time.Second

// clientMessage is what connected clients send. The only supported action
// is "join", carrying the bearer token that names the room.
type clientMessage struct {
	Action string `json:"action"`
	Token  string `json:"token"`
}

// Handler upgrades HTTP requests to websocket sessions and runs their
// read/write pumps.
type Handler struct {
	hub      *Hub
	verifier ports.TokenVerifier
}

// NewHandler creates a websocket handler backed by the hub.
func NewHandler(hub *Hub, verifier ports.TokenVerifier) *Handler {
	return &Handler{
		hub:      hub,
		verifier: verifier,
	}
}

// ServeHTTP accepts the connection and serves it until the client leaves.
// A connection may sit unjoined indefinitely; it simply receives nothing.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{})
	if err != nil {
		return
	}

	s := &session{send: make(chan Envelope, sendBuffer)}
	h.hub.register(s)
	defer h.hub.unregister(s)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go h.writePump(ctx, conn, s)
	h.readPump(ctx, conn, s)

	_ = conn.Close(websocket.StatusNormalClosure, "closed")
}

func (h *Handler) readPump(ctx context.Context, conn *websocket.Conn, s *session) {
	for {
		var msg clientMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			return
		}

		if msg.Action != "join" {
			continue
		}

		identity, err := h.verifier.Verify(msg.Token)
		if err != nil {
			h.send(ctx, conn, Envelope{Event: "error", Payload: "unauthenticated"})
			continue
		}

		h.hub.join(s, identity.ID, identity.Role == account.RoleAgent)
		h.send(ctx, conn, Envelope{Event: "joined", Payload: identity.ID.String()})
	}
}

func (h *Handler) writePump(ctx context.Context, conn *websocket.Conn, s *session) {
	for {
		select {
		case <-ctx.Done():
			return
		case envelope := <-s.send:
			if !h.send(ctx, conn, envelope) {
				_ = conn.Close(websocket.StatusNormalClosure, "write failed")
				return
			}
		}
	}
}

func (h *Handler) send(ctx context.Context, conn *websocket.Conn, envelope Envelope) bool {
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(writeCtx, conn, envelope) == nil
}
