package handlers

import (
	"context"
	"net/http"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/app/sockets"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/app/server/ws"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/services"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/platform/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type WSHandler struct {
	table     *sockets.Table
	lifecycle *services.LifecycleService
}

func NewWSHandler(table *sockets.Table, lifecycle *services.LifecycleService) *WSHandler {
	return &WSHandler{
		table:     table,
		lifecycle: lifecycle,
	}
}

func (h *WSHandler) Handler(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	span := trace.SpanFromContext(r.Context())

	// The transport assigns the opaque connection id at accept time.
	connID := uuid.NewString()
	span.SetAttributes(attribute.String("connection_id", connID))

	// Outlives the upgrade request.
	sessionCtx := context.WithoutCancel(r.Context())
	ctx, cancel := context.WithCancel(sessionCtx)
	defer cancel()

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true // tighten later
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.ErrorContext(r.Context(), "ws handler - upgrade failed", logger.Err(err))
		return
	}

	// Soft failure: a registry outage cannot refuse a transport signal, so
	// the socket stays up and a later broadcast simply misses it.
	if err := h.lifecycle.OnConnect(ctx, connID); err != nil {
		log.ErrorContext(ctx, "ws handler - connect signal failed", logger.Connection(connID), logger.Err(err))
	}

	socket := ws.NewWebSocket(ctx, conn)
	client := ws.NewClient(ctx, socket, connID)
	h.table.Attach(client)
	defer func() {
		h.table.Detach(client)
		client.Close()
		if err := h.lifecycle.OnDisconnect(sessionCtx, connID); err != nil {
			log.ErrorContext(sessionCtx, "ws handler - disconnect signal failed", logger.Connection(connID), logger.Err(err))
		}
	}()

	_ = conn.WriteJSON(domain.HandshakeResponse{
		Type:         domain.TypeHandshake,
		ConnectionID: connID,
	})
	log.InfoContext(ctx, "ws handler - connection established", logger.Connection(connID))

	socket.ReadLoop(func(data []byte) {
		h.lifecycle.OnMessage(ctx, connID, data)
	})
}
