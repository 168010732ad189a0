package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/app/sockets"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/platform/logger"
)

// PushHandler is the transport management plane: deliver raw bytes to one
// live connection on this node, with a distinguishable "target gone" status.
type PushHandler struct {
	table *sockets.Table
}

func NewPushHandler(table *sockets.Table) *PushHandler {
	return &PushHandler{table: table}
}

// Push handles POST /connections/{connection_id}.
func (h *PushHandler) Push(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	connID := r.PathValue("connection_id")
	if connID == "" {
		writeError(w, http.StatusBadRequest, "missing connection id")
		return
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, 512*1024))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable body")
		return
	}
	if err := h.table.Push(r.Context(), connID, data); err != nil {
		if errors.Is(err, domain.ErrConnectionGone) {
			// The one status the resolver maps to Gone.
			writeError(w, http.StatusGone, "connection gone")
			return
		}
		log.ErrorContext(r.Context(), "push handler - delivery failed", logger.Connection(connID), logger.Err(err))
		writeError(w, http.StatusInternalServerError, "delivery failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "delivered"})
}

// Disconnect handles DELETE /connections/{connection_id}: force-close.
func (h *PushHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	connID := r.PathValue("connection_id")
	if connID == "" {
		writeError(w, http.StatusBadRequest, "missing connection id")
		return
	}
	if !h.table.Close(connID) {
		writeError(w, http.StatusGone, "connection gone")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
