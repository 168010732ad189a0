package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/config"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/services"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/platform/logger"
	"github.com/KarthicSuRa/mcm-alerts-aws/pkg/middleware"
)

// APIHandler is the thin persistence glue around the core: device
// registration, comments, notification updates.
type APIHandler struct {
	devices       *services.DeviceService
	comments      *services.CommentService
	notifications *services.NotificationService
	push          config.PushConfig
}

func NewAPIHandler(
	devices *services.DeviceService,
	comments *services.CommentService,
	notifications *services.NotificationService,
	push config.PushConfig,
) *APIHandler {
	return &APIHandler{
		devices:       devices,
		comments:      comments,
		notifications: notifications,
		push:          push,
	}
}

// pushEndpoint derives the management-plane base address for fanout jobs:
// the configured endpoint when set, otherwise this deployment's own host.
func (h *APIHandler) pushEndpoint(r *http.Request) string {
	if h.push.Endpoint != "" {
		return h.push.Endpoint
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

type commentResponse struct {
	ID             string    `json:"id"`
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

type notificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Severity  string    `json:"severity"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *APIHandler) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req struct {
		PlayerID string `json:"playerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if _, err := h.devices.Register(r.Context(), userID, req.PlayerID); err != nil {
		if errors.Is(err, domain.ErrMissingPlayerID) {
			writeError(w, http.StatusBadRequest, "Missing playerId")
			return
		}
		log.ErrorContext(r.Context(), "api - register device failed", logger.Err(err))
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"status":   "registered",
		"playerId": req.PlayerID,
	})
}

func (h *APIHandler) UnregisterDevice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	playerID := r.PathValue("playerId")
	if err := h.devices.Unregister(r.Context(), userID, playerID); err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingPlayerID):
			writeError(w, http.StatusBadRequest, "Missing playerId in path")
		case errors.Is(err, domain.ErrDeviceNotOwned):
			writeError(w, http.StatusForbidden, "Forbidden: Device does not belong to user or does not exist.")
		default:
			log.ErrorContext(r.Context(), "api - unregister device failed", logger.Err(err))
			writeError(w, http.StatusInternalServerError, "unregistration failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "unregistered",
		"playerId": playerID,
	})
}

func (h *APIHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req struct {
		NotificationID string `json:"notification_id"`
		Text           string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	comment, err := h.comments.Create(r.Context(), h.pushEndpoint(r), userID, req.NotificationID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidNotificationID), errors.Is(err, domain.ErrMissingCommentText):
			writeError(w, http.StatusBadRequest, "Missing notification_id or text")
		default:
			log.ErrorContext(r.Context(), "api - create comment failed", logger.Err(err))
			writeError(w, http.StatusInternalServerError, "comment failed")
		}
		return
	}
	writeJSON(w, http.StatusCreated, commentResponse{
		ID:             comment.ID.String(),
		NotificationID: comment.NotificationID.String(),
		UserID:         comment.UserID,
		Text:           comment.Text,
		CreatedAt:      comment.CreatedAt,
	})
}

func (h *APIHandler) UpdateNotification(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	if _, ok := r.Context().Value(middleware.UserIDKey).(string); !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	notificationID := r.PathValue("notification_id")
	var patch domain.NotificationPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	updated, err := h.notifications.Update(r.Context(), h.pushEndpoint(r), notificationID, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidNotificationID), errors.Is(err, domain.ErrEmptyPatch):
			writeError(w, http.StatusBadRequest, "Missing ID")
		case errors.Is(err, domain.ErrNotificationNotFound):
			writeError(w, http.StatusNotFound, "Not Found")
		default:
			log.ErrorContext(r.Context(), "api - update notification failed", logger.Err(err))
			writeError(w, http.StatusInternalServerError, "update failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, notificationResponse{
		ID:        updated.ID.String(),
		Title:     updated.Title,
		Body:      updated.Body,
		Severity:  updated.Severity,
		Read:      updated.Read,
		CreatedAt: updated.CreatedAt,
		UpdatedAt: updated.UpdatedAt,
	})
}

func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
