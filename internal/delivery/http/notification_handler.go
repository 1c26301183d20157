package http

import (
	"context"
	"net/http"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
)

// NotificationService - consultation des notifications
type NotificationService interface {
	Consulter(ctx context.Context) ([]*domain.Notification, error)
	MarquerCommeLue(ctx context.Context, id int64) (*domain.Notification, error)
	NombreNonLues(ctx context.Context) (int, error)
}

type NotificationHandler struct {
	notificationService NotificationService
	logger              logger.Logger
}

func NewNotificationHandler(notificationService NotificationService, logger logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// Consulter renvoie toutes les notifications et le nombre de non lues
// GET /api/v1/notifications
func (h *NotificationHandler) Consulter(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notificationService.Consulter(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "get notifications", err)
		return
	}

	unread, err := h.notificationService.NombreNonLues(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "count unread notifications", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    notifications,
		"unread":  unread,
	})
}

// MarquerCommeLue
// POST /api/v1/notifications/{id}/lu
func (h *NotificationHandler) MarquerCommeLue(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	n, err := h.notificationService.MarquerCommeLue(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, "mark notification as read", err)
		return
	}
	respondSuccess(w, http.StatusOK, n)
}
