package transport

import (
	"net/http"

	"github.com/muhammadheryan/marketplace/model"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
)

// ListNotifications handler
// @Summary Own notifications
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Param unread query bool false "Only unread"
// @Success 200 {object} model.NotificationListResponse
// @Router /notifications [get]
func (s *RestHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.NotificationApp.List(r.Context(), &model.NotificationFilter{
		UserID:     userID,
		UnreadOnly: r.URL.Query().Get("unread") == "true",
		Page:       queryInt(r, "page"),
		PerPage:    queryInt(r, "per_page"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// MarkNotificationRead handler
// @Summary Mark a notification read
// @Tags Notifications
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /notifications/{id}/read [patch]
func (s *RestHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID, _ := utilsContext.GetUserID(r.Context())

	if err := s.NotificationApp.MarkRead(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	writeNoContent(w)
}

// CreateNotification handler, called by the notifier worker.
// @Summary Store a notification
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.CreateNotificationRequest true "Notification"
// @Success 201 {object} model.NotificationEntity
// @Failure 403 {object} ErrorResponse
// @Router /internal/v1/notifications [post]
func (s *RestHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req model.CreateNotificationRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := s.NotificationApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}
