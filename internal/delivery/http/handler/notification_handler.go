package handler

import (
	"errors"
	"net/http"

	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/usecase"
	"healthcare-management-system/pkg/response"
	"healthcare-management-system/pkg/validator"

	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
	validator           *validator.CustomValidator
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase, validator *validator.CustomValidator) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
		validator:           validator,
	}
}

func (h *NotificationHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	list, err := h.notificationUsecase.GetMine(r.Context(), user)
	if err != nil {
		response.InternalServerError(w, "Failed to get notifications")
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{
		"notifications": list.Notifications,
		"unread":        list.Unread,
	})
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	notification, err := h.notificationUsecase.MarkRead(r.Context(), user, mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotificationNotFound):
			response.NotFound(w, "Notification not found!")
		case errors.Is(err, usecase.ErrForbidden):
			response.Forbidden(w, "You are not authorized to update this notification!")
		default:
			response.InternalServerError(w, "Failed to update notification")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification marked as read!", response.Fields{"notification": notification})
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	updated, err := h.notificationUsecase.MarkAllRead(r.Context(), user)
	if err != nil {
		response.InternalServerError(w, "Failed to update notifications")
		return
	}

	response.Success(w, http.StatusOK, "All notifications marked as read!", response.Fields{"updated": updated})
}

func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.notificationUsecase.Delete(r.Context(), user, mux.Vars(r)["id"]); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotificationNotFound):
			response.NotFound(w, "Notification not found!")
		case errors.Is(err, usecase.ErrForbidden):
			response.Forbidden(w, "You are not authorized to delete this notification!")
		default:
			response.InternalServerError(w, "Failed to delete notification")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification deleted successfully!", nil)
}

// Create handles an administrative notification
// @Summary Create a notification
// @Tags Notification
// @Security AdminCookie
// @Accept json
// @Produce json
// @Param request body dto.CreateNotificationRequest true "Create Notification Request"
// @Success 201 {object} response.Response
// @Router /notifications/create [post]
func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateNotificationRequest
	if !decodeJSON(w, r, h.validator, &req, "User ID and message are required!") {
		return
	}

	notification, err := h.notificationUsecase.Create(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to create notification")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Notification created successfully!", response.Fields{"notification": notification})
}
