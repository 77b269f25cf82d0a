package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateNotificationRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	Message   string `json:"message" validate:"required"`
	Type      string `json:"type" validate:"omitempty,notification_type"`
	RelatedID string `json:"related_id" validate:"omitempty,uuid"`
	OnModel   string `json:"on_model" validate:"omitempty,oneof=Appointment HealthRecord Vitals Prescription"`
}

// Response DTOs

type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	Read      bool       `json:"read"`
	RelatedID *uuid.UUID `json:"related_id,omitempty"`
	OnModel   string     `json:"on_model,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Unread        int                    `json:"unread"`
}
