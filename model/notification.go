package model

import (
	"time"

	"github.com/muhammadheryan/marketplace/constant"
)

type NotificationEntity struct {
	ID        uint64                     `db:"id" json:"id"`
	UserID    uint64                     `db:"user_id" json:"user_id"`
	Event     constant.NotificationEvent `db:"event" json:"event"`
	Title     string                     `db:"title" json:"title"`
	Message   string                     `db:"message" json:"message"`
	IsRead    bool                       `db:"is_read" json:"is_read"`
	CreatedAt time.Time                  `db:"created_at" json:"created_at"`
}

type NotificationFilter struct {
	UserID     uint64
	UnreadOnly bool
	Page       int
	PerPage    int
}

type CreateNotificationRequest struct {
	UserID  uint64                     `json:"user_id" validate:"required"`
	Event   constant.NotificationEvent `json:"event" validate:"required"`
	Title   string                     `json:"title" validate:"required,max=255"`
	Message string                     `json:"message" validate:"required,max=1000"`
}

type NotificationListResponse struct {
	Items      []NotificationEntity `json:"items"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	PerPage    int                  `json:"per_page"`
}

// NotificationMessage is the broker payload delivered to the notifier worker.
type NotificationMessage struct {
	UserID  uint64                     `json:"user_id"`
	Event   constant.NotificationEvent `json:"event"`
	Title   string                     `json:"title"`
	Message string                     `json:"message"`
}

// OTPMessage is consumed by the external SMS gateway.
type OTPMessage struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}
