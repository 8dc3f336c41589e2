package types

import (
	"encoding/json"
	"time"

	"notalx/models"
)

type NotificationInfo struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Type      string          `json:"type"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	IsRead    bool            `json:"is_read"`
	CreatedAt time.Time       `json:"created_at"`
}

type ListNotificationsResponse struct {
	Notifications []*NotificationInfo `json:"notifications"`
	Total         int64               `json:"total"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

func ToNotificationInfo(n *models.Notification) *NotificationInfo {
	return &NotificationInfo{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Metadata:  json.RawMessage(n.Metadata),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
