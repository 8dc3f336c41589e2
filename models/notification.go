package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	NotificationNoteShared          = "note_shared"
	NotificationCollaboratorRemoved = "collaborator_removed"
	NotificationTaskAssigned        = "task_assigned"
	NotificationTaskReminder        = "task_reminder"
	NotificationWelcome             = "welcome"
)

type Notification struct {
	ID        int64          `gorm:"column:id;primary_key" json:"id"`
	UserID    int64          `gorm:"column:user_id;not null;index:idx_user_read" json:"user_id"`
	Title     string         `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Message   string         `gorm:"column:message;type:text" json:"message"`
	Type      string         `gorm:"column:type;type:varchar(32);not null" json:"type"`
	Metadata  datatypes.JSON `gorm:"column:metadata;type:json" json:"metadata"`
	IsRead    bool           `gorm:"column:is_read;not null;default:0;index:idx_user_read" json:"is_read"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (n Notification) TableName() string {
	return "notifications"
}
