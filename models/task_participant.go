package models

import (
	"time"
)

type TaskParticipant struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	TaskID    int64     `gorm:"column:task_id;not null;uniqueIndex:uk_task_user" json:"task_id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_task_user" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (p TaskParticipant) TableName() string {
	return "task_participants"
}
