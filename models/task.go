package models

import (
	"time"
)

type Task struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	OwnerID   int64     `gorm:"column:owner_id;not null;index:idx_owner" json:"owner_id"`
	NoteID    int64     `gorm:"column:note_id;not null;index:idx_note" json:"note_id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Date      time.Time `gorm:"column:date;not null" json:"date"`
	Reminder  time.Time `gorm:"column:reminder;not null" json:"reminder"`
	Duration  string    `gorm:"column:duration;type:varchar(32);not null;default:''" json:"duration"`
	Location  string    `gorm:"column:location;type:varchar(255);not null;default:''" json:"location"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (t Task) TableName() string {
	return "tasks"
}
