package models

import (
	"time"
)

// NoteHistory 笔记编辑审计记录，保存修改前的内容
type NoteHistory struct {
	ID          int64     `gorm:"column:id;primary_key" json:"id"`
	NoteID      int64     `gorm:"column:note_id;not null;index:idx_note" json:"note_id"`
	EditorID    int64     `gorm:"column:editor_id;not null" json:"editor_id"`
	PrevTitle   string    `gorm:"column:prev_title;type:varchar(255);not null;default:''" json:"prev_title"`
	PrevContent string    `gorm:"column:prev_content;type:mediumtext" json:"prev_content"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (h NoteHistory) TableName() string {
	return "note_histories"
}
