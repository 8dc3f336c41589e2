package models

import (
	"time"
)

const (
	PermissionRead  = "read"
	PermissionWrite = "write"
)

// 权限按序分级，下标越大权限越高，write 隐含 read
var permissionOrder = []string{PermissionRead, PermissionWrite}

// PermissionRank 返回权限等级，未知权限返回 -1
func PermissionRank(permission string) int {
	for i, p := range permissionOrder {
		if p == permission {
			return i
		}
	}
	return -1
}

type Collaborator struct {
	ID         int64     `gorm:"column:id;primary_key" json:"id"`
	NoteID     int64     `gorm:"column:note_id;not null;uniqueIndex:uk_note_user" json:"note_id"`
	UserID     int64     `gorm:"column:user_id;not null;uniqueIndex:uk_note_user" json:"user_id"`
	Permission string    `gorm:"column:permission;type:varchar(16);not null;default:'read'" json:"permission"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (c Collaborator) TableName() string {
	return "collaborators"
}
