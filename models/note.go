package models

import (
	"time"

	"gorm.io/datatypes"
)

type Note struct {
	ID              int64          `gorm:"column:id;primary_key" json:"id"`
	OwnerID         int64          `gorm:"column:owner_id;not null;index:idx_owner" json:"owner_id"`
	Title           string         `gorm:"column:title;type:varchar(255);not null;default:''" json:"title"`
	Content         string         `gorm:"column:content;type:mediumtext" json:"content"`
	CategoryName    string         `gorm:"column:category_name;type:varchar(64);not null;default:''" json:"category_name"`
	Tags            datatypes.JSON `gorm:"column:tags;type:json" json:"tags"`
	WillSelfDestroy bool           `gorm:"column:will_self_destroy;not null;default:0;index:idx_self_destroy" json:"will_self_destroy"`
	SelfDestroyTime *time.Time     `gorm:"column:self_destroy_time;index:idx_self_destroy" json:"self_destroy_time"`
	CreatedAt       time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (n Note) TableName() string {
	return "notes"
}
