package dao

import (
	"context"

	"notalx/models"

	"gorm.io/gorm"
)

type NotificationDAO struct {
	Repo[models.Notification]
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	// 通知只按用户列表读取，不做单键缓存
	return &NotificationDAO{Repo: NewRepo[models.Notification](db, nil, nil)}
}

// ListByUser 未读在前、新的在前
func (d *NotificationDAO) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Notification, int64, error) {
	var total int64
	if err := d.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []*models.Notification
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_read ASC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	return rows, total, err
}

// MarkRead 只允许收件人本人翻转已读位
func (d *NotificationDAO) MarkRead(ctx context.Context, id, userID int64) (int64, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (d *NotificationDAO) MarkAllRead(ctx context.Context, userID int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (d *NotificationDAO) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
