package dao

import (
	"context"
	"fmt"
	"time"

	"notalx/dao/cache"
	"notalx/models"

	"gorm.io/gorm"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB, kv *cache.KV) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db, kv, noteKey)}
}

func noteKey(id int64) string {
	return fmt.Sprintf("note:%d", id)
}

// ListForUser 查询用户自己的与被共享的笔记
func (d *NoteDAO) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Note, int64, error) {
	var total int64
	if err := d.Db.WithContext(ctx).
		Model(&models.Note{}).
		Joins("LEFT JOIN collaborators c ON c.note_id = notes.id").
		Where("notes.owner_id = ? OR c.user_id = ?", userID, userID).
		Distinct("notes.id").
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Model(&models.Note{}).
		Joins("LEFT JOIN collaborators c ON c.note_id = notes.id").
		Where("notes.owner_id = ? OR c.user_id = ?", userID, userID).
		Group("notes.id").
		Order("notes.updated_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notes).Error
	return notes, total, err
}

// ExpiredIDs 查询已到自毁时间的笔记
func (d *NoteDAO) ExpiredIDs(ctx context.Context, now time.Time) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.Note{}).
		Where("will_self_destroy = ? AND self_destroy_time <= ?", true, now).
		Pluck("id", &ids).Error
	return ids, err
}
