package dao

import (
	"context"

	"notalx/models"

	"gorm.io/gorm"
)

type NoteHistoryDAO struct {
	Repo[models.NoteHistory]
}

func NewNoteHistoryDAO(db *gorm.DB) *NoteHistoryDAO {
	// 审计记录只追加不回查单条，不走缓存
	return &NoteHistoryDAO{Repo: NewRepo[models.NoteHistory](db, nil, nil)}
}

// FindByNote 按时间倒序查询笔记的编辑历史
func (d *NoteHistoryDAO) FindByNote(ctx context.Context, noteID int64, limit, offset int) ([]*models.NoteHistory, int64, error) {
	var total int64
	if err := d.Db.WithContext(ctx).
		Model(&models.NoteHistory{}).
		Where("note_id = ?", noteID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []*models.NoteHistory
	err := d.Db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	return rows, total, err
}

// DeleteByNote 随笔记删除审计记录
func (d *NoteHistoryDAO) DeleteByNote(ctx context.Context, noteID int64) error {
	return d.Db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Delete(&models.NoteHistory{}).Error
}
