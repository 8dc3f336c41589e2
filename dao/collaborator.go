package dao

import (
	"context"

	"notalx/models"

	"gorm.io/gorm"
)

type CollaboratorDAO struct {
	Repo[models.Collaborator]
}

func NewCollaboratorDAO(db *gorm.DB) *CollaboratorDAO {
	// 协作关系总是按笔记整表查询，不做单键缓存
	return &CollaboratorDAO{Repo: NewRepo[models.Collaborator](db, nil, nil)}
}

// FindByNote 查询笔记的协作者列表
func (d *CollaboratorDAO) FindByNote(ctx context.Context, noteID int64) ([]*models.Collaborator, error) {
	var rows []*models.Collaborator
	err := d.Db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (d *CollaboratorDAO) FindByNoteAndUser(ctx context.Context, noteID, userID int64) (*models.Collaborator, error) {
	return d.FindByWhere(ctx, "note_id = ? AND user_id = ?", noteID, userID)
}

func (d *CollaboratorDAO) UpdatePermission(ctx context.Context, noteID, userID int64, permission string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Collaborator{}).
		Where("note_id = ? AND user_id = ?", noteID, userID).
		Update("permission", permission).Error
}

// DeleteByNoteAndUser 返回删除行数，0 表示本来就不是协作者
func (d *CollaboratorDAO) DeleteByNoteAndUser(ctx context.Context, noteID, userID int64) (int64, error) {
	res := d.Db.WithContext(ctx).
		Where("note_id = ? AND user_id = ?", noteID, userID).
		Delete(&models.Collaborator{})
	return res.RowsAffected, res.Error
}

// DeleteByNote 随笔记删除全部协作关系
func (d *CollaboratorDAO) DeleteByNote(ctx context.Context, noteID int64) error {
	return d.Db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Delete(&models.Collaborator{}).Error
}

// NoteIDsForUser 查询用户参与协作的笔记
func (d *CollaboratorDAO) NoteIDsForUser(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.Collaborator{}).
		Where("user_id = ?", userID).
		Pluck("note_id", &ids).Error
	return ids, err
}
