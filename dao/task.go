package dao

import (
	"context"
	"fmt"

	"notalx/dao/cache"
	"notalx/models"

	"gorm.io/gorm"
)

type TaskDAO struct {
	Repo[models.Task]
}

func NewTaskDAO(db *gorm.DB, kv *cache.KV) *TaskDAO {
	return &TaskDAO{Repo: NewRepo[models.Task](db, kv, taskKey)}
}

func taskKey(id int64) string {
	return fmt.Sprintf("task:%d", id)
}

// FindByNote 查询笔记下的全部日程
func (d *TaskDAO) FindByNote(ctx context.Context, noteID int64) ([]*models.Task, error) {
	var tasks []*models.Task
	err := d.Db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Order("date ASC").
		Find(&tasks).Error
	return tasks, err
}

// DeleteByNote 随笔记删除日程，返回被删除的日程 ID 以便缓存失效
func (d *TaskDAO) DeleteByNote(ctx context.Context, noteID int64) ([]int64, error) {
	var ids []int64
	if err := d.Db.WithContext(ctx).
		Model(&models.Task{}).
		Where("note_id = ?", noteID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return ids, nil
	}

	if err := d.Db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Delete(&models.Task{}).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		d.Invalidate(ctx, id)
	}
	return ids, nil
}
