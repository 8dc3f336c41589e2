package dao

import (
	"context"

	"notalx/models"

	"gorm.io/gorm"
)

type TaskParticipantDAO struct {
	Repo[models.TaskParticipant]
}

func NewTaskParticipantDAO(db *gorm.DB) *TaskParticipantDAO {
	return &TaskParticipantDAO{Repo: NewRepo[models.TaskParticipant](db, nil, nil)}
}

// FindByTask 查询日程参与者
func (d *TaskParticipantDAO) FindByTask(ctx context.Context, taskID int64) ([]*models.TaskParticipant, error) {
	var rows []*models.TaskParticipant
	err := d.Db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (d *TaskParticipantDAO) IsParticipant(ctx context.Context, taskID, userID int64) bool {
	exist, _ := d.IsExist(ctx, "task_id = ? AND user_id = ?", taskID, userID)
	return exist
}

func (d *TaskParticipantDAO) DeleteByTaskAndUser(ctx context.Context, taskID, userID int64) error {
	return d.Db.WithContext(ctx).
		Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&models.TaskParticipant{}).Error
}

// DeleteByTask 随日程删除参与关系
func (d *TaskParticipantDAO) DeleteByTask(ctx context.Context, taskID int64) error {
	return d.Db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Delete(&models.TaskParticipant{}).Error
}

// DeleteByTaskIDs 批量删除参与关系
func (d *TaskParticipantDAO) DeleteByTaskIDs(ctx context.Context, taskIDs []int64) error {
	if len(taskIDs) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Where("task_id IN ?", taskIDs).
		Delete(&models.TaskParticipant{}).Error
}
