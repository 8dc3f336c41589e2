package dao

import (
	"context"
	"fmt"

	"notalx/dao/cache"
	"notalx/models"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB, kv *cache.KV) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db, kv, userKey)}
}

func userKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// FindByEmail 邮箱查询
func (d *UserDAO) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return d.FindByWhere(ctx, "email = ?", email)
}

func (d *UserDAO) FindByName(ctx context.Context, name string) (*models.User, error) {
	return d.FindByWhere(ctx, "name = ?", name)
}

func (d *UserDAO) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := d.IsExist(ctx, "email = ?", email)
	return exist
}

func (d *UserDAO) IsNameExist(ctx context.Context, name string) bool {
	exist, _ := d.IsExist(ctx, "name = ?", name)
	return exist
}

// SearchByName 按用户名前缀检索，用于邀请协作者
func (d *UserDAO) SearchByName(ctx context.Context, prefix string, limit int) ([]*models.User, error) {
	var users []*models.User
	err := d.Db.WithContext(ctx).
		Where("name LIKE ?", prefix+"%").
		Order("name ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

// FindByIDs 根据 ID 列表查询用户
func (d *UserDAO) FindByIDs(ctx context.Context, ids []int64) ([]*models.User, error) {
	if len(ids) == 0 {
		return []*models.User{}, nil
	}
	var users []*models.User
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users).Error
	return users, err
}
