package dao

import (
	"context"
	"time"

	"notalx/dao/cache"
	"notalx/pkg/log"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 实体缓存 TTL
const entityTTL = 10 * time.Minute

// entityCache Repo 消费的缓存操作面
type entityCache interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Repo 按主键读穿透、写失效的通用仓库。缓存为尽力而为：
// 读故障回落数据库，写入后只删除缓存键，由下一次读回填。
type Repo[T any] struct {
	Db    *gorm.DB
	cache entityCache
	key   func(id int64) string
}

func NewRepo[T any](db *gorm.DB, kv *cache.KV, key func(id int64) string) Repo[T] {
	r := Repo[T]{Db: db, key: key}
	if kv != nil {
		r.cache = kv
	}
	return r
}

func (r Repo[T]) FindById(ctx context.Context, id int64) (*T, error) {
	if r.cache != nil {
		var cached T
		if r.cache.Get(ctx, r.key(id), &cached) {
			return &cached, nil
		}
	}

	var value T
	if err := r.Db.WithContext(ctx).Where("id = ?", id).First(&value).Error; err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, r.key(id), &value, entityTTL); err != nil {
			log.L.Warn("cache populate error", zap.String("key", r.key(id)), zap.Error(err))
		}
	}

	return &value, nil
}

func (r Repo[T]) FindByWhere(ctx context.Context, query string, args ...any) (*T, error) {
	var value T
	if err := r.Db.WithContext(ctx).Where(query, args...).First(&value).Error; err != nil {
		return nil, err
	}
	return &value, nil
}

func (r Repo[T]) IsExist(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(new(T)).Where(query, args...).Count(&count).Error
	return count > 0, err
}

func (r Repo[T]) Create(ctx context.Context, value *T) error {
	return r.Db.WithContext(ctx).Create(value).Error
}

func (r Repo[T]) UpdateById(ctx context.Context, id int64, data map[string]any) error {
	err := r.Db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(data).Error
	if err != nil {
		return err
	}
	r.Invalidate(ctx, id)
	return nil
}

func (r Repo[T]) DeleteById(ctx context.Context, id int64) error {
	err := r.Db.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error
	if err != nil {
		return err
	}
	r.Invalidate(ctx, id)
	return nil
}

// Invalidate 删除缓存键，失败重试一次后记日志放弃，
// 残留项由 TTL 兜底
func (r Repo[T]) Invalidate(ctx context.Context, id int64) {
	if r.cache == nil {
		return
	}
	key := r.key(id)
	if err := r.cache.Del(ctx, key); err != nil {
		if err = r.cache.Del(ctx, key); err != nil {
			log.L.Warn("cache invalidate error", zap.String("key", key), zap.Error(err))
		}
	}
}
