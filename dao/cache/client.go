package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"notalx/config"
	"notalx/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func NewRedisClient(conf *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.Redis.Address, conf.Redis.Port),
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})
	if _, err := client.Ping(context.TODO()).Result(); err != nil {
		log.L.Fatal("connect redis error", zap.Error(err))
	}
	log.L.Info("redis client success")
	return client
}

// KV 读穿透缓存网关。值统一 JSON 序列化存储，未命中不缓存（无负缓存）。
type KV struct {
	redis *redis.Client
}

func NewKV(rds *redis.Client) *KV {
	return &KV{redis: rds}
}

func (kv *KV) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return kv.redis.Set(ctx, key, data, ttl).Err()
}

// Get 命中时反序列化到 dest 并返回 true。缓存故障按未命中处理，读回落数据库。
func (kv *KV) Get(ctx context.Context, key string, dest any) bool {
	data, err := kv.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.L.Warn("cache get error", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.L.Warn("cache decode error", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (kv *KV) Del(ctx context.Context, key string) error {
	return kv.redis.Del(ctx, key).Err()
}
