package service

import (
	"context"
	"encoding/json"
	"time"

	"notalx/dao"
	"notalx/models"
	"notalx/pkg/log"
	"notalx/pkg/response"
	"notalx/pkg/snowflake"
	"notalx/types"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const fanOutWorkers = 8

type notificationCreator interface {
	Create(ctx context.Context, value *models.Notification) error
}

// Dispatcher 通知扇出。每个收件人一条记录，经有界工作池异步落库，
// 单条失败只记日志，不回滚触发它的业务操作。
type Dispatcher struct {
	store notificationCreator
	pool  *pool.Pool
}

func NewDispatcher(notifications *dao.NotificationDAO) *Dispatcher {
	return newDispatcher(notifications)
}

func newDispatcher(store notificationCreator) *Dispatcher {
	return &Dispatcher{
		store: store,
		pool:  pool.New().WithMaxGoroutines(fanOutWorkers),
	}
}

func (d *Dispatcher) Dispatch(typ, title, message string, metadata map[string]any, recipients []int64) {
	var meta datatypes.JSON
	if len(metadata) > 0 {
		data, err := json.Marshal(metadata)
		if err != nil {
			log.L.Error("notification metadata marshal error", zap.String("type", typ), zap.Error(err))
		} else {
			meta = data
		}
	}

	for _, uid := range recipients {
		uid := uid
		d.pool.Go(func() {
			row := &models.Notification{
				ID:        snowflake.GenID(),
				UserID:    uid,
				Title:     title,
				Message:   message,
				Type:      typ,
				Metadata:  meta,
				CreatedAt: time.Now(),
			}
			if err := d.store.Create(context.Background(), row); err != nil {
				log.L.Error("notification create error",
					zap.String("type", typ),
					zap.Int64("user_id", uid),
					zap.Error(err),
				)
			}
		})
	}
}

// Close 等待在途通知写完，进程退出前调用
func (d *Dispatcher) Close() {
	d.pool.Wait()
}

var _ INotificationService = (*NotificationService)(nil)

type INotificationService interface {
	List(ctx context.Context, userID int64, limit, offset int) (*types.ListNotificationsResponse, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
	UnreadCount(ctx context.Context, userID int64) (int64, error)
}

type NotificationService struct {
	Notifications *dao.NotificationDAO
}

func (s *NotificationService) List(ctx context.Context, userID int64, limit, offset int) (*types.ListNotificationsResponse, error) {
	rows, total, err := s.Notifications.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &types.ListNotificationsResponse{
		Notifications: make([]*types.NotificationInfo, 0, len(rows)),
		Total:         total,
	}
	for _, row := range rows {
		resp.Notifications = append(resp.Notifications, types.ToNotificationInfo(row))
	}
	return resp, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID int64) error {
	affected, err := s.Notifications.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return response.NotFound("Notification not found")
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.Notifications.MarkAllRead(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.Notifications.UnreadCount(ctx, userID)
}
