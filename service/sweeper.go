package service

import (
	"context"
	"time"

	"notalx/config"
	"notalx/pkg/log"

	"go.uber.org/zap"
)

const defaultSweepInterval = time.Minute

// Sweeper 周期删除到期的自毁笔记。尽力而为：
// 单轮错误记日志吞掉，循环不退出
type Sweeper struct {
	notes    *NoteService
	interval time.Duration
}

func NewSweeper(conf *config.Config, notes *NoteService) *Sweeper {
	interval := defaultSweepInterval
	if conf.Sweep != nil && conf.Sweep.IntervalSeconds > 0 {
		interval = time.Duration(conf.Sweep.IntervalSeconds) * time.Second
	}
	return &Sweeper{notes: notes, interval: interval}
}

func (s *Sweeper) Run(ctx context.Context) error {
	log.L.Info("self-destruct sweeper started", zap.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.L.Info("self-destruct sweeper stopped")
			return ctx.Err()
		case now := <-ticker.C:
			s.notes.SweepExpired(ctx, now)
		}
	}
}
