package service

import (
	"context"
	"time"

	"member-events-api/internal/model"
	"member-events-api/internal/queue"
	"member-events-api/pkg/logger"

	"go.uber.org/zap"
)

// changePublisher 異動成功後發佈事件。資料已寫入，發佈失敗只記錄不回傳。
type changePublisher struct {
	queue    queue.ChangeQueue
	resource string
	now      func() time.Time
}

func newChangePublisher(q queue.ChangeQueue, resource string) changePublisher {
	return changePublisher{queue: q, resource: resource, now: time.Now}
}

func (p changePublisher) publish(ctx context.Context, resourceID int, action model.ChangeAction) {
	if p.queue == nil {
		return
	}
	event := &model.ChangeEvent{
		Resource:   p.resource,
		ResourceID: resourceID,
		Action:     action,
		OccurredAt: p.now().UTC(),
	}
	// 使用者斷線不應中斷發佈
	if err := p.queue.Publish(context.WithoutCancel(ctx), event); err != nil {
		logger.WithComponent("service").Warn("publish change event failed",
			zap.String("resource", p.resource),
			zap.Int("resource_id", resourceID),
			zap.String("action", string(action)),
			zap.Error(err))
	}
}
