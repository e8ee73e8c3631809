package worker

import (
	"context"

	"member-events-api/internal/queue"
	"member-events-api/internal/repository"
	"member-events-api/pkg/logger"

	"go.uber.org/zap"
)

type ChangeWorker interface {
	// 訂閱異動隊列並寫入 change_log；ctx 結束時停止
	Start(ctx context.Context) error
	// Done 在消費迴圈結束後關閉
	Done() <-chan struct{}
}

type ChangeWorkerImpl struct {
	repo  repository.ChangeLogRepository
	queue queue.ChangeQueue
	done  chan struct{}
}

func NewChangeWorker(repo repository.ChangeLogRepository, queue queue.ChangeQueue) ChangeWorker {
	return &ChangeWorkerImpl{
		repo:  repo,
		queue: queue,
		done:  make(chan struct{}),
	}
}

func (w *ChangeWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	log := logger.WithComponent("worker")

	go func() {
		defer close(w.done)
		for msg := range msgs {
			if _, err := w.repo.Create(ctx, msg.Data); err != nil {
				// 資料庫暫時無法寫入，交回隊列重試
				log.Warn("write change log failed",
					zap.String("resource", msg.Data.Resource),
					zap.Int("resource_id", msg.Data.ResourceID),
					zap.Error(err))
				msg.Nack(true)
				continue
			}
			msg.Ack()
		}
	}()
	return nil
}

func (w *ChangeWorkerImpl) Done() <-chan struct{} {
	return w.done
}
