package queue

import (
	"context"
	"time"

	"member-events-api/internal/model"
	"member-events-api/pkg/logger"

	"go.uber.org/zap"
)

type Delivery struct {
	Data *model.ChangeEvent
	Ack  func()
	Nack func(requeue bool)
}

type ChangeQueue interface {
	// 發送異動事件到隊列
	Publish(ctx context.Context, event *model.ChangeEvent) error
	// 訂閱異動事件
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

// MemoryQueueConfig 單機版隊列的重試設定；零值時使用預設
type MemoryQueueConfig struct {
	MaxRetryCount int           // 同一事件最多投遞次數，超過即丟棄
	RetryBackoff  time.Duration // Nack 後延遲多久重新入列
}

func defaultMemoryQueueConfig() MemoryQueueConfig {
	return MemoryQueueConfig{
		MaxRetryCount: defaultRedisStreamConfig().MaxRetryCount,
		RetryBackoff:  500 * time.Millisecond,
	}
}

// envelope 記錄事件已被投遞的次數
type envelope struct {
	event    *model.ChangeEvent
	attempts int
}

type ChangeQueueImpl struct {
	// 使用 Go channel 作為單機版隊列
	ch  chan envelope
	cfg MemoryQueueConfig
}

func NewChangeQueue(bufferSize int) ChangeQueue {
	return NewChangeQueueWithConfig(bufferSize, nil)
}

func NewChangeQueueWithConfig(bufferSize int, config *MemoryQueueConfig) ChangeQueue {
	cfg := defaultMemoryQueueConfig()
	if config != nil {
		if config.MaxRetryCount > 0 {
			cfg.MaxRetryCount = config.MaxRetryCount
		}
		if config.RetryBackoff > 0 {
			cfg.RetryBackoff = config.RetryBackoff
		}
	}
	return &ChangeQueueImpl{
		ch:  make(chan envelope, bufferSize),
		cfg: cfg,
	}
}

func (q *ChangeQueueImpl) Publish(ctx context.Context, event *model.ChangeEvent) error {
	select {
	case q.ch <- envelope{event: event}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *ChangeQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case env := <-q.ch:
				env.attempts++
				d := Delivery{
					Data: env.event,
					Ack:  func() {},
					Nack: func(requeue bool) { q.requeue(env, requeue) },
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// requeue 達到投遞上限時丟棄，否則延遲後重新入列
func (q *ChangeQueueImpl) requeue(env envelope, requeue bool) {
	if !requeue {
		return
	}
	if env.attempts >= q.cfg.MaxRetryCount {
		logger.WithComponent("mq").Warn("discard poison message",
			zap.String("resource", env.event.Resource),
			zap.Int("resource_id", env.event.ResourceID),
			zap.Int("attempts", env.attempts),
			zap.Int("max_retries", q.cfg.MaxRetryCount))
		return
	}
	time.AfterFunc(q.cfg.RetryBackoff, func() {
		// 緩衝已滿時丟棄，避免阻塞
		select {
		case q.ch <- env:
		default:
			logger.WithComponent("mq").Warn("queue full, drop retried message",
				zap.String("resource", env.event.Resource),
				zap.Int("resource_id", env.event.ResourceID))
		}
	})
}
