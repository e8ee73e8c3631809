package queues

import (
	"context"

	"member-events-api/internal/model"
	"member-events-api/internal/queue"

	"github.com/stretchr/testify/mock"
)

type ChangeQueueMock struct {
	mock.Mock
}

func NewChangeQueueMock() *ChangeQueueMock {
	return &ChangeQueueMock{}
}

func (m *ChangeQueueMock) Publish(ctx context.Context, event *model.ChangeEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *ChangeQueueMock) Subscribe(ctx context.Context) (<-chan queue.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan queue.Delivery), args.Error(1)
}
