package service

import (
	"context"
	"testing"
	"time"

	"member-events-api/internal/model"
	"member-events-api/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangePublisher_PublishesAfterCancel(t *testing.T) {
	q := queue.NewChangeQueue(1)
	p := newChangePublisher(q, model.ResourceEventType)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	// request context 已取消仍要發佈
	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()
	p.publish(reqCtx, 11, model.ChangeActionUpdated)

	subCtx, stop := context.WithCancel(context.Background())
	defer stop()
	msgs, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d := <-msgs:
		assert.Equal(t, model.ResourceEventType, d.Data.Resource)
		assert.Equal(t, 11, d.Data.ResourceID)
		assert.Equal(t, model.ChangeActionUpdated, d.Data.Action)
		assert.Equal(t, fixed, d.Data.OccurredAt)
		d.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}
