package service

import (
	"context"
	"testing"

	"member-events-api/internal/filter"
	repoMocks "member-events-api/internal/mocks/repositories"
	"member-events-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeLogService_List(t *testing.T) {
	ctx := context.Background()
	repo := repoMocks.NewChangeLogRepositoryMock()
	svc := NewChangeLogService(repo)

	conds := filter.Conditions{filter.Eq("resource", model.ResourceRole)}
	repo.On("List", ctx, conds).Return([]*model.ChangeEvent{
		{ID: 2, Resource: model.ResourceRole, ResourceID: 1, Action: model.ChangeActionDeleted},
		{ID: 1, Resource: model.ResourceRole, ResourceID: 1, Action: model.ChangeActionCreated},
	}, nil).Once()

	events, err := svc.List(ctx, conds)

	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, model.ChangeActionDeleted, events[0].Action)
	repo.AssertExpectations(t)
}
