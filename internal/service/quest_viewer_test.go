package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/questguild/quests-tracker/internal/domain"
	"github.com/questguild/quests-tracker/internal/service"
	"github.com/questguild/quests-tracker/internal/store/mocks"
)

func TestViewDetails(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockStore := mocks.NewMockStore(ctrl)

	quest := domain.Quest{ID: 3, Name: "Escort the caravan", Status: domain.StatusOpen}
	mockStore.EXPECT().GetQuest(gomock.Any(), int32(3)).Return(quest, nil)
	mockStore.EXPECT().CountByQuest(gomock.Any(), int32(3)).Return(int64(2), nil)

	view, err := service.NewQuestViewer(mockStore).ViewDetails(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, quest, view.Quest)
	assert.Equal(t, int64(2), view.AdventurerCount)
}

func TestViewDetailsNotFound(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockStore := mocks.NewMockStore(ctrl)

	mockStore.EXPECT().GetQuest(gomock.Any(), int32(404)).
		Return(domain.Quest{}, domain.ErrQuestNotFound)

	_, err := service.NewQuestViewer(mockStore).ViewDetails(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrQuestNotFound)
}

func TestBoardChecking(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockStore := mocks.NewMockStore(ctrl)

	quests := []domain.Quest{
		{ID: 1, Name: "Slay the wyvern", Status: domain.StatusOpen},
		{ID: 2, Name: "Guard the gate", Status: domain.StatusFailed},
	}
	filter := domain.BoardCheckingFilter{}

	mockStore.EXPECT().ListQuests(gomock.Any(), filter).Return(quests, nil)
	// One count query per quest, in listing order.
	mockStore.EXPECT().CountByQuest(gomock.Any(), int32(1)).Return(int64(4), nil)
	mockStore.EXPECT().CountByQuest(gomock.Any(), int32(2)).Return(int64(0), nil)

	views, err := service.NewQuestViewer(mockStore).BoardChecking(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(4), views[0].AdventurerCount)
	assert.Equal(t, int64(0), views[1].AdventurerCount)
}

func TestBoardCheckingEmpty(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockStore := mocks.NewMockStore(ctrl)

	mockStore.EXPECT().ListQuests(gomock.Any(), gomock.Any()).Return(nil, nil)

	views, err := service.NewQuestViewer(mockStore).BoardChecking(context.Background(), domain.BoardCheckingFilter{})
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestCountParticipants(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockStore := mocks.NewMockStore(ctrl)

	mockStore.EXPECT().CountByQuest(gomock.Any(), int32(5)).Return(int64(3), nil)

	count, err := service.NewQuestViewer(mockStore).CountParticipants(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
