package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/questguild/quests-tracker/internal/domain"
	"github.com/questguild/quests-tracker/internal/service"
)

func TestLaunch(t *testing.T) {
	t.Parallel()

	const questID, commanderID = int32(1), int32(7)

	tests := []struct {
		name    string
		status  domain.QuestStatus
		count   int64
		wantErr error
	}{
		{name: "open quest with one adventurer", status: domain.StatusOpen, count: 1},
		{name: "open quest at capacity", status: domain.StatusOpen, count: 4},
		{name: "failed quest is re-launchable", status: domain.StatusFailed, count: 2},
		{name: "empty roster", status: domain.StatusOpen, count: 0, wantErr: domain.ErrInvalidLaunchCondition},
		{name: "over capacity", status: domain.StatusOpen, count: 5, wantErr: domain.ErrInvalidLaunchCondition},
		{name: "already in journey", status: domain.StatusInJourney, count: 2, wantErr: domain.ErrInvalidLaunchCondition},
		{name: "completed quest", status: domain.StatusCompleted, count: 2, wantErr: domain.ErrInvalidLaunchCondition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mockStore := newTxStore(t)

			mockStore.EXPECT().GetQuest(gomock.Any(), questID).
				Return(domain.Quest{ID: questID, Status: tt.status}, nil)
			mockStore.EXPECT().CountByQuest(gomock.Any(), questID).
				Return(tt.count, nil)
			if tt.wantErr == nil {
				mockStore.EXPECT().
					UpdateQuestStatus(gomock.Any(), questID, domain.StatusInJourney, commanderID).
					Return(nil)
			}

			err := service.NewJourneyLedger(mockStore).Launch(context.Background(), questID, commanderID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestComplete(t *testing.T) {
	t.Parallel()

	const questID, commanderID = int32(1), int32(7)

	tests := []struct {
		name    string
		status  domain.QuestStatus
		wantErr error
	}{
		{name: "quest in journey", status: domain.StatusInJourney},
		{name: "open quest", status: domain.StatusOpen, wantErr: domain.ErrInvalidCompletionCondition},
		{name: "failed quest", status: domain.StatusFailed, wantErr: domain.ErrInvalidCompletionCondition},
		{name: "already completed", status: domain.StatusCompleted, wantErr: domain.ErrInvalidCompletionCondition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mockStore := newTxStore(t)

			mockStore.EXPECT().GetQuest(gomock.Any(), questID).
				Return(domain.Quest{ID: questID, Status: tt.status}, nil)
			if tt.wantErr == nil {
				mockStore.EXPECT().
					UpdateQuestStatus(gomock.Any(), questID, domain.StatusCompleted, commanderID).
					Return(nil)
			}

			err := service.NewJourneyLedger(mockStore).Complete(context.Background(), questID, commanderID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMarkFailed(t *testing.T) {
	t.Parallel()

	const questID, commanderID = int32(1), int32(7)

	tests := []struct {
		name    string
		status  domain.QuestStatus
		wantErr error
	}{
		{name: "quest in journey", status: domain.StatusInJourney},
		{name: "open quest", status: domain.StatusOpen, wantErr: domain.ErrInvalidFailureCondition},
		{name: "already failed", status: domain.StatusFailed, wantErr: domain.ErrInvalidFailureCondition},
		{name: "completed quest", status: domain.StatusCompleted, wantErr: domain.ErrInvalidFailureCondition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mockStore := newTxStore(t)

			mockStore.EXPECT().GetQuest(gomock.Any(), questID).
				Return(domain.Quest{ID: questID, Status: tt.status}, nil)
			if tt.wantErr == nil {
				mockStore.EXPECT().
					UpdateQuestStatus(gomock.Any(), questID, domain.StatusFailed, commanderID).
					Return(nil)
			}

			err := service.NewJourneyLedger(mockStore).MarkFailed(context.Background(), questID, commanderID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLaunchQuestNotFound(t *testing.T) {
	t.Parallel()
	mockStore := newTxStore(t)

	mockStore.EXPECT().GetQuest(gomock.Any(), int32(404)).
		Return(domain.Quest{}, domain.ErrQuestNotFound)

	err := service.NewJourneyLedger(mockStore).Launch(context.Background(), 404, 7)
	assert.ErrorIs(t, err, domain.ErrQuestNotFound)
}
