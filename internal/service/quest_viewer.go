// Package service implements the quest lifecycle and crew roster
// operations on top of the store interfaces.
package service

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/questguild/quests-tracker/internal/service QuestViewer,CrewSwitchboard,JourneyLedger,QuestOps,Registration

import (
	"context"

	"github.com/questguild/quests-tracker/internal/domain"
	"github.com/questguild/quests-tracker/internal/store"
)

// QuestViewer assembles the read-side view of quests: the stored record
// enriched with the live roster count.
type QuestViewer interface {
	// ViewDetails returns the quest view or domain.ErrQuestNotFound.
	ViewDetails(ctx context.Context, questID int32) (domain.QuestView, error)
	// BoardChecking returns the filtered quest board. Each quest costs one
	// count query; acceptable at this scale.
	BoardChecking(ctx context.Context, filter domain.BoardCheckingFilter) ([]domain.QuestView, error)
	// CountParticipants returns the live roster size for the quest.
	CountParticipants(ctx context.Context, questID int32) (int64, error)
}

type questViewer struct {
	store store.Store
}

// NewQuestViewer creates the read-side quest service.
func NewQuestViewer(s store.Store) QuestViewer {
	return &questViewer{store: s}
}

func (v *questViewer) ViewDetails(ctx context.Context, questID int32) (domain.QuestView, error) {
	quest, err := v.store.GetQuest(ctx, questID)
	if err != nil {
		return domain.QuestView{}, err
	}

	count, err := v.store.CountByQuest(ctx, questID)
	if err != nil {
		return domain.QuestView{}, err
	}

	return quest.ToView(count), nil
}

func (v *questViewer) BoardChecking(ctx context.Context, filter domain.BoardCheckingFilter) ([]domain.QuestView, error) {
	quests, err := v.store.ListQuests(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]domain.QuestView, 0, len(quests))
	for _, quest := range quests {
		count, err := v.store.CountByQuest(ctx, quest.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, quest.ToView(count))
	}

	return views, nil
}

func (v *questViewer) CountParticipants(ctx context.Context, questID int32) (int64, error) {
	return v.store.CountByQuest(ctx, questID)
}
