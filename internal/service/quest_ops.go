package service

import (
	"context"
	"strings"

	"github.com/questguild/quests-tracker/internal/domain"
	"github.com/questguild/quests-tracker/internal/store"
)

// QuestOps is the guild commander's quest management surface. New quests
// enter the lifecycle in status Open; edits and removals are scoped to the
// owning commander and only allowed while the quest is joinable.
type QuestOps interface {
	Add(ctx context.Context, input domain.AddQuestInput, guildCommanderID int32) (int32, error)
	Edit(ctx context.Context, questID int32, input domain.EditQuestInput, guildCommanderID int32) error
	// Remove deletes a quest with an empty roster; a quest that still has
	// crew members reports domain.ErrQuestHasCrew.
	Remove(ctx context.Context, questID, guildCommanderID int32) error
}

type questOps struct {
	store store.Store
}

// NewQuestOps creates the quest management service.
func NewQuestOps(s store.Store) QuestOps {
	return &questOps{store: s}
}

func (o *questOps) Add(ctx context.Context, input domain.AddQuestInput, guildCommanderID int32) (int32, error) {
	if strings.TrimSpace(input.Name) == "" {
		return 0, domain.ErrEmptyQuestName
	}
	return o.store.InsertQuest(ctx, input, guildCommanderID)
}

func (o *questOps) Edit(ctx context.Context, questID int32, input domain.EditQuestInput, guildCommanderID int32) error {
	if strings.TrimSpace(input.Name) == "" {
		return domain.ErrEmptyQuestName
	}

	return o.store.WithinTx(ctx, func(tx store.Store) error {
		quest, err := tx.GetQuest(ctx, questID)
		if err != nil {
			return err
		}

		if !quest.Status.Joinable() {
			return domain.ErrQuestNotJoinable
		}

		return tx.UpdateQuest(ctx, questID, input, guildCommanderID)
	})
}

func (o *questOps) Remove(ctx context.Context, questID, guildCommanderID int32) error {
	return o.store.WithinTx(ctx, func(tx store.Store) error {
		quest, err := tx.GetQuest(ctx, questID)
		if err != nil {
			return err
		}

		if !quest.Status.Joinable() {
			return domain.ErrQuestNotJoinable
		}

		count, err := tx.CountByQuest(ctx, questID)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrQuestHasCrew
		}

		return tx.DeleteQuest(ctx, questID, guildCommanderID)
	})
}
