package service

import (
	"context"

	"github.com/questguild/quests-tracker/internal/domain"
	"github.com/questguild/quests-tracker/internal/store"
)

// JourneyLedger enforces quest lifecycle transitions against roster
// occupancy. Whether the acting commander owns the quest is the identity
// collaborator's concern and is not re-validated here.
type JourneyLedger interface {
	// Launch moves an Open or Failed quest with a non-empty roster into
	// InJourney.
	Launch(ctx context.Context, questID, guildCommanderID int32) error
	// Complete moves an InJourney quest to Completed.
	Complete(ctx context.Context, questID, guildCommanderID int32) error
	// MarkFailed moves an InJourney quest to Failed. Failed quests can be
	// re-joined and re-launched.
	MarkFailed(ctx context.Context, questID, guildCommanderID int32) error
}

type journeyLedger struct {
	store store.Store
}

// NewJourneyLedger creates the lifecycle write-side service.
func NewJourneyLedger(s store.Store) JourneyLedger {
	return &journeyLedger{store: s}
}

func (j *journeyLedger) Launch(ctx context.Context, questID, guildCommanderID int32) error {
	return j.store.WithinTx(ctx, func(tx store.Store) error {
		quest, err := tx.GetQuest(ctx, questID)
		if err != nil {
			return err
		}

		count, err := tx.CountByQuest(ctx, questID)
		if err != nil {
			return err
		}

		if !domain.CanTransition(quest.Status, domain.StatusInJourney) ||
			count == 0 || count > domain.MaxAdventurersPerQuest {
			return domain.ErrInvalidLaunchCondition
		}

		return tx.UpdateQuestStatus(ctx, questID, domain.StatusInJourney, guildCommanderID)
	})
}

func (j *journeyLedger) Complete(ctx context.Context, questID, guildCommanderID int32) error {
	return j.transition(ctx, questID, guildCommanderID, domain.StatusCompleted, domain.ErrInvalidCompletionCondition)
}

func (j *journeyLedger) MarkFailed(ctx context.Context, questID, guildCommanderID int32) error {
	return j.transition(ctx, questID, guildCommanderID, domain.StatusFailed, domain.ErrInvalidFailureCondition)
}

// transition performs a read-check-write lifecycle move with no guard
// beyond the transition table.
func (j *journeyLedger) transition(ctx context.Context, questID, guildCommanderID int32, to domain.QuestStatus, guardErr error) error {
	return j.store.WithinTx(ctx, func(tx store.Store) error {
		quest, err := tx.GetQuest(ctx, questID)
		if err != nil {
			return err
		}

		if !domain.CanTransition(quest.Status, to) {
			return guardErr
		}

		return tx.UpdateQuestStatus(ctx, questID, to, guildCommanderID)
	})
}
