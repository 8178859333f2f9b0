package service

import (
	"context"

	"github.com/questguild/quests-tracker/internal/domain"
	"github.com/questguild/quests-tracker/internal/store"
)

// CrewSwitchboard enforces join/leave legality against the quest lifecycle
// and roster capacity.
type CrewSwitchboard interface {
	// Join adds the adventurer to the quest roster. Capacity is checked
	// before joinability so a full-but-open quest reports
	// domain.ErrQuestFull.
	Join(ctx context.Context, questID, adventurerID int32) error
	// Leave removes the adventurer from the roster. Leaving a quest the
	// adventurer never joined is not an error.
	Leave(ctx context.Context, questID, adventurerID int32) error
}

type crewSwitchboard struct {
	store store.Store
}

// NewCrewSwitchboard creates the roster write-side service.
func NewCrewSwitchboard(s store.Store) CrewSwitchboard {
	return &crewSwitchboard{store: s}
}

func (c *crewSwitchboard) Join(ctx context.Context, questID, adventurerID int32) error {
	// Guard evaluation and the insert share one transaction so two joins
	// at the capacity boundary cannot both pass the count check.
	return c.store.WithinTx(ctx, func(tx store.Store) error {
		quest, err := tx.GetQuest(ctx, questID)
		if err != nil {
			return err
		}

		count, err := tx.CountByQuest(ctx, questID)
		if err != nil {
			return err
		}

		// Capacity before status: the ordering is part of the contract.
		if count >= domain.MaxAdventurersPerQuest {
			return domain.ErrQuestFull
		}
		if !quest.Status.Joinable() {
			return domain.ErrQuestNotJoinable
		}

		// Duplicate joins are left to the junction uniqueness constraint.
		return tx.InsertMember(ctx, questID, adventurerID)
	})
}

func (c *crewSwitchboard) Leave(ctx context.Context, questID, adventurerID int32) error {
	return c.store.WithinTx(ctx, func(tx store.Store) error {
		quest, err := tx.GetQuest(ctx, questID)
		if err != nil {
			return err
		}

		if !quest.Status.Joinable() {
			return domain.ErrQuestNotLeavable
		}

		return tx.DeleteMember(ctx, questID, adventurerID)
	})
}
