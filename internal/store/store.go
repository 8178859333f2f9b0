// Package store defines the persistence interfaces the core depends on.
// Concrete implementations live in store/postgres; the services only ever
// see these capability sets.
package store

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/questguild/quests-tracker/internal/store Store

import (
	"context"

	"github.com/questguild/quests-tracker/internal/domain"
)

// QuestStore is the durable quest record collaborator.
type QuestStore interface {
	// GetQuest returns the quest or domain.ErrQuestNotFound.
	GetQuest(ctx context.Context, questID int32) (domain.Quest, error)
	// ListQuests returns the quests matching the board checking filter.
	ListQuests(ctx context.Context, filter domain.BoardCheckingFilter) ([]domain.Quest, error)
	// InsertQuest creates a quest in status Open and returns its id.
	InsertQuest(ctx context.Context, input domain.AddQuestInput, guildCommanderID int32) (int32, error)
	// UpdateQuest edits a quest scoped to its owning commander. A quest
	// that does not exist or is owned by someone else reads as
	// domain.ErrQuestNotFound.
	UpdateQuest(ctx context.Context, questID int32, input domain.EditQuestInput, guildCommanderID int32) error
	// UpdateQuestStatus records a lifecycle transition attributed to the
	// acting commander.
	UpdateQuestStatus(ctx context.Context, questID int32, status domain.QuestStatus, guildCommanderID int32) error
	// DeleteQuest removes a quest scoped to its owning commander.
	DeleteQuest(ctx context.Context, questID int32, guildCommanderID int32) error
}

// RosterStore is the durable (quest, adventurer) membership collaborator.
type RosterStore interface {
	// InsertMember adds the pair, returning domain.ErrDuplicateMembership
	// when the junction uniqueness constraint rejects it.
	InsertMember(ctx context.Context, questID, adventurerID int32) error
	// DeleteMember removes the pair. Deleting an absent pair is not an
	// error.
	DeleteMember(ctx context.Context, questID, adventurerID int32) error
	// CountByQuest returns the live roster size for the quest.
	CountByQuest(ctx context.Context, questID int32) (int64, error)
}

// AdventurerStore persists adventurer identities.
type AdventurerStore interface {
	// InsertAdventurer creates the record and returns its id, or
	// domain.ErrUsernameTaken on a username collision.
	InsertAdventurer(ctx context.Context, input domain.RegisterInput) (int32, error)
}

// GuildCommanderStore persists guild commander identities.
type GuildCommanderStore interface {
	InsertGuildCommander(ctx context.Context, input domain.RegisterInput) (int32, error)
}

// Store aggregates the collaborators plus the transaction boundary. Every
// guarded read-check-write in the services runs inside a single WithinTx
// call so guard evaluation and the write commit or roll back together.
type Store interface {
	QuestStore
	RosterStore
	AdventurerStore
	GuildCommanderStore

	// WithinTx runs fn against a transaction-scoped Store at serializable
	// isolation. fn returning an error rolls the transaction back and the
	// error is returned unchanged.
	WithinTx(ctx context.Context, fn func(Store) error) error
}
