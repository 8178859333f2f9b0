// Package domain holds the quest lifecycle and crew roster value objects.
package domain

import "time"

// MaxAdventurersPerQuest is the roster capacity enforced for every quest
// that is still joinable or in journey.
const MaxAdventurersPerQuest = 4

// QuestStatus is the closed set of lifecycle states a quest can be in.
type QuestStatus string

// Quest lifecycle states.
const (
	StatusOpen      QuestStatus = "Open"
	StatusInJourney QuestStatus = "InJourney"
	StatusCompleted QuestStatus = "Completed"
	StatusFailed    QuestStatus = "Failed"
)

// transitions is the single source of truth for legal lifecycle moves.
// Guards beyond the state pair (roster occupancy on launch) live in the
// journey ledger service.
var transitions = map[QuestStatus]map[QuestStatus]bool{
	StatusOpen:      {StatusInJourney: true},
	StatusFailed:    {StatusInJourney: true},
	StatusInJourney: {StatusCompleted: true, StatusFailed: true},
}

// CanTransition reports whether the lifecycle permits moving from one
// status to another. Completed has no outbound transitions.
func CanTransition(from, to QuestStatus) bool {
	return transitions[from][to]
}

// Valid reports whether s is one of the four known statuses.
func (s QuestStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInJourney, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Joinable reports whether adventurers may join or leave the roster while
// the quest is in this status. Failed quests are re-enterable.
func (s QuestStatus) Joinable() bool {
	return s == StatusOpen || s == StatusFailed
}

// Quest is a task with a capacity-bounded roster owned by a guild commander.
type Quest struct {
	ID               int32
	Name             string
	Description      string
	Status           QuestStatus
	GuildCommanderID int32
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// QuestView is the read-side projection of a quest: the stored record
// enriched with the live participant count. It is derived at read time and
// never persisted.
type QuestView struct {
	Quest
	AdventurerCount int64
}

// ToView attaches a live roster count to the quest record.
func (q Quest) ToView(adventurerCount int64) QuestView {
	return QuestView{Quest: q, AdventurerCount: adventurerCount}
}

// BoardCheckingFilter narrows the quest board listing. Nil fields match
// everything.
type BoardCheckingFilter struct {
	Name   *string
	Status *QuestStatus
}

// RegisterInput carries the credentials for a new adventurer or guild
// commander. Password is the plaintext secret; hashing happens in the
// registration service before it reaches a store.
type RegisterInput struct {
	Username string
	Password string
}

// AddQuestInput carries the fields for a new quest. Status is always Open
// on creation.
type AddQuestInput struct {
	Name        string
	Description string
}

// EditQuestInput carries the mutable quest fields for an edit.
type EditQuestInput struct {
	Name        string
	Description string
}
