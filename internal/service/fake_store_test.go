package service_test

import (
	"context"
	"sync"

	"github.com/questguild/quests-tracker/internal/domain"
	"github.com/questguild/quests-tracker/internal/store"
)

// fakeStore is an in-memory store.Store for exercising whole lifecycles
// through the real services without a database.
type fakeStore struct {
	mu          sync.Mutex
	nextQuestID int32
	nextUserID  int32
	quests      map[int32]domain.Quest
	roster      map[int32]map[int32]bool
	usernames   map[string]bool
}

var _ store.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextQuestID: 1,
		nextUserID:  1,
		quests:      make(map[int32]domain.Quest),
		roster:      make(map[int32]map[int32]bool),
		usernames:   make(map[string]bool),
	}
}

func (f *fakeStore) WithinTx(_ context.Context, fn func(store.Store) error) error {
	// Single mutex stands in for the database transaction.
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn((*lockedFakeStore)(f))
}

func (f *fakeStore) GetQuest(ctx context.Context, questID int32) (domain.Quest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (*lockedFakeStore)(f).GetQuest(ctx, questID)
}

func (f *fakeStore) ListQuests(ctx context.Context, filter domain.BoardCheckingFilter) ([]domain.Quest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (*lockedFakeStore)(f).ListQuests(ctx, filter)
}

func (f *fakeStore) InsertQuest(ctx context.Context, input domain.AddQuestInput, guildCommanderID int32) (int32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (*lockedFakeStore)(f).InsertQuest(ctx, input, guildCommanderID)
}

func (f *fakeStore) UpdateQuest(ctx context.Context, questID int32, input domain.EditQuestInput, guildCommanderID int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (*lockedFakeStore)(f).UpdateQuest(ctx, questID, input, guildCommanderID)
}

func (f *fakeStore) UpdateQuestStatus(ctx context.Context, questID int32, status domain.QuestStatus, guildCommanderID int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (*lockedFakeStore)(f).UpdateQuestStatus(ctx, questID, status, guildCommanderID)
}

func (f *fakeStore) DeleteQuest(ctx context.Context, questID, guildCommanderID int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (*lockedFakeStore)(f).DeleteQuest(ctx, questID, guildCommanderID)
}

func (f *fakeStore) InsertMember(ctx context.Context, questID, adventurerID int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (*lockedFakeStore)(f).InsertMember(ctx, questID, adventurerID)
}

func (f *fakeStore) DeleteMember(ctx context.Context, questID, adventurerID int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (*lockedFakeStore)(f).DeleteMember(ctx, questID, adventurerID)
}

func (f *fakeStore) CountByQuest(ctx context.Context, questID int32) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (*lockedFakeStore)(f).CountByQuest(ctx, questID)
}

func (f *fakeStore) InsertAdventurer(ctx context.Context, input domain.RegisterInput) (int32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (*lockedFakeStore)(f).InsertAdventurer(ctx, input)
}

func (f *fakeStore) InsertGuildCommander(ctx context.Context, input domain.RegisterInput) (int32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (*lockedFakeStore)(f).InsertGuildCommander(ctx, input)
}

// lockedFakeStore is the transaction-scoped view: same data, caller holds
// the mutex.
type lockedFakeStore fakeStore

func (f *lockedFakeStore) WithinTx(_ context.Context, fn func(store.Store) error) error {
	return fn(f)
}

func (f *lockedFakeStore) GetQuest(_ context.Context, questID int32) (domain.Quest, error) {
	quest, ok := f.quests[questID]
	if !ok {
		return domain.Quest{}, domain.ErrQuestNotFound
	}
	return quest, nil
}

func (f *lockedFakeStore) ListQuests(_ context.Context, filter domain.BoardCheckingFilter) ([]domain.Quest, error) {
	var out []domain.Quest
	for _, quest := range f.quests {
		if filter.Status != nil && quest.Status != *filter.Status {
			continue
		}
		out = append(out, quest)
	}
	return out, nil
}

func (f *lockedFakeStore) InsertQuest(_ context.Context, input domain.AddQuestInput, guildCommanderID int32) (int32, error) {
	id := f.nextQuestID
	f.nextQuestID++
	f.quests[id] = domain.Quest{
		ID:               id,
		Name:             input.Name,
		Description:      input.Description,
		Status:           domain.StatusOpen,
		GuildCommanderID: guildCommanderID,
	}
	return id, nil
}

func (f *lockedFakeStore) UpdateQuest(_ context.Context, questID int32, input domain.EditQuestInput, guildCommanderID int32) error {
	quest, ok := f.quests[questID]
	if !ok || quest.GuildCommanderID != guildCommanderID {
		return domain.ErrQuestNotFound
	}
	quest.Name = input.Name
	quest.Description = input.Description
	f.quests[questID] = quest
	return nil
}

func (f *lockedFakeStore) UpdateQuestStatus(_ context.Context, questID int32, status domain.QuestStatus, guildCommanderID int32) error {
	quest, ok := f.quests[questID]
	if !ok {
		return domain.ErrQuestNotFound
	}
	quest.Status = status
	quest.GuildCommanderID = guildCommanderID
	f.quests[questID] = quest
	return nil
}

func (f *lockedFakeStore) DeleteQuest(_ context.Context, questID, guildCommanderID int32) error {
	quest, ok := f.quests[questID]
	if !ok || quest.GuildCommanderID != guildCommanderID {
		return domain.ErrQuestNotFound
	}
	delete(f.quests, questID)
	delete(f.roster, questID)
	return nil
}

func (f *lockedFakeStore) InsertMember(_ context.Context, questID, adventurerID int32) error {
	members := f.roster[questID]
	if members == nil {
		members = make(map[int32]bool)
		f.roster[questID] = members
	}
	if members[adventurerID] {
		return domain.ErrDuplicateMembership
	}
	members[adventurerID] = true
	return nil
}

func (f *lockedFakeStore) DeleteMember(_ context.Context, questID, adventurerID int32) error {
	delete(f.roster[questID], adventurerID)
	return nil
}

func (f *lockedFakeStore) CountByQuest(_ context.Context, questID int32) (int64, error) {
	return int64(len(f.roster[questID])), nil
}

func (f *lockedFakeStore) InsertAdventurer(_ context.Context, input domain.RegisterInput) (int32, error) {
	return f.insertIdentity(input.Username)
}

func (f *lockedFakeStore) InsertGuildCommander(_ context.Context, input domain.RegisterInput) (int32, error) {
	return f.insertIdentity(input.Username)
}

func (f *lockedFakeStore) insertIdentity(username string) (int32, error) {
	if f.usernames[username] {
		return 0, domain.ErrUsernameTaken
	}
	f.usernames[username] = true
	id := f.nextUserID
	f.nextUserID++
	return id, nil
}
