package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questguild/quests-tracker/internal/domain"
	"github.com/questguild/quests-tracker/internal/service"
)

// TestQuestLifecycle drives a quest through its whole lifecycle with the
// real services over an in-memory store: fill the roster, reject the
// fifth join, launch, complete, then verify everything is frozen.
func TestQuestLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fake := newFakeStore()
	viewer := service.NewQuestViewer(fake)
	crew := service.NewCrewSwitchboard(fake)
	ledger := service.NewJourneyLedger(fake)
	ops := service.NewQuestOps(fake)

	const commanderID = int32(1)
	questID, err := ops.Add(ctx, domain.AddQuestInput{Name: "Slay the wyvern"}, commanderID)
	require.NoError(t, err)

	// Launching an empty quest violates the occupancy guard.
	assert.ErrorIs(t, ledger.Launch(ctx, questID, commanderID), domain.ErrInvalidLaunchCondition)

	// Four adventurers fill the roster.
	for adventurerID := int32(1); adventurerID <= 4; adventurerID++ {
		require.NoError(t, crew.Join(ctx, questID, adventurerID))
	}
	view, err := viewer.ViewDetails(ctx, questID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), view.AdventurerCount)
	assert.Equal(t, domain.StatusOpen, view.Status)

	// The fifth is rejected on capacity, not on status.
	assert.ErrorIs(t, crew.Join(ctx, questID, 5), domain.ErrQuestFull)

	require.NoError(t, ledger.Launch(ctx, questID, commanderID))
	view, err = viewer.ViewDetails(ctx, questID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInJourney, view.Status)

	// In journey: the roster is frozen. The capacity guard still runs
	// first, so a full quest reports full before it reports not joinable.
	assert.ErrorIs(t, crew.Join(ctx, questID, 5), domain.ErrQuestFull)
	assert.ErrorIs(t, crew.Leave(ctx, questID, 1), domain.ErrQuestNotLeavable)

	require.NoError(t, ledger.Complete(ctx, questID, commanderID))
	view, err = viewer.ViewDetails(ctx, questID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, view.Status)

	// Completed has no outbound transitions and admits no roster change.
	assert.ErrorIs(t, crew.Join(ctx, questID, 5), domain.ErrQuestFull)
	assert.ErrorIs(t, crew.Leave(ctx, questID, 1), domain.ErrQuestNotLeavable)
	assert.ErrorIs(t, ledger.Launch(ctx, questID, commanderID), domain.ErrInvalidLaunchCondition)
	assert.ErrorIs(t, ledger.Complete(ctx, questID, commanderID), domain.ErrInvalidCompletionCondition)
	assert.ErrorIs(t, ledger.MarkFailed(ctx, questID, commanderID), domain.ErrInvalidFailureCondition)
}

// TestFailedQuestIsReEnterable checks the Failed -> joinable -> relaunch
// loop.
func TestFailedQuestIsReEnterable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fake := newFakeStore()
	crew := service.NewCrewSwitchboard(fake)
	ledger := service.NewJourneyLedger(fake)
	ops := service.NewQuestOps(fake)

	const commanderID = int32(1)
	questID, err := ops.Add(ctx, domain.AddQuestInput{Name: "Guard the gate"}, commanderID)
	require.NoError(t, err)

	require.NoError(t, crew.Join(ctx, questID, 1))
	require.NoError(t, ledger.Launch(ctx, questID, commanderID))

	// Not full, so the rejection comes from the status guard.
	assert.ErrorIs(t, crew.Join(ctx, questID, 2), domain.ErrQuestNotJoinable)

	require.NoError(t, ledger.MarkFailed(ctx, questID, commanderID))

	// Failed quests accept roster changes and another launch.
	require.NoError(t, crew.Join(ctx, questID, 2))
	require.NoError(t, crew.Leave(ctx, questID, 1))
	require.NoError(t, ledger.Launch(ctx, questID, commanderID))
}

// TestJoinLeaveRoundTrip verifies a join/leave pair restores the count.
func TestJoinLeaveRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fake := newFakeStore()
	viewer := service.NewQuestViewer(fake)
	crew := service.NewCrewSwitchboard(fake)
	ops := service.NewQuestOps(fake)

	questID, err := ops.Add(ctx, domain.AddQuestInput{Name: "Escort the caravan"}, 1)
	require.NoError(t, err)
	require.NoError(t, crew.Join(ctx, questID, 1))

	before, err := viewer.CountParticipants(ctx, questID)
	require.NoError(t, err)

	require.NoError(t, crew.Join(ctx, questID, 2))
	require.NoError(t, crew.Leave(ctx, questID, 2))

	after, err := viewer.CountParticipants(ctx, questID)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// Leaving again changes nothing and does not error.
	require.NoError(t, crew.Leave(ctx, questID, 2))
	again, err := viewer.CountParticipants(ctx, questID)
	require.NoError(t, err)
	assert.Equal(t, before, again)
}
