package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDungeonJoinGate(t *testing.T) {
	s := NewDungeonSession(1, 200, 42, 2)

	assert.True(t, s.Join(7))
	assert.False(t, s.Join(7), "double join is a no-op")
	assert.True(t, s.IsParticipant(42), "owner is always in")

	require.True(t, s.LockGate("crane"))
	assert.Equal(t, DungeonActive, s.State)
	assert.Equal(t, 4, s.Board.MaxAttempts())

	assert.False(t, s.Join(8), "gate is closed after lock")
	assert.False(t, s.LockGate("slate"), "gate cannot be locked twice")
}

func TestDungeonRoundSolvedBanksIntoPool(t *testing.T) {
	s := NewDungeonSession(1, 200, 42, 1)
	require.True(t, s.LockGate("crane"))

	_, outcome, err := s.Board.Play("crane")
	require.NoError(t, err)
	require.Equal(t, OutcomeSolved, outcome)

	// Tier 1: first-attempt payout 5 times multiplier 3.
	reward := s.RoundSolved()
	assert.Equal(t, int64(15), reward)
	assert.Equal(t, int64(15), s.Pool)
	assert.Equal(t, DungeonAwaitingDecision, s.State)
	assert.Equal(t, []string{"crane"}, s.SolvedRounds)

	require.True(t, s.ContinueRound("slate"))
	assert.Equal(t, DungeonActive, s.State)
	assert.Equal(t, 0, s.Board.AttemptCount())
}

func TestDungeonFailPayoutHalvesRoundedUp(t *testing.T) {
	s := NewDungeonSession(1, 200, 42, 3)
	s.Pool = 7
	assert.Equal(t, int64(4), s.FailPayout())

	s.Pool = 8
	assert.Equal(t, int64(4), s.FailPayout())

	s.Pool = 0
	assert.Equal(t, int64(0), s.FailPayout())
}

func TestDungeonParticipantsStableOrder(t *testing.T) {
	s := NewDungeonSession(1, 200, 42, 2)
	s.Join(7)
	s.Join(99)
	assert.Equal(t, []int64{7, 42, 99}, s.Participants())
}
