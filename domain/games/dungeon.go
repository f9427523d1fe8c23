package games

import (
	"sort"
	"sync"

	"wordleworld/domain/entities"
)

// DungeonState tracks where a dungeon session is in its round cycle.
type DungeonState int

const (
	// DungeonAwaitingStart is the join-gate phase before the owner locks.
	DungeonAwaitingStart DungeonState = iota
	// DungeonActive means a round is in progress.
	DungeonActive
	// DungeonAwaitingDecision follows a solved round: only the owner's
	// continue or cash-out signal moves the session on.
	DungeonAwaitingDecision
)

// DungeonSession is a channel-scoped cooperative run. Rewards accumulate
// in Pool across rounds and are only paid at settlement; a failed round
// settles immediately for half, a cash-out settles for the lot.
type DungeonSession struct {
	mu  sync.Mutex
	key Key

	GuildID int64
	OwnerID int64
	Tier    int
	State   DungeonState

	Pool         int64
	SolvedRounds []string
	Board        *Board

	participants map[int64]struct{}
}

// NewDungeonSession creates a session in the join-gate phase. The owner
// is always a participant.
func NewDungeonSession(guildID, channelID, ownerID int64, tier int) *DungeonSession {
	return &DungeonSession{
		key:          DungeonKey(channelID),
		GuildID:      guildID,
		OwnerID:      ownerID,
		Tier:         tier,
		State:        DungeonAwaitingStart,
		participants: map[int64]struct{}{ownerID: {}},
	}
}

func (s *DungeonSession) Key() Key         { return s.key }
func (s *DungeonSession) ChannelID() int64 { return s.key.ChannelID }

func (s *DungeonSession) Lock()   { s.mu.Lock() }
func (s *DungeonSession) Unlock() { s.mu.Unlock() }

// Join adds a participant during the gate phase. Returns false once the
// owner has locked the gate or the user is already in.
func (s *DungeonSession) Join(userID int64) bool {
	if s.State != DungeonAwaitingStart {
		return false
	}
	if _, in := s.participants[userID]; in {
		return false
	}
	s.participants[userID] = struct{}{}
	return true
}

// IsParticipant reports whether the user is inside this dungeon.
func (s *DungeonSession) IsParticipant(userID int64) bool {
	_, in := s.participants[userID]
	return in
}

// Participants returns the member IDs in a stable order for payouts and
// announcements.
func (s *DungeonSession) Participants() []int64 {
	out := make([]int64, 0, len(s.participants))
	for id := range s.participants {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LockGate closes joining and starts the first round on the given
// secret. Only valid from the gate phase.
func (s *DungeonSession) LockGate(secret string) bool {
	if s.State != DungeonAwaitingStart {
		return false
	}
	s.startRound(secret)
	return true
}

// ContinueRound begins the next round after a solved one.
func (s *DungeonSession) ContinueRound(secret string) bool {
	if s.State != DungeonAwaitingDecision {
		return false
	}
	s.startRound(secret)
	return true
}

func (s *DungeonSession) startRound(secret string) {
	s.Board = NewBoard(secret, entities.DungeonTries(s.Tier))
	s.State = DungeonActive
}

// RoundSolved banks the round: the attempt payout times the tier
// multiplier joins the pool and the session waits on the owner.
func (s *DungeonSession) RoundSolved() int64 {
	reward := entities.PayoutForAttempt(s.Board.AttemptCount()) * entities.DungeonMultiplier(s.Tier)
	s.Pool += reward
	s.SolvedRounds = append(s.SolvedRounds, s.Board.Secret())
	s.State = DungeonAwaitingDecision
	return reward
}

// FailPayout is what each participant receives when a round is lost:
// the pool halved, rounded up.
func (s *DungeonSession) FailPayout() int64 {
	return (s.Pool + 1) / 2
}
