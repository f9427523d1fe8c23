package games

import (
	"sync"
	"time"
)

// BountyPhase is the bounty lifecycle stage. Pending and armed are
// mutually exclusive for a guild because both live under the same
// registry key.
type BountyPhase int

const (
	BountyPending BountyPhase = iota
	BountyArmed
)

const (
	// BountyQuorum is the distinct arm reactions needed to start the
	// countdown.
	BountyQuorum = 2
	// BountyArmDelay is how long after quorum the prompt stays pending
	// before the scheduler promotes it.
	BountyArmDelay = 60 * time.Second
	// BountyExpiry bounds both the pending and the armed phase.
	BountyExpiry = 59 * time.Minute
	// BountyGuessCooldown is the per-user gap between bounty guesses.
	BountyGuessCooldown = 5 * time.Second
)

// BountySession is the guild-wide bounty singleton. It starts pending,
// collecting arm reactions; once quorum holds through the countdown the
// scheduler arms it with a secret and guessing opens.
//
// Reaction adds and removals are serialized per guild by the caller, so
// quorum-reached and quorum-lost transitions cannot be reordered. The
// internal mutex still guards against the scheduler tick touching the
// session concurrently.
type BountySession struct {
	mu  sync.Mutex
	key Key

	Phase     BountyPhase
	MessageID int64
	channelID int64

	CreatedAt time.Time
	ExpiresAt time.Time

	armingUsers map[int64]struct{}
	ArmingAt    *time.Time

	Secret    string
	StartedAt time.Time
	lastGuess map[int64]time.Time
}

// NewBountySession creates a pending bounty prompt for a guild.
func NewBountySession(guildID, channelID, messageID int64, now time.Time) *BountySession {
	return &BountySession{
		key:         BountyKey(guildID),
		Phase:       BountyPending,
		MessageID:   messageID,
		channelID:   channelID,
		CreatedAt:   now,
		ExpiresAt:   now.Add(BountyExpiry),
		armingUsers: make(map[int64]struct{}),
		lastGuess:   make(map[int64]time.Time),
	}
}

func (s *BountySession) Key() Key         { return s.key }
func (s *BountySession) ChannelID() int64 { return s.channelID }

func (s *BountySession) Lock()   { s.mu.Lock() }
func (s *BountySession) Unlock() { s.mu.Unlock() }

// ArmerCount returns how many distinct users currently hold an arm
// reaction. Caller must hold the lock.
func (s *BountySession) ArmerCount() int { return len(s.armingUsers) }

// AddArmer records an arm reaction. Reaching quorum starts the countdown
// once; further reactions while the countdown runs change nothing.
// Caller must hold the lock.
func (s *BountySession) AddArmer(userID int64, now time.Time) {
	if s.Phase != BountyPending {
		return
	}
	s.armingUsers[userID] = struct{}{}
	if len(s.armingUsers) >= BountyQuorum && s.ArmingAt == nil {
		at := now.Add(BountyArmDelay)
		s.ArmingAt = &at
	}
}

// RemoveArmer drops an arm reaction. Falling below quorum cancels the
// countdown so an armed session can never materialize from a prompt that
// lost its backers. Caller must hold the lock.
func (s *BountySession) RemoveArmer(userID int64) {
	if s.Phase != BountyPending {
		return
	}
	delete(s.armingUsers, userID)
	if len(s.armingUsers) < BountyQuorum {
		s.ArmingAt = nil
	}
}

// ReadyToArm reports whether the scheduler should promote this prompt:
// still pending, countdown elapsed, quorum still standing. Caller must
// hold the lock.
func (s *BountySession) ReadyToArm(now time.Time) bool {
	return s.Phase == BountyPending &&
		s.ArmingAt != nil && !now.Before(*s.ArmingAt) &&
		len(s.armingUsers) >= BountyQuorum
}

// Arm transitions pending to armed with a fresh secret and expiry window.
// Caller must hold the lock.
func (s *BountySession) Arm(secret string, now time.Time) {
	s.Phase = BountyArmed
	s.Secret = secret
	s.StartedAt = now
	s.ExpiresAt = now.Add(BountyExpiry)
	s.ArmingAt = nil
}

// Expired reports whether the current phase has outlived its window.
// Caller must hold the lock.
func (s *BountySession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// CooldownRemaining returns how long until the user may guess again,
// zero when they are clear. Caller must hold the lock.
func (s *BountySession) CooldownRemaining(userID int64, now time.Time) time.Duration {
	last, ok := s.lastGuess[userID]
	if !ok {
		return 0
	}
	if remaining := BountyGuessCooldown - now.Sub(last); remaining > 0 {
		return remaining
	}
	return 0
}

// TouchGuess stamps the user's cooldown clock. Caller must hold the lock.
func (s *BountySession) TouchGuess(userID int64, now time.Time) {
	s.lastGuess[userID] = now
}
