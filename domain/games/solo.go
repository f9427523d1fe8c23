package games

import (
	"sync"

	"wordleworld/domain/entities"
)

// SoloSession is one user's private game. StartDate records the UK-local
// date the daily counter was charged against, so a snipe can roll back
// the right day even across midnight.
type SoloSession struct {
	mu        sync.Mutex
	key       Key
	OwnerID   int64
	StartDate string
	Board     *Board

	snipers map[int64]struct{}
}

// NewSoloSession creates a solo session with the standard attempt budget.
func NewSoloSession(guildID, channelID, ownerID int64, secret, startDate string) *SoloSession {
	return &SoloSession{
		key:       SoloKey(guildID, channelID, ownerID),
		OwnerID:   ownerID,
		StartDate: startDate,
		Board:     NewBoard(secret, entities.SoloMaxAttempts),
		snipers:   make(map[int64]struct{}),
	}
}

func (s *SoloSession) Key() Key         { return s.key }
func (s *SoloSession) ChannelID() int64 { return s.key.ChannelID }

// Lock serializes guess and snipe handling on this session.
func (s *SoloSession) Lock()   { s.mu.Lock() }
func (s *SoloSession) Unlock() { s.mu.Unlock() }

// HasSniped reports whether the user already fired at this game.
func (s *SoloSession) HasSniped(userID int64) bool {
	_, tried := s.snipers[userID]
	return tried
}

// RecordSniper marks a user as having taken their shot at this game.
// Returns false if they already fired; each sniper gets exactly one.
func (s *SoloSession) RecordSniper(userID int64) bool {
	if _, tried := s.snipers[userID]; tried {
		return false
	}
	s.snipers[userID] = struct{}{}
	return true
}
