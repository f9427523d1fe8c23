package games

import (
	"sync"

	"wordleworld/domain/entities"
)

// WordPotSession is one user's run at the shared casino pot. Staked is
// both the amount charged at entry and the amount a failed run adds back
// into the pot; the two are deliberately one field.
type WordPotSession struct {
	mu      sync.Mutex
	key     Key
	OwnerID int64
	Staked  int64
	Board   *Board
}

// NewWordPotSession creates a word pot session with the short budget.
func NewWordPotSession(guildID, channelID, ownerID int64, secret string) *WordPotSession {
	return &WordPotSession{
		key:     WordPotKey(guildID, channelID, ownerID),
		OwnerID: ownerID,
		Staked:  entities.PotEntryCost,
		Board:   NewBoard(secret, entities.PotMaxAttempts),
	}
}

func (s *WordPotSession) Key() Key         { return s.key }
func (s *WordPotSession) ChannelID() int64 { return s.key.ChannelID }

// Lock serializes guess handling on this session.
func (s *WordPotSession) Lock()   { s.mu.Lock() }
func (s *WordPotSession) Unlock() { s.mu.Unlock() }
