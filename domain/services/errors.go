package services

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the rejection paths every handler needs to tell
// apart. Validation and capacity rejections are terminal for the single
// interaction that raised them and never mutate game state.
var (
	// ErrNotInDictionary means the guess is not a playable word.
	ErrNotInDictionary = errors.New("word not in dictionary")

	// ErrNotFiveLetters means the guess is malformed.
	ErrNotFiveLetters = errors.New("guesses must be exactly five letters")

	// ErrSessionNotFound means no active game exists at the key.
	ErrSessionNotFound = errors.New("no active game here")

	// ErrGuessCooldown means the user guessed again too quickly.
	ErrGuessCooldown = errors.New("guess cooldown active")

	// ErrNotYourTurn covers dungeon signals from non-owners and snipes
	// aimed at your own game.
	ErrNotYourTurn = errors.New("not yours to act on")

	// ErrAlreadySniped means this sniper already took their one shot
	// at the target game.
	ErrAlreadySniped = errors.New("you already took your shot at this game")
)

// SessionConflictError signals that a session already exists for the
// key. It carries the existing session's channel so callers redirect
// the user there instead of erroring. A zero channel means the
// conflicting start is still in flight and has no channel yet.
type SessionConflictError struct {
	ChannelID int64
}

func (e *SessionConflictError) Error() string {
	if e.ChannelID == 0 {
		return "you already have a game starting"
	}
	return fmt.Sprintf("you already have an active game in channel %d", e.ChannelID)
}

// InsufficientBalanceError reports a rejected charge with the concrete
// shortfall.
type InsufficientBalanceError struct {
	Required  int64
	Available int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("need %d but only have %d", e.Required, e.Available)
}

// DailyCapError reports the solo cap with the time it resets.
type DailyCapError struct {
	Cap     int
	ResetAt time.Time
}

func (e *DailyCapError) Error() string {
	return fmt.Sprintf("daily limit of %d games reached, resets at %s", e.Cap, e.ResetAt.Format("15:04 MST"))
}

// InsufficientItemError reports a rejected inventory spend.
type InsufficientItemError struct {
	Item string
}

func (e *InsufficientItemError) Error() string {
	return fmt.Sprintf("you do not have a %s", e.Item)
}
