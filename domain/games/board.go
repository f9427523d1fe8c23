package games

import (
	"fmt"

	"wordleworld/domain/entities"
)

// Outcome is the terminal status of a board after a guess.
type Outcome int

const (
	// OutcomeOngoing means attempts remain and the secret is unsolved.
	OutcomeOngoing Outcome = iota
	// OutcomeSolved means the last guess matched the secret.
	OutcomeSolved
	// OutcomeExhausted means the attempt budget ran out without solving.
	OutcomeExhausted
)

// Board is the shared guess loop used by every game kind: an append-only
// attempt list against a fixed secret, bounded by maxAttempts. A zero
// maxAttempts means unbounded, which the bounty phase uses.
type Board struct {
	secret      string
	maxAttempts int
	attempts    []entities.Attempt
}

// NewBoard creates a board for the given secret and attempt budget.
func NewBoard(secret string, maxAttempts int) *Board {
	return &Board{secret: secret, maxAttempts: maxAttempts}
}

// Secret returns the target word.
func (b *Board) Secret() string { return b.secret }

// Attempts returns the scored guesses so far. Callers must not mutate it.
func (b *Board) Attempts() []entities.Attempt { return b.attempts }

// AttemptCount returns how many valid guesses have been played.
func (b *Board) AttemptCount() int { return len(b.attempts) }

// MaxAttempts returns the attempt budget, zero when unbounded.
func (b *Board) MaxAttempts() int { return b.maxAttempts }

// Done reports whether the board reached a terminal outcome.
func (b *Board) Done() bool {
	return b.Outcome() != OutcomeOngoing
}

// Outcome returns the board's current status.
func (b *Board) Outcome() Outcome {
	if n := len(b.attempts); n > 0 && b.attempts[n-1].Pattern.AllCorrect() {
		return OutcomeSolved
	}
	if b.maxAttempts > 0 && len(b.attempts) >= b.maxAttempts {
		return OutcomeExhausted
	}
	return OutcomeOngoing
}

// Play scores one already-validated guess, appends it, and returns the
// attempt plus the resulting outcome. The caller is responsible for
// dictionary validation; a board never rejects a well-formed word, so a
// valid guess always lands on the attempt list.
func (b *Board) Play(guess string) (entities.Attempt, Outcome, error) {
	if b.Done() {
		return entities.Attempt{}, b.Outcome(), fmt.Errorf("board already finished")
	}
	pattern, err := entities.ScoreGuess(guess, b.secret)
	if err != nil {
		return entities.Attempt{}, OutcomeOngoing, err
	}
	attempt := entities.Attempt{Word: guess, Pattern: pattern}
	b.attempts = append(b.attempts, attempt)
	return attempt, b.Outcome(), nil
}
