package services

import (
	"wordleworld/domain/entities"
	"wordleworld/domain/words"
)

// validateGuess normalizes a raw guess and applies the validity rules.
// Invalid guesses never reach a board, so they never consume an attempt.
func validateGuess(raw string) (string, error) {
	w := entities.NormalizeWord(raw)
	if len(w) != entities.WordLength {
		return "", ErrNotFiveLetters
	}
	if !words.IsValidGuess(w) {
		return "", ErrNotInDictionary
	}
	return w, nil
}
