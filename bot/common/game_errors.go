package common

import (
	"errors"
	"fmt"

	"wordleworld/domain/services"
)

// GameErrorMessage translates a domain error into a user-facing line.
// Returns ok=false for unexpected errors that should get the generic
// failure message instead.
func GameErrorMessage(err error) (string, bool) {
	var conflict *services.SessionConflictError
	if errors.As(err, &conflict) {
		if conflict.ChannelID == 0 {
			return "You already have a game starting, give it a second", true
		}
		return fmt.Sprintf("You already have a game running in <#%d>", conflict.ChannelID), true
	}

	var capErr *services.DailyCapError
	if errors.As(err, &capErr) {
		return fmt.Sprintf("You have played all %d games for today. Come back at %s",
			capErr.Cap, FormatDiscordTimestamp(capErr.ResetAt, "t")), true
	}

	var broke *services.InsufficientBalanceError
	if errors.As(err, &broke) {
		return fmt.Sprintf("That costs %s and you only have %s",
			FormatShekels(broke.Required), FormatShekels(broke.Available)), true
	}

	var noItem *services.InsufficientItemError
	if errors.As(err, &noItem) {
		return fmt.Sprintf("You do not have a %s", noItem.Item), true
	}

	switch {
	case errors.Is(err, services.ErrNotFiveLetters):
		return "Guesses must be exactly five letters", true
	case errors.Is(err, services.ErrNotInDictionary):
		return "That is not a word I know", true
	case errors.Is(err, services.ErrSessionNotFound):
		return "There is no active game here", true
	case errors.Is(err, services.ErrGuessCooldown):
		return "Slow down, you can guess again in a few seconds", true
	case errors.Is(err, services.ErrNotYourTurn):
		return "That is not yours to act on", true
	case errors.Is(err, services.ErrAlreadySniped):
		return "You already took your shot at that game", true
	case errors.Is(err, services.ErrAlreadyClaimed):
		return "You already claimed today. Come back after midnight UK time", true
	case errors.Is(err, services.ErrAlreadyBegged):
		return "You already begged today. Come back after midnight UK time", true
	case errors.Is(err, services.ErrGateClosed):
		return "The gate is closed, this run already started", true
	}

	return "", false
}
