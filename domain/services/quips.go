package services

import "math/rand"

// failQuips are consolation lines for the exhausted path.
var failQuips = []string{
	"The dictionary remains undefeated.",
	"So close, and yet so far.",
	"The word wins this round.",
	"Better luck next time.",
	"That one was cursed, clearly.",
	"Five letters, infinite pain.",
	"Shake it off and queue again.",
}

func randomQuip(rng *rand.Rand) string {
	return failQuips[rng.Intn(len(failQuips))]
}
