package entities

// SoloMaxAttempts is the number of guesses a solo or bounty-free game allows.
const SoloMaxAttempts = 5

// PotMaxAttempts is the number of guesses a word pot game allows.
const PotMaxAttempts = 3

// SnipeCost is the shekels charged to fire a snipe at someone else's game.
const SnipeCost = 1

// PotEntryCost is the stake charged to start a word pot game. The same
// amount is what a failed game adds back into the pot.
const PotEntryCost = 1

// PotBase is the value the casino pot resets to after a win.
const PotBase = 5

// BountyPayout is the fixed prize for the first correct bounty guess.
const BountyPayout = 5

// soloPayouts maps attempt number (1-based, the attempt that solved it)
// to the shekels awarded.
var soloPayouts = [...]int64{0, 5, 4, 3, 2, 1}

// PayoutForAttempt returns the shekels awarded for solving on the given
// 1-based attempt. Attempts outside 1..5 pay zero.
func PayoutForAttempt(attempt int) int64 {
	if attempt < 1 || attempt >= len(soloPayouts) {
		return 0
	}
	return soloPayouts[attempt]
}

// SnipePayout returns the shekels a successful snipe pays: the payout position
// one past the owner's current guess count. Deliberately not clamped, so
// sniping a game that already has five guesses on the board pays zero and
// the sniper still loses the shot cost.
func SnipePayout(ownerGuesses int) int64 {
	return PayoutForAttempt(ownerGuesses + 1)
}

// DungeonTries returns the guesses allowed per dungeon round for a tier.
// Tier 1 is the hardest with the fewest tries.
func DungeonTries(tier int) int {
	switch tier {
	case 1:
		return 3
	case 2:
		return 4
	case 3:
		return 5
	default:
		return 0
	}
}

// DungeonMultiplier returns the reward multiplier for a dungeon tier.
// Inverse of difficulty: the hardest tier pays the most.
func DungeonMultiplier(tier int) int64 {
	switch tier {
	case 1:
		return 3
	case 2:
		return 2
	case 3:
		return 1
	default:
		return 0
	}
}
