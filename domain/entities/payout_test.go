package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayoutForAttempt(t *testing.T) {
	expected := map[int]int64{1: 5, 2: 4, 3: 3, 4: 2, 5: 1}
	for attempt, want := range expected {
		assert.Equal(t, want, PayoutForAttempt(attempt), "attempt %d", attempt)
	}

	assert.Equal(t, int64(0), PayoutForAttempt(0))
	assert.Equal(t, int64(0), PayoutForAttempt(6))
	assert.Equal(t, int64(0), PayoutForAttempt(-1))
}

func TestSnipePayoutIsNotClamped(t *testing.T) {
	// One better than the owner's next attempt would pay.
	assert.Equal(t, int64(5), SnipePayout(0))
	assert.Equal(t, int64(2), SnipePayout(3))
	assert.Equal(t, int64(1), SnipePayout(4))
	// Against a full board the effective attempt is six, which pays
	// nothing, and the shot cost is still gone.
	assert.Equal(t, int64(0), SnipePayout(5))
}

func TestDungeonTierParameters(t *testing.T) {
	tests := []struct {
		tier       int
		tries      int
		multiplier int64
	}{
		{tier: 1, tries: 3, multiplier: 3},
		{tier: 2, tries: 4, multiplier: 2},
		{tier: 3, tries: 5, multiplier: 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.tries, DungeonTries(tt.tier), "tier %d tries", tt.tier)
		assert.Equal(t, tt.multiplier, DungeonMultiplier(tt.tier), "tier %d multiplier", tt.tier)
	}
	assert.Equal(t, 0, DungeonTries(4))
	assert.Equal(t, int64(0), DungeonMultiplier(0))
}

func TestTicketForTierPayout(t *testing.T) {
	k, err := TicketForTier(2)
	assert.NoError(t, err)
	assert.Equal(t, ItemTicketT2, k)

	_, err = TicketForTier(4)
	assert.Error(t, err)
}
