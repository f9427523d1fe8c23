package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketForTier(t *testing.T) {
	for tier, want := range map[int]ItemKind{1: ItemTicketT1, 2: ItemTicketT2, 3: ItemTicketT3} {
		kind, err := TicketForTier(tier)
		require.NoError(t, err)
		assert.Equal(t, want, kind)
	}

	_, err := TicketForTier(4)
	assert.Error(t, err)
}

func TestItemKindDisplayName(t *testing.T) {
	assert.Equal(t, "Fried Chicken", ItemChicken.DisplayName())
	assert.Equal(t, "Sniper Badge", ItemSniperBadge.DisplayName())
	assert.Equal(t, "unknown_kind", ItemKind("unknown_kind").DisplayName(),
		"kinds written by newer versions still render")
}
