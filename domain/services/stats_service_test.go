package services

import (
	"context"
	"testing"

	"wordleworld/domain/entities"
	"wordleworld/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsGetUserStats(t *testing.T) {
	statsRepo := new(testhelpers.MockStatsRepository)
	streakRepo := new(testhelpers.MockStreakRepository)
	svc := NewStatsService(statsRepo, streakRepo)

	statsRepo.On("GetForUser", mock.Anything, testUserID).Return(map[entities.StatKind]int64{
		entities.StatGamesPlayed: 10,
		entities.StatGamesWon:    4,
		entities.StatSnipes:      2,
	}, nil)
	streakRepo.On("Get", mock.Anything, testUserID).Return(&entities.Streak{
		DiscordID: testUserID, Current: 3, Best: 7,
	}, nil)

	stats, err := svc.GetUserStats(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.GamesPlayed)
	assert.Equal(t, int64(4), stats.GamesWon)
	assert.Equal(t, int64(2), stats.Snipes)
	assert.Zero(t, stats.PotWins, "missing counters read as zero")
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 7, stats.BestStreak)
	assert.InDelta(t, 40.0, stats.WinPercentage, 0.01)
}
