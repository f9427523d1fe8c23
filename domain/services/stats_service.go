package services

import (
	"context"
	"fmt"

	"wordleworld/domain/entities"
	"wordleworld/domain/interfaces"
)

// statsService implements the StatsService interface
type statsService struct {
	statsRepo  interfaces.StatsRepository
	streakRepo interfaces.StreakRepository
}

// NewStatsService creates a new stats service
func NewStatsService(statsRepo interfaces.StatsRepository, streakRepo interfaces.StreakRepository) interfaces.StatsService {
	return &statsService{
		statsRepo:  statsRepo,
		streakRepo: streakRepo,
	}
}

// GetUserStats assembles a user's lifetime counters and streak
func (s *statsService) GetUserStats(ctx context.Context, discordID int64) (*entities.UserStats, error) {
	counters, err := s.statsRepo.GetForUser(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats for user %d: %w", discordID, err)
	}
	streak, err := s.streakRepo.Get(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get streak for user %d: %w", discordID, err)
	}

	stats := &entities.UserStats{
		DiscordID:     discordID,
		GamesPlayed:   counters[entities.StatGamesPlayed],
		GamesWon:      counters[entities.StatGamesWon],
		Snipes:        counters[entities.StatSnipes],
		Sniped:        counters[entities.StatSniped],
		PotWins:       counters[entities.StatPotWins],
		BountyWins:    counters[entities.StatBountyWins],
		DungeonRuns:   counters[entities.StatDungeonRuns],
		CurrentStreak: streak.Current,
		BestStreak:    streak.Best,
	}
	stats.CalculateWinPercentage()
	return stats, nil
}
