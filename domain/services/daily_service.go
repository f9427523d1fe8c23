package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wordleworld/domain/entities"
	"wordleworld/domain/interfaces"
	"wordleworld/domain/utils"
)

// ErrAlreadyClaimed means the user took their daily reward already.
var ErrAlreadyClaimed = errors.New("already claimed today")

// ErrAlreadyBegged means the user begged for stones already today.
var ErrAlreadyBegged = errors.New("already begged today")

// dailyService implements the DailyService interface
type dailyService struct {
	guildID   int64
	ledger    interfaces.LedgerService
	dailyRepo interfaces.DailyPlayRepository

	now func() time.Time
}

// NewDailyService creates a new daily claim service scoped to one guild
func NewDailyService(
	guildID int64,
	ledger interfaces.LedgerService,
	dailyRepo interfaces.DailyPlayRepository,
) interfaces.DailyService {
	return &dailyService{
		guildID:   guildID,
		ledger:    ledger,
		dailyRepo: dailyRepo,
		now:       time.Now,
	}
}

// Claim grants the daily reward once per UK-local day. MarkClaimed is
// the gate: it flips atomically, so two racing claims cannot both pay.
func (s *dailyService) Claim(ctx context.Context, userID int64) (int64, error) {
	today := utils.UKDateString(s.now())

	claimed, err := s.dailyRepo.MarkClaimed(ctx, userID, today)
	if err != nil {
		return 0, fmt.Errorf("failed to mark daily claim for user %d: %w", userID, err)
	}
	if !claimed {
		return 0, ErrAlreadyClaimed
	}

	balance, err := s.ledger.AdjustBalance(ctx, userID, entities.DailyClaimAmount, entities.ReasonDaily)
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// Beg grants the daily stones once per UK-local day, gated the same
// way as Claim.
func (s *dailyService) Beg(ctx context.Context, userID int64) (int64, error) {
	today := utils.UKDateString(s.now())

	begged, err := s.dailyRepo.MarkBegged(ctx, userID, today)
	if err != nil {
		return 0, fmt.Errorf("failed to mark daily beg for user %d: %w", userID, err)
	}
	if !begged {
		return 0, ErrAlreadyBegged
	}

	stones, err := s.ledger.AdjustItem(ctx, userID, entities.ItemStone, entities.DailyBegAmount)
	if err != nil {
		return 0, err
	}
	return stones, nil
}
