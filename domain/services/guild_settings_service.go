package services

import (
	"context"
	"fmt"

	"wordleworld/domain/entities"
	"wordleworld/domain/interfaces"
)

// guildSettingsService implements the GuildSettingsService interface
type guildSettingsService struct {
	guildSettingsRepo interfaces.GuildSettingsRepository
}

// NewGuildSettingsService creates a new guild settings service
func NewGuildSettingsService(guildSettingsRepo interfaces.GuildSettingsRepository) interfaces.GuildSettingsService {
	return &guildSettingsService{
		guildSettingsRepo: guildSettingsRepo,
	}
}

// GetOrCreateSettings retrieves guild settings or creates default ones if not found
func (s *guildSettingsService) GetOrCreateSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error) {
	settings, err := s.guildSettingsRepo.GetOrCreateGuildSettings(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create guild settings: %w", err)
	}
	return settings, nil
}

// UpdateWordleChannel updates the game announcement channel for a guild
func (s *guildSettingsService) UpdateWordleChannel(ctx context.Context, guildID int64, channelID *int64) error {
	settings, err := s.guildSettingsRepo.GetOrCreateGuildSettings(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild settings: %w", err)
	}

	// Can be nil to disable
	settings.SetWordleChannel(channelID)

	if err := s.guildSettingsRepo.UpdateGuildSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to update guild settings: %w", err)
	}
	return nil
}

// UpdateBountyChannel updates the bounty channel for a guild
func (s *guildSettingsService) UpdateBountyChannel(ctx context.Context, guildID int64, channelID *int64) error {
	settings, err := s.guildSettingsRepo.GetOrCreateGuildSettings(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild settings: %w", err)
	}

	settings.SetBountyChannel(channelID)

	if err := s.guildSettingsRepo.UpdateGuildSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to update guild settings: %w", err)
	}
	return nil
}

// UpdateHighRollerRole updates the high roller role for a guild
func (s *guildSettingsService) UpdateHighRollerRole(ctx context.Context, guildID int64, roleID *int64) error {
	settings, err := s.guildSettingsRepo.GetOrCreateGuildSettings(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild settings: %w", err)
	}

	settings.SetHighRollerRole(roleID)

	if err := s.guildSettingsRepo.UpdateGuildSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to update guild settings: %w", err)
	}
	return nil
}

// UpdateStoneKeeperRole updates the stone keeper role for a guild
func (s *guildSettingsService) UpdateStoneKeeperRole(ctx context.Context, guildID int64, roleID *int64) error {
	settings, err := s.guildSettingsRepo.GetOrCreateGuildSettings(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild settings: %w", err)
	}

	settings.SetStoneKeeperRole(roleID)

	if err := s.guildSettingsRepo.UpdateGuildSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to update guild settings: %w", err)
	}
	return nil
}

// ListRoleTiers returns the guild's balance role tiers
func (s *guildSettingsService) ListRoleTiers(ctx context.Context, guildID int64) ([]*entities.RoleTier, error) {
	tiers, err := s.guildSettingsRepo.ListRoleTiers(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list role tiers: %w", err)
	}
	return tiers, nil
}

// SetRoleTier creates or updates a balance role tier
func (s *guildSettingsService) SetRoleTier(ctx context.Context, guildID, roleID, minBalance int64) error {
	if minBalance < 0 {
		return fmt.Errorf("tier threshold must not be negative")
	}
	tier := &entities.RoleTier{GuildID: guildID, RoleID: roleID, MinBalance: minBalance}
	if err := s.guildSettingsRepo.UpsertRoleTier(ctx, tier); err != nil {
		return fmt.Errorf("failed to set role tier: %w", err)
	}
	return nil
}

// RemoveRoleTier deletes a balance role tier
func (s *guildSettingsService) RemoveRoleTier(ctx context.Context, guildID, roleID int64) error {
	if err := s.guildSettingsRepo.DeleteRoleTier(ctx, guildID, roleID); err != nil {
		return fmt.Errorf("failed to remove role tier: %w", err)
	}
	return nil
}
