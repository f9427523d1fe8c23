package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"wordleworld/bot/common"
	"wordleworld/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleWordleChannel handles the /settings wordle-channel command
func (f *Feature) handleWordleChannel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.updateChannelSetting(s, i, "announcement channel",
		func(svc servicesGuildSettings, ctx context.Context, guildID int64, channelID *int64) error {
			return svc.UpdateWordleChannel(ctx, guildID, channelID)
		})
}

// handleBountyChannel handles the /settings bounty-channel command
func (f *Feature) handleBountyChannel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.updateChannelSetting(s, i, "bounty channel",
		func(svc servicesGuildSettings, ctx context.Context, guildID int64, channelID *int64) error {
			return svc.UpdateBountyChannel(ctx, guildID, channelID)
		})
}

// handleHighRollerRole handles the /settings high-roller-role command
func (f *Feature) handleHighRollerRole(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.updateRoleSetting(s, i, "high roller role",
		func(svc servicesGuildSettings, ctx context.Context, guildID int64, roleID *int64) error {
			return svc.UpdateHighRollerRole(ctx, guildID, roleID)
		})
}

// handleStoneKeeperRole handles the /settings stone-keeper-role command
func (f *Feature) handleStoneKeeperRole(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.updateRoleSetting(s, i, "stone keeper role",
		func(svc servicesGuildSettings, ctx context.Context, guildID int64, roleID *int64) error {
			return svc.UpdateStoneKeeperRole(ctx, guildID, roleID)
		})
}

// servicesGuildSettings narrows the settings service surface the
// closures use.
type servicesGuildSettings = interface {
	UpdateWordleChannel(ctx context.Context, guildID int64, channelID *int64) error
	UpdateBountyChannel(ctx context.Context, guildID int64, channelID *int64) error
	UpdateHighRollerRole(ctx context.Context, guildID int64, roleID *int64) error
	UpdateStoneKeeperRole(ctx context.Context, guildID int64, roleID *int64) error
}

// updateChannelSetting wraps the shared flow of the channel settings:
// admin gate, optional channel option, transactional update.
func (f *Feature) updateChannelSetting(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	label string,
	update func(svc servicesGuildSettings, ctx context.Context, guildID int64, channelID *int64) error,
) {
	if !common.IsUserAdmin(s, i.GuildID, i.Member.User.ID) {
		common.RespondWithError(s, i, "You need administrator permissions to use this command")
		return
	}

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID: %v", err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}

	options := i.ApplicationCommandData().Options[0].Options
	var channelID *int64
	if len(options) > 0 && options[0].Name == "channel" {
		channelIDStr := options[0].ChannelValue(s).ID
		if channelIDStr != "" {
			channelIDInt, err := strconv.ParseInt(channelIDStr, 10, 64)
			if err != nil {
				log.Errorf("Failed to parse channel ID: %v", err)
				common.RespondWithError(s, i, "Invalid channel selected")
				return
			}
			channelID = &channelIDInt
		}
	}

	ctx := context.Background()
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update settings")
		return
	}
	defer uow.Rollback()

	guildSettingsService := services.NewGuildSettingsService(uow.GuildSettingsRepository())
	if err := update(guildSettingsService, ctx, guildID, channelID); err != nil {
		log.Errorf("Failed to update %s: %v", label, err)
		common.RespondWithError(s, i, "Failed to update settings")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update settings")
		return
	}

	var message string
	if channelID != nil {
		message = fmt.Sprintf("✅ The %s is now <#%d>", label, *channelID)
	} else {
		message = fmt.Sprintf("✅ The %s is now unset", label)
	}
	respondEphemeral(s, i, message)
}

// updateRoleSetting is updateChannelSetting's twin for the role settings.
func (f *Feature) updateRoleSetting(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	label string,
	update func(svc servicesGuildSettings, ctx context.Context, guildID int64, roleID *int64) error,
) {
	if !common.IsUserAdmin(s, i.GuildID, i.Member.User.ID) {
		common.RespondWithError(s, i, "You need administrator permissions to use this command")
		return
	}

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID: %v", err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}

	options := i.ApplicationCommandData().Options[0].Options
	var roleID *int64
	if len(options) > 0 && options[0].Name == "role" {
		roleIDStr := options[0].RoleValue(s, "").ID
		if roleIDStr != "" {
			roleIDInt, err := strconv.ParseInt(roleIDStr, 10, 64)
			if err != nil {
				log.Errorf("Failed to parse role ID: %v", err)
				common.RespondWithError(s, i, "Invalid role selected")
				return
			}
			roleID = &roleIDInt
		}
	}

	ctx := context.Background()
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update settings")
		return
	}
	defer uow.Rollback()

	guildSettingsService := services.NewGuildSettingsService(uow.GuildSettingsRepository())
	if err := update(guildSettingsService, ctx, guildID, roleID); err != nil {
		log.Errorf("Failed to update %s: %v", label, err)
		common.RespondWithError(s, i, "Failed to update settings")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update settings")
		return
	}

	var message string
	if roleID != nil {
		message = fmt.Sprintf("✅ The %s is now <@&%d>", label, *roleID)
	} else {
		message = fmt.Sprintf("✅ The %s is now disabled", label)
	}
	respondEphemeral(s, i, message)
}

// handleTier handles the /settings tier subcommand group
func (f *Feature) handleTier(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !common.IsUserAdmin(s, i.GuildID, i.Member.User.ID) {
		common.RespondWithError(s, i, "You need administrator permissions to use this command")
		return
	}

	group := i.ApplicationCommandData().Options[0]
	if len(group.Options) == 0 {
		return
	}
	sub := group.Options[0]

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID: %v", err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}

	ctx := context.Background()
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update role tiers")
		return
	}
	defer uow.Rollback()

	guildSettingsService := services.NewGuildSettingsService(uow.GuildSettingsRepository())

	var message string
	switch sub.Name {
	case "set":
		var roleID, minBalance int64
		for _, opt := range sub.Options {
			switch opt.Name {
			case "role":
				roleID, err = strconv.ParseInt(opt.RoleValue(s, "").ID, 10, 64)
				if err != nil {
					log.Errorf("Failed to parse role ID: %v", err)
					common.RespondWithError(s, i, "Invalid role selected")
					return
				}
			case "min_balance":
				minBalance = opt.IntValue()
			}
		}
		if err := guildSettingsService.SetRoleTier(ctx, guildID, roleID, minBalance); err != nil {
			log.Errorf("Failed to set role tier: %v", err)
			common.RespondWithError(s, i, "Failed to update role tiers")
			return
		}
		message = fmt.Sprintf("✅ <@&%d> is now granted at %s", roleID, common.FormatShekels(minBalance))

	case "remove":
		roleID, err := strconv.ParseInt(sub.Options[0].RoleValue(s, "").ID, 10, 64)
		if err != nil {
			log.Errorf("Failed to parse role ID: %v", err)
			common.RespondWithError(s, i, "Invalid role selected")
			return
		}
		if err := guildSettingsService.RemoveRoleTier(ctx, guildID, roleID); err != nil {
			log.Errorf("Failed to remove role tier: %v", err)
			common.RespondWithError(s, i, "Failed to update role tiers")
			return
		}
		message = fmt.Sprintf("✅ <@&%d> is no longer a balance tier", roleID)

	case "list":
		tiers, err := guildSettingsService.ListRoleTiers(ctx, guildID)
		if err != nil {
			log.Errorf("Failed to list role tiers: %v", err)
			common.RespondWithError(s, i, "Failed to list role tiers")
			return
		}
		if len(tiers) == 0 {
			message = "No balance tiers configured"
		} else {
			var lines []string
			for _, tier := range tiers {
				lines = append(lines, fmt.Sprintf("<@&%d> at %s", tier.RoleID, common.FormatShekels(tier.MinBalance)))
			}
			message = "Balance tiers:\n" + strings.Join(lines, "\n")
		}

	default:
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to update role tiers")
		return
	}

	respondEphemeral(s, i, message)
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Failed to respond to interaction: %v", err)
	}
}
