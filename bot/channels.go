package bot

import (
	"context"
	"fmt"

	"wordleworld/bot/common"
	"wordleworld/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// channelManager creates and tears down the private channels games are
// played in. Each game channel is hidden from the guild and visible
// only to its participants and the bot.
type channelManager struct {
	session *discordgo.Session
}

// NewChannelManager creates a channel manager backed by the Discord session.
func NewChannelManager(session *discordgo.Session) interfaces.ChannelManager {
	return &channelManager{session: session}
}

// CreateGameChannel makes a text channel visible to the listed users and
// returns its ID.
func (c *channelManager) CreateGameChannel(ctx context.Context, guildID int64, name string, userIDs ...int64) (int64, error) {
	guildIDStr := common.FormatUserID(guildID)

	overwrites := []*discordgo.PermissionOverwrite{
		{
			// @everyone shares its ID with the guild
			ID:   guildIDStr,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:    c.session.State.User.ID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages,
		},
	}
	for _, userID := range userIDs {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    common.FormatUserID(userID),
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages,
		})
	}

	channel, err := c.session.GuildChannelCreateComplex(guildIDStr, discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildText,
		PermissionOverwrites: overwrites,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create game channel %q in guild %d: %w", name, guildID, err)
	}

	channelID, err := common.ParseUserID(channel.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to parse created channel ID %s: %w", channel.ID, err)
	}
	return channelID, nil
}

// GrantAccess adds a user to an existing game channel.
func (c *channelManager) GrantAccess(ctx context.Context, channelID, userID int64) error {
	err := c.session.ChannelPermissionSet(
		common.FormatUserID(channelID),
		common.FormatUserID(userID),
		discordgo.PermissionOverwriteTypeMember,
		discordgo.PermissionViewChannel|discordgo.PermissionSendMessages,
		0,
	)
	if err != nil {
		return fmt.Errorf("failed to grant user %d access to channel %d: %w", userID, channelID, err)
	}
	return nil
}

// DeleteChannel tears a game channel down.
func (c *channelManager) DeleteChannel(ctx context.Context, channelID int64) error {
	if _, err := c.session.ChannelDelete(common.FormatUserID(channelID)); err != nil {
		return fmt.Errorf("failed to delete channel %d: %w", channelID, err)
	}
	log.WithField("channel_id", channelID).Debug("deleted game channel")
	return nil
}
