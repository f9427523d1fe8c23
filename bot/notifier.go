package bot

import (
	"context"
	"fmt"

	"wordleworld/application"
	"wordleworld/bot/common"
	"wordleworld/domain/interfaces"
	"wordleworld/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// notifier posts result cards and prompts to Discord channels. Guild
// announcements go to the configured wordle channel; if a guild never
// configured one they are silently dropped.
type notifier struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
}

// NewNotifier creates a notifier backed by the Discord session.
func NewNotifier(session *discordgo.Session, uowFactory application.UnitOfWorkFactory) interfaces.Notifier {
	return &notifier{
		session:    session,
		uowFactory: uowFactory,
	}
}

// Announce posts text to a channel.
func (n *notifier) Announce(ctx context.Context, channelID int64, text string) error {
	if _, err := n.session.ChannelMessageSend(common.FormatUserID(channelID), text); err != nil {
		return fmt.Errorf("failed to post to channel %d: %w", channelID, err)
	}
	return nil
}

// AnnounceGuild posts text to the guild's configured announcement
// channel. Guilds without one get nothing, not an error.
func (n *notifier) AnnounceGuild(ctx context.Context, guildID int64, text string) error {
	channelID, err := n.announcementChannel(ctx, guildID)
	if err != nil {
		return err
	}
	if channelID == nil {
		log.WithField("guild_id", guildID).Debug("no announcement channel configured, dropping announcement")
		return nil
	}
	return n.Announce(ctx, *channelID, text)
}

// PostPrompt posts text and returns the new message's ID so reactions
// on it can be tracked.
func (n *notifier) PostPrompt(ctx context.Context, channelID int64, text string) (int64, error) {
	msg, err := n.session.ChannelMessageSend(common.FormatUserID(channelID), text)
	if err != nil {
		return 0, fmt.Errorf("failed to post prompt to channel %d: %w", channelID, err)
	}
	messageID, err := common.ParseUserID(msg.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to parse prompt message ID %s: %w", msg.ID, err)
	}
	return messageID, nil
}

func (n *notifier) announcementChannel(ctx context.Context, guildID int64) (*int64, error) {
	uow := n.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	guildSettingsService := services.NewGuildSettingsService(uow.GuildSettingsRepository())
	settings, err := guildSettingsService.GetOrCreateSettings(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return settings.WordleChannelID, nil
}
