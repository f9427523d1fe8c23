package bounty

import (
	"context"
	"errors"
	"strconv"

	"wordleworld/bot/common"
	"wordleworld/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleReactionAdd records an arm reaction on the pending prompt.
func (f *Feature) HandleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	f.handleReaction(s, r.GuildID, r.UserID, r.MessageID, r.Emoji.Name, true)
}

// HandleReactionRemove drops an arm reaction, cancelling the countdown
// if quorum is lost.
func (f *Feature) HandleReactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	f.handleReaction(s, r.GuildID, r.UserID, r.MessageID, r.Emoji.Name, false)
}

func (f *Feature) handleReaction(s *discordgo.Session, guildIDStr, userIDStr, messageIDStr, emoji string, added bool) {
	if emoji != common.BountyArmEmoji {
		return
	}
	if userIDStr == s.State.User.ID {
		return
	}

	guildID, err := strconv.ParseInt(guildIDStr, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", guildIDStr, err)
		return
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse user ID %s: %v", userIDStr, err)
		return
	}
	messageID, err := strconv.ParseInt(messageIDStr, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse message ID %s: %v", messageIDStr, err)
		return
	}

	session, ok := f.currentSession(guildID)
	if !ok {
		return
	}
	session.Lock()
	onPrompt := session.MessageID == messageID
	session.Unlock()
	if !onPrompt {
		return
	}

	ctx := context.Background()
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		return
	}
	defer uow.Rollback()

	svc := f.Service(uow, guildID)
	if added {
		err = svc.HandleArmAdd(ctx, userID)
	} else {
		err = svc.HandleArmRemove(ctx, userID)
	}
	if err != nil {
		log.Errorf("Failed to handle bounty arm reaction for user %d: %v", userID, err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
	}
}

// HandleMessage plays one bounty guess typed into the bounty channel.
func (f *Feature) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	guildID, err := strconv.ParseInt(m.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", m.GuildID, err)
		return
	}
	userID, err := strconv.ParseInt(m.Author.ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse user ID %s: %v", m.Author.ID, err)
		return
	}

	ctx := context.Background()
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		return
	}
	defer uow.Rollback()

	result, err := f.Service(uow, guildID).Guess(ctx, userID, m.Content)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			// No armed bounty, just chatter in the bounty channel
		case errors.Is(err, services.ErrGuessCooldown):
			if rerr := s.MessageReactionAdd(m.ChannelID, m.ID, "🕐"); rerr != nil {
				log.Debugf("Failed to react to cooldown guess: %v", rerr)
			}
		case errors.Is(err, services.ErrNotFiveLetters), errors.Is(err, services.ErrNotInDictionary):
			if rerr := s.MessageReactionAdd(m.ChannelID, m.ID, "❌"); rerr != nil {
				log.Debugf("Failed to react to invalid guess: %v", rerr)
			}
		default:
			log.Errorf("Failed to play bounty guess for user %d: %v", userID, err)
		}
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		return
	}

	// Misses just get their row back; the engine announces the win.
	if result.Payout == 0 {
		row := f.collab.Renderer.RenderRow(result.Attempt)
		if _, err := s.ChannelMessageSendReply(m.ChannelID, row, m.Reference()); err != nil {
			log.Errorf("Failed to post bounty guess row: %v", err)
		}
	}
}

// IsBountyChannel reports whether the message landed in the channel the
// guild's live bounty plays in.
func (f *Feature) IsBountyChannel(guildID int64, channelIDStr string) bool {
	session, ok := f.currentSession(guildID)
	if !ok {
		return false
	}
	channelID, err := strconv.ParseInt(channelIDStr, 10, 64)
	if err != nil {
		return false
	}
	return session.ChannelID() == channelID
}
