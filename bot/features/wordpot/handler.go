package wordpot

import (
	"context"
	"fmt"
	"strconv"

	"wordleworld/bot/common"
	"wordleworld/domain/entities"
	"wordleworld/domain/games"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleStart handles the /wordpot start command
func (f *Feature) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID: %v", err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}
	userID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse user ID: %v", err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}

	ctx := context.Background()
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Failed to start the game")
		return
	}
	defer uow.Rollback()

	session, err := f.service(uow, guildID).Start(ctx, userID)
	if err != nil {
		if msg, ok := common.GameErrorMessage(err); ok {
			common.RespondWithError(s, i, msg)
		} else {
			log.Errorf("Failed to start word pot game for user %d: %v", userID, err)
			common.RespondWithError(s, i, "Failed to start the game")
		}
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to start the game")
		return
	}

	message := fmt.Sprintf("You paid %s. Your game is ready in <#%d>, you have %d guesses at the pot.",
		common.FormatShekels(session.Staked), session.ChannelID(), entities.PotMaxAttempts)
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		log.Errorf("Failed to respond to interaction: %v", err)
	}
}

// handleForfeit handles the /wordpot forfeit command. It has to be
// invoked inside the game channel, which is the only place the owner
// can type anyway.
func (f *Feature) handleForfeit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID: %v", err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}
	userID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse user ID: %v", err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}
	channelID, err := strconv.ParseInt(i.ChannelID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse channel ID: %v", err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}

	raw, ok := f.registry.Get(games.WordPotKey(guildID, channelID, userID))
	if !ok {
		common.RespondWithError(s, i, "There is no pot game of yours in this channel")
		return
	}
	session := raw.(*games.WordPotSession)

	ctx := context.Background()
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Failed to forfeit")
		return
	}
	defer uow.Rollback()

	if _, err := f.service(uow, guildID).EndEarly(ctx, session); err != nil {
		if msg, ok := common.GameErrorMessage(err); ok {
			common.RespondWithError(s, i, msg)
		} else {
			log.Errorf("Failed to forfeit word pot game for user %d: %v", userID, err)
			common.RespondWithError(s, i, "Failed to forfeit")
		}
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to forfeit")
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "You fold. Your stake feeds the pot.",
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		log.Errorf("Failed to respond to interaction: %v", err)
	}
}

// handleShow handles the /wordpot show command
func (f *Feature) handleShow(s *discordgo.Session, i *discordgo.InteractionCreate) {
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
		common.RespondWithError(s, i, "Failed to read the pot")
		return
	}
	defer uow.Rollback()

	pot, err := f.service(uow, guildID).GetPot(ctx)
	if err != nil {
		log.Errorf("Failed to get pot for guild %d: %v", guildID, err)
		common.RespondWithError(s, i, "Failed to read the pot")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to read the pot")
		return
	}

	message := fmt.Sprintf("💰 The pot currently holds %s. Entry costs %s.",
		common.FormatShekels(pot), common.FormatShekels(entities.PotEntryCost))
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: message},
	}); err != nil {
		log.Errorf("Failed to respond to interaction: %v", err)
	}
}
