package solo

import (
	"context"
	"fmt"
	"strconv"

	"wordleworld/bot/common"
	"wordleworld/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleStart handles the /wordle start command
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
			log.Errorf("Failed to start solo game for user %d: %v", userID, err)
			common.RespondWithError(s, i, "Failed to start the game")
		}
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to start the game")
		return
	}

	respond(s, i, fmt.Sprintf("Your game is ready in <#%d>. You have %d guesses, type them as messages.",
		session.ChannelID(), entities.SoloMaxAttempts))
}

// handleForfeit handles the /wordle forfeit command
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

	session, ok := f.registry.FindSoloByOwner(guildID, userID)
	if !ok {
		common.RespondWithError(s, i, "You have no active game to forfeit")
		return
	}

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
			log.Errorf("Failed to forfeit solo game for user %d: %v", userID, err)
			common.RespondWithError(s, i, "Failed to forfeit")
		}
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to forfeit")
		return
	}

	respond(s, i, "Game over. The word stays secret from you no longer, check the announcement.")
}

// handleSnipe handles the /wordle snipe command
func (f *Feature) handleSnipe(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID: %v", err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}
	sniperID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse user ID: %v", err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}

	options := i.ApplicationCommandData().Options[0].Options
	var targetID int64
	var word string
	for _, opt := range options {
		switch opt.Name {
		case "target":
			targetIDStr := opt.UserValue(s).ID
			targetID, err = strconv.ParseInt(targetIDStr, 10, 64)
			if err != nil {
				log.Errorf("Failed to parse target user ID: %v", err)
				common.RespondWithError(s, i, "Invalid target")
				return
			}
		case "word":
			word = opt.StringValue()
		}
	}

	ctx := context.Background()
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Failed to snipe")
		return
	}
	defer uow.Rollback()

	result, err := f.service(uow, guildID).Snipe(ctx, sniperID, targetID, word)
	if err != nil {
		if msg, ok := common.GameErrorMessage(err); ok {
			common.RespondWithError(s, i, msg)
		} else {
			log.Errorf("Failed snipe by user %d at user %d: %v", sniperID, targetID, err)
			common.RespondWithError(s, i, "Failed to snipe")
		}
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to snipe")
		return
	}

	row := f.collab.Renderer.RenderRow(result.Attempt)
	var message string
	if result.Payout > 0 {
		message = fmt.Sprintf("%s\n🎯 Direct hit on %s's game! You win %s.",
			row, common.GetUserMention(targetID), common.FormatShekels(result.Payout))
	} else if result.Attempt.Pattern.AllCorrect() {
		message = fmt.Sprintf("%s\n🎯 You hit %s's game, but the board was too full to pay anything.",
			row, common.GetUserMention(targetID))
	} else {
		message = fmt.Sprintf("%s\n💨 The shot goes wide. That is %s gone.",
			row, common.FormatShekels(entities.SnipeCost))
	}

	// Snipe results are public so the target sees what happened
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: message},
	}); err != nil {
		log.Errorf("Failed to respond to interaction: %v", err)
	}
}

// respond sends an ephemeral reply to the interaction.
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
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
