package balance

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"wordleworld/application"
	"wordleworld/bot/common"
	"wordleworld/domain/interfaces"
	"wordleworld/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature handles the economy read commands: balance, scoreboard, and
// inventory.
type Feature struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
	collab     common.Collaborators
}

// NewFeature creates a new balance feature instance
func NewFeature(session *discordgo.Session, uowFactory application.UnitOfWorkFactory, collab common.Collaborators) *Feature {
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
		collab:     collab,
	}
}

// service builds the ledger over the unit of work's repositories.
func (f *Feature) service(uow application.UnitOfWork, guildID int64) interfaces.LedgerService {
	return services.NewLedgerService(guildID, uow.WalletRepository(), uow.InventoryRepository(), f.collab.RoleSync, uow)
}

// HandleBalance handles the /balance command
func (f *Feature) HandleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
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
		common.RespondWithError(s, i, "Failed to check balance")
		return
	}
	defer uow.Rollback()

	balance, err := f.service(uow, guildID).GetBalance(ctx, userID)
	if err != nil {
		log.Errorf("Failed to get balance for user %d: %v", userID, err)
		common.RespondWithError(s, i, "Failed to check balance")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to check balance")
		return
	}

	message := fmt.Sprintf("💰 You have %s", common.FormatShekels(balance))
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

// HandleScoreboard handles the /scoreboard command
func (f *Feature) HandleScoreboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
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
		common.RespondWithError(s, i, "Failed to load scoreboard")
		return
	}
	defer uow.Rollback()

	entries, err := f.service(uow, guildID).GetScoreboard(ctx, common.ScoreboardLimit)
	if err != nil {
		log.Errorf("Failed to get scoreboard for guild %d: %v", guildID, err)
		common.RespondWithError(s, i, "Failed to load scoreboard")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to load scoreboard")
		return
	}

	if len(entries) == 0 {
		common.RespondWithError(s, i, "Nobody has any shekels yet")
		return
	}

	var lines []string
	for _, entry := range entries {
		name := common.GetDisplayNameInt64(s, i.GuildID, entry.DiscordID)
		line := fmt.Sprintf("%d. **%s**: %s shekels", entry.Rank, name, common.FormatBalanceCompact(entry.Balance))
		if entry.Stones > 0 {
			line += fmt.Sprintf(" (💎 %d stones)", entry.Stones)
		}
		lines = append(lines, line)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏆 Scoreboard",
		Description: strings.Join(lines, "\n"),
		Color:       common.ColorPrimary,
	}
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	}); err != nil {
		log.Errorf("Failed to respond to interaction: %v", err)
	}
}

// HandleInventory handles the /inventory command
func (f *Feature) HandleInventory(s *discordgo.Session, i *discordgo.InteractionCreate) {
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
		common.RespondWithError(s, i, "Failed to check inventory")
		return
	}
	defer uow.Rollback()

	items, err := uow.InventoryRepository().GetAll(ctx, userID)
	if err != nil {
		log.Errorf("Failed to get inventory for user %d: %v", userID, err)
		common.RespondWithError(s, i, "Failed to check inventory")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to check inventory")
		return
	}

	var message string
	if len(items) == 0 {
		message = "🎒 Your bag is empty"
	} else {
		var lines []string
		for _, item := range items {
			lines = append(lines, fmt.Sprintf("%s × %d", item.Kind.DisplayName(), item.Quantity))
		}
		message = "🎒 Your bag:\n" + strings.Join(lines, "\n")
	}

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
