package daily

import (
	"context"
	"fmt"
	"strconv"

	"wordleworld/application"
	"wordleworld/bot/common"
	"wordleworld/domain/entities"
	"wordleworld/domain/interfaces"
	"wordleworld/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature handles the once-a-day handouts.
type Feature struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
	collab     common.Collaborators
}

// NewFeature creates a new daily feature instance
func NewFeature(session *discordgo.Session, uowFactory application.UnitOfWorkFactory, collab common.Collaborators) *Feature {
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
		collab:     collab,
	}
}

// HandleCommand routes /daily subcommands to appropriate handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

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
		common.RespondWithError(s, i, "Failed to claim")
		return
	}
	defer uow.Rollback()

	ledger := services.NewLedgerService(guildID, uow.WalletRepository(), uow.InventoryRepository(), f.collab.RoleSync, uow)
	dailyService := services.NewDailyService(guildID, ledger, uow.DailyPlayRepository())

	var message string
	switch options[0].Name {
	case "pray":
		message, err = f.pray(ctx, dailyService, userID)
	case "beg":
		message, err = f.beg(ctx, dailyService, userID)
	default:
		return
	}
	if err != nil {
		if msg, ok := common.GameErrorMessage(err); ok {
			common.RespondWithError(s, i, msg)
		} else {
			log.Errorf("Failed daily %s for user %d: %v", options[0].Name, userID, err)
			common.RespondWithError(s, i, "Failed to claim")
		}
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to claim")
		return
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

func (f *Feature) pray(ctx context.Context, dailyService interfaces.DailyService, userID int64) (string, error) {
	balance, err := dailyService.Claim(ctx, userID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("🙏 Your prayers are answered: %s. You now have %s.",
		common.FormatShekels(entities.DailyClaimAmount), common.FormatShekels(balance)), nil
}

func (f *Feature) beg(ctx context.Context, dailyService interfaces.DailyService, userID int64) (string, error) {
	stones, err := dailyService.Beg(ctx, userID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("💎 Someone takes pity on you: **%d stones**. You now carry **%d stones**.",
		entities.DailyBegAmount, stones), nil
}
