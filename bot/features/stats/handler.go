package stats

import (
	"context"
	"fmt"
	"strconv"

	"wordleworld/application"
	"wordleworld/bot/common"
	"wordleworld/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature handles the /stats command.
type Feature struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
}

// NewFeature creates a new stats feature instance
func NewFeature(session *discordgo.Session, uowFactory application.UnitOfWorkFactory) *Feature {
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
	}
}

// HandleCommand handles the /stats command, defaulting to the invoker
// when no user option is given.
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID: %v", err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}

	targetIDStr := i.Member.User.ID
	options := i.ApplicationCommandData().Options
	if len(options) > 0 && options[0].Name == "user" {
		targetIDStr = options[0].UserValue(s).ID
	}
	targetID, err := strconv.ParseInt(targetIDStr, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse target user ID: %v", err)
		common.RespondWithError(s, i, "Invalid user")
		return
	}

	ctx := context.Background()
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Failed to load stats")
		return
	}
	defer uow.Rollback()

	statsService := services.NewStatsService(uow.StatsRepository(), uow.StreakRepository())
	userStats, err := statsService.GetUserStats(ctx, targetID)
	if err != nil {
		log.Errorf("Failed to get stats for user %d: %v", targetID, err)
		common.RespondWithError(s, i, "Failed to load stats")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to load stats")
		return
	}

	name := common.GetDisplayName(s, i.GuildID, targetIDStr)
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📊 Stats for %s", name),
		Color: common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Games", Value: fmt.Sprintf("%d played / %d won (%.1f%%)",
				userStats.GamesPlayed, userStats.GamesWon, userStats.WinPercentage), Inline: false},
			{Name: "Streak", Value: fmt.Sprintf("%d current / %d best",
				userStats.CurrentStreak, userStats.BestStreak), Inline: true},
			{Name: "Snipes", Value: fmt.Sprintf("%d fired / %d taken",
				userStats.Snipes, userStats.Sniped), Inline: true},
			{Name: "Pot wins", Value: strconv.FormatInt(userStats.PotWins, 10), Inline: true},
			{Name: "Bounties", Value: strconv.FormatInt(userStats.BountyWins, 10), Inline: true},
			{Name: "Dungeon runs", Value: strconv.FormatInt(userStats.DungeonRuns, 10), Inline: true},
		},
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
