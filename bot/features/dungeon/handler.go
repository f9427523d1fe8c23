package dungeon

import (
	"context"
	"fmt"
	"strconv"

	"wordleworld/bot/common"
	"wordleworld/domain/games"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// ids pulls the guild, invoking user, and channel out of an interaction.
func ids(i *discordgo.InteractionCreate) (guildID, userID, channelID int64, err error) {
	if guildID, err = strconv.ParseInt(i.GuildID, 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to parse guild ID %s: %w", i.GuildID, err)
	}
	if userID, err = strconv.ParseInt(i.Member.User.ID, 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to parse user ID %s: %w", i.Member.User.ID, err)
	}
	if channelID, err = strconv.ParseInt(i.ChannelID, 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to parse channel ID %s: %w", i.ChannelID, err)
	}
	return guildID, userID, channelID, nil
}

// sessionHere finds the dungeon session owning the invoking channel.
func (f *Feature) sessionHere(channelID int64) (*games.DungeonSession, bool) {
	raw, ok := f.registry.Get(games.DungeonKey(channelID))
	if !ok {
		return nil, false
	}
	return raw.(*games.DungeonSession), true
}

// handleStart handles the /dungeon start command
func (f *Feature) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, userID, _, err := ids(i)
	if err != nil {
		log.Error(err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}

	tier := 1
	options := i.ApplicationCommandData().Options[0].Options
	if len(options) > 0 && options[0].Name == "tier" {
		tier = int(options[0].IntValue())
	}

	ctx := context.Background()
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Failed to open the dungeon")
		return
	}
	defer uow.Rollback()

	session, err := f.service(uow, guildID).Start(ctx, userID, tier)
	if err != nil {
		if msg, ok := common.GameErrorMessage(err); ok {
			common.RespondWithError(s, i, msg)
		} else {
			log.Errorf("Failed to open tier %d dungeon for user %d: %v", tier, userID, err)
			common.RespondWithError(s, i, "Failed to open the dungeon")
		}
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to open the dungeon")
		return
	}

	// Public so others can see there is a dungeon to join
	message := fmt.Sprintf("⚔️ %s opened a **tier %d dungeon** in <#%d>. Use `/dungeon join` in there before the gate locks!",
		common.GetUserMention(userID), tier, session.ChannelID())
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: message},
	}); err != nil {
		log.Errorf("Failed to respond to interaction: %v", err)
	}
}

// handleJoin handles the /dungeon join command
func (f *Feature) handleJoin(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.withSession(s, i, "join", func(ctx context.Context, svc dungeonService, session *games.DungeonSession, userID int64) (string, error) {
		if err := svc.Join(ctx, session, userID); err != nil {
			return "", err
		}
		return "You are in. Wait for the owner to lock the gate.", nil
	})
}

// handleLock handles the /dungeon lock command
func (f *Feature) handleLock(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.withSession(s, i, "lock", func(ctx context.Context, svc dungeonService, session *games.DungeonSession, userID int64) (string, error) {
		if err := svc.LockGate(ctx, session, userID); err != nil {
			return "", err
		}
		return "Gate locked. Type your guesses as messages.", nil
	})
}

// handleDecide handles /dungeon continue and /dungeon cashout
func (f *Feature) handleDecide(s *discordgo.Session, i *discordgo.InteractionCreate, cashOut bool) {
	name := "continue"
	if cashOut {
		name = "cashout"
	}
	f.withSession(s, i, name, func(ctx context.Context, svc dungeonService, session *games.DungeonSession, userID int64) (string, error) {
		if err := svc.Decide(ctx, session, userID, cashOut); err != nil {
			return "", err
		}
		return "Decision made.", nil
	})
}

// handleAbandon handles the /dungeon abandon command
func (f *Feature) handleAbandon(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.withSession(s, i, "abandon", func(ctx context.Context, svc dungeonService, session *games.DungeonSession, userID int64) (string, error) {
		if err := svc.EndEarly(ctx, session, userID); err != nil {
			return "", err
		}
		return "Run abandoned.", nil
	})
}

// HandleReactionAdd drives the dungeon from reactions in its channel.
// 🌀 joins while the gate is open and 🔒 locks it; on a solved round
// the owner reacts ⏩ or 💰. The slash subcommands remain as
// equivalents.
func (f *Feature) HandleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.UserID == s.State.User.ID {
		return
	}

	channelID, err := strconv.ParseInt(r.ChannelID, 10, 64)
	if err != nil {
		return
	}
	session, ok := f.sessionHere(channelID)
	if !ok {
		return
	}

	var run func(ctx context.Context, svc dungeonService, userID int64) error
	switch r.Emoji.Name {
	case common.DungeonJoinEmoji:
		run = func(ctx context.Context, svc dungeonService, userID int64) error {
			return svc.Join(ctx, session, userID)
		}
	case common.DungeonLockEmoji:
		run = func(ctx context.Context, svc dungeonService, userID int64) error {
			return svc.LockGate(ctx, session, userID)
		}
	case common.DungeonContinueEmoji:
		run = func(ctx context.Context, svc dungeonService, userID int64) error {
			return svc.Decide(ctx, session, userID, false)
		}
	case common.DungeonCashOutEmoji:
		run = func(ctx context.Context, svc dungeonService, userID int64) error {
			return svc.Decide(ctx, session, userID, true)
		}
	default:
		return
	}

	guildID, err := strconv.ParseInt(r.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", r.GuildID, err)
		return
	}
	userID, err := strconv.ParseInt(r.UserID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse user ID %s: %v", r.UserID, err)
		return
	}

	ctx := context.Background()
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		return
	}
	defer uow.Rollback()

	if err := run(ctx, f.service(uow, guildID), userID); err != nil {
		// A reaction from the wrong user or at the wrong phase is not
		// worth a reply; the channel keeps moving.
		if _, expected := common.GameErrorMessage(err); !expected {
			log.Errorf("Failed dungeon reaction %s for user %d: %v", r.Emoji.Name, userID, err)
		}
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
	}
}

// dungeonService narrows the interface the subcommand closures see.
type dungeonService = interface {
	Join(ctx context.Context, session *games.DungeonSession, userID int64) error
	LockGate(ctx context.Context, session *games.DungeonSession, userID int64) error
	Decide(ctx context.Context, session *games.DungeonSession, userID int64, cashOut bool) error
	EndEarly(ctx context.Context, session *games.DungeonSession, userID int64) error
}

// withSession wraps the shared plumbing of the channel-scoped
// subcommands: find the session here, open a transaction, run the
// action, commit, reply ephemerally.
func (f *Feature) withSession(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	action string,
	fn func(ctx context.Context, svc dungeonService, session *games.DungeonSession, userID int64) (string, error),
) {
	guildID, userID, channelID, err := ids(i)
	if err != nil {
		log.Error(err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}

	session, ok := f.sessionHere(channelID)
	if !ok {
		common.RespondWithError(s, i, "There is no dungeon in this channel")
		return
	}

	ctx := context.Background()
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Failed to "+action)
		return
	}
	defer uow.Rollback()

	message, err := fn(ctx, f.service(uow, guildID), session, userID)
	if err != nil {
		if msg, ok := common.GameErrorMessage(err); ok {
			common.RespondWithError(s, i, msg)
		} else {
			log.Errorf("Failed dungeon %s for user %d: %v", action, userID, err)
			common.RespondWithError(s, i, "Failed to "+action)
		}
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Failed to "+action)
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
