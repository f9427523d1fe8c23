package dungeon

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"wordleworld/domain/games"
	"wordleworld/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleMessage plays one guess typed into the dungeon channel. The
// engine ignores non-participants; invalid words get a reaction.
func (f *Feature) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate, session *games.DungeonSession) {
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

	result, err := f.service(uow, guildID).Guess(ctx, session, userID, m.Content)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotYourTurn), errors.Is(err, services.ErrSessionNotFound):
			// Spectators and out-of-round chatter, not guesses
		case errors.Is(err, services.ErrNotFiveLetters), errors.Is(err, services.ErrNotInDictionary):
			if rerr := s.MessageReactionAdd(m.ChannelID, m.ID, "❌"); rerr != nil {
				log.Debugf("Failed to react to invalid guess: %v", rerr)
			}
		default:
			log.Errorf("Failed to play dungeon guess for user %d: %v", userID, err)
		}
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		return
	}

	if result.Outcome != games.OutcomeOngoing {
		// The engine narrates solved rounds and settlements itself
		return
	}

	board := f.collab.Renderer.RenderBoard(session.Board.Attempts(), session.Board.MaxAttempts())
	remaining := session.Board.MaxAttempts() - session.Board.AttemptCount()
	text := fmt.Sprintf("%s\n%d tries left this round", board, remaining)
	if _, err := s.ChannelMessageSend(m.ChannelID, text); err != nil {
		log.Errorf("Failed to post board: %v", err)
	}
}
