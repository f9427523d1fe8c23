package solo

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

// HandleMessage plays one guess typed into the owner's game channel.
// Invalid words get a reaction instead of a reply so the channel stays
// a clean list of boards.
func (f *Feature) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate, session *games.SoloSession) {
	guildID, err := strconv.ParseInt(m.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", m.GuildID, err)
		return
	}

	ctx := context.Background()
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		return
	}
	defer uow.Rollback()

	result, err := f.service(uow, guildID).Guess(ctx, session, m.Content)
	if err != nil {
		if errors.Is(err, services.ErrNotFiveLetters) || errors.Is(err, services.ErrNotInDictionary) {
			if rerr := s.MessageReactionAdd(m.ChannelID, m.ID, "❌"); rerr != nil {
				log.Debugf("Failed to react to invalid guess: %v", rerr)
			}
			return
		}
		log.Errorf("Failed to play solo guess for user %d: %v", session.OwnerID, err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		return
	}

	// Terminal outcomes tear the channel down and announce; only an
	// ongoing board still has somewhere to render.
	if result.Outcome != games.OutcomeOngoing {
		return
	}

	board := f.collab.Renderer.RenderBoard(session.Board.Attempts(), session.Board.MaxAttempts())
	remaining := session.Board.MaxAttempts() - session.Board.AttemptCount()
	text := fmt.Sprintf("%s\n%d guesses left", board, remaining)
	if _, err := s.ChannelMessageSend(m.ChannelID, text); err != nil {
		log.Errorf("Failed to post board: %v", err)
	}
}
