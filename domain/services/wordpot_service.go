package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"wordleworld/domain/entities"
	"wordleworld/domain/games"
	"wordleworld/domain/interfaces"
	"wordleworld/domain/words"

	log "github.com/sirupsen/logrus"
)

// wordPotService implements the WordPotService interface
type wordPotService struct {
	guildID     int64
	registry    *games.Registry
	ledger      interfaces.LedgerService
	potRepo     interfaces.PotRepository
	statsRepo   interfaces.StatsRepository
	channels    interfaces.ChannelManager
	notifier    interfaces.Notifier
	definitions interfaces.DefinitionLookup

	rng *rand.Rand
}

// NewWordPotService creates a new word pot service scoped to one guild
func NewWordPotService(
	guildID int64,
	registry *games.Registry,
	ledger interfaces.LedgerService,
	potRepo interfaces.PotRepository,
	statsRepo interfaces.StatsRepository,
	channels interfaces.ChannelManager,
	notifier interfaces.Notifier,
	definitions interfaces.DefinitionLookup,
) interfaces.WordPotService {
	return &wordPotService{
		guildID:     guildID,
		registry:    registry,
		ledger:      ledger,
		potRepo:     potRepo,
		statsRepo:   statsRepo,
		channels:    channels,
		notifier:    notifier,
		definitions: definitions,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start charges the entry stake atomically and opens a session. There is
// no daily cap; the pot itself is the house edge.
func (s *wordPotService) Start(ctx context.Context, userID int64) (*games.WordPotSession, error) {
	// One pot game per owner. The slot is held until the session is
	// registered so two near-simultaneous starts cannot both charge.
	existing, ok := s.registry.Reserve(games.KindWordPot, s.guildID, userID)
	if !ok {
		if existing != nil {
			return nil, &SessionConflictError{ChannelID: existing.ChannelID()}
		}
		return nil, &SessionConflictError{}
	}
	defer s.registry.Release(games.KindWordPot, s.guildID, userID)

	balance, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance < entities.PotEntryCost {
		return nil, &InsufficientBalanceError{Required: entities.PotEntryCost, Available: balance}
	}

	secret := words.RandomAnswer(s.rng)
	channelID, err := s.channels.CreateGameChannel(ctx, s.guildID, fmt.Sprintf("wordpot-%d", userID), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create game channel: %w", err)
	}

	session := games.NewWordPotSession(s.guildID, channelID, userID, secret)
	if existing, ok := s.registry.Start(session); !ok {
		if derr := s.channels.DeleteChannel(ctx, channelID); derr != nil {
			log.WithError(derr).WithField("channel_id", channelID).Warn("failed to delete orphaned game channel")
		}
		return nil, &SessionConflictError{ChannelID: existing.ChannelID()}
	}

	if _, err := s.ledger.AdjustBalance(ctx, userID, -session.Staked, entities.ReasonPotEntry); err != nil {
		s.registry.End(session.Key())
		if derr := s.channels.DeleteChannel(ctx, channelID); derr != nil {
			log.WithError(derr).WithField("channel_id", channelID).Warn("failed to delete game channel after charge failure")
		}
		return nil, err
	}

	return session, nil
}

// Guess plays one guess. A win takes the entire pot and resets it to
// base; a finished loss grows the pot by the session's stake.
func (s *wordPotService) Guess(ctx context.Context, session *games.WordPotSession, word string) (*interfaces.GuessResult, error) {
	guess, err := validateGuess(word)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()
	if session.Board.Done() {
		return nil, ErrSessionNotFound
	}

	attempt, outcome, err := session.Board.Play(guess)
	if err != nil {
		return nil, err
	}
	result := &interfaces.GuessResult{Attempt: attempt, Outcome: outcome}

	switch outcome {
	case games.OutcomeSolved:
		pot, err := s.potRepo.Get(ctx)
		if err != nil {
			return nil, err
		}
		if _, err := s.ledger.AdjustBalance(ctx, session.OwnerID, pot, entities.ReasonPotWin); err != nil {
			return nil, err
		}
		if err := s.potRepo.Reset(ctx); err != nil {
			return nil, fmt.Errorf("failed to reset pot after win: %w", err)
		}
		result.Payout = pot
		if err := s.statsRepo.Increment(ctx, session.OwnerID, entities.StatPotWins); err != nil {
			log.WithError(err).WithField("user_id", session.OwnerID).Warn("failed to count pot win")
		}
		s.announce(ctx, fmt.Sprintf("<@%d> cracked **%s** and cleaned out the pot for %d shekels!",
			session.OwnerID, strings.ToUpper(session.Board.Secret()), pot))
		s.teardown(ctx, session)

	case games.OutcomeExhausted:
		s.settleFail(ctx, session, result)
	}

	return result, nil
}

// EndEarly forfeits the session as if exhausted; the stake still feeds
// the pot.
func (s *wordPotService) EndEarly(ctx context.Context, session *games.WordPotSession) (*interfaces.GuessResult, error) {
	session.Lock()
	defer session.Unlock()
	if session.Board.Done() {
		return nil, ErrSessionNotFound
	}

	result := &interfaces.GuessResult{Outcome: games.OutcomeExhausted}
	s.settleFail(ctx, session, result)
	return result, nil
}

// GetPot returns the guild's current pot
func (s *wordPotService) GetPot(ctx context.Context) (int64, error) {
	return s.potRepo.Get(ctx)
}

func (s *wordPotService) settleFail(ctx context.Context, session *games.WordPotSession, result *interfaces.GuessResult) {
	newPot, err := s.potRepo.Add(ctx, session.Staked)
	if err != nil {
		log.WithError(err).WithField("guild_id", s.guildID).Error("failed to grow pot after loss")
	}
	result.Definition = s.definitions.Define(ctx, session.Board.Secret())
	result.Quip = randomQuip(s.rng)

	text := fmt.Sprintf("<@%d> missed **%s**. The pot grows to %d. %s",
		session.OwnerID, strings.ToUpper(session.Board.Secret()), newPot, result.Quip)
	if result.Definition != "" {
		text += fmt.Sprintf("\n*%s: %s*", session.Board.Secret(), result.Definition)
	}
	s.announce(ctx, text)
	s.teardown(ctx, session)
}

func (s *wordPotService) announce(ctx context.Context, text string) {
	if err := s.notifier.AnnounceGuild(ctx, s.guildID, text); err != nil {
		log.WithError(err).WithField("guild_id", s.guildID).Warn("failed to announce word pot result")
	}
}

func (s *wordPotService) teardown(ctx context.Context, session *games.WordPotSession) {
	s.registry.End(session.Key())
	if err := s.channels.DeleteChannel(ctx, session.ChannelID()); err != nil {
		log.WithError(err).WithField("channel_id", session.ChannelID()).Warn("failed to delete game channel")
	}
}
