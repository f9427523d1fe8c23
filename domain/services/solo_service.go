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
	"wordleworld/domain/utils"
	"wordleworld/domain/words"

	log "github.com/sirupsen/logrus"
)

// soloService implements the SoloService interface
type soloService struct {
	guildID     int64
	registry    *games.Registry
	ledger      interfaces.LedgerService
	dailyRepo   interfaces.DailyPlayRepository
	streakRepo  interfaces.StreakRepository
	statsRepo   interfaces.StatsRepository
	channels    interfaces.ChannelManager
	notifier    interfaces.Notifier
	definitions interfaces.DefinitionLookup

	now func() time.Time
	rng *rand.Rand
}

// NewSoloService creates a new solo game service scoped to one guild
func NewSoloService(
	guildID int64,
	registry *games.Registry,
	ledger interfaces.LedgerService,
	dailyRepo interfaces.DailyPlayRepository,
	streakRepo interfaces.StreakRepository,
	statsRepo interfaces.StatsRepository,
	channels interfaces.ChannelManager,
	notifier interfaces.Notifier,
	definitions interfaces.DefinitionLookup,
) interfaces.SoloService {
	return &soloService{
		guildID:     guildID,
		registry:    registry,
		ledger:      ledger,
		dailyRepo:   dailyRepo,
		streakRepo:  streakRepo,
		statsRepo:   statsRepo,
		channels:    channels,
		notifier:    notifier,
		definitions: definitions,
		now:         time.Now,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start begins a new solo game for the user. The daily counter is
// charged against today's UK date, which the session records so a later
// snipe rolls back the right day.
func (s *soloService) Start(ctx context.Context, userID int64) (*games.SoloSession, error) {
	// The owner slot is held for the whole start so a second start
	// cannot slip in while the channel is being created.
	existing, ok := s.registry.Reserve(games.KindSolo, s.guildID, userID)
	if !ok {
		if existing != nil {
			return nil, &SessionConflictError{ChannelID: existing.ChannelID()}
		}
		return nil, &SessionConflictError{}
	}
	defer s.registry.Release(games.KindSolo, s.guildID, userID)

	now := s.now()
	today := utils.UKDateString(now)
	plays, err := s.dailyRepo.GetPlays(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily plays for user %d: %w", userID, err)
	}
	if plays >= entities.DailySoloCap {
		return nil, &DailyCapError{Cap: entities.DailySoloCap, ResetAt: utils.NextUKMidnight(now)}
	}

	secret := words.RandomAnswer(s.rng)
	channelID, err := s.channels.CreateGameChannel(ctx, s.guildID, fmt.Sprintf("wordle-%d", userID), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create game channel: %w", err)
	}

	session := games.NewSoloSession(s.guildID, channelID, userID, secret, today)
	if existing, ok := s.registry.Start(session); !ok {
		// Lost the race to another start. Tear down the channel we
		// just made and point the user at the winner.
		if derr := s.channels.DeleteChannel(ctx, channelID); derr != nil {
			log.WithError(derr).WithField("channel_id", channelID).Warn("failed to delete orphaned game channel")
		}
		return nil, &SessionConflictError{ChannelID: existing.ChannelID()}
	}

	if _, err := s.dailyRepo.IncrementPlays(ctx, userID, today); err != nil {
		s.registry.End(session.Key())
		if derr := s.channels.DeleteChannel(ctx, channelID); derr != nil {
			log.WithError(derr).WithField("channel_id", channelID).Warn("failed to delete game channel after counter failure")
		}
		return nil, fmt.Errorf("failed to count daily play for user %d: %w", userID, err)
	}

	// Only the first game of a UK day moves the streak.
	if plays == 0 {
		if err := s.touchStreak(ctx, userID, today); err != nil {
			log.WithError(err).WithField("user_id", userID).Warn("failed to update streak")
		}
	}

	if err := s.statsRepo.Increment(ctx, userID, entities.StatGamesPlayed); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("failed to count game start")
	}

	return session, nil
}

func (s *soloService) touchStreak(ctx context.Context, userID int64, today string) error {
	streak, err := s.streakRepo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if streak.Touch(today) {
		return s.streakRepo.Upsert(ctx, streak)
	}
	return nil
}

// Guess plays one guess on the session.
func (s *soloService) Guess(ctx context.Context, session *games.SoloSession, word string) (*interfaces.GuessResult, error) {
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
		result.Payout = entities.PayoutForAttempt(session.Board.AttemptCount())
		if result.Payout > 0 {
			if _, err := s.ledger.AdjustBalance(ctx, session.OwnerID, result.Payout, entities.ReasonSoloWin); err != nil {
				return nil, err
			}
		}
		if err := s.statsRepo.Increment(ctx, session.OwnerID, entities.StatGamesWon); err != nil {
			log.WithError(err).WithField("user_id", session.OwnerID).Warn("failed to count solo win")
		}
		s.announce(ctx, fmt.Sprintf("<@%d> solved **%s** in %d and won %d shekels!",
			session.OwnerID, strings.ToUpper(session.Board.Secret()), session.Board.AttemptCount(), result.Payout))
		s.teardown(ctx, session)

	case games.OutcomeExhausted:
		s.settleFail(ctx, session, result)
	}

	return result, nil
}

// EndEarly forfeits an active session. Same payout of zero, same stat,
// same announcement shape as running out of guesses.
func (s *soloService) EndEarly(ctx context.Context, session *games.SoloSession) (*interfaces.GuessResult, error) {
	session.Lock()
	defer session.Unlock()
	if session.Board.Done() {
		return nil, ErrSessionNotFound
	}

	result := &interfaces.GuessResult{Outcome: games.OutcomeExhausted}
	s.settleFail(ctx, session, result)
	return result, nil
}

func (s *soloService) settleFail(ctx context.Context, session *games.SoloSession, result *interfaces.GuessResult) {
	result.Definition = s.definitions.Define(ctx, session.Board.Secret())
	result.Quip = randomQuip(s.rng)
	if err := s.statsRepo.Increment(ctx, session.OwnerID, entities.StatSoloFails); err != nil {
		log.WithError(err).WithField("user_id", session.OwnerID).Warn("failed to count solo fail")
	}

	text := fmt.Sprintf("<@%d> could not find **%s**. %s", session.OwnerID, strings.ToUpper(session.Board.Secret()), result.Quip)
	if result.Definition != "" {
		text += fmt.Sprintf("\n*%s: %s*", session.Board.Secret(), result.Definition)
	}
	s.announce(ctx, text)
	s.teardown(ctx, session)
}

// Snipe fires sniperID's one shot at ownerID's active game. The shot
// costs a fixed fee whether it lands or not; a hit pays the position one
// past the owner's guess count and rolls the owner's daily counter back
// on the date the game actually started.
func (s *soloService) Snipe(ctx context.Context, sniperID, ownerID int64, word string) (*interfaces.GuessResult, error) {
	if sniperID == ownerID {
		return nil, ErrNotYourTurn
	}
	session, ok := s.registry.FindSoloByOwner(s.guildID, ownerID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	guess, err := validateGuess(word)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()
	if session.Board.Done() {
		return nil, ErrSessionNotFound
	}
	if session.HasSniped(sniperID) {
		return nil, ErrAlreadySniped
	}

	balance, err := s.ledger.GetBalance(ctx, sniperID)
	if err != nil {
		return nil, err
	}
	if balance < entities.SnipeCost {
		return nil, &InsufficientBalanceError{Required: entities.SnipeCost, Available: balance}
	}
	if _, err := s.ledger.AdjustBalance(ctx, sniperID, -entities.SnipeCost, entities.ReasonSnipeCost); err != nil {
		return nil, err
	}

	// The shot locks in only once the fee has actually been charged;
	// a rejected charge leaves it available for a retry.
	session.RecordSniper(sniperID)

	// The snipe is scored against the secret but never joins the
	// owner's attempt list.
	pattern, err := entities.ScoreGuess(guess, session.Board.Secret())
	if err != nil {
		return nil, err
	}
	result := &interfaces.GuessResult{Attempt: entities.Attempt{Word: guess, Pattern: pattern}}

	if !pattern.AllCorrect() {
		return result, nil
	}

	result.Outcome = games.OutcomeSolved
	result.Payout = entities.SnipePayout(session.Board.AttemptCount())
	if result.Payout > 0 {
		if _, err := s.ledger.AdjustBalance(ctx, sniperID, result.Payout, entities.ReasonSnipeWin); err != nil {
			return nil, err
		}
	}
	if err := s.statsRepo.Increment(ctx, sniperID, entities.StatSnipes); err != nil {
		log.WithError(err).WithField("user_id", sniperID).Warn("failed to count snipe")
	}
	s.awardSniperBadge(ctx, sniperID)
	if err := s.statsRepo.Increment(ctx, ownerID, entities.StatSniped); err != nil {
		log.WithError(err).WithField("user_id", ownerID).Warn("failed to count sniped")
	}

	// The owner never got to finish this game, so the play they were
	// charged for comes back, on the game's recorded start date.
	if err := s.dailyRepo.DecrementPlays(ctx, ownerID, session.StartDate); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"user_id": ownerID,
			"date":    session.StartDate,
		}).Warn("failed to roll back daily play after snipe")
	}

	s.announce(ctx, fmt.Sprintf("<@%d> sniped <@%d>'s game! The word was **%s**; the shot paid %d shekels.",
		sniperID, ownerID, strings.ToUpper(session.Board.Secret()), result.Payout))
	s.teardown(ctx, session)
	return result, nil
}

// awardSniperBadge grants the one-time badge on a sniper's first hit.
// Failures are logged, never returned.
func (s *soloService) awardSniperBadge(ctx context.Context, sniperID int64) {
	held, err := s.ledger.GetItemCount(ctx, sniperID, entities.ItemSniperBadge)
	if err != nil {
		log.WithError(err).WithField("user_id", sniperID).Warn("failed to check sniper badge")
		return
	}
	if held > 0 {
		return
	}
	if _, err := s.ledger.AdjustItem(ctx, sniperID, entities.ItemSniperBadge, 1); err != nil {
		log.WithError(err).WithField("user_id", sniperID).Warn("failed to award sniper badge")
	}
}

func (s *soloService) announce(ctx context.Context, text string) {
	if err := s.notifier.AnnounceGuild(ctx, s.guildID, text); err != nil {
		log.WithError(err).WithField("guild_id", s.guildID).Warn("failed to announce solo result")
	}
}

func (s *soloService) teardown(ctx context.Context, session *games.SoloSession) {
	s.registry.End(session.Key())
	if err := s.channels.DeleteChannel(ctx, session.ChannelID()); err != nil {
		log.WithError(err).WithField("channel_id", session.ChannelID()).Warn("failed to delete game channel")
	}
}
