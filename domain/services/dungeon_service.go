package services

import (
	"context"
	"errors"
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

// Loot chances on a solved dungeon round. The stone roll and the
// down-tier ticket roll are independent.
const (
	dungeonStoneChance  = 0.40
	dungeonTicketChance = 0.10
)

// ErrGateClosed means the owner already locked the dungeon's join gate.
var ErrGateClosed = errors.New("the gate is closed")

// dungeonService implements the DungeonService interface
type dungeonService struct {
	guildID     int64
	registry    *games.Registry
	ledger      interfaces.LedgerService
	statsRepo   interfaces.StatsRepository
	channels    interfaces.ChannelManager
	notifier    interfaces.Notifier
	definitions interfaces.DefinitionLookup

	rng *rand.Rand
}

// NewDungeonService creates a new dungeon service scoped to one guild
func NewDungeonService(
	guildID int64,
	registry *games.Registry,
	ledger interfaces.LedgerService,
	statsRepo interfaces.StatsRepository,
	channels interfaces.ChannelManager,
	notifier interfaces.Notifier,
	definitions interfaces.DefinitionLookup,
) interfaces.DungeonService {
	return &dungeonService{
		guildID:     guildID,
		registry:    registry,
		ledger:      ledger,
		statsRepo:   statsRepo,
		channels:    channels,
		notifier:    notifier,
		definitions: definitions,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start consumes one ticket of the tier, creates the dungeon channel,
// and opens the join gate. The ticket goes before the channel exists;
// if the channel cannot be created the ticket comes back.
func (s *dungeonService) Start(ctx context.Context, ownerID int64, tier int) (*games.DungeonSession, error) {
	ticket, err := entities.TicketForTier(tier)
	if err != nil {
		return nil, err
	}

	held, err := s.ledger.GetItemCount(ctx, ownerID, ticket)
	if err != nil {
		return nil, err
	}
	if held < 1 {
		return nil, &InsufficientItemError{Item: string(ticket)}
	}
	if _, err := s.ledger.AdjustItem(ctx, ownerID, ticket, -1); err != nil {
		return nil, err
	}

	channelID, err := s.channels.CreateGameChannel(ctx, s.guildID, fmt.Sprintf("dungeon-t%d-%d", tier, ownerID), ownerID)
	if err != nil {
		// The action as a whole did not happen, so the ticket that
		// gated it comes back.
		if _, rerr := s.ledger.AdjustItem(ctx, ownerID, ticket, 1); rerr != nil {
			log.WithError(rerr).WithFields(log.Fields{
				"user_id": ownerID,
				"ticket":  ticket,
			}).Error("failed to refund ticket after channel failure")
		}
		return nil, fmt.Errorf("failed to create dungeon channel: %w", err)
	}

	session := games.NewDungeonSession(s.guildID, channelID, ownerID, tier)
	if existing, ok := s.registry.Start(session); !ok {
		if _, rerr := s.ledger.AdjustItem(ctx, ownerID, ticket, 1); rerr != nil {
			log.WithError(rerr).WithField("user_id", ownerID).Error("failed to refund ticket after registry conflict")
		}
		if derr := s.channels.DeleteChannel(ctx, channelID); derr != nil {
			log.WithError(derr).WithField("channel_id", channelID).Warn("failed to delete orphaned dungeon channel")
		}
		return nil, &SessionConflictError{ChannelID: existing.ChannelID()}
	}

	if err := s.statsRepo.Increment(ctx, ownerID, entities.StatDungeonRuns); err != nil {
		log.WithError(err).WithField("user_id", ownerID).Warn("failed to count dungeon run")
	}

	s.post(ctx, channelID, fmt.Sprintf("<@%d> opened a tier %d dungeon! React 🌀 to join before the owner locks the gate with 🔒.", ownerID, tier))
	return session, nil
}

// Join adds a user through the gate and grants them the channel.
func (s *dungeonService) Join(ctx context.Context, session *games.DungeonSession, userID int64) error {
	session.Lock()
	defer session.Unlock()

	if session.State != games.DungeonAwaitingStart {
		return ErrGateClosed
	}
	if session.IsParticipant(userID) {
		return nil
	}

	if err := s.channels.GrantAccess(ctx, session.ChannelID(), userID); err != nil {
		return fmt.Errorf("failed to grant dungeon access: %w", err)
	}
	session.Join(userID)
	s.post(ctx, session.ChannelID(), fmt.Sprintf("<@%d> joined the party.", userID))
	return nil
}

// LockGate closes joining and starts the first round. Owner only.
func (s *dungeonService) LockGate(ctx context.Context, session *games.DungeonSession, userID int64) error {
	if userID != session.OwnerID {
		return ErrNotYourTurn
	}

	session.Lock()
	defer session.Unlock()
	if !session.LockGate(words.RandomAnswer(s.rng)) {
		return ErrGateClosed
	}

	s.post(ctx, session.ChannelID(), fmt.Sprintf("The gate slams shut. Round 1 begins: %d tries, %dx rewards.",
		session.Board.MaxAttempts(), entities.DungeonMultiplier(session.Tier)))
	return nil
}

// Guess plays one guess in the active round. Any participant may guess;
// a solved round banks its reward into the pool and waits on the owner,
// a failed round settles the whole session immediately for half.
func (s *dungeonService) Guess(ctx context.Context, session *games.DungeonSession, userID int64, word string) (*interfaces.GuessResult, error) {
	if !session.IsParticipant(userID) {
		return nil, ErrNotYourTurn
	}

	guess, err := validateGuess(word)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()
	if session.State != games.DungeonActive {
		return nil, ErrSessionNotFound
	}

	attempt, outcome, err := session.Board.Play(guess)
	if err != nil {
		return nil, err
	}
	result := &interfaces.GuessResult{Attempt: attempt, Outcome: outcome}

	switch outcome {
	case games.OutcomeSolved:
		secret := session.Board.Secret()
		reward := session.RoundSolved()
		result.Payout = reward
		s.rollLoot(ctx, session, userID)
		s.post(ctx, session.ChannelID(), fmt.Sprintf("**%s**! %d shekels join the pool (now %d). <@%d>: ⏩ to continue or 💰 to cash out?",
			strings.ToUpper(secret), reward, session.Pool, session.OwnerID))

	case games.OutcomeExhausted:
		result.Definition = s.definitions.Define(ctx, session.Board.Secret())
		result.Quip = randomQuip(s.rng)
		s.settleFailLocked(ctx, session, result)
	}

	return result, nil
}

// rollLoot runs the two independent loot rolls for the solving user.
// Tier 1 has no tier below it, so it never drops a ticket.
func (s *dungeonService) rollLoot(ctx context.Context, session *games.DungeonSession, userID int64) {
	if s.rng.Float64() < dungeonStoneChance {
		if _, err := s.ledger.AdjustItem(ctx, userID, entities.ItemStone, 1); err != nil {
			log.WithError(err).WithField("user_id", userID).Warn("failed to grant loot stone")
		} else {
			s.post(ctx, session.ChannelID(), fmt.Sprintf("<@%d> pried a stone loose from the wall!", userID))
		}
	}
	if session.Tier > 1 && s.rng.Float64() < dungeonTicketChance {
		ticket, err := entities.TicketForTier(session.Tier - 1)
		if err != nil {
			return
		}
		if _, err := s.ledger.AdjustItem(ctx, userID, ticket, 1); err != nil {
			log.WithError(err).WithField("user_id", userID).Warn("failed to grant loot ticket")
		} else {
			s.post(ctx, session.ChannelID(), fmt.Sprintf("<@%d> found a tier %d ticket in the rubble!", userID, session.Tier-1))
		}
	}
}

// Decide handles the owner's continue or cash-out signal. Anyone else's
// signal is ignored outright.
func (s *dungeonService) Decide(ctx context.Context, session *games.DungeonSession, userID int64, cashOut bool) error {
	if userID != session.OwnerID {
		return nil
	}

	session.Lock()
	defer session.Unlock()
	if session.State != games.DungeonAwaitingDecision {
		return nil
	}

	if cashOut {
		pool := session.Pool
		s.payEach(ctx, session, pool)
		s.post(ctx, session.ChannelID(), fmt.Sprintf("The party cashes out! %d shekels to each of the %d adventurers.",
			pool, len(session.Participants())))
		s.teardownLocked(ctx, session)
		return nil
	}

	session.ContinueRound(words.RandomAnswer(s.rng))
	s.post(ctx, session.ChannelID(), fmt.Sprintf("Deeper we go. Round %d begins.", len(session.SolvedRounds)+1))
	return nil
}

// EndEarly abandons the run. Owner only; settles exactly like a failed
// round, half the pool to everyone.
func (s *dungeonService) EndEarly(ctx context.Context, session *games.DungeonSession, userID int64) error {
	if userID != session.OwnerID {
		return ErrNotYourTurn
	}

	session.Lock()
	defer session.Unlock()
	if session.State == games.DungeonAwaitingStart {
		s.post(ctx, session.ChannelID(), "The party disbands before the gate even closed.")
		s.teardownLocked(ctx, session)
		return nil
	}

	result := &interfaces.GuessResult{Outcome: games.OutcomeExhausted, Quip: randomQuip(s.rng)}
	s.settleFailLocked(ctx, session, result)
	return nil
}

// settleFailLocked ends the whole session on a lost round: half the
// pool, rounded up, to every participant. Not owner-gated; failure is
// immediate and terminal.
func (s *dungeonService) settleFailLocked(ctx context.Context, session *games.DungeonSession, result *interfaces.GuessResult) {
	payout := session.FailPayout()
	s.payEach(ctx, session, payout)

	text := fmt.Sprintf("The dungeon claims the party. %s", result.Quip)
	if session.Board != nil {
		text = fmt.Sprintf("The word was **%s**. %s", strings.ToUpper(session.Board.Secret()), text)
	}
	if payout > 0 {
		text += fmt.Sprintf(" Everyone limps out with %d shekels.", payout)
	}
	if result.Definition != "" {
		text += fmt.Sprintf("\n*%s: %s*", session.Board.Secret(), result.Definition)
	}
	s.post(ctx, session.ChannelID(), text)
	s.teardownLocked(ctx, session)
}

// payEach pays the same amount to every participant.
func (s *dungeonService) payEach(ctx context.Context, session *games.DungeonSession, amount int64) {
	if amount <= 0 {
		return
	}
	for _, userID := range session.Participants() {
		if _, err := s.ledger.AdjustBalance(ctx, userID, amount, entities.ReasonDungeonPayout); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"user_id": userID,
				"amount":  amount,
			}).Error("failed to pay dungeon settlement")
		}
	}
}

func (s *dungeonService) teardownLocked(ctx context.Context, session *games.DungeonSession) {
	s.registry.End(session.Key())
	if err := s.channels.DeleteChannel(ctx, session.ChannelID()); err != nil {
		log.WithError(err).WithField("channel_id", session.ChannelID()).Warn("failed to delete dungeon channel")
	}
}

func (s *dungeonService) post(ctx context.Context, channelID int64, text string) {
	if err := s.notifier.Announce(ctx, channelID, text); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"guild_id":   s.guildID,
			"channel_id": channelID,
		}).Warn("failed to post dungeon update")
	}
}
