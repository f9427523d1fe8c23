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

// bountyPostWindowSeconds is how deep into a clock hour the scheduler
// will still post a new prompt. A narrow window keeps a drifting tick
// from posting twice for the same hour.
const bountyPostWindowSeconds = 40

// bountyService implements the BountyService interface
type bountyService struct {
	guildID      int64
	registry     *games.Registry
	ledger       interfaces.LedgerService
	potRepo      interfaces.PotRepository
	statsRepo    interfaces.StatsRepository
	settingsRepo interfaces.GuildSettingsRepository
	notifier     interfaces.Notifier

	// armLocks serializes reaction adds/removes and scheduler
	// transitions per guild. Quorum-reached and quorum-lost are not
	// commutative if processed out of order.
	armLocks *utils.KeyedMutex

	now func() time.Time
	rng *rand.Rand
}

// NewBountyService creates a new bounty service scoped to one guild.
// The keyed mutex is shared by every instance serving the same process.
func NewBountyService(
	guildID int64,
	registry *games.Registry,
	ledger interfaces.LedgerService,
	potRepo interfaces.PotRepository,
	statsRepo interfaces.StatsRepository,
	settingsRepo interfaces.GuildSettingsRepository,
	notifier interfaces.Notifier,
	armLocks *utils.KeyedMutex,
) interfaces.BountyService {
	return &bountyService{
		guildID:      guildID,
		registry:     registry,
		ledger:       ledger,
		potRepo:      potRepo,
		statsRepo:    statsRepo,
		settingsRepo: settingsRepo,
		notifier:     notifier,
		armLocks:     armLocks,
		now:          time.Now,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *bountyService) current() (*games.BountySession, bool) {
	session, ok := s.registry.Get(games.BountyKey(s.guildID))
	if !ok {
		return nil, false
	}
	return session.(*games.BountySession), true
}

// HandleArmAdd records an arm reaction on the pending prompt. Reactions
// on anything but a live pending prompt are ignored.
func (s *bountyService) HandleArmAdd(ctx context.Context, userID int64) error {
	return s.armLocks.WithLock(s.guildID, func() error {
		session, ok := s.current()
		if !ok {
			return nil
		}
		session.Lock()
		defer session.Unlock()
		if session.Phase != games.BountyPending {
			return nil
		}

		before := session.ArmingAt
		session.AddArmer(userID, s.now())
		if before == nil && session.ArmingAt != nil {
			s.post(ctx, session.ChannelID(), fmt.Sprintf("Quorum reached! The bounty arms in %d seconds.", int(games.BountyArmDelay.Seconds())))
		}
		return nil
	})
}

// HandleArmRemove drops an arm reaction. Losing quorum before the
// countdown elapses cancels it, so no armed session can come out of a
// prompt that lost its backers.
func (s *bountyService) HandleArmRemove(ctx context.Context, userID int64) error {
	return s.armLocks.WithLock(s.guildID, func() error {
		session, ok := s.current()
		if !ok {
			return nil
		}
		session.Lock()
		defer session.Unlock()
		if session.Phase != games.BountyPending {
			return nil
		}

		before := session.ArmingAt
		session.RemoveArmer(userID)
		if before != nil && session.ArmingAt == nil {
			s.post(ctx, session.ChannelID(), "Arming cancelled, not enough hunters.")
		}
		return nil
	})
}

// Guess plays one bounty guess. Attempts are unlimited but each user
// waits out a short cooldown between their own guesses; a guess inside
// the window is rejected without consuming anything.
func (s *bountyService) Guess(ctx context.Context, userID int64, word string) (*interfaces.GuessResult, error) {
	session, ok := s.current()
	if !ok {
		return nil, ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()
	if session.Phase != games.BountyArmed {
		return nil, ErrSessionNotFound
	}

	now := s.now()
	if remaining := session.CooldownRemaining(userID, now); remaining > 0 {
		return nil, fmt.Errorf("%w: %.1fs left", ErrGuessCooldown, remaining.Seconds())
	}

	guess, err := validateGuess(word)
	if err != nil {
		return nil, err
	}
	session.TouchGuess(userID, now)

	pattern, err := entities.ScoreGuess(guess, session.Secret)
	if err != nil {
		return nil, err
	}
	result := &interfaces.GuessResult{Attempt: entities.Attempt{Word: guess, Pattern: pattern}}
	if !pattern.AllCorrect() {
		return result, nil
	}

	result.Outcome = games.OutcomeSolved
	result.Payout = entities.BountyPayout
	if _, err := s.ledger.AdjustBalance(ctx, userID, entities.BountyPayout, entities.ReasonBountyWin); err != nil {
		return nil, err
	}
	if err := s.statsRepo.Increment(ctx, userID, entities.StatBountyWins); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("failed to count bounty win")
	}

	s.registry.End(session.Key())
	s.post(ctx, session.ChannelID(), fmt.Sprintf("<@%d> claimed the bounty! **%s** pays %d shekels.",
		userID, strings.ToUpper(session.Secret), entities.BountyPayout))
	return result, nil
}

// Tick runs one scheduler pass for the guild: expire a timed-out prompt
// or armed session, promote a prompt whose countdown elapsed with quorum
// intact, and post the hourly prompt when the window and markers line up.
func (s *bountyService) Tick(ctx context.Context) error {
	return s.armLocks.WithLock(s.guildID, func() error {
		now := s.now()
		if session, ok := s.current(); ok {
			return s.advance(ctx, session, now)
		}
		return s.maybePost(ctx, now)
	})
}

func (s *bountyService) advance(ctx context.Context, session *games.BountySession, now time.Time) error {
	session.Lock()
	defer session.Unlock()

	if session.Expired(now) {
		return s.expire(ctx, session)
	}
	if session.ReadyToArm(now) {
		session.Arm(words.RandomAnswer(s.rng), now)
		s.post(ctx, session.ChannelID(), "The bounty is armed! Guess away; first correct word takes the prize.")
	}
	return nil
}

// expire closes out a dead prompt or armed session: the pot grows by one
// as consolation and the next hourly prompt is skipped once.
func (s *bountyService) expire(ctx context.Context, session *games.BountySession) error {
	s.registry.End(session.Key())

	if _, err := s.potRepo.Add(ctx, 1); err != nil {
		return fmt.Errorf("failed to grow pot on bounty expiry: %w", err)
	}
	if err := s.settingsRepo.SetSuppressNextBounty(ctx, s.guildID, true); err != nil {
		return fmt.Errorf("failed to set bounty suppression: %w", err)
	}

	if session.Phase == games.BountyArmed {
		s.post(ctx, session.ChannelID(), fmt.Sprintf("Nobody found **%s**. The bounty slips away and the pot grows by 1.",
			strings.ToUpper(session.Secret)))
	} else {
		s.post(ctx, session.ChannelID(), "The bounty found no takers. The pot grows by 1.")
	}
	return nil
}

func (s *bountyService) maybePost(ctx context.Context, now time.Time) error {
	settings, err := s.settingsRepo.GetOrCreateGuildSettings(ctx, s.guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild settings: %w", err)
	}
	if !settings.HasBountyChannel() {
		return nil
	}

	hour := utils.HourIndex(now)
	if settings.LastBountyHour == hour || !utils.WithinHourPostWindow(now, bountyPostWindowSeconds) {
		return nil
	}

	if settings.SuppressNextBounty {
		// An expiry earned this hour off. Burn the flag and the hour
		// marker together so the skip happens exactly once.
		if err := s.settingsRepo.SetSuppressNextBounty(ctx, s.guildID, false); err != nil {
			return fmt.Errorf("failed to clear bounty suppression: %w", err)
		}
		if err := s.settingsRepo.SetLastBountyHour(ctx, s.guildID, hour); err != nil {
			return fmt.Errorf("failed to mark bounty hour: %w", err)
		}
		return nil
	}

	messageID, err := s.notifier.PostPrompt(ctx, *settings.BountyChannelID,
		fmt.Sprintf("A bounty is up for grabs! React with ⚔️ to arm it; %d hunters needed.", games.BountyQuorum))
	if err != nil {
		return fmt.Errorf("failed to post bounty prompt: %w", err)
	}
	if err := s.settingsRepo.SetLastBountyHour(ctx, s.guildID, hour); err != nil {
		return fmt.Errorf("failed to mark bounty hour: %w", err)
	}

	session := games.NewBountySession(s.guildID, *settings.BountyChannelID, messageID, now)
	if _, ok := s.registry.Start(session); !ok {
		// Can only happen if something raced a manual start in; the
		// posted prompt is orphaned but harmless.
		log.WithField("guild_id", s.guildID).Warn("bounty session already present after posting prompt")
	}
	return nil
}

func (s *bountyService) post(ctx context.Context, channelID int64, text string) {
	if err := s.notifier.Announce(ctx, channelID, text); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"guild_id":   s.guildID,
			"channel_id": channelID,
		}).Warn("failed to post bounty update")
	}
}
