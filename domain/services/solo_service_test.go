package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"wordleworld/domain/entities"
	"wordleworld/domain/games"
	"wordleworld/domain/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSoloStart_DailyCap(t *testing.T) {
	tests := []struct {
		name       string
		plays      int
		wantCapped bool
	}{
		{name: "fourth game allowed", plays: 3, wantCapped: false},
		{name: "fifth game allowed", plays: 4, wantCapped: false},
		{name: "sixth game rejected", plays: 5, wantCapped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.daily.On("GetPlays", mock.Anything, testUserID, "2025-06-01").Return(tt.plays, nil)
			if !tt.wantCapped {
				f.channels.On("CreateGameChannel", mock.Anything, testGuildID, mock.Anything, testUserID).Return(testChannelID, nil)
				f.daily.On("IncrementPlays", mock.Anything, testUserID, "2025-06-01").Return(tt.plays+1, nil)
			}

			session, err := f.solo().Start(context.Background(), testUserID)

			if tt.wantCapped {
				var capErr *DailyCapError
				require.ErrorAs(t, err, &capErr)
				assert.Equal(t, entities.DailySoloCap, capErr.Cap)
				assert.Nil(t, session)
			} else {
				require.NoError(t, err)
				require.NotNil(t, session)
				assert.Equal(t, "2025-06-01", session.StartDate)
				f.daily.AssertExpectations(t)
			}
		})
	}
}

// A capped player gets a fresh allowance when the UK day rolls over,
// even when UK midnight is not UTC midnight.
func TestSoloStart_CapResetsAtUKMidnight(t *testing.T) {
	f := newFixture()
	// 23:30 UTC on 25 Oct 2025 is already 00:30 on the 26th in London.
	f.now = time.Date(2025, 10, 25, 23, 30, 0, 0, time.UTC)
	f.daily.On("GetPlays", mock.Anything, testUserID, "2025-10-26").Return(0, nil)
	f.channels.On("CreateGameChannel", mock.Anything, testGuildID, mock.Anything, testUserID).Return(testChannelID, nil)
	f.daily.On("IncrementPlays", mock.Anything, testUserID, "2025-10-26").Return(1, nil)
	f.streak.On("Get", mock.Anything, testUserID).Return(&entities.Streak{
		GuildID: testGuildID, DiscordID: testUserID,
	}, nil)
	f.streak.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	session, err := f.solo().Start(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, "2025-10-26", session.StartDate)
	f.daily.AssertExpectations(t)
}

func TestSoloStart_StreakMovesOnFirstGameOnly(t *testing.T) {
	t.Run("first game of the day extends the streak", func(t *testing.T) {
		f := newFixture()
		f.daily.On("GetPlays", mock.Anything, testUserID, "2025-06-01").Return(0, nil)
		f.channels.On("CreateGameChannel", mock.Anything, testGuildID, mock.Anything, testUserID).Return(testChannelID, nil)
		f.daily.On("IncrementPlays", mock.Anything, testUserID, "2025-06-01").Return(1, nil)
		f.streak.On("Get", mock.Anything, testUserID).Return(&entities.Streak{
			GuildID: testGuildID, DiscordID: testUserID,
			Current: 3, Best: 6, LastPlayed: "2025-05-31",
		}, nil)
		f.streak.On("Upsert", mock.Anything, mock.MatchedBy(func(s *entities.Streak) bool {
			return s.Current == 4 && s.LastPlayed == "2025-06-01"
		})).Return(nil)

		_, err := f.solo().Start(context.Background(), testUserID)

		require.NoError(t, err)
		f.streak.AssertExpectations(t)
	})

	t.Run("later games leave the streak alone", func(t *testing.T) {
		f := newFixture()
		f.daily.On("GetPlays", mock.Anything, testUserID, "2025-06-01").Return(2, nil)
		f.channels.On("CreateGameChannel", mock.Anything, testGuildID, mock.Anything, testUserID).Return(testChannelID, nil)
		f.daily.On("IncrementPlays", mock.Anything, testUserID, "2025-06-01").Return(3, nil)

		_, err := f.solo().Start(context.Background(), testUserID)

		require.NoError(t, err)
		f.streak.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		f.streak.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestSoloStart_SecondStartConflicts(t *testing.T) {
	f := newFixture()
	f.startedSolo("crane", "2025-06-01")

	session, err := f.solo().Start(context.Background(), testUserID)

	var conflict *SessionConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, testChannelID, conflict.ChannelID)
	assert.Nil(t, session)
	f.channels.AssertNotCalled(t, "CreateGameChannel", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// A second start racing in while the first is still creating its
// channel must lose, not open a second game on the same owner.
func TestSoloStart_ConcurrentStartsAdmitOne(t *testing.T) {
	f := newFixture()
	f.daily.On("GetPlays", mock.Anything, testUserID, "2025-06-01").Return(1, nil)
	f.daily.On("IncrementPlays", mock.Anything, testUserID, "2025-06-01").Return(2, nil)

	creating := make(chan struct{})
	release := make(chan struct{})
	f.channels.On("CreateGameChannel", mock.Anything, testGuildID, mock.Anything, testUserID).
		Return(testChannelID, nil).
		Run(func(mock.Arguments) {
			close(creating)
			<-release
		}).Once()

	var first *games.SoloSession
	var firstErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		first, firstErr = f.solo().Start(context.Background(), testUserID)
	}()

	// Wait until the first start is suspended inside channel creation,
	// past its own registry check.
	<-creating
	second, secondErr := f.solo().Start(context.Background(), testUserID)
	var conflict *SessionConflictError
	require.ErrorAs(t, secondErr, &conflict)
	assert.Nil(t, second)

	close(release)
	<-done
	require.NoError(t, firstErr)
	require.NotNil(t, first)
	f.channels.AssertNumberOfCalls(t, "CreateGameChannel", 1)
	f.daily.AssertNumberOfCalls(t, "IncrementPlays", 1)
}

func TestSoloStart_CounterFailureTearsDown(t *testing.T) {
	f := newFixture()
	f.daily.On("GetPlays", mock.Anything, testUserID, "2025-06-01").Return(1, nil)
	f.channels.On("CreateGameChannel", mock.Anything, testGuildID, mock.Anything, testUserID).Return(testChannelID, nil)
	f.daily.On("IncrementPlays", mock.Anything, testUserID, "2025-06-01").Return(0, errors.New("db down"))

	session, err := f.solo().Start(context.Background(), testUserID)

	require.Error(t, err)
	assert.Nil(t, session)
	_, ok := f.registry.FindSoloByOwner(testGuildID, testUserID)
	assert.False(t, ok, "failed start must not leave a session behind")
	f.channels.AssertCalled(t, "DeleteChannel", mock.Anything, testChannelID)
}

func TestSoloGuess_WinPaysByAttempt(t *testing.T) {
	tests := []struct {
		name       string
		misses     int
		wantPayout int64
	}{
		{name: "first guess pays 5", misses: 0, wantPayout: 5},
		{name: "third guess pays 3", misses: 2, wantPayout: 3},
		{name: "fifth guess pays 1", misses: 4, wantPayout: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			session := f.startedSolo("crane", "2025-06-01")
			f.wallet.On("AddDelta", mock.Anything, testUserID, tt.wantPayout, entities.ReasonSoloWin).Return(tt.wantPayout, nil)
			svc := f.solo()

			for i := 0; i < tt.misses; i++ {
				result, err := svc.Guess(context.Background(), session, "slate")
				require.NoError(t, err)
				assert.Equal(t, games.OutcomeOngoing, result.Outcome)
			}
			result, err := svc.Guess(context.Background(), session, "crane")

			require.NoError(t, err)
			assert.Equal(t, games.OutcomeSolved, result.Outcome)
			assert.Equal(t, tt.wantPayout, result.Payout)
			f.wallet.AssertExpectations(t)
			_, ok := f.registry.FindSoloByOwner(testGuildID, testUserID)
			assert.False(t, ok, "solved session must leave the registry")
		})
	}
}

func TestSoloGuess_ExhaustedPaysNothing(t *testing.T) {
	f := newFixture()
	session := f.startedSolo("crane", "2025-06-01")
	svc := f.solo()

	var result *interfaces.GuessResult
	for i := 0; i < entities.SoloMaxAttempts; i++ {
		r, err := svc.Guess(context.Background(), session, "slate")
		require.NoError(t, err)
		result = r
	}

	assert.Equal(t, games.OutcomeExhausted, result.Outcome)
	assert.Zero(t, result.Payout)
	assert.NotEmpty(t, result.Quip)
	f.wallet.AssertNotCalled(t, "AddDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	_, ok := f.registry.FindSoloByOwner(testGuildID, testUserID)
	assert.False(t, ok)
}

func TestSoloGuess_RejectsWordsOutsideDictionary(t *testing.T) {
	f := newFixture()
	session := f.startedSolo("crane", "2025-06-01")
	svc := f.solo()

	tests := []struct {
		name    string
		guess   string
		wantErr error
	}{
		{name: "too short", guess: "cat", wantErr: ErrNotFiveLetters},
		{name: "not a word", guess: "zzzzz", wantErr: ErrNotInDictionary},
		{name: "digits", guess: "12345", wantErr: ErrNotFiveLetters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Guess(context.Background(), session, tt.guess)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Equal(t, 0, session.Board.AttemptCount(), "rejected guesses must not consume attempts")
}

func TestSoloEndEarly_SettlesAsFail(t *testing.T) {
	f := newFixture()
	session := f.startedSolo("crane", "2025-06-01")

	result, err := f.solo().EndEarly(context.Background(), session)

	require.NoError(t, err)
	assert.Equal(t, games.OutcomeExhausted, result.Outcome)
	assert.Zero(t, result.Payout)
	f.stats.AssertCalled(t, "Increment", mock.Anything, testUserID, entities.StatSoloFails)
	_, ok := f.registry.FindSoloByOwner(testGuildID, testUserID)
	assert.False(t, ok)
}

func TestSnipe_HitPaysNextPositionAndRollsBackTheDay(t *testing.T) {
	f := newFixture()
	session := f.startedSolo("crane", "2025-10-25")
	svc := f.solo()

	// Owner has burned three guesses; a hit now pays position four.
	for i := 0; i < 3; i++ {
		_, err := svc.Guess(context.Background(), session, "slate")
		require.NoError(t, err)
	}

	f.wallet.On("GetByDiscordID", mock.Anything, testOtherID).Return(&entities.Wallet{DiscordID: testOtherID, Balance: 10}, nil)
	f.wallet.On("AddDelta", mock.Anything, testOtherID, int64(-1), entities.ReasonSnipeCost).Return(int64(9), nil)
	f.wallet.On("AddDelta", mock.Anything, testOtherID, int64(2), entities.ReasonSnipeWin).Return(int64(11), nil)
	// The rollback targets the date the game started, not today.
	f.daily.On("DecrementPlays", mock.Anything, testUserID, "2025-10-25").Return(nil)
	// First hit earns the badge.
	f.inventory.On("GetQuantity", mock.Anything, testOtherID, entities.ItemSniperBadge).Return(int64(0), nil)
	f.inventory.On("AddQuantity", mock.Anything, testOtherID, entities.ItemSniperBadge, int64(1)).Return(int64(1), nil)

	result, err := svc.Snipe(context.Background(), testOtherID, testUserID, "crane")

	require.NoError(t, err)
	assert.Equal(t, games.OutcomeSolved, result.Outcome)
	assert.Equal(t, int64(2), result.Payout)
	f.wallet.AssertExpectations(t)
	f.daily.AssertExpectations(t)
	f.inventory.AssertExpectations(t)
	_, ok := f.registry.FindSoloByOwner(testGuildID, testUserID)
	assert.False(t, ok, "a landed snipe ends the game")
}

func TestSnipe_BadgeAwardedOnlyOnce(t *testing.T) {
	f := newFixture()
	f.startedSolo("crane", "2025-06-01")
	f.wallet.On("GetByDiscordID", mock.Anything, testOtherID).Return(&entities.Wallet{DiscordID: testOtherID, Balance: 10}, nil)
	f.wallet.On("AddDelta", mock.Anything, testOtherID, mock.Anything, mock.Anything).Return(int64(10), nil)
	f.daily.On("DecrementPlays", mock.Anything, testUserID, "2025-06-01").Return(nil)
	f.inventory.On("GetQuantity", mock.Anything, testOtherID, entities.ItemSniperBadge).Return(int64(1), nil)

	_, err := f.solo().Snipe(context.Background(), testOtherID, testUserID, "crane")

	require.NoError(t, err)
	f.inventory.AssertNotCalled(t, "AddQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSnipe_MissStillCostsTheFee(t *testing.T) {
	f := newFixture()
	session := f.startedSolo("crane", "2025-06-01")
	f.wallet.On("GetByDiscordID", mock.Anything, testOtherID).Return(&entities.Wallet{DiscordID: testOtherID, Balance: 5}, nil)
	f.wallet.On("AddDelta", mock.Anything, testOtherID, int64(-1), entities.ReasonSnipeCost).Return(int64(4), nil)

	result, err := f.solo().Snipe(context.Background(), testOtherID, testUserID, "slate")

	require.NoError(t, err)
	assert.Equal(t, games.OutcomeOngoing, result.Outcome)
	assert.Zero(t, result.Payout)
	assert.Equal(t, 0, session.Board.AttemptCount(), "a snipe never consumes the owner's attempts")
	f.wallet.AssertExpectations(t)
	f.daily.AssertNotCalled(t, "DecrementPlays", mock.Anything, mock.Anything, mock.Anything)
	_, ok := f.registry.FindSoloByOwner(testGuildID, testUserID)
	assert.True(t, ok, "a missed snipe leaves the game running")
}

func TestSnipe_OneShotPerSniper(t *testing.T) {
	f := newFixture()
	f.startedSolo("crane", "2025-06-01")
	f.wallet.On("GetByDiscordID", mock.Anything, testOtherID).Return(&entities.Wallet{DiscordID: testOtherID, Balance: 5}, nil)
	f.wallet.On("AddDelta", mock.Anything, testOtherID, int64(-1), entities.ReasonSnipeCost).Return(int64(4), nil)
	svc := f.solo()

	_, err := svc.Snipe(context.Background(), testOtherID, testUserID, "slate")
	require.NoError(t, err)

	_, err = svc.Snipe(context.Background(), testOtherID, testUserID, "audio")
	assert.ErrorIs(t, err, ErrAlreadySniped)
	f.wallet.AssertNumberOfCalls(t, "AddDelta", 1)
}

func TestSnipe_GuardsAndFunds(t *testing.T) {
	t.Run("owner cannot snipe their own game", func(t *testing.T) {
		f := newFixture()
		f.startedSolo("crane", "2025-06-01")

		_, err := f.solo().Snipe(context.Background(), testUserID, testUserID, "crane")
		assert.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("no active game to snipe", func(t *testing.T) {
		f := newFixture()

		_, err := f.solo().Snipe(context.Background(), testOtherID, testUserID, "crane")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("broke snipers are turned away", func(t *testing.T) {
		f := newFixture()
		f.startedSolo("crane", "2025-06-01")
		f.wallet.On("GetByDiscordID", mock.Anything, testOtherID).Return(&entities.Wallet{DiscordID: testOtherID, Balance: 0}, nil)

		_, err := f.solo().Snipe(context.Background(), testOtherID, testUserID, "crane")

		var insufficient *InsufficientBalanceError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, int64(entities.SnipeCost), insufficient.Required)
		f.wallet.AssertNotCalled(t, "AddDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("a rejected charge does not burn the shot", func(t *testing.T) {
		f := newFixture()
		f.startedSolo("crane", "2025-06-01")
		svc := f.solo()

		f.wallet.On("GetByDiscordID", mock.Anything, testOtherID).Return(&entities.Wallet{DiscordID: testOtherID, Balance: 0}, nil).Once()
		_, err := svc.Snipe(context.Background(), testOtherID, testUserID, "slate")
		var insufficient *InsufficientBalanceError
		require.ErrorAs(t, err, &insufficient)

		// Topped up, the same sniper still has their shot.
		f.wallet.On("GetByDiscordID", mock.Anything, testOtherID).Return(&entities.Wallet{DiscordID: testOtherID, Balance: 5}, nil)
		f.wallet.On("AddDelta", mock.Anything, testOtherID, int64(-1), entities.ReasonSnipeCost).Return(int64(4), nil)

		result, err := svc.Snipe(context.Background(), testOtherID, testUserID, "slate")
		require.NoError(t, err)
		assert.Equal(t, games.OutcomeOngoing, result.Outcome)
	})
}
