package services

import (
	"math/rand"
	"time"

	"wordleworld/domain/games"
	"wordleworld/domain/interfaces"
	"wordleworld/domain/testhelpers"
	"wordleworld/domain/utils"

	"github.com/stretchr/testify/mock"
)

const (
	testGuildID   = int64(9000)
	testChannelID = int64(7100)
	testUserID    = int64(42)
	testOtherID   = int64(77)
)

// fixture wires every mock a game service can need. Individual tests
// set expectations on the mocks they care about and leave the rest on
// permissive defaults.
type fixture struct {
	registry    *games.Registry
	wallet      *testhelpers.MockWalletRepository
	inventory   *testhelpers.MockInventoryRepository
	daily       *testhelpers.MockDailyPlayRepository
	streak      *testhelpers.MockStreakRepository
	stats       *testhelpers.MockStatsRepository
	pot         *testhelpers.MockPotRepository
	settings    *testhelpers.MockGuildSettingsRepository
	channels    *testhelpers.MockChannelManager
	notifier    *testhelpers.MockNotifier
	definitions *testhelpers.MockDefinitionLookup
	roleSync    *testhelpers.MockRoleSyncer

	ledger interfaces.LedgerService
	now    time.Time
}

func newFixture() *fixture {
	f := &fixture{
		registry:    games.NewRegistry(),
		wallet:      new(testhelpers.MockWalletRepository),
		inventory:   new(testhelpers.MockInventoryRepository),
		daily:       new(testhelpers.MockDailyPlayRepository),
		streak:      new(testhelpers.MockStreakRepository),
		stats:       new(testhelpers.MockStatsRepository),
		pot:         new(testhelpers.MockPotRepository),
		settings:    new(testhelpers.MockGuildSettingsRepository),
		channels:    new(testhelpers.MockChannelManager),
		notifier:    new(testhelpers.MockNotifier),
		definitions: new(testhelpers.MockDefinitionLookup),
		roleSync:    new(testhelpers.MockRoleSyncer),
		now:         time.Date(2025, 6, 1, 12, 0, 10, 0, time.UTC),
	}
	f.ledger = NewLedgerService(testGuildID, f.wallet, f.inventory, f.roleSync, testhelpers.ImmediateTxHooks{})

	// Best-effort collaborators default to quiet success.
	f.roleSync.On("SyncRoles", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.notifier.On("Announce", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.notifier.On("AnnounceGuild", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.stats.On("Increment", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.channels.On("DeleteChannel", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.definitions.On("Define", mock.Anything, mock.Anything).Return("").Maybe()
	return f
}

func (f *fixture) solo() *soloService {
	svc := NewSoloService(testGuildID, f.registry, f.ledger, f.daily, f.streak, f.stats,
		f.channels, f.notifier, f.definitions).(*soloService)
	svc.now = func() time.Time { return f.now }
	svc.rng = rand.New(rand.NewSource(1))
	return svc
}

func (f *fixture) wordPot() *wordPotService {
	svc := NewWordPotService(testGuildID, f.registry, f.ledger, f.pot, f.stats,
		f.channels, f.notifier, f.definitions).(*wordPotService)
	svc.rng = rand.New(rand.NewSource(1))
	return svc
}

func (f *fixture) bounty() *bountyService {
	svc := NewBountyService(testGuildID, f.registry, f.ledger, f.pot, f.stats,
		f.settings, f.notifier, utils.NewKeyedMutex()).(*bountyService)
	svc.now = func() time.Time { return f.now }
	svc.rng = rand.New(rand.NewSource(1))
	return svc
}

func (f *fixture) dungeon() *dungeonService {
	svc := NewDungeonService(testGuildID, f.registry, f.ledger, f.stats,
		f.channels, f.notifier, f.definitions).(*dungeonService)
	svc.rng = rand.New(rand.NewSource(1))
	return svc
}

// startedSolo registers a solo session directly, bypassing Start, so
// guess-path tests control the secret.
func (f *fixture) startedSolo(secret, startDate string) *games.SoloSession {
	session := games.NewSoloSession(testGuildID, testChannelID, testUserID, secret, startDate)
	f.registry.Start(session)
	return session
}

func (f *fixture) startedWordPot(secret string) *games.WordPotSession {
	session := games.NewWordPotSession(testGuildID, testChannelID, testUserID, secret)
	f.registry.Start(session)
	return session
}

func (f *fixture) startedDungeon(tier int, secret string, extra ...int64) *games.DungeonSession {
	session := games.NewDungeonSession(testGuildID, testChannelID, testUserID, tier)
	for _, id := range extra {
		session.Join(id)
	}
	session.LockGate(secret)
	f.registry.Start(session)
	return session
}
