package testhelpers

import (
	"context"

	"wordleworld/domain/entities"

	"github.com/stretchr/testify/mock"
)

// MockWalletRepository is a mock implementation of WalletRepository
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetByDiscordID(ctx context.Context, discordID int64) (*entities.Wallet, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) AddDelta(ctx context.Context, discordID int64, delta int64, reason entities.LedgerReason) (int64, error) {
	args := m.Called(ctx, discordID, delta, reason)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWalletRepository) GetTopBalances(ctx context.Context, limit int) ([]*entities.ScoreboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ScoreboardEntry), args.Error(1)
}

func (m *MockWalletRepository) GetHistory(ctx context.Context, discordID int64, limit int) ([]*entities.LedgerEntry, error) {
	args := m.Called(ctx, discordID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LedgerEntry), args.Error(1)
}

// MockInventoryRepository is a mock implementation of InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) GetQuantity(ctx context.Context, discordID int64, kind entities.ItemKind) (int64, error) {
	args := m.Called(ctx, discordID, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) AddQuantity(ctx context.Context, discordID int64, kind entities.ItemKind, delta int64) (int64, error) {
	args := m.Called(ctx, discordID, kind, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) GetAll(ctx context.Context, discordID int64) ([]*entities.InventoryItem, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) GetTopHolder(ctx context.Context, kind entities.ItemKind) (int64, int64, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// MockDailyPlayRepository is a mock implementation of DailyPlayRepository
type MockDailyPlayRepository struct {
	mock.Mock
}

func (m *MockDailyPlayRepository) GetPlays(ctx context.Context, discordID int64, ukDate string) (int, error) {
	args := m.Called(ctx, discordID, ukDate)
	return args.Int(0), args.Error(1)
}

func (m *MockDailyPlayRepository) IncrementPlays(ctx context.Context, discordID int64, ukDate string) (int, error) {
	args := m.Called(ctx, discordID, ukDate)
	return args.Int(0), args.Error(1)
}

func (m *MockDailyPlayRepository) DecrementPlays(ctx context.Context, discordID int64, ukDate string) error {
	args := m.Called(ctx, discordID, ukDate)
	return args.Error(0)
}

func (m *MockDailyPlayRepository) HasClaimed(ctx context.Context, discordID int64, ukDate string) (bool, error) {
	args := m.Called(ctx, discordID, ukDate)
	return args.Bool(0), args.Error(1)
}

func (m *MockDailyPlayRepository) MarkClaimed(ctx context.Context, discordID int64, ukDate string) (bool, error) {
	args := m.Called(ctx, discordID, ukDate)
	return args.Bool(0), args.Error(1)
}

func (m *MockDailyPlayRepository) MarkBegged(ctx context.Context, discordID int64, ukDate string) (bool, error) {
	args := m.Called(ctx, discordID, ukDate)
	return args.Bool(0), args.Error(1)
}

// MockStreakRepository is a mock implementation of StreakRepository
type MockStreakRepository struct {
	mock.Mock
}

func (m *MockStreakRepository) Get(ctx context.Context, discordID int64) (*entities.Streak, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Streak), args.Error(1)
}

func (m *MockStreakRepository) Upsert(ctx context.Context, streak *entities.Streak) error {
	args := m.Called(ctx, streak)
	return args.Error(0)
}

// MockPotRepository is a mock implementation of PotRepository
type MockPotRepository struct {
	mock.Mock
}

func (m *MockPotRepository) Get(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPotRepository) Add(ctx context.Context, delta int64) (int64, error) {
	args := m.Called(ctx, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPotRepository) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockStatsRepository is a mock implementation of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Increment(ctx context.Context, discordID int64, kind entities.StatKind) error {
	args := m.Called(ctx, discordID, kind)
	return args.Error(0)
}

func (m *MockStatsRepository) GetForUser(ctx context.Context, discordID int64) (map[entities.StatKind]int64, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entities.StatKind]int64), args.Error(1)
}

// MockGuildSettingsRepository is a mock implementation of GuildSettingsRepository
type MockGuildSettingsRepository struct {
	mock.Mock
}

func (m *MockGuildSettingsRepository) GetOrCreateGuildSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GuildSettings), args.Error(1)
}

func (m *MockGuildSettingsRepository) UpdateGuildSettings(ctx context.Context, settings *entities.GuildSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockGuildSettingsRepository) SetLastBountyHour(ctx context.Context, guildID int64, hour int64) error {
	args := m.Called(ctx, guildID, hour)
	return args.Error(0)
}

func (m *MockGuildSettingsRepository) SetSuppressNextBounty(ctx context.Context, guildID int64, suppress bool) error {
	args := m.Called(ctx, guildID, suppress)
	return args.Error(0)
}

func (m *MockGuildSettingsRepository) ListRoleTiers(ctx context.Context, guildID int64) ([]*entities.RoleTier, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RoleTier), args.Error(1)
}

func (m *MockGuildSettingsRepository) UpsertRoleTier(ctx context.Context, tier *entities.RoleTier) error {
	args := m.Called(ctx, tier)
	return args.Error(0)
}

func (m *MockGuildSettingsRepository) DeleteRoleTier(ctx context.Context, guildID, roleID int64) error {
	args := m.Called(ctx, guildID, roleID)
	return args.Error(0)
}
