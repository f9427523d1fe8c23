package testhelpers

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Announce(ctx context.Context, channelID int64, text string) error {
	args := m.Called(ctx, channelID, text)
	return args.Error(0)
}

func (m *MockNotifier) AnnounceGuild(ctx context.Context, guildID int64, text string) error {
	args := m.Called(ctx, guildID, text)
	return args.Error(0)
}

func (m *MockNotifier) PostPrompt(ctx context.Context, channelID int64, text string) (int64, error) {
	args := m.Called(ctx, channelID, text)
	return args.Get(0).(int64), args.Error(1)
}

// ImmediateTxHooks runs post-commit hooks as soon as they are
// registered. Service tests have no real transaction to wait behind.
type ImmediateTxHooks struct{}

func (ImmediateTxHooks) AfterCommit(fn func()) { fn() }

// QueuedTxHooks collects post-commit hooks so tests can assert what is
// deferred and choose when to run it.
type QueuedTxHooks struct {
	Queued []func()
}

func (q *QueuedTxHooks) AfterCommit(fn func()) { q.Queued = append(q.Queued, fn) }

// RunAll fires the queued hooks in registration order and clears them.
func (q *QueuedTxHooks) RunAll() {
	hooks := q.Queued
	q.Queued = nil
	for _, fn := range hooks {
		fn()
	}
}

// MockRoleSyncer is a mock implementation of RoleSyncer
type MockRoleSyncer struct {
	mock.Mock
}

func (m *MockRoleSyncer) SyncRoles(ctx context.Context, guildID, discordID int64) error {
	args := m.Called(ctx, guildID, discordID)
	return args.Error(0)
}

// MockDefinitionLookup is a mock implementation of DefinitionLookup
type MockDefinitionLookup struct {
	mock.Mock
}

func (m *MockDefinitionLookup) Define(ctx context.Context, word string) string {
	args := m.Called(ctx, word)
	return args.String(0)
}

// MockChannelManager is a mock implementation of ChannelManager
type MockChannelManager struct {
	mock.Mock
}

func (m *MockChannelManager) CreateGameChannel(ctx context.Context, guildID int64, name string, userIDs ...int64) (int64, error) {
	callArgs := []interface{}{ctx, guildID, name}
	for _, id := range userIDs {
		callArgs = append(callArgs, id)
	}
	args := m.Called(callArgs...)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChannelManager) GrantAccess(ctx context.Context, channelID, userID int64) error {
	args := m.Called(ctx, channelID, userID)
	return args.Error(0)
}

func (m *MockChannelManager) DeleteChannel(ctx context.Context, channelID int64) error {
	args := m.Called(ctx, channelID)
	return args.Error(0)
}
