package services

import (
	"context"
	"testing"
	"time"

	"wordleworld/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDailyService(f *fixture) *dailyService {
	svc := NewDailyService(testGuildID, f.ledger, f.daily).(*dailyService)
	svc.now = func() time.Time { return f.now }
	return svc
}

func TestDailyClaim_PaysOncePerUKDay(t *testing.T) {
	f := newFixture()
	f.daily.On("MarkClaimed", mock.Anything, testUserID, "2025-06-01").Return(true, nil).Once()
	f.daily.On("MarkClaimed", mock.Anything, testUserID, "2025-06-01").Return(false, nil)
	f.wallet.On("AddDelta", mock.Anything, testUserID, int64(entities.DailyClaimAmount), entities.ReasonDaily).Return(int64(12), nil).Once()
	svc := newDailyService(f)

	balance, err := svc.Claim(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), balance)

	_, err = svc.Claim(context.Background(), testUserID)
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
	f.wallet.AssertNumberOfCalls(t, "AddDelta", 1)
}

func TestDailyBeg_GrantsStonesOncePerUKDay(t *testing.T) {
	f := newFixture()
	f.daily.On("MarkBegged", mock.Anything, testUserID, "2025-06-01").Return(true, nil).Once()
	f.daily.On("MarkBegged", mock.Anything, testUserID, "2025-06-01").Return(false, nil)
	f.inventory.On("AddQuantity", mock.Anything, testUserID, entities.ItemStone, int64(entities.DailyBegAmount)).Return(int64(8), nil).Once()
	svc := newDailyService(f)

	stones, err := svc.Beg(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), stones)

	_, err = svc.Beg(context.Background(), testUserID)
	assert.ErrorIs(t, err, ErrAlreadyBegged)
	f.inventory.AssertNumberOfCalls(t, "AddQuantity", 1)
}

func TestDailyBeg_IndependentOfClaim(t *testing.T) {
	f := newFixture()
	f.daily.On("MarkClaimed", mock.Anything, testUserID, "2025-06-01").Return(true, nil)
	f.daily.On("MarkBegged", mock.Anything, testUserID, "2025-06-01").Return(true, nil)
	f.wallet.On("AddDelta", mock.Anything, testUserID, int64(entities.DailyClaimAmount), entities.ReasonDaily).Return(int64(10), nil)
	f.inventory.On("AddQuantity", mock.Anything, testUserID, entities.ItemStone, int64(entities.DailyBegAmount)).Return(int64(5), nil)
	svc := newDailyService(f)

	_, err := svc.Claim(context.Background(), testUserID)
	require.NoError(t, err)
	_, err = svc.Beg(context.Background(), testUserID)
	require.NoError(t, err)
	f.daily.AssertExpectations(t)
}

func TestDailyClaim_DayRollsOverAtUKMidnight(t *testing.T) {
	f := newFixture()
	// 23:30 UTC in British Summer Time is already the next UK day.
	f.now = time.Date(2025, 7, 10, 23, 30, 0, 0, time.UTC)
	f.daily.On("MarkClaimed", mock.Anything, testUserID, "2025-07-11").Return(true, nil)
	f.wallet.On("AddDelta", mock.Anything, testUserID, int64(entities.DailyClaimAmount), entities.ReasonDaily).Return(int64(5), nil)

	_, err := newDailyService(f).Claim(context.Background(), testUserID)

	require.NoError(t, err)
	f.daily.AssertExpectations(t)
}
