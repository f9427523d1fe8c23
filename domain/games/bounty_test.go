package games

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBountyQuorumStartsCountdown(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewBountySession(1, 100, 555, now)

	s.AddArmer(10, now)
	assert.Nil(t, s.ArmingAt, "one armer is below quorum")

	s.AddArmer(11, now)
	require.NotNil(t, s.ArmingAt)
	assert.Equal(t, now.Add(BountyArmDelay), *s.ArmingAt)

	// A third reaction does not restart the countdown.
	at := *s.ArmingAt
	s.AddArmer(12, now.Add(30*time.Second))
	assert.Equal(t, at, *s.ArmingAt)
}

func TestBountyQuorumLossCancelsCountdown(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewBountySession(1, 100, 555, now)

	s.AddArmer(10, now)
	s.AddArmer(11, now)
	require.NotNil(t, s.ArmingAt)

	s.RemoveArmer(10)
	assert.Nil(t, s.ArmingAt, "dropping below quorum cancels the countdown")
	assert.False(t, s.ReadyToArm(now.Add(2*BountyArmDelay)), "no armed session may come from a cancelled prompt")
}

func TestBountyReadyToArm(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewBountySession(1, 100, 555, now)
	s.AddArmer(10, now)
	s.AddArmer(11, now)

	assert.False(t, s.ReadyToArm(now.Add(BountyArmDelay-time.Second)))
	assert.True(t, s.ReadyToArm(now.Add(BountyArmDelay)))

	s.Arm("crane", now.Add(BountyArmDelay))
	assert.Equal(t, BountyArmed, s.Phase)
	assert.Equal(t, "crane", s.Secret)
	assert.False(t, s.ReadyToArm(now.Add(2*BountyArmDelay)))
}

func TestBountyExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewBountySession(1, 100, 555, now)

	assert.False(t, s.Expired(now.Add(BountyExpiry)))
	assert.True(t, s.Expired(now.Add(BountyExpiry+time.Second)))

	// Arming renews the window.
	s.AddArmer(10, now)
	s.AddArmer(11, now)
	armTime := now.Add(BountyArmDelay)
	s.Arm("crane", armTime)
	assert.False(t, s.Expired(now.Add(BountyExpiry)))
	assert.True(t, s.Expired(armTime.Add(BountyExpiry+time.Second)))
}

func TestBountyGuessCooldown(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewBountySession(1, 100, 555, now)
	s.Arm("crane", now)

	assert.Zero(t, s.CooldownRemaining(10, now))
	s.TouchGuess(10, now)

	assert.Equal(t, 3*time.Second, s.CooldownRemaining(10, now.Add(2*time.Second)))
	assert.Zero(t, s.CooldownRemaining(10, now.Add(BountyGuessCooldown)))
	assert.Zero(t, s.CooldownRemaining(11, now), "cooldowns are per user")
}
