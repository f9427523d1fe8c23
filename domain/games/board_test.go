package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardSolvedOutcome(t *testing.T) {
	b := NewBoard("crane", 5)

	_, outcome, err := b.Play("slate")
	require.NoError(t, err)
	assert.Equal(t, OutcomeOngoing, outcome)

	attempt, outcome, err := b.Play("crane")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSolved, outcome)
	assert.True(t, attempt.Pattern.AllCorrect())
	assert.True(t, b.Done())
	assert.Equal(t, 2, b.AttemptCount())
}

func TestBoardExhaustedOutcome(t *testing.T) {
	b := NewBoard("crane", 3)
	for i, w := range []string{"slate", "brick", "pound"} {
		_, outcome, err := b.Play(w)
		require.NoError(t, err)
		if i < 2 {
			assert.Equal(t, OutcomeOngoing, outcome)
		} else {
			assert.Equal(t, OutcomeExhausted, outcome)
		}
	}
	assert.True(t, b.Done())

	_, _, err := b.Play("crane")
	assert.Error(t, err, "finished boards accept no more guesses")
}

func TestBoardUnboundedAttempts(t *testing.T) {
	b := NewBoard("crane", 0)
	for i := 0; i < 20; i++ {
		_, outcome, err := b.Play("slate")
		require.NoError(t, err)
		assert.Equal(t, OutcomeOngoing, outcome)
	}
	assert.False(t, b.Done())
}
