package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreGuess(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		secret string
		want   [5]Verdict
	}{
		{
			name:   "exact match",
			guess:  "crane",
			secret: "crane",
			want:   [5]Verdict{VerdictCorrect, VerdictCorrect, VerdictCorrect, VerdictCorrect, VerdictCorrect},
		},
		{
			name:   "no letters shared",
			guess:  "jumpy",
			secret: "swirl",
			want:   [5]Verdict{VerdictAbsent, VerdictAbsent, VerdictAbsent, VerdictAbsent, VerdictAbsent},
		},
		{
			name:   "double letter guess against single occurrence",
			guess:  "llama",
			secret: "alarm",
			// The exact-position l and a claim their counts first; the
			// leading l finds no l left in the secret and stays absent.
			want: [5]Verdict{VerdictAbsent, VerdictCorrect, VerdictCorrect, VerdictPresent, VerdictPresent},
		},
		{
			name:   "exact match claims the count before present",
			guess:  "geese",
			secret: "budge",
			// Only one e in the secret, at the end. The final e of the
			// guess matches exactly and must win the count over the
			// earlier wrong-position e.
			want: [5]Verdict{VerdictPresent, VerdictAbsent, VerdictAbsent, VerdictAbsent, VerdictCorrect},
		},
		{
			name:   "present letters capped by secret count",
			guess:  "spoon",
			secret: "nosey",
			want:   [5]Verdict{VerdictPresent, VerdictAbsent, VerdictPresent, VerdictAbsent, VerdictPresent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreGuess(tt.guess, tt.secret)
			require.NoError(t, err)
			assert.Equal(t, Pattern(tt.want), got)
		})
	}
}

func TestScoreGuessProperties(t *testing.T) {
	guesses := []string{"llama", "alarm", "geese", "added", "madam", "crane"}
	secrets := []string{"alarm", "llama", "eagle", "dread", "gamma", "crane"}

	for _, guess := range guesses {
		for _, secret := range secrets {
			pattern, err := ScoreGuess(guess, secret)
			require.NoError(t, err)

			// Correct count equals exact position matches.
			exact := 0
			for i := 0; i < WordLength; i++ {
				if guess[i] == secret[i] {
					exact++
					assert.Equal(t, VerdictCorrect, pattern[i], "guess %s secret %s pos %d", guess, secret, i)
				}
			}
			correct := 0
			for _, v := range pattern {
				if v == VerdictCorrect {
					correct++
				}
			}
			assert.Equal(t, exact, correct, "guess %s secret %s", guess, secret)

			// Correct+present per letter never exceeds that letter's
			// count in the secret.
			for c := byte('a'); c <= 'z'; c++ {
				marked := 0
				for i := 0; i < WordLength; i++ {
					if guess[i] == c && pattern[i] != VerdictAbsent {
						marked++
					}
				}
				inSecret := strings.Count(secret, string(c))
				assert.LessOrEqual(t, marked, inSecret, "letter %c guess %s secret %s", c, guess, secret)
			}
		}
	}
}

func TestScoreGuessRejectsBadLengths(t *testing.T) {
	_, err := ScoreGuess("long", "crane")
	assert.Error(t, err)
	_, err = ScoreGuess("crane", "toolong")
	assert.Error(t, err)
}

func TestNormalizeWord(t *testing.T) {
	assert.Equal(t, "crane", NormalizeWord("  CRANE  "))
	assert.Equal(t, "crane", NormalizeWord("C r-a.n!e"))
	assert.Equal(t, "", NormalizeWord("12345"))
}

func TestPatternAllCorrect(t *testing.T) {
	p, err := ScoreGuess("crane", "crane")
	require.NoError(t, err)
	assert.True(t, p.AllCorrect())

	p, err = ScoreGuess("crate", "crane")
	require.NoError(t, err)
	assert.False(t, p.AllCorrect())
}
