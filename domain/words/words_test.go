package words

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorporaLoaded(t *testing.T) {
	require.Greater(t, AnswerCount(), 500)
}

func TestRandomAnswerIsValid(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		w := RandomAnswer(rng)
		assert.Len(t, w, 5)
		assert.True(t, IsValidGuess(w), "answer %q should be a valid guess", w)
	}
}

func TestIsValidGuess(t *testing.T) {
	tests := []struct {
		name  string
		word  string
		valid bool
	}{
		{name: "answer word", word: "crane", valid: true},
		{name: "allowed but not an answer", word: "llama", valid: true},
		{name: "not a word", word: "zzzzz", valid: false},
		{name: "too short", word: "cat", valid: false},
		{name: "too long", word: "cranes", valid: false},
		{name: "non alphabetic", word: "cr4ne", valid: false},
		{name: "empty", word: "", valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidGuess(tt.word))
		})
	}
}

func TestUSVariantAcceptance(t *testing.T) {
	// British spellings whose American forms sit in the answer set are
	// playable even though they appear in no list themselves.
	tests := []struct {
		name string
		word string
	}{
		{name: "re suffix", word: "fibre"},  // fiber
		{name: "re suffix two", word: "metre"}, // meter
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, IsValidGuess(tt.word), "%q should be accepted via its US variant", tt.word)
		})
	}

	// The variant rule accepts, it never rewrites: a British word with
	// no American form in the base set stays invalid.
	assert.False(t, IsValidGuess("ioniz"))
}

func TestUSVariantGeneration(t *testing.T) {
	assert.Contains(t, usVariants("fibre"), "fiber")
	assert.Contains(t, usVariants("colour"), "color")
	assert.Contains(t, usVariants("anise"), "anize")
	assert.Contains(t, usVariants("woollen"), "woolen")
	assert.Empty(t, usVariants("crane"))
}
