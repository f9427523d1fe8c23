package entities

import (
	"fmt"
	"strings"
)

// WordLength is the fixed length of every answer and guess.
const WordLength = 5

// Verdict is the per-letter scoring outcome of a guess.
type Verdict int

const (
	// VerdictAbsent means the letter does not occur in the remaining secret letters.
	VerdictAbsent Verdict = iota
	// VerdictPresent means the letter occurs in the secret at a different position.
	VerdictPresent
	// VerdictCorrect means the letter matches the secret at this position.
	VerdictCorrect
)

// String returns a short name for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictPresent:
		return "present"
	default:
		return "absent"
	}
}

// Pattern is the full verdict for one guess, one entry per letter.
type Pattern [WordLength]Verdict

// AllCorrect reports whether every position is correct, i.e. the guess solved it.
func (p Pattern) AllCorrect() bool {
	for _, v := range p {
		if v != VerdictCorrect {
			return false
		}
	}
	return true
}

// NormalizeWord lowercases a raw guess and strips everything but letters.
func NormalizeWord(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ScoreGuess scores guess against secret using the standard two-pass rule.
//
// Pass one marks exact-position matches correct and consumes those letters
// from the secret's letter counts. Pass two walks the remaining positions and
// marks a letter present only while unconsumed count remains. The ordering
// matters for repeated letters: an exact match must claim its letter before
// any wrong-position occurrence can.
//
// Both words must be exactly WordLength lowercase letters.
func ScoreGuess(guess, secret string) (Pattern, error) {
	var p Pattern
	if len(guess) != WordLength || len(secret) != WordLength {
		return p, fmt.Errorf("words must be exactly %d letters, got guess=%q secret=%q", WordLength, guess, secret)
	}

	var counts [26]int
	for i := 0; i < WordLength; i++ {
		if guess[i] == secret[i] {
			p[i] = VerdictCorrect
		} else {
			counts[secret[i]-'a']++
		}
	}
	for i := 0; i < WordLength; i++ {
		if p[i] == VerdictCorrect {
			continue
		}
		idx := int(guess[i] - 'a')
		if idx >= 0 && idx < 26 && counts[idx] > 0 {
			p[i] = VerdictPresent
			counts[idx]--
		}
	}
	return p, nil
}

// Attempt is one scored guess inside a game session.
type Attempt struct {
	Word    string
	Pattern Pattern
}
