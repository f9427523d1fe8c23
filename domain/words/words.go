// Package words holds the embedded answer and guess corpora and the
// rules for what counts as a playable guess.
package words

import (
	_ "embed"
	"math/rand"
	"strings"
)

//go:embed answers.txt
var answersRaw string

//go:embed allowed.txt
var allowedRaw string

var (
	answers []string
	// valid is the full playable set: every answer plus the extra
	// allowed guesses.
	valid map[string]struct{}
	// base is the answer set alone, the target for US-variant checks.
	base map[string]struct{}
)

func init() {
	answers = splitLines(answersRaw)
	extra := splitLines(allowedRaw)
	base = make(map[string]struct{}, len(answers))
	valid = make(map[string]struct{}, len(answers)+len(extra))
	for _, w := range answers {
		base[w] = struct{}{}
		valid[w] = struct{}{}
	}
	for _, w := range extra {
		valid[w] = struct{}{}
	}
}

func splitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if w := strings.TrimSpace(line); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// AnswerCount returns the size of the answer corpus.
func AnswerCount() int {
	return len(answers)
}

// RandomAnswer draws a uniform answer using the supplied source.
func RandomAnswer(rng *rand.Rand) string {
	return answers[rng.Intn(len(answers))]
}

// IsAlphabetic reports whether w is non-empty ASCII letters only.
func IsAlphabetic(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// IsValidGuess reports whether a lowercase 5-letter word is playable.
// A word is playable when it appears in the valid-guess set directly, or
// when one of its US-spelling variants appears in the answer set. The
// variant check is acceptance only: the typed word is what gets scored.
func IsValidGuess(w string) bool {
	if len(w) != 5 || !IsAlphabetic(w) {
		return false
	}
	if _, ok := valid[w]; ok {
		return true
	}
	for _, v := range usVariants(w) {
		if _, ok := base[v]; ok {
			return true
		}
	}
	return false
}

// usVariants returns candidate American respellings of a British word.
// Each rule is applied once, independently; candidates that end up a
// different length simply never match the 5-letter answer set.
func usVariants(w string) []string {
	var out []string
	if strings.HasSuffix(w, "re") {
		out = append(out, w[:len(w)-2]+"er")
	}
	if strings.HasSuffix(w, "ise") {
		out = append(out, w[:len(w)-3]+"ize")
	}
	if strings.HasSuffix(w, "yse") {
		out = append(out, w[:len(w)-3]+"yze")
	}
	for _, sub := range [][2]string{{"our", "or"}, {"ae", "e"}, {"oe", "e"}, {"ll", "l"}} {
		if strings.Contains(w, sub[0]) {
			out = append(out, strings.Replace(w, sub[0], sub[1], 1))
		}
	}
	return out
}
