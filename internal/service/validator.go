package service

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ligatures = strings.NewReplacer("œ", "oe", "æ", "ae")

// AnswerValidator maps typed answers to option indexes with fuzzy matching support.
type AnswerValidator struct {
	threshold float64 // Similarity threshold (0.0 - 1.0)
}

// NewAnswerValidator creates a new AnswerValidator.
func NewAnswerValidator() *AnswerValidator {
	return &AnswerValidator{
		threshold: 0.8, // 80% similarity required
	}
}

// Resolve returns the index of the option the input refers to.
// "1".."4" select an option by position; any other input is compared
// with the option texts, exactly first and then by similarity.
func (v *AnswerValidator) Resolve(input string, options []string) (int, bool) {
	input = strings.TrimSpace(input)
	if input == "" || len(options) == 0 {
		return 0, false
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		return 0, false
	}

	user := v.normalize(input)
	for i, opt := range options {
		if v.normalize(opt) == user {
			return i, true
		}
	}

	best, bestScore, ambiguous := -1, 0.0, false
	for i, opt := range options {
		score := v.similarity(user, v.normalize(opt))
		switch {
		case score > bestScore:
			best, bestScore, ambiguous = i, score, false
		case score == bestScore:
			ambiguous = true
		}
	}

	if best < 0 || ambiguous || bestScore < v.threshold {
		return 0, false
	}

	return best, true
}

// normalize lowercases s, folds diacritics and collapses whitespace.
func (v *AnswerValidator) normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = ligatures.Replace(s)
	s = foldDiacritics(s)
	s = strings.ReplaceAll(s, "-", " ")

	return strings.Join(strings.Fields(s), " ")
}

// similarity calculates the similarity between two strings using Levenshtein distance.
func (v *AnswerValidator) similarity(s1, s2 string) float64 {
	distance := levenshteinDistance(s1, s2)
	maxLen := max(len([]rune(s1)), len([]rune(s2)))

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// foldDiacritics strips combining marks: "mère" becomes "mere".
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// levenshteinDistance calculates the Levenshtein distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	rows := len(r1) + 1
	cols := len(r2) + 1

	// Two rows instead of the full matrix.
	prev := make([]int, cols)
	curr := make([]int, cols)

	for j := 0; j < cols; j++ {
		prev[j] = j
	}

	for i := 1; i < rows; i++ {
		curr[0] = i

		for j := 1; j < cols; j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}

			curr[j] = min(
				curr[j-1]+1,    // Insertion
				prev[j]+1,      // Deletion
				prev[j-1]+cost, // Substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[cols-1]
}
