package service

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
)

func TestShuffle_IsPermutation(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	shuffle(rand.New(rand.NewSource(1)), items)

	sorted := append([]int(nil), items...)
	sort.Ints(sorted)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, sorted)
}

func TestShuffle_FisherYatesDraws(t *testing.T) {
	var bounds []int
	rng := funcRand(func(n int) int {
		bounds = append(bounds, n)
		return 0
	})

	items := []string{"w", "x", "y", "z"}
	shuffle(rng, items)

	// One draw per position from the end, each bounded by i+1.
	assert.Equal(t, []int{4, 3, 2}, bounds)
	assert.Equal(t, []string{"x", "y", "z", "w"}, items)
}

func TestOptionGenerator_DistractorsComeFromOtherPairs(t *testing.T) {
	gen := NewOptionGenerator(rand.New(rand.NewSource(99)))
	vocabulary := testPairs()

	for i := 0; i < 50; i++ {
		target := vocabulary[i%len(vocabulary)]
		q := gen.BuildQuestion(target, vocabulary)

		require.Len(t, q.Options, entities.OptionsPerQuestion)
		assert.Equal(t, target.Term, q.Term)
		assert.Equal(t, target.Translation, q.Options[q.CorrectIndex])

		count := 0
		for _, opt := range q.Options {
			if opt == target.Translation {
				count++
			}
		}
		assert.Equal(t, 1, count, "correct translation must appear once")
	}
}

func TestQuestionSelector_SamplesWithReplacement(t *testing.T) {
	draws := []int{2, 2, 0}
	next := 0
	rng := funcRand(func(n int) int {
		v := draws[next%len(draws)]
		next++
		return v
	})

	got := NewQuestionSelector(rng).SelectPairs(testPairs(), 3)

	assert.Equal(t, []entities.TranslationPair{
		{Term: "c", Translation: "C"},
		{Term: "c", Translation: "C"},
		{Term: "a", Translation: "A"},
	}, got)
}

func TestQuestionSelector_Empty(t *testing.T) {
	sel := NewQuestionSelector(lastRand)
	assert.Nil(t, sel.SelectPairs(nil, 5))
	assert.Nil(t, sel.SelectPairs(testPairs(), 0))
}
