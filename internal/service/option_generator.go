package service

import (
	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
)

const distractorsPerQuestion = entities.OptionsPerQuestion - 1

// OptionGenerator generates multiple choice options for quiz questions.
type OptionGenerator struct {
	rng RandomSource
}

// NewOptionGenerator creates a new option generator.
func NewOptionGenerator(rng RandomSource) *OptionGenerator {
	return &OptionGenerator{rng: rng}
}

// BuildQuestion creates a question for target with 3 distractors taken from
// the other translations of vocabulary.
func (g *OptionGenerator) BuildQuestion(
	target entities.TranslationPair,
	vocabulary []entities.TranslationPair,
) entities.Question {
	distractors := g.generateWrongOptions(target.Translation, vocabulary, distractorsPerQuestion)
	options, correctIndex := g.buildOptionsWithCorrect(target.Translation, distractors)

	return entities.Question{
		Term:               target.Term,
		CorrectTranslation: target.Translation,
		Options:            options,
		CorrectIndex:       correctIndex,
	}
}

// generateWrongOptions shuffles every translation except the correct one and
// takes the first count of them. Duplicate strings in the vocabulary are kept.
func (g *OptionGenerator) generateWrongOptions(correct string, vocabulary []entities.TranslationPair, count int) []string {
	candidates := make([]string, 0, len(vocabulary))
	for _, p := range vocabulary {
		if p.Translation != correct {
			candidates = append(candidates, p.Translation)
		}
	}

	shuffle(g.rng, candidates)

	if len(candidates) > count {
		candidates = candidates[:count]
	}

	return candidates
}

// buildOptionsWithCorrect shuffles the correct answer in with the distractors.
// The correct option is followed by position, not by value, so equal strings
// among the distractors cannot move the index.
func (g *OptionGenerator) buildOptionsWithCorrect(correct string, distractors []string) ([]string, int) {
	type option struct {
		text    string
		correct bool
	}

	opts := make([]option, 0, 1+len(distractors))
	opts = append(opts, option{text: correct, correct: true})
	for _, d := range distractors {
		opts = append(opts, option{text: d})
	}

	shuffle(g.rng, opts)

	options := make([]string, len(opts))
	correctIndex := 0
	for i, o := range opts {
		options[i] = o.text
		if o.correct {
			correctIndex = i
		}
	}

	return options, correctIndex
}
