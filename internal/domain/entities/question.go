package entities

// OptionsPerQuestion is the number of answer options shown for every question.
const OptionsPerQuestion = 4

// Question is a single quiz round built at session start.
type Question struct {
	Term               string   `json:"term"`
	CorrectTranslation string   `json:"correct_translation"`
	Options            []string `json:"options"` // multiple choice, one of them is CorrectTranslation
	CorrectIndex       int      `json:"correct_index"`
}

// IsCorrect reports whether selectedIndex points at the correct option.
func (q Question) IsCorrect(selectedIndex int) bool {
	return selectedIndex == q.CorrectIndex
}

// AnswerOutcome is the result of answering the current question.
type AnswerOutcome struct {
	Correct            bool   `json:"correct"`
	SelectedIndex      int    `json:"selected_index"`
	CorrectIndex       int    `json:"correct_index"`
	CorrectTranslation string `json:"correct_translation"`
}
