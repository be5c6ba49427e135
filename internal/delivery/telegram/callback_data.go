package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionQuiz = "quiz"
)

// Quiz sub-actions.
const (
	quizStart  = "start"
	quizAnswer = "answer"
	quizNext   = "next"
	quizNoop   = "noop"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// intParam returns the i-th parameter as an integer.
func (cd callbackData) intParam(i int) (int, bool) {
	if i < 0 || i >= len(cd.Params) {
		return 0, false
	}
	n, err := strconv.Atoi(cd.Params[i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// buildQuizStartCallback builds callback data for starting a quiz session.
func buildQuizStartCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizStart},
	}.encode()
}

// sessionTagLen is how much of the session ID goes into callback data,
// enough to tell a replaced quiz apart within the 64 byte limit.
const sessionTagLen = 8

// sessionTag returns the short form of a session ID used in callback data.
func sessionTag(sessionID string) string {
	if len(sessionID) > sessionTagLen {
		return sessionID[:sessionTagLen]
	}
	return sessionID
}

// buildQuizAnswerCallback builds callback data for answering question number
// round of the session tagged tag.
func buildQuizAnswerCallback(tag string, round, answerIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{
			quizAnswer,
			tag,
			strconv.Itoa(round),
			strconv.Itoa(answerIndex),
		},
	}.encode()
}

// buildQuizNextCallback builds callback data for leaving question number round
// of the session tagged tag.
func buildQuizNextCallback(tag string, round int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizNext, tag, strconv.Itoa(round)},
	}.encode()
}

// buildQuizNoopCallback is attached to buttons of an already answered question.
func buildQuizNoopCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizNoop},
	}.encode()
}
