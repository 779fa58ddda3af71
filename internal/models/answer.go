package models

// Answer is a player's normalized response to a question
type Answer string

const (
	// AnswerYes indicates an affirmative answer. The value mirrors the wire
	// token so normalizing an already-normalized answer is a no-op.
	AnswerYes Answer = "1"

	// AnswerNo indicates a negative answer
	AnswerNo Answer = "0"

	// AnswerInvalid indicates a token that maps to neither yes nor no
	AnswerInvalid Answer = "invalid"

	// AnswerNone indicates no token arrived before the deadline
	AnswerNone Answer = "none"
)

// AnswerFor returns the normalized answer matching a question's correct value
func AnswerFor(correct bool) Answer {
	if correct {
		return AnswerYes
	}
	return AnswerNo
}
