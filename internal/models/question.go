package models

// Question is a single yes/no trivia question
type Question struct {
	// Prompt is the question text sent to players
	Prompt string

	// Answer is the correct boolean answer
	Answer bool
}
