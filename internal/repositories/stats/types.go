package stats

// RecordParticipationInput contains parameters for recording a player showing up
type RecordParticipationInput struct {
	PlayerName string
}

// RecordWinInput contains parameters for recording a win
type RecordWinInput struct {
	PlayerName string
}

// RecordQuestionServedInput contains parameters for recording a served question
type RecordQuestionServedInput struct {
	// CorrectAnswer is the question's correct boolean answer
	CorrectAnswer bool
}

// GetMostActiveInput contains parameters for the most-active query
type GetMostActiveInput struct {
}

// GetMostActiveOutput contains the players tied at the maximum games-played count
type GetMostActiveOutput struct {
	// PlayerNames are the tied names, sorted; empty when nobody has played
	PlayerNames []string

	// Games is the maximum games-played count
	Games int
}

// GetMostWinsInput contains parameters for the most-wins query
type GetMostWinsInput struct {
}

// GetMostWinsOutput contains the players tied at the maximum win count
type GetMostWinsOutput struct {
	// PlayerNames are the tied names, sorted; empty when nobody has won
	PlayerNames []string

	// Wins is the maximum win count
	Wins int
}

// GetAnswerDistributionInput contains parameters for the distribution query
type GetAnswerDistributionInput struct {
}

// GetAnswerDistributionOutput contains the true/false answer percentages.
// Each pair sums to 100 when its total is positive; both sides are 0 when
// no questions have been served.
type GetAnswerDistributionOutput struct {
	CumulativeTruePct  float64
	CumulativeFalsePct float64

	CurrentGameTruePct  float64
	CurrentGameFalsePct float64
}

// ResetCurrentGameInput contains parameters for resetting current-game counters
type ResetCurrentGameInput struct {
}
