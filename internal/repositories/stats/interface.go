package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/quizwire/quizwire/internal/repositories/stats Repository

import (
	"context"
)

// Repository defines the interface for the stats ledger. Counters outlive
// individual games; only the current-game counters are ever reset.
type Repository interface {
	// RecordParticipation increments a player's games-played count
	RecordParticipation(ctx context.Context, input *RecordParticipationInput) error

	// RecordWin increments a player's win count
	RecordWin(ctx context.Context, input *RecordWinInput) error

	// RecordQuestionServed increments the cumulative and current-game
	// counters for the question's correct answer
	RecordQuestionServed(ctx context.Context, input *RecordQuestionServedInput) error

	// GetMostActive retrieves the players tied at the maximum games-played count
	GetMostActive(ctx context.Context, input *GetMostActiveInput) (*GetMostActiveOutput, error)

	// GetMostWins retrieves the players tied at the maximum win count
	GetMostWins(ctx context.Context, input *GetMostWinsInput) (*GetMostWinsOutput, error)

	// GetAnswerDistribution retrieves the true/false answer percentages
	GetAnswerDistribution(ctx context.Context, input *GetAnswerDistributionInput) (*GetAnswerDistributionOutput, error)

	// ResetCurrentGame zeroes the current-game counters
	ResetCurrentGame(ctx context.Context, input *ResetCurrentGameInput) error
}
