package stats

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrNilInput is returned when a required input struct is nil
var ErrNilInput = errors.New("input cannot be nil")

// memoryRepository implements the Repository interface in process memory.
// The ledger lives for the lifetime of the server; persistence across
// restarts is deliberately out of scope.
type memoryRepository struct {
	mu sync.RWMutex

	gamesPlayed map[string]int
	wins        map[string]int

	cumulativeTrue  int
	cumulativeFalse int

	currentGameTrue  int
	currentGameFalse int
}

// NewMemory creates a new in-memory stats repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		gamesPlayed: make(map[string]int),
		wins:        make(map[string]int),
	}
}

// RecordParticipation increments a player's games-played count
func (r *memoryRepository) RecordParticipation(ctx context.Context, input *RecordParticipationInput) error {
	if input == nil {
		return ErrNilInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.gamesPlayed[input.PlayerName]++
	return nil
}

// RecordWin increments a player's win count
func (r *memoryRepository) RecordWin(ctx context.Context, input *RecordWinInput) error {
	if input == nil {
		return ErrNilInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.wins[input.PlayerName]++
	return nil
}

// RecordQuestionServed increments the answer distribution counters
func (r *memoryRepository) RecordQuestionServed(ctx context.Context, input *RecordQuestionServedInput) error {
	if input == nil {
		return ErrNilInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if input.CorrectAnswer {
		r.cumulativeTrue++
		r.currentGameTrue++
	} else {
		r.cumulativeFalse++
		r.currentGameFalse++
	}
	return nil
}

// GetMostActive retrieves the players tied at the maximum games-played count
func (r *memoryRepository) GetMostActive(ctx context.Context, input *GetMostActiveInput) (*GetMostActiveOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	names, max := tiedAtMax(r.gamesPlayed)
	return &GetMostActiveOutput{
		PlayerNames: names,
		Games:       max,
	}, nil
}

// GetMostWins retrieves the players tied at the maximum win count
func (r *memoryRepository) GetMostWins(ctx context.Context, input *GetMostWinsInput) (*GetMostWinsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	names, max := tiedAtMax(r.wins)
	return &GetMostWinsOutput{
		PlayerNames: names,
		Wins:        max,
	}, nil
}

// GetAnswerDistribution retrieves the true/false answer percentages
func (r *memoryRepository) GetAnswerDistribution(ctx context.Context, input *GetAnswerDistributionInput) (*GetAnswerDistributionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := &GetAnswerDistributionOutput{}
	out.CumulativeTruePct, out.CumulativeFalsePct = percentages(r.cumulativeTrue, r.cumulativeFalse)
	out.CurrentGameTruePct, out.CurrentGameFalsePct = percentages(r.currentGameTrue, r.currentGameFalse)
	return out, nil
}

// ResetCurrentGame zeroes the current-game counters
func (r *memoryRepository) ResetCurrentGame(ctx context.Context, input *ResetCurrentGameInput) error {
	if input == nil {
		return ErrNilInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.currentGameTrue = 0
	r.currentGameFalse = 0
	return nil
}

// tiedAtMax returns the sorted keys holding the maximum value, ties included
func tiedAtMax(counts map[string]int) ([]string, int) {
	max := 0
	for _, count := range counts {
		if count > max {
			max = count
		}
	}
	if max == 0 {
		return nil, 0
	}

	var names []string
	for name, count := range counts {
		if count == max {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, max
}

// percentages converts a true/false count pair into percentages, with 0/0
// on an empty total rather than dividing by zero
func percentages(trueCount, falseCount int) (float64, float64) {
	total := trueCount + falseCount
	if total == 0 {
		return 0, 0
	}
	return float64(trueCount) / float64(total) * 100, float64(falseCount) / float64(total) * 100
}
