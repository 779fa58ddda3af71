package questions

import (
	"math/rand"
	"time"

	"github.com/quizwire/quizwire/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/quizwire/quizwire/internal/questions Picker

// Picker selects the next question to serve
type Picker interface {
	// Pick returns a question drawn uniformly at random, with replacement
	Pick() models.Question
}

// Config for the random picker
type Config struct {
	// Questions to draw from; defaults to DefaultBank
	Questions []models.Question

	// Optional seed for testing
	Seed int64
}

// randomPicker implements Picker with a seedable uniform draw
type randomPicker struct {
	questions []models.Question
	random    *rand.Rand
}

// New creates a new random question picker
func New(cfg *Config) *randomPicker {
	var seed int64
	var bank []models.Question

	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	if cfg != nil && len(cfg.Questions) > 0 {
		bank = cfg.Questions
	} else {
		bank = DefaultBank
	}

	source := rand.NewSource(seed)

	return &randomPicker{
		questions: bank,
		random:    rand.New(source),
	}
}

// Pick returns a question drawn uniformly at random, with replacement
func (p *randomPicker) Pick() models.Question {
	return p.questions[p.random.Intn(len(p.questions))]
}
