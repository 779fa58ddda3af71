package client

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

const maxBotNumber = 9999

// NameRegistry hands out unique bot names of the form "botNNNN" and
// recycles a name once its bot releases it. Safe for concurrent use.
type NameRegistry struct {
	mu     sync.Mutex
	random *rand.Rand
	inUse  map[int]struct{}
}

// RegistryConfig for the bot name registry
type RegistryConfig struct {
	// Optional seed for testing
	Seed int64
}

// NewRegistry creates a new bot name registry
func NewRegistry(cfg *RegistryConfig) *NameRegistry {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &NameRegistry{
		random: rand.New(rand.NewSource(seed)),
		inUse:  make(map[int]struct{}),
	}
}

// Acquire reserves a bot name no other live bot holds
func (r *NameRegistry) Acquire() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		n := r.random.Intn(maxBotNumber) + 1
		if _, taken := r.inUse[n]; !taken {
			r.inUse[n] = struct{}{}
			return fmt.Sprintf("bot%d", n)
		}
	}
}

// Release returns a name to the pool. Names that did not come from
// Acquire are ignored.
func (r *NameRegistry) Release(name string) {
	n, err := strconv.Atoi(strings.TrimPrefix(name, "bot"))
	if err != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inUse, n)
}
