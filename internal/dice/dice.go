package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/probably-dice/internal/dice Roller

import (
	"math/rand"
	"sync"
	"time"
)

// Roller defines the interface for rolling dice
type Roller interface {
	// Roll rolls a single die with the specified number of sides
	Roll(sides int) int

	// RollSum rolls count dice with the specified number of sides and returns the total
	RollSum(count, sides int) int
}

// RandomRoller provides dice rolling backed by a seeded random source
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandomRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}

// RollSum rolls count dice and adds them up
func (r *RandomRoller) RollSum(count, sides int) int {
	if sides < 1 {
		sides = 6
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for i := 0; i < count; i++ {
		total += r.random.Intn(sides) + 1
	}
	return total
}
