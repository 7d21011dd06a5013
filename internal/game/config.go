package game

import (
	"errors"
	"fmt"
)

// Exploration policies a Config can name.
const (
	ExploreUnvisited = "unvisited" // first unvisited neighbor, stop when none
	ExploreNearest   = "nearest"   // backtrack toward the closest unvisited room
	ExploreRandom    = "random"    // wander through any open door
)

// Config holds simulation options.
type Config struct {
	// Seed for random number generation. Used for reproducible map generation
	// and random exploration. A seed of 0 means a random seed will be generated.
	Seed int64

	// MaxTicks bounds Simulate. A stalled party or an endless wander would
	// otherwise never finish.
	MaxTicks int

	// WalkerSpeed is the number of ticks between party moves when the
	// scenario does not set one.
	WalkerSpeed int

	// Explore names the door selection policy.
	Explore string

	// ScenarioPath is a YAML scenario file or the name of a bundled
	// scenario. Empty means the bundled default, unless Generate is set.
	ScenarioPath string

	// Generate builds a random map instead of loading a scenario.
	Generate bool

	// EncounterSize is the largest monster group placed in a generated room.
	EncounterSize int
}

// DefaultConfig returns the options used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		MaxTicks:      200,
		WalkerSpeed:   1,
		Explore:       ExploreNearest,
		EncounterSize: 3,
	}
}

// Validate reports the first invalid option.
func (c Config) Validate() error {
	if c.MaxTicks <= 0 {
		return errors.New("max ticks must be positive")
	}
	if c.WalkerSpeed < 0 {
		return errors.New("walker speed cannot be negative")
	}
	if c.EncounterSize < 0 {
		return errors.New("encounter size cannot be negative")
	}
	switch c.Explore {
	case "", ExploreUnvisited, ExploreNearest, ExploreRandom:
	default:
		return fmt.Errorf("unknown explore policy %q", c.Explore)
	}
	return nil
}
