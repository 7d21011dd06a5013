// Package combat provides the turn-based battle engine for roomwalk.
package combat

// StatBlock is the pair of numbers a battler fights with.
// It is a value type: copies never share state.
// Health is not clamped; zero or below means defeated.
type StatBlock struct {
	Health int `json:"health" yaml:"health"`
	Damage int `json:"damage" yaml:"damage"`
}

// NewStatBlock creates a stat block with the given health and damage.
func NewStatBlock(health, damage int) StatBlock {
	return StatBlock{Health: health, Damage: damage}
}

// Clone returns an independent copy of the stat block.
func (s StatBlock) Clone() StatBlock {
	return StatBlock{Health: s.Health, Damage: s.Damage}
}

// Add returns the field-wise sum of two stat blocks.
func (s StatBlock) Add(o StatBlock) StatBlock {
	return StatBlock{Health: s.Health + o.Health, Damage: s.Damage + o.Damage}
}

// Sub returns the field-wise difference of two stat blocks.
func (s StatBlock) Sub(o StatBlock) StatBlock {
	return StatBlock{Health: s.Health - o.Health, Damage: s.Damage - o.Damage}
}

// IsDefeated returns true if health has dropped to zero or below.
func (s StatBlock) IsDefeated() bool {
	return s.Health <= 0
}
