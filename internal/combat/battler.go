package combat

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNoTarget is returned when a battler is asked to attack an empty enemy roster.
var ErrNoTarget = errors.New("no target to attack")

// Battler is a named combatant.
// Two battlers with the same name and stats are still different battlers;
// ID is what tells them apart.
type Battler struct {
	ID     uuid.UUID
	Name   string
	Stats  StatBlock
	Action Action
}

// NewBattler creates a battler that uses the basic attack.
func NewBattler(name string, health, damage int) *Battler {
	return NewBattlerWithAction(name, NewStatBlock(health, damage), BasicAttack{})
}

// NewBattlerWithAction creates a battler with explicit stats and action.
// A nil action falls back to the basic attack.
func NewBattlerWithAction(name string, stats StatBlock, action Action) *Battler {
	if action == nil {
		action = BasicAttack{}
	}
	return &Battler{
		ID:     uuid.New(),
		Name:   name,
		Stats:  stats,
		Action: action,
	}
}

// IsAlive returns true if the battler has health remaining.
func (b *Battler) IsAlive() bool { return !b.Stats.IsDefeated() }

// Attack uses the battler's action on the first enemy.
// allies is accepted for actions that need it; the basic attack ignores it.
func (b *Battler) Attack(allies, enemies []*Battler) (*BattleEvent, error) {
	if len(enemies) == 0 {
		return nil, ErrNoTarget
	}
	target := enemies[0]

	before := target.Stats.Clone()
	after := b.Action.Perform(b.Stats, before)
	target.Stats = after.Clone()

	return &BattleEvent{
		Type:    EventAttack,
		Action:  b.Action,
		Battler: b,
		Target:  target,
		Before:  before,
		After:   after,
	}, nil
}

// String returns the battler's name.
func (b *Battler) String() string { return b.Name }
