// Package entity builds the combatants that take part in encounters: party
// members from class definitions and monsters from monster definitions.
package entity

import (
	"fmt"

	"github.com/samdwyer/roomwalk/internal/combat"
	"github.com/samdwyer/roomwalk/internal/gamedata"
)

// Member is a party member: a battler plus the class it was built from.
type Member struct {
	*combat.Battler
	Class  *gamedata.ClassDef // nil for members built from explicit stats
	Symbol rune
}

// NewMember creates a member from a class. Non-zero health or damage in
// spec override the class values.
func NewMember(spec gamedata.MemberSpec, class *gamedata.ClassDef) (*Member, error) {
	stats := combat.NewStatBlock(spec.Health, spec.Damage)
	actionID := ""
	symbol := '@'

	if class != nil {
		base := class.Stats()
		if stats.Health == 0 {
			stats.Health = base.Health
		}
		if stats.Damage == 0 {
			stats.Damage = base.Damage
		}
		actionID = class.Action
		symbol = class.SymbolRune()
	} else if spec.Class != "" {
		return nil, fmt.Errorf("member %q: unknown class %q", spec.Name, spec.Class)
	}

	if stats.Health <= 0 {
		return nil, fmt.Errorf("member %q: health must be positive", spec.Name)
	}

	action, err := combat.LookupAction(actionID)
	if err != nil {
		return nil, fmt.Errorf("member %q: %w", spec.Name, err)
	}

	return &Member{
		Battler: combat.NewBattlerWithAction(spec.Name, stats, action),
		Class:   class,
		Symbol:  symbol,
	}, nil
}

// ClassName returns the member's class name, or "Adventurer" without one.
func (m *Member) ClassName() string {
	if m.Class == nil {
		return "Adventurer"
	}
	return m.Class.Name
}
