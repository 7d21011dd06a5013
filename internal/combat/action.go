package combat

import "fmt"

// ActionBasicAttack is the ID of the built-in basic attack.
const ActionBasicAttack = "basic_attack"

// Action computes the effect of one combat move.
// Perform must not mutate its inputs; it returns the target's new stats.
type Action interface {
	ID() string
	Name() string
	Perform(user, target StatBlock) StatBlock
}

// BasicAttack subtracts the user's damage from the target's health.
// Damage is unclamped, so health can go negative.
type BasicAttack struct{}

// ID returns the action identifier used in data files.
func (BasicAttack) ID() string { return ActionBasicAttack }

// Name returns the display name.
func (BasicAttack) Name() string { return "Attack" }

// Perform returns the target's stats after being hit by user.
func (BasicAttack) Perform(user, target StatBlock) StatBlock {
	result := target.Clone()
	result.Health = target.Health - user.Damage
	return result
}

// actions maps data-file identifiers to built-in actions.
var actions = map[string]Action{
	ActionBasicAttack: BasicAttack{},
}

// LookupAction returns the built-in action with the given ID.
// An empty ID resolves to the basic attack.
func LookupAction(id string) (Action, error) {
	if id == "" {
		return BasicAttack{}, nil
	}
	action, ok := actions[id]
	if !ok {
		return nil, fmt.Errorf("unknown action %q", id)
	}
	return action, nil
}

// Ensure BasicAttack implements Action
var _ Action = BasicAttack{}
