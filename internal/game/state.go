// Package game wires the campaign and the battle engine together: rooms
// hold monster groups, and a party walking into one fights on the spot.
package game

// State represents the current game state.
type State int

const (
	// StateExplore - the party is moving through the campaign
	StateExplore State = iota
	// StateCombat - a battle is being resolved inside a room's enter event
	StateCombat
	// StateVictory - every monster group has been defeated
	StateVictory
	// StateDefeat - every party member has been defeated
	StateDefeat
	// StateStalled - the party has nowhere left to go but monsters remain
	StateStalled
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateCombat:
		return "combat"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	case StateStalled:
		return "stalled"
	default:
		return "unknown"
	}
}

// IsOver returns true for states the game cannot leave.
func (s State) IsOver() bool {
	return s == StateVictory || s == StateDefeat || s == StateStalled
}
