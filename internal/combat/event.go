package combat

// EventType identifies what kind of thing happened during a turn.
type EventType int

const (
	// EventAttack - an actor used its action on a target
	EventAttack EventType = iota
)

// String returns a human-readable event type name.
func (t EventType) String() string {
	switch t {
	case EventAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// BattleEvent records one resolved action.
// Before and After are snapshots taken at resolution time; later changes
// to the target do not show up here.
type BattleEvent struct {
	Type    EventType
	Action  Action
	Battler *Battler // Actor
	Target  *Battler
	Before  StatBlock
	After   StatBlock
}

// Defeated returns true if the action left the target at zero health or below.
func (e *BattleEvent) Defeated() bool {
	return e.After.IsDefeated()
}

// Delta returns how much the target's stats changed (before minus after).
func (e *BattleEvent) Delta() StatBlock {
	return e.Before.Sub(e.After)
}
