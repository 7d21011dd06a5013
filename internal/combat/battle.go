package combat

import (
	"errors"
	"fmt"
	"iter"

	"github.com/google/uuid"
)

// Team indexes.
const (
	TeamOne = 0
	TeamTwo = 1
)

var (
	// ErrBattleDone is returned by Next once a team has been eliminated.
	ErrBattleDone = errors.New("battle already done")
	// ErrNoEnemies matches any NoEnemiesError through errors.Is.
	ErrNoEnemies = errors.New("no valid enemies")
)

// NoEnemiesError is returned when the scheduled actor has nobody left to fight.
// Winner is the actor's team.
type NoEnemiesError struct {
	Winner int
}

func (e *NoEnemiesError) Error() string {
	return fmt.Sprintf("no valid enemies: team %d wins", e.Winner)
}

// Is reports whether target is ErrNoEnemies.
func (e *NoEnemiesError) Is(target error) bool {
	return target == ErrNoEnemies
}

// Turn is one entry in the turn order.
type Turn struct {
	Team    int
	Battler *Battler
}

// Battle schedules turns between two teams until one of them is empty.
//
// Team one acts first, then team two, each in roster order. After that the
// turn order is a FIFO queue: an actor that is still alive after its turn
// goes back to the tail, a battler that drops to zero health is removed
// from both its roster and the queue.
type Battle struct {
	teams       [2][]*Battler
	turnOrder   []Turn
	currentTurn int
}

// NewBattle creates a battle between two rosters.
// The slices are copied; the battlers are shared.
func NewBattle(team1, team2 []*Battler) *Battle {
	b := &Battle{
		teams: [2][]*Battler{
			append([]*Battler(nil), team1...),
			append([]*Battler(nil), team2...),
		},
	}
	for team, roster := range b.teams {
		for _, battler := range roster {
			b.turnOrder = append(b.turnOrder, Turn{Team: team, Battler: battler})
		}
	}
	return b
}

// IsDone returns true if either team has no battlers left.
func (b *Battle) IsDone() bool {
	return len(b.teams[TeamOne]) == 0 || len(b.teams[TeamTwo]) == 0
}

// Winner returns the team that still has battlers.
// ok is false while the battle is running or if both teams are empty.
func (b *Battle) Winner() (team int, ok bool) {
	one, two := len(b.teams[TeamOne]) > 0, len(b.teams[TeamTwo]) > 0
	switch {
	case one && !two:
		return TeamOne, true
	case two && !one:
		return TeamTwo, true
	default:
		return 0, false
	}
}

// Next resolves a single turn and returns the new turn count and what happened.
func (b *Battle) Next() (int, *BattleEvent, error) {
	if b.IsDone() {
		return b.currentTurn, nil, ErrBattleDone
	}
	b.currentTurn++

	turn := b.turnOrder[0]
	b.turnOrder = b.turnOrder[1:]

	allies := b.teams[turn.Team]
	enemyTeam := opponent(turn.Team)
	enemies := b.teams[enemyTeam]
	if len(enemies) == 0 {
		return b.currentTurn, nil, &NoEnemiesError{Winner: turn.Team}
	}

	event, err := turn.Battler.Attack(allies, enemies)
	if err != nil {
		return b.currentTurn, nil, err
	}

	if turn.Battler.IsAlive() {
		b.turnOrder = append(b.turnOrder, turn)
	}

	if !event.Target.IsAlive() {
		b.remove(event.Target.ID)
	}

	return b.currentTurn, event, nil
}

// Events returns an iterator that drives the battle to completion.
// Iteration stops early on any error other than the battle finishing.
func (b *Battle) Events() iter.Seq2[int, *BattleEvent] {
	return func(yield func(int, *BattleEvent) bool) {
		for !b.IsDone() {
			turn, event, err := b.Next()
			if err != nil {
				return
			}
			if !yield(turn, event) {
				return
			}
		}
	}
}

// Resolve runs the battle until it is done and returns every event in order.
func (b *Battle) Resolve() ([]*BattleEvent, error) {
	var events []*BattleEvent
	for !b.IsDone() {
		_, event, err := b.Next()
		if err != nil {
			return events, err
		}
		events = append(events, event)
	}
	return events, nil
}

// CurrentTurn returns how many times Next has advanced the battle.
func (b *Battle) CurrentTurn() int {
	return b.currentTurn
}

// Team returns a copy of the given team's living roster.
func (b *Battle) Team(team int) []*Battler {
	if team != TeamOne && team != TeamTwo {
		return nil
	}
	return append([]*Battler(nil), b.teams[team]...)
}

// TurnOrder returns a copy of the pending turn queue.
func (b *Battle) TurnOrder() []Turn {
	return append([]Turn(nil), b.turnOrder...)
}

// remove drops a defeated battler from its roster and the turn queue.
func (b *Battle) remove(id uuid.UUID) {
	for team := range b.teams {
		roster := b.teams[team][:0]
		for _, battler := range b.teams[team] {
			if battler.ID != id {
				roster = append(roster, battler)
			}
		}
		b.teams[team] = roster
	}

	order := b.turnOrder[:0]
	for _, turn := range b.turnOrder {
		if turn.Battler.ID != id {
			order = append(order, turn)
		}
	}
	b.turnOrder = order
}

func opponent(team int) int {
	return (team + 1) % 2
}
