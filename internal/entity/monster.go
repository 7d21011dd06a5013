package entity

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomwalk/internal/combat"
	"github.com/samdwyer/roomwalk/internal/gamedata"
)

// Monster is a hostile battler built from a monster definition.
type Monster struct {
	*combat.Battler
	Def *gamedata.MonsterDef
}

// NewMonster creates a monster from its definition. number is appended to
// the name when positive, so a pack of goblins reads "Goblin 1", "Goblin 2".
func NewMonster(def *gamedata.MonsterDef, number int) (*Monster, error) {
	action, err := combat.LookupAction(def.Action)
	if err != nil {
		return nil, fmt.Errorf("monster %q: %w", def.ID, err)
	}

	name := def.Name
	if number > 0 {
		name = fmt.Sprintf("%s %d", def.Name, number)
	}

	return &Monster{
		Battler: combat.NewBattlerWithAction(name, def.Stats(), action),
		Def:     def,
	}, nil
}

// Glyph returns the monster's display symbol.
func (m *Monster) Glyph() rune { return m.Def.GlyphRune() }

// Color returns the monster's display color.
func (m *Monster) Color() tcell.Color { return m.Def.TCellColor() }

// Group is the set of monsters waiting in one room.
type Group struct {
	Room     string
	Monsters []*Monster
}

// NewGroup creates the monsters with the given IDs.
// Repeated IDs are numbered in order of appearance.
func NewGroup(room string, ids []string, registry *gamedata.MonsterRegistry) (*Group, error) {
	counts := map[string]int{}
	for _, id := range ids {
		counts[id]++
	}

	seen := map[string]int{}
	group := &Group{Room: room}
	for _, id := range ids {
		def := registry.GetByID(id)
		if def == nil {
			return nil, fmt.Errorf("room %q: unknown monster %q", room, id)
		}
		number := 0
		if counts[id] > 1 {
			seen[id]++
			number = seen[id]
		}
		m, err := NewMonster(def, number)
		if err != nil {
			return nil, err
		}
		group.Monsters = append(group.Monsters, m)
	}
	return group, nil
}

// RandomGroup spawns size monsters picked by spawn weight.
func RandomGroup(room string, size int, registry *gamedata.MonsterRegistry, rng *rand.Rand) (*Group, error) {
	ids := make([]string, 0, size)
	for i := 0; i < size; i++ {
		def := registry.SpawnRandom(rng)
		if def == nil {
			return nil, fmt.Errorf("room %q: no monster can spawn", room)
		}
		ids = append(ids, def.ID)
	}
	return NewGroup(room, ids, registry)
}

// Battlers returns the group's living monsters as battlers.
func (g *Group) Battlers() []*combat.Battler {
	battlers := make([]*combat.Battler, 0, len(g.Monsters))
	for _, m := range g.Monsters {
		if m.IsAlive() {
			battlers = append(battlers, m.Battler)
		}
	}
	return battlers
}

// IsDefeated returns true once every monster is down.
func (g *Group) IsDefeated() bool {
	return len(g.Battlers()) == 0
}
