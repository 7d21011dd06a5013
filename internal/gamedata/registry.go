package gamedata

import (
	"errors"
	"math/rand"
)

// MonsterRegistry holds monster definitions and picks spawns by weight.
type MonsterRegistry struct {
	monsters    []MonsterDef
	totalWeight int
}

// NewMonsterRegistry creates a registry from loaded monster definitions.
func NewMonsterRegistry(monsters []MonsterDef) *MonsterRegistry {
	totalWeight := 0
	for _, m := range monsters {
		totalWeight += m.SpawnWeight
	}
	return &MonsterRegistry{
		monsters:    monsters,
		totalWeight: totalWeight,
	}
}

// LoadMonsterRegistry builds a registry from the embedded monsters.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	return NewMonsterRegistry(monsters), nil
}

// MustLoadMonsterRegistry loads a registry, panicking on error.
func MustLoadMonsterRegistry() *MonsterRegistry {
	registry, err := LoadMonsterRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom picks a monster definition with probability proportional to
// its spawn weight. It returns nil if no monster can spawn.
func (r *MonsterRegistry) SpawnRandom(rng *rand.Rand) *MonsterDef {
	if r.totalWeight <= 0 || len(r.monsters) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)
	cumulative := 0
	for i := range r.monsters {
		cumulative += r.monsters[i].SpawnWeight
		if roll < cumulative {
			return &r.monsters[i]
		}
	}
	return &r.monsters[len(r.monsters)-1]
}

// GetByID returns the monster definition with the given ID, or nil.
func (r *MonsterRegistry) GetByID(id string) *MonsterDef {
	for i := range r.monsters {
		if r.monsters[i].ID == id {
			return &r.monsters[i]
		}
	}
	return nil
}

// All returns all monster definitions.
func (r *MonsterRegistry) All() []MonsterDef {
	return r.monsters
}

// Count returns the number of monster types.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}

// ClassRegistry holds party class definitions keyed by ID.
type ClassRegistry struct {
	classes map[string]*ClassDef
	all     []ClassDef
}

// NewClassRegistry creates a registry from loaded class definitions.
func NewClassRegistry(classes []ClassDef) *ClassRegistry {
	registry := &ClassRegistry{
		classes: make(map[string]*ClassDef, len(classes)),
		all:     classes,
	}
	for i := range classes {
		registry.classes[classes[i].ID] = &classes[i]
	}
	return registry
}

// LoadClassRegistry builds a registry from the embedded classes.json.
func LoadClassRegistry() (*ClassRegistry, error) {
	classes, err := LoadClasses()
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, errors.New("no classes loaded from classes.json")
	}
	return NewClassRegistry(classes), nil
}

// MustLoadClassRegistry loads a registry, panicking on error.
func MustLoadClassRegistry() *ClassRegistry {
	registry, err := LoadClassRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the class definition with the given ID, or nil.
func (r *ClassRegistry) GetByID(id string) *ClassDef {
	return r.classes[id]
}

// All returns all class definitions in file order.
func (r *ClassRegistry) All() []ClassDef {
	return r.all
}

// Count returns the number of classes.
func (r *ClassRegistry) Count() int {
	return len(r.all)
}
