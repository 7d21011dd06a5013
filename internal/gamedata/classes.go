package gamedata

import "github.com/samdwyer/roomwalk/internal/combat"

// ClassDef defines a party member class loaded from JSON.
type ClassDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "warrior")
	Name   string `json:"name"`   // Display name (e.g., "Warrior")
	Symbol string `json:"symbol"` // Single character for rendering
	Health int    `json:"health"` // Starting health
	Damage int    `json:"damage"` // Damage per attack
	Action string `json:"action"` // Action ID; empty means basic attack
}

// Stats returns the class's starting stat block.
func (c *ClassDef) Stats() combat.StatBlock {
	return combat.NewStatBlock(c.Health, c.Damage)
}

// SymbolRune returns the symbol as a rune for rendering.
func (c *ClassDef) SymbolRune() rune {
	if len(c.Symbol) == 0 {
		return '?'
	}
	return rune(c.Symbol[0])
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}

// LoadClasses loads class definitions from the embedded classes.json file.
func LoadClasses() ([]ClassDef, error) {
	file, err := Load[ClassesFile]("classes.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}
