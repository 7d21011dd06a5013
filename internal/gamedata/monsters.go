package gamedata

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomwalk/internal/combat"
)

// MonsterDef defines a monster type loaded from JSON.
type MonsterDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`        // Display name
	Glyph       string `json:"glyph"`       // Single character for rendering
	Color       string `json:"color"`       // Hex color code
	Health      int    `json:"health"`      // Starting health
	Damage      int    `json:"damage"`      // Damage per attack
	Action      string `json:"action"`      // Action ID; empty means basic attack
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency
}

// Stats returns the monster's starting stat block.
func (m *MonsterDef) Stats() combat.StatBlock {
	return combat.NewStatBlock(m.Health, m.Damage)
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MonsterDef) GlyphRune() rune {
	if len(m.Glyph) == 0 {
		return '?'
	}
	return rune(m.Glyph[0])
}

// TCellColor returns the color as a tcell.Color, white if it does not parse.
func (m *MonsterDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(m.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster definitions from the embedded monsters.json file.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	return file.Monsters, nil
}
