// Package world generates campaign maps: a grid layout split into areas,
// and the room graph those areas become.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall is solid rock.
	TileWall Tile = '#'
	// TileFloor is the inside of a room.
	TileFloor Tile = '.'
	// TileCorridor joins two rooms.
	TileCorridor Tile = ','
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor || t == TileCorridor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
