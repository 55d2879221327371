package dungeon

// Tile is one cell of the level grid
type Tile uint8

// Tile kinds. Doors keep their open/closed substate from generation;
// the grid never changes after a level is generated.
const (
	TileWall Tile = iota
	TileFloor
	TileDoorClosed
	TileDoorOpen
	TileStairs
)

// IsWalkable reports whether entities may stand on the tile
func (t Tile) IsWalkable() bool {
	switch t {
	case TileFloor, TileDoorClosed, TileDoorOpen, TileStairs:
		return true
	default:
		return false
	}
}

// IsDoor reports whether the tile is a door in either state
func (t Tile) IsDoor() bool {
	return t == TileDoorClosed || t == TileDoorOpen
}

// String returns a readable tile name
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileDoorClosed:
		return "door_closed"
	case TileDoorOpen:
		return "door_open"
	case TileStairs:
		return "stairs"
	default:
		return "unknown"
	}
}

// Rune returns the conventional map glyph for the tile
func (t Tile) Rune() rune {
	switch t {
	case TileWall:
		return '#'
	case TileFloor:
		return '.'
	case TileDoorClosed:
		return '+'
	case TileDoorOpen:
		return '/'
	case TileStairs:
		return '>'
	default:
		return '?'
	}
}
