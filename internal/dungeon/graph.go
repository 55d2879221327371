package dungeon

import (
	"sort"
	"strings"

	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/errors"
)

// Graph is a generated level: the tile grid, its rooms and corridors,
// and the room-adjacency structure derived from corridors. A Graph is
// immutable after Generate returns; every method here is a read.
type Graph struct {
	width    int
	height   int
	tiles    [][]Tile // indexed [y][x]
	rooms    []Room
	corridor []Corridor
	adj      map[int][]int
	entrance int
	exit     entities.Position
}

// Width returns the grid width in tiles
func (g *Graph) Width() int {
	return g.width
}

// Height returns the grid height in tiles
func (g *Graph) Height() int {
	return g.height
}

// InBounds reports whether the position lies on the grid
func (g *Graph) InBounds(p entities.Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// TileAt returns the tile at the position
func (g *Graph) TileAt(p entities.Position) (Tile, error) {
	if !g.InBounds(p) {
		return TileWall, errors.OutOfBoundsf("position %s outside %dx%d grid", p, g.width, g.height).
			WithMeta("x", p.X).
			WithMeta("y", p.Y)
	}
	return g.tiles[p.Y][p.X], nil
}

// IsWalkable reports whether an entity may stand on the position.
// Out-of-bounds positions are not walkable.
func (g *Graph) IsWalkable(p entities.Position) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.tiles[p.Y][p.X].IsWalkable()
}

// RoomCount returns the number of rooms
func (g *Graph) RoomCount() int {
	return len(g.rooms)
}

// Rooms returns copies of all rooms in index order
func (g *Graph) Rooms() []Room {
	out := make([]Room, len(g.rooms))
	for i, r := range g.rooms {
		out[i] = r.clone()
	}
	return out
}

// Room returns a copy of the room at index
func (g *Graph) Room(index int) (Room, error) {
	if index < 0 || index >= len(g.rooms) {
		return Room{}, errors.InvalidArgumentf("room index %d out of range [0,%d)", index, len(g.rooms))
	}
	return g.rooms[index].clone(), nil
}

// Corridors returns copies of all corridors
func (g *Graph) Corridors() []Corridor {
	out := make([]Corridor, len(g.corridor))
	for i, c := range g.corridor {
		out[i] = c.clone()
	}
	return out
}

// RoomAt returns the index of the room whose interior contains the
// position, if any
func (g *Graph) RoomAt(p entities.Position) (int, bool) {
	for i, r := range g.rooms {
		if r.Contains(p) {
			return i, true
		}
	}
	return 0, false
}

// Entrance returns the index of the entrance room
func (g *Graph) Entrance() int {
	return g.entrance
}

// ExitTile returns the position of the single stairs tile
func (g *Graph) ExitTile() entities.Position {
	return g.exit
}

// Neighbors returns the indices of rooms joined to the room by a
// corridor, in ascending order
func (g *Graph) Neighbors(index int) ([]int, error) {
	if index < 0 || index >= len(g.rooms) {
		return nil, errors.InvalidArgumentf("room index %d out of range [0,%d)", index, len(g.rooms))
	}
	out := make([]int, len(g.adj[index]))
	copy(out, g.adj[index])
	return out, nil
}

// HopDistance returns the corridor-graph hop count between two rooms.
// It returns -1 if no path exists, which cannot happen on a generated
// graph but keeps the method total.
func (g *Graph) HopDistance(from, to int) (int, error) {
	if from < 0 || from >= len(g.rooms) {
		return 0, errors.InvalidArgumentf("room index %d out of range [0,%d)", from, len(g.rooms))
	}
	if to < 0 || to >= len(g.rooms) {
		return 0, errors.InvalidArgumentf("room index %d out of range [0,%d)", to, len(g.rooms))
	}
	dist := g.hopDistances(from)
	if d, ok := dist[to]; ok {
		return d, nil
	}
	return -1, nil
}

// hopDistances runs a BFS over room adjacency from the given room
func (g *Graph) hopDistances(from int) map[int]int {
	return bfsHops(g.adj, from)
}

// RandomFloor returns a uniformly chosen interior position of the room,
// drawn from the given roller
func (g *Graph) RandomFloor(index int, roller intner) (entities.Position, error) {
	room, err := g.Room(index)
	if err != nil {
		return entities.Position{}, err
	}
	dx, err := roller.Intn(room.Width)
	if err != nil {
		return entities.Position{}, err
	}
	dy, err := roller.Intn(room.Height)
	if err != nil {
		return entities.Position{}, err
	}
	return entities.Position{X: room.X + dx, Y: room.Y + dy}, nil
}

// intner is the slice of the random stream the graph needs
type intner interface {
	Intn(bound int) (int, error)
}

// Render returns the grid as rows of map glyphs, for debugging and
// headless tooling
func (g *Graph) Render() []string {
	rows := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		var b strings.Builder
		b.Grow(g.width)
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.tiles[y][x].Rune())
		}
		rows[y] = b.String()
	}
	return rows
}

// Snapshot is a serializable copy of a graph for external collaborators
type Snapshot struct {
	Width    int               `json:"width"`
	Height   int               `json:"height"`
	Tiles    [][]Tile          `json:"tiles"`
	Rooms    []Room            `json:"rooms"`
	Entrance int               `json:"entrance"`
	Exit     entities.Position `json:"exit"`
}

// Snapshot returns a deep copy of the graph's observable state
func (g *Graph) Snapshot() *Snapshot {
	tiles := make([][]Tile, g.height)
	for y := range g.tiles {
		tiles[y] = make([]Tile, g.width)
		copy(tiles[y], g.tiles[y])
	}
	return &Snapshot{
		Width:    g.width,
		Height:   g.height,
		Tiles:    tiles,
		Rooms:    g.Rooms(),
		Entrance: g.entrance,
		Exit:     g.exit,
	}
}

// addAdjacency records a corridor edge between two rooms, keeping the
// neighbor lists sorted and free of duplicates
func (g *Graph) addAdjacency(a, b int) {
	if a == b {
		return
	}
	g.adj[a] = insertSorted(g.adj[a], b)
	g.adj[b] = insertSorted(g.adj[b], a)
}

func insertSorted(list []int, v int) []int {
	i := sort.SearchInts(list, v)
	if i < len(list) && list[i] == v {
		return list
	}
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = v
	return list
}
