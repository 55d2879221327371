package dungeon

import (
	"github.com/ziyadedher/skrish/internal/entities"
)

// Room is an axis-aligned rectangular room. X/Y/Width/Height describe
// the walkable interior; the surrounding wall ring is not included.
// Rooms are read-only once generation returns.
type Room struct {
	Index  int                 `json:"index"`
	X      int                 `json:"x"`
	Y      int                 `json:"y"`
	Width  int                 `json:"width"`
	Height int                 `json:"height"`
	Doors  []entities.Position `json:"doors,omitempty"`
}

// Contains reports whether the position lies in the room's interior
func (r Room) Contains(p entities.Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Center returns the interior center tile
func (r Room) Center() entities.Position {
	return entities.Position{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// clone returns a copy that shares nothing with the original
func (r Room) clone() Room {
	cp := r
	if r.Doors != nil {
		cp.Doors = make([]entities.Position, len(r.Doors))
		copy(cp.Doors, r.Doors)
	}
	return cp
}

// Corridor is an ordered walkable path joining two rooms
type Corridor struct {
	From int                 `json:"from"`
	To   int                 `json:"to"`
	Path []entities.Position `json:"path"`
}

// clone returns a copy that shares nothing with the original
func (c Corridor) clone() Corridor {
	cp := c
	if c.Path != nil {
		cp.Path = make([]entities.Position, len(c.Path))
		copy(cp.Path, c.Path)
	}
	return cp
}
