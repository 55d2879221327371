package ai

import (
	"github.com/ziyadedher/skrish/internal/dungeon"
	"github.com/ziyadedher/skrish/internal/entities"
)

// View is the read-only projection policies decide over: the level
// graph plus an entity snapshot taken at the suspension point. Policies
// never see, or mutate, live registry state.
type View struct {
	Graph    *dungeon.Graph
	Entities []entities.Entity
}

// Entity returns the snapshot entry for an id
func (v *View) Entity(id string) (*entities.Entity, bool) {
	for i := range v.Entities {
		if v.Entities[i].ID == id {
			return &v.Entities[i], true
		}
	}
	return nil, false
}

// Player returns the player's snapshot entry, if present
func (v *View) Player() (*entities.Entity, bool) {
	for i := range v.Entities {
		if v.Entities[i].Kind == entities.KindPlayer {
			return &v.Entities[i], true
		}
	}
	return nil, false
}

// Occupied reports whether a living blocking entity stands on the tile
func (v *View) Occupied(pos entities.Position) bool {
	for i := range v.Entities {
		e := &v.Entities[i]
		if e.Position == pos && e.Kind.Blocking() && e.IsAlive() {
			return true
		}
	}
	return false
}

// CanEnter reports whether a move onto the tile would succeed: walkable
// terrain with no blocking entity.
func (v *View) CanEnter(pos entities.Position) bool {
	return v.Graph.IsWalkable(pos) && !v.Occupied(pos)
}
