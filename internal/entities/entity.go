// Package entities provides the core data structures shared across the engine.
package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityKind is the closed set of entity variants. Behavior differences
// between variants are expressed through the capability methods below
// rather than per-kind subtypes.
type EntityKind string

// Entity kinds
const (
	KindPlayer  EntityKind = "player"
	KindMonster EntityKind = "monster"
	KindItem    EntityKind = "item"
)

// Valid reports whether the kind is a known variant
func (k EntityKind) Valid() bool {
	switch k {
	case KindPlayer, KindMonster, KindItem:
		return true
	default:
		return false
	}
}

// Blocking reports whether entities of this kind occupy their tile
// exclusively. Items share tiles; actors do not.
func (k EntityKind) Blocking() bool {
	return k == KindPlayer || k == KindMonster
}

// CanAct reports whether entities of this kind take turns
func (k EntityKind) CanAct() bool {
	return k == KindPlayer || k == KindMonster
}

// CanAttack reports whether entities of this kind may attack
func (k EntityKind) CanAttack() bool {
	return k == KindPlayer || k == KindMonster
}

// CanUseItem reports whether entities of this kind may consume items
func (k EntityKind) CanUseItem() bool {
	return k == KindPlayer
}

// StatBlock holds the combat statistics of an entity. All values are
// non-negative; Health of 0 means dead.
type StatBlock struct {
	MaxHealth int `json:"max_health"`
	Health    int `json:"health"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	Speed     int `json:"speed"`
}

// Entity is any object tracked by the registry: the player, a monster,
// or an item lying on a tile.
type Entity struct {
	ID       string               `json:"id"`
	Kind     EntityKind           `json:"kind"`
	Name     string               `json:"name"`
	Glyph    string               `json:"glyph,omitempty"`
	Position Position             `json:"position"`
	Stats    StatBlock            `json:"stats"`
	Statuses map[StatusEffect]int `json:"statuses,omitempty"`
	// AIPolicy names the decision policy driving this entity when it is
	// not player-controlled. Empty for the player and for items.
	AIPolicy string `json:"ai_policy,omitempty"`
	// DefinitionID is the catalog entry this entity was spawned from,
	// empty for ad-hoc entities.
	DefinitionID string `json:"definition_id,omitempty"`
	// Dead marks an entity whose health reached 0 and which is awaiting
	// the end-of-round sweep.
	Dead bool `json:"dead,omitempty"`
}

// Compile-time check that Entity satisfies the toolkit entity contract
var _ core.Entity = (*Entity)(nil)

// GetID returns the entity's ID
func (e *Entity) GetID() string {
	return e.ID
}

// GetType returns the entity kind for rpg-toolkit
func (e *Entity) GetType() string {
	return string(e.Kind)
}

// IsAlive reports whether the entity is alive
func (e *Entity) IsAlive() bool {
	return !e.Dead && e.Stats.Health > 0
}

// HasStatus reports whether the effect is currently active
func (e *Entity) HasStatus(effect StatusEffect) bool {
	if e.Statuses == nil {
		return false
	}
	_, ok := e.Statuses[effect]
	return ok
}

// Clone returns a deep copy of the entity
func (e *Entity) Clone() *Entity {
	cp := *e
	if e.Statuses != nil {
		cp.Statuses = make(map[StatusEffect]int, len(e.Statuses))
		for k, v := range e.Statuses {
			cp.Statuses[k] = v
		}
	}
	return &cp
}
