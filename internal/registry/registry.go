// Package registry owns all live entities for a level and is the only
// component that mutates entity position, health, stats, and status
// effects. Everything else reads through lookups and snapshots.
//
// The registry is not safe for concurrent use: the engine is
// single-threaded cooperative, and a multi-threaded host must serialize
// access to the scheduler/registry pair with a single exclusive lock.
package registry

import (
	"sort"

	"github.com/ziyadedher/skrish/internal/dungeon"
	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/errors"
)

// Config holds the registry dependencies
type Config struct {
	Graph *dungeon.Graph
}

// Validate ensures the config is complete
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Graph == nil {
		vb.RequiredField("Graph")
	}
	return vb.Build()
}

// Registry is the in-memory entity store for a single level
type Registry struct {
	graph    *dungeon.Graph
	byID     map[string]*entities.Entity
	blockers map[entities.Position]string
	items    map[entities.Position][]string
}

// New creates an empty registry bound to a level graph
func New(cfg *Config) (*Registry, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Registry{
		graph:    cfg.Graph,
		byID:     make(map[string]*entities.Entity),
		blockers: make(map[entities.Position]string),
		items:    make(map[entities.Position][]string),
	}, nil
}

// Add registers an entity at its current position. The entity is copied,
// so the caller's value stays detached from registry state.
//
// Fails with OUT_OF_BOUNDS off-grid, POSITION_OCCUPIED when the tile is
// not walkable or a blocking entity already stands there, and
// INVALID_ARGUMENT for a nil entity, empty or duplicate id, or unknown
// kind.
func (r *Registry) Add(e *entities.Entity) error {
	if e == nil {
		return errors.InvalidArgument("entity is required")
	}
	if e.ID == "" {
		return errors.InvalidArgument("entity id is required")
	}
	if !e.Kind.Valid() {
		return errors.InvalidArgumentf("unknown entity kind: %s", e.Kind)
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.InvalidArgumentf("entity %s already registered", e.ID)
	}
	if e.Dead {
		return errors.InvalidArgumentf("entity %s is dead", e.ID)
	}
	if e.Stats.MaxHealth < 0 || e.Stats.Health < 0 || e.Stats.Attack < 0 ||
		e.Stats.Defense < 0 || e.Stats.Speed < 0 {
		return errors.InvalidArgumentf("entity %s has negative stats", e.ID)
	}
	if e.Kind.Blocking() && e.Stats.Health == 0 {
		return errors.InvalidArgumentf("entity %s must have positive health", e.ID)
	}

	if !r.graph.InBounds(e.Position) {
		return errors.OutOfBoundsf("position %s is outside the level", e.Position).
			WithMeta("id", e.ID).
			WithMeta("position", e.Position.String())
	}
	if !r.graph.IsWalkable(e.Position) {
		return errors.PositionOccupiedf("tile %s is not walkable", e.Position).
			WithMeta("id", e.ID).
			WithMeta("position", e.Position.String())
	}
	if occupant, ok := r.blockers[e.Position]; ok {
		return errors.PositionOccupiedf("tile %s is occupied by %s", e.Position, occupant).
			WithMeta("id", e.ID).
			WithMeta("position", e.Position.String()).
			WithMeta("occupant", occupant)
	}

	stored := e.Clone()
	r.byID[stored.ID] = stored
	if stored.Kind.Blocking() {
		r.blockers[stored.Position] = stored.ID
	} else {
		r.items[stored.Position] = append(r.items[stored.Position], stored.ID)
	}
	return nil
}

// Remove deletes an entity and frees its tile. Fails with NOT_FOUND if
// the id is unknown.
func (r *Registry) Remove(id string) error {
	e, exists := r.byID[id]
	if !exists {
		return errors.NotFoundf("entity %s not found", id)
	}
	r.unindex(e)
	delete(r.byID, id)
	return nil
}

// Get returns a copy of an entity. Mutations go through registry
// operations, never through the returned value.
func (r *Registry) Get(id string) (*entities.Entity, error) {
	e, exists := r.byID[id]
	if !exists {
		return nil, errors.NotFoundf("entity %s not found", id)
	}
	return e.Clone(), nil
}

// EntityAt returns the blocking entity standing on a tile, if any. Dead
// entities stop blocking the moment they die, so they never show up
// here even before the end-of-round sweep.
func (r *Registry) EntityAt(pos entities.Position) (string, bool) {
	id, ok := r.blockers[pos]
	return id, ok
}

// ItemsAt returns the ids of non-blocking entities lying on a tile, in
// the order they were placed.
func (r *Registry) ItemsAt(pos entities.Position) []string {
	ids := r.items[pos]
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Move relocates an entity, validating walkability and vacancy
// atomically. On failure nothing is mutated. Fails with NOT_FOUND for
// an unknown id, OUT_OF_BOUNDS off-grid, and INVALID_MOVE when the
// target tile is a wall or another blocking entity stands there.
func (r *Registry) Move(id string, to entities.Position) error {
	e, exists := r.byID[id]
	if !exists {
		return errors.NotFoundf("entity %s not found", id)
	}
	if e.Dead {
		return errors.InvalidMovef("entity %s is dead", id).WithMeta("id", id)
	}

	if !r.graph.InBounds(to) {
		return errors.OutOfBoundsf("position %s is outside the level", to).
			WithMeta("id", id).
			WithMeta("to", to.String())
	}
	if !r.graph.IsWalkable(to) {
		return errors.InvalidMovef("tile %s is not walkable", to).
			WithMeta("id", id).
			WithMeta("from", e.Position.String()).
			WithMeta("to", to.String())
	}
	if occupant, ok := r.blockers[to]; ok && occupant != id {
		return errors.InvalidMovef("tile %s is occupied by %s", to, occupant).
			WithMeta("id", id).
			WithMeta("from", e.Position.String()).
			WithMeta("to", to.String()).
			WithMeta("occupant", occupant)
	}

	r.unindex(e)
	e.Position = to
	r.index(e)
	return nil
}

// ApplyDamage reduces health, clamping at zero. Reaching zero marks the
// entity dead and immediately frees its tile; the value itself stays
// registered until SweepDead at the end of the round. Damaging an
// already-dead entity is a no-op. Returns whether this call killed the
// entity.
func (r *Registry) ApplyDamage(id string, amount int) (bool, error) {
	e, exists := r.byID[id]
	if !exists {
		return false, errors.NotFoundf("entity %s not found", id)
	}
	if amount < 0 {
		return false, errors.InvalidArgumentf("damage must be non-negative, got %d", amount)
	}
	if e.Dead {
		return false, nil
	}

	e.Stats.Health -= amount
	if e.Stats.Health > 0 {
		return false, nil
	}

	e.Stats.Health = 0
	e.Dead = true
	r.unindex(e)
	return true, nil
}

// Heal restores health, clamping at max health. Dead entities cannot be
// healed; the call is a no-op for them.
func (r *Registry) Heal(id string, amount int) error {
	e, exists := r.byID[id]
	if !exists {
		return errors.NotFoundf("entity %s not found", id)
	}
	if amount < 0 {
		return errors.InvalidArgumentf("heal must be non-negative, got %d", amount)
	}
	if e.Dead {
		return nil
	}

	e.Stats.Health += amount
	if e.Stats.Health > e.Stats.MaxHealth {
		e.Stats.Health = e.Stats.MaxHealth
	}
	return nil
}

// AdjustAttack shifts the attack stat by delta, flooring at zero
func (r *Registry) AdjustAttack(id string, delta int) error {
	e, exists := r.byID[id]
	if !exists {
		return errors.NotFoundf("entity %s not found", id)
	}
	e.Stats.Attack += delta
	if e.Stats.Attack < 0 {
		e.Stats.Attack = 0
	}
	return nil
}

// AdjustDefense shifts the defense stat by delta, flooring at zero
func (r *Registry) AdjustDefense(id string, delta int) error {
	e, exists := r.byID[id]
	if !exists {
		return errors.NotFoundf("entity %s not found", id)
	}
	e.Stats.Defense += delta
	if e.Stats.Defense < 0 {
		e.Stats.Defense = 0
	}
	return nil
}

// ApplyStatus attaches a status effect for the given number of rounds.
// Re-applying an effect refreshes its remaining duration.
func (r *Registry) ApplyStatus(id string, effect entities.StatusEffect, duration int) error {
	e, exists := r.byID[id]
	if !exists {
		return errors.NotFoundf("entity %s not found", id)
	}
	if !effect.Valid() {
		return errors.InvalidArgumentf("unknown status effect: %s", effect)
	}
	if duration <= 0 {
		return errors.InvalidArgumentf("status duration must be positive, got %d", duration)
	}

	if e.Statuses == nil {
		e.Statuses = make(map[entities.StatusEffect]int)
	}
	e.Statuses[effect] = duration
	return nil
}

// ClearStatus removes a status effect if present
func (r *Registry) ClearStatus(id string, effect entities.StatusEffect) error {
	e, exists := r.byID[id]
	if !exists {
		return errors.NotFoundf("entity %s not found", id)
	}
	delete(e.Statuses, effect)
	return nil
}

// TickStatuses decrements the remaining duration of every status effect
// on living entities, dropping effects that reach zero. Dead entities
// keep their statuses untouched until swept.
func (r *Registry) TickStatuses() {
	for _, e := range r.byID {
		if !e.IsAlive() {
			continue
		}
		for effect, remaining := range e.Statuses {
			if remaining <= 1 {
				delete(e.Statuses, effect)
				continue
			}
			e.Statuses[effect] = remaining - 1
		}
	}
}

// SweepDead removes every entity marked dead and returns their ids in
// ascending order.
func (r *Registry) SweepDead() []string {
	var swept []string
	for id, e := range r.byID {
		if e.Dead {
			swept = append(swept, id)
		}
	}
	sort.Strings(swept)

	for _, id := range swept {
		delete(r.byID, id)
	}
	return swept
}

// Snapshot returns deep copies of every entity, ordered by ascending id
func (r *Registry) Snapshot() []entities.Entity {
	out := make([]entities.Entity, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, *e.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// List returns entity ids in ascending order, filtered to the given
// kinds. With no filter every id is returned.
func (r *Registry) List(kinds ...entities.EntityKind) []string {
	var ids []string
	for id, e := range r.byID {
		if len(kinds) == 0 {
			ids = append(ids, id)
			continue
		}
		for _, k := range kinds {
			if e.Kind == k {
				ids = append(ids, id)
				break
			}
		}
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered entities, dead-but-unswept
// included.
func (r *Registry) Len() int {
	return len(r.byID)
}

// Player returns the player's id, if one is registered
func (r *Registry) Player() (string, bool) {
	players := r.List(entities.KindPlayer)
	if len(players) == 0 {
		return "", false
	}
	return players[0], true
}

func (r *Registry) index(e *entities.Entity) {
	if e.Kind.Blocking() {
		r.blockers[e.Position] = e.ID
		return
	}
	r.items[e.Position] = append(r.items[e.Position], e.ID)
}

func (r *Registry) unindex(e *entities.Entity) {
	if e.Kind.Blocking() {
		if r.blockers[e.Position] == e.ID {
			delete(r.blockers, e.Position)
		}
		return
	}

	ids := r.items[e.Position]
	for i, id := range ids {
		if id == e.ID {
			r.items[e.Position] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(r.items[e.Position]) == 0 {
		delete(r.items, e.Position)
	}
}
