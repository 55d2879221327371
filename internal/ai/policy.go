// Package ai supplies the monster decision policies. A policy is a
// synchronous pure function from a read-only view to an action; the
// session invokes it for every monster still owing an action, so the
// engine core stays free of callback machinery. Given identical views
// and roller state, every policy decides identically.
package ai

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/ziyadedher/skrish/internal/config"
	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/errors"
)

// Policy decides one entity's action for the current round
type Policy interface {
	Decide(entityID string, view *View) (entities.Action, error)
}

// Policy names as referenced by catalog definitions
const (
	PolicyChase  = "chase"
	PolicyWander = "wander"
	PolicyIdle   = "idle"
)

// PolicyNames lists the selectable policies in deterministic order
var PolicyNames = []string{PolicyChase, PolicyWander, PolicyIdle}

// ValidPolicy reports whether name selects a known policy. Loaders use
// it to reject definitions before a session ever runs.
func ValidPolicy(name string) bool {
	for _, known := range PolicyNames {
		if name == known {
			return true
		}
	}
	return false
}

// ForName returns the named policy. The roller feeds the wander policy
// and the adjacency mode tells the chaser when it is in melee reach.
func ForName(name string, adjacency config.AdjacencyMode, roller dice.Roller) (Policy, error) {
	switch name {
	case PolicyChase:
		return &ChasePolicy{Adjacency: adjacency}, nil
	case PolicyWander:
		return &WanderPolicy{Roller: roller}, nil
	case PolicyIdle:
		return &IdlePolicy{}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown ai policy: %q", name)
	}
}

// ChasePolicy closes the Manhattan distance to the player and attacks
// once in reach. It does no pathfinding: a blocked step falls back to
// the other axis, and a monster boxed in on both waits.
type ChasePolicy struct {
	Adjacency config.AdjacencyMode
}

var _ Policy = (*ChasePolicy)(nil)

// Decide chases the player
func (p *ChasePolicy) Decide(entityID string, view *View) (entities.Action, error) {
	self, ok := view.Entity(entityID)
	if !ok {
		return entities.Action{}, errors.NotFoundf("entity %s not in view", entityID)
	}
	player, ok := view.Player()
	if !ok || !player.IsAlive() {
		return entities.Wait(), nil
	}

	if p.inReach(self.Position, player.Position) {
		return entities.Attack(player.ID), nil
	}

	for _, dir := range stepsToward(self.Position, player.Position) {
		if view.CanEnter(self.Position.Translate(dir)) {
			return entities.Move(dir), nil
		}
	}
	return entities.Wait(), nil
}

func (p *ChasePolicy) inReach(a, b entities.Position) bool {
	if p.Adjacency == config.EightWay {
		return a.ChebyshevDistance(b) == 1
	}
	return a.ManhattanDistance(b) == 1
}

// stepsToward orders the axes by how much they reduce the Manhattan
// distance, horizontal winning ties.
func stepsToward(from, to entities.Position) []entities.Direction {
	var horizontal, vertical entities.Direction
	if to.X > from.X {
		horizontal = entities.East
	} else if to.X < from.X {
		horizontal = entities.West
	}
	if to.Y > from.Y {
		vertical = entities.South
	} else if to.Y < from.Y {
		vertical = entities.North
	}

	dx := abs(to.X - from.X)
	dy := abs(to.Y - from.Y)

	var dirs []entities.Direction
	if dx >= dy {
		dirs = append(dirs, horizontal, vertical)
	} else {
		dirs = append(dirs, vertical, horizontal)
	}

	valid := dirs[:0]
	for _, d := range dirs {
		if d != "" {
			valid = append(valid, d)
		}
	}
	return valid
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// WanderPolicy drifts randomly: one direction draw per round, waiting
// out any draw that lands on a blocked tile. The single draw keeps
// stream consumption independent of the surroundings.
type WanderPolicy struct {
	Roller dice.Roller
}

var _ Policy = (*WanderPolicy)(nil)

// Decide picks a random step
func (p *WanderPolicy) Decide(entityID string, view *View) (entities.Action, error) {
	self, ok := view.Entity(entityID)
	if !ok {
		return entities.Action{}, errors.NotFoundf("entity %s not in view", entityID)
	}

	roll, err := p.Roller.Roll(len(entities.Directions))
	if err != nil {
		return entities.Action{}, errors.Wrap(err, "direction roll failed")
	}
	dir := entities.Directions[roll-1]

	if !view.CanEnter(self.Position.Translate(dir)) {
		return entities.Wait(), nil
	}
	return entities.Move(dir), nil
}

// IdlePolicy always waits
type IdlePolicy struct{}

var _ Policy = (*IdlePolicy)(nil)

// Decide waits
func (p *IdlePolicy) Decide(entityID string, view *View) (entities.Action, error) {
	return entities.Wait(), nil
}
