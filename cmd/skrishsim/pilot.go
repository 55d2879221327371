package main

import (
	"context"

	"github.com/ziyadedher/skrish/internal/dungeon"
	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/services/session"
)

// pilot plays the player side of a crawl: fight whatever stands
// adjacent, eat when hurt and standing on an item, otherwise head
// straight for the stairs.
type pilot struct {
	service session.Service
}

// playLevel drives rounds until the level settles or maxRounds pass.
// It returns the final outcome and the number of rounds it played.
func (p *pilot) playLevel(ctx context.Context, maxRounds int) (*session.OutcomeOutput, int, error) {
	rounds := 0
	for ; rounds < maxRounds; rounds++ {
		outcome, err := p.service.Outcome(ctx, &session.OutcomeInput{})
		if err != nil {
			return nil, rounds, err
		}
		if outcome.Settled {
			return outcome, rounds, nil
		}

		action, err := p.decide(ctx)
		if err != nil {
			return nil, rounds, err
		}
		if _, err := p.service.SubmitAction(ctx, &session.SubmitActionInput{Action: action}); err != nil {
			return nil, rounds, err
		}
		if _, err := p.service.CollectIntents(ctx, &session.CollectIntentsInput{}); err != nil {
			return nil, rounds, err
		}
		if _, err := p.service.AdvanceRound(ctx, &session.AdvanceRoundInput{}); err != nil {
			return nil, rounds, err
		}
	}

	outcome, err := p.service.Outcome(ctx, &session.OutcomeInput{})
	return outcome, rounds, err
}

func (p *pilot) decide(ctx context.Context) (entities.Action, error) {
	snap, err := p.service.Snapshot(ctx, &session.SnapshotInput{})
	if err != nil {
		return entities.Action{}, err
	}

	var player entities.Entity
	found := false
	for _, e := range snap.Entities {
		if e.ID == snap.PlayerID {
			player, found = e, true
			break
		}
	}
	if !found {
		return entities.Wait(), nil
	}

	for _, e := range snap.Entities {
		if e.Kind == entities.KindMonster && e.Stats.Health > 0 &&
			e.Position.ManhattanDistance(player.Position) == 1 {
			return entities.Attack(e.ID), nil
		}
	}

	if player.Stats.Health < player.Stats.MaxHealth {
		for _, e := range snap.Entities {
			if e.Kind == entities.KindItem && e.Position == player.Position {
				return entities.UseItem(e.ID), nil
			}
		}
	}

	if dir, ok := steerToward(snap.Graph, player.Position, snap.Graph.Exit); ok {
		return entities.Move(dir), nil
	}
	return entities.Wait(), nil
}

// steerToward returns the first move of a shortest walkable path,
// ignoring entity occupancy.
func steerToward(g *dungeon.Snapshot, from, to entities.Position) (entities.Direction, bool) {
	if from == to {
		return "", false
	}

	type node struct {
		pos   entities.Position
		first entities.Direction
	}
	visited := map[entities.Position]bool{from: true}
	var queue []node
	for _, d := range entities.Directions {
		next := from.Translate(d)
		if next == to {
			return d, true
		}
		if !tileWalkable(g, next) || visited[next] {
			continue
		}
		visited[next] = true
		queue = append(queue, node{pos: next, first: d})
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range entities.Directions {
			next := cur.pos.Translate(d)
			if next == to {
				return cur.first, true
			}
			if !tileWalkable(g, next) || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, node{pos: next, first: cur.first})
		}
	}
	return "", false
}

func tileWalkable(g *dungeon.Snapshot, p entities.Position) bool {
	if p.X < 0 || p.Y < 0 || p.X >= g.Width || p.Y >= g.Height {
		return false
	}
	return g.Tiles[p.Y][p.X].IsWalkable()
}
