package session

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/scheduler"
)

// Topics published on the session's event bus. Subscribers receive them
// after the fact; nothing in the engine waits on a handler.
const (
	TopicLevelGenerated = "dungeon.level_generated"
	TopicEntitySpawned  = "entity.spawned"
	TopicEntityMoved    = "entity.moved"
	TopicEntityDamaged  = "entity.damaged"
	TopicEntityDied     = "entity.died"
	TopicItemUsed       = "item.used"
	TopicRoundResolved  = "round.resolved"
	TopicGameOver       = "session.game_over"
)

// busEntity adapts an engine entity reference to the bus's entity
// contract.
type busEntity struct {
	id   string
	kind string
}

var _ core.Entity = (*busEntity)(nil)

func (e *busEntity) GetID() string {
	return e.id
}

func (e *busEntity) GetType() string {
	return e.kind
}

// entityRef builds an event source for an id. Entities already swept
// from the registry keep their id with a generic kind.
func (g *game) entityRef(id string) core.Entity {
	if e, err := g.reg.Get(id); err == nil {
		return &busEntity{id: id, kind: string(e.Kind)}
	}
	return &busEntity{id: id, kind: "entity"}
}

// publish fires one event, logging instead of failing when a subscriber
// rejects it. Game state never depends on delivery.
func (o *Orchestrator) publish(ctx context.Context, topic string, source core.Entity, fields map[string]any) {
	ev := events.NewGameEvent(topic, source, nil)
	for key, value := range fields {
		ev.Context().Set(key, value)
	}
	if err := o.bus.Publish(ctx, ev); err != nil {
		o.logger.Warn("event publish failed", "topic", topic, "error", err)
	}
}

// publishLevel announces a generated level and everything spawned on it
func (o *Orchestrator) publishLevel(ctx context.Context, g *game, levelSeed int64, spawned []*entities.Entity) {
	o.publish(ctx, TopicLevelGenerated, nil, map[string]any{
		"depth":      g.depth,
		"difficulty": g.difficulty,
		"seed":       levelSeed,
		"width":      g.width,
		"height":     g.height,
		"rooms":      g.graph.RoomCount(),
	})
	for _, e := range spawned {
		fields := map[string]any{
			"kind":     string(e.Kind),
			"position": e.Position,
		}
		if e.DefinitionID != "" {
			fields["definition_id"] = e.DefinitionID
		}
		o.publish(ctx, TopicEntitySpawned, &busEntity{id: e.ID, kind: string(e.Kind)}, fields)
	}
}

// publishRound republishes a resolved round's report as bus events
func (o *Orchestrator) publishRound(ctx context.Context, g *game, report *scheduler.RoundReport) {
	for _, m := range report.Moves {
		o.publish(ctx, TopicEntityMoved, g.entityRef(m.EntityID), map[string]any{
			"from": m.From,
			"to":   m.To,
		})
	}
	for _, d := range report.Damage {
		fields := map[string]any{
			"amount":   d.Amount,
			"critical": d.Critical,
			"fatal":    d.Fatal,
			"source":   d.Source,
		}
		if d.AttackerID != "" {
			fields["attacker_id"] = d.AttackerID
		}
		o.publish(ctx, TopicEntityDamaged, g.entityRef(d.DefenderID), fields)
	}
	for _, use := range report.ItemUses {
		o.publish(ctx, TopicItemUsed, g.entityRef(use.UserID), map[string]any{
			"item_id":       use.ItemID,
			"definition_id": use.DefinitionID,
		})
	}
	for _, id := range report.Deaths {
		o.publish(ctx, TopicEntityDied, g.entityRef(id), map[string]any{
			"turn": report.Turn,
		})
	}

	o.publish(ctx, TopicRoundResolved, nil, map[string]any{
		"turn":    report.Turn,
		"outcome": string(report.Outcome),
	})
	if report.Outcome != scheduler.OutcomeInProgress {
		o.publish(ctx, TopicGameOver, g.entityRef(g.playerID), map[string]any{
			"turn":    report.Turn,
			"outcome": string(report.Outcome),
		})
	}
}
