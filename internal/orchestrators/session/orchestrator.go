// Package session implements the game session orchestrator
package session

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/ziyadedher/skrish/internal/ai"
	"github.com/ziyadedher/skrish/internal/combat"
	"github.com/ziyadedher/skrish/internal/config"
	"github.com/ziyadedher/skrish/internal/content"
	"github.com/ziyadedher/skrish/internal/dungeon"
	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/errors"
	"github.com/ziyadedher/skrish/internal/journal"
	"github.com/ziyadedher/skrish/internal/pkg/idgen"
	"github.com/ziyadedher/skrish/internal/pkg/rng"
	"github.com/ziyadedher/skrish/internal/registry"
	"github.com/ziyadedher/skrish/internal/scheduler"
	"github.com/ziyadedher/skrish/internal/services/session"
)

const (
	playerGlyph       = "@"
	defaultPlayerName = "Adventurer"

	// playerPlaceAttempts bounds random placement draws before falling
	// back to a deterministic scan of the entrance room.
	playerPlaceAttempts = 16
)

// defaultPlayerStats is the stock starting block for hosts that do not
// bring their own.
var defaultPlayerStats = entities.StatBlock{
	MaxHealth: 20,
	Health:    20,
	Attack:    3,
	Defense:   1,
	Speed:     2,
}

// Config holds the dependencies for the session orchestrator
type Config struct {
	Catalog  *content.Catalog
	Tuning   config.Tuning
	EventBus events.EventBus
	Logger   *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if err := c.Tuning.Validate(); err != nil {
		vb.Field("Tuning", err.Error())
	}

	return vb.Build()
}

// game is the full mutable state of one crawl. Level transitions build
// a fresh value and swap it in whole, so a failed transition never
// leaves the orchestrator half-moved.
type game struct {
	seed       int64
	width      int
	height     int
	rooms      int
	depth      int
	difficulty int

	playerName  string
	playerStats entities.StatBlock

	// stream, ids, and journal live for the whole game and are shared
	// across level transitions.
	stream  *rng.Stream
	ids     *idgen.SequentialGenerator
	journal *journal.Journal

	graph    *dungeon.Graph
	reg      *registry.Registry
	sched    *scheduler.Scheduler
	policies map[string]ai.Policy
	playerID string

	// submitted tracks the actions handed in by the host this round, as
	// opposed to those the monster policies derived. Only these are
	// journaled; policy decisions are re-derived on replay.
	submitted map[string]entities.Action
}

// Orchestrator implements the session.Service interface.
//
// It is not safe for concurrent use; hosts that share a game across
// goroutines serialize access themselves.
type Orchestrator struct {
	catalog   *content.Catalog
	tuning    config.Tuning
	bus       events.EventBus
	logger    *slog.Logger
	generator *dungeon.Generator

	game *game
}

// New creates a new session orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	generator, err := dungeon.New(&dungeon.Config{Tuning: cfg.Tuning, Logger: logger})
	if err != nil {
		return nil, err
	}

	return &Orchestrator{
		catalog:   cfg.Catalog,
		tuning:    cfg.Tuning,
		bus:       bus,
		logger:    logger,
		generator: generator,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ session.Service = (*Orchestrator)(nil)

// live returns the current game, or fails if none is loaded
func (o *Orchestrator) live() (*game, error) {
	if o.game == nil {
		return nil, errors.FailedPrecondition("no game in progress")
	}
	return o.game, nil
}

// NewLevel starts a fresh game on its first level
func (o *Orchestrator) NewLevel(ctx context.Context, input *session.NewLevelInput) (*session.NewLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Difficulty < 0 {
		return nil, errors.InvalidArgumentf("difficulty must not be negative, got %d", input.Difficulty)
	}

	difficulty := input.Difficulty
	if difficulty == 0 {
		difficulty = 1
	}
	name := input.PlayerName
	if name == "" {
		name = defaultPlayerName
	}
	stats := defaultPlayerStats
	if input.PlayerStats != nil {
		stats = *input.PlayerStats
	}

	g := &game{
		seed:        input.Seed,
		width:       input.Width,
		height:      input.Height,
		rooms:       input.TargetRoomCount,
		depth:       1,
		difficulty:  difficulty,
		playerName:  name,
		playerStats: stats,
		stream:      rng.New(input.Seed),
		ids:         idgen.NewSequential("entity"),
		journal: journal.New(journal.Setup{
			Seed:        input.Seed,
			Width:       input.Width,
			Height:      input.Height,
			RoomCount:   input.TargetRoomCount,
			Difficulty:  difficulty,
			Tuning:      o.tuning,
			PlayerName:  name,
			PlayerStats: stats,
		}),
	}

	// The first level is generated straight from the game seed; later
	// levels draw their seeds from the stream.
	monsters, items, err := o.buildLevel(ctx, g, input.Seed, nil)
	if err != nil {
		return nil, err
	}
	o.game = g

	return &session.NewLevelOutput{
		Depth:      g.depth,
		Difficulty: g.difficulty,
		PlayerID:   g.playerID,
		Monsters:   monsters,
		Items:      items,
	}, nil
}

// DescendStairs moves the won crawl down one level. The player entity
// carries over as-is; only its position is rewritten.
func (o *Orchestrator) DescendStairs(ctx context.Context, input *session.DescendStairsInput) (*session.DescendStairsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	g, err := o.live()
	if err != nil {
		return nil, err
	}
	if outcome := g.sched.Outcome(); outcome != scheduler.OutcomePlayerWon {
		return nil, errors.FailedPreconditionf("cannot descend while the game is %s", outcome)
	}

	carried, err := g.reg.Get(g.playerID)
	if err != nil {
		return nil, err
	}

	next := *g
	next.depth++
	next.difficulty++

	levelSeed, err := drawLevelSeed(next.stream)
	if err != nil {
		return nil, err
	}
	monsters, items, err := o.buildLevel(ctx, &next, levelSeed, carried)
	if err != nil {
		return nil, err
	}
	o.game = &next

	return &session.DescendStairsOutput{
		Depth:      next.depth,
		Difficulty: next.difficulty,
		PlayerID:   next.playerID,
		Monsters:   monsters,
		Items:      items,
	}, nil
}

// Abandon ends the game and returns its journal record
func (o *Orchestrator) Abandon(_ context.Context, input *session.AbandonInput) (*session.AbandonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	g, err := o.live()
	if err != nil {
		return nil, err
	}

	record := g.journal.Record()
	o.game = nil

	o.logger.Info("game abandoned",
		"seed", record.Setup.Seed,
		"rounds", len(record.Rounds),
	)
	return &session.AbandonOutput{Record: record}, nil
}

// SubmitAction records an entity's intent for the current round. An
// empty EntityID targets the player.
func (o *Orchestrator) SubmitAction(_ context.Context, input *session.SubmitActionInput) (*session.SubmitActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	g, err := o.live()
	if err != nil {
		return nil, err
	}

	id := input.EntityID
	if id == "" {
		id = g.playerID
	}
	if err := g.sched.SubmitAction(id, input.Action); err != nil {
		return nil, err
	}
	g.submitted[id] = input.Action

	return &session.SubmitActionOutput{EntityID: id}, nil
}

// CollectIntents lets the monster policies decide for every monster
// still owing an action. Monsters are visited in ascending id order over
// one shared snapshot, so a given game state always yields the same
// decisions in the same stream order.
func (o *Orchestrator) CollectIntents(_ context.Context, input *session.CollectIntentsInput) (*session.CollectIntentsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	g, err := o.live()
	if err != nil {
		return nil, err
	}

	view := &ai.View{Graph: g.graph, Entities: g.reg.Snapshot()}

	var intents []session.Intent
	for _, id := range g.sched.PendingActors() {
		e, err := g.reg.Get(id)
		if err != nil {
			return nil, err
		}
		if e.Kind != entities.KindMonster {
			continue
		}

		policy, err := g.policyFor(e)
		if err != nil {
			return nil, err
		}
		action, err := policy.Decide(id, view)
		if err != nil {
			return nil, errors.Wrapf(err, "policy decision failed for %s", id)
		}
		if err := g.sched.SubmitAction(id, action); err != nil {
			return nil, err
		}
		intents = append(intents, session.Intent{EntityID: id, Action: action})
	}

	return &session.CollectIntentsOutput{Intents: intents}, nil
}

// AdvanceRound resolves the current round, journals it, and republishes
// the report on the event bus.
func (o *Orchestrator) AdvanceRound(ctx context.Context, input *session.AdvanceRoundInput) (*session.AdvanceRoundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	g, err := o.live()
	if err != nil {
		return nil, err
	}

	report, err := g.sched.AdvanceRound(ctx)
	if err != nil {
		return nil, err
	}

	g.journal.AppendRound(g.submitted, report)
	g.submitted = map[string]entities.Action{}
	o.publishRound(ctx, g, report)

	return &session.AdvanceRoundOutput{Report: report}, nil
}

// Snapshot returns the render-ready view of the game
func (o *Orchestrator) Snapshot(_ context.Context, input *session.SnapshotInput) (*session.SnapshotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	g, err := o.live()
	if err != nil {
		return nil, err
	}

	return &session.SnapshotOutput{
		Depth:      g.depth,
		Difficulty: g.difficulty,
		Turn:       g.sched.Turn(),
		State:      g.sched.State(),
		Outcome:    g.sched.Outcome(),
		PlayerID:   g.playerID,
		Graph:      g.graph.Snapshot(),
		Entities:   g.reg.Snapshot(),
	}, nil
}

// Outcome reports where the game stands
func (o *Orchestrator) Outcome(_ context.Context, input *session.OutcomeInput) (*session.OutcomeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	g, err := o.live()
	if err != nil {
		return nil, err
	}

	return &session.OutcomeOutput{
		Outcome: g.sched.Outcome(),
		Turn:    g.sched.Turn(),
		Settled: g.sched.State() == scheduler.StateSettled,
	}, nil
}

// Journal returns the record of every round resolved so far
func (o *Orchestrator) Journal(_ context.Context, input *session.JournalInput) (*session.JournalOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	g, err := o.live()
	if err != nil {
		return nil, err
	}

	return &session.JournalOutput{Record: g.journal.Record()}, nil
}

// buildLevel generates and populates one level into g. All state lands
// in g only on success. A nil carried player means a fresh one is
// spawned; either way the player is placed, and gets its id, before any
// monster, so it wins initiative ties among equals.
func (o *Orchestrator) buildLevel(ctx context.Context, g *game, levelSeed int64, carried *entities.Entity) (int, int, error) {
	out, err := o.generator.Generate(ctx, &dungeon.GenerateInput{
		Seed:            levelSeed,
		Width:           g.width,
		Height:          g.height,
		TargetRoomCount: g.rooms,
		Difficulty:      g.difficulty,
	})
	if err != nil {
		return 0, 0, err
	}
	graph := out.Graph

	reg, err := registry.New(&registry.Config{Graph: graph})
	if err != nil {
		return 0, 0, err
	}

	player := carried
	if player == nil {
		player = &entities.Entity{
			ID:    g.ids.Generate(),
			Kind:  entities.KindPlayer,
			Name:  g.playerName,
			Glyph: playerGlyph,
			Stats: g.playerStats,
		}
	}
	pos, err := placePlayer(graph, g.stream)
	if err != nil {
		return 0, 0, err
	}
	player.Position = pos
	if err := reg.Add(player); err != nil {
		return 0, 0, errors.Wrap(err, "failed to place the player")
	}

	plan, err := o.catalog.PopulatePlan(graph, g.difficulty, o.tuning, g.stream)
	if err != nil {
		return 0, 0, err
	}
	spawned := []*entities.Entity{player}
	for _, spawn := range plan.Monsters {
		def, ok := o.catalog.Monster(spawn.DefinitionID)
		if !ok {
			return 0, 0, errors.Internalf("planned monster %q has no definition", spawn.DefinitionID)
		}
		e := def.Instantiate(g.ids.Generate(), spawn.Position)
		if err := reg.Add(e); err != nil {
			return 0, 0, errors.Wrapf(err, "failed to place monster %s", spawn.DefinitionID)
		}
		spawned = append(spawned, e)
	}
	for _, spawn := range plan.Items {
		def, ok := o.catalog.Item(spawn.DefinitionID)
		if !ok {
			return 0, 0, errors.Internalf("planned item %q has no definition", spawn.DefinitionID)
		}
		e := def.Instantiate(g.ids.Generate(), spawn.Position)
		if err := reg.Add(e); err != nil {
			return 0, 0, errors.Wrapf(err, "failed to place item %s", spawn.DefinitionID)
		}
		spawned = append(spawned, e)
	}

	resolver, err := combat.New(&combat.Config{
		Store:  reg,
		Roller: g.stream,
		Tuning: o.tuning,
		Logger: o.logger,
	})
	if err != nil {
		return 0, 0, err
	}
	effects, err := content.NewApplier(&content.ApplierConfig{
		Catalog: o.catalog,
		Store:   reg,
		Logger:  o.logger,
	})
	if err != nil {
		return 0, 0, err
	}
	sched, err := scheduler.New(&scheduler.Config{
		Store:    reg,
		Resolver: resolver,
		Effects:  effects,
		ExitTile: graph.ExitTile(),
		Tuning:   o.tuning,
		Logger:   o.logger,
	})
	if err != nil {
		return 0, 0, err
	}

	policies := make(map[string]ai.Policy, len(ai.PolicyNames))
	for _, name := range ai.PolicyNames {
		policy, err := ai.ForName(name, o.tuning.Adjacency, g.stream)
		if err != nil {
			return 0, 0, err
		}
		policies[name] = policy
	}

	g.graph = graph
	g.reg = reg
	g.sched = sched
	g.policies = policies
	g.playerID = player.ID
	g.submitted = map[string]entities.Action{}

	o.publishLevel(ctx, g, levelSeed, spawned)
	o.logger.Info("level generated",
		"depth", g.depth,
		"difficulty", g.difficulty,
		"seed", levelSeed,
		"rooms", graph.RoomCount(),
		"monsters", len(plan.Monsters),
		"items", len(plan.Items),
	)

	return len(plan.Monsters), len(plan.Items), nil
}

// policyFor resolves the policy driving an entity. Entities without a
// policy idle.
func (g *game) policyFor(e *entities.Entity) (ai.Policy, error) {
	name := e.AIPolicy
	if name == "" {
		name = ai.PolicyIdle
	}
	policy, ok := g.policies[name]
	if !ok {
		return nil, errors.InvalidArgumentf("entity %s has unknown ai policy %q", e.ID, name)
	}
	return policy, nil
}

// placePlayer picks the player's starting tile in the entrance room:
// a random floor tile off the stairs. On a cramped level where the
// draws keep landing on the stairs, it falls back to scanning the room.
func placePlayer(graph *dungeon.Graph, stream *rng.Stream) (entities.Position, error) {
	exit := graph.ExitTile()
	for attempt := 0; attempt < playerPlaceAttempts; attempt++ {
		pos, err := graph.RandomFloor(graph.Entrance(), stream)
		if err != nil {
			return entities.Position{}, err
		}
		if pos != exit {
			return pos, nil
		}
	}

	room, err := graph.Room(graph.Entrance())
	if err != nil {
		return entities.Position{}, err
	}
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			pos := entities.Position{X: x, Y: y}
			if graph.IsWalkable(pos) && pos != exit {
				return pos, nil
			}
		}
	}
	return entities.Position{}, errors.Internal("entrance room has no free tile for the player")
}

// drawLevelSeed derives the next level's generation seed from the game
// stream, so the whole crawl stays a pure function of the one seed.
func drawLevelSeed(stream *rng.Stream) (int64, error) {
	v, err := stream.Intn(math.MaxInt32)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}
