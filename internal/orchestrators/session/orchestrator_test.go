package session_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/ziyadedher/skrish/internal/config"
	"github.com/ziyadedher/skrish/internal/content"
	"github.com/ziyadedher/skrish/internal/dungeon"
	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/errors"
	"github.com/ziyadedher/skrish/internal/journal"
	sessionorch "github.com/ziyadedher/skrish/internal/orchestrators/session"
	"github.com/ziyadedher/skrish/internal/scheduler"
	"github.com/ziyadedher/skrish/internal/services/session"
)

// hunterDefs is a catalog whose only monster relentlessly chases the
// player, so first contact is guaranteed once the player closes in.
const hunterDefs = `{
  "monsters": [
    {
      "id": "revenant",
      "name": "Revenant",
      "glyph": "R",
      "stats": {"health": 6, "attack": 3, "defense": 0, "speed": 2},
      "ai": "chase",
      "challenge": 1
    }
  ],
  "items": [
    {
      "id": "stale-bread",
      "name": "Stale Bread",
      "glyph": "%",
      "effect": {"kind": "heal", "magnitude": 1},
      "rarity": "common"
    }
  ]
}`

// pantryDefs stocks levels with harmless husks and plenty of bread so a
// scripted player can walk to an item and eat it in peace.
const pantryDefs = `{
  "monsters": [
    {
      "id": "husk",
      "name": "Dormant Husk",
      "glyph": "h",
      "stats": {"health": 1, "attack": 0, "defense": 0, "speed": 0},
      "ai": "idle",
      "challenge": 1
    }
  ],
  "items": [
    {
      "id": "bread",
      "name": "Bread",
      "glyph": "%",
      "effect": {"kind": "heal", "magnitude": 5},
      "rarity": "common"
    }
  ]
}`

type OrchestratorTestSuite struct {
	suite.Suite
	ctx     context.Context
	catalog *content.Catalog
	service session.Service
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()

	catalog, err := content.Load()
	s.Require().NoError(err)
	s.catalog = catalog
	s.service = s.newService(catalog, nil)
}

func (s *OrchestratorTestSuite) newService(catalog *content.Catalog, bus events.EventBus) session.Service {
	orch, err := sessionorch.New(&sessionorch.Config{
		Catalog:  catalog,
		Tuning:   config.Default(),
		EventBus: bus,
	})
	s.Require().NoError(err)
	return orch
}

func standardLevel() *session.NewLevelInput {
	return &session.NewLevelInput{Seed: 42, Width: 40, Height: 20, TargetRoomCount: 6}
}

// strongStats outmatches everything in the stock catalog: one-shot
// attacks and an initiative that always acts first.
func strongStats() *entities.StatBlock {
	return &entities.StatBlock{MaxHealth: 100, Health: 100, Attack: 10, Defense: 2, Speed: 5}
}

func (s *OrchestratorTestSuite) TestNewValidation() {
	_, err := sessionorch.New(nil)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = sessionorch.New(&sessionorch.Config{Tuning: config.Default()})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "Catalog")

	_, err = sessionorch.New(&sessionorch.Config{Catalog: s.catalog, Tuning: config.Tuning{}})
	s.Require().Error(err)
}

func (s *OrchestratorTestSuite) TestNilInputsRejected() {
	_, err := s.service.NewLevel(s.ctx, nil)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.service.SubmitAction(s.ctx, nil)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.service.Snapshot(s.ctx, nil)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.service.AdvanceRound(s.ctx, nil)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestOpsRequireGame() {
	testCases := []struct {
		name string
		call func() error
	}{
		{"submit action", func() error {
			_, err := s.service.SubmitAction(s.ctx, &session.SubmitActionInput{Action: entities.Wait()})
			return err
		}},
		{"collect intents", func() error {
			_, err := s.service.CollectIntents(s.ctx, &session.CollectIntentsInput{})
			return err
		}},
		{"advance round", func() error {
			_, err := s.service.AdvanceRound(s.ctx, &session.AdvanceRoundInput{})
			return err
		}},
		{"descend stairs", func() error {
			_, err := s.service.DescendStairs(s.ctx, &session.DescendStairsInput{})
			return err
		}},
		{"abandon", func() error {
			_, err := s.service.Abandon(s.ctx, &session.AbandonInput{})
			return err
		}},
		{"snapshot", func() error {
			_, err := s.service.Snapshot(s.ctx, &session.SnapshotInput{})
			return err
		}},
		{"outcome", func() error {
			_, err := s.service.Outcome(s.ctx, &session.OutcomeInput{})
			return err
		}},
		{"journal", func() error {
			_, err := s.service.Journal(s.ctx, &session.JournalInput{})
			return err
		}},
	}

	for _, tc := range testCases {
		err := tc.call()
		s.Require().Error(err, tc.name)
		s.Assert().True(errors.IsFailedPrecondition(err), "%s: %v", tc.name, err)
	}
}

func (s *OrchestratorTestSuite) TestNewLevelValidation() {
	input := standardLevel()
	input.Difficulty = -1
	_, err := s.service.NewLevel(s.ctx, input)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	input = standardLevel()
	input.Width = 0
	_, err = s.service.NewLevel(s.ctx, input)
	s.Require().Error(err)

	// Failed starts leave no game behind.
	_, err = s.service.Snapshot(s.ctx, &session.SnapshotInput{})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestNewLevelSpawnsWorld() {
	out, err := s.service.NewLevel(s.ctx, standardLevel())
	s.Require().NoError(err)
	s.Assert().Equal(1, out.Depth)
	s.Assert().Equal(1, out.Difficulty)
	s.Assert().Equal("entity_001", out.PlayerID)

	snap, err := s.service.Snapshot(s.ctx, &session.SnapshotInput{})
	s.Require().NoError(err)
	s.Assert().Equal(1, snap.Depth)
	s.Assert().Equal(1, snap.Turn)
	s.Assert().Equal(scheduler.StateAwaitingActions, snap.State)
	s.Assert().Equal(scheduler.OutcomeInProgress, snap.Outcome)
	s.Assert().Equal(out.PlayerID, snap.PlayerID)

	s.Require().NotNil(snap.Graph)
	s.Assert().Equal(40, snap.Graph.Width)
	s.Assert().Equal(20, snap.Graph.Height)
	s.Assert().Len(snap.Graph.Rooms, 6)

	s.Require().Len(snap.Entities, 1+out.Monsters+out.Items)

	var players, monsters, items int
	var player entities.Entity
	occupied := map[entities.Position]string{}
	for _, e := range snap.Entities {
		switch e.Kind {
		case entities.KindPlayer:
			players++
			player = e
		case entities.KindMonster:
			monsters++
			s.Assert().Positive(e.Stats.Health, e.ID)
			s.Assert().NotEmpty(e.AIPolicy, e.ID)
			s.Assert().NotEmpty(e.DefinitionID, e.ID)
		case entities.KindItem:
			items++
			s.Assert().NotEmpty(e.DefinitionID, e.ID)
		}

		s.Assert().True(walkableAt(snap.Graph, e.Position),
			"entity %s stands on an unwalkable tile %s", e.ID, e.Position)
		if e.Kind.Blocking() {
			prev, taken := occupied[e.Position]
			s.Assert().False(taken, "entities %s and %s share tile %s", prev, e.ID, e.Position)
			occupied[e.Position] = e.ID
		}
	}

	s.Assert().Equal(1, players)
	s.Assert().Equal(out.Monsters, monsters)
	s.Assert().Equal(out.Items, items)

	s.Assert().Equal(out.PlayerID, player.ID)
	s.Assert().Equal("Adventurer", player.Name)
	s.Assert().Equal("@", player.Glyph)
	s.Assert().Equal(entities.StatBlock{MaxHealth: 20, Health: 20, Attack: 3, Defense: 1, Speed: 2}, player.Stats)
	s.Assert().NotEqual(snap.Graph.Exit, player.Position)
}

func (s *OrchestratorTestSuite) TestNewLevelDeterminism() {
	input := &session.NewLevelInput{Seed: 7, Width: 30, Height: 30, TargetRoomCount: 4}

	a := s.newService(s.catalog, nil)
	_, err := a.NewLevel(s.ctx, input)
	s.Require().NoError(err)
	snapA, err := a.Snapshot(s.ctx, &session.SnapshotInput{})
	s.Require().NoError(err)

	b := s.newService(s.catalog, nil)
	_, err = b.NewLevel(s.ctx, input)
	s.Require().NoError(err)
	snapB, err := b.Snapshot(s.ctx, &session.SnapshotInput{})
	s.Require().NoError(err)

	s.Assert().Equal(snapA, snapB)
}

func (s *OrchestratorTestSuite) TestSubmitActionDefaultsToPlayer() {
	out, err := s.service.NewLevel(s.ctx, standardLevel())
	s.Require().NoError(err)

	submitted, err := s.service.SubmitAction(s.ctx, &session.SubmitActionInput{Action: entities.Wait()})
	s.Require().NoError(err)
	s.Assert().Equal(out.PlayerID, submitted.EntityID)

	_, err = s.service.SubmitAction(s.ctx, &session.SubmitActionInput{
		EntityID: "entity_999",
		Action:   entities.Wait(),
	})
	s.Require().Error(err)
}

func (s *OrchestratorTestSuite) TestCollectIntentsLeavesPlayerPending() {
	out, err := s.service.NewLevel(s.ctx, standardLevel())
	s.Require().NoError(err)

	intents, err := s.service.CollectIntents(s.ctx, &session.CollectIntentsInput{})
	s.Require().NoError(err)
	s.Assert().Len(intents.Intents, out.Monsters)
	for _, intent := range intents.Intents {
		s.Assert().NotEqual(out.PlayerID, intent.EntityID)
	}

	// The player never gets a policy decision; the round cannot resolve
	// until the host submits for them.
	_, err = s.service.AdvanceRound(s.ctx, &session.AdvanceRoundInput{})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))

	snap, err := s.service.Snapshot(s.ctx, &session.SnapshotInput{})
	s.Require().NoError(err)
	s.Assert().Equal(1, snap.Turn)
}

func (s *OrchestratorTestSuite) TestPlayRoundAdvancesTurn() {
	out, err := s.service.NewLevel(s.ctx, standardLevel())
	s.Require().NoError(err)

	report := s.playRound(s.service, entities.Wait())
	s.Assert().Equal(1, report.Turn)
	s.Assert().Equal(scheduler.OutcomeInProgress, report.Outcome)
	s.Assert().Len(report.Results, 1+out.Monsters)

	snap, err := s.service.Snapshot(s.ctx, &session.SnapshotInput{})
	s.Require().NoError(err)
	s.Assert().Equal(2, snap.Turn)
	s.Assert().Equal(scheduler.StateAwaitingActions, snap.State)
}

func (s *OrchestratorTestSuite) TestCrawlFightsThroughToStairs() {
	input := standardLevel()
	input.PlayerName = "Karn"
	input.PlayerStats = strongStats()
	_, err := s.service.NewLevel(s.ctx, input)
	s.Require().NoError(err)

	outcome := s.autoPlay(s.service, 400, exitGoal)
	s.Require().Equal(scheduler.OutcomePlayerWon, outcome.Outcome)
	s.Assert().True(outcome.Settled)

	// Every resolved round made it into the journal.
	j, err := s.service.Journal(s.ctx, &session.JournalInput{})
	s.Require().NoError(err)
	s.Require().NotNil(j.Record)
	s.Assert().Len(j.Record.Rounds, outcome.Turn)
	s.Assert().Equal("Karn", j.Record.Setup.PlayerName)
}

func (s *OrchestratorTestSuite) TestPlayerDeathSettlesGame() {
	catalog, err := content.LoadBytes([]byte(hunterDefs))
	s.Require().NoError(err)
	svc := s.newService(catalog, nil)

	input := standardLevel()
	input.Difficulty = 2
	input.PlayerName = "Doomed"
	input.PlayerStats = &entities.StatBlock{MaxHealth: 2, Health: 2, Attack: 1, Defense: 0, Speed: 1}
	out, err := svc.NewLevel(s.ctx, input)
	s.Require().NoError(err)
	s.Require().GreaterOrEqual(out.Monsters, 1)

	outcome := s.autoPlay(svc, 300, monsterGoal)
	s.Require().Equal(scheduler.OutcomePlayerLost, outcome.Outcome)
	s.Assert().True(outcome.Settled)

	// The board survives settlement for post-mortems, minus the corpse.
	snap, err := svc.Snapshot(s.ctx, &session.SnapshotInput{})
	s.Require().NoError(err)
	s.Assert().Equal(scheduler.StateSettled, snap.State)
	_, alive := findEntity(snap.Entities, out.PlayerID)
	s.Assert().False(alive)

	// A settled game accepts no more submissions.
	_, err = svc.SubmitAction(s.ctx, &session.SubmitActionInput{Action: entities.Wait()})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestScavengedItemIsConsumed() {
	catalog, err := content.LoadBytes([]byte(pantryDefs))
	s.Require().NoError(err)
	svc := s.newService(catalog, nil)

	input := standardLevel()
	input.Difficulty = 4
	out, err := svc.NewLevel(s.ctx, input)
	s.Require().NoError(err)
	s.Require().GreaterOrEqual(out.Items, 1)

	var use *scheduler.ItemUse
	for round := 0; round < 300 && use == nil; round++ {
		snap, err := svc.Snapshot(s.ctx, &session.SnapshotInput{})
		s.Require().NoError(err)
		player, ok := findEntity(snap.Entities, out.PlayerID)
		s.Require().True(ok, "player missing from snapshot")

		action := entities.Wait()
		if itemID, ok := itemUnderfoot(snap.Entities, player); ok {
			action = entities.UseItem(itemID)
		} else if targetID, ok := adjacentMonster(snap.Entities, player); ok {
			action = entities.Attack(targetID)
		} else if dest, ok := itemGoal(snap, player); ok {
			if dir, ok := pathStep(snap.Graph, player.Position, dest, snap.Graph.Exit); ok {
				action = entities.Move(dir)
			}
		}

		report := s.playRound(svc, action)
		if len(report.ItemUses) > 0 {
			use = &report.ItemUses[0]
		}
	}

	s.Require().NotNil(use, "player never reached an item")
	s.Assert().Equal(out.PlayerID, use.UserID)
	s.Assert().Equal("bread", use.DefinitionID)

	// The consumed item is gone from the board.
	snap, err := svc.Snapshot(s.ctx, &session.SnapshotInput{})
	s.Require().NoError(err)
	_, left := findEntity(snap.Entities, use.ItemID)
	s.Assert().False(left)
}

func (s *OrchestratorTestSuite) TestDescendStairsCarriesPlayer() {
	input := standardLevel()
	input.PlayerStats = strongStats()
	out, err := s.service.NewLevel(s.ctx, input)
	s.Require().NoError(err)

	outcome := s.autoPlay(s.service, 400, exitGoal)
	s.Require().Equal(scheduler.OutcomePlayerWon, outcome.Outcome)

	before, err := s.service.Snapshot(s.ctx, &session.SnapshotInput{})
	s.Require().NoError(err)
	survivor, ok := findEntity(before.Entities, out.PlayerID)
	s.Require().True(ok)

	desc, err := s.service.DescendStairs(s.ctx, &session.DescendStairsInput{})
	s.Require().NoError(err)
	s.Assert().Equal(2, desc.Depth)
	s.Assert().Equal(2, desc.Difficulty)
	s.Assert().Equal(out.PlayerID, desc.PlayerID)

	snap, err := s.service.Snapshot(s.ctx, &session.SnapshotInput{})
	s.Require().NoError(err)
	s.Assert().Equal(2, snap.Depth)
	s.Assert().Equal(1, snap.Turn)
	s.Assert().Equal(scheduler.OutcomeInProgress, snap.Outcome)

	player, ok := findEntity(snap.Entities, out.PlayerID)
	s.Require().True(ok)
	s.Assert().Equal(survivor.Stats, player.Stats, "stats should carry across levels")
	s.Assert().NotEqual(snap.Graph.Exit, player.Position)
	s.Assert().True(walkableAt(snap.Graph, player.Position))

	// The fresh level has to be won again before going deeper.
	_, err = s.service.DescendStairs(s.ctx, &session.DescendStairsInput{})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestDescendBeforeWinFails() {
	_, err := s.service.NewLevel(s.ctx, standardLevel())
	s.Require().NoError(err)

	_, err = s.service.DescendStairs(s.ctx, &session.DescendStairsInput{})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Contains(err.Error(), "in_progress")
}

func (s *OrchestratorTestSuite) TestAbandonReturnsRecordAndEndsGame() {
	_, err := s.service.NewLevel(s.ctx, standardLevel())
	s.Require().NoError(err)
	s.playRound(s.service, entities.Wait())

	ab, err := s.service.Abandon(s.ctx, &session.AbandonInput{})
	s.Require().NoError(err)
	s.Require().NotNil(ab.Record)
	s.Assert().Equal(int64(42), ab.Record.Setup.Seed)
	s.Assert().Equal(40, ab.Record.Setup.Width)
	s.Assert().Len(ab.Record.Rounds, 1)

	_, err = s.service.Snapshot(s.ctx, &session.SnapshotInput{})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))

	// A fresh game can start on the same orchestrator.
	_, err = s.service.NewLevel(s.ctx, standardLevel())
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestJournalTracksRounds() {
	_, err := s.service.NewLevel(s.ctx, standardLevel())
	s.Require().NoError(err)

	j, err := s.service.Journal(s.ctx, &session.JournalInput{})
	s.Require().NoError(err)
	s.Require().NotNil(j.Record)
	s.Assert().Equal(int64(42), j.Record.Setup.Seed)
	s.Assert().Equal("Adventurer", j.Record.Setup.PlayerName)
	s.Assert().Empty(j.Record.Rounds)

	s.playRound(s.service, entities.Wait())

	j, err = s.service.Journal(s.ctx, &session.JournalInput{})
	s.Require().NoError(err)
	s.Require().Len(j.Record.Rounds, 1)
	s.Assert().Equal(1, j.Record.Rounds[0].Digest.Turn)
}

func (s *OrchestratorTestSuite) TestJournalReplayReproducesCrawl() {
	input := standardLevel()
	input.PlayerStats = strongStats()
	_, err := s.service.NewLevel(s.ctx, input)
	s.Require().NoError(err)

	outcome := s.autoPlay(s.service, 400, exitGoal)
	s.Require().Equal(scheduler.OutcomePlayerWon, outcome.Outcome)

	_, err = s.service.DescendStairs(s.ctx, &session.DescendStairsInput{})
	s.Require().NoError(err)
	for i := 0; i < 2; i++ {
		s.playRound(s.service, entities.Wait())
	}

	j, err := s.service.Journal(s.ctx, &session.JournalInput{})
	s.Require().NoError(err)
	s.Require().NotNil(j.Record)
	s.Require().Equal(outcome.Turn+2, len(j.Record.Rounds))

	replayer, err := journal.NewReplayer(&journal.ReplayerConfig{
		Factory: sessionorch.ReplayFactory(&sessionorch.Config{
			Catalog: s.catalog,
			Tuning:  config.Default(),
		}),
	})
	s.Require().NoError(err)

	result, err := replayer.Replay(s.ctx, j.Record)
	s.Require().NoError(err)
	s.Assert().False(result.Diverged, result.Reason)
	s.Assert().Equal(len(j.Record.Rounds), result.RoundsPlayed)
}

func (s *OrchestratorTestSuite) TestEventsPublished() {
	bus := events.NewBus()
	var levels, spawns, moves, rounds, overs int
	var spawned []string
	var finalOutcome any
	bus.SubscribeFunc(sessionorch.TopicLevelGenerated, 0, func(_ context.Context, _ events.Event) error {
		levels++
		return nil
	})
	bus.SubscribeFunc(sessionorch.TopicEntitySpawned, 0, func(_ context.Context, e events.Event) error {
		spawns++
		if src := e.Source(); src != nil {
			spawned = append(spawned, src.GetID())
		}
		return nil
	})
	bus.SubscribeFunc(sessionorch.TopicEntityMoved, 0, func(_ context.Context, _ events.Event) error {
		moves++
		return nil
	})
	bus.SubscribeFunc(sessionorch.TopicRoundResolved, 0, func(_ context.Context, _ events.Event) error {
		rounds++
		return nil
	})
	bus.SubscribeFunc(sessionorch.TopicGameOver, 0, func(_ context.Context, e events.Event) error {
		overs++
		if v, ok := e.Context().Get("outcome"); ok {
			finalOutcome = v
		}
		return nil
	})

	svc := s.newService(s.catalog, bus)

	// A one-room board spawns nothing beyond the player and puts the
	// stairs a few steps away.
	out, err := svc.NewLevel(s.ctx, &session.NewLevelInput{Seed: 1, Width: 5, Height: 5, TargetRoomCount: 1})
	s.Require().NoError(err)
	s.Assert().Equal(1, levels)
	s.Require().Equal(1, spawns)
	s.Assert().Equal([]string{out.PlayerID}, spawned)

	outcome := s.autoPlay(svc, 20, exitGoal)
	s.Require().Equal(scheduler.OutcomePlayerWon, outcome.Outcome)

	s.Assert().Equal(1, overs)
	s.Assert().Equal("player_won", finalOutcome)
	s.Assert().GreaterOrEqual(moves, 1)
	s.Assert().Equal(outcome.Turn, rounds)
}

// playRound submits the player action, collects monster intents, and
// resolves the round.
func (s *OrchestratorTestSuite) playRound(svc session.Service, action entities.Action) *scheduler.RoundReport {
	_, err := svc.SubmitAction(s.ctx, &session.SubmitActionInput{Action: action})
	s.Require().NoError(err)
	_, err = svc.CollectIntents(s.ctx, &session.CollectIntentsInput{})
	s.Require().NoError(err)
	out, err := svc.AdvanceRound(s.ctx, &session.AdvanceRoundInput{})
	s.Require().NoError(err)
	s.Require().NotNil(out.Report)
	return out.Report
}

// autoPlay drives the player with a scripted policy until the game
// settles or maxRounds pass: attack an adjacent monster if there is
// one, otherwise take a shortest-path step toward the goal.
func (s *OrchestratorTestSuite) autoPlay(
	svc session.Service,
	maxRounds int,
	goal func(snap *session.SnapshotOutput, player entities.Entity) (entities.Position, bool),
) *session.OutcomeOutput {
	for round := 0; round < maxRounds; round++ {
		outcome, err := svc.Outcome(s.ctx, &session.OutcomeInput{})
		s.Require().NoError(err)
		if outcome.Settled {
			return outcome
		}

		snap, err := svc.Snapshot(s.ctx, &session.SnapshotInput{})
		s.Require().NoError(err)
		player, ok := findEntity(snap.Entities, snap.PlayerID)
		s.Require().True(ok, "player missing from snapshot")

		action := entities.Wait()
		if targetID, ok := adjacentMonster(snap.Entities, player); ok {
			action = entities.Attack(targetID)
		} else if dest, ok := goal(snap, player); ok {
			// Never cross the stairs on the way to somewhere else; that
			// would end the game early.
			var avoid []entities.Position
			if dest != snap.Graph.Exit {
				avoid = append(avoid, snap.Graph.Exit)
			}
			if dir, ok := pathStep(snap.Graph, player.Position, dest, avoid...); ok {
				action = entities.Move(dir)
			}
		}
		s.playRound(svc, action)
	}

	outcome, err := svc.Outcome(s.ctx, &session.OutcomeInput{})
	s.Require().NoError(err)
	return outcome
}

// exitGoal steers the player toward the stairs.
func exitGoal(snap *session.SnapshotOutput, _ entities.Entity) (entities.Position, bool) {
	return snap.Graph.Exit, true
}

// monsterGoal steers the player toward the nearest living monster.
func monsterGoal(snap *session.SnapshotOutput, player entities.Entity) (entities.Position, bool) {
	var best entities.Position
	bestDist := -1
	for _, e := range snap.Entities {
		if e.Kind != entities.KindMonster || e.Stats.Health <= 0 {
			continue
		}
		if d := player.Position.ManhattanDistance(e.Position); bestDist < 0 || d < bestDist {
			bestDist, best = d, e.Position
		}
	}
	return best, bestDist >= 0
}

// itemGoal steers the player toward the nearest item on the floor.
func itemGoal(snap *session.SnapshotOutput, player entities.Entity) (entities.Position, bool) {
	var best entities.Position
	bestDist := -1
	for _, e := range snap.Entities {
		if e.Kind != entities.KindItem {
			continue
		}
		if d := player.Position.ManhattanDistance(e.Position); bestDist < 0 || d < bestDist {
			bestDist, best = d, e.Position
		}
	}
	return best, bestDist >= 0
}

func findEntity(list []entities.Entity, id string) (entities.Entity, bool) {
	for _, e := range list {
		if e.ID == id {
			return e, true
		}
	}
	return entities.Entity{}, false
}

// adjacentMonster returns the lowest-id living monster within reach.
func adjacentMonster(list []entities.Entity, player entities.Entity) (string, bool) {
	for _, e := range list {
		if e.Kind == entities.KindMonster && e.Stats.Health > 0 &&
			e.Position.ManhattanDistance(player.Position) == 1 {
			return e.ID, true
		}
	}
	return "", false
}

// itemUnderfoot returns an item sharing the player's tile.
func itemUnderfoot(list []entities.Entity, player entities.Entity) (string, bool) {
	for _, e := range list {
		if e.Kind == entities.KindItem && e.Position == player.Position {
			return e.ID, true
		}
	}
	return "", false
}

func walkableAt(g *dungeon.Snapshot, p entities.Position) bool {
	if p.X < 0 || p.Y < 0 || p.X >= g.Width || p.Y >= g.Height {
		return false
	}
	return g.Tiles[p.Y][p.X].IsWalkable()
}

// pathStep returns the first move of a shortest walkable path from one
// tile to another, ignoring entity occupancy and detouring around any
// avoid tiles.
func pathStep(g *dungeon.Snapshot, from, to entities.Position, avoid ...entities.Position) (entities.Direction, bool) {
	if from == to {
		return "", false
	}
	blocked := make(map[entities.Position]bool, len(avoid))
	for _, p := range avoid {
		blocked[p] = true
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
		if !walkableAt(g, next) || visited[next] || blocked[next] {
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
			if !walkableAt(g, next) || visited[next] || blocked[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, node{pos: next, first: cur.first})
		}
	}
	return "", false
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
