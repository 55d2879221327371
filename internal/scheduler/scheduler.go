// Package scheduler drives the round-based turn loop. Every live actor
// owes exactly one action per round; once all are in, AdvanceRound
// executes them in initiative order, ticks status effects, sweeps the
// dead, and evaluates the outcome.
//
// The scheduler never blocks waiting for input: AwaitingActions is a
// logical suspension point, and the caller decides how to gather the
// missing submissions reported by PendingActors.
package scheduler

import (
	"context"
	"log/slog"
	"sort"

	"github.com/ziyadedher/skrish/internal/combat"
	"github.com/ziyadedher/skrish/internal/config"
	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/errors"
)

//go:generate mockgen -destination=mock/mock_deps.go -package=schedulermock github.com/ziyadedher/skrish/internal/scheduler EntityStore,AttackResolver,ItemEffects

// EntityStore is the slice of the registry the scheduler drives
type EntityStore interface {
	Get(id string) (*entities.Entity, error)
	Snapshot() []entities.Entity
	Player() (string, bool)
	Move(id string, to entities.Position) error
	ApplyDamage(id string, amount int) (died bool, err error)
	ItemsAt(pos entities.Position) []string
	TickStatuses()
	SweepDead() []string
}

// AttackResolver resolves melee attacks
type AttackResolver interface {
	ResolveAttack(ctx context.Context, input *combat.AttackInput) (*combat.AttackOutput, error)
}

// ItemEffects applies a consumable's effect to its user and disposes of
// the item.
type ItemEffects interface {
	Apply(userID, itemID string) error
}

// State is the scheduler's lifecycle phase
type State string

// Scheduler states
const (
	StateAwaitingActions State = "awaiting_actions"
	StateResolving       State = "resolving"
	StateSettled         State = "settled"
)

// Outcome is the game result as far as the scheduler can tell
type Outcome string

// Outcomes
const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomePlayerWon  Outcome = "player_won"
	OutcomePlayerLost Outcome = "player_lost"
)

// ActionResult records one executed action in initiative order
type ActionResult struct {
	EntityID string          `json:"entity_id"`
	Action   entities.Action `json:"action"`
}

// Rejection records an action that degraded to Wait. Cause keeps the
// original failure code so callers can tell a blocked move from a bad
// target.
type Rejection struct {
	EntityID  string          `json:"entity_id"`
	Action    entities.Action `json:"action"`
	CauseCode errors.Code     `json:"cause_code"`
	Cause     string          `json:"cause"`
}

// MoveEvent records a completed move
type MoveEvent struct {
	EntityID string            `json:"entity_id"`
	From     entities.Position `json:"from"`
	To       entities.Position `json:"to"`
}

// DamageEvent records health lost to an attack or a poison tick
type DamageEvent struct {
	// AttackerID is empty for poison ticks.
	AttackerID string `json:"attacker_id,omitempty"`
	DefenderID string `json:"defender_id"`
	Amount     int    `json:"amount"`
	Critical   bool   `json:"critical,omitempty"`
	Fatal      bool   `json:"fatal,omitempty"`
	Source     string `json:"source"`
}

// Damage sources
const (
	DamageSourceAttack = "attack"
	DamageSourcePoison = "poison"
)

// ItemUse records a consumed item
type ItemUse struct {
	UserID       string `json:"user_id"`
	ItemID       string `json:"item_id"`
	DefinitionID string `json:"definition_id,omitempty"`
}

// RoundReport is the full record of one resolved round
type RoundReport struct {
	Turn       int            `json:"turn"`
	Results    []ActionResult `json:"results"`
	Rejections []Rejection    `json:"rejections,omitempty"`
	Moves      []MoveEvent    `json:"moves,omitempty"`
	Damage     []DamageEvent  `json:"damage,omitempty"`
	ItemUses   []ItemUse      `json:"item_uses,omitempty"`
	Deaths     []string       `json:"deaths,omitempty"`
	Outcome    Outcome        `json:"outcome"`
}

// Config holds the scheduler dependencies
type Config struct {
	Store    EntityStore
	Resolver AttackResolver
	Effects  ItemEffects
	// ExitTile is where the player must stand to win the level.
	ExitTile entities.Position
	Tuning   config.Tuning
	Logger   *slog.Logger
}

// Validate ensures the config is complete
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.Effects == nil {
		vb.RequiredField("Effects")
	}
	if err := vb.Build(); err != nil {
		return err
	}
	return c.Tuning.Validate()
}

// Scheduler runs the AwaitingActions -> Resolving -> Settled loop
type Scheduler struct {
	store    EntityStore
	resolver AttackResolver
	effects  ItemEffects
	exit     entities.Position
	tuning   config.Tuning
	logger   *slog.Logger

	state   State
	outcome Outcome
	turn    int
	pending map[string]entities.Action
}

// New creates a scheduler at turn 1, awaiting the first round of
// actions.
func New(cfg *Config) (*Scheduler, error) {
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

	return &Scheduler{
		store:    cfg.Store,
		resolver: cfg.Resolver,
		effects:  cfg.Effects,
		exit:     cfg.ExitTile,
		tuning:   cfg.Tuning,
		logger:   logger,
		state:    StateAwaitingActions,
		outcome:  OutcomeInProgress,
		turn:     1,
		pending:  map[string]entities.Action{},
	}, nil
}

// State returns the current lifecycle phase
func (s *Scheduler) State() State {
	return s.state
}

// Outcome returns the game result so far
func (s *Scheduler) Outcome() Outcome {
	return s.outcome
}

// Turn returns the current round number, starting at 1. Once settled it
// stays at the round the game ended on.
func (s *Scheduler) Turn() int {
	return s.turn
}

// SubmitAction records an entity's action for the current round,
// replacing any earlier submission. Structural problems (unknown actor,
// actor that cannot act, malformed action) are rejected here; semantic
// failures like blocked moves surface later as round-report rejections.
func (s *Scheduler) SubmitAction(id string, action entities.Action) error {
	if s.state == StateSettled {
		return errors.FailedPreconditionf("game is settled: %s", s.outcome)
	}
	if id == "" {
		return errors.InvalidArgument("entity id is required")
	}

	e, err := s.store.Get(id)
	if err != nil {
		return err
	}
	if !e.Kind.CanAct() {
		return errors.InvalidArgumentf("%s entities do not act", e.Kind)
	}
	if !e.IsAlive() {
		return errors.FailedPreconditionf("entity %s is dead", id)
	}
	if err := validateShape(action); err != nil {
		return err
	}

	s.pending[id] = action
	return nil
}

// validateShape rejects structurally malformed actions. Whether the
// action can actually succeed is resolved during the round.
func validateShape(action entities.Action) error {
	switch action.Kind {
	case entities.ActionMove:
		if !action.Direction.Valid() {
			return errors.InvalidArgumentf("unknown direction: %q", action.Direction)
		}
	case entities.ActionAttack:
		if action.TargetID == "" {
			return errors.InvalidArgument("attack requires a target id")
		}
	case entities.ActionUseItem:
		if action.ItemID == "" {
			return errors.InvalidArgument("use_item requires an item id")
		}
	case entities.ActionWait:
	default:
		return errors.InvalidArgumentf("unknown action kind: %q", action.Kind)
	}
	return nil
}

// PendingActors returns the live actors still owing an action this
// round, in ascending id order. The round cannot resolve until this is
// empty.
func (s *Scheduler) PendingActors() []string {
	if s.state == StateSettled {
		return nil
	}

	var pending []string
	for _, e := range s.store.Snapshot() {
		if !e.Kind.CanAct() || !e.IsAlive() {
			continue
		}
		if _, ok := s.pending[e.ID]; !ok {
			pending = append(pending, e.ID)
		}
	}
	return pending
}

// AdvanceRound resolves the current round: every submitted action runs
// in initiative order (descending effective speed, ties by ascending
// id), then statuses tick, poison bites, the dead are swept, and the
// outcome is evaluated. Fails with FAILED_PRECONDITION while actions
// are missing or after the game settled; the round itself never aborts
// for a single entity's bad action.
func (s *Scheduler) AdvanceRound(ctx context.Context) (*RoundReport, error) {
	if s.state == StateSettled {
		return nil, errors.FailedPreconditionf("game is settled: %s", s.outcome)
	}
	if missing := s.PendingActors(); len(missing) > 0 {
		return nil, errors.FailedPrecondition("round is not ready to resolve").
			WithMeta("missing", missing)
	}

	s.state = StateResolving
	report := &RoundReport{Turn: s.turn}

	for _, id := range s.initiativeOrder() {
		actor, err := s.store.Get(id)
		if err != nil || !actor.IsAlive() {
			// Killed earlier this round; the submitted action lapses.
			continue
		}
		s.executeAction(ctx, report, actor, s.pending[id])
	}

	s.tickPoison(report)
	s.store.TickStatuses()
	report.Deaths = s.store.SweepDead()

	s.pending = map[string]entities.Action{}
	report.Outcome = s.evaluateOutcome()
	s.outcome = report.Outcome

	if s.outcome == OutcomeInProgress {
		s.turn++
		s.state = StateAwaitingActions
	} else {
		s.state = StateSettled
		s.logger.Info("game settled",
			"outcome", s.outcome,
			"turn", report.Turn,
		)
	}

	return report, nil
}

// initiativeOrder sorts this round's actors by descending effective
// speed (haste counts), breaking ties by ascending id.
func (s *Scheduler) initiativeOrder() []string {
	type slot struct {
		id    string
		speed int
	}

	var order []slot
	for _, e := range s.store.Snapshot() {
		if _, ok := s.pending[e.ID]; !ok {
			continue
		}
		speed := e.Stats.Speed
		if e.HasStatus(entities.StatusHasted) {
			speed += s.tuning.HasteSpeedBonus
		}
		order = append(order, slot{id: e.ID, speed: speed})
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].speed != order[j].speed {
			return order[i].speed > order[j].speed
		}
		return order[i].id < order[j].id
	})

	ids := make([]string, len(order))
	for i, o := range order {
		ids[i] = o.id
	}
	return ids
}

// executeAction runs a single entity's action, degrading failures to
// Wait and recording them as rejections.
func (s *Scheduler) executeAction(ctx context.Context, report *RoundReport, actor *entities.Entity, action entities.Action) {
	executed := action

	switch action.Kind {
	case entities.ActionMove:
		to := actor.Position.Translate(action.Direction)
		if err := s.store.Move(actor.ID, to); err != nil {
			s.reject(report, actor.ID, action, err)
			executed = entities.Wait()
			break
		}
		report.Moves = append(report.Moves, MoveEvent{EntityID: actor.ID, From: actor.Position, To: to})

	case entities.ActionAttack:
		out, err := s.resolver.ResolveAttack(ctx, &combat.AttackInput{
			AttackerID: actor.ID,
			DefenderID: action.TargetID,
		})
		if err != nil {
			s.reject(report, actor.ID, action, err)
			executed = entities.Wait()
			break
		}
		report.Damage = append(report.Damage, DamageEvent{
			AttackerID: actor.ID,
			DefenderID: action.TargetID,
			Amount:     out.DamageDealt,
			Critical:   out.WasCritical,
			Fatal:      out.DefenderDied,
			Source:     DamageSourceAttack,
		})

	case entities.ActionUseItem:
		use, err := s.useItem(actor, action.ItemID)
		if err != nil {
			s.reject(report, actor.ID, action, err)
			executed = entities.Wait()
			break
		}
		report.ItemUses = append(report.ItemUses, use)

	case entities.ActionWait:
	}

	report.Results = append(report.Results, ActionResult{EntityID: actor.ID, Action: executed})
}

// useItem validates possession by position and delegates the effect to
// the item table. The item entity must lie on the actor's own tile.
func (s *Scheduler) useItem(actor *entities.Entity, itemID string) (ItemUse, error) {
	if !actor.Kind.CanUseItem() {
		return ItemUse{}, errors.InvalidActionf("%s entities cannot use items", actor.Kind).
			WithMeta("id", actor.ID)
	}

	underfoot := false
	for _, id := range s.store.ItemsAt(actor.Position) {
		if id == itemID {
			underfoot = true
			break
		}
	}
	if !underfoot {
		return ItemUse{}, errors.InvalidActionf("item %s is not at %s", itemID, actor.Position).
			WithMeta("id", actor.ID).
			WithMeta("item_id", itemID)
	}

	item, err := s.store.Get(itemID)
	if err != nil {
		return ItemUse{}, err
	}
	if err := s.effects.Apply(actor.ID, itemID); err != nil {
		return ItemUse{}, err
	}

	return ItemUse{UserID: actor.ID, ItemID: itemID, DefinitionID: item.DefinitionID}, nil
}

// reject converts a failed action into a Wait and records why. The
// original failure code rides along in CauseCode.
func (s *Scheduler) reject(report *RoundReport, id string, action entities.Action, cause error) {
	report.Rejections = append(report.Rejections, Rejection{
		EntityID:  id,
		Action:    action,
		CauseCode: errors.GetCode(cause),
		Cause:     errors.GetMessage(cause),
	})
	s.logger.Debug("action rejected",
		"entity_id", id,
		"action", action.Kind,
		"cause", cause,
	)
}

// tickPoison deals the per-round poison damage to every living poisoned
// entity, in ascending id order.
func (s *Scheduler) tickPoison(report *RoundReport) {
	if s.tuning.PoisonDamage <= 0 {
		return
	}

	for _, e := range s.store.Snapshot() {
		if !e.IsAlive() || !e.HasStatus(entities.StatusPoisoned) {
			continue
		}
		died, err := s.store.ApplyDamage(e.ID, s.tuning.PoisonDamage)
		if err != nil {
			s.logger.Error("poison tick failed", "entity_id", e.ID, "error", err)
			continue
		}
		report.Damage = append(report.Damage, DamageEvent{
			DefenderID: e.ID,
			Amount:     s.tuning.PoisonDamage,
			Fatal:      died,
			Source:     DamageSourcePoison,
		})
	}
}

// evaluateOutcome is called after the sweep: a swept player is a loss,
// a player standing on the stairs is a win.
func (s *Scheduler) evaluateOutcome() Outcome {
	playerID, ok := s.store.Player()
	if !ok {
		return OutcomePlayerLost
	}
	player, err := s.store.Get(playerID)
	if err != nil || !player.IsAlive() {
		return OutcomePlayerLost
	}
	if player.Position == s.exit {
		return OutcomePlayerWon
	}
	return OutcomeInProgress
}
