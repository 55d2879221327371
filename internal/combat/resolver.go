// Package combat resolves melee attacks between registered entities.
// The resolver reads combatants through the entity store, rolls
// critical hits on the shared stream, and applies damage exclusively
// through the store so the registry stays the single source of truth.
package combat

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/ziyadedher/skrish/internal/config"
	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/errors"
)

//go:generate mockgen -destination=mock/mock_store.go -package=combatmock github.com/ziyadedher/skrish/internal/combat EntityStore

// EntityStore is the slice of the registry the resolver depends on
type EntityStore interface {
	Get(id string) (*entities.Entity, error)
	ApplyDamage(id string, amount int) (died bool, err error)
	ApplyStatus(id string, effect entities.StatusEffect, duration int) error
}

// critDie is the die rolled for critical hits: one roll per attack,
// giving crit chance a 0.01% resolution.
const critDie = 10000

// AttackInput identifies the combatants
type AttackInput struct {
	AttackerID string
	DefenderID string
}

// AttackOutput reports what the attack did
type AttackOutput struct {
	DamageDealt  int
	WasCritical  bool
	DefenderDied bool
}

// Config holds the resolver dependencies
type Config struct {
	Store  EntityStore
	Roller dice.Roller
	Tuning config.Tuning
	Logger *slog.Logger
}

// Validate ensures the config is complete
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if err := vb.Build(); err != nil {
		return err
	}
	return c.Tuning.Validate()
}

// Resolver applies the melee combat rules
type Resolver struct {
	store  EntityStore
	roller dice.Roller
	tuning config.Tuning
	logger *slog.Logger
}

// New creates a resolver from the config
func New(cfg *Config) (*Resolver, error) {
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

	return &Resolver{
		store:  cfg.Store,
		roller: cfg.Roller,
		tuning: cfg.Tuning,
		logger: logger,
	}, nil
}

// ResolveAttack resolves a single melee attack.
//
// Damage is attack minus defense floored at 1, doubled (by tuning) on a
// critical hit, then halved (still at least 1) against a shielded
// defender. A venomous attacker poisons the defender. Exactly one
// critical-hit roll is drawn per resolved attack, whatever the
// effective chance, so the stream position depends only on the number
// of attacks resolved.
func (r *Resolver) ResolveAttack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.AttackerID == "" {
		return nil, errors.InvalidArgument("attacker ID is required")
	}
	if input.DefenderID == "" {
		return nil, errors.InvalidArgument("defender ID is required")
	}

	attacker, err := r.store.Get(input.AttackerID)
	if err != nil {
		return nil, r.invalidTarget(input, "attacker %s not found", input.AttackerID)
	}
	defender, err := r.store.Get(input.DefenderID)
	if err != nil {
		return nil, r.invalidTarget(input, "defender %s not found", input.DefenderID)
	}

	if !attacker.IsAlive() {
		return nil, r.invalidTarget(input, "attacker %s is dead", input.AttackerID)
	}
	if !attacker.Kind.CanAttack() {
		return nil, r.invalidTarget(input, "%s cannot attack", input.AttackerID)
	}
	if !defender.IsAlive() {
		return nil, r.invalidTarget(input, "defender %s is dead", input.DefenderID)
	}
	if !r.adjacent(attacker.Position, defender.Position) {
		return nil, r.invalidTarget(input, "%s at %s cannot reach %s at %s",
			input.AttackerID, attacker.Position, input.DefenderID, defender.Position)
	}

	damage := attacker.Stats.Attack - defender.Stats.Defense
	if damage < 1 {
		damage = 1
	}

	crit, err := r.rollCritical(attacker)
	if err != nil {
		return nil, errors.Wrap(err, "critical roll failed")
	}
	if crit {
		damage *= r.tuning.CritMultiplier
	}

	if defender.HasStatus(entities.StatusShielded) {
		damage /= 2
		if damage < 1 {
			damage = 1
		}
	}

	died, err := r.store.ApplyDamage(input.DefenderID, damage)
	if err != nil {
		return nil, errors.Wrapf(err, "applying %d damage to %s", damage, input.DefenderID)
	}

	if attacker.HasStatus(entities.StatusVenomous) {
		if err := r.store.ApplyStatus(input.DefenderID, entities.StatusPoisoned, r.tuning.PoisonDuration); err != nil {
			return nil, errors.Wrapf(err, "poisoning %s", input.DefenderID)
		}
	}

	r.logger.Debug("attack resolved",
		"attacker_id", input.AttackerID,
		"defender_id", input.DefenderID,
		"damage", damage,
		"critical", crit,
		"defender_died", died,
	)

	return &AttackOutput{
		DamageDealt:  damage,
		WasCritical:  crit,
		DefenderDied: died,
	}, nil
}

// rollCritical draws the per-attack critical roll. Focused raises the
// effective chance, blinded lowers it, and the result is clamped to
// [0,1] before the roll.
func (r *Resolver) rollCritical(attacker *entities.Entity) (bool, error) {
	chance := r.tuning.CritChance
	if attacker.HasStatus(entities.StatusFocused) {
		chance += r.tuning.FocusedCritBonus
	}
	if attacker.HasStatus(entities.StatusBlinded) {
		chance -= r.tuning.BlindedCritPenalty
	}
	if chance < 0 {
		chance = 0
	}
	if chance > 1 {
		chance = 1
	}

	roll, err := r.roller.Roll(critDie)
	if err != nil {
		return false, err
	}
	return roll <= int(math.Round(chance*critDie)), nil
}

func (r *Resolver) adjacent(a, b entities.Position) bool {
	if r.tuning.Adjacency == config.EightWay {
		return a.ChebyshevDistance(b) == 1
	}
	return a.ManhattanDistance(b) == 1
}

func (r *Resolver) invalidTarget(input *AttackInput, format string, args ...any) error {
	return errors.InvalidTargetf(format, args...).
		WithMeta("attacker_id", input.AttackerID).
		WithMeta("defender_id", input.DefenderID)
}
