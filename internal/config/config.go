// Package config holds the engine tuning knobs. Every rule constant the
// simulation consults (crit chance, adjacency model, room-size minimums,
// population densities) lives here so hosts can rebalance without code
// changes.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ziyadedher/skrish/internal/errors"
)

// AdjacencyMode selects which tiles count as adjacent for melee combat
type AdjacencyMode string

// Adjacency modes
const (
	FourWay  AdjacencyMode = "four_way"
	EightWay AdjacencyMode = "eight_way"
)

// Valid reports whether the mode is known
func (m AdjacencyMode) Valid() bool {
	return m == FourWay || m == EightWay
}

// Tuning is the full set of engine constants
type Tuning struct {
	// CritChance is the base critical-hit probability in [0,1].
	CritChance float64 `yaml:"crit_chance"`
	// CritMultiplier scales damage on a critical hit.
	CritMultiplier int `yaml:"crit_multiplier"`
	// Adjacency is the melee adjacency model.
	Adjacency AdjacencyMode `yaml:"adjacency"`
	// FocusedCritBonus is added to crit chance while the attacker is focused.
	FocusedCritBonus float64 `yaml:"focused_crit_bonus"`
	// BlindedCritPenalty is subtracted from crit chance while the attacker
	// is blinded.
	BlindedCritPenalty float64 `yaml:"blinded_crit_penalty"`
	// PoisonDamage is dealt to poisoned entities each round tick.
	PoisonDamage int `yaml:"poison_damage"`
	// PoisonDuration is the rounds of poison a venomous hit applies.
	PoisonDuration int `yaml:"poison_duration"`
	// HasteSpeedBonus is added to effective speed while hasted.
	HasteSpeedBonus int `yaml:"haste_speed_bonus"`
	// MinRoomSize is the minimum interior width and height of a room.
	MinRoomSize int `yaml:"min_room_size"`
	// CarveRetries bounds re-carve attempts for unreachable rooms before
	// the generator falls back to a direct corridor.
	CarveRetries int `yaml:"carve_retries"`
	// MonsterDensity scales monsters per room per difficulty point.
	MonsterDensity float64 `yaml:"monster_density"`
	// ItemDensity scales items per room per difficulty point.
	ItemDensity float64 `yaml:"item_density"`
}

// Default returns the stock tuning
func Default() Tuning {
	return Tuning{
		CritChance:         0.05,
		CritMultiplier:     2,
		Adjacency:          FourWay,
		FocusedCritBonus:   0.25,
		BlindedCritPenalty: 0.25,
		PoisonDamage:       1,
		PoisonDuration:     3,
		HasteSpeedBonus:    2,
		MinRoomSize:        3,
		CarveRetries:       3,
		MonsterDensity:     0.5,
		ItemDensity:        0.25,
	}
}

// Validate checks that the tuning holds a coherent set of values
func (t Tuning) Validate() error {
	vb := errors.NewValidationBuilder()

	if t.CritChance < 0 || t.CritChance > 1 {
		vb.Fieldf("crit_chance", "must be in [0,1], got %v", t.CritChance)
	}
	if t.CritMultiplier < 1 {
		vb.Fieldf("crit_multiplier", "must be at least 1, got %d", t.CritMultiplier)
	}
	if !t.Adjacency.Valid() {
		vb.Fieldf("adjacency", "must be %q or %q, got %q", FourWay, EightWay, t.Adjacency)
	}
	if t.FocusedCritBonus < 0 || t.FocusedCritBonus > 1 {
		vb.Fieldf("focused_crit_bonus", "must be in [0,1], got %v", t.FocusedCritBonus)
	}
	if t.BlindedCritPenalty < 0 || t.BlindedCritPenalty > 1 {
		vb.Fieldf("blinded_crit_penalty", "must be in [0,1], got %v", t.BlindedCritPenalty)
	}
	errors.ValidateNonNegative("poison_damage", t.PoisonDamage, vb)
	errors.ValidateNonNegative("poison_duration", t.PoisonDuration, vb)
	errors.ValidateNonNegative("haste_speed_bonus", t.HasteSpeedBonus, vb)
	errors.ValidatePositive("min_room_size", t.MinRoomSize, vb)
	errors.ValidateNonNegative("carve_retries", t.CarveRetries, vb)
	if t.MonsterDensity < 0 {
		vb.Fieldf("monster_density", "must not be negative, got %v", t.MonsterDensity)
	}
	if t.ItemDensity < 0 {
		vb.Fieldf("item_density", "must not be negative, got %v", t.ItemDensity)
	}

	return vb.Build()
}

// Load reads the YAML tuning file at path. Omitted fields keep their
// defaults.
func Load(path string) (Tuning, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	t, err := LoadFromReader(f)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return t, nil
}

// LoadFromReader decodes YAML tuning from r over the defaults and
// validates the result. Unknown fields are rejected.
func LoadFromReader(r io.Reader) (Tuning, error) {
	t := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if err == io.EOF {
			// Empty document means all defaults.
			return t, nil
		}
		return Tuning{}, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}
