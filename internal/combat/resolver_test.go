package combat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ziyadedher/skrish/internal/combat"
	"github.com/ziyadedher/skrish/internal/config"
	"github.com/ziyadedher/skrish/internal/dungeon"
	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/errors"
	"github.com/ziyadedher/skrish/internal/pkg/rng"
	"github.com/ziyadedher/skrish/internal/registry"
)

type ResolverTestSuite struct {
	suite.Suite
	ctx context.Context
	reg *registry.Registry
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

// Fixture layout on the 5x5 single-room level: player at (1,1) and
// monster at (2,1) stand adjacent under both adjacency models.
func (s *ResolverTestSuite) SetupTest() {
	s.ctx = context.Background()

	gen, err := dungeon.New(&dungeon.Config{Tuning: config.Default()})
	s.Require().NoError(err)
	out, err := gen.Generate(s.ctx, &dungeon.GenerateInput{
		Seed:            1,
		Width:           5,
		Height:          5,
		TargetRoomCount: 1,
	})
	s.Require().NoError(err)

	reg, err := registry.New(&registry.Config{Graph: out.Graph})
	s.Require().NoError(err)
	s.reg = reg

	s.Require().NoError(s.reg.Add(&entities.Entity{
		ID:       "p-001",
		Kind:     entities.KindPlayer,
		Position: entities.Position{X: 1, Y: 1},
		Stats:    entities.StatBlock{MaxHealth: 10, Health: 10, Attack: 3, Defense: 1, Speed: 2},
	}))
	s.Require().NoError(s.reg.Add(&entities.Entity{
		ID:       "m-001",
		Kind:     entities.KindMonster,
		Position: entities.Position{X: 2, Y: 1},
		Stats:    entities.StatBlock{MaxHealth: 8, Health: 8, Attack: 2, Defense: 0, Speed: 1},
	}))
}

// resolver builds a resolver over the suite registry with the given
// tuning. Crit behavior is pinned by tuning probabilities of 0 or 1
// rather than by stream inspection.
func (s *ResolverTestSuite) resolver(tuning config.Tuning) *combat.Resolver {
	r, err := combat.New(&combat.Config{
		Store:  s.reg,
		Roller: rng.New(7),
		Tuning: tuning,
	})
	s.Require().NoError(err)
	return r
}

func noCrit() config.Tuning {
	t := config.Default()
	t.CritChance = 0
	t.FocusedCritBonus = 0
	t.BlindedCritPenalty = 0
	return t
}

func alwaysCrit() config.Tuning {
	t := config.Default()
	t.CritChance = 1
	return t
}

func (s *ResolverTestSuite) TestNewValidation() {
	_, err := combat.New(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = combat.New(&combat.Config{Roller: rng.New(1), Tuning: config.Default()})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = combat.New(&combat.Config{Store: s.reg, Tuning: config.Default()})
	s.Assert().True(errors.IsInvalidArgument(err))

	bad := config.Default()
	bad.CritChance = 2
	_, err = combat.New(&combat.Config{Store: s.reg, Roller: rng.New(1), Tuning: bad})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ResolverTestSuite) TestInputValidation() {
	r := s.resolver(noCrit())

	_, err := r.ResolveAttack(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = r.ResolveAttack(s.ctx, &combat.AttackInput{DefenderID: "m-001"})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = r.ResolveAttack(s.ctx, &combat.AttackInput{AttackerID: "p-001"})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ResolverTestSuite) TestPlainHit() {
	r := s.resolver(noCrit())

	out, err := r.ResolveAttack(s.ctx, &combat.AttackInput{AttackerID: "p-001", DefenderID: "m-001"})
	s.Require().NoError(err)
	s.Assert().Equal(3, out.DamageDealt)
	s.Assert().False(out.WasCritical)
	s.Assert().False(out.DefenderDied)

	defender, err := s.reg.Get("m-001")
	s.Require().NoError(err)
	s.Assert().Equal(5, defender.Stats.Health)
}

func (s *ResolverTestSuite) TestDamageFloorsAtOne() {
	s.Require().NoError(s.reg.AdjustDefense("m-001", 10))
	r := s.resolver(noCrit())

	out, err := r.ResolveAttack(s.ctx, &combat.AttackInput{AttackerID: "p-001", DefenderID: "m-001"})
	s.Require().NoError(err)
	s.Assert().Equal(1, out.DamageDealt)
}

func (s *ResolverTestSuite) TestCriticalHitDoubles() {
	r := s.resolver(alwaysCrit())

	out, err := r.ResolveAttack(s.ctx, &combat.AttackInput{AttackerID: "p-001", DefenderID: "m-001"})
	s.Require().NoError(err)
	s.Assert().True(out.WasCritical)
	s.Assert().Equal(6, out.DamageDealt)
}

func (s *ResolverTestSuite) TestFocusedRaisesCritChance() {
	tuning := noCrit()
	tuning.FocusedCritBonus = 1
	s.Require().NoError(s.reg.ApplyStatus("p-001", entities.StatusFocused, 3))
	r := s.resolver(tuning)

	out, err := r.ResolveAttack(s.ctx, &combat.AttackInput{AttackerID: "p-001", DefenderID: "m-001"})
	s.Require().NoError(err)
	s.Assert().True(out.WasCritical)
}

func (s *ResolverTestSuite) TestBlindedLowersCritChance() {
	tuning := alwaysCrit()
	tuning.BlindedCritPenalty = 1
	s.Require().NoError(s.reg.ApplyStatus("p-001", entities.StatusBlinded, 3))
	r := s.resolver(tuning)

	out, err := r.ResolveAttack(s.ctx, &combat.AttackInput{AttackerID: "p-001", DefenderID: "m-001"})
	s.Require().NoError(err)
	s.Assert().False(out.WasCritical)
}

func (s *ResolverTestSuite) TestShieldedHalvesDamage() {
	s.Require().NoError(s.reg.ApplyStatus("m-001", entities.StatusShielded, 3))
	r := s.resolver(noCrit())

	out, err := r.ResolveAttack(s.ctx, &combat.AttackInput{AttackerID: "p-001", DefenderID: "m-001"})
	s.Require().NoError(err)
	s.Assert().Equal(1, out.DamageDealt)
}

func (s *ResolverTestSuite) TestShieldedNeverBelowOne() {
	s.Require().NoError(s.reg.AdjustDefense("m-001", 10))
	s.Require().NoError(s.reg.ApplyStatus("m-001", entities.StatusShielded, 3))
	r := s.resolver(noCrit())

	out, err := r.ResolveAttack(s.ctx, &combat.AttackInput{AttackerID: "p-001", DefenderID: "m-001"})
	s.Require().NoError(err)
	s.Assert().Equal(1, out.DamageDealt)
}

func (s *ResolverTestSuite) TestVenomousPoisonsDefender() {
	s.Require().NoError(s.reg.ApplyStatus("p-001", entities.StatusVenomous, 5))
	r := s.resolver(noCrit())

	_, err := r.ResolveAttack(s.ctx, &combat.AttackInput{AttackerID: "p-001", DefenderID: "m-001"})
	s.Require().NoError(err)

	defender, err := s.reg.Get("m-001")
	s.Require().NoError(err)
	s.Assert().Equal(config.Default().PoisonDuration, defender.Statuses[entities.StatusPoisoned])
}

func (s *ResolverTestSuite) TestLethalHit() {
	_, err := s.reg.ApplyDamage("m-001", 6)
	s.Require().NoError(err)
	r := s.resolver(noCrit())

	out, err := r.ResolveAttack(s.ctx, &combat.AttackInput{AttackerID: "p-001", DefenderID: "m-001"})
	s.Require().NoError(err)
	s.Assert().True(out.DefenderDied)

	_, ok := s.reg.EntityAt(entities.Position{X: 2, Y: 1})
	s.Assert().False(ok, "corpse frees its tile")
}

func (s *ResolverTestSuite) TestInvalidTargets() {
	s.Require().NoError(s.reg.Add(&entities.Entity{
		ID:       "m-far",
		Kind:     entities.KindMonster,
		Position: entities.Position{X: 3, Y: 3},
		Stats:    entities.StatBlock{MaxHealth: 4, Health: 4, Attack: 1, Speed: 1},
	}))
	s.Require().NoError(s.reg.Add(&entities.Entity{
		ID:       "i-001",
		Kind:     entities.KindItem,
		Position: entities.Position{X: 1, Y: 2},
	}))
	r := s.resolver(noCrit())

	testCases := []struct {
		name  string
		input *combat.AttackInput
	}{
		{"unknown attacker", &combat.AttackInput{AttackerID: "ghost", DefenderID: "m-001"}},
		{"unknown defender", &combat.AttackInput{AttackerID: "p-001", DefenderID: "ghost"}},
		{"out of reach", &combat.AttackInput{AttackerID: "p-001", DefenderID: "m-far"}},
		{"item defender", &combat.AttackInput{AttackerID: "p-001", DefenderID: "i-001"}},
		{"item attacker", &combat.AttackInput{AttackerID: "i-001", DefenderID: "p-001"}},
		{"self attack", &combat.AttackInput{AttackerID: "p-001", DefenderID: "p-001"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := r.ResolveAttack(s.ctx, tc.input)
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidTarget(err))
			s.Assert().Equal(tc.input.AttackerID, errors.GetMeta(err)["attacker_id"])
		})
	}
}

func (s *ResolverTestSuite) TestDeadCombatants() {
	r := s.resolver(noCrit())

	_, err := s.reg.ApplyDamage("m-001", 8)
	s.Require().NoError(err)

	_, err = r.ResolveAttack(s.ctx, &combat.AttackInput{AttackerID: "p-001", DefenderID: "m-001"})
	s.Assert().True(errors.IsInvalidTarget(err), "dead defender")

	_, err = r.ResolveAttack(s.ctx, &combat.AttackInput{AttackerID: "m-001", DefenderID: "p-001"})
	s.Assert().True(errors.IsInvalidTarget(err), "dead attacker")
}

func (s *ResolverTestSuite) TestAdjacencyModes() {
	// Diagonal pair: reachable eight-way, not four-way.
	s.Require().NoError(s.reg.Add(&entities.Entity{
		ID:       "m-diag",
		Kind:     entities.KindMonster,
		Position: entities.Position{X: 2, Y: 2},
		Stats:    entities.StatBlock{MaxHealth: 4, Health: 4, Attack: 1, Speed: 1},
	}))

	fourWay := s.resolver(noCrit())
	_, err := fourWay.ResolveAttack(s.ctx, &combat.AttackInput{AttackerID: "p-001", DefenderID: "m-diag"})
	s.Assert().True(errors.IsInvalidTarget(err))

	tuning := noCrit()
	tuning.Adjacency = config.EightWay
	eightWay := s.resolver(tuning)
	out, err := eightWay.ResolveAttack(s.ctx, &combat.AttackInput{AttackerID: "p-001", DefenderID: "m-diag"})
	s.Require().NoError(err)
	s.Assert().Equal(3, out.DamageDealt)
}
