package content_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/ziyadedher/skrish/internal/config"
	"github.com/ziyadedher/skrish/internal/content"
	contentmock "github.com/ziyadedher/skrish/internal/content/mock"
	"github.com/ziyadedher/skrish/internal/dungeon"
	"github.com/ziyadedher/skrish/internal/entities"
	"github.com/ziyadedher/skrish/internal/errors"
	"github.com/ziyadedher/skrish/internal/registry"
)

type ApplierTestSuite struct {
	suite.Suite
	reg     *registry.Registry
	catalog *content.Catalog
	applier *content.Applier
}

func TestApplierSuite(t *testing.T) {
	suite.Run(t, new(ApplierTestSuite))
}

// The player starts wounded at 4 of 10 hit points so healing effects
// have room to land.
func (s *ApplierTestSuite) SetupTest() {
	gen, err := dungeon.New(&dungeon.Config{Tuning: config.Default()})
	s.Require().NoError(err)
	out, err := gen.Generate(context.Background(), &dungeon.GenerateInput{
		Seed:            1,
		Width:           5,
		Height:          5,
		TargetRoomCount: 1,
	})
	s.Require().NoError(err)

	s.reg, err = registry.New(&registry.Config{Graph: out.Graph})
	s.Require().NoError(err)

	s.catalog, err = content.Load()
	s.Require().NoError(err)

	s.applier, err = content.NewApplier(&content.ApplierConfig{
		Catalog: s.catalog,
		Store:   s.reg,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.reg.Add(&entities.Entity{
		ID:       "p-001",
		Kind:     entities.KindPlayer,
		Position: entities.Position{X: 1, Y: 1},
		Stats:    entities.StatBlock{MaxHealth: 10, Health: 4, Attack: 3, Defense: 1, Speed: 2},
	}))
}

// addItem registers an item entity carrying the given definition.
func (s *ApplierTestSuite) addItem(id, definitionID string, pos entities.Position) {
	s.Require().NoError(s.reg.Add(&entities.Entity{
		ID:           id,
		Kind:         entities.KindItem,
		Position:     pos,
		DefinitionID: definitionID,
	}))
}

func (s *ApplierTestSuite) TestNewApplierValidation() {
	_, err := content.NewApplier(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = content.NewApplier(&content.ApplierConfig{Store: s.reg})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = content.NewApplier(&content.ApplierConfig{Catalog: s.catalog})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ApplierTestSuite) TestInputValidation() {
	s.Assert().True(errors.IsInvalidArgument(s.applier.Apply("", "i-001")))
	s.Assert().True(errors.IsInvalidArgument(s.applier.Apply("p-001", "")))
}

func (s *ApplierTestSuite) TestHealConsumesItem() {
	s.addItem("i-001", "minor-healing-potion", entities.Position{X: 1, Y: 2})

	s.Require().NoError(s.applier.Apply("p-001", "i-001"))

	player, err := s.reg.Get("p-001")
	s.Require().NoError(err)
	s.Assert().Equal(9, player.Stats.Health)

	_, err = s.reg.Get("i-001")
	s.Assert().True(errors.IsNotFound(err), "a used item must leave the store")
}

func (s *ApplierTestSuite) TestHealClampsAtMaxHealth() {
	s.addItem("i-001", "healing-potion", entities.Position{X: 1, Y: 2})

	s.Require().NoError(s.applier.Apply("p-001", "i-001"))

	player, err := s.reg.Get("p-001")
	s.Require().NoError(err)
	s.Assert().Equal(10, player.Stats.Health)
}

func (s *ApplierTestSuite) TestFortifyAttack() {
	s.addItem("i-001", "whetstone", entities.Position{X: 2, Y: 1})

	s.Require().NoError(s.applier.Apply("p-001", "i-001"))

	player, err := s.reg.Get("p-001")
	s.Require().NoError(err)
	s.Assert().Equal(4, player.Stats.Attack)
}

func (s *ApplierTestSuite) TestFortifyDefense() {
	s.addItem("i-001", "iron-skin-tonic", entities.Position{X: 2, Y: 1})

	s.Require().NoError(s.applier.Apply("p-001", "i-001"))

	player, err := s.reg.Get("p-001")
	s.Require().NoError(err)
	s.Assert().Equal(2, player.Stats.Defense)
}

func (s *ApplierTestSuite) TestHasteGrantsStatus() {
	s.addItem("i-001", "swiftness-draught", entities.Position{X: 3, Y: 1})

	s.Require().NoError(s.applier.Apply("p-001", "i-001"))

	player, err := s.reg.Get("p-001")
	s.Require().NoError(err)
	s.Require().True(player.HasStatus(entities.StatusHasted))
	s.Assert().Equal(5, player.Statuses[entities.StatusHasted])
}

func (s *ApplierTestSuite) TestCurePoisonClearsStatus() {
	s.Require().NoError(s.reg.ApplyStatus("p-001", entities.StatusPoisoned, 3))
	s.addItem("i-001", "antidote", entities.Position{X: 1, Y: 3})

	s.Require().NoError(s.applier.Apply("p-001", "i-001"))

	player, err := s.reg.Get("p-001")
	s.Require().NoError(err)
	s.Assert().False(player.HasStatus(entities.StatusPoisoned))
}

func (s *ApplierTestSuite) TestUnknownItem() {
	err := s.applier.Apply("p-001", "ghost")
	s.Assert().True(errors.IsNotFound(err))
}

func (s *ApplierTestSuite) TestNonItemTarget() {
	err := s.applier.Apply("p-001", "p-001")
	s.Assert().True(errors.IsInvalidAction(err))
}

func (s *ApplierTestSuite) TestUnknownDefinitionKeepsItem() {
	s.addItem("i-001", "mystery-brew", entities.Position{X: 1, Y: 2})

	err := s.applier.Apply("p-001", "i-001")
	s.Assert().True(errors.IsInvalidAction(err))
	s.Assert().Equal("mystery-brew", errors.GetMeta(err)["definition_id"])

	_, err = s.reg.Get("i-001")
	s.Assert().NoError(err, "a failed use must not consume the item")
}

func (s *ApplierTestSuite) TestFailedEffectKeepsItem() {
	s.addItem("i-001", "minor-healing-potion", entities.Position{X: 1, Y: 2})

	err := s.applier.Apply("ghost", "i-001")
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.reg.Get("i-001")
	s.Assert().NoError(err)
}

// mockApplier builds an applier over a mock store for tests that need
// to observe or fail individual store calls.
func (s *ApplierTestSuite) mockApplier() (*content.Applier, *contentmock.MockEntityStore) {
	store := contentmock.NewMockEntityStore(gomock.NewController(s.T()))
	applier, err := content.NewApplier(&content.ApplierConfig{
		Catalog: s.catalog,
		Store:   store,
	})
	s.Require().NoError(err)
	return applier, store
}

func (s *ApplierTestSuite) TestEffectLandsBeforeRemoval() {
	applier, store := s.mockApplier()

	item := &entities.Entity{ID: "i-001", Kind: entities.KindItem, DefinitionID: "minor-healing-potion"}
	gomock.InOrder(
		store.EXPECT().Get("i-001").Return(item, nil),
		store.EXPECT().Heal("p-001", 5).Return(nil),
		store.EXPECT().Remove("i-001").Return(nil),
	)

	s.Assert().NoError(applier.Apply("p-001", "i-001"))
}

func (s *ApplierTestSuite) TestRemoveFailureSurfaces() {
	applier, store := s.mockApplier()

	item := &entities.Entity{ID: "i-001", Kind: entities.KindItem, DefinitionID: "minor-healing-potion"}
	store.EXPECT().Get("i-001").Return(item, nil)
	store.EXPECT().Heal("p-001", 5).Return(nil)
	store.EXPECT().Remove("i-001").Return(errors.Internal("store rejected the removal"))

	err := applier.Apply("p-001", "i-001")
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
}
