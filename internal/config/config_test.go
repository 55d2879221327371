package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ziyadedher/skrish/internal/config"
	"github.com/ziyadedher/skrish/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaultIsValid() {
	t := config.Default()
	s.Require().NoError(t.Validate())

	s.Assert().Equal(0.05, t.CritChance)
	s.Assert().Equal(2, t.CritMultiplier)
	s.Assert().Equal(config.FourWay, t.Adjacency)
	s.Assert().Equal(3, t.MinRoomSize)
	s.Assert().Equal(3, t.CarveRetries)
}

func (s *ConfigTestSuite) TestLoadOverridesSubset() {
	doc := `
crit_chance: 0.25
adjacency: eight_way
monster_density: 1.5
`
	t, err := config.LoadFromReader(strings.NewReader(doc))
	s.Require().NoError(err)

	s.Assert().Equal(0.25, t.CritChance)
	s.Assert().Equal(config.EightWay, t.Adjacency)
	s.Assert().Equal(1.5, t.MonsterDensity)
	// Untouched fields keep defaults.
	s.Assert().Equal(2, t.CritMultiplier)
	s.Assert().Equal(3, t.MinRoomSize)
}

func (s *ConfigTestSuite) TestLoadEmptyDocumentKeepsDefaults() {
	t, err := config.LoadFromReader(strings.NewReader(""))
	s.Require().NoError(err)
	s.Assert().Equal(config.Default(), t)
}

func (s *ConfigTestSuite) TestLoadRejectsUnknownFields() {
	doc := `
crit_chance: 0.1
critical_multiplier: 3
`
	_, err := config.LoadFromReader(strings.NewReader(doc))
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "critical_multiplier")
}

func (s *ConfigTestSuite) TestValidateRejectsBadValues() {
	testCases := []struct {
		name   string
		mutate func(*config.Tuning)
	}{
		{"crit chance above one", func(t *config.Tuning) { t.CritChance = 1.5 }},
		{"negative crit chance", func(t *config.Tuning) { t.CritChance = -0.1 }},
		{"zero crit multiplier", func(t *config.Tuning) { t.CritMultiplier = 0 }},
		{"unknown adjacency", func(t *config.Tuning) { t.Adjacency = "diagonal" }},
		{"negative poison damage", func(t *config.Tuning) { t.PoisonDamage = -1 }},
		{"zero min room size", func(t *config.Tuning) { t.MinRoomSize = 0 }},
		{"negative monster density", func(t *config.Tuning) { t.MonsterDensity = -0.5 }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t := config.Default()
			tc.mutate(&t)
			err := t.Validate()
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *ConfigTestSuite) TestLoadRejectsInvalidValues() {
	doc := `
crit_chance: 2.0
`
	_, err := config.LoadFromReader(strings.NewReader(doc))
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}
