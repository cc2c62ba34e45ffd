package battle_test

import (
	"testing"

	"github.com/battlekit/engine/battle"
	"github.com/battlekit/engine/battleerr"
	"github.com/battlekit/engine/payload"
	"github.com/battlekit/engine/rulebook/basic"
	"github.com/stretchr/testify/suite"
)

// sturdyHitPoints pins a creature's hit_points seed high enough that a
// handful of Strike activations in a test can never bring it to zero.
var sturdyHitPoints = payload.MustWrap(struct {
	HitPoints int `json:"hit_points"`
}{HitPoints: 1000})

type EventsTestSuite struct {
	suite.Suite
	battle *battle.Battle
}

func TestEventsSuite(t *testing.T) {
	suite.Run(t, new(EventsTestSuite))
}

func (s *EventsTestSuite) SetupTest() {
	s.battle = battle.NewBattle(&battle.Binding{
		Character: basic.Rules{},
		Actor:      basic.Rules{},
		Team:       basic.Rules{},
		Fight:      basic.Rules{},
		Entropy:    battle.NewSeededEntropy(7, 11),
		Version:    1,
	})
}

func (s *EventsTestSuite) TestCreateTeamRejectsSelfRelation() {
	_, err := battle.Apply(s.battle, &battle.CreateTeam{
		TeamID:    "alpha",
		Relations: []battle.RelationEntry{{Other: "alpha", Relation: battle.RelationAlly}},
	})
	s.Require().Error(err)
	s.True(battleerr.Is(err, battleerr.CodeSelfRelation))
}

func (s *EventsTestSuite) TestCreateTeamRejectsExplicitKinship() {
	_, err := battle.Apply(s.battle, &battle.CreateTeam{TeamID: "alpha"})
	s.Require().NoError(err)
	_, err = battle.Apply(s.battle, &battle.CreateTeam{
		TeamID:    "bravo",
		Relations: []battle.RelationEntry{{Other: "alpha", Relation: battle.RelationKin}},
	})
	s.Require().Error(err)
	s.True(battleerr.Is(err, battleerr.CodeKinshipRelation))
}

func (s *EventsTestSuite) TestCreateTeamSynthesizesEnemyForUnnamedPreexistingTeams() {
	_, err := battle.Apply(s.battle, &battle.CreateTeam{TeamID: "alpha"})
	s.Require().NoError(err)
	_, err = battle.Apply(s.battle, &battle.CreateTeam{TeamID: "bravo"})
	s.Require().NoError(err)

	_, err = battle.Apply(s.battle, &battle.CreateTeam{
		TeamID:    "charlie",
		Relations: []battle.RelationEntry{{Other: "alpha", Relation: battle.RelationAlly}},
	})
	s.Require().NoError(err)

	s.Equal(battle.RelationAlly, s.battle.Store.Relation("charlie", "alpha"))
	s.Equal(battle.RelationEnemy, s.battle.Store.Relation("charlie", "bravo"), "a pre-existing team not named explicitly defaults to Enemy")
}

func (s *EventsTestSuite) TestRemoveTeamRejectsNonEmptyTeam() {
	_, err := battle.Apply(s.battle, &battle.CreateTeam{TeamID: "alpha"})
	s.Require().NoError(err)
	_, err = battle.Apply(s.battle, &battle.CreateCreature{CreatureID: "c1", TeamID: "alpha"})
	s.Require().NoError(err)

	_, err = battle.Apply(s.battle, &battle.RemoveTeam{TeamID: "alpha"})
	s.Require().Error(err)
	s.True(battleerr.Is(err, battleerr.CodeTeamNotEmpty))
}

func (s *EventsTestSuite) TestResetObjectivesClearsConclusion() {
	_, err := battle.Apply(s.battle, &battle.CreateTeam{TeamID: "alpha"})
	s.Require().NoError(err)
	_, err = battle.Apply(s.battle, &battle.ConcludeObjectives{TeamID: "alpha", Outcome: battle.ConclusionDefeat})
	s.Require().NoError(err)

	team, _ := s.battle.Store.Team("alpha")
	_, concluded := team.Conclusion()
	s.Require().True(concluded)

	_, err = battle.Apply(s.battle, &battle.ResetObjectives{TeamID: "alpha"})
	s.Require().NoError(err)
	_, concluded = team.Conclusion()
	s.False(concluded)
}

func (s *EventsTestSuite) TestStartRoundRejectsWhenAlreadyInProgress() {
	s.mustCreateCreature("alpha", "hero")
	entity := battle.NewCreatureEntityID("hero")
	_, err := battle.Apply(s.battle, &battle.StartRound{EntityID: entity})
	s.Require().NoError(err)

	_, err = battle.Apply(s.battle, &battle.StartRound{EntityID: entity})
	s.Require().Error(err)
	s.True(battleerr.Is(err, battleerr.CodeRoundInProgress))
}

func (s *EventsTestSuite) TestEndRoundIsANoOpWhenNoRoundStarted() {
	lenBefore := s.battle.History.Len()
	_, err := battle.Apply(s.battle, &battle.EndRound{})
	s.Require().NoError(err)
	s.Equal(lenBefore+1, s.battle.History.Len())
	s.True(s.battle.Round.IsReady())
}

func (s *EventsTestSuite) TestStartThenEndRoundReturnsToReady() {
	s.mustCreateCreature("alpha", "hero")
	entity := battle.NewCreatureEntityID("hero")
	_, err := battle.Apply(s.battle, &battle.StartRound{EntityID: entity})
	s.Require().NoError(err)
	s.False(s.battle.Round.IsReady())

	_, err = battle.Apply(s.battle, &battle.EndRound{})
	s.Require().NoError(err)
	s.True(s.battle.Round.IsReady())
}

func (s *EventsTestSuite) TestActivateAbilityRejectsOnceUsesAreExhausted() {
	s.mustCreateCreature("alpha", "hero")
	s.mustCreateSturdyCreature("bravo", "villain")
	entity := battle.NewCreatureEntityID("hero")

	for i := 0; i < 3; i++ {
		_, err := battle.Apply(s.battle, &battle.ActivateAbility{Actor: entity, AbilityID: basic.Strike})
		s.Require().NoError(err)
	}

	_, err := battle.Apply(s.battle, &battle.ActivateAbility{Actor: entity, AbilityID: basic.Strike})
	s.Require().Error(err)
	s.True(battleerr.Is(err, battleerr.CodeActorNotActivable))
}

func (s *EventsTestSuite) TestActivateAbilityAppliesImpactAndTracksUse() {
	s.mustCreateCreature("alpha", "hero")
	s.mustCreateSturdyCreature("bravo", "villain")
	entity := battle.NewCreatureEntityID("hero")

	villain, ok := s.battle.Store.Creature("villain")
	s.Require().True(ok)
	before, _ := villain.Statistic(basic.HitPoints)

	appended, err := battle.Apply(s.battle, &battle.ActivateAbility{Actor: entity, AbilityID: basic.Strike})
	s.Require().NoError(err)

	var sawImpact, sawAbilityAlter bool
	for _, e := range appended {
		switch e.Kind() {
		case battle.KindApplyImpact:
			sawImpact = true
		case battle.KindAlterAbilities:
			sawAbilityAlter = true
		}
	}
	s.True(sawImpact, "activating Strike must enqueue an ApplyImpact follow-up")
	s.True(sawAbilityAlter, "activating Strike must track its own use via AlterAbilities")

	after, _ := villain.Statistic(basic.HitPoints)
	s.Less(after.(basic.Stat).Value, before.(basic.Stat).Value, "the target must have taken damage")

	ability, ok := s.battle.Store.Creature("hero")
	s.Require().True(ok)
	a, ok := ability.Ability(basic.Strike)
	s.Require().True(ok)
	s.Equal(1, a.(basic.AbilityDef).Uses)
}

func (s *EventsTestSuite) mustCreateCreature(team battle.TeamID, creature battle.CreatureID) {
	_, err := battle.Apply(s.battle, &battle.CreateTeam{TeamID: team})
	s.Require().NoError(err)
	_, err = battle.Apply(s.battle, &battle.CreateCreature{CreatureID: creature, TeamID: team})
	s.Require().NoError(err)
}

func (s *EventsTestSuite) mustCreateSturdyCreature(team battle.TeamID, creature battle.CreatureID) {
	_, err := battle.Apply(s.battle, &battle.CreateTeam{TeamID: team})
	s.Require().NoError(err)
	_, err = battle.Apply(s.battle, &battle.CreateCreature{
		CreatureID:     creature,
		TeamID:         team,
		StatisticsSeed: sturdyHitPoints,
	})
	s.Require().NoError(err)
}
