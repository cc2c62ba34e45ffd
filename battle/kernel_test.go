package battle_test

import (
	"testing"

	"github.com/battlekit/engine/battle"
	"github.com/battlekit/engine/battleerr"
	"github.com/battlekit/engine/rulebook/basic"
	"github.com/stretchr/testify/suite"
)

type KernelTestSuite struct {
	suite.Suite
	battle *battle.Battle
}

func TestKernelSuite(t *testing.T) {
	suite.Run(t, new(KernelTestSuite))
}

func (s *KernelTestSuite) SetupTest() {
	s.battle = battle.NewBattle(&battle.Binding{
		Character: basic.Rules{},
		Actor:      basic.Rules{},
		Team:       basic.Rules{},
		Fight:      basic.Rules{},
		Entropy:    battle.NewSeededEntropy(1, 2),
		Version:    1,
	})
}

func (s *KernelTestSuite) createTeam(id battle.TeamID, relations ...battle.RelationEntry) {
	_, err := battle.Apply(s.battle, &battle.CreateTeam{TeamID: id, Relations: relations})
	s.Require().NoError(err)
}

func (s *KernelTestSuite) createCreature(id battle.CreatureID, team battle.TeamID) {
	_, err := battle.Apply(s.battle, &battle.CreateCreature{CreatureID: id, TeamID: team})
	s.Require().NoError(err)
}

func (s *KernelTestSuite) TestApplyAppendsTriggeringEventFirst() {
	appended, err := battle.Apply(s.battle, &battle.CreateTeam{TeamID: "alpha"})
	s.Require().NoError(err)
	s.Require().Len(appended, 1)
	s.Equal(battle.KindCreateTeam, appended[0].Kind())
	s.Equal(1, s.battle.History.Len())
}

func (s *KernelTestSuite) TestApplyRejectsFailedVerify() {
	s.createTeam("alpha")
	_, err := battle.Apply(s.battle, &battle.CreateTeam{TeamID: "alpha"})
	s.Require().Error(err)
	s.True(battleerr.Is(err, battleerr.CodeDuplicatedTeam))
	s.Equal(1, s.battle.History.Len(), "a rejected event must not be appended")
}

func (s *KernelTestSuite) TestProcessClientOriginRejectsServerOnlyKind() {
	_, err := battle.ProcessClientOrigin(s.battle, false, nil, &battle.CreateTeam{TeamID: "alpha"})
	s.Require().Error(err)
	s.True(battleerr.Is(err, battleerr.CodeServerOnlyEvent))
}

func (s *KernelTestSuite) TestProcessClientOriginEnforcesAuthentication() {
	s.createTeam("alpha")
	s.createCreature("c1", "alpha")

	activate := &battle.ActivateAbility{Actor: battle.NewCreatureEntityID("c1"), AbilityID: basic.Strike}

	_, err := battle.ProcessClientOrigin(s.battle, true, nil, activate)
	s.Require().Error(err)
	s.True(battleerr.Is(err, battleerr.CodeMissingAuthentication))

	player := battle.PlayerID("p1")
	_, err = battle.ProcessClientOrigin(s.battle, true, &player, activate)
	s.Require().Error(err)
	s.True(battleerr.Is(err, battleerr.CodeAuthenticationError))

	s.Require().NoError(s.battle.Rights.Add(player, "alpha"))
	_, err = battle.ProcessClientOrigin(s.battle, true, &player, activate.Clone().(*battle.ActivateAbility))
	s.Require().NoError(err)
}

func (s *KernelTestSuite) TestReceiveRejectsNonContiguousEventID() {
	w := battle.VersionedEventWrapper{EventID: 5, Version: 1, Event: &battle.CreateTeam{TeamID: "alpha"}}
	_, err := battle.Receive(s.battle, w)
	s.Require().Error(err)
	s.True(battleerr.Is(err, battleerr.CodeNonContiguousEventID))
}

func (s *KernelTestSuite) TestReceiveRejectsIncompatibleVersion() {
	w := battle.VersionedEventWrapper{EventID: 0, Version: 2, Event: &battle.CreateTeam{TeamID: "alpha"}}
	_, err := battle.Receive(s.battle, w)
	s.Require().Error(err)
	s.True(battleerr.Is(err, battleerr.CodeIncompatibleVersions))
}

func (s *KernelTestSuite) TestReceiveMirrorsAnAppliedEvent() {
	appended, err := battle.Apply(s.battle, &battle.CreateTeam{TeamID: "alpha"})
	s.Require().NoError(err)

	mirror := battle.NewBattle(&battle.Binding{
		Character: basic.Rules{},
		Actor:      basic.Rules{},
		Team:       basic.Rules{},
		Fight:      basic.Rules{},
		Entropy:    battle.NewSeededEntropy(1, 2),
		Version:    1,
	})
	w := battle.VersionedEventWrapper{EventID: 0, Version: 1, Event: appended[0]}
	_, err = battle.Receive(mirror, w)
	s.Require().NoError(err)
	_, ok := mirror.Store.Team("alpha")
	s.True(ok)
}

// TestFollowupsDrainInFIFOOrderAcrossNesting exercises a follow-up chain
// three events deep: removing the acting creature ends the round, and
// ending a round with no surviving enemies concludes the opposing team.
// Every event produced, at any depth, must appear in commit order.
func (s *KernelTestSuite) TestFollowupsDrainInFIFOOrderAcrossNesting() {
	s.createTeam("alpha")
	s.createTeam("bravo")
	s.createCreature("hero", "alpha")
	s.createCreature("villain", "bravo")

	_, err := battle.Apply(s.battle, &battle.StartRound{EntityID: battle.NewCreatureEntityID("villain")})
	s.Require().NoError(err)

	appended, err := battle.Apply(s.battle, &battle.RemoveCreature{CreatureID: "villain"})
	s.Require().NoError(err)

	kinds := make([]battle.Kind, len(appended))
	for i, e := range appended {
		kinds[i] = e.Kind()
	}
	s.Require().Contains(kinds, battle.KindRemoveCreature)
	s.Require().Contains(kinds, battle.KindEndRound)
	s.Equal(battle.KindRemoveCreature, kinds[0], "the triggering event is always first")

	var endRoundIdx, concludeIdx = -1, -1
	for i, k := range kinds {
		if k == battle.KindEndRound {
			endRoundIdx = i
		}
		if k == battle.KindConcludeObjectives {
			concludeIdx = i
		}
	}
	s.Require().NotEqual(-1, endRoundIdx)
	s.Require().NotEqual(-1, concludeIdx)
	s.Less(endRoundIdx, concludeIdx, "ConcludeObjectives must be enqueued after the EndRound that surfaced it")

	alphaTeam, ok := s.battle.Store.Team("alpha")
	s.Require().True(ok)
	conclusion, concluded := alphaTeam.Conclusion()
	s.Require().True(concluded)
	s.Equal(battle.ConclusionVictory, conclusion)
}

func (s *KernelTestSuite) TestEnqueueObjectiveConclusionsSkipsAlreadyConcludedTeams() {
	s.createTeam("alpha")
	s.createTeam("bravo")
	s.createCreature("hero", "alpha")
	s.createCreature("villain", "bravo")

	_, err := battle.Apply(s.battle, &battle.RemoveCreature{CreatureID: "villain"})
	s.Require().NoError(err)

	alphaTeam, _ := s.battle.Store.Team("alpha")
	_, concluded := alphaTeam.Conclusion()
	s.Require().True(concluded)

	lenBefore := s.battle.History.Len()
	_, err = battle.Apply(s.battle, battle.DummyEvent{})
	s.Require().NoError(err)
	s.Equal(lenBefore+1, s.battle.History.Len(), "a concluded team must not re-enqueue ConcludeObjectives")
}
