// Package basic is a small, concrete rulebook implementing every
// extension point battle.Binding requires: hit points and armor class
// as statistics, a single damaging ability, and a last-team-standing
// objective. It exists to make the engine runnable end to end, rolling
// its dice off the kernel's deterministic entropy.
package basic

import (
	"github.com/battlekit/engine/battle"
	"github.com/battlekit/engine/metrics"
	"github.com/battlekit/engine/payload"
)

// User-namespace metric ids this rulebook reports under.
const (
	DamageDealt metrics.UserID = "basic:damage_dealt"
)

// Rules is a stateless implementation of battle.CharacterRules,
// battle.ActorRules, battle.TeamRules, and battle.FightRules.
type Rules struct{}

// GenerateStatistics implements battle.CharacterRules. A seed may pin
// hit_points/armor_class explicitly; anything left zero is rolled.
func (Rules) GenerateStatistics(seed battle.Seed, entropy battle.Entropy, _ *metrics.Registry) []battle.Statistic {
	var s creatureSeed
	_ = seed.Unmarshal(&s)
	roller := entropyRoller{entropy}

	hp := s.HitPoints
	if hp == 0 {
		hp = simplePool(4, 8, 10).roll(roller)
	}
	ac := s.ArmorClass
	if ac == 0 {
		ac = 10 + simplePool(1, 4, 0).roll(roller)
	}
	return []battle.Statistic{
		Stat{ID: HitPoints, Value: hp},
		Stat{ID: ArmorClass, Value: ac},
	}
}

// Alter implements battle.CharacterRules. It applies a hit_points_delta
// and requests removal once hit points reach zero.
func (Rules) Alter(character *battle.Creature, alteration battle.Alteration, _ battle.Entropy, _ *metrics.Registry) battle.Transmutation {
	var a statisticAlteration
	if err := alteration.Unmarshal(&a); err != nil || a.HitPointsDelta == 0 {
		return battle.TransmutationNone
	}
	value := 0
	if cur, ok := character.Statistic(HitPoints); ok {
		if s, ok := cur.(Stat); ok {
			value = s.Value
		}
	}
	value += a.HitPointsDelta
	if value < 0 {
		value = 0
	}
	character.SetStatistic(Stat{ID: HitPoints, Value: value})
	if value == 0 {
		return battle.TransmutationRemoval
	}
	return battle.TransmutationNone
}

// GenerateAbilities implements battle.ActorRules: every actor gets one Strike ability.
func (Rules) GenerateAbilities(seed battle.Seed, _ battle.Entropy, _ *metrics.Registry) []battle.Ability {
	var s abilitySeed
	_ = seed.Unmarshal(&s)
	power := s.Power
	if power == 0 {
		power = 4
	}
	return []battle.Ability{AbilityDef{ID: Strike, Power: power, MaxUses: 3}}
}

// Activable implements battle.ActorRules: the actor must hold the named
// ability and not have exhausted its use count.
func (Rules) Activable(state *battle.Battle, action battle.Action) bool {
	creature, err := state.Store.Actor(action.Actor)
	if err != nil {
		return false
	}
	ability, ok := creature.Ability(action.AbilityID)
	if !ok {
		return false
	}
	def, ok := ability.(AbilityDef)
	return !ok || !def.exhausted()
}

// Activate implements battle.ActorRules. It rolls Strike's damage and
// enqueues an ApplyImpact aimed at the first living enemy creature.
func (Rules) Activate(state *battle.Battle, action battle.Action, queue *battle.EventQueue, entropy battle.Entropy, _ *metrics.Registry) {
	creature, err := state.Store.Actor(action.Actor)
	if err != nil {
		return
	}
	ability, ok := creature.Ability(action.AbilityID)
	if !ok {
		return
	}
	power := 4
	if def, ok := ability.(AbilityDef); ok {
		if def.exhausted() {
			return
		}
		power = def.Power
	}

	target, ok := firstEnemyCreature(state, creature.TeamID())
	if !ok {
		return
	}

	roller := entropyRoller{entropy}
	amount := simplePool(1, 6, power).roll(roller)

	impact := payload.MustWrap(impactPayload{Target: target, Amount: amount})
	queue.Enqueue(&battle.ApplyImpact{Impact: impact})

	useAlteration := payload.MustWrap(abilityAlteration{AbilityID: action.AbilityID, UseDelta: 1})
	queue.Enqueue(&battle.AlterAbilities{EntityID: creature.EntityID(), Alteration: useAlteration})
}

// Alter implements battle.ActorRules: it nudges one ability's power and/or use count.
func (Rules) Alter(actor *battle.Creature, alteration battle.Alteration, _ battle.Entropy, _ *metrics.Registry) {
	var a abilityAlteration
	if err := alteration.Unmarshal(&a); err != nil || a.AbilityID == "" {
		return
	}
	def := AbilityDef{ID: a.AbilityID}
	if cur, ok := actor.Ability(a.AbilityID); ok {
		if existing, ok := cur.(AbilityDef); ok {
			def = existing
		}
	}
	def.Power += a.PowerDelta
	def.Uses += a.UseDelta
	actor.SetAbility(def)
}

// OnRoundStart implements battle.ActorRules; this rulebook needs no per-round setup.
func (Rules) OnRoundStart(*battle.Creature, *battle.EventQueue, battle.Entropy, *metrics.Registry) {}

// OnRoundEnd implements battle.ActorRules; this rulebook needs no per-round teardown.
func (Rules) OnRoundEnd(*battle.Creature, *battle.EventQueue, battle.Entropy, *metrics.Registry) {}

// AllowNewEntity implements battle.TeamRules: this rulebook places no cap on team size.
func (Rules) AllowNewEntity(*battle.Battle, *battle.Team, battle.EntityAddition) bool { return true }

// GenerateObjectives implements battle.TeamRules: every team's objective
// is to be the last one with living members.
func (Rules) GenerateObjectives(battle.Seed) battle.Objectives {
	return payload.MustWrap(struct {
		EliminateEnemies bool `json:"eliminate_enemies"`
	}{EliminateEnemies: true})
}

// CheckObjectivesOnEvent implements battle.TeamRules.
func (Rules) CheckObjectivesOnEvent(state *battle.Battle, team *battle.Team, _ *metrics.Registry) *battle.Conclusion {
	return checkLastTeamStanding(state, team)
}

// CheckObjectivesOnRound implements battle.TeamRules.
func (Rules) CheckObjectivesOnRound(state *battle.Battle, team *battle.Team, _ *metrics.Registry) *battle.Conclusion {
	return checkLastTeamStanding(state, team)
}

// checkLastTeamStanding concludes nothing until at least one creature
// has been removed from the battle, so teams that are still being set
// up (created empty, then populated) are never judged.
func checkLastTeamStanding(state *battle.Battle, team *battle.Team) *battle.Conclusion {
	if state.Metrics.SystemU64(metrics.CreaturesRemoved) == 0 {
		return nil
	}
	if len(team.Members()) == 0 {
		defeat := battle.ConclusionDefeat
		return &defeat
	}
	sawEnemy := false
	enemiesRemain := false
	for _, other := range state.Store.Teams() {
		if other.ID() == team.ID() {
			continue
		}
		if state.Store.Relation(team.ID(), other.ID()) != battle.RelationEnemy {
			continue
		}
		sawEnemy = true
		if len(other.Members()) > 0 {
			enemiesRemain = true
		}
	}
	if sawEnemy && !enemiesRemain {
		victory := battle.ConclusionVictory
		return &victory
	}
	return nil
}

func firstEnemyCreature(state *battle.Battle, own battle.TeamID) (battle.CreatureID, bool) {
	for _, team := range state.Store.Teams() {
		if team.ID() == own {
			continue
		}
		if state.Store.Relation(own, team.ID()) != battle.RelationEnemy {
			continue
		}
		if members := team.Members(); len(members) > 0 {
			return members[0], true
		}
	}
	return "", false
}

// ApplyImpact implements battle.FightRules: it decodes the target and
// amount Strike produced and enqueues the resulting statistic alteration.
func (Rules) ApplyImpact(state *battle.Battle, impact battle.Impact, queue *battle.EventQueue, _ battle.Entropy, metricsReg *metrics.Registry) {
	var p impactPayload
	if err := impact.Unmarshal(&p); err != nil {
		return
	}
	creature, ok := state.Store.Creature(p.Target)
	if !ok {
		return
	}
	alteration := payload.MustWrap(statisticAlteration{HitPointsDelta: -p.Amount})
	queue.Enqueue(&battle.AlterStatistics{EntityID: creature.EntityID(), Alteration: alteration})
	if p.Amount > 0 {
		metricsReg.AddUserU64(DamageDealt, uint64(p.Amount))
	}
}
