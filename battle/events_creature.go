package battle

import (
	"github.com/battlekit/engine/battleerr"
	"github.com/battlekit/engine/metrics"
)

// CreateCreature inserts a new creature into an existing team.
type CreateCreature struct {
	CreatureID     CreatureID
	TeamID         TeamID
	StatisticsSeed Seed
	AbilitiesSeed  Seed
}

// Kind implements Event.
func (e *CreateCreature) Kind() Kind { return KindCreateCreature }

// Verify implements Event.
func (e *CreateCreature) Verify(ctx VerifyContext) error {
	team, ok := ctx.Battle.Store.Team(e.TeamID)
	if !ok {
		return battleerr.TeamNotFound(e.TeamID)
	}
	if _, ok := ctx.Battle.Store.Creature(e.CreatureID); ok {
		return battleerr.DuplicatedCreature(e.CreatureID)
	}
	if ctx.Battle.Rules.Team != nil {
		addition := EntityAddition{CreatureID: e.CreatureID}
		if !ctx.Battle.Rules.Team.AllowNewEntity(ctx.Battle, team, addition) {
			return battleerr.EntityNotAllowed(e.TeamID, e.CreatureID)
		}
	}
	return nil
}

// Apply implements Event.
func (e *CreateCreature) Apply(ctx ApplyContext) error {
	creature, err := ctx.Battle.Store.AddCreature(e.CreatureID, e.TeamID)
	if err != nil {
		return err
	}
	if ctx.Battle.Rules.Character != nil {
		creature.setStatistics(ctx.Battle.Rules.Character.GenerateStatistics(e.StatisticsSeed, ctx.Entropy, ctx.Metrics))
	}
	if ctx.Battle.Rules.Actor != nil {
		creature.setAbilities(ctx.Battle.Rules.Actor.GenerateAbilities(e.AbilitiesSeed, ctx.Entropy, ctx.Metrics))
	}
	ctx.Metrics.AddSystemU64(metrics.CreaturesCreated, 1)
	return nil
}

// Clone implements Event.
func (e *CreateCreature) Clone() Event {
	return &CreateCreature{
		CreatureID:     e.CreatureID,
		TeamID:         e.TeamID,
		StatisticsSeed: e.StatisticsSeed,
		AbilitiesSeed:  e.AbilitiesSeed,
	}
}

// TargetTeam implements Event.
func (e *CreateCreature) TargetTeam(*Battle) (TeamID, bool) { return e.TeamID, true }

// RemoveCreature removes a creature from the store and its team. If the
// removed creature was the currently acting one, it enqueues EndRound.
type RemoveCreature struct {
	CreatureID CreatureID
}

// Kind implements Event.
func (e *RemoveCreature) Kind() Kind { return KindRemoveCreature }

// Verify implements Event.
func (e *RemoveCreature) Verify(ctx VerifyContext) error {
	if _, ok := ctx.Battle.Store.Creature(e.CreatureID); !ok {
		return battleerr.CreatureNotFound(e.CreatureID)
	}
	return nil
}

// Apply implements Event.
func (e *RemoveCreature) Apply(ctx ApplyContext) error {
	actingEntity := NewCreatureEntityID(e.CreatureID)
	wasActing := ctx.Battle.Round.ActingOn(actingEntity)
	if err := ctx.Battle.Store.RemoveCreature(e.CreatureID); err != nil {
		return err
	}
	if wasActing {
		ctx.Queue.Enqueue(&EndRound{})
	}
	ctx.Metrics.AddSystemU64(metrics.CreaturesRemoved, 1)
	return nil
}

// Clone implements Event.
func (e *RemoveCreature) Clone() Event {
	return &RemoveCreature{CreatureID: e.CreatureID}
}

// TargetTeam implements Event.
func (e *RemoveCreature) TargetTeam(b *Battle) (TeamID, bool) {
	if c, ok := b.Store.Creature(e.CreatureID); ok {
		return c.TeamID(), true
	}
	return "", false
}

// RegenerateStatistics reconciles a character's statistic set against a
// fresh generation from Seed: ids present in both sets keep their
// current value, ids only in the old set are dropped, ids only in the
// new set are added.
type RegenerateStatistics struct {
	EntityID EntityID
	Seed     Seed
}

// Kind implements Event.
func (e *RegenerateStatistics) Kind() Kind { return KindRegenerateStatistics }

// Verify implements Event.
func (e *RegenerateStatistics) Verify(ctx VerifyContext) error {
	_, err := ctx.Battle.Store.Actor(e.EntityID)
	return err
}

// Apply implements Event.
func (e *RegenerateStatistics) Apply(ctx ApplyContext) error {
	creature, err := ctx.Battle.Store.Actor(e.EntityID)
	if err != nil {
		return err
	}
	if ctx.Battle.Rules.Character == nil {
		return nil
	}
	next := ctx.Battle.Rules.Character.GenerateStatistics(e.Seed, ctx.Entropy, ctx.Metrics)
	creature.regenerateStatistics(next)
	return nil
}

// Clone implements Event.
func (e *RegenerateStatistics) Clone() Event {
	return &RegenerateStatistics{EntityID: e.EntityID, Seed: e.Seed}
}

// TargetTeam implements Event.
func (e *RegenerateStatistics) TargetTeam(b *Battle) (TeamID, bool) {
	if c, ok := b.Store.Creature(e.EntityID.Creature); ok {
		return c.TeamID(), true
	}
	return "", false
}

// RegenerateAbilities is the ability-set analogue of RegenerateStatistics.
type RegenerateAbilities struct {
	EntityID EntityID
	Seed     Seed
}

// Kind implements Event.
func (e *RegenerateAbilities) Kind() Kind { return KindRegenerateAbilities }

// Verify implements Event.
func (e *RegenerateAbilities) Verify(ctx VerifyContext) error {
	_, err := ctx.Battle.Store.Actor(e.EntityID)
	return err
}

// Apply implements Event.
func (e *RegenerateAbilities) Apply(ctx ApplyContext) error {
	creature, err := ctx.Battle.Store.Actor(e.EntityID)
	if err != nil {
		return err
	}
	if ctx.Battle.Rules.Actor == nil {
		return nil
	}
	next := ctx.Battle.Rules.Actor.GenerateAbilities(e.Seed, ctx.Entropy, ctx.Metrics)
	creature.regenerateAbilities(next)
	return nil
}

// Clone implements Event.
func (e *RegenerateAbilities) Clone() Event {
	return &RegenerateAbilities{EntityID: e.EntityID, Seed: e.Seed}
}

// TargetTeam implements Event.
func (e *RegenerateAbilities) TargetTeam(b *Battle) (TeamID, bool) {
	if c, ok := b.Store.Creature(e.EntityID.Creature); ok {
		return c.TeamID(), true
	}
	return "", false
}

// AlterStatistics applies an alteration to a character's statistics. A
// CharacterRules.Alter implementation that returns TransmutationRemoval
// causes the kernel to synthesize a RemoveCreature follow-up.
type AlterStatistics struct {
	EntityID   EntityID
	Alteration Alteration
}

// Kind implements Event.
func (e *AlterStatistics) Kind() Kind { return KindAlterStatistics }

// Verify implements Event.
func (e *AlterStatistics) Verify(ctx VerifyContext) error {
	_, err := ctx.Battle.Store.Actor(e.EntityID)
	return err
}

// Apply implements Event.
func (e *AlterStatistics) Apply(ctx ApplyContext) error {
	creature, err := ctx.Battle.Store.Actor(e.EntityID)
	if err != nil {
		return err
	}
	if ctx.Battle.Rules.Character == nil {
		return nil
	}
	if ctx.Battle.Rules.Character.Alter(creature, e.Alteration, ctx.Entropy, ctx.Metrics) == TransmutationRemoval {
		ctx.Queue.Enqueue(&RemoveCreature{CreatureID: creature.ID()})
	}
	return nil
}

// Clone implements Event.
func (e *AlterStatistics) Clone() Event {
	return &AlterStatistics{EntityID: e.EntityID, Alteration: e.Alteration}
}

// TargetTeam implements Event.
func (e *AlterStatistics) TargetTeam(b *Battle) (TeamID, bool) {
	if c, ok := b.Store.Creature(e.EntityID.Creature); ok {
		return c.TeamID(), true
	}
	return "", false
}

// AlterAbilities applies an alteration to an actor's abilities.
type AlterAbilities struct {
	EntityID   EntityID
	Alteration Alteration
}

// Kind implements Event.
func (e *AlterAbilities) Kind() Kind { return KindAlterAbilities }

// Verify implements Event.
func (e *AlterAbilities) Verify(ctx VerifyContext) error {
	_, err := ctx.Battle.Store.Actor(e.EntityID)
	return err
}

// Apply implements Event.
func (e *AlterAbilities) Apply(ctx ApplyContext) error {
	creature, err := ctx.Battle.Store.Actor(e.EntityID)
	if err != nil {
		return err
	}
	if ctx.Battle.Rules.Actor == nil {
		return nil
	}
	ctx.Battle.Rules.Actor.Alter(creature, e.Alteration, ctx.Entropy, ctx.Metrics)
	return nil
}

// Clone implements Event.
func (e *AlterAbilities) Clone() Event {
	return &AlterAbilities{EntityID: e.EntityID, Alteration: e.Alteration}
}

// TargetTeam implements Event.
func (e *AlterAbilities) TargetTeam(b *Battle) (TeamID, bool) {
	if c, ok := b.Store.Creature(e.EntityID.Creature); ok {
		return c.TeamID(), true
	}
	return "", false
}
