package battle

import "github.com/battlekit/engine/battleerr"

// ActivateAbility asks ActorRules to run one of an actor's abilities.
// Unlike AlterStatistics/AlterAbilities, ActivateAbility never mutates
// the actor itself: ActorRules.Activate is expected to enqueue whatever
// follow-up events (typically ApplyImpact) the ability produces, so
// every resulting state change is itself a recorded, replayable event.
type ActivateAbility struct {
	Actor     EntityID
	AbilityID AbilityID
}

// Kind implements Event.
func (e *ActivateAbility) Kind() Kind { return KindActivateAbility }

// Verify implements Event.
func (e *ActivateAbility) Verify(ctx VerifyContext) error {
	if _, err := ctx.Battle.Store.Actor(e.Actor); err != nil {
		return err
	}
	if ctx.Battle.Rules.Actor == nil {
		return nil
	}
	action := Action{Actor: e.Actor, AbilityID: e.AbilityID}
	if !ctx.Battle.Rules.Actor.Activable(ctx.Battle, action) {
		return battleerr.ActorNotActivable(e.Actor)
	}
	return nil
}

// Apply implements Event.
func (e *ActivateAbility) Apply(ctx ApplyContext) error {
	if ctx.Battle.Rules.Actor == nil {
		return nil
	}
	action := Action{Actor: e.Actor, AbilityID: e.AbilityID}
	ctx.Battle.Rules.Actor.Activate(ctx.Battle, action, ctx.Queue, ctx.Entropy, ctx.Metrics)
	return nil
}

// Clone implements Event.
func (e *ActivateAbility) Clone() Event {
	return &ActivateAbility{Actor: e.Actor, AbilityID: e.AbilityID}
}

// TargetTeam implements Event.
func (e *ActivateAbility) TargetTeam(b *Battle) (TeamID, bool) {
	if c, ok := b.Store.Creature(e.Actor.Creature); ok {
		return c.TeamID(), true
	}
	return "", false
}
