package battle

import (
	"github.com/battlekit/engine/battleerr"
	"github.com/battlekit/engine/metrics"
)

// StartRound transitions the round state machine from Ready to
// Started(entity).
type StartRound struct {
	EntityID EntityID
}

// Kind implements Event.
func (e *StartRound) Kind() Kind { return KindStartRound }

// Verify implements Event.
func (e *StartRound) Verify(ctx VerifyContext) error {
	if _, err := ctx.Battle.Store.Actor(e.EntityID); err != nil {
		return err
	}
	if !ctx.Battle.Round.IsReady() {
		return battleerr.RoundInProgress()
	}
	return nil
}

// Apply implements Event.
func (e *StartRound) Apply(ctx ApplyContext) error {
	creature, err := ctx.Battle.Store.Actor(e.EntityID)
	if err != nil {
		return err
	}
	ctx.Battle.Round.start(e.EntityID)
	if ctx.Battle.Rules.Actor != nil {
		ctx.Battle.Rules.Actor.OnRoundStart(creature, ctx.Queue, ctx.Entropy, ctx.Metrics)
	}
	ctx.Metrics.AddSystemU64(metrics.RoundsStarted, 1)
	return nil
}

// Clone implements Event.
func (e *StartRound) Clone() Event {
	return &StartRound{EntityID: e.EntityID}
}

// TargetTeam implements Event.
func (e *StartRound) TargetTeam(b *Battle) (TeamID, bool) {
	if c, ok := b.Store.Creature(e.EntityID.Creature); ok {
		return c.TeamID(), true
	}
	return "", false
}

// EndRound transitions the round state machine back to Ready. Firing it
// while already Ready is a harmless no-op.
type EndRound struct{}

// Kind implements Event.
func (EndRound) Kind() Kind { return KindEndRound }

// Verify implements Event; EndRound has no preconditions.
func (EndRound) Verify(VerifyContext) error { return nil }

// Apply implements Event. If a round was in progress, it runs
// TeamRules.CheckObjectivesOnRound for every team without a conclusion
// yet, queuing a ConcludeObjectives follow-up for any team it concludes.
func (EndRound) Apply(ctx ApplyContext) error {
	actor, wasStarted := ctx.Battle.Round.Actor()
	if !wasStarted {
		return nil
	}

	var actingCreature *Creature
	if c, ok := ctx.Battle.Store.Creature(actor.Creature); ok {
		actingCreature = c
	}
	if actingCreature != nil && ctx.Battle.Rules.Actor != nil {
		ctx.Battle.Rules.Actor.OnRoundEnd(actingCreature, ctx.Queue, ctx.Entropy, ctx.Metrics)
	}

	ctx.Battle.Round.end()
	ctx.Metrics.AddSystemU64(metrics.RoundsEnded, 1)

	if ctx.Battle.Rules.Team != nil {
		for _, team := range ctx.Battle.Store.Teams() {
			if _, concluded := team.Conclusion(); concluded {
				continue
			}
			if c := ctx.Battle.Rules.Team.CheckObjectivesOnRound(ctx.Battle, team, ctx.Metrics); c != nil {
				ctx.Queue.Enqueue(&ConcludeObjectives{TeamID: team.ID(), Outcome: *c})
			}
		}
	}
	return nil
}

// Clone implements Event.
func (e EndRound) Clone() Event { return EndRound{} }

// TargetTeam implements Event; EndRound carries no team reference.
func (EndRound) TargetTeam(*Battle) (TeamID, bool) { return "", false }
