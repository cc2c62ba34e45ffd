package battle

import (
	"github.com/battlekit/engine/battleerr"
	"github.com/battlekit/engine/metrics"
)

// RelationEntry is one (other team, relation) pair supplied to CreateTeam.
type RelationEntry struct {
	Other    TeamID
	Relation Relation
}

// CreateTeam inserts a new team. Any pre-existing team not named in
// Relations defaults to Enemy with the new team; see Apply.
type CreateTeam struct {
	TeamID    TeamID
	Relations []RelationEntry
	Seed      Seed
}

// Kind implements Event.
func (e *CreateTeam) Kind() Kind { return KindCreateTeam }

// Verify implements Event.
func (e *CreateTeam) Verify(ctx VerifyContext) error {
	if _, ok := ctx.Battle.Store.Team(e.TeamID); ok {
		return battleerr.DuplicatedTeam(e.TeamID)
	}
	for _, r := range e.Relations {
		if r.Other == e.TeamID {
			return battleerr.SelfRelation(e.TeamID)
		}
		if r.Relation == RelationKin {
			return battleerr.KinshipRelation(e.TeamID)
		}
		if _, ok := ctx.Battle.Store.Team(r.Other); !ok {
			return battleerr.TeamNotFound(r.Other)
		}
	}
	return nil
}

// Apply implements Event. It inserts the team, then commits the
// explicit relations together with a synthesized Enemy entry for every
// pre-existing team not named explicitly — a later entry in Relations
// for the same Other wins over an earlier one ("last wins"), matching
// Store.UpdateRelations' upsert semantics.
func (e *CreateTeam) Apply(ctx ApplyContext) error {
	var objectives Objectives
	if ctx.Battle.Rules.Team != nil {
		objectives = ctx.Battle.Rules.Team.GenerateObjectives(e.Seed)
	}
	if _, err := ctx.Battle.Store.AddTeam(e.TeamID, objectives); err != nil {
		return err
	}

	explicit := make(map[TeamID]struct{}, len(e.Relations))
	updates := make([]RelationUpdate, 0, len(e.Relations))
	for _, r := range e.Relations {
		explicit[r.Other] = struct{}{}
		updates = append(updates, RelationUpdate{A: e.TeamID, B: r.Other, Relation: r.Relation})
	}
	for _, team := range ctx.Battle.Store.Teams() {
		if team.ID() == e.TeamID {
			continue
		}
		if _, ok := explicit[team.ID()]; ok {
			continue
		}
		updates = append(updates, RelationUpdate{A: e.TeamID, B: team.ID(), Relation: RelationEnemy})
	}
	ctx.Battle.Store.UpdateRelations(updates)
	ctx.Metrics.AddSystemU64(metrics.TeamsCreated, 1)
	return nil
}

// Clone implements Event.
func (e *CreateTeam) Clone() Event {
	relations := make([]RelationEntry, len(e.Relations))
	copy(relations, e.Relations)
	return &CreateTeam{TeamID: e.TeamID, Relations: relations, Seed: e.Seed}
}

// TargetTeam implements Event.
func (e *CreateTeam) TargetTeam(*Battle) (TeamID, bool) { return e.TeamID, true }

// RelationPair is one (team A, team B, relation) update applied by SetRelations.
type RelationPair struct {
	A, B     TeamID
	Relation Relation
}

// SetRelations mutates the relation between arbitrary team pairs.
type SetRelations struct {
	Updates []RelationPair
}

// Kind implements Event.
func (e *SetRelations) Kind() Kind { return KindSetRelations }

// Verify implements Event.
func (e *SetRelations) Verify(ctx VerifyContext) error {
	for _, u := range e.Updates {
		if u.A == u.B {
			return battleerr.SelfRelation(u.A)
		}
		if u.Relation == RelationKin {
			return battleerr.KinshipRelation(u.A)
		}
		if _, ok := ctx.Battle.Store.Team(u.A); !ok {
			return battleerr.TeamNotFound(u.A)
		}
		if _, ok := ctx.Battle.Store.Team(u.B); !ok {
			return battleerr.TeamNotFound(u.B)
		}
	}
	return nil
}

// Apply implements Event.
func (e *SetRelations) Apply(ctx ApplyContext) error {
	updates := make([]RelationUpdate, len(e.Updates))
	for i, u := range e.Updates {
		updates[i] = RelationUpdate{A: u.A, B: u.B, Relation: u.Relation}
	}
	ctx.Battle.Store.UpdateRelations(updates)
	return nil
}

// Clone implements Event.
func (e *SetRelations) Clone() Event {
	updates := make([]RelationPair, len(e.Updates))
	copy(updates, e.Updates)
	return &SetRelations{Updates: updates}
}

// TargetTeam implements Event. SetRelations touches arbitrary pairs, so
// no single team can serve as its authorization target.
func (e *SetRelations) TargetTeam(*Battle) (TeamID, bool) { return "", false }

// ConcludeObjectives records a team's outcome.
type ConcludeObjectives struct {
	TeamID  TeamID
	Outcome Conclusion
}

// Kind implements Event.
func (e *ConcludeObjectives) Kind() Kind { return KindConcludeObjectives }

// Verify implements Event.
func (e *ConcludeObjectives) Verify(ctx VerifyContext) error {
	if _, ok := ctx.Battle.Store.Team(e.TeamID); !ok {
		return battleerr.TeamNotFound(e.TeamID)
	}
	return nil
}

// Apply implements Event.
func (e *ConcludeObjectives) Apply(ctx ApplyContext) error {
	team, ok := ctx.Battle.Store.Team(e.TeamID)
	if !ok {
		return battleerr.TeamNotFound(e.TeamID)
	}
	team.setConclusion(e.Outcome)
	ctx.Metrics.AddSystemU64(metrics.ObjectivesReached, 1)
	return nil
}

// Clone implements Event.
func (e *ConcludeObjectives) Clone() Event {
	return &ConcludeObjectives{TeamID: e.TeamID, Outcome: e.Outcome}
}

// TargetTeam implements Event.
func (e *ConcludeObjectives) TargetTeam(*Battle) (TeamID, bool) { return e.TeamID, true }

// ResetObjectives regenerates a team's objectives from a seed and clears its conclusion.
type ResetObjectives struct {
	TeamID TeamID
	Seed   Seed
}

// Kind implements Event.
func (e *ResetObjectives) Kind() Kind { return KindResetObjectives }

// Verify implements Event.
func (e *ResetObjectives) Verify(ctx VerifyContext) error {
	if _, ok := ctx.Battle.Store.Team(e.TeamID); !ok {
		return battleerr.TeamNotFound(e.TeamID)
	}
	return nil
}

// Apply implements Event.
func (e *ResetObjectives) Apply(ctx ApplyContext) error {
	team, ok := ctx.Battle.Store.Team(e.TeamID)
	if !ok {
		return battleerr.TeamNotFound(e.TeamID)
	}
	var objectives Objectives
	if ctx.Battle.Rules.Team != nil {
		objectives = ctx.Battle.Rules.Team.GenerateObjectives(e.Seed)
	}
	team.setObjectives(objectives)
	team.clearConclusion()
	return nil
}

// Clone implements Event.
func (e *ResetObjectives) Clone() Event {
	return &ResetObjectives{TeamID: e.TeamID, Seed: e.Seed}
}

// TargetTeam implements Event.
func (e *ResetObjectives) TargetTeam(*Battle) (TeamID, bool) { return e.TeamID, true }

// RemoveTeam removes a team. The team must have no members.
type RemoveTeam struct {
	TeamID TeamID
}

// Kind implements Event.
func (e *RemoveTeam) Kind() Kind { return KindRemoveTeam }

// Verify implements Event.
func (e *RemoveTeam) Verify(ctx VerifyContext) error {
	team, ok := ctx.Battle.Store.Team(e.TeamID)
	if !ok {
		return battleerr.TeamNotFound(e.TeamID)
	}
	if len(team.Members()) > 0 {
		return battleerr.TeamNotEmpty(e.TeamID)
	}
	return nil
}

// Apply implements Event.
func (e *RemoveTeam) Apply(ctx ApplyContext) error {
	if err := ctx.Battle.Store.RemoveTeam(e.TeamID); err != nil {
		return err
	}
	ctx.Battle.Rights.RemoveTeam(e.TeamID)
	ctx.Metrics.AddSystemU64(metrics.TeamsRemoved, 1)
	return nil
}

// Clone implements Event.
func (e *RemoveTeam) Clone() Event {
	return &RemoveTeam{TeamID: e.TeamID}
}

// TargetTeam implements Event.
func (e *RemoveTeam) TargetTeam(*Battle) (TeamID, bool) { return e.TeamID, true }
