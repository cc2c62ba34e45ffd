package battle

// Kind tags every event variant the kernel knows how to verify and apply.
type Kind uint8

const (
	// KindDummyEvent carries no payload; it exists to exercise the
	// pipeline (history append, broadcast, sink fan-out) without
	// mutating entity state.
	KindDummyEvent Kind = iota
	// KindCreateTeam inserts a new team.
	KindCreateTeam
	// KindSetRelations mutates the relation between arbitrary team pairs.
	KindSetRelations
	// KindConcludeObjectives records a team's outcome.
	KindConcludeObjectives
	// KindResetObjectives regenerates a team's objectives from a seed and clears its conclusion.
	KindResetObjectives
	// KindRemoveTeam removes an empty team.
	KindRemoveTeam
	// KindCreateCreature inserts a new creature into a team.
	KindCreateCreature
	// KindRemoveCreature removes a creature from the store and its team.
	KindRemoveCreature
	// KindRegenerateStatistics reconciles a character's statistic set against a fresh generation.
	KindRegenerateStatistics
	// KindRegenerateAbilities reconciles an actor's ability set against a fresh generation.
	KindRegenerateAbilities
	// KindAlterStatistics applies an alteration to a character's statistics.
	KindAlterStatistics
	// KindAlterAbilities applies an alteration to an actor's abilities.
	KindAlterAbilities
	// KindStartRound transitions the round state machine to Started(actor).
	KindStartRound
	// KindEndRound transitions the round state machine back to Ready.
	KindEndRound
	// KindApplyImpact feeds an opaque impact into fight rules.
	KindApplyImpact
	// KindActivateAbility runs an actor's ability, via ActorRules.Activate,
	// producing whatever follow-up events (typically ApplyImpact) the
	// rulebook enqueues.
	KindActivateAbility
)

// String renders the kind for logs and test failure messages.
func (k Kind) String() string {
	switch k {
	case KindDummyEvent:
		return "DummyEvent"
	case KindCreateTeam:
		return "CreateTeam"
	case KindSetRelations:
		return "SetRelations"
	case KindConcludeObjectives:
		return "ConcludeObjectives"
	case KindResetObjectives:
		return "ResetObjectives"
	case KindRemoveTeam:
		return "RemoveTeam"
	case KindCreateCreature:
		return "CreateCreature"
	case KindRemoveCreature:
		return "RemoveCreature"
	case KindRegenerateStatistics:
		return "RegenerateStatistics"
	case KindRegenerateAbilities:
		return "RegenerateAbilities"
	case KindAlterStatistics:
		return "AlterStatistics"
	case KindAlterAbilities:
		return "AlterAbilities"
	case KindStartRound:
		return "StartRound"
	case KindEndRound:
		return "EndRound"
	case KindApplyImpact:
		return "ApplyImpact"
	case KindActivateAbility:
		return "ActivateAbility"
	default:
		return "Unknown"
	}
}

// serverOnlyKinds names every kind a client may not fire directly.
var serverOnlyKinds = map[Kind]bool{
	KindCreateTeam:          true,
	KindSetRelations:        true,
	KindConcludeObjectives:  true,
	KindResetObjectives:     true,
	KindRemoveTeam:          true,
	KindCreateCreature:      true,
	KindRemoveCreature:      true,
}

// ServerOnly reports whether kind may only be produced by authoritative
// (server-origin) code paths.
func (k Kind) ServerOnly() bool {
	return serverOnlyKinds[k]
}
