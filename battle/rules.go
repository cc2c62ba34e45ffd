package battle

import (
	"github.com/battlekit/engine/metrics"
	"github.com/battlekit/engine/payload"
)

// Seed is an opaque input to a rule's generator function.
type Seed = payload.Opaque

// Alteration is an opaque payload describing how to mutate a set of
// statistics or abilities.
type Alteration = payload.Opaque

// Impact is an intermediate object produced by an ability and consumed
// by fight rules to emit concrete altering events.
type Impact = payload.Opaque

// Objectives is an opaque per-team structure a TeamRules implementation
// uses to decide whether a conclusion has been reached.
type Objectives = payload.Opaque

// Transmutation is an optional directive a rule hook returns requesting
// a follow-up structural change.
type Transmutation uint8

const (
	// TransmutationNone requests no structural follow-up.
	TransmutationNone Transmutation = iota
	// TransmutationRemoval requests that the kernel synthesize a
	// RemoveCreature follow-up for the altered entity.
	TransmutationRemoval
)

// EntityAddition describes a proposed new member a TeamRules
// implementation may accept or reject via AllowNewEntity.
type EntityAddition struct {
	CreatureID CreatureID
}

// Action names an ability a rule hook is being asked to activate.
type Action struct {
	Actor     EntityID
	AbilityID AbilityID
}

// Entropy is the deterministic randomness source handed to rule hooks.
// Implementations must be seedable so that two engines constructed with
// the same seed and fed the same event sequence produce identical
// results.
type Entropy interface {
	// Intn returns a pseudo-random integer in [0, n). It panics if n <= 0,
	// matching math/rand/v2's Int32N.
	Intn(n int) int
	// Uint64 returns a pseudo-random uint64.
	Uint64() uint64
}

// CharacterRules generates and mutates the statistics attached to every
// character (every creature is a character).
type CharacterRules interface {
	// GenerateStatistics produces the statistic set for seed. Called by
	// CreateCreature and RegenerateStatistics.
	GenerateStatistics(seed Seed, entropy Entropy, metrics *metrics.Registry) []Statistic

	// Alter applies alteration to character's statistics. A non-zero
	// Transmutation (currently only TransmutationRemoval) instructs the
	// kernel to synthesize a follow-up event.
	Alter(character *Creature, alteration Alteration, entropy Entropy, metrics *metrics.Registry) Transmutation
}

// ActorRules generates and mutates the abilities attached to every actor
// (every creature is an actor), and governs ability activation and
// round boundary hooks.
type ActorRules interface {
	// GenerateAbilities produces the ability set for seed. Called by
	// CreateCreature and RegenerateAbilities.
	GenerateAbilities(seed Seed, entropy Entropy, metrics *metrics.Registry) []Ability

	// Activable reports whether action may be activated right now.
	Activable(state *Battle, action Action) bool

	// Activate runs action's effect, enqueueing any resulting events onto queue.
	Activate(state *Battle, action Action, queue *EventQueue, entropy Entropy, metrics *metrics.Registry)

	// Alter applies alteration to actor's abilities.
	Alter(actor *Creature, alteration Alteration, entropy Entropy, metrics *metrics.Registry)

	// OnRoundStart runs when actor's round begins.
	OnRoundStart(actor *Creature, queue *EventQueue, entropy Entropy, metrics *metrics.Registry)

	// OnRoundEnd runs when actor's round ends.
	OnRoundEnd(actor *Creature, queue *EventQueue, entropy Entropy, metrics *metrics.Registry)
}

// TeamRules governs team membership, objective generation, and
// objective-driven conclusions.
type TeamRules interface {
	// AllowNewEntity reports whether team may accept addition.
	AllowNewEntity(state *Battle, team *Team, addition EntityAddition) bool

	// GenerateObjectives produces a team's objectives from seed.
	GenerateObjectives(seed Seed) Objectives

	// CheckObjectivesOnEvent is invoked once per processed top-level
	// event, for every team without a conclusion yet. A non-nil return
	// concludes the team.
	CheckObjectivesOnEvent(state *Battle, team *Team, metrics *metrics.Registry) *Conclusion

	// CheckObjectivesOnRound is invoked whenever a round ends, for every
	// team without a conclusion yet.
	CheckObjectivesOnRound(state *Battle, team *Team, metrics *metrics.Registry) *Conclusion
}

// FightRules turns an opaque Impact into concrete follow-up events.
type FightRules interface {
	// ApplyImpact consumes impact, enqueueing the events it produces onto queue.
	ApplyImpact(state *Battle, impact Impact, queue *EventQueue, entropy Entropy, metrics *metrics.Registry)
}

// Binding aggregates the family of rule capability sets that
// parameterize a battle, plus the version used for cross-peer
// compatibility checks.
type Binding struct {
	Character CharacterRules
	Actor     ActorRules
	Team      TeamRules
	Fight     FightRules
	Entropy   Entropy
	Version   uint32
}
