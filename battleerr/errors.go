// Package battleerr provides structured error handling for the battle
// engine. It names why an event was rejected or why a sink operation
// failed, with enough metadata attached that a caller can react to the
// specific failure instead of pattern-matching a message string.
package battleerr

import (
	"errors"
	"fmt"
)

// Code categorizes why an engine operation failed.
type Code string

const (
	// CodeInternal indicates a kernel invariant was violated; this
	// should never surface from a correctly implemented rule set.
	CodeInternal Code = "internal"

	// CodeDuplicatedTeam indicates CreateTeam named a team id already in the store.
	CodeDuplicatedTeam Code = "duplicated_team"
	// CodeTeamNotFound indicates an event referenced a team id absent from the store.
	CodeTeamNotFound Code = "team_not_found"
	// CodeTeamNotEmpty indicates RemoveTeam targeted a team that still has members.
	CodeTeamNotEmpty Code = "team_not_empty"
	// CodeSelfRelation indicates a team declared a relation to itself.
	CodeSelfRelation Code = "self_relation"
	// CodeKinshipRelation indicates a relation entry illegally declared Kin.
	CodeKinshipRelation Code = "kinship_relation"

	// CodeEntityNotFound indicates an event referenced an entity id absent from the store.
	CodeEntityNotFound Code = "entity_not_found"
	// CodeCreatureNotFound indicates a creature id is absent from the store or from its team's membership.
	CodeCreatureNotFound Code = "creature_not_found"
	// CodeDuplicatedCreature indicates CreateCreature named an id already in the store.
	CodeDuplicatedCreature Code = "duplicated_creature"
	// CodeNotAnActor indicates an entity id was expected to identify an actor and did not.
	CodeNotAnActor Code = "not_an_actor"
	// CodeEntityNotAllowed indicates a TeamRules hook rejected a new entity.
	CodeEntityNotAllowed Code = "entity_not_allowed"

	// CodeRoundInProgress indicates StartRound fired while a round was already active.
	CodeRoundInProgress Code = "round_in_progress"
	// CodeRoundNotStarted indicates an action was attempted outside of an active round.
	CodeRoundNotStarted Code = "round_not_started"
	// CodeActorNotActivable indicates ActorRules.Activable rejected an activation.
	CodeActorNotActivable Code = "actor_not_activable"

	// CodeInvalidEventRange indicates a sink range fell outside the history it was drawn against.
	CodeInvalidEventRange Code = "invalid_event_range"
	// CodeNonContiguousEventID indicates a sink received an event id that did not
	// immediately follow the last one it saw.
	CodeNonContiguousEventID Code = "non_contiguous_event_id"
	// CodeIncompatibleVersions indicates a client and server rule binding disagree on version.
	CodeIncompatibleVersions Code = "incompatible_versions"
	// CodeEventSinkError indicates a sink returned an error while receiving an event.
	CodeEventSinkError Code = "event_sink_error"
	// CodeEventSinkNotFound indicates an operation named a sink id the server does not hold.
	CodeEventSinkNotFound Code = "event_sink_not_found"

	// CodeServerOnlyEvent indicates a client attempted to fire a server-only event kind.
	CodeServerOnlyEvent Code = "server_only_event"
	// CodeMissingAuthentication indicates authentication is enforced and the caller attached no player id.
	CodeMissingAuthentication Code = "missing_authentication"
	// CodeAuthenticationError indicates the attached player id holds no rights over the target team.
	CodeAuthenticationError Code = "authentication_error"
)

// Error is the concrete error type returned by every battle engine
// operation that can fail.
type Error struct {
	// Code categorizes the error.
	Code Code

	// Message describes what happened.
	Message string

	// Cause is the wrapped error, if any.
	Cause error

	// Meta carries structured context (ids, ranges, versions) about the failure.
	Meta map[string]any
}

// Error returns the error message.
func (e *Error) Error() string {
	if e == nil {
		return "battleerr: nil error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Option configures an Error at construction time.
type Option func(*Error)

// WithMeta attaches a key/value pair to the error's metadata.
func WithMeta(key string, value any) Option {
	return func(e *Error) {
		if e.Meta == nil {
			e.Meta = make(map[string]any)
		}
		e.Meta[key] = value
	}
}

// WithCause wraps an underlying error as the cause.
func WithCause(cause error) Option {
	return func(e *Error) {
		e.Cause = cause
	}
}

// New creates an Error with the given code and message.
func New(code Code, message string, opts ...Option) *Error {
	err := &Error{Code: code, Message: message}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetCode extracts the Code from any error, returning CodeInternal if err
// is not a *Error (or wraps none).
func GetCode(err error) Code {
	var be *Error
	if errors.As(err, &be) && be != nil {
		return be.Code
	}
	return CodeInternal
}

// GetMeta extracts the metadata map from any error, or nil.
func GetMeta(err error) map[string]any {
	var be *Error
	if errors.As(err, &be) && be != nil {
		return be.Meta
	}
	return nil
}

// Is reports whether err is a *Error with the given code.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// Common constructors, one per failure kind named in the taxonomy above.

// DuplicatedTeam reports that a team id is already present in the store.
func DuplicatedTeam(id any) *Error {
	return New(CodeDuplicatedTeam, fmt.Sprintf("team %v already exists", id), WithMeta("team_id", id))
}

// TeamNotFound reports that a team id is absent from the store.
func TeamNotFound(id any) *Error {
	return New(CodeTeamNotFound, fmt.Sprintf("team %v not found", id), WithMeta("team_id", id))
}

// TeamNotEmpty reports that RemoveTeam was refused because members remain.
func TeamNotEmpty(id any) *Error {
	return New(CodeTeamNotEmpty, fmt.Sprintf("team %v still has members", id), WithMeta("team_id", id))
}

// SelfRelation reports that a team declared a relation with itself.
func SelfRelation(id any) *Error {
	return New(CodeSelfRelation, fmt.Sprintf("team %v cannot declare a relation with itself", id), WithMeta("team_id", id))
}

// KinshipRelation reports an illegal Kin relation entry.
func KinshipRelation(id any) *Error {
	return New(CodeKinshipRelation, fmt.Sprintf("team %v cannot declare kinship through a relation event", id), WithMeta("team_id", id))
}

// EntityNotFound reports that an entity id is absent from the store.
func EntityNotFound(id any) *Error {
	return New(CodeEntityNotFound, fmt.Sprintf("entity %v not found", id), WithMeta("entity_id", id))
}

// CreatureNotFound reports that a creature id is absent from the store or its team.
func CreatureNotFound(id any) *Error {
	return New(CodeCreatureNotFound, fmt.Sprintf("creature %v not found", id), WithMeta("creature_id", id))
}

// DuplicatedCreature reports that a creature id is already present in the store.
func DuplicatedCreature(id any) *Error {
	return New(CodeDuplicatedCreature, fmt.Sprintf("creature %v already exists", id), WithMeta("creature_id", id))
}

// NotAnActor reports that an entity id was expected to identify an actor.
func NotAnActor(id any) *Error {
	return New(CodeNotAnActor, fmt.Sprintf("entity %v is not an actor", id), WithMeta("entity_id", id))
}

// EntityNotAllowed reports that a team rule hook rejected a new member.
func EntityNotAllowed(teamID, entityID any) *Error {
	return New(CodeEntityNotAllowed, fmt.Sprintf("team %v rejected entity %v", teamID, entityID),
		WithMeta("team_id", teamID), WithMeta("entity_id", entityID))
}

// RoundInProgress reports that StartRound fired while a round was already active.
func RoundInProgress() *Error {
	return New(CodeRoundInProgress, "a round is already in progress")
}

// RoundNotStarted reports that an action required an active round and none was active.
func RoundNotStarted() *Error {
	return New(CodeRoundNotStarted, "no round is in progress")
}

// ActorNotActivable reports that an actor rejected an activation attempt.
func ActorNotActivable(id any) *Error {
	return New(CodeActorNotActivable, fmt.Sprintf("actor %v cannot activate this ability now", id), WithMeta("entity_id", id))
}

// InvalidEventRange reports a sink range that falls outside recorded history.
func InvalidEventRange(start, end, historyLen int) *Error {
	return New(CodeInvalidEventRange, fmt.Sprintf("event range [%d,%d) invalid for history of length %d", start, end, historyLen),
		WithMeta("start", start), WithMeta("end", end), WithMeta("history_len", historyLen))
}

// NonContiguousEventID reports a sink receiving an id that does not
// immediately follow the last one it observed.
func NonContiguousEventID(got, expected int) *Error {
	return New(CodeNonContiguousEventID, fmt.Sprintf("received event id %d, expected %d", got, expected),
		WithMeta("got", got), WithMeta("expected", expected))
}

// IncompatibleVersions reports a rule-binding version mismatch between client and server.
func IncompatibleVersions(client, server uint32) *Error {
	return New(CodeIncompatibleVersions, fmt.Sprintf("client version %d incompatible with server version %d", client, server),
		WithMeta("client_version", client), WithMeta("server_version", server))
}

// EventSinkError wraps an error a sink returned while receiving an event.
func EventSinkError(cause error) *Error {
	return New(CodeEventSinkError, "event sink error", WithCause(cause))
}

// EventSinkNotFound reports an operation naming an unknown sink id.
func EventSinkNotFound(id any) *Error {
	return New(CodeEventSinkNotFound, fmt.Sprintf("event sink %v not found", id), WithMeta("sink_id", id))
}

// ServerOnlyEvent reports a client attempting to fire a server-only event kind.
func ServerOnlyEvent(kind any) *Error {
	return New(CodeServerOnlyEvent, fmt.Sprintf("%v is a server-only event", kind), WithMeta("kind", kind))
}

// MissingAuthentication reports a client-origin event with no player id attached
// while authentication is enforced.
func MissingAuthentication() *Error {
	return New(CodeMissingAuthentication, "authentication is enforced and no player id was attached")
}

// AuthenticationError reports that the attached player id holds no rights over the target team.
func AuthenticationError(player, team any) *Error {
	return New(CodeAuthenticationError, fmt.Sprintf("player %v holds no rights over team %v", player, team),
		WithMeta("player_id", player), WithMeta("team_id", team))
}
