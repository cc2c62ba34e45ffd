package battle

import "github.com/battlekit/engine/battleerr"

// Rights maps teams to the players authorized to act on their behalf.
// Removing a team removes its entry; adding rights to a team that does
// not exist in the store fails.
type Rights struct {
	store *Store
	byTeam map[TeamID]map[PlayerID]struct{}
}

// NewRights binds a Rights table to the store it validates team
// existence against.
func NewRights(store *Store) *Rights {
	return &Rights{store: store, byTeam: make(map[TeamID]map[PlayerID]struct{})}
}

// Add grants player rights on team. Fails with TeamNotFound if the team
// does not exist.
func (r *Rights) Add(player PlayerID, team TeamID) error {
	if _, ok := r.store.Team(team); !ok {
		return battleerr.TeamNotFound(team)
	}
	set, ok := r.byTeam[team]
	if !ok {
		set = make(map[PlayerID]struct{})
		r.byTeam[team] = set
	}
	set[player] = struct{}{}
	return nil
}

// Remove revokes player's rights on team. A no-op if the grant did not exist.
func (r *Rights) Remove(player PlayerID, team TeamID) {
	if set, ok := r.byTeam[team]; ok {
		delete(set, player)
	}
}

// RemoveTeam drops every right recorded for team.
func (r *Rights) RemoveTeam(team TeamID) {
	delete(r.byTeam, team)
}

// Has reports whether player holds rights on team.
func (r *Rights) Has(player PlayerID, team TeamID) bool {
	set, ok := r.byTeam[team]
	if !ok {
		return false
	}
	_, ok = set[player]
	return ok
}
