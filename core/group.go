package core

import (
	"errors"
	"slices"
)

var (
	ErrTeamNotInGroup = errors.New("a game participant is not a member of the group")
	ErrNoTeams        = errors.New("the group has no teams")
)

// A Group is the read-only input to the ordering: the teams of one
// round robin group and the games they have played so far.
type Group struct {
	teams []TeamId
	games []*PlayedGame
}

// NewGroup validates and creates a group.
//
// When teams is empty the team set is inferred from the game
// participants. An explicit team list may contain teams without any
// games but every game participant must be a listed team.
func NewGroup(teams []TeamId, games []*PlayedGame) (*Group, error) {
	if len(teams) == 0 {
		teams = teamsFromGames(games)
	} else {
		teams = dedupe(teams)
		for _, game := range games {
			if !slices.Contains(teams, game.Home) || !slices.Contains(teams, game.Away) {
				return nil, ErrTeamNotInGroup
			}
		}
	}

	if len(teams) == 0 {
		return nil, ErrNoTeams
	}

	group := &Group{
		teams: teams,
		games: games,
	}

	return group, nil
}

// TeamIds returns the teams of the group in a stable order.
func (g *Group) TeamIds() []TeamId {
	return slices.Clone(g.teams)
}

func (g *Group) NumTeams() int {
	return len(g.teams)
}

func (g *Group) Games() []*PlayedGame {
	return g.games
}

func teamsFromGames(games []*PlayedGame) []TeamId {
	teams := make([]TeamId, 0, 2*len(games))
	for _, game := range games {
		teams = append(teams, game.Home, game.Away)
	}

	teams = dedupe(teams)
	slices.Sort(teams)
	return teams
}

func dedupe(teams []TeamId) []TeamId {
	deduped := make([]TeamId, 0, len(teams))
	for _, team := range teams {
		if !slices.Contains(deduped, team) {
			deduped = append(deduped, team)
		}
	}
	return deduped
}
