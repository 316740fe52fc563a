package core

import (
	"encoding/json"
)

// A StandingsRow is one line of a marshalled standings table.
type StandingsRow struct {
	Rank         int       `json:"rank"`
	Team         TeamId    `json:"team"`
	Played       int       `json:"played"`
	Wins         int       `json:"wins"`
	Draws        int       `json:"draws"`
	Losses       int       `json:"losses"`
	GoalsFor     GoalCount `json:"goalsFor"`
	GoalsAgainst GoalCount `json:"goalsAgainst"`
	GoalDiff     int       `json:"goalDiff"`
	Points       StatValue `json:"points"`
}

// StandingsTable tallies the group's games into one row per team,
// sorted by the given strict order.
func StandingsTable(group *Group, order GroupOrder) []StandingsRow {
	rows := make(map[TeamId]*StandingsRow, group.NumTeams())
	for _, team := range group.teams {
		rows[team] = &StandingsRow{Team: team}
	}

	for _, game := range group.games {
		home := rows[game.Home]
		away := rows[game.Away]

		home.Played += 1
		away.Played += 1

		home.GoalsFor += game.Score.Home
		home.GoalsAgainst += game.Score.Away
		away.GoalsFor += game.Score.Away
		away.GoalsAgainst += game.Score.Home

		switch {
		case game.Score.Home > game.Score.Away:
			home.Wins += 1
			away.Losses += 1
			home.Points += 3
		case game.Score.Home < game.Score.Away:
			away.Wins += 1
			home.Losses += 1
			away.Points += 3
		default:
			home.Draws += 1
			away.Draws += 1
			home.Points += 1
			away.Points += 1
		}
	}

	table := make([]StandingsRow, 0, len(order))
	for i, team := range order {
		row := rows[team]
		row.Rank = i + 1
		row.GoalDiff = int(row.GoalsFor - row.GoalsAgainst)
		table = append(table, *row)
	}

	return table
}

// MarshalStandings renders the standings table of the group as JSON
// for downstream consumers.
func MarshalStandings(group *Group, order GroupOrder) ([]byte, error) {
	return json.Marshal(StandingsTable(group, order))
}
