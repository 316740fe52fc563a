package core

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStandingsTable(t *testing.T) {
	group := testGroup(t,
		playedGame(t, 0, 0, 1, 2, 0),
		playedGame(t, 1, 0, 2, 1, 1),
		playedGame(t, 2, 1, 2, 0, 3),
	)

	table := StandingsTable(group, GroupOrder{2, 0, 1})

	want := []StandingsRow{
		{Rank: 1, Team: 2, Played: 2, Wins: 1, Draws: 1, GoalsFor: 4, GoalsAgainst: 1, GoalDiff: 3, Points: 4},
		{Rank: 2, Team: 0, Played: 2, Wins: 1, Draws: 1, GoalsFor: 3, GoalsAgainst: 1, GoalDiff: 2, Points: 4},
		{Rank: 3, Team: 1, Played: 2, Losses: 2, GoalsFor: 0, GoalsAgainst: 5, GoalDiff: -5, Points: 0},
	}
	if !reflect.DeepEqual(table, want) {
		t.Fatalf("got table %+v, want %+v", table, want)
	}
}

func TestMarshalStandings(t *testing.T) {
	group := testGroup(t, playedGame(t, 0, 0, 1, 1, 0))

	data, err := MarshalStandings(group, GroupOrder{0, 1})
	if err != nil {
		t.Fatal(err)
	}

	var table []StandingsRow
	if err := json.Unmarshal(data, &table); err != nil {
		t.Fatal(err)
	}
	if len(table) != 2 || table[0].Team != 0 || table[0].Rank != 1 {
		t.Fatal("the marshalled table does not match the order")
	}
}
