package core

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestNewPlayedGameSameTeams(t *testing.T) {
	_, err := NewPlayedGame(0, 1, 1, Score{}, FairPlayScore{}, time.Time{})
	if !errors.Is(err, ErrSameTeams) {
		t.Fatal("a game of a team against itself was accepted")
	}
}

func TestNewGroupInfersTeams(t *testing.T) {
	group := testGroup(t,
		playedGame(t, 0, 3, 1, 0, 0),
		playedGame(t, 1, 2, 3, 0, 0),
	)

	if !reflect.DeepEqual(group.TeamIds(), []TeamId{1, 2, 3}) {
		t.Fatal("the team set was not inferred from the game participants")
	}
}

func TestNewGroupForeignParticipant(t *testing.T) {
	games := []*PlayedGame{playedGame(t, 0, 0, 5, 1, 0)}

	_, err := NewGroup([]TeamId{0, 1}, games)
	if !errors.Is(err, ErrTeamNotInGroup) {
		t.Fatal("a game participant outside the team list was accepted")
	}
}

func TestNewGroupEmpty(t *testing.T) {
	if _, err := NewGroup(nil, nil); !errors.Is(err, ErrNoTeams) {
		t.Fatal("an empty group was accepted")
	}
}
