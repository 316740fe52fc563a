package core

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestBreakTiesKeepsStrictOrder(t *testing.T) {
	order := TiedGroups{{2}, {0}, {1}}

	strict := breakTies(order, ManualTiebreaker{})
	if !reflect.DeepEqual(strict, GroupOrder{2, 0, 1}) {
		t.Fatal("breaking an already strict order changed it")
	}
}

func TestBreakTiesExpandsInPlace(t *testing.T) {
	manual := ManualTiebreaker{
		{1, 2}: -1,
	}
	order := TiedGroups{{0}, {2, 1}, {3}}

	strict := breakTies(order, manual)
	if !reflect.DeepEqual(strict, GroupOrder{0, 1, 2, 3}) {
		t.Fatalf("got %v, the tied pair was not expanded in its position", strict)
	}
}

func TestManualTiebreakerBothDirections(t *testing.T) {
	manual := ManualTiebreaker{
		{0, 1}: -1,
	}

	if manual.Compare(0, 1) != -1 {
		t.Fatal("the recorded outcome was not returned")
	}
	if manual.Compare(1, 0) != 1 {
		t.Fatal("the reversed lookup did not invert the outcome")
	}
}

func TestManualTiebreakerMissingPairPanics(t *testing.T) {
	manual := ManualTiebreaker{}

	defer func() {
		if recover() == nil {
			t.Fatal("a missing manual outcome did not panic")
		}
	}()
	manual.Compare(0, 1)
}

func TestRandomTiebreaker(t *testing.T) {
	tiebreaker := NewRandomTiebreaker(rand.New(rand.NewSource(42)))

	less, greater := 0, 0
	for range 100 {
		switch tiebreaker.Compare(0, 1) {
		case -1:
			less += 1
		case 1:
			greater += 1
		default:
			t.Fatal("the draw produced something other than a binary outcome")
		}
	}

	if less == 0 || greater == 0 {
		t.Fatal("the draw never produced one of the two outcomes")
	}
}

func TestRankingTiebreaker(t *testing.T) {
	group := testGroup(t, playedGame(t, 0, 0, 1, 0, 0))

	ranking, err := NewRankingTiebreaker(
		[]*Group{group},
		map[TeamId]TeamRank{0: 2, 1: 1},
	)
	if err != nil {
		t.Fatal(err)
	}

	if ranking.Compare(1, 0) >= 0 {
		t.Fatal("the lower rank was not considered better")
	}
	if ranking.Compare(0, 1) <= 0 {
		t.Fatal("the higher rank was not considered worse")
	}
}

func TestRankingTiebreakerUnrankedTeam(t *testing.T) {
	group := testGroup(t,
		playedGame(t, 0, 0, 1, 0, 0),
		playedGame(t, 1, 0, 2, 0, 0),
	)

	_, err := NewRankingTiebreaker(
		[]*Group{group},
		map[TeamId]TeamRank{0: 1, 1: 2},
	)
	if !errors.Is(err, ErrUnrankedTeam) {
		t.Fatal("a group team without a rank did not fail the construction")
	}
}
