package core

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand"
	"slices"
)

var (
	ErrUnrankedTeam = errors.New("a group team is missing from the ranking table")
)

// A Tiebreaker resolves any teams that are still tied after all
// sub-rules of a rule set are exhausted.
type Tiebreaker interface {
	// Compare orders two tied teams. A negative result places a
	// ahead of b, a positive result places b ahead of a.
	// The comparison must be total over every pair the tiebreaker
	// is asked to resolve.
	Compare(a, b TeamId) int
}

// breakTies expands every remaining tied group with the tiebreaker.
// Singleton groups keep their position untouched, so the relative
// order of already decided teams is preserved.
func breakTies(order TiedGroups, tiebreaker Tiebreaker) GroupOrder {
	strict := make(GroupOrder, 0, len(order))

	for _, tie := range order {
		if len(tie) == 1 {
			strict = append(strict, tie[0])
			continue
		}

		expanded := slices.Clone(tie)
		slices.SortFunc(expanded, tiebreaker.Compare)
		strict = append(strict, expanded...)
	}

	return strict
}

// A ManualTiebreaker replays pairwise outcomes that were decided
// outside the engine, e.g. an actual drawing of lots, so historical
// standings can be reproduced exactly.
//
// The value follows the Compare convention: a negative outcome for
// the key [2]TeamId{a, b} places a ahead of b.
type ManualTiebreaker map[[2]TeamId]int

// Compare looks the pair up in both directions.
//
// Panics when the pair is missing in both since a manual outcome
// cannot be synthesized; an incomplete table is a configuration
// defect, not a runtime condition.
func (m ManualTiebreaker) Compare(a, b TeamId) int {
	if outcome, ok := m[[2]TeamId{a, b}]; ok {
		return outcome
	}
	if outcome, ok := m[[2]TeamId{b, a}]; ok {
		return -outcome
	}

	panic(fmt.Sprintf("no manual tiebreak outcome for teams %d and %d", a, b))
}

// A RandomTiebreaker draws an unbiased lot for every comparison.
//
// The draws are independent, so repeated comparisons of the same two
// teams are not mutually consistent within one sort. That is
// acceptable for a literal drawing of lots. Inject a seeded rng to
// make the draw reproducible under test.
type RandomTiebreaker struct {
	rng *rand.Rand
}

func NewRandomTiebreaker(rng *rand.Rand) *RandomTiebreaker {
	return &RandomTiebreaker{rng: rng}
}

func (t *RandomTiebreaker) Compare(a, b TeamId) int {
	if t.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// A RankingTiebreaker breaks ties by an external ranking table
// where a lower rank is better.
type RankingTiebreaker struct {
	ranks map[TeamId]TeamRank
}

// NewRankingTiebreaker validates that every team of the given groups
// has a rank, so a comparison can never fail mid-sort.
func NewRankingTiebreaker(
	groups []*Group,
	ranks map[TeamId]TeamRank,
) (*RankingTiebreaker, error) {
	for _, group := range groups {
		for _, team := range group.teams {
			if _, ok := ranks[team]; !ok {
				return nil, fmt.Errorf("%w: team %d", ErrUnrankedTeam, team)
			}
		}
	}

	return &RankingTiebreaker{ranks: ranks}, nil
}

func (t *RankingTiebreaker) Compare(a, b TeamId) int {
	return cmp.Compare(t.ranks[a], t.ranks[b])
}
