package core

import (
	"cmp"
	"errors"
	"slices"
)

var (
	ErrNonStrictOrder = errors.New("the order is not strict")
)

// TiedGroups is the working representation of a group order:
// disjoint subsets of still tied teams, sorted from best to worst.
// Together the subsets contain every team of the group exactly once.
type TiedGroups [][]TeamId

// GroupOrder is a strict, best-to-worst order of the teams of a
// group. Index 0 is the group winner.
type GroupOrder []TeamId

func (o GroupOrder) Winner() TeamId {
	return o[0]
}

func (o GroupOrder) RunnerUp() TeamId {
	return o[1]
}

// IsStrict reports whether every tied subset holds a single team.
func (t TiedGroups) IsStrict() bool {
	for _, tie := range t {
		if len(tie) != 1 {
			return false
		}
	}
	return true
}

// Strict converts the tied groups into a GroupOrder.
// Returns ErrNonStrictOrder when some teams are still tied.
func (t TiedGroups) Strict() (GroupOrder, error) {
	if !t.IsStrict() {
		return nil, ErrNonStrictOrder
	}

	order := make(GroupOrder, 0, len(t))
	for _, tie := range t {
		order = append(order, tie[0])
	}

	return order, nil
}

// A SubRule splits a tied subset of teams by one statistic.
//
// When Internal is set only the games among the tied teams count,
// otherwise all games of the group do. FairPlay weighs the cards
// when Stat is StatFairPlay and is ignored for every other kind.
type SubRule struct {
	Stat     StatKind
	Internal bool
	FairPlay FairPlayValuer
}

// apply splits the tied teams into smaller tied groups, best first.
// Singleton ties never reach here; the refinement loop forwards them
// unchanged.
func (r SubRule) apply(group *Group, tied []TeamId) TiedGroups {
	statTeams := tied
	if !r.Internal {
		statTeams = group.teams
	}

	stats := teamStats(group, statTeams, r.Stat, r.FairPlay)
	return splitByStat(tied, stats)
}

// splitByStat buckets the teams by their statistic and returns the
// buckets in descending stat order. Teams inside a bucket keep their
// input order.
func splitByStat(teams []TeamId, stats map[TeamId]StatValue) TiedGroups {
	buckets := make(map[StatValue][]TeamId)
	for _, team := range teams {
		value := stats[team]
		buckets[value] = append(buckets[value], team)
	}

	values := make([]StatValue, 0, len(buckets))
	for v := range buckets {
		values = append(values, v)
	}
	slices.SortFunc(values, func(a, b StatValue) int { return cmp.Compare(b, a) })

	split := make(TiedGroups, 0, len(values))
	for _, v := range values {
		split = append(split, buckets[v])
	}

	return split
}

// refine greedily applies the sub-rules in priority order.
//
// Each rule only sees the subsets that the previous rules left tied;
// decided teams are passed through untouched. The loop stops as soon
// as the order is strict or the rules are exhausted.
func refine(group *Group, subRules []SubRule) TiedGroups {
	order := TiedGroups{group.TeamIds()}

	for _, rule := range subRules {
		if order.IsStrict() {
			break
		}

		refined := make(TiedGroups, 0, len(order))
		for _, tie := range order {
			if len(tie) == 1 {
				refined = append(refined, tie)
				continue
			}
			refined = append(refined, rule.apply(group, tie)...)
		}

		order = refined
	}

	return order
}
