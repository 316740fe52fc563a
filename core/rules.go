package core

import (
	"math/rand"
	"slices"
)

// Rules is one named regulation: a prioritised list of sub-rules and
// the tiebreaker that guarantees a strict result.
//
// New regulations are composed from the same primitives; see the
// FifaWorldCup2018 and UefaEuro2020 constructors.
type Rules struct {
	subRules   []SubRule
	tiebreaker Tiebreaker
}

func NewRules(subRules []SubRule, tiebreaker Tiebreaker) *Rules {
	rules := &Rules{
		subRules:   slices.Clone(subRules),
		tiebreaker: tiebreaker,
	}
	return rules
}

// Order computes the strict standing of the group.
//
// The sub-rules are applied greedily: a rule only sees the subsets
// that the previous rules left tied, so cheap primary criteria decide
// most standings before any head-to-head statistic is computed.
// Whatever remains tied after the last rule is resolved by the
// tiebreaker.
func (r *Rules) Order(group *Group) GroupOrder {
	order := refine(group, r.subRules)

	if strict, err := order.Strict(); err == nil {
		return strict
	}

	return breakTies(order, r.tiebreaker)
}

// Fifa2018SubRules returns the sub-rules of the 2018 World Cup group
// ordering. Tied teams are separated by, in order:
//
//  1. Points in all group games
//  2. Goal difference in all group games
//  3. Goals scored in all group games
//  4. Points in the games between the teams concerned
//  5. Goal difference in the games between the teams concerned
//  6. Goals scored in the games between the teams concerned
//  7. Fair play points in all group games
//
// The fairPlay valuer supplies the card weights of criterion 7.
func Fifa2018SubRules(fairPlay FairPlayValuer) []SubRule {
	return []SubRule{
		{Stat: StatPoints},
		{Stat: StatGoalDiff},
		{Stat: StatGoalsScored},
		{Stat: StatPoints, Internal: true},
		{Stat: StatGoalDiff, Internal: true},
		{Stat: StatGoalsScored, Internal: true},
		{Stat: StatFairPlay, FairPlay: fairPlay},
	}
}

// FifaWorldCup2018 returns the group ordering rules of the 2018
// World Cup: the Fifa2018SubRules followed by a drawing of lots.
func FifaWorldCup2018(fairPlay FairPlayValuer, rng *rand.Rand) *Rules {
	return NewRules(Fifa2018SubRules(fairPlay), NewRandomTiebreaker(rng))
}

// UefaEuro2020SubRules returns the sub-rules of the Euro 2020 group
// ordering. Tied teams are separated by, in order:
//
//  1. Points in all group games
//  2. Points in the games between the teams concerned
//  3. Goal difference in the games between the teams concerned
//  4. Goals scored in the games between the teams concerned
//  5. Goal difference in all group games
//  6. Wins in all group games
//  7. Fair play points in the games between the teams concerned
//
// The fairPlay valuer supplies the card weights of criterion 7.
func UefaEuro2020SubRules(fairPlay FairPlayValuer) []SubRule {
	return []SubRule{
		{Stat: StatPoints},
		{Stat: StatPoints, Internal: true},
		{Stat: StatGoalDiff, Internal: true},
		{Stat: StatGoalsScored, Internal: true},
		{Stat: StatGoalDiff},
		{Stat: StatWins},
		{Stat: StatFairPlay, Internal: true, FairPlay: fairPlay},
	}
}

// UefaEuro2020 returns the group ordering rules of the Euro 2020:
// the UefaEuro2020SubRules followed by the position in the European
// Qualifiers overall ranking.
//
// The ranking tiebreaker must be constructed over every group the
// rules will order; see NewRankingTiebreaker.
func UefaEuro2020(fairPlay FairPlayValuer, ranking *RankingTiebreaker) *Rules {
	return NewRules(UefaEuro2020SubRules(fairPlay), ranking)
}
