package core

import (
	"errors"

	"github.com/worldcupsim/gostandings/internal"
)

var (
	ErrRankOutOfRange = errors.New("the rank exceeds the size of a group")
)

// A StandingsNode is one standings computation of a group phase.
type StandingsNode interface {
	// A unique ID that is used as the graph node hash
	Id() int

	update()
}

// phaseRoot is the synthetic start node of the standings graph.
type phaseRoot struct {
	id int
}

func (r *phaseRoot) Id() int { return r.id }

func (r *phaseRoot) update() {}

// A GroupStanding caches the strict order of one group of a phase.
type GroupStanding struct {
	group *Group
	rules *Rules
	order GroupOrder

	id int
}

func (s *GroupStanding) Id() int { return s.id }

func (s *GroupStanding) update() {
	s.order = s.rules.Order(s.group)
}

// Order returns the standing computed by the last update.
func (s *GroupStanding) Order() GroupOrder {
	return s.order
}

func (s *GroupStanding) Group() *Group {
	return s.group
}

// A CrossGroupStanding ranks the teams that finished at the same
// rank in each group of the phase against each other, e.g. the
// third-placed teams of the Euro group stage competing for the
// remaining knockout berths.
//
// The compared teams never met, so only the all-games sub-rules of
// the phase's rule set apply; each team brings the statistics it
// collected in its own group. Remaining ties go to the rule set's
// tiebreaker.
type CrossGroupStanding struct {
	phase *GroupPhase
	rank  int
	order GroupOrder

	id int
}

func (s *CrossGroupStanding) Id() int { return s.id }

// Order returns the cross-group standing computed by the last
// update.
func (s *CrossGroupStanding) Order() GroupOrder {
	return s.order
}

func (s *CrossGroupStanding) update() {
	teams := make([]TeamId, 0, len(s.phase.standings))
	for _, standing := range s.phase.standings {
		teams = append(teams, standing.order[s.rank])
	}

	order := TiedGroups{teams}
	for _, rule := range s.phase.rules.subRules {
		if rule.Internal {
			continue
		}
		if order.IsStrict() {
			break
		}

		stats := s.crossStats(rule)
		refined := make(TiedGroups, 0, len(order))
		for _, tie := range order {
			if len(tie) == 1 {
				refined = append(refined, tie)
				continue
			}
			refined = append(refined, splitByStat(tie, stats)...)
		}
		order = refined
	}

	if strict, err := order.Strict(); err == nil {
		s.order = strict
		return
	}

	s.order = breakTies(order, s.phase.rules.tiebreaker)
}

// crossStats collects each compared team's statistic from its own
// group.
func (s *CrossGroupStanding) crossStats(rule SubRule) map[TeamId]StatValue {
	stats := make(map[TeamId]StatValue, len(s.phase.standings))

	for _, standing := range s.phase.standings {
		team := standing.order[s.rank]
		groupStats := teamStats(standing.group, standing.group.teams, rule.Stat, rule.FairPlay)
		stats[team] = groupStats[team]
	}

	return stats
}

// A GroupPhase orders several groups under one shared rule set.
//
// The standings are nodes of a dependency graph. When the games of
// one group change only the standings depending on that group are
// recomputed, in breadth first order, the way a late result ripples
// into the cross-group qualification.
type GroupPhase struct {
	rules     *Rules
	standings []*GroupStanding

	root  *phaseRoot
	graph *internal.DependencyGraph[StandingsNode]
}

func NewGroupPhase(groups []*Group, rules *Rules) *GroupPhase {
	phase := &GroupPhase{
		rules: rules,
		root:  &phaseRoot{id: internal.NextNodeId()},
		graph: internal.NewDependencyGraph[StandingsNode](),
	}
	phase.graph.AddVertex(phase.root)

	for _, group := range groups {
		standing := &GroupStanding{
			group: group,
			rules: rules,
			id:    internal.NextNodeId(),
		}
		phase.standings = append(phase.standings, standing)
		phase.graph.AddVertex(standing)
		phase.graph.AddEdge(phase.root, standing)
	}

	phase.Update(nil)

	return phase
}

// Standings returns the per-group standings in group order.
func (p *GroupPhase) Standings() []*GroupStanding {
	return p.standings
}

// Winners returns the winner of each group in group order.
func (p *GroupPhase) Winners() []TeamId {
	winners := make([]TeamId, 0, len(p.standings))
	for _, standing := range p.standings {
		winners = append(winners, standing.order.Winner())
	}
	return winners
}

// RunnersUp returns the runner-up of each group in group order.
func (p *GroupPhase) RunnersUp() []TeamId {
	runnersUp := make([]TeamId, 0, len(p.standings))
	for _, standing := range p.standings {
		runnersUp = append(runnersUp, standing.order.RunnerUp())
	}
	return runnersUp
}

// CrossStanding creates a standing that compares the teams finishing
// at the given rank (0 = winners) across all groups of the phase.
// It depends on every group standing and updates with them.
func (p *GroupPhase) CrossStanding(rank int) (*CrossGroupStanding, error) {
	for _, standing := range p.standings {
		if rank >= standing.group.NumTeams() {
			return nil, ErrRankOutOfRange
		}
	}

	cross := &CrossGroupStanding{
		phase: p,
		rank:  rank,
		id:    internal.NextNodeId(),
	}
	p.graph.AddVertex(cross)
	for _, standing := range p.standings {
		p.graph.AddEdge(standing, cross)
	}

	cross.update()

	return cross, nil
}

// Update recomputes the standings reachable from start in breadth
// first order. A nil start updates everything.
func (p *GroupPhase) Update(start StandingsNode) {
	if start == nil {
		start = p.root
	}

	for node := range p.graph.BreadthSearchIter(start) {
		node.update()
	}
}

// Refresh replaces the group of the ith standing, e.g. after a new
// result arrived, and propagates the change to every dependant
// standing.
func (p *GroupPhase) Refresh(i int, group *Group) {
	standing := p.standings[i]
	standing.group = group
	p.Update(standing)
}
