package core

// StatKind tags one of the per-game statistics that sub-rules can
// rank teams by. The catalogue is closed; every kind is dispatched
// through gameDeltas.
type StatKind int

const (
	StatPoints StatKind = iota
	StatGoalDiff
	StatGoalsScored
	StatWins
	StatFairPlay
)

// StatValue is the running total of one statistic for one team.
// Totals are summable and totally ordered; a higher value is better.
// The zero value is the identity every team starts from.
type StatValue int

// A FairPlayValuer converts the cards of one side of a game into a
// fair-play statistic where a higher value is better.
//
// Implementations live outside the core since every competition
// weighs the cards differently.
type FairPlayValuer interface {
	Value(cards CardCount) StatValue
}

// gameDeltas returns the home and away contribution of one game to
// the given statistic.
func gameDeltas(kind StatKind, fairPlay FairPlayValuer, game *PlayedGame) (home, away StatValue) {
	switch kind {
	case StatPoints:
		switch {
		case game.Score.Home > game.Score.Away:
			return 3, 0
		case game.Score.Home < game.Score.Away:
			return 0, 3
		default:
			return 1, 1
		}
	case StatGoalDiff:
		diff := StatValue(game.Score.Home - game.Score.Away)
		return diff, -diff
	case StatGoalsScored:
		return StatValue(game.Score.Home), StatValue(game.Score.Away)
	case StatWins:
		switch {
		case game.Score.Home > game.Score.Away:
			return 1, 0
		case game.Score.Home < game.Score.Away:
			return 0, 1
		default:
			return 0, 0
		}
	case StatFairPlay:
		return fairPlay.Value(game.FairPlay.Home), fairPlay.Value(game.FairPlay.Away)
	}

	panic("unknown stat kind")
}

// teamStats folds the statistic over the group's games.
//
// Every team in the teams slice starts at zero so teams without any
// counted games still appear in the result. Games where either
// participant is not in the slice are skipped, which restricts the
// fold to the internal games of a tied subset. Passing the full team
// set of the group counts every game.
func teamStats(
	group *Group,
	teams []TeamId,
	kind StatKind,
	fairPlay FairPlayValuer,
) map[TeamId]StatValue {
	stats := make(map[TeamId]StatValue, len(teams))
	for _, team := range teams {
		stats[team] = 0
	}

	for _, game := range group.games {
		homeStat, homeCounts := stats[game.Home]
		awayStat, awayCounts := stats[game.Away]
		if !homeCounts || !awayCounts {
			continue
		}

		deltaHome, deltaAway := gameDeltas(kind, fairPlay, game)
		stats[game.Home] = homeStat + deltaHome
		stats[game.Away] = awayStat + deltaAway
	}

	return stats
}
