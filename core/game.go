package core

import (
	"errors"
	"time"
)

var (
	ErrSameTeams = errors.New("home and away team are the same")
)

// GameId identifies a game within a tournament.
type GameId uint32

type GoalCount int

// Score is the final score of a played game.
type Score struct {
	Home GoalCount `json:"home"`
	Away GoalCount `json:"away"`
}

// CardCount holds the disciplinary cards shown to one side of a game.
// A second yellow and a yellow followed by a direct red are counted
// separately from their plain variants since the competition
// regulations weigh them differently.
type CardCount struct {
	Yellow       int `json:"yellow"`
	SecondYellow int `json:"secondYellow"`
	DirectRed    int `json:"directRed"`
	YellowAndRed int `json:"yellowAndRed"`
}

// FairPlayScore holds the cards of both sides of a game.
type FairPlayScore struct {
	Home CardCount `json:"home"`
	Away CardCount `json:"away"`
}

// A PlayedGame is a completed group game.
//
// It is immutable once constructed; the ordering only reads it.
type PlayedGame struct {
	Id GameId

	// The participating teams; always two distinct
	// members of the same group
	Home, Away TeamId

	Score    Score
	FairPlay FairPlayScore

	// The time the game was played
	Date time.Time
}

// NewPlayedGame validates and creates a played group game.
func NewPlayedGame(
	id GameId,
	home, away TeamId,
	score Score,
	fairPlay FairPlayScore,
	date time.Time,
) (*PlayedGame, error) {
	if home == away {
		return nil, ErrSameTeams
	}

	game := &PlayedGame{
		Id:       id,
		Home:     home,
		Away:     away,
		Score:    score,
		FairPlay: fairPlay,
		Date:     date,
	}

	return game, nil
}
