// Package fairplay provides the card weight tables that turn the
// disciplinary cards of a game into the fair-play statistic used as
// a late tie-break criterion.
//
// The weight tables differ between competitions, which is why they
// live outside the ordering core.
package fairplay

import (
	"github.com/worldcupsim/gostandings/core"
)

// Weights assigns the penalty of each card type. The penalties are
// negative so that, like every other statistic, a higher fair-play
// total is better.
type Weights struct {
	Yellow       core.StatValue
	SecondYellow core.StatValue
	DirectRed    core.StatValue
	YellowAndRed core.StatValue
}

// Value sums the weighted cards of one side of a game.
func (w Weights) Value(cards core.CardCount) core.StatValue {
	value := core.StatValue(cards.Yellow) * w.Yellow
	value += core.StatValue(cards.SecondYellow) * w.SecondYellow
	value += core.StatValue(cards.DirectRed) * w.DirectRed
	value += core.StatValue(cards.YellowAndRed) * w.YellowAndRed
	return value
}

// Fifa2018 returns the card weights of the 2018 World Cup
// regulations.
func Fifa2018() Weights {
	return Weights{
		Yellow:       -1,
		SecondYellow: -3,
		DirectRed:    -4,
		YellowAndRed: -5,
	}
}

// UefaEuro2020 returns the card weights of the Euro 2020
// regulations. Unlike the Fifa table, a direct red weighs the same
// as a second yellow.
func UefaEuro2020() Weights {
	return Weights{
		Yellow:       -1,
		SecondYellow: -3,
		DirectRed:    -3,
		YellowAndRed: -5,
	}
}
