package game

import (
	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/evaluator"
)

// Player is the mutable per-seat state for one hand. There is a single owner
// for each record (the table), and betting/phase code mutates it in place.
//
// Stack + TotalInvested is constant for the duration of a hand except where
// a betting action moves chips from one to the other.
type Player struct {
	Seat            int
	Stack           int // chips not yet committed this hand
	Bet             int // chips committed on the current street
	TotalInvested   int // chips committed across the whole hand
	Folded          bool
	AllIn           bool
	Cards           []deck.Card // empty until dealt, then exactly 2
	ActedThisStreet bool

	// Set by EvaluateWinners at showdown.
	HandRank        evaluator.HandRank
	HandDescription string
}

// CanAct reports whether the player can still take betting actions.
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn
}

// InHand reports whether the player is still contesting the pot.
func (p *Player) InHand() bool {
	return !p.Folded
}
