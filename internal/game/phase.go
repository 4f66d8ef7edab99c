package game

import (
	"github.com/lox/holdem/internal/deck"
)

// Phase is the hand's position in the street/state machine. Resolved is the
// early-terminal state reached when all but one player folds before showdown.
type Phase int

const (
	Preflop Phase = iota
	Flop
	Turn
	River
	Showdown
	Resolved
)

func (p Phase) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown", "resolved"}[p]
}

// Betting reports whether the phase is an open betting street.
func (p Phase) Betting() bool {
	return p <= River
}

// NextActiveSeat walks seats in ascending order starting after fromSeat,
// wrapping past the highest seat, and returns the first seat that can still
// act. It wraps all the way back to fromSeat itself when no other seat is
// eligible, and returns -1 when no seat at all can act.
func NextActiveSeat(players *SeatMap, fromSeat int) int {
	if players.Len() == 0 {
		return -1
	}
	seat := fromSeat
	for i := 0; i < players.Len(); i++ {
		seat = players.NextSeat(seat)
		if p := players.Get(seat); p != nil && p.CanAct() {
			return seat
		}
	}
	return -1
}

// beginStreet clears the previous street's wagering history: every in-hand
// player's street bet goes back to zero and acted flags reset. TotalInvested
// is untouched, which is what keeps the pot accounting correct.
func beginStreet(players *SeatMap) {
	players.Each(func(p *Player) {
		if p.InHand() {
			p.Bet = 0
			p.ActedThisStreet = false
		}
	})
}

// DealFlop resets the street state and draws three community cards.
func DealFlop(d *deck.Deck, players *SeatMap, board []deck.Card) []deck.Card {
	beginStreet(players)
	return d.DealFlop(board)
}

// DealTurn resets the street state and draws the fourth community card.
func DealTurn(d *deck.Deck, players *SeatMap, board []deck.Card) []deck.Card {
	beginStreet(players)
	return d.DealTurn(board)
}

// DealRiver resets the street state and draws the fifth community card.
func DealRiver(d *deck.Deck, players *SeatMap, board []deck.Card) []deck.Card {
	beginStreet(players)
	return d.DealRiver(board)
}

// RoundComplete reports whether the current betting round is finished:
// every player who can still act has acted this street and matched the
// current bet. With a single player left to act the acted flag is waived --
// they only owe action if their bet is short of the current bet. Blinds do
// not set the acted flag, which is what gives the big blind its preflop
// option.
func RoundComplete(players *SeatMap, currentBet int) bool {
	active := make([]*Player, 0, players.Len())
	players.Each(func(p *Player) {
		if p.CanAct() {
			active = append(active, p)
		}
	})

	switch len(active) {
	case 0:
		return true
	case 1:
		return active[0].Bet == currentBet
	}

	for _, p := range active {
		if !p.ActedThisStreet || p.Bet != currentBet {
			return false
		}
	}
	return true
}
