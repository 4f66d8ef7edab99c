package game

import (
	"github.com/lox/holdem/internal/deck"
)

// PlayerSnapshot is the wire-friendly projection of one seat.
type PlayerSnapshot struct {
	Seat            int      `json:"seat"`
	Stack           int      `json:"stack"`
	Bet             int      `json:"bet"`
	TotalInvested   int      `json:"totalInvested"`
	Folded          bool     `json:"folded"`
	AllIn           bool     `json:"allIn"`
	Cards           []string `json:"cards,omitempty"`
	HandRank        uint32   `json:"handRank,omitempty"`
	HandDescription string   `json:"handDescription,omitempty"`
}

// Snapshot is a read-only projection of the table, shaped for serialization
// onto a real-time channel. Cards are 2-character codes ("AS", "TD").
type Snapshot struct {
	Phase          string                 `json:"phase"`
	Board          []string               `json:"board"`
	Pot            int                    `json:"pot"`
	CurrentBet     int                    `json:"currentBet"`
	ActionSeat     int                    `json:"actionSeat"`
	DealerSeat     int                    `json:"dealerSeat"`
	SmallBlindSeat int                    `json:"smallBlindSeat"`
	BigBlindSeat   int                    `json:"bigBlindSeat"`
	Players        map[int]PlayerSnapshot `json:"players"`
}

// Snapshot captures the current hand state. The caller owns the result; it
// shares no memory with the live table.
func (g *GameService) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:          g.phase.String(),
		Board:          deck.Codes(g.board),
		Pot:            g.Pot(),
		CurrentBet:     g.currentBet,
		ActionSeat:     g.actionSeat,
		DealerSeat:     g.dealerSeat,
		SmallBlindSeat: g.smallBlindSeat,
		BigBlindSeat:   g.bigBlindSeat,
		Players:        make(map[int]PlayerSnapshot),
	}
	if g.players == nil {
		return snap
	}
	g.players.Each(func(p *Player) {
		snap.Players[p.Seat] = PlayerSnapshot{
			Seat:            p.Seat,
			Stack:           p.Stack,
			Bet:             p.Bet,
			TotalInvested:   p.TotalInvested,
			Folded:          p.Folded,
			AllIn:           p.AllIn,
			Cards:           deck.Codes(p.Cards),
			HandRank:        uint32(p.HandRank),
			HandDescription: p.HandDescription,
		}
	})
	return snap
}
