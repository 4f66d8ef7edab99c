package game

import (
	"fmt"
	"sort"
)

// SeatMap holds the hand's players keyed by seat number. Iteration order is
// always ascending seat number; next-seat wraparound and odd-chip assignment
// both rely on that contract.
type SeatMap struct {
	players map[int]*Player
	seats   []int // ascending
}

// NewSeatMap returns an empty seat map.
func NewSeatMap() *SeatMap {
	return &SeatMap{players: make(map[int]*Player)}
}

// Add inserts a player. Seat numbers must be positive and unique.
func (sm *SeatMap) Add(p *Player) error {
	if p.Seat <= 0 {
		return fmt.Errorf("seat number must be positive, got %d", p.Seat)
	}
	if _, exists := sm.players[p.Seat]; exists {
		return fmt.Errorf("seat %d already taken", p.Seat)
	}
	sm.players[p.Seat] = p
	sm.seats = append(sm.seats, p.Seat)
	sort.Ints(sm.seats)
	return nil
}

// Get returns the player at seat, or nil.
func (sm *SeatMap) Get(seat int) *Player {
	return sm.players[seat]
}

// Seats returns the seat numbers in ascending order.
func (sm *SeatMap) Seats() []int {
	return sm.seats
}

// Len returns the number of seats.
func (sm *SeatMap) Len() int {
	return len(sm.seats)
}

// Each calls fn for every player in ascending seat order.
func (sm *SeatMap) Each(fn func(*Player)) {
	for _, seat := range sm.seats {
		fn(sm.players[seat])
	}
}

// NextSeat returns the seat after from in ascending order, wrapping past the
// highest seat back to the lowest. It does not skip folded or all-in seats;
// see NextActiveSeat for that.
func (sm *SeatMap) NextSeat(from int) int {
	for _, seat := range sm.seats {
		if seat > from {
			return seat
		}
	}
	return sm.seats[0]
}

// InHandCount returns how many players have not folded.
func (sm *SeatMap) InHandCount() int {
	n := 0
	sm.Each(func(p *Player) {
		if p.InHand() {
			n++
		}
	})
	return n
}

// ActiveCount returns how many players can still act (not folded, not all-in).
func (sm *SeatMap) ActiveCount() int {
	n := 0
	sm.Each(func(p *Player) {
		if p.CanAct() {
			n++
		}
	})
	return n
}

// TotalInvested sums every player's committed chips; the pot is derived from
// this rather than tracked independently.
func (sm *SeatMap) TotalInvested() int {
	total := 0
	sm.Each(func(p *Player) {
		total += p.TotalInvested
	})
	return total
}
