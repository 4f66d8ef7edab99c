package game

import "sort"

// SidePot is one eligibility tier of the pot. Folded players contribute
// chips to side pots but never appear in the eligible set.
type SidePot struct {
	Amount        int
	EligibleSeats []int // ascending seat order
}

// Winner is one seat's total award for the hand.
type Winner struct {
	Seat   int
	Amount int
	Reason string
}

// SidePots partitions every player's totalInvested into contribution tiers.
// Each distinct invested amount forms a tier boundary; the pot for a tier
// holds (tier - previous tier) chips from every player who invested at least
// that much. The tier amounts sum exactly to the total invested.
func SidePots(players *SeatMap) []SidePot {
	tierSet := make(map[int]bool)
	players.Each(func(p *Player) {
		if p.TotalInvested > 0 {
			tierSet[p.TotalInvested] = true
		}
	})
	if len(tierSet) == 0 {
		return nil
	}

	tiers := make([]int, 0, len(tierSet))
	for t := range tierSet {
		tiers = append(tiers, t)
	}
	sort.Ints(tiers)

	pots := make([]SidePot, 0, len(tiers))
	prev := 0
	for _, tier := range tiers {
		pot := SidePot{}
		players.Each(func(p *Player) {
			if p.TotalInvested < tier {
				return
			}
			pot.Amount += tier - prev
			if p.InHand() {
				pot.EligibleSeats = append(pot.EligibleSeats, p.Seat)
			}
		})
		pots = append(pots, pot)
		prev = tier
	}

	// A tier can end up with nobody eligible if every player who reached it
	// folded (a timeout fold after a raise, say). Those chips still belong
	// to the hand; fold them into the nearest pot that has a winner.
	out := pots[:0]
	orphaned := 0
	for i := len(pots) - 1; i >= 0; i-- {
		if len(pots[i].EligibleSeats) == 0 {
			orphaned += pots[i].Amount
			continue
		}
		pots[i].Amount += orphaned
		orphaned = 0
		out = append(out, pots[i])
	}
	// reverse back to lowest-tier-first order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// CalculateWinners assigns every side pot to the best ranked eligible hands
// and returns one entry per winning seat, in ascending seat order. Ties
// split a pot as evenly as integer division allows; the remainder goes to
// the first tied winner in ascending seat order.
//
// The awards always sum exactly to the players' total invested chips.
func CalculateWinners(players *SeatMap) []Winner {
	awards := make(map[int]int)
	reasons := make(map[int]string)

	for _, pot := range SidePots(players) {
		winners := potWinners(players, pot)
		if len(winners) == 0 {
			continue
		}
		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)
		for i, seat := range winners {
			amount := share
			if i == 0 {
				amount += remainder
			}
			awards[seat] += amount
			reasons[seat] = winReason(players.Get(seat))
		}
	}

	result := make([]Winner, 0, len(awards))
	for _, seat := range players.Seats() {
		if amount, ok := awards[seat]; ok {
			result = append(result, Winner{Seat: seat, Amount: amount, Reason: reasons[seat]})
		}
	}
	return result
}

// potWinners returns the eligible seats sharing the pot's best hand rank,
// ascending. A sole eligible player wins outright, ranked or not.
func potWinners(players *SeatMap, pot SidePot) []int {
	if len(pot.EligibleSeats) == 1 {
		return pot.EligibleSeats
	}

	var winners []int
	best := players.Get(pot.EligibleSeats[0]).HandRank
	for _, seat := range pot.EligibleSeats {
		if r := players.Get(seat).HandRank; r > best {
			best = r
		}
	}
	for _, seat := range pot.EligibleSeats {
		if players.Get(seat).HandRank == best {
			winners = append(winners, seat)
		}
	}
	return winners
}

func winReason(p *Player) string {
	if p.HandDescription != "" {
		return p.HandDescription
	}
	return "all other players folded"
}
