// Package evaluator ranks poker hands. Given 5 to 7 cards it finds the best
// 5-card hand, encoding category plus every tie-break kicker into a single
// comparable HandRank so that two evaluations compare with plain < > ==.
package evaluator

import (
	"fmt"

	"github.com/lox/holdem/internal/deck"
)

// HandRank represents the strength of a poker hand. Higher is stronger.
// The high 4 bits are the hand category, the remaining bits break ties.
type HandRank uint32

const (
	HighCard HandRank = iota << 28
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

const categoryMask = HandRank(0xF0000000)

// Category returns the hand category with tie-break bits stripped.
func (hr HandRank) Category() HandRank {
	return hr & categoryMask
}

// String returns the category name.
func (hr HandRank) String() string {
	switch hr.Category() {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Result is the outcome of evaluating a set of cards.
type Result struct {
	Category    HandRank
	Rank        HandRank
	Description string
}

// Evaluate finds the best 5-card hand among 5 to 7 cards by trying every
// 5-card subset and keeping the highest rank.
func Evaluate(cards []deck.Card) (Result, error) {
	n := len(cards)
	if n < 5 || n > 7 {
		return Result{}, fmt.Errorf("evaluator: need 5 to 7 cards, got %d", n)
	}
	seen := make(map[deck.Card]bool, n)
	for _, c := range cards {
		if seen[c] {
			return Result{}, fmt.Errorf("evaluator: duplicate card %s", c)
		}
		seen[c] = true
	}

	var best HandRank
	var hand [5]deck.Card

	// Choosing 5 of n is the same as skipping n-5 cards, so the subsets
	// are walked by the skipped indices.
	switch n {
	case 5:
		copy(hand[:], cards)
		best = evaluate5(hand)
	case 6:
		for skip := 0; skip < n; skip++ {
			k := 0
			for i, c := range cards {
				if i == skip {
					continue
				}
				hand[k] = c
				k++
			}
			if r := evaluate5(hand); r > best {
				best = r
			}
		}
	case 7:
		for skip1 := 0; skip1 < n; skip1++ {
			for skip2 := skip1 + 1; skip2 < n; skip2++ {
				k := 0
				for i, c := range cards {
					if i == skip1 || i == skip2 {
						continue
					}
					hand[k] = c
					k++
				}
				if r := evaluate5(hand); r > best {
					best = r
				}
			}
		}
	}

	return Result{
		Category:    best.Category(),
		Rank:        best,
		Description: describe(best),
	}, nil
}

// evaluate5 ranks exactly five cards.
func evaluate5(hand [5]deck.Card) HandRank {
	var counts [13]int
	ranksMask := uint32(0)
	flush := true
	for i, c := range hand {
		r := rankIndex(c.Rank)
		counts[r]++
		ranksMask |= 1 << r
		if i > 0 && c.Suit != hand[0].Suit {
			flush = false
		}
	}

	straightHigh := straightHighCard(ranksMask)

	if flush && straightHigh >= 0 {
		return StraightFlush | HandRank(straightHigh)
	}

	if quad := highestWithCount(counts, 4); quad >= 0 {
		kicker := highestExcept(counts, quad, -1)
		return FourOfAKind | HandRank(quad)<<4 | HandRank(kicker)
	}

	trips := highestWithCount(counts, 3)
	pair := highestWithCount(counts, 2)
	if trips >= 0 && pair >= 0 {
		return FullHouse | HandRank(trips)<<4 | HandRank(pair)
	}

	if flush {
		return Flush | HandRank(ranksMask)
	}
	if straightHigh >= 0 {
		return Straight | HandRank(straightHigh)
	}

	if trips >= 0 {
		kickers := ranksMask &^ (1 << trips)
		return ThreeOfAKind | HandRank(trips)<<13 | HandRank(kickers)
	}

	if pair >= 0 {
		if second := highestWithCount2Except(counts, pair); second >= 0 {
			kicker := ranksMask &^ (1<<pair | 1<<second)
			return TwoPair | HandRank(pair)<<17 | HandRank(second)<<13 | HandRank(kicker)
		}
		kickers := ranksMask &^ (1 << pair)
		return Pair | HandRank(pair)<<13 | HandRank(kickers)
	}

	return HighCard | HandRank(ranksMask)
}

// straightHighCard returns the rank index of the straight's high card, or -1.
// The wheel (A-2-3-4-5) reports Five as its high card, ranking it below the
// 6-high straight.
func straightHighCard(ranksMask uint32) int {
	const wheel = 1<<12 | 0xF // A + 2-3-4-5
	if ranksMask == wheel {
		return rankIndex(deck.Five)
	}
	for high := 12; high >= 4; high-- {
		run := uint32(0x1F) << (high - 4)
		if ranksMask == run {
			return high
		}
	}
	return -1
}

func highestWithCount(counts [13]int, n int) int {
	for r := 12; r >= 0; r-- {
		if counts[r] == n {
			return r
		}
	}
	return -1
}

func highestWithCount2Except(counts [13]int, except int) int {
	for r := 12; r >= 0; r-- {
		if r != except && counts[r] == 2 {
			return r
		}
	}
	return -1
}

func highestExcept(counts [13]int, except1, except2 int) int {
	for r := 12; r >= 0; r-- {
		if r != except1 && r != except2 && counts[r] > 0 {
			return r
		}
	}
	return -1
}

func rankIndex(r deck.Rank) int {
	return int(r - deck.Two)
}

func indexRank(i int) deck.Rank {
	return deck.Rank(i) + deck.Two
}
