package evaluator

import (
	"fmt"
	"math/bits"

	"github.com/lox/holdem/internal/deck"
)

// describe renders a human-readable description by decoding the tie-break
// bits for the rank's category. The layout mirrors evaluate5's encoding.
func describe(hr HandRank) string {
	tie := uint32(hr &^ categoryMask)

	switch hr.Category() {
	case StraightFlush:
		high := indexRank(int(tie))
		if high == deck.Ace {
			return "Royal Flush"
		}
		return fmt.Sprintf("Straight Flush, %s High", high.Name())
	case FourOfAKind:
		quad := indexRank(int(tie >> 4))
		return fmt.Sprintf("Four of a Kind, %s", quad.Plural())
	case FullHouse:
		trips := indexRank(int(tie >> 4))
		pair := indexRank(int(tie & 0xF))
		return fmt.Sprintf("Full House, %s over %s", trips.Plural(), pair.Plural())
	case Flush:
		return fmt.Sprintf("Flush, %s High", topOfMask(tie).Name())
	case Straight:
		return fmt.Sprintf("Straight, %s High", indexRank(int(tie)).Name())
	case ThreeOfAKind:
		trips := indexRank(int(tie >> 13))
		return fmt.Sprintf("Three of a Kind, %s", trips.Plural())
	case TwoPair:
		hi := indexRank(int(tie >> 17))
		lo := indexRank(int((tie >> 13) & 0xF))
		return fmt.Sprintf("Two Pair, %s and %s", hi.Plural(), lo.Plural())
	case Pair:
		pair := indexRank(int(tie >> 13))
		return fmt.Sprintf("Pair of %s", pair.Plural())
	default:
		return fmt.Sprintf("%s High", topOfMask(tie).Name())
	}
}

// topOfMask returns the highest rank present in a 13-bit rank mask.
func topOfMask(mask uint32) deck.Rank {
	if mask == 0 {
		return 0
	}
	return indexRank(31 - bits.LeadingZeros32(mask))
}
