package evaluator

import (
	"testing"

	"github.com/lox/holdem/internal/deck"
)

func hand(t *testing.T, codes ...string) []deck.Card {
	t.Helper()
	cards, err := deck.ParseAll(codes...)
	if err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return cards
}

func mustEvaluate(t *testing.T, codes ...string) Result {
	t.Helper()
	res, err := Evaluate(hand(t, codes...))
	if err != nil {
		t.Fatalf("Evaluate(%v): %v", codes, err)
	}
	return res
}

func TestCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards []string
		want  HandRank
	}{
		{"high card", []string{"AS", "KD", "9H", "5C", "2S"}, HighCard},
		{"pair", []string{"AS", "AD", "9H", "5C", "2S"}, Pair},
		{"two pair", []string{"AS", "AD", "9H", "9C", "2S"}, TwoPair},
		{"trips", []string{"AS", "AD", "AH", "5C", "2S"}, ThreeOfAKind},
		{"straight", []string{"9S", "8D", "7H", "6C", "5S"}, Straight},
		{"wheel", []string{"AS", "2D", "3H", "4C", "5S"}, Straight},
		{"flush", []string{"AS", "KS", "9S", "5S", "2S"}, Flush},
		{"full house", []string{"AS", "AD", "AH", "9C", "9S"}, FullHouse},
		{"quads", []string{"AS", "AD", "AH", "AC", "2S"}, FourOfAKind},
		{"straight flush", []string{"9S", "8S", "7S", "6S", "5S"}, StraightFlush},
		{"royal flush", []string{"AS", "KS", "QS", "JS", "TS"}, StraightFlush},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustEvaluate(t, tt.cards...)
			if res.Category != tt.want {
				t.Errorf("category = %s, want %s", res.Category, tt.want)
			}
		})
	}
}

func TestCategoryOrdering(t *testing.T) {
	t.Parallel()

	// Each hand must outrank the one before it.
	hands := [][]string{
		{"AS", "KD", "9H", "5C", "2S"}, // ace high
		{"2S", "2D", "9H", "5C", "3S"}, // pair of twos
		{"2S", "2D", "3H", "3C", "4S"}, // two pair
		{"2S", "2D", "2H", "4C", "3S"}, // trips
		{"AS", "2D", "3H", "4C", "5S"}, // wheel
		{"2S", "3S", "7S", "8S", "9S"}, // flush
		{"2S", "2D", "2H", "3C", "3S"}, // full house
		{"2S", "2D", "2H", "2C", "3S"}, // quads
		{"AS", "2S", "3S", "4S", "5S"}, // steel wheel
	}

	prev := HandRank(0)
	for _, codes := range hands {
		res := mustEvaluate(t, codes...)
		if res.Rank <= prev {
			t.Errorf("%v ranked %d, expected above %d", codes, res.Rank, prev)
		}
		prev = res.Rank
	}
}

func TestWheelIsLowestStraight(t *testing.T) {
	t.Parallel()

	wheel := mustEvaluate(t, "AS", "2D", "3H", "4C", "5S")
	sixHigh := mustEvaluate(t, "2S", "3D", "4H", "5C", "6S")
	aceHigh := mustEvaluate(t, "AS", "KD", "QH", "JC", "TS")

	if wheel.Category != Straight {
		t.Fatalf("wheel category = %s", wheel.Category)
	}
	if wheel.Rank >= sixHigh.Rank {
		t.Error("wheel should rank below the six-high straight")
	}
	if sixHigh.Rank >= aceHigh.Rank {
		t.Error("six-high straight should rank below broadway")
	}
}

func TestKickersBreakTies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		better []string
		worse  []string
	}{
		{
			"pair kicker",
			[]string{"AS", "AD", "KH", "5C", "2S"},
			[]string{"AH", "AC", "QH", "5D", "2H"},
		},
		{
			"two pair high pair first",
			[]string{"AS", "AD", "2H", "2C", "3S"},
			[]string{"KS", "KD", "QH", "QC", "AH"},
		},
		{
			"full house trips decide",
			[]string{"3S", "3D", "3H", "2C", "2S"},
			[]string{"2H", "2D", "2C", "AS", "AD"},
		},
		{
			"flush by ranks",
			[]string{"AS", "9S", "8S", "7S", "2S"},
			[]string{"KH", "QH", "JH", "9H", "8H"},
		},
		{
			"quads kicker",
			[]string{"9S", "9D", "9H", "9C", "AS"},
			[]string{"9S", "9D", "9H", "9C", "KS"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustEvaluate(t, tt.better...)
			w := mustEvaluate(t, tt.worse...)
			if b.Rank <= w.Rank {
				t.Errorf("%v (%d) should outrank %v (%d)", tt.better, b.Rank, tt.worse, w.Rank)
			}
		})
	}
}

func TestIdenticalHandsTie(t *testing.T) {
	t.Parallel()

	a := mustEvaluate(t, "AS", "KD", "9H", "5C", "2S")
	b := mustEvaluate(t, "AD", "KH", "9C", "5S", "2D")
	if a.Rank != b.Rank {
		t.Errorf("suit-only differences must tie: %d vs %d", a.Rank, b.Rank)
	}
}

func TestSevenCardsPickBestFive(t *testing.T) {
	t.Parallel()

	// Board plays a straight; the hole cards upgrade it to a flush.
	res := mustEvaluate(t, "AH", "KH", "9H", "8H", "7H", "6S", "5D")
	if res.Category != Flush {
		t.Errorf("expected flush from best subset, got %s", res.Category)
	}

	// Quads buried in seven cards.
	res = mustEvaluate(t, "9S", "9D", "9H", "9C", "2S", "3D", "4H")
	if res.Category != FourOfAKind {
		t.Errorf("expected quads, got %s", res.Category)
	}
}

func TestBoardPlaysTie(t *testing.T) {
	t.Parallel()

	board := []string{"AS", "KS", "QS", "JS", "TS"}
	a := mustEvaluate(t, append([]string{"2H", "3D"}, board...)...)
	b := mustEvaluate(t, append([]string{"7C", "8C"}, board...)...)
	if a.Rank != b.Rank {
		t.Errorf("royal flush on board must tie everyone: %d vs %d", a.Rank, b.Rank)
	}
}

func TestDescriptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cards []string
		want  string
	}{
		{[]string{"AS", "KS", "QS", "JS", "TS"}, "Royal Flush"},
		{[]string{"9S", "8S", "7S", "6S", "5S"}, "Straight Flush, Nine High"},
		{[]string{"AS", "AD", "AH", "AC", "2S"}, "Four of a Kind, Aces"},
		{[]string{"AS", "AD", "AH", "9C", "9S"}, "Full House, Aces over Nines"},
		{[]string{"AS", "KS", "9S", "5S", "2S"}, "Flush, Ace High"},
		{[]string{"AS", "2D", "3H", "4C", "5S"}, "Straight, Five High"},
		{[]string{"6S", "6D", "6H", "5C", "2S"}, "Three of a Kind, Sixes"},
		{[]string{"AS", "AD", "9H", "9C", "2S"}, "Two Pair, Aces and Nines"},
		{[]string{"QS", "QD", "9H", "5C", "2S"}, "Pair of Queens"},
		{[]string{"AS", "KD", "9H", "5C", "2S"}, "Ace High"},
	}
	for _, tt := range tests {
		res := mustEvaluate(t, tt.cards...)
		if res.Description != tt.want {
			t.Errorf("%v description = %q, want %q", tt.cards, res.Description, tt.want)
		}
	}
}

func TestEvaluateRejectsBadInput(t *testing.T) {
	t.Parallel()

	if _, err := Evaluate(hand(t, "AS", "KD", "9H", "5C")); err == nil {
		t.Error("4 cards should be rejected")
	}
	if _, err := Evaluate(hand(t, "AS", "KD", "9H", "5C", "2S", "3S", "4S", "6S")); err == nil {
		t.Error("8 cards should be rejected")
	}
	if _, err := Evaluate(hand(t, "AS", "AS", "9H", "5C", "2S")); err == nil {
		t.Error("duplicate cards should be rejected")
	}
}
