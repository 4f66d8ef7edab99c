package deck

import (
	"testing"

	"github.com/lox/holdem/internal/randutil"
)

func TestNewDeckDealsAll52Unique(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(1))
	seen := make(map[Card]bool)
	for i := 0; i < Size; i++ {
		c := d.Deal()
		if seen[c] {
			t.Fatalf("card %s dealt twice", c)
		}
		seen[c] = true
	}
	if len(seen) != Size {
		t.Fatalf("expected %d distinct cards, got %d", Size, len(seen))
	}
	if d.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", d.Remaining())
	}
}

func TestSameSeedSameOrder(t *testing.T) {
	t.Parallel()

	a := New(randutil.New(42))
	b := New(randutil.New(42))
	for i := 0; i < Size; i++ {
		ca, cb := a.Deal(), b.Deal()
		if ca != cb {
			t.Fatalf("card %d differs: %s vs %s", i, ca, cb)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	t.Parallel()

	a := New(randutil.New(1))
	b := New(randutil.New(2))
	same := true
	for i := 0; i < Size; i++ {
		if a.Deal() != b.Deal() {
			same = false
		}
	}
	if same {
		t.Error("decks with different seeds produced identical orders")
	}
}

func TestDealPastEndPanics(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(7))
	d.DealN(Size)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic dealing the 53rd card")
		}
	}()
	d.Deal()
}

func TestShuffleResetsCursor(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(9))
	d.DealN(30)
	if d.Remaining() != Size-30 {
		t.Fatalf("expected %d remaining, got %d", Size-30, d.Remaining())
	}

	d.Shuffle()
	if d.Remaining() != Size {
		t.Errorf("shuffle should reset remaining to %d, got %d", Size, d.Remaining())
	}
	// Every card must be back in the deck.
	seen := make(map[Card]bool)
	for i := 0; i < Size; i++ {
		seen[d.Deal()] = true
	}
	if len(seen) != Size {
		t.Errorf("expected full deck after reshuffle, got %d distinct cards", len(seen))
	}
}

func TestRiggedDealsInOrder(t *testing.T) {
	t.Parallel()

	d := Rigged(MustParse("AS"), MustParse("KD"), MustParse("2C"))
	for _, want := range []string{"AS", "KD", "2C"} {
		if got := d.Deal(); got.String() != want {
			t.Fatalf("got %s, want %s", got, want)
		}
	}

	// The remainder is still a full deck with no repeats.
	seen := map[Card]bool{MustParse("AS"): true, MustParse("KD"): true, MustParse("2C"): true}
	for d.Remaining() > 0 {
		c := d.Deal()
		if seen[c] {
			t.Fatalf("card %s dealt twice", c)
		}
		seen[c] = true
	}
	if len(seen) != Size {
		t.Errorf("expected %d distinct cards, got %d", Size, len(seen))
	}
}

func TestRiggedRejectsDuplicates(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for duplicate rigged card")
		}
	}()
	Rigged(MustParse("AS"), MustParse("AS"))
}

func TestBoardDealing(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(3))
	var board []Card
	board = d.DealFlop(board)
	if len(board) != 3 {
		t.Fatalf("flop should produce 3 cards, got %d", len(board))
	}
	board = d.DealTurn(board)
	board = d.DealRiver(board)
	if len(board) != 5 {
		t.Fatalf("full board should be 5 cards, got %d", len(board))
	}
	if d.Remaining() != Size-5 {
		t.Errorf("expected %d remaining, got %d", Size-5, d.Remaining())
	}
}
