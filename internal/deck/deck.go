package deck

import (
	rand "math/rand/v2"
)

// Size is the number of cards in a full deck.
const Size = 52

// Deck is an ordered 52-card deck with a deal cursor. Dealing consumes from
// the cursor forward, so a single shuffled deck can never hand out the same
// card twice. The RNG is injected so that a seeded deck is reproducible:
// the post-shuffle order is a pure function of the RNG stream.
type Deck struct {
	cards  [Size]Card
	cursor int
	rng    *rand.Rand
}

// New builds a deck in canonical order and shuffles it with the supplied RNG.
func New(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Shuffle()
	return d
}

// Shuffle rebuilds the full 52 cards, resets the cursor, and re-randomizes
// the order using the deck's RNG.
func (d *Deck) Shuffle() {
	i := 0
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = Card{Rank: rank, Suit: suit}
			i++
		}
	}
	d.rng.Shuffle(Size, func(a, b int) {
		d.cards[a], d.cards[b] = d.cards[b], d.cards[a]
	})
	d.cursor = 0
}

// Rigged builds a deck that deals the given cards first, in order, followed
// by the rest of the 52 in canonical order. It exists for tests and replay
// tooling that need exact hole cards and boards; rigged decks carry no RNG
// and must not be reshuffled. Duplicates panic, as MustParse does.
func Rigged(cards ...Card) *Deck {
	if len(cards) > Size {
		panic("deck: rigged with more than 52 cards")
	}
	d := &Deck{}
	used := make(map[Card]bool, len(cards))
	for i, c := range cards {
		if used[c] {
			panic("deck: rigged with duplicate card " + c.String())
		}
		used[c] = true
		d.cards[i] = c
	}
	i := len(cards)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			c := Card{Rank: rank, Suit: suit}
			if used[c] {
				continue
			}
			d.cards[i] = c
			i++
		}
	}
	return d
}

// Deal returns the next card and advances the cursor. Dealing past the end
// of the deck means the engine itself has lost track of card accounting, so
// it panics rather than returning an error for the caller to mishandle.
func (d *Deck) Deal() Card {
	if d.cursor >= Size {
		panic("deck: dealt past end of deck")
	}
	c := d.cards[d.cursor]
	d.cursor++
	return c
}

// DealN deals n cards from the cursor.
func (d *Deck) DealN(n int) []Card {
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = d.Deal()
	}
	return cards
}

// DealFlop appends three community cards to board.
func (d *Deck) DealFlop(board []Card) []Card {
	return append(board, d.DealN(3)...)
}

// DealTurn appends the fourth community card to board.
func (d *Deck) DealTurn(board []Card) []Card {
	return append(board, d.Deal())
}

// DealRiver appends the fifth community card to board.
func (d *Deck) DealRiver(board []Card) []Card {
	return append(board, d.Deal())
}

// Remaining returns how many cards are still dealable.
func (d *Deck) Remaining() int {
	return Size - d.cursor
}
