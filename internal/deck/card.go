package deck

import "fmt"

// Suit represents a card suit.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the single-letter suit code used on the wire.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	default:
		return "?"
	}
}

// Rank represents a card rank. Values are the card's numeric worth with
// aces high (14); the wheel straight treats the ace as low separately.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character rank symbol, with "T" for ten.
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + int(r)))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Name returns the spelled-out rank ("Ace", "Ten") used in hand descriptions.
func (r Rank) Name() string {
	names := map[Rank]string{
		Two: "Two", Three: "Three", Four: "Four", Five: "Five", Six: "Six",
		Seven: "Seven", Eight: "Eight", Nine: "Nine", Ten: "Ten",
		Jack: "Jack", Queen: "Queen", King: "King", Ace: "Ace",
	}
	if n, ok := names[r]; ok {
		return n
	}
	return "?"
}

// Plural returns the rank name pluralised ("Aces", "Sixes").
func (r Rank) Plural() string {
	if r == Six {
		return "Sixes"
	}
	return r.Name() + "s"
}

// Card is a rank/suit pair. The zero value is not a valid card.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the 2-character card code, e.g. "AS" for the ace of spades.
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// MarshalText encodes the card as its 2-character code for JSON payloads.
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a 2-character card code.
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Parse converts a 2-character code like "AS" or "TD" back into a Card.
func Parse(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("invalid card code %q", code)
	}

	var rank Rank
	switch code[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Rank(code[0] - '0')
	case 'T':
		rank = Ten
	case 'J':
		rank = Jack
	case 'Q':
		rank = Queen
	case 'K':
		rank = King
	case 'A':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank %q in card code %q", code[0], code)
	}

	var suit Suit
	switch code[1] {
	case 'S':
		suit = Spades
	case 'H':
		suit = Hearts
	case 'D':
		suit = Diamonds
	case 'C':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid suit %q in card code %q", code[1], code)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParse is Parse for test fixtures and tooling; it panics on bad input.
func MustParse(code string) Card {
	c, err := Parse(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Codes renders cards as their 2-character codes, for logs and payloads.
func Codes(cards []Card) []string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.String()
	}
	return codes
}

// ParseAll parses a space-separated list of card codes.
func ParseAll(codes ...string) ([]Card, error) {
	cards := make([]Card, 0, len(codes))
	for _, code := range codes {
		c, err := Parse(code)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
