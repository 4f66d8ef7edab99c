package game

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/randutil"
)

// Option configures a GameService.
type Option func(*GameService)

// WithBlinds sets the small and big blind amounts. Defaults to 1/2.
func WithBlinds(smallBlind, bigBlind int) Option {
	return func(g *GameService) {
		g.smallBlind = smallBlind
		g.bigBlind = bigBlind
	}
}

// WithSeed makes every shuffle a pure function of seed, for reproducible
// hands in tests and replays.
func WithSeed(seed int64) Option {
	return func(g *GameService) {
		g.rng = randutil.New(seed)
	}
}

// WithRNG injects the PRNG used for shuffling.
func WithRNG(rng *rand.Rand) Option {
	return func(g *GameService) {
		g.rng = rng
	}
}

// WithDeck supplies a pre-arranged deck. The deck is used as-is, without
// reshuffling, so tests can rig exact card orders.
func WithDeck(d *deck.Deck) Option {
	return func(g *GameService) {
		g.deck = d
		g.deckRigged = true
	}
}

// WithDealerSeat pins the dealer button to a seat. If the seat is absent
// from the roster the button falls back to the lowest seat.
func WithDealerSeat(seat int) Option {
	return func(g *GameService) {
		g.dealerPref = seat
	}
}

// WithLogger sets the structured logger. Defaults to a discard logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *GameService) {
		g.logger = logger
	}
}

// WithEventBus attaches an existing event bus so callers can subscribe
// before the first hand starts.
func WithEventBus(bus *EventBus) Option {
	return func(g *GameService) {
		g.bus = bus
	}
}
