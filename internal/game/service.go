package game

import (
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/evaluator"
	"github.com/lox/holdem/internal/randutil"
)

// SeatConfig is one roster entry handed in by the table-assignment layer.
type SeatConfig struct {
	Seat  int
	Stack int
}

// GameService owns the authoritative state of exactly one hand at a time.
// It is not safe for concurrent mutation; the transport layer is expected to
// serialize inbound actions per table. Every mutating operation validates
// fully before touching state, so a rejected call leaves the hand exactly as
// it was.
type GameService struct {
	logger *log.Logger
	rng    *rand.Rand
	bus    *EventBus

	smallBlind int
	bigBlind   int
	dealerPref int

	deck       *deck.Deck
	deckRigged bool

	started         bool
	phase           Phase
	players         *SeatMap
	board           []deck.Card
	currentBet      int
	lastRaiseAmount int
	actionSeat      int
	dealerSeat      int
	smallBlindSeat  int
	bigBlindSeat    int
	winners         []Winner
}

// NewGameService creates a service with the given options. A hand does not
// exist until StartHand is called.
func NewGameService(opts ...Option) *GameService {
	g := &GameService{
		logger:     log.New(io.Discard),
		smallBlind: 1,
		bigBlind:   2,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = randutil.NewUnpredictable()
	}
	if g.bus == nil {
		g.bus = NewEventBus()
	}
	return g
}

// Events returns the bus publishing this service's hand events.
func (g *GameService) Events() *EventBus {
	return g.bus
}

// StartHand initializes a fresh hand from the supplied roster: shuffles,
// deals two hole cards per seat, posts blinds, and hands action to the first
// seat after the big blind. Stacks are carried in by the caller; awards from
// the previous hand are the caller's to apply.
func (g *GameService) StartHand(roster []SeatConfig) error {
	if len(roster) < 2 {
		return ruleErrorf("need at least 2 players, got %d", len(roster))
	}

	players := NewSeatMap()
	for _, rs := range roster {
		if rs.Stack <= 0 {
			return ruleErrorf("seat %d: starting stack must be positive, got %d", rs.Seat, rs.Stack)
		}
		if err := players.Add(&Player{Seat: rs.Seat, Stack: rs.Stack}); err != nil {
			return &RuleError{Message: err.Error()}
		}
	}

	g.players = players
	g.board = nil
	g.winners = nil
	g.phase = Preflop
	g.started = true

	if g.deck == nil || !g.deckRigged {
		if g.deck == nil {
			g.deck = deck.New(g.rng)
		} else {
			g.deck.Shuffle()
		}
	}

	g.players.Each(func(p *Player) {
		p.Cards = g.deck.DealN(2)
	})

	g.dealerSeat = g.players.Seats()[0]
	if g.dealerPref != 0 && g.players.Get(g.dealerPref) != nil {
		g.dealerSeat = g.dealerPref
	}

	// Heads-up the dealer posts the small blind; otherwise the blinds are
	// the two seats after the button.
	if g.players.Len() == 2 {
		g.smallBlindSeat = g.dealerSeat
	} else {
		g.smallBlindSeat = g.players.NextSeat(g.dealerSeat)
	}
	g.bigBlindSeat = g.players.NextSeat(g.smallBlindSeat)

	g.postBlind(g.players.Get(g.smallBlindSeat), g.smallBlind)
	g.postBlind(g.players.Get(g.bigBlindSeat), g.bigBlind)

	g.currentBet = g.bigBlind
	g.lastRaiseAmount = g.bigBlind
	g.actionSeat = NextActiveSeat(g.players, g.bigBlindSeat)

	g.logger.Info("hand started",
		"seats", g.players.Len(),
		"dealer", g.dealerSeat,
		"sb", g.smallBlindSeat,
		"bb", g.bigBlindSeat,
		"actionSeat", g.actionSeat)

	g.bus.Publish(HandStartEvent{
		Seats:      g.players.Seats(),
		DealerSeat: g.dealerSeat,
		SmallBlind: g.smallBlind,
		BigBlind:   g.bigBlind,
		ts:         time.Now(),
	})

	// Blinds can put short stacks all-in before anyone acts; if nobody is
	// left to act the board runs out immediately.
	g.advanceWhileComplete()

	return nil
}

// postBlind commits up to amount from the player's stack. A short post goes
// all-in; the acted flag stays false so the poster keeps their option.
func (g *GameService) postBlind(p *Player, amount int) {
	if amount > p.Stack {
		amount = p.Stack
	}
	commit(p, amount)
}

// PlayerAction validates and applies one action for seat. On success the
// action seat advances; when the betting round completes the next street is
// dealt automatically, and when everyone else has folded the hand resolves
// without further dealing.
func (g *GameService) PlayerAction(seat int, action Action, amount int) error {
	if !g.started {
		return ruleErrorf("no hand in progress")
	}
	if !g.phase.Betting() {
		return ruleErrorf("no actions allowed at %s", g.phase)
	}
	p := g.players.Get(seat)
	if p == nil {
		return ruleErrorf("unknown seat %d", seat)
	}
	if p.Folded {
		return ruleErrorf("seat %d has folded", seat)
	}
	if seat != g.actionSeat {
		return ruleErrorf("not your turn, action is on seat %d", g.actionSeat)
	}

	if !actionAllowed(action, LegalActions(p, g.currentBet, g.lastRaiseAmount, g.players)) {
		return ruleErrorf("%s is not a legal action for seat %d", action, seat)
	}

	newBet, err := ExecuteAction(p, action, amount, g.currentBet, g.bigBlind, g.lastRaiseAmount)
	if err != nil {
		return err
	}

	p.ActedThisStreet = true
	if newBet > g.currentBet {
		g.lastRaiseAmount = newBet - g.currentBet
		g.currentBet = newBet
	}

	g.logger.Debug("action applied",
		"seat", seat,
		"action", action.String(),
		"streetBet", newBet,
		"stack", p.Stack,
		"pot", g.Pot())

	g.bus.Publish(PlayerActionEvent{
		Seat:     seat,
		Action:   action,
		Amount:   newBet,
		Phase:    g.phase,
		PotAfter: g.Pot(),
		ts:       time.Now(),
	})

	if g.players.InHandCount() == 1 {
		g.resolveFold()
		return nil
	}

	if RoundComplete(g.players, g.currentBet) {
		g.advanceWhileComplete()
	} else {
		g.actionSeat = NextActiveSeat(g.players, seat)
	}

	return nil
}

func actionAllowed(action Action, legal []Action) bool {
	for _, a := range legal {
		if a == action {
			return true
		}
	}
	return false
}

// LegalActionsFor returns the action set currently available to seat. The
// set is empty outside betting phases or for players who cannot act.
func (g *GameService) LegalActionsFor(seat int) ([]Action, error) {
	if !g.started {
		return nil, ruleErrorf("no hand in progress")
	}
	p := g.players.Get(seat)
	if p == nil {
		return nil, ruleErrorf("unknown seat %d", seat)
	}
	if !g.phase.Betting() {
		return nil, nil
	}
	return LegalActions(p, g.currentBet, g.lastRaiseAmount, g.players), nil
}

// advanceWhileComplete deals streets for as long as the betting round keeps
// completing on its own, which covers both the ordinary end-of-round advance
// and running out the board when everyone left is all-in. Reaching the end
// of the river transitions to showdown and evaluates winners.
func (g *GameService) advanceWhileComplete() {
	for g.phase.Betting() && RoundComplete(g.players, g.currentBet) {
		g.advanceStreet()
	}
}

// advanceStreet deals exactly one street (or enters showdown after the
// river), resetting per-street betting state first.
func (g *GameService) advanceStreet() {
	switch g.phase {
	case Preflop:
		g.board = DealFlop(g.deck, g.players, g.board)
		g.phase = Flop
	case Flop:
		g.board = DealTurn(g.deck, g.players, g.board)
		g.phase = Turn
	case Turn:
		g.board = DealRiver(g.deck, g.players, g.board)
		g.phase = River
	case River:
		beginStreet(g.players)
		g.phase = Showdown
		g.actionSeat = -1
		g.resolveShowdown()
		return
	default:
		return
	}

	g.currentBet = 0
	g.lastRaiseAmount = g.bigBlind
	g.actionSeat = NextActiveSeat(g.players, g.dealerSeat)

	g.logger.Debug("street dealt", "phase", g.phase.String(), "board", deck.Codes(g.board))

	g.bus.Publish(StreetDealtEvent{
		Phase:      g.phase,
		Board:      append([]deck.Card(nil), g.board...),
		ActionSeat: g.actionSeat,
		ts:         time.Now(),
	})
}

// DealFlop is the manual street advance used by explicit/test-driven flows;
// production play deals automatically from PlayerAction.
func (g *GameService) DealFlop() error {
	return g.manualDeal(Preflop, "not in preflop")
}

// DealTurn advances flop to turn, subject to the same preconditions.
func (g *GameService) DealTurn() error {
	return g.manualDeal(Flop, "not in flop")
}

// DealRiver advances turn to river, subject to the same preconditions.
func (g *GameService) DealRiver() error {
	return g.manualDeal(Turn, "not in turn")
}

func (g *GameService) manualDeal(want Phase, phaseMsg string) error {
	if !g.started {
		return ruleErrorf("no hand in progress")
	}
	if g.phase != want {
		return ruleErrorf("%s", phaseMsg)
	}
	if !RoundComplete(g.players, g.currentBet) {
		return ruleErrorf("betting round not complete")
	}
	g.advanceStreet()
	return nil
}

// resolveShowdown ranks every surviving hand against the full board and
// settles the pots.
func (g *GameService) resolveShowdown() {
	g.players.Each(func(p *Player) {
		if !p.InHand() {
			return
		}
		cards := make([]deck.Card, 0, 7)
		cards = append(cards, p.Cards...)
		cards = append(cards, g.board...)
		res, err := evaluator.Evaluate(cards)
		if err != nil {
			// Cards came from one shuffled deck; a failure here is a card
			// accounting bug in the engine, not caller input.
			panic("game: showdown evaluation failed: " + err.Error())
		}
		p.HandRank = res.Rank
		p.HandDescription = res.Description
	})

	g.settle()
}

// resolveFold ends the hand early when a single player remains.
func (g *GameService) resolveFold() {
	g.phase = Resolved
	g.actionSeat = -1
	g.settle()
}

func (g *GameService) settle() {
	g.winners = CalculateWinners(g.players)

	g.logger.Info("hand resolved", "phase", g.phase.String(), "pot", g.Pot(), "winners", len(g.winners))

	g.bus.Publish(HandResolvedEvent{
		Winners: append([]Winner(nil), g.winners...),
		Pot:     g.Pot(),
		ts:      time.Now(),
	})
}

// ShowdownResult is the final outcome of a hand.
type ShowdownResult struct {
	Winners []Winner
	State   Snapshot
}

// EvaluateWinners returns the settled winners once the hand has reached
// showdown or resolved early by folds. Winners are computed when the engine
// enters those states; this call only projects them.
func (g *GameService) EvaluateWinners() (ShowdownResult, error) {
	if !g.started {
		return ShowdownResult{}, ruleErrorf("no hand in progress")
	}
	if g.phase != Showdown && g.phase != Resolved {
		return ShowdownResult{}, ruleErrorf("hand not at showdown, phase is %s", g.phase)
	}
	return ShowdownResult{
		Winners: append([]Winner(nil), g.winners...),
		State:   g.Snapshot(),
	}, nil
}

// Phase returns the current phase of the hand.
func (g *GameService) Phase() Phase {
	return g.phase
}

// ActionSeat returns the seat due to act, or -1 when no action is pending.
func (g *GameService) ActionSeat() int {
	return g.actionSeat
}

// Pot returns the total chips committed to the hand so far. It is derived
// from player contributions rather than tracked separately, so it can never
// drift from the per-player accounting.
func (g *GameService) Pot() int {
	if g.players == nil {
		return 0
	}
	return g.players.TotalInvested()
}

// Player returns the mutable player record for a seat. Exposed for tests
// and in-process callers; external collaborators should use Snapshot.
func (g *GameService) Player(seat int) *Player {
	if g.players == nil {
		return nil
	}
	return g.players.Get(seat)
}
