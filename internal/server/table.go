package server

import (
	"context"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem/internal/game"
)

// actionRequest pairs an inbound action with the connection that sent it so
// rejections can be relayed back to the sender alone.
type actionRequest struct {
	data ActionData
	from *client
}

// Table hosts one game.GameService and serializes all mutation through a
// single goroutine: inbound actions are queued on a channel and applied one
// at a time, which is what makes the engine's single-caller contract hold.
type Table struct {
	name        string
	logger      *log.Logger
	clock       quartz.Clock
	turnTimeout time.Duration
	smallBlind  int
	bigBlind    int

	requests chan actionRequest
	hub      *hub

	svc        *game.GameService
	roster     []game.SeatConfig
	dealerSeat int
}

// NewTable creates a table from its configuration. Nothing runs until Run.
func NewTable(cfg TableConfig, turnTimeout time.Duration, clock quartz.Clock, logger *log.Logger) *Table {
	roster := make([]game.SeatConfig, len(cfg.Seats))
	for i, seat := range cfg.Seats {
		roster[i] = game.SeatConfig{Seat: seat.Number, Stack: seat.Stack}
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].Seat < roster[j].Seat })
	return &Table{
		name:        cfg.Name,
		logger:      logger.WithPrefix("table").With("name", cfg.Name),
		clock:       clock,
		turnTimeout: turnTimeout,
		smallBlind:  cfg.SmallBlind,
		bigBlind:    cfg.BigBlind,
		requests:    make(chan actionRequest, 16),
		hub:         newHub(),
	}
}

// Submit queues an action for the table goroutine. It blocks only when the
// queue is full, which back-pressures a client flooding actions.
func (t *Table) Submit(ctx context.Context, data ActionData, from *client) error {
	select {
	case t.requests <- actionRequest{data: data, from: from}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Attach registers a connection for state broadcasts.
func (t *Table) Attach(c *client) {
	t.hub.attach(c)
}

// Detach removes a connection.
func (t *Table) Detach(c *client) {
	t.hub.detach(c)
}

// Run plays hands until the context ends or fewer than two stacks remain.
// Awards are applied to the next hand's starting stacks here, outside the
// engine, and the button rotates to the next surviving seat.
func (t *Table) Run(ctx context.Context) error {
	for {
		if len(t.roster) < 2 {
			t.logger.Info("table finished, not enough stacks to continue")
			return nil
		}

		bus := game.NewEventBus()
		bus.Subscribe(eventLogger{logger: t.logger})

		opts := []game.Option{
			game.WithBlinds(t.smallBlind, t.bigBlind),
			game.WithLogger(t.logger),
			game.WithEventBus(bus),
		}
		if t.dealerSeat != 0 {
			opts = append(opts, game.WithDealerSeat(t.dealerSeat))
		}
		t.svc = game.NewGameService(opts...)

		if err := t.svc.StartHand(t.roster); err != nil {
			return err
		}
		t.broadcastState()

		if err := t.runBetting(ctx); err != nil {
			return err
		}

		result, err := t.svc.EvaluateWinners()
		if err != nil {
			return err
		}
		t.broadcastState()
		if msg, err := NewMessage(MessageTypeWinners, winnersData(result.Winners, result.State.Pot)); err == nil {
			t.hub.broadcast(msg)
		}

		t.advanceRoster(result)
	}
}

// runBetting applies queued actions until the hand leaves its betting
// phases. A seat that lets the turn clock expire is folded on its behalf;
// timeouts are transport policy, not engine rules.
func (t *Table) runBetting(ctx context.Context) error {
	for t.svc.Phase().Betting() {
		timer := t.clock.NewTimer(t.turnTimeout)
		select {
		case req := <-t.requests:
			timer.Stop()
			t.apply(req)

		case <-timer.C:
			seat := t.svc.ActionSeat()
			if seat <= 0 {
				continue
			}
			t.logger.Warn("turn timeout, folding", "seat", seat)
			if err := t.svc.PlayerAction(seat, game.Fold, 0); err != nil {
				t.logger.Error("timeout fold rejected", "seat", seat, "error", err)
			}
			t.broadcastState()

		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
	return nil
}

func (t *Table) apply(req actionRequest) {
	action, err := game.ParseAction(req.data.Action)
	if err == nil {
		err = t.svc.PlayerAction(req.data.Seat, action, req.data.Amount)
	}
	if err != nil {
		t.logger.Debug("action rejected", "seat", req.data.Seat, "action", req.data.Action, "error", err)
		if req.from != nil {
			if msg, merr := NewMessage(MessageTypeError, ErrorData{Message: err.Error()}); merr == nil {
				req.from.send(msg)
			}
		}
		return
	}
	t.broadcastState()
}

// broadcastState sends each connection its own view of the table: hole
// cards belong to the seat that holds them until showdown reveals the
// hands still in contention.
func (t *Table) broadcastState() {
	snap := t.svc.Snapshot()
	t.hub.each(func(c *client) {
		msg, err := NewMessage(MessageTypeState, redactFor(snap, c.seat))
		if err != nil {
			t.logger.Error("failed to encode state", "error", err)
			return
		}
		_ = c.send(msg)
	})
}

// redactFor strips another seat's hole cards from the snapshot. Showdown
// makes the surviving hands public; a hand that folded, or that won
// because everyone else folded, is never shown to anyone but its owner.
func redactFor(snap game.Snapshot, seat int) game.Snapshot {
	reveal := snap.Phase == "showdown"

	out := snap
	out.Players = make(map[int]game.PlayerSnapshot, len(snap.Players))
	for s, p := range snap.Players {
		if s != seat && !(reveal && !p.Folded) {
			p.Cards = nil
			p.HandRank = 0
			p.HandDescription = ""
		}
		out.Players[s] = p
	}
	return out
}

// advanceRoster folds the hand's awards into next-hand starting stacks,
// drops busted seats, and moves the button.
func (t *Table) advanceRoster(result game.ShowdownResult) {
	awards := make(map[int]int, len(result.Winners))
	for _, w := range result.Winners {
		awards[w.Seat] += w.Amount
	}

	next := make([]game.SeatConfig, 0, len(t.roster))
	for _, rs := range t.roster {
		stack := result.State.Players[rs.Seat].Stack + awards[rs.Seat]
		if stack > 0 {
			next = append(next, game.SeatConfig{Seat: rs.Seat, Stack: stack})
		}
	}
	t.roster = next

	if len(next) > 0 {
		t.dealerSeat = nextSeatAfter(next, result.State.DealerSeat)
	}
}

// eventLogger relays engine events into the table's structured log, giving
// operators a hand-by-hand audit trail without touching the engine.
type eventLogger struct {
	logger *log.Logger
}

func (l eventLogger) OnEvent(e game.Event) {
	switch ev := e.(type) {
	case game.HandStartEvent:
		l.logger.Debug("hand start event", "seats", ev.Seats, "dealer", ev.DealerSeat)
	case game.PlayerActionEvent:
		l.logger.Debug("action", "seat", ev.Seat, "action", ev.Action.String(), "pot", ev.PotAfter)
	case game.StreetDealtEvent:
		l.logger.Debug("street dealt", "phase", ev.Phase.String(), "cards", len(ev.Board))
	case game.HandResolvedEvent:
		l.logger.Debug("hand resolved event", "pot", ev.Pot, "winners", len(ev.Winners))
	}
}

// nextSeatAfter returns the first seat greater than from, wrapping to the
// lowest. Roster entries are kept in ascending seat order.
func nextSeatAfter(roster []game.SeatConfig, from int) int {
	for _, rs := range roster {
		if rs.Seat > from {
			return rs.Seat
		}
	}
	return roster[0].Seat
}
