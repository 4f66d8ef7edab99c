package game

import (
	"reflect"
	"strings"
	"testing"
)

func seatMapOf(t *testing.T, players ...*Player) *SeatMap {
	t.Helper()
	sm := NewSeatMap()
	for _, p := range players {
		if err := sm.Add(p); err != nil {
			t.Fatalf("Add(%d): %v", p.Seat, err)
		}
	}
	return sm
}

func hasAction(actions []Action, want Action) bool {
	for _, a := range actions {
		if a == want {
			return true
		}
	}
	return false
}

func TestLegalActionsNoBet(t *testing.T) {
	t.Parallel()

	p := &Player{Seat: 1, Stack: 100}
	sm := seatMapOf(t, p, &Player{Seat: 2, Stack: 100})

	actions := LegalActions(p, 0, 2, sm)
	for _, want := range []Action{Fold, Check, Bet, AllIn} {
		if !hasAction(actions, want) {
			t.Errorf("expected %s to be legal with no bet outstanding", want)
		}
	}
	for _, banned := range []Action{Call, Raise} {
		if hasAction(actions, banned) {
			t.Errorf("%s should not be legal with no bet outstanding", banned)
		}
	}
}

func TestLegalActionsFacingBet(t *testing.T) {
	t.Parallel()

	p := &Player{Seat: 1, Stack: 100}
	sm := seatMapOf(t, p, &Player{Seat: 2, Stack: 80, Bet: 20, TotalInvested: 20})

	actions := LegalActions(p, 20, 20, sm)
	for _, want := range []Action{Fold, Call, Raise, AllIn} {
		if !hasAction(actions, want) {
			t.Errorf("expected %s to be legal facing a bet", want)
		}
	}
	for _, banned := range []Action{Check, Bet} {
		if hasAction(actions, banned) {
			t.Errorf("%s should not be legal facing a bet", banned)
		}
	}
}

func TestNoRaiseWhenFieldIsAllIn(t *testing.T) {
	t.Parallel()

	// Both opponents are all-in; a raise could never be answered.
	p := &Player{Seat: 1, Stack: 500}
	sm := seatMapOf(t, p,
		&Player{Seat: 2, Stack: 0, Bet: 50, TotalInvested: 50, AllIn: true},
		&Player{Seat: 3, Stack: 0, Bet: 80, TotalInvested: 80, AllIn: true},
	)

	actions := LegalActions(p, 80, 30, sm)
	if hasAction(actions, Raise) {
		t.Error("raise must not be legal when no opponent can respond")
	}
	for _, want := range []Action{Fold, Call, AllIn} {
		if !hasAction(actions, want) {
			t.Errorf("expected %s to remain legal against all-in field", want)
		}
	}
}

func TestLegalActionsFoldedOrAllIn(t *testing.T) {
	t.Parallel()

	sm := seatMapOf(t, &Player{Seat: 1, Stack: 100}, &Player{Seat: 2, Stack: 100})
	if got := LegalActions(&Player{Seat: 3, Folded: true}, 0, 2, sm); got != nil {
		t.Errorf("folded player should have no actions, got %v", got)
	}
	if got := LegalActions(&Player{Seat: 3, AllIn: true}, 0, 2, sm); got != nil {
		t.Errorf("all-in player should have no actions, got %v", got)
	}
}

func TestMinimumRaise(t *testing.T) {
	t.Parallel()

	// Blinds 10/20, seat 1 opened to 40 (a raise of 20). The next raise must
	// be to at least 60.
	raiser := &Player{Seat: 2, Stack: 500}

	if _, err := ExecuteAction(raiser, Raise, 55, 40, 20, 20); err == nil {
		t.Fatal("raise to 55 should be rejected")
	} else if err.Error() != "Minimum raise is 60" {
		t.Errorf("error = %q, want %q", err.Error(), "Minimum raise is 60")
	}

	newBet, err := ExecuteAction(raiser, Raise, 60, 40, 20, 20)
	if err != nil {
		t.Fatalf("raise to 60: %v", err)
	}
	if newBet != 60 {
		t.Errorf("street bet = %d, want 60", newBet)
	}
}

func TestMinimumRaiseUsesBigBlindFloor(t *testing.T) {
	t.Parallel()

	// lastRaiseAmount below the big blind (an all-in underraise happened);
	// the minimum increment snaps back up to the big blind.
	p := &Player{Seat: 1, Stack: 500}
	if _, err := ExecuteAction(p, Raise, 55, 50, 20, 5); err == nil {
		t.Fatal("raise to 55 should be rejected with a 20 floor")
	} else if !strings.Contains(err.Error(), "Minimum raise is 70") {
		t.Errorf("error = %q, want Minimum raise is 70", err.Error())
	}
}

func TestAllInUnderRaiseAllowed(t *testing.T) {
	t.Parallel()

	// Facing 40 with only 50 behind: raising to 50 is below the minimum of
	// 60 but allowed because it is the player's whole stack.
	p := &Player{Seat: 1, Stack: 50}
	newBet, err := ExecuteAction(p, Raise, 50, 40, 20, 20)
	if err != nil {
		t.Fatalf("all-in underraise: %v", err)
	}
	if newBet != 50 {
		t.Errorf("street bet = %d, want 50", newBet)
	}
	if !p.AllIn {
		t.Error("player should be all-in")
	}
}

func TestRejectedActionLeavesPlayerUntouched(t *testing.T) {
	t.Parallel()

	p := &Player{Seat: 1, Stack: 100, Bet: 20, TotalInvested: 30}
	before := *p

	rejections := []struct {
		action Action
		amount int
	}{
		{Check, 0},    // facing a bet
		{Bet, 50},     // bet when a bet exists
		{Raise, 45},   // below minimum raise
		{Raise, 500},  // beyond stack
		{Action(99), 0},
	}
	for _, r := range rejections {
		if _, err := ExecuteAction(p, r.action, r.amount, 40, 20, 20); err == nil {
			t.Fatalf("%s/%d should have been rejected", r.action, r.amount)
		}
		if !reflect.DeepEqual(*p, before) {
			t.Fatalf("rejected %s mutated player: %+v != %+v", r.action, *p, before)
		}
	}
}

func TestChipConservationPerAction(t *testing.T) {
	t.Parallel()

	p := &Player{Seat: 1, Stack: 200}
	total := p.Stack + p.TotalInvested

	steps := []struct {
		action Action
		amount int
		cb     int
	}{
		{Bet, 20, 0},
		{Raise, 80, 40},
		{Call, 0, 120},
	}
	for _, s := range steps {
		if _, err := ExecuteAction(p, s.action, s.amount, s.cb, 2, 20); err != nil {
			t.Fatalf("%s: %v", s.action, err)
		}
		if p.Stack+p.TotalInvested != total {
			t.Fatalf("after %s: stack %d + invested %d != %d", s.action, p.Stack, p.TotalInvested, total)
		}
		if p.Bet != p.TotalInvested {
			t.Fatalf("after %s on one street: bet %d != invested %d", s.action, p.Bet, p.TotalInvested)
		}
	}
}

func TestShortCallGoesAllIn(t *testing.T) {
	t.Parallel()

	p := &Player{Seat: 1, Stack: 30}
	newBet, err := ExecuteAction(p, Call, 0, 100, 2, 98)
	if err != nil {
		t.Fatalf("short call: %v", err)
	}
	if newBet != 30 {
		t.Errorf("street bet = %d, want 30", newBet)
	}
	if !p.AllIn || p.Stack != 0 {
		t.Errorf("short caller should be all-in with empty stack, got stack %d allin %v", p.Stack, p.AllIn)
	}
}

func TestFoldKeepsChipsCommitted(t *testing.T) {
	t.Parallel()

	p := &Player{Seat: 1, Stack: 80, Bet: 20, TotalInvested: 20}
	if _, err := ExecuteAction(p, Fold, 0, 40, 2, 20); err != nil {
		t.Fatalf("fold: %v", err)
	}
	if !p.Folded {
		t.Error("player should be folded")
	}
	if p.TotalInvested != 20 {
		t.Errorf("folding must not refund chips, invested = %d", p.TotalInvested)
	}
}

func TestBetValidation(t *testing.T) {
	t.Parallel()

	p := &Player{Seat: 1, Stack: 100}
	if _, err := ExecuteAction(p, Bet, 0, 0, 20, 20); err == nil {
		t.Error("zero bet should be rejected")
	}
	if _, err := ExecuteAction(p, Bet, 10, 0, 20, 20); err == nil {
		t.Error("bet below big blind should be rejected")
	}
	if _, err := ExecuteAction(p, Bet, 200, 0, 20, 20); err == nil {
		t.Error("bet beyond stack should be rejected")
	}

	// Betting the whole stack below the big blind is an open shove.
	short := &Player{Seat: 2, Stack: 15}
	if _, err := ExecuteAction(short, Bet, 15, 0, 20, 20); err != nil {
		t.Errorf("all-in open below big blind should be allowed: %v", err)
	}
}

func TestParseActionRoundTrip(t *testing.T) {
	t.Parallel()

	for _, a := range []Action{Fold, Check, Call, Bet, Raise, AllIn} {
		parsed, err := ParseAction(a.String())
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", a.String(), err)
		}
		if parsed != a {
			t.Errorf("round trip %s: got %s", a, parsed)
		}
	}
	if _, err := ParseAction("limp"); err == nil {
		t.Error("unknown action name should fail to parse")
	}
}
