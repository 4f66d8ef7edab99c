package game

import "fmt"

// Action represents a player betting action.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise", "allin"}[a]
}

// ParseAction converts a wire action name into an Action.
func ParseAction(s string) (Action, error) {
	switch s {
	case "fold":
		return Fold, nil
	case "check":
		return Check, nil
	case "call":
		return Call, nil
	case "bet":
		return Bet, nil
	case "raise":
		return Raise, nil
	case "allin":
		return AllIn, nil
	default:
		return 0, fmt.Errorf("unknown action %q", s)
	}
}

// LegalActions computes the action set available to p against the current
// betting context. players is consulted only to decide whether a raise can
// still be answered by anyone.
func LegalActions(p *Player, currentBet, lastRaiseAmount int, players *SeatMap) []Action {
	if !p.CanAct() {
		return nil
	}

	actions := []Action{Fold}

	if p.Bet == currentBet {
		actions = append(actions, Check)
	}
	if p.Bet < currentBet && p.Stack > 0 {
		// A short call is still a call; it just puts the player all-in.
		actions = append(actions, Call)
	}
	if currentBet == 0 && p.Stack > 0 {
		actions = append(actions, Bet)
	}
	if currentBet > 0 && p.Stack > currentBet-p.Bet && raiseCanBeAnswered(p, players) {
		actions = append(actions, Raise)
	}
	if p.Stack > 0 {
		actions = append(actions, AllIn)
	}

	return actions
}

// raiseCanBeAnswered reports whether at least one other non-folded player is
// not all-in. Raising into a field that cannot respond is illegal; the most
// such a player can do is call or move all-in.
func raiseCanBeAnswered(p *Player, players *SeatMap) bool {
	answered := false
	players.Each(func(other *Player) {
		if other.Seat != p.Seat && other.InHand() && !other.AllIn {
			answered = true
		}
	})
	return answered
}

// ExecuteAction applies one action to p, mutating only that player's stack,
// bet, and totalInvested. amount is the new total street bet for Bet/Raise
// and ignored otherwise. It returns the player's resulting street bet.
//
// Every rejection happens before any mutation: on error the player record is
// exactly as it was.
func ExecuteAction(p *Player, action Action, amount, currentBet, bigBlind, lastRaiseAmount int) (int, error) {
	switch action {
	case Fold:
		p.Folded = true
		return p.Bet, nil

	case Check:
		if p.Bet != currentBet {
			return 0, ruleErrorf("cannot check, %d to call", currentBet-p.Bet)
		}
		return p.Bet, nil

	case Call:
		if p.Bet >= currentBet {
			return 0, ruleErrorf("nothing to call")
		}
		if p.Stack == 0 {
			return 0, ruleErrorf("no chips left to call with")
		}
		delta := currentBet - p.Bet
		if delta > p.Stack {
			delta = p.Stack // short call, player goes all-in
		}
		commit(p, delta)
		return p.Bet, nil

	case Bet:
		if currentBet != 0 {
			return 0, ruleErrorf("cannot bet, use raise when facing a bet of %d", currentBet)
		}
		if amount <= 0 {
			return 0, ruleErrorf("bet amount must be positive")
		}
		if amount > p.Stack {
			return 0, ruleErrorf("insufficient chips: bet %d with stack %d", amount, p.Stack)
		}
		if amount < bigBlind && amount < p.Stack {
			return 0, ruleErrorf("minimum bet is %d", bigBlind)
		}
		commit(p, amount)
		return p.Bet, nil

	case Raise:
		if currentBet == 0 {
			return 0, ruleErrorf("cannot raise, no bet to raise over")
		}
		total := p.Stack + p.Bet
		if amount > total {
			return 0, ruleErrorf("insufficient chips: raise to %d with %d behind", amount, total)
		}
		if amount <= currentBet {
			return 0, ruleErrorf("raise must exceed current bet of %d", currentBet)
		}
		minRaiseBy := lastRaiseAmount
		if bigBlind > minRaiseBy {
			minRaiseBy = bigBlind
		}
		if amount < currentBet+minRaiseBy && amount < total {
			// An all-in for less than a full raise is allowed; anything
			// else below the minimum is rejected.
			return 0, ruleErrorf("Minimum raise is %d", currentBet+minRaiseBy)
		}
		commit(p, amount-p.Bet)
		return p.Bet, nil

	case AllIn:
		if p.Stack == 0 {
			return 0, ruleErrorf("no chips left")
		}
		commit(p, p.Stack)
		return p.Bet, nil

	default:
		return 0, ruleErrorf("unknown action")
	}
}

// commit moves delta chips from the player's stack into their street bet,
// keeping Δstack == -Δbet == -ΔtotalInvested.
func commit(p *Player, delta int) {
	p.Stack -= delta
	p.Bet += delta
	p.TotalInvested += delta
	if p.Stack == 0 {
		p.AllIn = true
	}
}
