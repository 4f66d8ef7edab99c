package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/holdem/internal/game"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Players    int   `short:"p" default:"3" help:"Number of players at the table (2-9)"`
	Stack      int   `short:"s" default:"200" help:"Starting stack per player"`
	SmallBlind int   `default:"1" help:"Small blind"`
	BigBlind   int   `default:"2" help:"Big blind"`
	Seed       int64 `help:"Deck seed for a reproducible deal (0 = random)"`
	Hands      int   `short:"n" default:"1" help:"Number of hands to play"`
	Verbose    bool  `short:"v" help:"Log engine internals to stderr"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli)

	if cli.Players < 2 || cli.Players > 9 {
		log.Fatal("invalid number of players, must be 2-9")
	}
	if cli.BigBlind <= cli.SmallBlind || cli.SmallBlind <= 0 {
		log.Fatal("blinds must satisfy 0 < small < big")
	}

	lipgloss.SetColorProfile(termenv.ColorProfile())

	fmt.Println(titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	fmt.Println()

	logger := log.New(io.Discard)
	if cli.Verbose {
		logger = log.New(os.Stderr)
		logger.SetLevel(log.DebugLevel)
	}

	if err := playHands(cli, logger); err != nil {
		log.Fatal("game error", "error", err)
	}
	kctx.Exit(0)
}

// playHands runs the requested number of hands with every player playing a
// simple check/call line, so each hand reaches showdown with a full board.
func playHands(cli CLI, logger *log.Logger) error {
	stacks := make(map[int]int, cli.Players)
	for seat := 1; seat <= cli.Players; seat++ {
		stacks[seat] = cli.Stack
	}

	display := game.NewDisplay()
	dealerSeat := 0

	for hand := 1; hand <= cli.Hands; hand++ {
		roster := rosterFrom(stacks)
		if len(roster) < 2 {
			fmt.Println("not enough players with chips to continue")
			return nil
		}

		opts := []game.Option{
			game.WithBlinds(cli.SmallBlind, cli.BigBlind),
			game.WithLogger(logger),
		}
		if cli.Seed != 0 {
			opts = append(opts, game.WithSeed(cli.Seed+int64(hand-1)))
		}
		if dealerSeat != 0 {
			opts = append(opts, game.WithDealerSeat(dealerSeat))
		}

		svc := game.NewGameService(opts...)
		if err := svc.StartHand(roster); err != nil {
			return err
		}

		fmt.Printf("Hand #%d\n", hand)
		lastPhase := game.Phase(-1)
		for svc.Phase().Betting() {
			if svc.Phase() != lastPhase {
				fmt.Println(display.RenderSnapshot(svc.Snapshot()))
				lastPhase = svc.Phase()
			}
			seat := svc.ActionSeat()
			action, amount, err := checkCallLine(svc, seat)
			if err != nil {
				return err
			}
			if err := svc.PlayerAction(seat, action, amount); err != nil {
				return err
			}
		}

		result, err := svc.EvaluateWinners()
		if err != nil {
			return err
		}
		fmt.Println(display.RenderSnapshot(result.State))
		fmt.Println(display.RenderWinners(result.Winners))

		applyWinnings(stacks, result)
		dealerSeat = nextDealer(stacks, result.State.DealerSeat)
	}
	return nil
}

// checkCallLine checks when free and calls otherwise.
func checkCallLine(svc *game.GameService, seat int) (game.Action, int, error) {
	legal, err := svc.LegalActionsFor(seat)
	if err != nil {
		return 0, 0, err
	}
	for _, a := range legal {
		if a == game.Check {
			return game.Check, 0, nil
		}
	}
	for _, a := range legal {
		if a == game.Call {
			return game.Call, 0, nil
		}
	}
	// Short stack facing a bet it cannot cover.
	return game.AllIn, 0, nil
}

func rosterFrom(stacks map[int]int) []game.SeatConfig {
	roster := make([]game.SeatConfig, 0, len(stacks))
	for seat, stack := range stacks {
		if stack > 0 {
			roster = append(roster, game.SeatConfig{Seat: seat, Stack: stack})
		}
	}
	return roster
}

func applyWinnings(stacks map[int]int, result game.ShowdownResult) {
	for seat, ps := range result.State.Players {
		stacks[seat] = ps.Stack
	}
	for _, w := range result.Winners {
		stacks[w.Seat] += w.Amount
	}
	for seat, stack := range stacks {
		if stack <= 0 {
			delete(stacks, seat)
		}
	}
}

// nextDealer rotates the button to the next occupied seat clockwise.
func nextDealer(stacks map[int]int, from int) int {
	next := 0
	lowest := 0
	for seat := range stacks {
		if lowest == 0 || seat < lowest {
			lowest = seat
		}
		if seat > from && (next == 0 || seat < next) {
			next = seat
		}
	}
	if next != 0 {
		return next
	}
	return lowest
}
