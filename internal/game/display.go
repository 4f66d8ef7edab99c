package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DisplayStyles contains styling for rendering a table snapshot.
type DisplayStyles struct {
	Header    lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Pot       lipgloss.Style
	Winner    lipgloss.Style
	Action    lipgloss.Style
	Muted     lipgloss.Style
}

// NewDisplayStyles creates the default style set.
func NewDisplayStyles() *DisplayStyles {
	return &DisplayStyles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Pot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Action: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Display renders table snapshots for terminal output.
type Display struct {
	styles *DisplayStyles
}

// NewDisplay creates a display with the default styles.
func NewDisplay() *Display {
	return &Display{styles: NewDisplayStyles()}
}

// RenderSnapshot formats the full table state.
func (d *Display) RenderSnapshot(snap Snapshot) string {
	var b strings.Builder

	b.WriteString(d.styles.Header.Render(fmt.Sprintf("*** %s ***", strings.ToUpper(snap.Phase))))
	b.WriteString("\n")
	if len(snap.Board) > 0 {
		b.WriteString(fmt.Sprintf("Board: %s\n", d.renderCards(snap.Board)))
	}
	b.WriteString(fmt.Sprintf("Pot: %s", d.styles.Pot.Render(fmt.Sprintf("%d", snap.Pot))))
	if snap.CurrentBet > 0 {
		b.WriteString(d.styles.Muted.Render(fmt.Sprintf("  to call %d", snap.CurrentBet)))
	}
	b.WriteString("\n")

	seats := make([]int, 0, len(snap.Players))
	for seat := range snap.Players {
		seats = append(seats, seat)
	}
	sort.Ints(seats)

	for _, seat := range seats {
		p := snap.Players[seat]
		marker := "  "
		if seat == snap.ActionSeat {
			marker = d.styles.Action.Render("> ")
		}
		line := fmt.Sprintf("%sseat %d: stack %d bet %d", marker, seat, p.Stack, p.Bet)
		if len(p.Cards) > 0 {
			line += "  " + d.renderCards(p.Cards)
		}
		switch {
		case p.Folded:
			line += d.styles.Muted.Render("  folded")
		case p.AllIn:
			line += d.styles.Winner.Render("  all-in")
		}
		if p.HandDescription != "" {
			line += d.styles.Muted.Render("  " + p.HandDescription)
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

// RenderWinners formats the result of a resolved hand.
func (d *Display) RenderWinners(winners []Winner) string {
	var b strings.Builder
	for _, w := range winners {
		b.WriteString(d.styles.Winner.Render(
			fmt.Sprintf("seat %d wins %d", w.Seat, w.Amount)))
		b.WriteString(d.styles.Muted.Render("  (" + w.Reason + ")"))
		b.WriteString("\n")
	}
	return b.String()
}

func (d *Display) renderCards(codes []string) string {
	rendered := make([]string, len(codes))
	for i, code := range codes {
		if len(code) == 2 && (code[1] == 'H' || code[1] == 'D') {
			rendered[i] = d.styles.CardRed.Render(code)
		} else {
			rendered[i] = d.styles.CardBlack.Render(code)
		}
	}
	return strings.Join(rendered, " ")
}
