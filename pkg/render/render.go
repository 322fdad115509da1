package render

import (
	"fmt"
	"strings"

	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/fadedpez/tucojack/pkg/services/blackjack"
)

// CardHeight is the number of lines in every card box
const CardHeight = 7

const (
	cardTop    = "┌─────────┐"
	cardBottom = "└─────────┘"
	cardBlank  = "│         │"
	cardHidden = "│░░░░░░░░░│"
)

// CardVisual draws a single card as a 7-line box. A hidden card shows only
// its back.
func CardVisual(card entities.Card, hidden bool) []string {
	if hidden {
		return []string{
			cardTop,
			cardHidden,
			cardHidden,
			cardHidden,
			cardHidden,
			cardHidden,
			cardBottom,
		}
	}

	rank := string(card.Rank)
	return []string{
		cardTop,
		fmt.Sprintf("│%-2s       │", rank),
		cardBlank,
		fmt.Sprintf("│    %s    │", card.Suit),
		cardBlank,
		fmt.Sprintf("│       %2s│", rank),
		cardBottom,
	}
}

// DisplayCards lays the cards out side by side, each box followed by a
// space. With hideFirst the first card is drawn face down.
func DisplayCards(cards []entities.Card, hideFirst bool) string {
	visuals := make([][]string, 0, len(cards))
	for i, card := range cards {
		visuals = append(visuals, CardVisual(card, hideFirst && i == 0))
	}

	lines := make([]string, CardHeight)
	for line := range lines {
		var b strings.Builder
		for _, visual := range visuals {
			b.WriteString(visual[line])
			b.WriteString(" ")
		}
		lines[line] = b.String()
	}
	return strings.Join(lines, "\n")
}

// StatsLine renders the win/loss tracker
func StatsLine(stats entities.Stats) string {
	return fmt.Sprintf("Wins: %d  Losses: %d", stats.Wins, stats.Losses)
}

// Table renders the whole table. Unless reveal is set, the dealer's first
// card is face down and the dealer's value is left out.
func Table(table blackjack.Snapshot, reveal bool) string {
	var b strings.Builder

	b.WriteString(StatsLine(table.Stats))
	b.WriteString("\n\n")

	b.WriteString("Player's Hand:\n")
	b.WriteString(DisplayCards(table.PlayerCards, false))
	fmt.Fprintf(&b, "\nValue: %d\n\n", table.PlayerValue)

	b.WriteString("Dealer's Hand:\n")
	b.WriteString(DisplayCards(table.DealerCards, !reveal))
	if reveal {
		fmt.Fprintf(&b, "\nValue: %d", table.DealerValue)
	}

	return b.String()
}
