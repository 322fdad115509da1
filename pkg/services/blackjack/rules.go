package blackjack

import (
	"strconv"

	"github.com/fadedpez/tucojack/pkg/entities"
)

const (
	BustLimit        = 21 // Anything above this is a bust
	DealerStandValue = 17 // Dealer draws while below this, soft or hard
	AceDemotion      = 10 // Difference between an ace counted as 11 and as 1
	InitialCards     = 2  // Cards dealt to each party at the start of a round
)

// CardValue returns the nominal value of a card; aces count as 11
func CardValue(card entities.Card) int {
	switch card.Rank {
	case entities.Ace:
		return 11
	case entities.Jack, entities.Queen, entities.King:
		return 10
	default:
		val, _ := strconv.Atoi(string(card.Rank))
		return val
	}
}

// DealerShouldDraw reports whether the dealer policy asks for another card
func DealerShouldDraw(h *Hand) bool {
	return h.Value() < DealerStandValue
}
