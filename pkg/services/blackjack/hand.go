package blackjack

import (
	"github.com/fadedpez/tucojack/pkg/entities"
)

// Hand represents one party's cards in a round of blackjack.
// Value always equals the nominal total minus 10 for every ace demoted to 1.
type Hand struct {
	cards    []entities.Card
	value    int
	softAces int // aces still counted as 11
}

// NewHand creates an empty hand
func NewHand() *Hand {
	return &Hand{
		cards: make([]entities.Card, 0, 4),
	}
}

// AddCard appends a card and adds its nominal value. Aces count as 11
// until AdjustForAce demotes them.
func (h *Hand) AddCard(card entities.Card) {
	h.cards = append(h.cards, card)
	h.value += CardValue(card)
	if card.IsAce() {
		h.softAces++
	}
}

// AdjustForAce demotes aces from 11 to 1, one at a time, while the hand is over 21
func (h *Hand) AdjustForAce() {
	for h.value > BustLimit && h.softAces > 0 {
		h.value -= AceDemotion
		h.softAces--
	}
}

// Cards returns a copy of the cards in the order they were dealt
func (h *Hand) Cards() []entities.Card {
	out := make([]entities.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Value returns the running hand value
func (h *Hand) Value() int {
	return h.value
}

// SoftAces returns how many aces are still counted as 11
func (h *Hand) SoftAces() int {
	return h.softAces
}

// IsBust reports whether the hand is over 21
func (h *Hand) IsBust() bool {
	return h.value > BustLimit
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}
