package entities

import (
	"errors"
	"math/rand"
	"time"
)

// ErrDeckExhausted is returned when dealing from an empty deck
var ErrDeckExhausted = errors.New("deck is exhausted")

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// Deck is an ordered pile of cards. Cards are dealt from the end of the slice.
type Deck struct {
	cards []Card
}

// NewDeck creates a deck of 52 cards, one of each rank and suit, shuffled once.
// A nil rng uses a time-seeded source.
func NewDeck(rng *rand.Rand) *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &Deck{cards: cards}
}

// NewStackedDeck creates a deck that deals the given cards in order:
// the first argument is the first card dealt.
func NewStackedDeck(cards ...Card) *Deck {
	stacked := make([]Card, len(cards))
	for i, card := range cards {
		stacked[len(cards)-1-i] = card
	}
	return &Deck{cards: stacked}
}

// DealCard removes and returns the last card in the deck
func (d *Deck) DealCard() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}
	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	return card, nil
}

// Remaining returns how many cards are left to deal
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the undealt cards, next card to deal last
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
