package entities

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DeckTestSuite struct {
	suite.Suite
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func (s *DeckTestSuite) TestCardString() {
	testCases := []struct {
		name     string
		card     Card
		expected string
	}{
		{"ace of hearts", NewCard(Ace, Hearts), "A♥"},
		{"ten of diamonds", NewCard(Ten, Diamonds), "10♦"},
		{"king of clubs", NewCard(King, Clubs), "K♣"},
		{"two of spades", NewCard(Two, Spades), "2♠"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.card.String())
		})
	}
}

func (s *DeckTestSuite) TestNewDeckIsFullCrossProduct() {
	// Execute
	deck := NewDeck(rand.New(rand.NewSource(1)))

	// Assert
	s.Equal(DeckSize, deck.Remaining())

	seen := make(map[Card]int)
	for _, card := range deck.Cards() {
		seen[card]++
	}
	s.Len(seen, DeckSize, "every card should be distinct")

	for _, suit := range Suits {
		for _, rank := range Ranks {
			s.Equal(1, seen[NewCard(rank, suit)], "missing or duplicated %s%s", rank, suit)
		}
	}
}

func (s *DeckTestSuite) TestDealAccounting() {
	deck := NewDeck(rand.New(rand.NewSource(42)))
	original := make(map[Card]bool)
	for _, card := range deck.Cards() {
		original[card] = true
	}

	dealt := make(map[Card]bool)
	for i := 1; i <= DeckSize; i++ {
		card, err := deck.DealCard()
		s.Require().NoError(err)
		s.True(original[card], "dealt card must come from the original deck")
		s.False(dealt[card], "card %s dealt twice", card)
		dealt[card] = true
		s.Equal(DeckSize-i, deck.Remaining())
	}
}

func (s *DeckTestSuite) TestDealFromEmptyDeck() {
	deck := NewStackedDeck(NewCard(Ace, Spades))

	_, err := deck.DealCard()
	s.Require().NoError(err)

	card, err := deck.DealCard()
	s.ErrorIs(err, ErrDeckExhausted)
	s.Equal(Card{}, card)
	s.Equal(0, deck.Remaining())
}

func (s *DeckTestSuite) TestDealTakesLastCard() {
	deck := NewDeck(rand.New(rand.NewSource(7)))
	cards := deck.Cards()

	card, err := deck.DealCard()
	s.Require().NoError(err)
	s.Equal(cards[len(cards)-1], card)
}

func (s *DeckTestSuite) TestShuffleDependsOnSource() {
	a := NewDeck(rand.New(rand.NewSource(1))).Cards()
	b := NewDeck(rand.New(rand.NewSource(1))).Cards()
	c := NewDeck(rand.New(rand.NewSource(2))).Cards()

	s.Equal(a, b, "same seed should give the same order")
	s.NotEqual(a, c, "different seeds should give different orders")
}

func (s *DeckTestSuite) TestStackedDeckDealsInOrder() {
	deck := NewStackedDeck(NewCard(Ten, Hearts), NewCard(Nine, Clubs), NewCard(Ace, Spades))

	for _, want := range []Card{NewCard(Ten, Hearts), NewCard(Nine, Clubs), NewCard(Ace, Spades)} {
		got, err := deck.DealCard()
		s.Require().NoError(err)
		s.Equal(want, got)
	}
}

func (s *DeckTestSuite) TestStatsValid() {
	s.True(Stats{}.Valid())
	s.True(Stats{Wins: 3, Losses: 2}.Valid())
	s.False(Stats{Wins: -1}.Valid())
	s.Equal(5, Stats{Wins: 3, Losses: 2}.RoundsDecided())
}
