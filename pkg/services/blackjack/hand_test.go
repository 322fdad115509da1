package blackjack

import (
	"testing"

	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/stretchr/testify/assert"
)

func card(rank entities.Rank) entities.Card {
	return entities.NewCard(rank, entities.Spades)
}

func handOf(ranks ...entities.Rank) *Hand {
	h := NewHand()
	for _, r := range ranks {
		h.AddCard(card(r))
		h.AdjustForAce()
	}
	return h
}

func TestCardValue(t *testing.T) {
	testCases := []struct {
		rank     entities.Rank
		expected int
	}{
		{entities.Two, 2},
		{entities.Five, 5},
		{entities.Nine, 9},
		{entities.Ten, 10},
		{entities.Jack, 10},
		{entities.Queen, 10},
		{entities.King, 10},
		{entities.Ace, 11},
	}

	for _, tc := range testCases {
		t.Run(string(tc.rank), func(t *testing.T) {
			assert.Equal(t, tc.expected, CardValue(card(tc.rank)))
		})
	}
}

func TestHandValues(t *testing.T) {
	testCases := []struct {
		name     string
		ranks    []entities.Rank
		value    int
		softAces int
	}{
		{"king queen", []entities.Rank{entities.King, entities.Queen}, 20, 0},
		{"ace king", []entities.Rank{entities.Ace, entities.King}, 21, 1},
		{"ace ace nine", []entities.Rank{entities.Ace, entities.Ace, entities.Nine}, 21, 1},
		{"three aces and eight", []entities.Rank{entities.Ace, entities.Ace, entities.Ace, entities.Eight}, 21, 1},
		{"ace six king", []entities.Rank{entities.Ace, entities.Six, entities.King}, 17, 0},
		{"ten nine five", []entities.Rank{entities.Ten, entities.Nine, entities.Five}, 24, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := handOf(tc.ranks...)
			assert.Equal(t, tc.value, h.Value())
			assert.Equal(t, tc.softAces, h.SoftAces())
			assert.Len(t, h.Cards(), len(tc.ranks))
		})
	}
}

func TestAceAdjustmentStepByStep(t *testing.T) {
	h := NewHand()

	h.AddCard(card(entities.Ace))
	h.AdjustForAce()
	assert.Equal(t, 11, h.Value())
	assert.Equal(t, 1, h.SoftAces())

	h.AddCard(card(entities.Ace))
	assert.Equal(t, 22, h.Value(), "raw value before adjustment")
	assert.Equal(t, 2, h.SoftAces())
	h.AdjustForAce()
	assert.Equal(t, 12, h.Value())
	assert.Equal(t, 1, h.SoftAces())

	h.AddCard(card(entities.Nine))
	h.AdjustForAce()
	assert.Equal(t, 21, h.Value())
	assert.Equal(t, 1, h.SoftAces(), "no adjustment once at or under 21")
}

func TestThreeAcesAndEightAddedBeforeAdjusting(t *testing.T) {
	h := NewHand()
	for _, r := range []entities.Rank{entities.Ace, entities.Ace, entities.Ace, entities.Eight} {
		h.AddCard(card(r))
	}
	assert.Equal(t, 41, h.Value())

	// Demotion stops as soon as the hand is no longer over 21: 41 -> 31 -> 21.
	h.AdjustForAce()
	assert.Equal(t, 21, h.Value())
	assert.Equal(t, 1, h.SoftAces())
}

func TestAdjustForAceIsIdempotent(t *testing.T) {
	h := handOf(entities.Ace, entities.Ace, entities.Nine)
	h.AdjustForAce()
	h.AdjustForAce()
	assert.Equal(t, 21, h.Value())
	assert.Equal(t, 1, h.SoftAces())
}

func TestHandIsBust(t *testing.T) {
	assert.False(t, handOf(entities.King, entities.Ace).IsBust())
	assert.True(t, handOf(entities.King, entities.Queen, entities.Two).IsBust())
}

func TestDealerShouldDraw(t *testing.T) {
	assert.True(t, DealerShouldDraw(handOf(entities.Ten, entities.Six)))
	assert.False(t, DealerShouldDraw(handOf(entities.Ten, entities.Seven)))
	assert.False(t, DealerShouldDraw(handOf(entities.Ace, entities.Six)), "dealer stands on soft 17")
}

func TestDetermineOutcome(t *testing.T) {
	testCases := []struct {
		name     string
		player   *Hand
		dealer   *Hand
		expected Outcome
		message  string
	}{
		{"player busts", handOf(entities.Ten, entities.Nine, entities.Five), handOf(entities.Ten, entities.Eight), OutcomePlayerBust, "Bust! You went over 21. Dealer wins."},
		{"both bust counts as player bust", handOf(entities.Ten, entities.Nine, entities.Five), handOf(entities.Ten, entities.Six, entities.King), OutcomePlayerBust, "Bust! You went over 21. Dealer wins."},
		{"dealer busts", handOf(entities.Ten, entities.Two), handOf(entities.Ten, entities.Six, entities.King), OutcomeDealerBust, "Dealer busts! You win!"},
		{"player higher", handOf(entities.Ten, entities.Nine), handOf(entities.Ten, entities.Eight), OutcomePlayerWins, "You win!"},
		{"dealer higher", handOf(entities.Ten, entities.Seven), handOf(entities.Ten, entities.Nine), OutcomeDealerWins, "Dealer wins!"},
		{"tie", handOf(entities.Ten, entities.King), handOf(entities.Queen, entities.Jack), OutcomeTie, "It's a tie!"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			outcome := DetermineOutcome(tc.player, tc.dealer)
			assert.Equal(t, tc.expected, outcome)
			assert.Equal(t, tc.message, outcome.Message())
		})
	}
}

func TestOutcomeCounters(t *testing.T) {
	assert.True(t, OutcomeDealerBust.IsWin())
	assert.True(t, OutcomePlayerWins.IsWin())
	assert.True(t, OutcomePlayerBust.IsLoss())
	assert.True(t, OutcomeDealerWins.IsLoss())
	assert.False(t, OutcomeTie.IsWin())
	assert.False(t, OutcomeTie.IsLoss())
}
