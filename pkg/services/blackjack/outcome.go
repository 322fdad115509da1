package blackjack

// Outcome is the result of a finished round from the player's point of view
type Outcome string

const (
	OutcomePlayerBust Outcome = "PLAYER_BUST"
	OutcomeDealerBust Outcome = "DEALER_BUST"
	OutcomePlayerWins Outcome = "PLAYER_WINS"
	OutcomeDealerWins Outcome = "DEALER_WINS"
	OutcomeTie        Outcome = "TIE"
)

var outcomeMessages = map[Outcome]string{
	OutcomePlayerBust: "Bust! You went over 21. Dealer wins.",
	OutcomeDealerBust: "Dealer busts! You win!",
	OutcomePlayerWins: "You win!",
	OutcomeDealerWins: "Dealer wins!",
	OutcomeTie:        "It's a tie!",
}

// String returns the string representation of the outcome
func (o Outcome) String() string {
	return string(o)
}

// Message returns the one-line text shown to the player
func (o Outcome) Message() string {
	return outcomeMessages[o]
}

// IsWin returns true if the player won the round
func (o Outcome) IsWin() bool {
	return o == OutcomeDealerBust || o == OutcomePlayerWins
}

// IsLoss returns true if the dealer won the round
func (o Outcome) IsLoss() bool {
	return o == OutcomePlayerBust || o == OutcomeDealerWins
}

// DetermineOutcome decides a round from the two final hands. A player bust is
// checked first, so the dealer's hand is irrelevant on that path.
func DetermineOutcome(player, dealer *Hand) Outcome {
	switch {
	case player.IsBust():
		return OutcomePlayerBust
	case dealer.IsBust():
		return OutcomeDealerBust
	case player.Value() > dealer.Value():
		return OutcomePlayerWins
	case player.Value() < dealer.Value():
		return OutcomeDealerWins
	default:
		return OutcomeTie
	}
}
