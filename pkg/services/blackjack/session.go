package blackjack

import (
	"context"
	"fmt"

	"github.com/fadedpez/tucojack/internal/logging"
	"github.com/fadedpez/tucojack/internal/types"
	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/fadedpez/tucojack/pkg/storage"
	"github.com/google/uuid"
)

// State is where a round is in its lifecycle
type State string

const (
	StateRoundActive State = "ROUND_ACTIVE" // player's turn
	StateDealerPlay  State = "DEALER_PLAY"
	StateRoundOver   State = "ROUND_OVER"
)

// DeckFactory builds the deck for a new round
type DeckFactory func() *entities.Deck

// Snapshot is a read-only copy of the table
type Snapshot struct {
	RoundID     string
	State       State
	PlayerCards []entities.Card
	PlayerValue int
	DealerCards []entities.Card
	DealerValue int
	Stats       entities.Stats
}

// RoundResult describes a finished round. Table holds the final, fully
// revealed hands and the counters after the round was scored.
type RoundResult struct {
	Table      Snapshot
	Outcome    Outcome
	Message    string
	DealerDrew int   // cards the dealer drew after the player stood
	SaveErr    error // non-nil when the stats could not be persisted
}

// Option configures a Session
type Option func(*Session)

// WithDeckFactory replaces the shuffled 52-card deck used for every round
func WithDeckFactory(f DeckFactory) Option {
	return func(s *Session) {
		s.newDeck = f
	}
}

// WithLogger sets the logger used for round and persistence events
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// Session runs consecutive rounds of single-player blackjack against the
// dealer and keeps the win/loss record. It is not safe for concurrent use;
// every call runs to completion before the next one may start.
type Session struct {
	store   storage.StatsStore
	logger  *logging.Logger
	newDeck DeckFactory

	deck    *entities.Deck
	player  *Hand
	dealer  *Hand
	state   State
	roundID string

	stats      entities.Stats
	loadStatus storage.LoadStatus
	onReset    []func(*Session)
}

// NewSession loads the saved record from store and deals the first round.
// A missing or unreadable record starts the counters at zero.
func NewSession(ctx context.Context, store storage.StatsStore, opts ...Option) (*Session, error) {
	if store == nil {
		return nil, types.NewGameError(types.ErrInvalidArgument, "a stats store is required")
	}

	s := &Session{
		store:  store,
		logger: logging.Discard,
		newDeck: func() *entities.Deck {
			return entities.NewDeck(nil)
		},
		state: StateRoundOver,
	}
	for _, opt := range opts {
		opt(s)
	}

	stats, status, err := storage.LoadStats(ctx, store)
	switch status {
	case storage.StatusLoaded:
		s.logger.Info("Loaded stats: %d wins, %d losses", stats.Wins, stats.Losses)
	case storage.StatusAbsent:
		s.logger.Info("No saved stats found, starting from zero")
	default:
		s.logger.Warn("Ignoring saved stats (%s): %v", status, err)
	}
	s.stats = stats
	s.loadStatus = status

	if err := s.startRound(); err != nil {
		return nil, err
	}
	return s, nil
}

// OnRoundReset registers fn to be called every time a finished round has
// been replaced by a freshly dealt one
func (s *Session) OnRoundReset(fn func(*Session)) {
	s.onReset = append(s.onReset, fn)
}

// Hit deals one card to the player. It returns a non-nil RoundResult only
// when the card busts the player and ends the round.
func (s *Session) Hit(ctx context.Context) (*RoundResult, error) {
	if s.state != StateRoundActive {
		return nil, s.invalidState("hit")
	}

	card, err := s.draw()
	if err != nil {
		return nil, s.voidRound(err)
	}
	s.player.AddCard(card)
	s.player.AdjustForAce()
	s.logger.Debug("Round %s: player drew %s (value %d)", s.roundID, card, s.player.Value())

	if s.player.IsBust() {
		s.state = StateRoundOver
		return s.finishRound(ctx, 0)
	}
	return nil, nil
}

// Stand ends the player's turn, plays out the dealer and scores the round
func (s *Session) Stand(ctx context.Context) (*RoundResult, error) {
	if s.state != StateRoundActive {
		return nil, s.invalidState("stand")
	}

	s.state = StateDealerPlay
	drew := 0
	for DealerShouldDraw(s.dealer) {
		card, err := s.draw()
		if err != nil {
			return nil, s.voidRound(err)
		}
		s.dealer.AddCard(card)
		s.dealer.AdjustForAce()
		drew++
		s.logger.Debug("Round %s: dealer drew %s (value %d)", s.roundID, card, s.dealer.Value())
	}

	s.state = StateRoundOver
	return s.finishRound(ctx, drew)
}

// NewRound deals a fresh round. It is only needed when a previous reset
// failed and left the session in ROUND_OVER.
func (s *Session) NewRound() error {
	if s.state != StateRoundOver {
		return s.invalidState("deal a new round")
	}
	if err := s.startRound(); err != nil {
		return err
	}
	s.notifyReset()
	return nil
}

// PlayerCards returns the player's cards in deal order
func (s *Session) PlayerCards() []entities.Card {
	return s.player.Cards()
}

// PlayerValue returns the player's hand value
func (s *Session) PlayerValue() int {
	return s.player.Value()
}

// DealerCards returns the dealer's cards in deal order
func (s *Session) DealerCards() []entities.Card {
	return s.dealer.Cards()
}

// DealerValue returns the dealer's hand value
func (s *Session) DealerValue() int {
	return s.dealer.Value()
}

// Wins returns the win counter
func (s *Session) Wins() int {
	return s.stats.Wins
}

// Losses returns the loss counter
func (s *Session) Losses() int {
	return s.stats.Losses
}

// Stats returns both counters
func (s *Session) Stats() entities.Stats {
	return s.stats
}

// State returns the current round state
func (s *Session) State() State {
	return s.state
}

// RoundID returns the identifier of the current round
func (s *Session) RoundID() string {
	return s.roundID
}

// LoadStatus reports what was found in the store at startup
func (s *Session) LoadStatus() storage.LoadStatus {
	return s.loadStatus
}

// DeckRemaining returns how many cards are left in this round's deck
func (s *Session) DeckRemaining() int {
	if s.deck == nil {
		return 0
	}
	return s.deck.Remaining()
}

// Snapshot copies the current table
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		RoundID:     s.roundID,
		State:       s.state,
		PlayerCards: s.player.Cards(),
		PlayerValue: s.player.Value(),
		DealerCards: s.dealer.Cards(),
		DealerValue: s.dealer.Value(),
		Stats:       s.stats,
	}
}

// startRound builds a new deck and deals player, player, dealer, dealer
func (s *Session) startRound() error {
	s.deck = s.newDeck()
	s.player = NewHand()
	s.dealer = NewHand()
	s.roundID = uuid.NewString()

	for i := 0; i < InitialCards*2; i++ {
		hand := s.player
		if i >= InitialCards {
			hand = s.dealer
		}
		card, err := s.draw()
		if err != nil {
			s.state = StateRoundOver
			return err
		}
		hand.AddCard(card)
		hand.AdjustForAce()
	}

	s.state = StateRoundActive
	s.logger.Info("Round %s started: player %d, dealer %d", s.roundID, s.player.Value(), s.dealer.Value())
	return nil
}

// finishRound scores the round, persists the counters and deals the next round.
// The result is returned even when the reset fails.
func (s *Session) finishRound(ctx context.Context, dealerDrew int) (*RoundResult, error) {
	outcome := DetermineOutcome(s.player, s.dealer)
	switch {
	case outcome.IsWin():
		s.stats.Wins++
	case outcome.IsLoss():
		s.stats.Losses++
	}

	result := &RoundResult{
		Table:      s.Snapshot(),
		Outcome:    outcome,
		Message:    outcome.Message(),
		DealerDrew: dealerDrew,
	}
	s.logger.Info("Round %s finished: %s (player %d, dealer %d) record %d-%d",
		s.roundID, outcome, s.player.Value(), s.dealer.Value(), s.stats.Wins, s.stats.Losses)

	record := s.stats
	if err := s.store.Save(ctx, &record); err != nil {
		result.SaveErr = types.WrapError(types.ErrStatsWriteFailed, "Your win/loss record could not be saved", err)
		s.logger.Warn("Round %s: %v", result.Table.RoundID, result.SaveErr)
	}

	if err := s.startRound(); err != nil {
		s.logger.LogError(err)
		return result, err
	}
	s.notifyReset()
	return result, nil
}

// voidRound abandons the current round without touching the counters
func (s *Session) voidRound(cause error) error {
	err := types.WrapError(types.ErrDeckExhausted, fmt.Sprintf("Round %s ran out of cards and was voided", s.roundID), cause)
	s.logger.LogError(err)
	s.state = StateRoundOver

	if resetErr := s.startRound(); resetErr != nil {
		s.logger.LogError(resetErr)
		return err
	}
	s.notifyReset()
	return err
}

func (s *Session) draw() (entities.Card, error) {
	card, err := s.deck.DealCard()
	if err != nil {
		return entities.Card{}, types.WrapError(types.ErrDeckExhausted, "No cards left in the deck", err)
	}
	return card, nil
}

func (s *Session) invalidState(action string) error {
	return types.NewGameError(types.ErrInvalidState, fmt.Sprintf("Cannot %s while the round is in %s", action, s.state))
}

func (s *Session) notifyReset() {
	for _, fn := range s.onReset {
		fn(s)
	}
}
