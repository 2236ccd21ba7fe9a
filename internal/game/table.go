// internal/game/table.go
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/blackjack/internal/bank"
	"github.com/jason-s-yu/blackjack/internal/cache"
	"github.com/jason-s-yu/blackjack/internal/models"
	"github.com/sirupsen/logrus"
)

// ActionPublisher receives every round action, e.g. to feed the historian.
type ActionPublisher interface {
	PublishRoundAction(ctx context.Context, record cache.RoundActionRecord) error
}

// Outcome is the result of a settled round.
type Outcome struct {
	RoundID     uuid.UUID `json:"round_id"`
	Winner      string    `json:"winner"`
	PlayerScore int       `json:"player_score"`
	DealerScore int       `json:"dealer_score"`
	Pot         int       `json:"pot"`
	Balance     int       `json:"balance"`
}

// Table holds the state for a single round. It is created fresh for each
// round and discarded once the pot is settled.
type Table struct {
	ID     uuid.UUID
	Deck   *Deck
	Player *Seat
	Dealer *Seat
	Pot    int

	// BroadcastFn is called for every round event. If nil, nothing is shown.
	BroadcastFn func(ev RoundEvent)

	// Publisher gets a record for every event. If nil, records are dropped.
	Publisher ActionPublisher

	Logger *logrus.Logger

	actionIndex int
}

// NewTable builds a table around deck. player decides the player's hits; the
// dealer always plays DealerRule.
func NewTable(deck *Deck, player Decider) *Table {
	id, _ := uuid.NewRandom()
	return &Table{
		ID:     id,
		Deck:   deck,
		Player: NewSeat(PlayerRole(player)),
		Dealer: NewSeat(DealerRole()),
		Logger: logrus.StandardLogger(),
	}
}

// Start announces the round.
func (t *Table) Start() {
	t.fire(EventRoundStart, nil, nil, map[string]interface{}{"deckSize": t.Deck.Len()})
}

// PlaceBet moves amount from the account into the pot.
func (t *Table) PlaceBet(b *bank.Bank, account string, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("bet %d: %w", amount, bank.ErrInvalidAmount)
	}
	balance, err := b.Withdraw(account, amount)
	if err != nil {
		return err
	}
	t.Pot += amount
	t.fire(EventBetPlaced, t.Player, nil, map[string]interface{}{"amount": amount, "balance": balance})
	return nil
}

// Deal gives the player two face-up cards and the dealer one face-up card
// plus a hidden one.
func (t *Table) Deal() error {
	for i := 0; i < 2; i++ {
		c, err := t.draw(t.Player)
		if err != nil {
			return err
		}
		t.Player.Deal(c)
		t.fire(EventDeal, t.Player, c, nil)
	}

	c, err := t.draw(t.Dealer)
	if err != nil {
		return err
	}
	t.Dealer.Deal(c)
	t.fire(EventDeal, t.Dealer, c, nil)

	hole, err := t.draw(t.Dealer)
	if err != nil {
		return err
	}
	t.Dealer.DealHidden(hole)
	t.fire(EventDealHidden, t.Dealer, hole, nil)
	return nil
}

// PlayerTurn runs the player's turn and returns the player's score (0 if bust).
func (t *Table) PlayerTurn() (int, error) {
	return t.runTurn(t.Player)
}

// DealerTurn reveals the hole card and plays the dealer's hand by rule. It is
// skipped when the player is bust. Returns the dealer's score (0 if bust).
func (t *Table) DealerTurn() (int, error) {
	if t.Player.Hand.IsBust() {
		t.fire(EventTurnSkipped, t.Dealer, nil, nil)
		return t.Dealer.Score(), nil
	}
	if c := t.Dealer.Reveal(); c != nil {
		t.fire(EventReveal, t.Dealer, c, nil)
	}
	return t.runTurn(t.Dealer)
}

// runTurn drives seat until it stands, busts or reaches blackjack.
func (t *Table) runTurn(seat *Seat) (int, error) {
	seat.Status = StatusActive
	for {
		if seat.Hand.IsBlackjack() {
			seat.Status = StatusBlackjack
			t.fire(EventBlackjack, seat, nil, nil)
			return seat.Score(), nil
		}
		if seat.Hand.IsBust() {
			seat.Status = StatusBust
			t.fire(EventBust, seat, nil, nil)
			return 0, nil
		}

		action, err := seat.Role.Decider.Decide(seat)
		if err != nil {
			return 0, fmt.Errorf("%s turn: %w", seat.Name(), err)
		}

		switch action {
		case ActionStand:
			seat.Status = StatusStanding
			t.fire(EventStand, seat, nil, nil)
			return seat.Score(), nil
		case ActionHit:
			c, err := t.draw(seat)
			if err != nil {
				return 0, err
			}
			seat.Deal(c)
			t.fire(EventHit, seat, c, nil)
		default:
			return 0, fmt.Errorf("%s turn: unknown action %q", seat.Name(), action)
		}
	}
}

// Winner compares the hands. A bust player always loses; the dealer wins ties.
func (t *Table) Winner() string {
	if t.Player.Hand.IsBust() {
		return DealerName
	}
	if t.Player.Score() > t.Dealer.Score() {
		return PlayerName
	}
	return DealerName
}

// Settle pays the pot back to account when the player won and reports the outcome.
func (t *Table) Settle(b *bank.Bank, account string) (Outcome, error) {
	out := Outcome{
		RoundID:     t.ID,
		Winner:      t.Winner(),
		PlayerScore: t.Player.Score(),
		DealerScore: t.Dealer.Score(),
		Pot:         t.Pot,
	}

	var err error
	if out.Winner == PlayerName {
		out.Balance, err = b.Deposit(account, t.Pot)
	} else {
		out.Balance, err = b.Balance(account)
	}
	if err != nil {
		return out, fmt.Errorf("settle round %s: %w", t.ID, err)
	}

	t.fire(EventRoundEnd, nil, nil, map[string]interface{}{
		"winner":      out.Winner,
		"playerScore": out.PlayerScore,
		"dealerScore": out.DealerScore,
		"pot":         out.Pot,
		"balance":     out.Balance,
	})
	return out, nil
}

// State returns the table as a viewer sees it.
func (t *Table) State() TableState {
	return TableState{
		Dealer: buildSeatState(t.Dealer),
		Player: buildSeatState(t.Player),
		Pot:    t.Pot,
	}
}

func (t *Table) draw(seat *Seat) (*models.Card, error) {
	c, err := t.Deck.Draw()
	if err != nil {
		return nil, fmt.Errorf("round %s: dealing to %s: %w", t.ID, seat.Name(), err)
	}
	return c, nil
}

// fire broadcasts an event and logs it as a round action.
func (t *Table) fire(typ RoundEventType, seat *Seat, c *models.Card, payload map[string]interface{}) {
	state := t.State()
	ev := RoundEvent{
		Type:    typ,
		RoundID: t.ID,
		Card:    buildEventCard(c, typ != EventDealHidden),
		Payload: payload,
		State:   &state,
	}
	actor := ""
	if seat != nil {
		ev.Seat = seat.Name()
		actor = seat.Name()
	}

	if t.BroadcastFn != nil {
		t.BroadcastFn(ev)
	}

	record := map[string]interface{}{}
	for k, v := range payload {
		record[k] = v
	}
	if ev.Card != nil {
		record["cardId"] = ev.Card.ID
		if ev.Card.Rank != "" {
			record["card"] = ev.Card.Rank + " of " + ev.Card.Suit
		}
	}
	if seat != nil {
		record["totals"] = seat.Hand.Totals()
	}
	t.logAction(actor, string(typ), record)
}

// logAction sends the action to the publisher, if any. A failed publish is
// logged and does not interrupt the round.
func (t *Table) logAction(actor, actionType string, payload map[string]interface{}) {
	t.actionIndex++
	entry := t.Logger.WithFields(logrus.Fields{
		"round":  t.ID,
		"seat":   actor,
		"action": actionType,
		"index":  t.actionIndex,
	})
	entry.Debug("round action")

	if t.Publisher == nil {
		return
	}
	rec := cache.RoundActionRecord{
		RoundID:       t.ID,
		ActionIndex:   t.actionIndex,
		Actor:         actor,
		ActionType:    actionType,
		ActionPayload: payload,
		Timestamp:     time.Now().UnixMilli(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := t.Publisher.PublishRoundAction(ctx, rec); err != nil {
		entry.WithError(err).Warn("failed to publish round action")
	}
}
