// internal/game/helpers_test.go
package game

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/jason-s-yu/blackjack/internal/cache"
	"github.com/jason-s-yu/blackjack/internal/models"
)

// card builds a spade of the given rank ("A", "2".."10", "J", "Q", "K").
func card(rank string) *models.Card {
	var values []int
	switch rank {
	case "A":
		values = []int{1, 11}
	case "J", "Q", "K":
		values = []int{10}
	default:
		v, err := strconv.Atoi(rank)
		if err != nil {
			panic("bad test rank " + rank)
		}
		values = []int{v}
	}
	return models.NewCard(models.Spades, rank, values, "")
}

func handOf(ranks ...string) *Hand {
	h := &Hand{}
	for _, r := range ranks {
		h.Append(card(r))
	}
	return h
}

// stackedDeck returns a deck that deals ranks in the listed order:
// player, player, dealer up, dealer hole, then hits.
func stackedDeck(ranks ...string) *Deck {
	cards := make([]*models.Card, len(ranks))
	for i, r := range ranks {
		cards[len(ranks)-1-i] = card(r)
	}
	return NewDeckFromCards(cards)
}

// scriptedConsole replays canned bets and actions and records what was shown.
type scriptedConsole struct {
	bets     []int
	actions  []Action
	events   []RoundEvent
	errs     []error
	balances []int
	decided  int
}

func (c *scriptedConsole) ReadBet(balance int) (int, error) {
	if len(c.bets) == 0 {
		return 0, io.EOF
	}
	b := c.bets[0]
	c.bets = c.bets[1:]
	return b, nil
}

func (c *scriptedConsole) Decide(seat *Seat) (Action, error) {
	c.decided++
	if len(c.actions) == 0 {
		return "", io.EOF
	}
	a := c.actions[0]
	c.actions = c.actions[1:]
	return a, nil
}

func (c *scriptedConsole) ShowBalance(account string, balance int) {
	c.balances = append(c.balances, balance)
}

func (c *scriptedConsole) ShowEvent(ev RoundEvent) {
	c.events = append(c.events, ev)
}

func (c *scriptedConsole) ShowError(err error) {
	c.errs = append(c.errs, err)
}

func (c *scriptedConsole) eventTypes() []RoundEventType {
	out := make([]RoundEventType, 0, len(c.events))
	for _, ev := range c.events {
		out = append(out, ev.Type)
	}
	return out
}

// mockPublisher collects records instead of pushing them to Redis.
type mockPublisher struct {
	records []cache.RoundActionRecord
	fail    bool
}

func (p *mockPublisher) PublishRoundAction(ctx context.Context, rec cache.RoundActionRecord) error {
	if p.fail {
		return errors.New("redis down")
	}
	p.records = append(p.records, rec)
	return nil
}
