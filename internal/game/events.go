// internal/game/events.go
package game

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/blackjack/internal/models"
)

// RoundEventType is an enum-like type for broadcasting round actions.
type RoundEventType string

const (
	EventRoundStart  RoundEventType = "round_start"
	EventBetPlaced   RoundEventType = "bet_placed"
	EventDeal        RoundEventType = "deal"         // face-up card dealt before play
	EventDealHidden  RoundEventType = "deal_hidden"  // dealer hole card, details withheld
	EventHit         RoundEventType = "hit"          // card drawn during a turn
	EventStand       RoundEventType = "stand"        // seat stopped drawing
	EventReveal      RoundEventType = "reveal"       // dealer hole card turned over
	EventBust        RoundEventType = "bust"         // no total at or under 21
	EventBlackjack   RoundEventType = "blackjack"    // hand reached 21
	EventTurnSkipped RoundEventType = "turn_skipped" // dealer does not play after a player bust
	EventRoundEnd    RoundEventType = "round_end"
)

// EventCard identifies a card within a RoundEvent. Only the ID is set for a hidden card.
type EventCard struct {
	ID   uuid.UUID `json:"id"`
	Suit string    `json:"suit,omitempty"`
	Rank string    `json:"rank,omitempty"`
	Icon string    `json:"icon,omitempty"`
}

// SeatState is the visible state of one seat.
type SeatState struct {
	Name   string     `json:"name"`
	Cards  []string   `json:"cards"`
	Hidden bool       `json:"hidden"`
	Totals []int      `json:"totals"`
	Status TurnStatus `json:"status"`
}

// TableState is what a viewer may see of the table. The dealer's hole card is masked.
type TableState struct {
	Dealer SeatState `json:"dealer"`
	Player SeatState `json:"player"`
	Pot    int       `json:"pot"`
}

// RoundEvent holds data about a round change in a consistent format.
type RoundEvent struct {
	Type    RoundEventType         `json:"type"`
	RoundID uuid.UUID              `json:"round_id"`
	Seat    string                 `json:"seat,omitempty"`
	Card    *EventCard             `json:"card,omitempty"`
	Payload map[string]interface{} `json:"payload,omitempty"`
	State   *TableState            `json:"state,omitempty"`
}

func buildEventCard(c *models.Card, reveal bool) *EventCard {
	if c == nil {
		return nil
	}
	ev := &EventCard{ID: c.ID}
	if reveal {
		ev.Suit = c.Suit
		ev.Rank = c.Rank
		ev.Icon = c.String()
	}
	return ev
}

func buildSeatState(s *Seat) SeatState {
	cards := make([]string, 0, s.Hand.Len())
	for _, c := range s.Hand.Cards {
		cards = append(cards, c.String())
	}
	return SeatState{
		Name:   s.Name(),
		Cards:  cards,
		Hidden: s.Hidden != nil,
		Totals: s.Hand.Totals(),
		Status: s.Status,
	}
}
