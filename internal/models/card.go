// internal/models/card.go
package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Suits in deck order.
const (
	Hearts   = "hearts"
	Spades   = "spades"
	Diamonds = "diamonds"
	Clubs    = "clubs"
)

// Card is a single playing card. Values holds one value, or two for an ace (1 and 11).
type Card struct {
	ID     uuid.UUID `json:"id"`
	Suit   string    `json:"suit"`
	Rank   string    `json:"rank"`
	Values []int     `json:"values"`
	Icon   string    `json:"icon"`
}

// NewCard builds a card with a fresh ID.
func NewCard(suit, rank string, values []int, icon string) *Card {
	cid, _ := uuid.NewRandom()
	vals := make([]int, len(values))
	copy(vals, values)
	return &Card{ID: cid, Suit: suit, Rank: rank, Values: vals, Icon: icon}
}

func (c *Card) String() string {
	if c.Icon != "" {
		return c.Icon
	}
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
