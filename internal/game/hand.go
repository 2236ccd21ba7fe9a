// internal/game/hand.go
package game

import (
	"sort"

	"github.com/jason-s-yu/blackjack/internal/models"
)

// BlackjackTotal is the best total a hand can reach without busting.
const BlackjackTotal = 21

// Hand is an ordered sequence of dealt cards. Cards are never removed.
type Hand struct {
	Cards []*models.Card
}

// Append adds a card and reports whether the hand is still live (not bust).
func (h *Hand) Append(c *models.Card) bool {
	h.Cards = append(h.Cards, c)
	return !h.IsBust()
}

// Totals returns every distinct total up to 21 reachable by choosing a value
// for each multi-valued card, in ascending order. A bust hand has none.
func (h *Hand) Totals() []int {
	totals := []int{0}
	for _, c := range h.Cards {
		if len(c.Values) == 1 {
			for i := range totals {
				totals[i] += c.Values[0]
			}
			continue
		}
		next := make([]int, 0, len(totals)*len(c.Values))
		for _, t := range totals {
			for _, v := range c.Values {
				next = append(next, t+v)
			}
		}
		totals = next
	}

	seen := make(map[int]bool, len(totals))
	valid := make([]int, 0, len(totals))
	for _, t := range totals {
		if t <= BlackjackTotal && !seen[t] {
			seen[t] = true
			valid = append(valid, t)
		}
	}
	sort.Ints(valid)
	return valid
}

// IsBust reports whether no total is 21 or under.
func (h *Hand) IsBust() bool {
	return len(h.Totals()) == 0
}

// IsBlackjack reports whether 21 is one of the hand's totals.
func (h *Hand) IsBlackjack() bool {
	for _, t := range h.Totals() {
		if t == BlackjackTotal {
			return true
		}
	}
	return false
}

// Score is the best total, or 0 for a bust hand.
func (h *Hand) Score() int {
	totals := h.Totals()
	if len(totals) == 0 {
		return 0
	}
	return totals[len(totals)-1]
}

// Len returns the number of cards in the hand.
func (h *Hand) Len() int {
	return len(h.Cards)
}
