// internal/game/seat.go
package game

import "github.com/jason-s-yu/blackjack/internal/models"

// TurnStatus is the state of a seat's turn.
type TurnStatus string

const (
	StatusHidden    TurnStatus = "hidden" // dealer holds an uncounted hole card
	StatusActive    TurnStatus = "active"
	StatusStanding  TurnStatus = "standing"
	StatusBust      TurnStatus = "bust"
	StatusBlackjack TurnStatus = "blackjack"
)

// Seat is one party at the table: a hand, an optional hidden card, and the
// role that decides when to hit.
type Seat struct {
	Role   Role
	Hand   Hand
	Hidden *models.Card
	Status TurnStatus
}

// NewSeat returns an empty seat for role.
func NewSeat(role Role) *Seat {
	return &Seat{Role: role, Status: StatusActive}
}

// Name is the role's name, e.g. "player" or "dealer".
func (s *Seat) Name() string {
	return s.Role.Name
}

// Deal appends a face-up card and reports whether the hand is still live.
func (s *Seat) Deal(c *models.Card) bool {
	return s.Hand.Append(c)
}

// DealHidden holds c face down. It is not counted until Reveal.
func (s *Seat) DealHidden(c *models.Card) {
	s.Hidden = c
	s.Status = StatusHidden
}

// Reveal moves the hidden card into the hand and returns it, or nil if there is none.
func (s *Seat) Reveal() *models.Card {
	c := s.Hidden
	if c == nil {
		return nil
	}
	s.Hand.Append(c)
	s.Hidden = nil
	s.Status = StatusActive
	return c
}

// Score is the hand's best total, 0 when bust. The hidden card is not counted.
func (s *Seat) Score() int {
	return s.Hand.Score()
}
