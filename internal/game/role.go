// internal/game/role.go
package game

// Action is a hit/stand choice.
type Action string

const (
	ActionHit   Action = "hit"
	ActionStand Action = "stand"
)

// DealerStandThreshold is the total at or above which the dealer stands.
const DealerStandThreshold = 17

// Role names.
const (
	PlayerName = "player"
	DealerName = "dealer"
)

// Decider chooses the next action for a seat whose turn is still active.
type Decider interface {
	Decide(seat *Seat) (Action, error)
}

// Role names a party and carries its hit/stand policy.
type Role struct {
	Name    string
	Decider Decider
}

// DealerRule stands as soon as any valid total reaches StandOn.
type DealerRule struct {
	StandOn int
}

// Decide implements Decider.
func (r DealerRule) Decide(seat *Seat) (Action, error) {
	for _, t := range seat.Hand.Totals() {
		if t >= r.StandOn {
			return ActionStand, nil
		}
	}
	return ActionHit, nil
}

// PlayerRole is the interactive role; d is usually backed by console input.
func PlayerRole(d Decider) Role {
	return Role{Name: PlayerName, Decider: d}
}

// DealerRole is the house role with the fixed standing rule.
func DealerRole() Role {
	return Role{Name: DealerName, Decider: DealerRule{StandOn: DealerStandThreshold}}
}
