package battleship

import (
	"math/rand"
)

type Role uint8

const (
	RoleHuman Role = iota
	RoleOpponent
)

func (r Role) Other() Role {
	if r == RoleHuman {
		return RoleOpponent
	}
	return RoleHuman
}

func (r Role) String() string {
	if r == RoleHuman {
		return "player"
	}
	return "opponent"
}

// Side is one of the two fleets in a game. ShotBoard records the shots
// this side fired at the other one and never holds ship cells.
// GoalBoard is the side's own fleet with the incoming shots marked.
type Side struct {
	Role      Role
	ShotBoard Board
	GoalBoard Board
	Lives     int
	Health    FleetHealth
}

func NewSide(role Role) *Side {
	return &Side{
		Role:      role,
		ShotBoard: NewBoard(),
		GoalBoard: NewBoard(),
		Lives:     FleetArea,
		Health:    NewFleetHealth(),
	}
}

// DeployFleet randomly places the full fleet on the goal board.
func (s *Side) DeployFleet(rng *rand.Rand) error {
	return PlaceFleet(&s.GoalBoard, DefaultFleet(), rng)
}

func (s *Side) IsDefeated() bool {
	return s.Lives == 0
}

func (s *Side) SunkenShips() int {
	return s.Health.SunkenShips()
}
