package battleship

import (
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type Outcome uint8

const (
	OutcomeMiss Outcome = iota
	OutcomeHit
	OutcomeHitAndSunk
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeHitAndSunk:
		return "sunk"
	default:
		return "miss"
	}
}

type ShotResult struct {
	Coordinates   Coordinates
	Outcome       Outcome
	Sunk          ShipKind // set only for OutcomeHitAndSunk
	DefenderLives int
}

func (r ShotResult) IsHit() bool {
	return r.Outcome != OutcomeMiss
}

// ValidateCoordinate must be run against the shot board of the side
// that is firing, before the defender's fleet is looked at.
func ValidateCoordinate(shots *Board, c Coordinates) error {
	if !c.InBounds() {
		return cerr.ErrXorYOutOfGridBound(c.Row, c.Col)
	}
	if shots.At(c).IsTargeted() {
		return cerr.ErrAttackPositionAlreadyFilled(c.Row, c.Col)
	}
	return nil
}

func IsValidCoordinate(shots *Board, c Coordinates) bool {
	return ValidateCoordinate(shots, c) == nil
}

// ResolveShot applies an already validated shot from attacker to
// defender and marks both boards.
func ResolveShot(attacker, defender *Side, c Coordinates) ShotResult {
	result := ShotResult{Coordinates: c, Outcome: OutcomeMiss}

	target := defender.GoalBoard.At(c)
	if !target.IsShip() {
		defender.GoalBoard.Set(c, CellMiss)
		attacker.ShotBoard.Set(c, CellMiss)
		result.DefenderLives = defender.Lives
		return result
	}

	kind := target.Kind()
	result.Outcome = OutcomeHit
	if defender.Health.Damage(kind) {
		result.Outcome = OutcomeHitAndSunk
		result.Sunk = kind
	}

	defender.GoalBoard.Set(c, CellHit)
	attacker.ShotBoard.Set(c, CellHit)
	if defender.Lives > 0 {
		defender.Lives--
	}
	result.DefenderLives = defender.Lives
	return result
}
