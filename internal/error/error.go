package error

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBoundsCoordinate     = errors.New("coordinate is out of game grid bound")
	ErrAlreadyTargetedCoordinate = errors.New("coordinate has already been targeted")
	ErrGameOver                  = errors.New("game is already over")
	ErrGameNotExists             = errors.New("game does not exist")
	ErrPlacementBudgetExhausted  = errors.New("ran out of attempts to place ship")
	ErrGuessBudgetExhausted      = errors.New("ran out of attempts to find a valid guess")
	ErrInvariantViolated         = errors.New("game invariant violated")
	ErrMalformedInput            = errors.New("input is not a whole number")
)

func ErrXorYOutOfGridBound(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrOutOfBoundsCoordinate, row, col)
}

func ErrAttackPositionAlreadyFilled(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrAlreadyTargetedCoordinate, row, col)
}

func ErrGameNotFound(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotExists, gameUuid)
}

func ErrGameFinished(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameOver, gameUuid)
}

func ErrCannotPlaceShip(name string, attempts int) error {
	return fmt.Errorf("%w: %s after %d attempts", ErrPlacementBudgetExhausted, name, attempts)
}

func ErrNoValidGuess(attempts int) error {
	return fmt.Errorf("%w after %d attempts", ErrGuessBudgetExhausted, attempts)
}

func ErrBothFleetsDestroyed(gameUuid string) error {
	return fmt.Errorf("%w: both fleets destroyed in game %s", ErrInvariantViolated, gameUuid)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrValueNotInt(value interface{}) error {
	return fmt.Errorf("%w:\t%v", ErrMalformedInput, value)
}
