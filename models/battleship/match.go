package battleship

import (
	"context"
	"errors"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

// CoordinateSource supplies the human's shots. Implementations block
// until a well-formed pair arrives; malformed input is their concern.
type CoordinateSource interface {
	NextCoordinates(ctx context.Context) (Coordinates, error)
}

// Display shows the game to the human.
type Display interface {
	RenderBoards(shots, goal Board) error
	AnnounceSunk(defender Role, kind ShipKind) error
	InvalidCoordinate(err error) error
	RenderWinner(winner Role, board Board) error
}

// Play runs game to completion and returns the winner. Boards are
// rendered once before the first shot and after every opponent move.
func Play(ctx context.Context, game *Game, input CoordinateSource, policy OpponentPolicy, display Display) (Role, error) {
	human := game.Side(RoleHuman)

	if err := display.RenderBoards(human.ShotBoard, human.GoalBoard); err != nil {
		return 0, err
	}

	for !game.IsOver() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		role := game.ActiveRole()

		var (
			result ShotResult
			err    error
		)
		if role == RoleHuman {
			result, err = playHumanTurn(ctx, game, input, display)
		} else {
			result, err = playOpponentTurn(game, policy)
		}
		if err != nil {
			return 0, err
		}

		if result.Outcome == OutcomeHitAndSunk {
			if err := display.AnnounceSunk(role.Other(), result.Sunk); err != nil {
				return 0, err
			}
		}

		if role == RoleOpponent {
			if err := display.RenderBoards(human.ShotBoard, human.GoalBoard); err != nil {
				return 0, err
			}
		}
	}

	winner := game.Winner()
	loser := game.Side(winner.Other())
	if err := display.RenderWinner(winner, loser.GoalBoard); err != nil {
		return winner, err
	}
	return winner, nil
}

func playHumanTurn(ctx context.Context, game *Game, input CoordinateSource, display Display) (ShotResult, error) {
	for {
		c, err := input.NextCoordinates(ctx)
		if err != nil {
			return ShotResult{}, err
		}

		result, err := game.Fire(c)
		if err == nil {
			return result, nil
		}

		if !errors.Is(err, cerr.ErrOutOfBoundsCoordinate) && !errors.Is(err, cerr.ErrAlreadyTargetedCoordinate) {
			return result, err
		}
		if err := display.InvalidCoordinate(err); err != nil {
			return ShotResult{}, err
		}
	}
}

func playOpponentTurn(game *Game, policy OpponentPolicy) (ShotResult, error) {
	opponent := game.Side(RoleOpponent)

	c, err := drawValidGuess(policy, &opponent.ShotBoard)
	if err != nil {
		return ShotResult{}, err
	}
	return game.Fire(c)
}
