package battleship

import (
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type GameState uint8

const (
	StateAwaitingPlayerShot GameState = iota
	StateAwaitingOpponentShot
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateAwaitingPlayerShot:
		return "awaiting player shot"
	case StateAwaitingOpponentShot:
		return "awaiting opponent shot"
	default:
		return "game over"
	}
}

// Game owns both sides of a match. Odd turns belong to the human.
type Game struct {
	uuid   string
	turn   int
	state  GameState
	winner Role
	sides  [2]*Side
}

// NewGame creates both sides and deploys their fleets.
func NewGame(rng *rand.Rand) (*Game, error) {
	game := &Game{
		uuid:  uuid.NewString()[:6],
		turn:  1,
		state: StateAwaitingPlayerShot,
		sides: [2]*Side{NewSide(RoleHuman), NewSide(RoleOpponent)},
	}

	for _, side := range game.sides {
		if err := side.DeployFleet(rng); err != nil {
			return nil, err
		}
	}

	slog.Debug("game created", "game", game.uuid)
	return game, nil
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Turn() int {
	return g.turn
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) IsOver() bool {
	return g.state == StateGameOver
}

// Winner is only meaningful once IsOver is true.
func (g *Game) Winner() Role {
	return g.winner
}

func (g *Game) Side(role Role) *Side {
	return g.sides[role]
}

func (g *Game) ActiveRole() Role {
	if g.turn%2 == 1 {
		return RoleHuman
	}
	return RoleOpponent
}

// Fire plays the current turn at c. An invalid coordinate leaves the
// game untouched so the same side can try again.
func (g *Game) Fire(c Coordinates) (ShotResult, error) {
	if g.IsOver() {
		return ShotResult{}, cerr.ErrGameFinished(g.uuid)
	}

	attacker := g.sides[g.ActiveRole()]
	defender := g.sides[g.ActiveRole().Other()]

	if err := ValidateCoordinate(&attacker.ShotBoard, c); err != nil {
		return ShotResult{}, err
	}

	result := ResolveShot(attacker, defender, c)
	g.turn++

	if err := g.checkGameOver(); err != nil {
		return result, err
	}
	return result, nil
}

func (g *Game) checkGameOver() error {
	human, opponent := g.sides[RoleHuman], g.sides[RoleOpponent]

	switch {
	case human.IsDefeated() && opponent.IsDefeated():
		g.state = StateGameOver
		return cerr.ErrBothFleetsDestroyed(g.uuid)

	case human.IsDefeated():
		g.finish(RoleOpponent)

	case opponent.IsDefeated():
		g.finish(RoleHuman)

	case g.ActiveRole() == RoleHuman:
		g.state = StateAwaitingPlayerShot

	default:
		g.state = StateAwaitingOpponentShot
	}
	return nil
}

func (g *Game) finish(winner Role) {
	g.state = StateGameOver
	g.winner = winner
	slog.Debug("game over", "game", g.uuid, "winner", winner.String(), "turns", g.turn-1)
}
