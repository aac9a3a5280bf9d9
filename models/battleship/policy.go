package battleship

import (
	"math/rand"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

// MaxGuessAttempts bounds the redraws of the opponent. With a single
// untargeted cell left the chance of still missing it after this many
// uniform draws is below 1e-40.
const MaxGuessAttempts = 10_000

// OpponentPolicy picks where the computer fires next. shots is the
// opponent's own shot board; implementations may ignore it.
type OpponentPolicy interface {
	NextGuess(shots Board) Coordinates
}

type RandomPolicy struct {
	rng *rand.Rand
}

var _ OpponentPolicy = (*RandomPolicy)(nil)

func NewRandomPolicy(rng *rand.Rand) *RandomPolicy {
	return &RandomPolicy{rng: rng}
}

func (p *RandomPolicy) NextGuess(_ Board) Coordinates {
	return NewCoordinates(p.rng.Intn(GridSize), p.rng.Intn(GridSize))
}

// drawValidGuess asks policy until it returns a coordinate that has
// not been fired at yet.
func drawValidGuess(policy OpponentPolicy, shots *Board) (Coordinates, error) {
	for attempt := 0; attempt < MaxGuessAttempts; attempt++ {
		c := policy.NextGuess(*shots)
		if IsValidCoordinate(shots, c) {
			return c, nil
		}
	}
	return Coordinates{}, cerr.ErrNoValidGuess(MaxGuessAttempts)
}
