package battleship

import (
	"context"
	"errors"
	"io"
	"testing"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedInput struct {
	shots []Coordinates
}

func (s *scriptedInput) NextCoordinates(_ context.Context) (Coordinates, error) {
	if len(s.shots) == 0 {
		return Coordinates{}, io.EOF
	}
	c := s.shots[0]
	s.shots = s.shots[1:]
	return c, nil
}

// sweepPolicy walks the grid row by row and starts over when it
// reaches the end.
type sweepPolicy struct {
	next int
}

func (p *sweepPolicy) NextGuess(_ Board) Coordinates {
	c := NewCoordinates(p.next/GridSize, p.next%GridSize)
	p.next = (p.next + 1) % (GridSize * GridSize)
	return c
}

type fixedPolicy struct {
	c Coordinates
}

func (p fixedPolicy) NextGuess(_ Board) Coordinates {
	return p.c
}

type recordingDisplay struct {
	renders      int
	invalid      []error
	sunk         map[Role][]ShipKind
	winner       *Role
	winnerBoard  Board
	lastShots    Board
	renderFailAt int
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{sunk: make(map[Role][]ShipKind)}
}

func (d *recordingDisplay) RenderBoards(shots, _ Board) error {
	d.renders++
	d.lastShots = shots
	if d.renderFailAt != 0 && d.renders == d.renderFailAt {
		return errors.New("render failed")
	}
	return nil
}

func (d *recordingDisplay) AnnounceSunk(defender Role, kind ShipKind) error {
	d.sunk[defender] = append(d.sunk[defender], kind)
	return nil
}

func (d *recordingDisplay) InvalidCoordinate(err error) error {
	d.invalid = append(d.invalid, err)
	return nil
}

func (d *recordingDisplay) RenderWinner(winner Role, board Board) error {
	d.winner = &winner
	d.winnerBoard = board
	return nil
}

func allCoordinates() []Coordinates {
	coords := make([]Coordinates, 0, GridSize*GridSize)
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			coords = append(coords, NewCoordinates(row, col))
		}
	}
	return coords
}

func TestPlayRunsToCompletion(t *testing.T) {
	game, err := NewGame(newTestRng(2024))
	require.NoError(t, err)

	shots := []Coordinates{
		FromUserInput(0, 1),  // row 0 is out of bounds once converted
		FromUserInput(11, 5), // so is row 11
	}
	shots = append(shots, NewCoordinates(0, 0), NewCoordinates(0, 0))
	shots = append(shots, allCoordinates()[1:]...)

	display := newRecordingDisplay()
	winner, err := Play(context.Background(), game, &scriptedInput{shots: shots}, &sweepPolicy{}, display)
	require.NoError(t, err)

	require.True(t, game.IsOver())
	assert.Equal(t, game.Winner(), winner)
	require.NotNil(t, display.winner)
	assert.Equal(t, winner, *display.winner)

	loser := game.Side(winner.Other())
	assert.Equal(t, 0, loser.Lives)
	assert.Equal(t, loser.GoalBoard, display.winnerBoard)
	assert.Len(t, display.sunk[winner.Other()], 4)
	assert.LessOrEqual(t, len(display.sunk[winner]), 3)

	require.Len(t, display.invalid, 3)
	assert.ErrorIs(t, display.invalid[0], cerr.ErrOutOfBoundsCoordinate)
	assert.ErrorIs(t, display.invalid[1], cerr.ErrOutOfBoundsCoordinate)
	assert.ErrorIs(t, display.invalid[2], cerr.ErrAlreadyTargetedCoordinate)

	// one render up front plus one after each opponent move
	opponentMoves := (game.Turn() - 1) / 2
	assert.Equal(t, 1+opponentMoves, display.renders)
	assert.Equal(t, game.Side(RoleHuman).ShotBoard, display.lastShots)
}

func TestPlayStopsWhenInputEnds(t *testing.T) {
	game, err := NewGame(newTestRng(8))
	require.NoError(t, err)

	display := newRecordingDisplay()
	input := &scriptedInput{shots: []Coordinates{NewCoordinates(1, 1)}}

	_, err = Play(context.Background(), game, input, &sweepPolicy{}, display)
	require.ErrorIs(t, err, io.EOF)
	assert.False(t, game.IsOver())
	assert.Equal(t, 3, game.Turn())
	assert.Equal(t, 2, display.renders)
	assert.Nil(t, display.winner)
}

func TestPlayHonoursCancelledContext(t *testing.T) {
	game, err := NewGame(newTestRng(8))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Play(ctx, game, &scriptedInput{}, &sweepPolicy{}, newRecordingDisplay())
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, game.Turn())
}

func TestPlayReturnsDisplayError(t *testing.T) {
	game, err := NewGame(newTestRng(8))
	require.NoError(t, err)

	display := newRecordingDisplay()
	display.renderFailAt = 1

	_, err = Play(context.Background(), game, &scriptedInput{}, &sweepPolicy{}, display)
	require.EqualError(t, err, "render failed")
}

func TestOpponentResamplesTargetedCells(t *testing.T) {
	shots := NewBoard()
	for _, c := range allCoordinates()[:GridSize*GridSize-1] {
		shots.Set(c, CellMiss)
	}

	c, err := drawValidGuess(&sweepPolicy{}, &shots)
	require.NoError(t, err)
	assert.Equal(t, NewCoordinates(9, 9), c)
}

func TestOpponentGivesUpAfterBudget(t *testing.T) {
	shots := NewBoard()
	shots.Set(NewCoordinates(0, 0), CellHit)

	_, err := drawValidGuess(fixedPolicy{c: NewCoordinates(0, 0)}, &shots)
	require.ErrorIs(t, err, cerr.ErrGuessBudgetExhausted)
}

func TestRandomPolicyStaysInBounds(t *testing.T) {
	policy := NewRandomPolicy(newTestRng(17))
	seen := make(map[Coordinates]bool)

	for i := 0; i < 5000; i++ {
		c := policy.NextGuess(NewBoard())
		require.True(t, c.InBounds(), "%+v", c)
		seen[c] = true
	}
	assert.Len(t, seen, GridSize*GridSize)
}

func TestRandomGameTerminatesWithinBudget(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		game, err := NewGame(newTestRng(seed))
		require.NoError(t, err)

		humanPolicy := NewRandomPolicy(newTestRng(seed + 1000))
		opponentPolicy := NewRandomPolicy(newTestRng(seed + 2000))

		for !game.IsOver() {
			policy := OpponentPolicy(opponentPolicy)
			if game.ActiveRole() == RoleHuman {
				policy = humanPolicy
			}
			c, err := drawValidGuess(policy, &game.Side(game.ActiveRole()).ShotBoard)
			require.NoError(t, err)
			_, err = game.Fire(c)
			require.NoError(t, err)
		}

		require.LessOrEqual(t, game.Turn()-1, 2*GridSize*GridSize)
		loser := game.Side(game.Winner().Other())
		assert.Equal(t, 0, loser.Lives, "seed %d", seed)
		assert.Zero(t, loser.GoalBoard.Count(Cell.IsShip), "seed %d", seed)
	}
}
