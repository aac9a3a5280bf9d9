package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForGo(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedErr error
		awaitCount  int
	}{
		{name: "lower case", input: "go\n"},
		{name: "upper case with spaces", input: "  GO \n"},
		{name: "retries until go", input: "start\nlet's go\nGo\n", awaitCount: 2},
		{name: "input ends", input: "nope\n", expectedErr: io.EOF, awaitCount: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			err := NewInput(strings.NewReader(test.input), &out).WaitForGo()

			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Contains(t, out.String(), MsgObjective)
			}
			assert.True(t, strings.HasPrefix(out.String(), MsgWelcome))
			assert.Equal(t, test.awaitCount, strings.Count(out.String(), MsgAwaitGo))
		})
	}
}

func TestNextCoordinates(t *testing.T) {
	var out bytes.Buffer
	in := NewInput(strings.NewReader("go\n3 4\n10\n1\nx 2\n5 y\n7 8\n"), &out)
	require.NoError(t, in.WaitForGo())

	ctx := context.Background()

	c, err := in.NextCoordinates(ctx)
	require.NoError(t, err)
	assert.Equal(t, mb.NewCoordinates(2, 3), c)

	c, err = in.NextCoordinates(ctx)
	require.NoError(t, err)
	assert.Equal(t, mb.NewCoordinates(9, 0), c)

	c, err = in.NextCoordinates(ctx)
	require.NoError(t, err)
	assert.Equal(t, mb.NewCoordinates(6, 7), c)
	assert.Equal(t, 2, strings.Count(out.String(), MsgNotANumber))

	_, err = in.NextCoordinates(ctx)
	require.ErrorIs(t, err, io.EOF)
}

func TestNextCoordinatesDropsExtraWords(t *testing.T) {
	in := NewInput(strings.NewReader("3 4 5\n6 7\n"), io.Discard)
	ctx := context.Background()

	c, err := in.NextCoordinates(ctx)
	require.NoError(t, err)
	assert.Equal(t, mb.NewCoordinates(2, 3), c)

	c, err = in.NextCoordinates(ctx)
	require.NoError(t, err)
	assert.Equal(t, mb.NewCoordinates(5, 6), c)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestInputReturnsWriteErrors(t *testing.T) {
	in := NewInput(strings.NewReader("go\n1 1\n"), failingWriter{})

	require.EqualError(t, in.WaitForGo(), "broken pipe")

	_, err := in.NextCoordinates(context.Background())
	require.EqualError(t, err, "broken pipe")
}

func TestFormatBoardGlyphs(t *testing.T) {
	b := mb.NewBoard()
	mb.PlaceShip(&b, mb.ShipCarrier, mb.Placement{Origin: mb.NewCoordinates(0, 0), Orientation: mb.Horizontal})
	b.Set(mb.NewCoordinates(0, 0), mb.CellHit)
	b.Set(mb.NewCoordinates(9, 9), mb.CellMiss)

	lines := strings.Split(strings.TrimRight(FormatBoard(b), "\n"), "\n")
	require.Len(t, lines, mb.GridSize+1)

	assert.Equal(t, "\t 1  2  3  4  5  6  7  8  9 10", lines[0])
	assert.Equal(t, " 1\t H  C  C  C  C  ~  ~  ~  ~  ~", lines[1])
	assert.Equal(t, "10\t ~  ~  ~  ~  ~  ~  ~  ~  ~  M", lines[10])
}

func TestDisplayMessages(t *testing.T) {
	var out bytes.Buffer
	d := NewDisplay(&out)

	require.NoError(t, d.AnnounceSunk(mb.RoleOpponent, mb.ShipDestroyer))
	require.NoError(t, d.AnnounceSunk(mb.RoleHuman, mb.ShipPatrol))
	require.NoError(t, d.InvalidCoordinate(nil))
	require.NoError(t, d.RenderWinner(mb.RoleHuman, mb.NewBoard()))
	require.NoError(t, d.RenderBoards(mb.NewBoard(), mb.NewBoard()))

	text := out.String()
	assert.Contains(t, text, "The enemy destroyer has been destroyed.")
	assert.Contains(t, text, "Your patrol boat has been destroyed.")
	assert.Contains(t, text, MsgInvalid)
	assert.Contains(t, text, MsgVictory)
	assert.Contains(t, text, "Your shots:")
	assert.Contains(t, text, "Your fleet:")
}
