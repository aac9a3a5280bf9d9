package battleship

import (
	"errors"
	"math/rand"
	"testing"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, GridSize*GridSize, b.Count(func(c Cell) bool { return c == CellEmpty }))
}

func TestCellGlyph(t *testing.T) {
	tests := []struct {
		name     string
		cell     Cell
		expected byte
	}{
		{name: "empty", cell: CellEmpty, expected: '~'},
		{name: "hit", cell: CellHit, expected: 'H'},
		{name: "miss", cell: CellMiss, expected: 'M'},
		{name: "patrol", cell: ShipPatrol.Cell(), expected: 'P'},
		{name: "destroyer", cell: ShipDestroyer.Cell(), expected: 'D'},
		{name: "battleship", cell: ShipBattleship.Cell(), expected: 'B'},
		{name: "carrier", cell: ShipCarrier.Cell(), expected: 'C'},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.cell.Glyph())
		})
	}
}

func TestShipCellRoundTrip(t *testing.T) {
	for _, kind := range DefaultFleet() {
		cell := kind.Cell()
		require.True(t, cell.IsShip())
		require.False(t, cell.IsTargeted())
		assert.Equal(t, kind, cell.Kind())
	}
	assert.Equal(t, 14, FleetArea)
}

func TestCanPlaceShip(t *testing.T) {
	occupied := NewBoard()
	PlaceShip(&occupied, ShipPatrol, Placement{Origin: NewCoordinates(4, 4), Orientation: Horizontal})

	tests := []struct {
		name      string
		board     Board
		kind      ShipKind
		placement Placement
		expected  bool
	}{
		{
			name:      "carrier vertical touching bottom edge",
			board:     NewBoard(),
			kind:      ShipCarrier,
			placement: Placement{Origin: NewCoordinates(5, 0), Orientation: Vertical},
			expected:  true,
		},
		{
			name:      "carrier vertical past bottom edge",
			board:     NewBoard(),
			kind:      ShipCarrier,
			placement: Placement{Origin: NewCoordinates(6, 0), Orientation: Vertical},
			expected:  false,
		},
		{
			name:      "patrol horizontal touching right edge",
			board:     NewBoard(),
			kind:      ShipPatrol,
			placement: Placement{Origin: NewCoordinates(9, 8), Orientation: Horizontal},
			expected:  true,
		},
		{
			name:      "patrol horizontal past right edge",
			board:     NewBoard(),
			kind:      ShipPatrol,
			placement: Placement{Origin: NewCoordinates(9, 9), Orientation: Horizontal},
			expected:  false,
		},
		{
			name:      "crossing another ship",
			board:     occupied,
			kind:      ShipDestroyer,
			placement: Placement{Origin: NewCoordinates(3, 5), Orientation: Vertical},
			expected:  false,
		},
		{
			name:      "next to another ship",
			board:     occupied,
			kind:      ShipDestroyer,
			placement: Placement{Origin: NewCoordinates(3, 6), Orientation: Vertical},
			expected:  true,
		},
		{
			name:      "origin outside grid",
			board:     NewBoard(),
			kind:      ShipPatrol,
			placement: Placement{Origin: NewCoordinates(-1, 0), Orientation: Vertical},
			expected:  false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, CanPlaceShip(&test.board, test.kind, test.placement))
		})
	}
}

// shipCells collects the coordinates occupied by each ship kind.
func shipCells(b *Board) map[ShipKind][]Coordinates {
	cells := make(map[ShipKind][]Coordinates)
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			c := NewCoordinates(row, col)
			if b.At(c).IsShip() {
				cells[b.At(c).Kind()] = append(cells[b.At(c).Kind()], c)
			}
		}
	}
	return cells
}

func TestPlaceFleetLayouts(t *testing.T) {
	for seed := int64(0); seed < 500; seed++ {
		b := NewBoard()
		require.NoError(t, PlaceFleet(&b, DefaultFleet(), newTestRng(seed)))

		require.Equal(t, FleetArea, b.Count(Cell.IsShip), "seed %d", seed)

		for kind, cells := range shipCells(&b) {
			require.Len(t, cells, kind.Length(), "seed %d kind %s", seed, kind)

			// cells come out row-major so a straight ship is contiguous in order
			first, last := cells[0], cells[len(cells)-1]
			sameRow := first.Row == last.Row && last.Col-first.Col == kind.Length()-1
			sameCol := first.Col == last.Col && last.Row-first.Row == kind.Length()-1
			require.True(t, sameRow || sameCol, "seed %d kind %s not in a straight line", seed, kind)
		}
	}
}

func TestPlaceFleetGivesUpOnFullBoard(t *testing.T) {
	var b Board
	for row := range b {
		for col := range b[row] {
			b[row][col] = CellMiss
		}
	}

	err := PlaceFleet(&b, DefaultFleet(), newTestRng(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, cerr.ErrPlacementBudgetExhausted))
}
