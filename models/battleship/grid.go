package battleship

const GridSize int = 10

const (
	ValidLowerBound int = 0
	ValidUpperBound int = GridSize - 1
)

// Cell is the state of a single grid position. Ship cells carry
// their kind so a hit can be traced back to the ship it damaged.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellHit
	CellMiss

	// Ship codes in goal grid
	CellPatrol
	CellDestroyer
	CellBattleship
	CellCarrier
)

func (c Cell) IsShip() bool {
	return c >= CellPatrol && c <= CellCarrier
}

// IsTargeted reports whether the position was already fired at.
func (c Cell) IsTargeted() bool {
	return c == CellHit || c == CellMiss
}

// Kind is only meaningful when IsShip is true.
func (c Cell) Kind() ShipKind {
	return ShipKind(c - CellPatrol)
}

// Glyph is the single character used to draw the cell.
func (c Cell) Glyph() byte {
	switch c {
	case CellEmpty:
		return '~'
	case CellHit:
		return 'H'
	case CellMiss:
		return 'M'
	}
	if c.IsShip() {
		return c.Kind().Symbol()
	}
	return '?'
}

type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// FromUserInput converts the 1-indexed pair typed by a human.
func FromUserInput(row, col int) Coordinates {
	return Coordinates{Row: row - 1, Col: col - 1}
}

func (c Coordinates) InBounds() bool {
	return c.Row >= ValidLowerBound && c.Row <= ValidUpperBound &&
		c.Col >= ValidLowerBound && c.Col <= ValidUpperBound
}

// Board is indexed [row][col].
type Board [GridSize][GridSize]Cell

// Creates a new default board
// All positions are zero/CellEmpty
func NewBoard() Board {
	return Board{}
}

func (b *Board) At(c Coordinates) Cell {
	return b[c.Row][c.Col]
}

func (b *Board) Set(c Coordinates, cell Cell) {
	b[c.Row][c.Col] = cell
}

// Count returns how many cells satisfy match.
func (b *Board) Count(match func(Cell) bool) int {
	var n int
	for row := range b {
		for _, cell := range b[row] {
			if match(cell) {
				n++
			}
		}
	}
	return n
}
