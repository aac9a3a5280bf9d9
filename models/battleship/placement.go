package battleship

import (
	"math/rand"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// MaxPlacementAttempts bounds the rejection sampling of a single ship.
// With at most 14 of 100 cells occupied a valid spot is found within a
// handful of draws, so hitting this means the board was not empty to
// begin with.
const MaxPlacementAttempts = 10_000

type Placement struct {
	Origin      Coordinates
	Orientation Orientation
}

func (p Placement) cell(i int) Coordinates {
	if p.Orientation == Vertical {
		return NewCoordinates(p.Origin.Row+i, p.Origin.Col)
	}
	return NewCoordinates(p.Origin.Row, p.Origin.Col+i)
}

func randomPlacement(rng *rand.Rand) Placement {
	return Placement{
		Orientation: Orientation(rng.Intn(2)),
		Origin:      NewCoordinates(rng.Intn(GridSize), rng.Intn(GridSize)),
	}
}

// CanPlaceShip reports whether every cell the ship would cover is
// inside the grid and still empty.
func CanPlaceShip(b *Board, kind ShipKind, p Placement) bool {
	length := kind.Length()
	if !p.Origin.InBounds() {
		return false
	}
	if p.Orientation == Vertical && p.Origin.Row+length > GridSize {
		return false
	}
	if p.Orientation == Horizontal && p.Origin.Col+length > GridSize {
		return false
	}

	for i := 0; i < length; i++ {
		if b.At(p.cell(i)) != CellEmpty {
			return false
		}
	}
	return true
}

// PlaceShip marks the ship cells without checking them; callers go
// through CanPlaceShip first.
func PlaceShip(b *Board, kind ShipKind, p Placement) {
	for i := 0; i < kind.Length(); i++ {
		b.Set(p.cell(i), kind.Cell())
	}
}

// PlaceFleet puts every ship of fleet on b. Each ship is placed by
// drawing random placements until one fits; ships already placed are
// never moved.
func PlaceFleet(b *Board, fleet []ShipKind, rng *rand.Rand) error {
	for _, kind := range fleet {
		placed := false

		for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
			p := randomPlacement(rng)
			if !CanPlaceShip(b, kind, p) {
				continue
			}
			PlaceShip(b, kind, p)
			placed = true
			break
		}

		if !placed {
			return cerr.ErrCannotPlaceShip(kind.Name(), MaxPlacementAttempts)
		}
	}
	return nil
}
