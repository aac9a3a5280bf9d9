package battleship

type ShipKind uint8

const (
	ShipPatrol ShipKind = iota
	ShipDestroyer
	ShipBattleship
	ShipCarrier

	shipKindCount = 4
)

type shipTrait struct {
	name   string
	symbol byte
	length int
}

var shipTraits = [shipKindCount]shipTrait{
	ShipPatrol:     {name: "patrol boat", symbol: 'P', length: 2},
	ShipDestroyer:  {name: "destroyer", symbol: 'D', length: 3},
	ShipBattleship: {name: "battleship", symbol: 'B', length: 4},
	ShipCarrier:    {name: "carrier", symbol: 'C', length: 5},
}

// FleetArea is the number of cells covered by a full fleet and
// therefore the starting number of lives of a side.
var FleetArea = func() int {
	var total int
	for _, trait := range shipTraits {
		total += trait.length
	}
	return total
}()

// DefaultFleet lists every ship kind once, in placement order.
func DefaultFleet() []ShipKind {
	return []ShipKind{ShipPatrol, ShipDestroyer, ShipBattleship, ShipCarrier}
}

func (k ShipKind) Length() int {
	return shipTraits[k].length
}

func (k ShipKind) Name() string {
	return shipTraits[k].name
}

func (k ShipKind) Symbol() byte {
	return shipTraits[k].symbol
}

func (k ShipKind) Cell() Cell {
	return CellPatrol + Cell(k)
}

func (k ShipKind) String() string {
	return k.Name()
}

// FleetHealth holds the number of undamaged cells left per ship kind.
type FleetHealth [shipKindCount]int

func NewFleetHealth() FleetHealth {
	var health FleetHealth
	for kind, trait := range shipTraits {
		health[kind] = trait.length
	}
	return health
}

// Damage removes one cell from kind and reports whether that was
// its last one. A ship that is already sunk is left untouched.
func (h *FleetHealth) Damage(kind ShipKind) (sunk bool) {
	if h[kind] == 0 {
		return false
	}
	h[kind]--
	return h[kind] == 0
}

func (h *FleetHealth) IsSunk(kind ShipKind) bool {
	return h[kind] == 0
}

func (h *FleetHealth) SunkenShips() int {
	var n int
	for _, remaining := range h {
		if remaining == 0 {
			n++
		}
	}
	return n
}
