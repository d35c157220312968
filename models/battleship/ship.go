package battleship

import (
	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

const (
	MinShipLength = 1
	MaxShipLength = 4
)

type Ship struct {
	origin            Coordinate
	length            int
	horizontal        bool
	undamagedSegments int
}

// NewShip creates a ship of the given length extending from origin towards
// increasing x (horizontal) or increasing y (vertical). Whether the cells fit
// on a board is for the board to decide.
func NewShip(origin Coordinate, length int, horizontal bool) (*Ship, error) {
	if length < MinShipLength || length > MaxShipLength {
		return nil, cerr.ErrShipLength(length)
	}

	return &Ship{
		origin:            origin,
		length:            length,
		horizontal:        horizontal,
		undamagedSegments: length,
	}, nil
}

func (sh *Ship) Origin() Coordinate {
	return sh.origin
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Horizontal() bool {
	return sh.horizontal
}

func (sh *Ship) UndamagedSegments() int {
	return sh.undamagedSegments
}

func (sh *Ship) OccupiedCells() []Coordinate {
	cells := make([]Coordinate, sh.length)
	for i := 0; i < sh.length; i++ {
		if sh.horizontal {
			cells[i] = Coordinate{X: sh.origin.X + i, Y: sh.origin.Y}
		} else {
			cells[i] = Coordinate{X: sh.origin.X, Y: sh.origin.Y + i}
		}
	}
	return cells
}

func (sh *Ship) Occupies(c Coordinate) bool {
	if sh.horizontal {
		return c.Y == sh.origin.Y && c.X >= sh.origin.X && c.X < sh.origin.X+sh.length
	}
	return c.X == sh.origin.X && c.Y >= sh.origin.Y && c.Y < sh.origin.Y+sh.length
}

// ApplyHit removes one undamaged segment. Hitting a ship with none left is a
// bookkeeping defect of the caller.
func (sh *Ship) ApplyHit() error {
	if sh.undamagedSegments == 0 {
		return cerr.ErrShipAlreadyDestroyed(sh.origin.X, sh.origin.Y)
	}
	sh.undamagedSegments--
	return nil
}

func (sh *Ship) IsAlive() bool {
	return sh.undamagedSegments > 0
}
