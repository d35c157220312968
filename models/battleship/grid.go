package battleship

import (
	"fmt"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

const (
	DefaultBoardWidth  = 10
	DefaultBoardHeight = 10
)

type CellState uint8

const (
	CellStateEmpty CellState = iota
	CellStateShipIntact
	CellStateShipHit
	CellStateMissMark
)

func (s CellState) String() string {
	switch s {
	case CellStateEmpty:
		return "Empty"
	case CellStateShipIntact:
		return "ShipIntact"
	case CellStateShipHit:
		return "ShipHit"
	case CellStateMissMark:
		return "MissMark"
	default:
		return "Unknown"
	}
}

// Attacked reports whether a shot has already landed on a cell in this state.
func (s CellState) Attacked() bool {
	return s == CellStateShipHit || s == CellStateMissMark
}

type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewCoordinate returns the coordinate (x, y) if it lies within
// [0, width) x [0, height).
func NewCoordinate(x, y, width, height int) (Coordinate, error) {
	c := Coordinate{X: x, Y: y}
	if !c.IsWithin(width, height) {
		return Coordinate{}, cerr.ErrCoordinateOutOfRange(x, y)
	}
	return c, nil
}

func (c Coordinate) IsWithin(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// neighbourhood returns the Moore neighbourhood of c (8-connectivity) that
// lies within the board, c itself excluded.
func (c Coordinate) neighbourhood(width, height int) []Coordinate {
	out := make([]Coordinate, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Coordinate{X: c.X + dx, Y: c.Y + dy}
			if n.IsWithin(width, height) {
				out = append(out, n)
			}
		}
	}
	return out
}

// Grid is indexed [y][x].
type Grid [][]CellState

// Creates a new grid with every cell set to CellStateEmpty
func NewGrid(width, height int) Grid {
	grid := make(Grid, height)

	for y := 0; y < height; y++ {
		grid[y] = make([]CellState, width)
	}
	return grid
}

func (g Grid) At(c Coordinate) CellState {
	return g[c.Y][c.X]
}

func (g Grid) set(c Coordinate, state CellState) {
	g[c.Y][c.X] = state
}

func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y := range g {
		out[y] = make([]CellState, len(g[y]))
		copy(out[y], g[y])
	}
	return out
}
