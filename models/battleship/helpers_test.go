package battleship

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type placement struct {
	start, end Coordinate
	length     int
}

// standardLayout is a legal StandardFleet layout on a 10x10 board.
var standardLayout = []placement{
	{Coordinate{0, 0}, Coordinate{3, 0}, 4},
	{Coordinate{5, 0}, Coordinate{7, 0}, 3},
	{Coordinate{0, 2}, Coordinate{2, 2}, 3},
	{Coordinate{4, 2}, Coordinate{5, 2}, 2},
	{Coordinate{7, 2}, Coordinate{8, 2}, 2},
	{Coordinate{0, 4}, Coordinate{1, 4}, 2},
	{Coordinate{3, 4}, Coordinate{3, 4}, 1},
	{Coordinate{5, 4}, Coordinate{5, 4}, 1},
	{Coordinate{7, 4}, Coordinate{7, 4}, 1},
	{Coordinate{9, 4}, Coordinate{9, 4}, 1},
}

func standardBoard(t *testing.T) *Board {
	t.Helper()

	b := NewDefaultBoard(nil)
	for _, p := range standardLayout {
		require.NoError(t, b.PlaceShip(p.start, p.length, p.end), "placing %d decks at %s-%s", p.length, p.start, p.end)
	}
	return b
}

func shipCells(layout []placement) []Coordinate {
	cells := make([]Coordinate, 0, 20)
	for _, p := range layout {
		for x := min(p.start.X, p.end.X); x <= max(p.start.X, p.end.X); x++ {
			for y := min(p.start.Y, p.end.Y); y <= max(p.start.Y, p.end.Y); y++ {
				cells = append(cells, Coordinate{x, y})
			}
		}
	}
	return cells
}
