package console

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

// ParseCoordinate reads a label such as "B4": a column letter (A is x = 0)
// followed by a row number (1 is y = 0). Letters are case-insensitive.
func ParseCoordinate(label string, width, height int) (mb.Coordinate, error) {
	s := strings.ToUpper(strings.TrimSpace(label))
	if s == "" {
		return mb.Coordinate{}, cerr.ErrLabelEmpty()
	}
	if len(s) < 2 || len(s) > 3 {
		return mb.Coordinate{}, cerr.ErrLabelLength(label)
	}

	column := int(s[0]) - 'A'
	if column < 0 || column >= width {
		return mb.Coordinate{}, cerr.ErrLabelOutOfRange(label)
	}

	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return mb.Coordinate{}, cerr.ErrLabelNumber(label)
	}
	if row < 1 || row > height {
		return mb.Coordinate{}, cerr.ErrLabelOutOfRange(label)
	}

	return mb.Coordinate{X: column, Y: row - 1}, nil
}

func FormatCoordinate(c mb.Coordinate) string {
	return string(rune('A'+c.X)) + strconv.Itoa(c.Y+1)
}
