package error

import (
	"errors"
	"fmt"
)

// Player-correctable kinds. Placement and parsing errors of these kinds are
// recovered by re-prompting or retrying and never end the game.
var (
	ErrOutOfRange      = errors.New("coordinate out of board range")
	ErrInvalidShape    = errors.New("ship is not a straight line of the required length")
	ErrInvalidGeometry = errors.New("invalid ship geometry")
	ErrCellNotEmpty    = errors.New("cell is not empty")
	ErrTooClose        = errors.New("too close to other ships")
	ErrBadCoordinate   = errors.New("bad coordinate")
)

// Engine defects. Anything wrapping these must abort the run.
var (
	ErrAlreadyDestroyed   = errors.New("ship is already destroyed")
	ErrInvariantViolation = errors.New("board invariant violated")
)

// Ways a typed coordinate label can be malformed.
var (
	ErrEmptyLabel     = fmt.Errorf("%w: empty string", ErrBadCoordinate)
	ErrLabelFormat    = fmt.Errorf("%w: wrong length", ErrBadCoordinate)
	ErrLabelNotNumber = fmt.Errorf("%w: row is not a number", ErrBadCoordinate)
)

var ErrInputClosed = errors.New("input closed")

func ErrCoordinateOutOfRange(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOutOfRange, x, y)
}

func ErrShipShape(length, startX, startY, endX, endY int) error {
	return fmt.Errorf("%w\tlength: %d\tstart: (%d, %d)\tend: (%d, %d)", ErrInvalidShape, length, startX, startY, endX, endY)
}

func ErrShipLength(length int) error {
	return fmt.Errorf("%w\tlength: %d", ErrInvalidGeometry, length)
}

func ErrCellOccupied(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrCellNotEmpty, x, y)
}

func ErrNeighbourOccupied(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrTooClose, x, y)
}

func ErrShipAlreadyDestroyed(x, y int) error {
	return fmt.Errorf("%w\torigin: (%d, %d)", ErrAlreadyDestroyed, x, y)
}

func ErrNoShipAtCell(x, y int) error {
	return fmt.Errorf("%w: ship cell has no owning ship\tx: %d\ty: %d", ErrInvariantViolation, x, y)
}

func ErrShipsOverlap(x, y int) error {
	return fmt.Errorf("%w: two ships claim the same cell\tx: %d\ty: %d", ErrInvariantViolation, x, y)
}

func ErrShipsTouching(x, y int) error {
	return fmt.Errorf("%w: ships touch\tx: %d\ty: %d", ErrInvariantViolation, x, y)
}

func ErrShipCellUnmarked(x, y int) error {
	return fmt.Errorf("%w: ship cell is not marked on the grid\tx: %d\ty: %d", ErrInvariantViolation, x, y)
}

func ErrFleetIncomplete(player string, placed, expected int) error {
	return fmt.Errorf("%w: fleet of %s has %d ships, expected %d", ErrInvariantViolation, player, placed, expected)
}

func ErrWrongPhase(operation, phase string) error {
	return fmt.Errorf("%w: %s is not allowed in phase %s", ErrInvariantViolation, operation, phase)
}

func ErrLabelEmpty() error {
	return ErrEmptyLabel
}

func ErrLabelLength(label string) error {
	return fmt.Errorf("%w\tlabel: %q", ErrLabelFormat, label)
}

func ErrLabelNumber(label string) error {
	return fmt.Errorf("%w\tlabel: %q", ErrLabelNotNumber, label)
}

func ErrLabelOutOfRange(label string) error {
	return fmt.Errorf("%w: %w\tlabel: %q", ErrBadCoordinate, ErrOutOfRange, label)
}

// IsRetryable reports whether err is a player input problem that should be
// answered with a new attempt rather than ending the game.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrInvalidShape) ||
		errors.Is(err, ErrInvalidGeometry) ||
		errors.Is(err, ErrCellNotEmpty) ||
		errors.Is(err, ErrTooClose) ||
		errors.Is(err, ErrBadCoordinate)
}

func IsFatal(err error) bool {
	return errors.Is(err, ErrAlreadyDestroyed) || errors.Is(err, ErrInvariantViolation)
}
