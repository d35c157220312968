package battleship

import (
	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

type AttackOutcome uint8

// OutcomeNone is what Attack and Resolve return alongside an error.
const (
	OutcomeNone AttackOutcome = iota
	OutcomeMiss
	OutcomeHit
	OutcomeSunk
	OutcomeAlreadyAttacked
)

func (o AttackOutcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeMiss:
		return "Miss"
	case OutcomeHit:
		return "Hit"
	case OutcomeSunk:
		return "Sunk"
	case OutcomeAlreadyAttacked:
		return "AlreadyAttacked"
	default:
		return "Unknown"
	}
}

// GrantsExtraShot reports whether the attacker keeps the turn.
func (o AttackOutcome) GrantsExtraShot() bool {
	return o == OutcomeHit || o == OutcomeSunk
}

// Board owns one player's grid and the ships placed on it. Ships are kept
// in placement order; a ship moves from ships to sunk at its last hit.
type Board struct {
	width  int
	height int
	grid   Grid
	ships  []*Ship
	sunk   []*Ship
	logger Logger
}

func NewBoard(width, height int, logger Logger) *Board {
	if logger == nil {
		logger = DiscardLogger()
	}

	return &Board{
		width:  width,
		height: height,
		grid:   NewGrid(width, height),
		ships:  make([]*Ship, 0, StandardFleet.Size()),
		logger: logger,
	}
}

func NewDefaultBoard(logger Logger) *Board {
	return NewBoard(DefaultBoardWidth, DefaultBoardHeight, logger)
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// PlaceShip places a ship of length decks between start and end, both ends
// inclusive and in any order. Nothing on the board changes unless every
// check passes.
func (b *Board) PlaceShip(start Coordinate, length int, end Coordinate) error {
	if !start.IsWithin(b.width, b.height) {
		return cerr.ErrCoordinateOutOfRange(start.X, start.Y)
	}
	if !end.IsWithin(b.width, b.height) {
		return cerr.ErrCoordinateOutOfRange(end.X, end.Y)
	}

	dx, dy := abs(end.X-start.X), abs(end.Y-start.Y)
	if !isStraightRun(length, dx, dy) {
		return cerr.ErrShipShape(length, start.X, start.Y, end.X, end.Y)
	}

	origin := Coordinate{X: min(start.X, end.X), Y: min(start.Y, end.Y)}
	ship, err := NewShip(origin, length, dy == 0)
	if err != nil {
		return cerr.ErrShipShape(length, start.X, start.Y, end.X, end.Y)
	}

	if err := b.checkClearance(ship); err != nil {
		return err
	}

	for _, c := range ship.OccupiedCells() {
		b.grid.set(c, CellStateShipIntact)
	}
	b.ships = append(b.ships, ship)

	b.logger.Debug("ship placed", "length", length, "origin", origin, "horizontal", ship.Horizontal())
	return nil
}

// PlaceSingleDeckShip is PlaceShip for a one-cell ship.
func (b *Board) PlaceSingleDeckShip(c Coordinate) error {
	return b.PlaceShip(c, 1, c)
}

func isStraightRun(length, dx, dy int) bool {
	if length < MinShipLength || length > MaxShipLength {
		return false
	}
	if length == 1 {
		return dx == 0 && dy == 0
	}
	// exactly one axis differs
	if (dx == 0) == (dy == 0) {
		return false
	}
	return max(dx, dy) == length-1
}

// checkClearance requires every cell of ship to be empty first, then every
// cell around it.
func (b *Board) checkClearance(ship *Ship) error {
	cells := ship.OccupiedCells()
	for _, c := range cells {
		if b.grid.At(c) != CellStateEmpty {
			return cerr.ErrCellOccupied(c.X, c.Y)
		}
	}

	for _, c := range cells {
		for _, n := range c.neighbourhood(b.width, b.height) {
			if b.grid.At(n) != CellStateEmpty {
				return cerr.ErrNeighbourOccupied(c.X, c.Y)
			}
		}
	}
	return nil
}

// Attack resolves a shot at c. Normal gameplay results, including a repeated
// shot, are returned as an AttackOutcome; an error means either a coordinate
// off the board or a broken invariant, and comes with OutcomeNone.
func (b *Board) Attack(c Coordinate) (AttackOutcome, error) {
	if !c.IsWithin(b.width, b.height) {
		return OutcomeNone, cerr.ErrCoordinateOutOfRange(c.X, c.Y)
	}

	switch b.grid.At(c) {
	case CellStateShipHit, CellStateMissMark:
		return OutcomeAlreadyAttacked, nil

	case CellStateEmpty:
		b.grid.set(c, CellStateMissMark)
		return OutcomeMiss, nil
	}

	idx := b.shipIndexAt(c)
	if idx == -1 {
		return OutcomeNone, cerr.ErrNoShipAtCell(c.X, c.Y)
	}
	ship := b.ships[idx]

	if err := ship.ApplyHit(); err != nil {
		return OutcomeNone, err
	}
	b.grid.set(c, CellStateShipHit)

	if ship.IsAlive() {
		return OutcomeHit, nil
	}

	b.ships = append(b.ships[:idx], b.ships[idx+1:]...)
	b.sunk = append(b.sunk, ship)
	b.logger.Debug("ship sunk", "length", ship.Length(), "origin", ship.Origin(), "remaining", len(b.ships))
	return OutcomeSunk, nil
}

func (b *Board) shipIndexAt(c Coordinate) int {
	for i, ship := range b.ships {
		if ship.Occupies(c) {
			return i
		}
	}
	return -1
}

// Cell returns the state of c.
func (b *Board) Cell(c Coordinate) (CellState, error) {
	if !c.IsWithin(b.width, b.height) {
		return CellStateEmpty, cerr.ErrCoordinateOutOfRange(c.X, c.Y)
	}
	return b.grid.At(c), nil
}

// Cells returns a copy of the grid.
func (b *Board) Cells() Grid {
	return b.grid.Clone()
}

// IsSunkCell reports whether c belongs to a ship that has been sunk.
func (b *Board) IsSunkCell(c Coordinate) bool {
	for _, ship := range b.sunk {
		if ship.Occupies(c) {
			return true
		}
	}
	return false
}

// EmptyTargetableCells lists, row by row, every cell no shot has landed on.
func (b *Board) EmptyTargetableCells() []Coordinate {
	cells := make([]Coordinate, 0, b.width*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := Coordinate{X: x, Y: y}
			if !b.grid.At(c).Attacked() {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// ShipsRemaining counts ships still afloat.
func (b *Board) ShipsRemaining() int {
	return len(b.ships)
}

func (b *Board) SunkShipsCount() int {
	return len(b.sunk)
}

func (b *Board) TotalShipsPlaced() int {
	return len(b.ships) + len(b.sunk)
}

// ShipLengths returns the lengths of all placed ships, afloat or sunk.
func (b *Board) ShipLengths() []int {
	lengths := make([]int, 0, b.TotalShipsPlaced())
	for _, ship := range b.ships {
		lengths = append(lengths, ship.Length())
	}
	for _, ship := range b.sunk {
		lengths = append(lengths, ship.Length())
	}
	return lengths
}

// Clear empties the grid and forgets every ship.
func (b *Board) Clear() {
	b.grid = NewGrid(b.width, b.height)
	b.ships = b.ships[:0]
	b.sunk = nil
}

// Validate checks that every ship cell on the grid is claimed by exactly one
// ship, that every ship cell agrees with the grid, and that no two ships
// touch. A failure is an engine defect.
func (b *Board) Validate() error {
	owners := make(map[Coordinate]*Ship, b.width*b.height)
	all := make([]*Ship, 0, b.TotalShipsPlaced())
	all = append(all, b.ships...)
	all = append(all, b.sunk...)

	for _, ship := range all {
		for _, c := range ship.OccupiedCells() {
			if !c.IsWithin(b.width, b.height) {
				return cerr.ErrShipCellUnmarked(c.X, c.Y)
			}
			if _, taken := owners[c]; taken {
				return cerr.ErrShipsOverlap(c.X, c.Y)
			}
			state := b.grid.At(c)
			if state != CellStateShipIntact && state != CellStateShipHit {
				return cerr.ErrShipCellUnmarked(c.X, c.Y)
			}
			owners[c] = ship
		}
	}

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := Coordinate{X: x, Y: y}
			state := b.grid.At(c)
			if state != CellStateShipIntact && state != CellStateShipHit {
				continue
			}
			owner, ok := owners[c]
			if !ok {
				return cerr.ErrNoShipAtCell(x, y)
			}
			for _, n := range c.neighbourhood(b.width, b.height) {
				if other, ok := owners[n]; ok && other != owner {
					return cerr.ErrShipsTouching(x, y)
				}
			}
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
