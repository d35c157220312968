package engine

import (
	"context"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

// Strategy is how one side places its fleet and picks where to shoot.
type Strategy interface {
	// PlaceFleet fills board with every ship of fleet, largest first.
	PlaceFleet(ctx context.Context, board *mb.Board, fleet mb.Fleet) error

	// ChooseTarget picks the next cell of enemy for self to fire at.
	ChooseTarget(ctx context.Context, self *mb.Player, enemy *mb.Board) (mb.Coordinate, error)
}

// Random is the source of randomness of RandomStrategy. *rand.Rand
// satisfies it.
type Random interface {
	Intn(n int) int
}

// HumanIO is what HumanStrategy needs from whoever talks to the person
// playing. Errors wrapping cerr.ErrBadCoordinate are answered with a new
// prompt; any other error ends the game. The Ask methods must return
// ctx.Err() once ctx is done, even while waiting for an answer.
type HumanIO interface {
	ShowBoard(board *mb.Board)
	AskShipEnds(ctx context.Context, length int) (start, end mb.Coordinate, err error)
	AskTarget(ctx context.Context) (mb.Coordinate, error)
	Reject(err error)
}
