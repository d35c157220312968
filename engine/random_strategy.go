package engine

import (
	"context"
	"errors"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

var ErrNoTargets = errors.New("no cells left to fire at")

// RandomStrategy places ships by uniform random retries and shoots at a
// uniformly chosen cell that has not been fired at yet.
type RandomStrategy struct {
	random Random
	logger mb.Logger
}

var _ Strategy = (*RandomStrategy)(nil)

func NewRandomStrategy(rnd Random, logger mb.Logger) *RandomStrategy {
	if logger == nil {
		logger = mb.DiscardLogger()
	}
	return &RandomStrategy{random: rnd, logger: logger}
}

func (s *RandomStrategy) PlaceFleet(ctx context.Context, board *mb.Board, fleet mb.Fleet) error {
	for _, length := range fleet.Lengths() {
		attempts := 0
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			attempts++

			start, end := s.randomPlacement(board, length)
			err := board.PlaceShip(start, length, end)
			if err == nil {
				s.logger.Info("computer placed ship", "length", length, "start", start, "end", end, "attempts", attempts)
				break
			}
			if !cerr.IsRetryable(err) {
				return err
			}
		}
	}
	return nil
}

// randomPlacement picks a random start cell and, for longer ships, a random
// axis and a random direction along it. The end may fall off the board; the
// board rejects such placements.
func (s *RandomStrategy) randomPlacement(board *mb.Board, length int) (mb.Coordinate, mb.Coordinate) {
	start := mb.Coordinate{X: s.random.Intn(board.Width()), Y: s.random.Intn(board.Height())}
	if length == 1 {
		return start, start
	}

	span := length - 1
	if s.random.Intn(2) == 0 {
		span = -span
	}

	end := start
	if s.random.Intn(2) == 0 {
		end.X += span
	} else {
		end.Y += span
	}
	return start, end
}

func (s *RandomStrategy) ChooseTarget(ctx context.Context, self *mb.Player, enemy *mb.Board) (mb.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return mb.Coordinate{}, err
	}

	candidates := enemy.EmptyTargetableCells()
	if len(candidates) == 0 {
		return mb.Coordinate{}, ErrNoTargets
	}
	return candidates[s.random.Intn(len(candidates))], nil
}
