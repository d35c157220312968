package engine

import (
	"context"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

// HumanStrategy asks a person, through HumanIO, where to put ships and where
// to shoot. Bad input and illegal placements are rejected and asked again.
type HumanStrategy struct {
	io     HumanIO
	logger mb.Logger
}

var _ Strategy = (*HumanStrategy)(nil)

func NewHumanStrategy(io HumanIO, logger mb.Logger) *HumanStrategy {
	if logger == nil {
		logger = mb.DiscardLogger()
	}
	return &HumanStrategy{io: io, logger: logger}
}

func (s *HumanStrategy) PlaceFleet(ctx context.Context, board *mb.Board, fleet mb.Fleet) error {
	s.io.ShowBoard(board)

	for _, length := range fleet.Lengths() {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}

			start, end, err := s.io.AskShipEnds(ctx, length)
			if err == nil {
				err = board.PlaceShip(start, length, end)
			}
			if err != nil {
				if !cerr.IsRetryable(err) {
					return err
				}
				s.logger.Debug("placement rejected", "length", length, "start", start, "end", end, "err", err)
				s.io.Reject(err)
				continue
			}

			s.logger.Info("user placed ship", "length", length, "start", start, "end", end)
			s.io.ShowBoard(board)
			break
		}
	}
	return nil
}

// ChooseTarget keeps asking until the input names a cell of the board. It
// does not filter cells already fired at; the game reports those.
func (s *HumanStrategy) ChooseTarget(ctx context.Context, self *mb.Player, enemy *mb.Board) (mb.Coordinate, error) {
	for {
		if err := ctx.Err(); err != nil {
			return mb.Coordinate{}, err
		}

		target, err := s.io.AskTarget(ctx)
		if err == nil && !target.IsWithin(enemy.Width(), enemy.Height()) {
			err = cerr.ErrCoordinateOutOfRange(target.X, target.Y)
		}
		if err != nil {
			if !cerr.IsRetryable(err) {
				return mb.Coordinate{}, err
			}
			s.io.Reject(err)
			continue
		}
		return target, nil
	}
}
