package engine

import (
	"context"
	"errors"
	"sync"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

type placement struct {
	start, end mb.Coordinate
	length     int
}

var standardLayout = []placement{
	{mb.Coordinate{X: 0, Y: 0}, mb.Coordinate{X: 3, Y: 0}, 4},
	{mb.Coordinate{X: 5, Y: 0}, mb.Coordinate{X: 7, Y: 0}, 3},
	{mb.Coordinate{X: 0, Y: 2}, mb.Coordinate{X: 2, Y: 2}, 3},
	{mb.Coordinate{X: 4, Y: 2}, mb.Coordinate{X: 5, Y: 2}, 2},
	{mb.Coordinate{X: 7, Y: 2}, mb.Coordinate{X: 8, Y: 2}, 2},
	{mb.Coordinate{X: 0, Y: 4}, mb.Coordinate{X: 1, Y: 4}, 2},
	{mb.Coordinate{X: 3, Y: 4}, mb.Coordinate{X: 3, Y: 4}, 1},
	{mb.Coordinate{X: 5, Y: 4}, mb.Coordinate{X: 5, Y: 4}, 1},
	{mb.Coordinate{X: 7, Y: 4}, mb.Coordinate{X: 7, Y: 4}, 1},
	{mb.Coordinate{X: 9, Y: 4}, mb.Coordinate{X: 9, Y: 4}, 1},
}

func layoutCells() []mb.Coordinate {
	cells := make([]mb.Coordinate, 0, 20)
	for _, p := range standardLayout {
		for x := min(p.start.X, p.end.X); x <= max(p.start.X, p.end.X); x++ {
			for y := min(p.start.Y, p.end.Y); y <= max(p.start.Y, p.end.Y); y++ {
				cells = append(cells, mb.Coordinate{X: x, Y: y})
			}
		}
	}
	return cells
}

// scriptedStrategy places standardLayout and fires at targets in order.
type scriptedStrategy struct {
	targets  []mb.Coordinate
	placeErr error
}

func (s *scriptedStrategy) PlaceFleet(_ context.Context, board *mb.Board, _ mb.Fleet) error {
	if s.placeErr != nil {
		return s.placeErr
	}
	for _, p := range standardLayout {
		if err := board.PlaceShip(p.start, p.length, p.end); err != nil {
			return err
		}
	}
	return nil
}

func (s *scriptedStrategy) ChooseTarget(context.Context, *mb.Player, *mb.Board) (mb.Coordinate, error) {
	if len(s.targets) == 0 {
		return mb.Coordinate{}, errors.New("script ran out of targets")
	}
	target := s.targets[0]
	s.targets = s.targets[1:]
	return target, nil
}

type event struct {
	kind     string
	attacker string
	target   mb.Coordinate
	outcome  mb.AttackOutcome
}

type recordingObserver struct {
	mu      sync.Mutex
	events  []event
	result  *Result
	onShot  func()
	waiting []string

	// receives the name of each side the console would ask to wait for
	waitingFor chan string
}

func (o *recordingObserver) add(e event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) WaitingForOpponent(opponent *mb.Player) {
	o.mu.Lock()
	o.waiting = append(o.waiting, opponent.Name())
	o.mu.Unlock()

	if o.waitingFor != nil {
		o.waitingFor <- opponent.Name()
	}
}

func (o *recordingObserver) CombatStarted(_, _ *mb.Player) {
	o.add(event{kind: "started"})
}

func (o *recordingObserver) ShotRequested(attacker, _ *mb.Player) {}

func (o *recordingObserver) ShotRejected(attacker *mb.Player, target mb.Coordinate, _ error) {
	o.add(event{kind: "rejected", attacker: attacker.Name(), target: target})
}

func (o *recordingObserver) AttackResolved(attacker, _ *mb.Player, target mb.Coordinate, outcome mb.AttackOutcome) {
	o.add(event{kind: "resolved", attacker: attacker.Name(), target: target, outcome: outcome})
	if o.onShot != nil {
		o.onShot()
	}
}

func (o *recordingObserver) GameOver(result Result) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.result = &result
}

type fakeRecorder struct {
	results []Result
	err     error
}

func (r *fakeRecorder) RecordGame(_ context.Context, result Result) error {
	r.results = append(r.results, result)
	return r.err
}

// sequenceRandom replays values, then keeps returning zero.
type sequenceRandom struct {
	values []int
}

func (r *sequenceRandom) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

// gatedStrategy places standardLayout only once release is closed.
type gatedStrategy struct {
	scriptedStrategy
	release chan struct{}
}

func (s *gatedStrategy) PlaceFleet(ctx context.Context, board *mb.Board, fleet mb.Fleet) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.release:
	}
	return s.scriptedStrategy.PlaceFleet(ctx, board, fleet)
}
