package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

const recordTimeout = time.Second * 10

// Side is one participant: a player, the strategy acting for it, whether
// its ships are placed on a background goroutine, and how long to pause
// after each of its shots.
type Side struct {
	Player     *mb.Player
	Strategy   Strategy
	Background bool
	ShotDelay  time.Duration
}

// Observer is told about everything a person watching the game should see.
type Observer interface {
	WaitingForOpponent(opponent *mb.Player)
	CombatStarted(first, second *mb.Player)
	ShotRequested(attacker, defender *mb.Player)
	ShotRejected(attacker *mb.Player, target mb.Coordinate, err error)
	AttackResolved(attacker, defender *mb.Player, target mb.Coordinate, outcome mb.AttackOutcome)
	GameOver(result Result)
}

// Recorder stores the result of a finished game.
type Recorder interface {
	RecordGame(ctx context.Context, result Result) error
}

type NopObserver struct{}

var _ Observer = NopObserver{}

func (NopObserver) WaitingForOpponent(*mb.Player) {}
func (NopObserver) CombatStarted(_, _ *mb.Player) {}
func (NopObserver) ShotRequested(_, _ *mb.Player) {}
func (NopObserver) ShotRejected(*mb.Player, mb.Coordinate, error) {}
func (NopObserver) AttackResolved(_, _ *mb.Player, _ mb.Coordinate, _ mb.AttackOutcome) {}
func (NopObserver) GameOver(Result) {}

type PlayerResult struct {
	Name  string   `json:"name"`
	Won   bool     `json:"won"`
	Stats mb.Stats `json:"stats"`
}

type Result struct {
	GameID     string         `json:"gameId"`
	Winner     string         `json:"winner"`
	Loser      string         `json:"loser"`
	Players    []PlayerResult `json:"players"`
	FinishedAt time.Time      `json:"finishedAt"`
}

func (r Result) TotalMoves() int {
	total := 0
	for _, p := range r.Players {
		total += p.Stats.Moves
	}
	return total
}

type Engine struct {
	game     *mb.Game
	sides    [2]*Side
	logger   mb.Logger
	observer Observer
	recorder Recorder
}

type Option func(*Engine) error

// New prepares a game between first and second; first shoots first.
func New(first, second *Side, optFuncs ...Option) (*Engine, error) {
	if first == nil || second == nil || first.Player == nil || second.Player == nil {
		return nil, fmt.Errorf("both sides need a player")
	}
	if first.Strategy == nil || second.Strategy == nil {
		return nil, fmt.Errorf("both sides need a strategy")
	}

	e := &Engine{
		game:     mb.NewGame(first.Player, second.Player, mb.StandardFleet),
		sides:    [2]*Side{first, second},
		logger:   mb.DiscardLogger(),
		observer: NopObserver{},
	}

	for _, opt := range optFuncs {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func WithLogger(logger mb.Logger) Option {
	return func(e *Engine) error {
		if logger != nil {
			e.logger = logger
		}
		return nil
	}
}

func WithObserver(observer Observer) Option {
	return func(e *Engine) error {
		if observer != nil {
			e.observer = observer
		}
		return nil
	}
}

func WithRecorder(recorder Recorder) Option {
	return func(e *Engine) error {
		e.recorder = recorder
		return nil
	}
}

func WithGameID(gameID string) Option {
	return func(e *Engine) error {
		if _, err := uuid.Parse(gameID); err != nil {
			return fmt.Errorf("invalid game id %q: %w", gameID, err)
		}
		e.game.Uuid = gameID
		return nil
	}
}

func (e *Engine) Game() *mb.Game {
	return e.game
}

func (e *Engine) sideOf(p *mb.Player) *Side {
	if e.sides[0].Player == p {
		return e.sides[0]
	}
	return e.sides[1]
}

// Run plays a whole game: placement, combat, and recording of the result.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if err := e.PlaceShips(ctx); err != nil {
		return Result{}, err
	}

	result, err := e.Play(ctx)
	if err != nil {
		return Result{}, err
	}

	if e.recorder != nil {
		recordCtx, cancel := context.WithTimeout(ctx, recordTimeout)
		defer cancel()

		// for now not killing the game for it
		if err := e.recorder.RecordGame(recordCtx, result); err != nil {
			e.logger.Warn("failed to record game result", "game", result.GameID, "err", err)
		}
	}
	return result, nil
}

// PlaceShips starts every background side's placement, runs the foreground
// sides in turn, then blocks until the background work is done. Combat can
// only start after that wait. A failure on either side cancels the other.
func (e *Engine) PlaceShips(ctx context.Context) error {
	if e.game.Phase() != mb.PhasePlacingShips {
		return cerr.ErrWrongPhase("place ships", e.game.Phase().String())
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	var pending atomic.Int32

	for _, side := range e.sides {
		if !side.Background {
			continue
		}

		side := side
		pending.Add(1)
		e.logger.Info("placing ships in background", "game", e.game.Uuid, "player", side.Player.Name())
		g.Go(func() error {
			defer pending.Add(-1)
			return e.placeFleet(gctx, side)
		})
	}

	for _, side := range e.sides {
		if side.Background {
			continue
		}
		if err := e.placeFleet(gctx, side); err != nil {
			// gctx done while ctx is not means a background side failed first
			backgroundFailed := gctx.Err() != nil && ctx.Err() == nil
			cancel()
			if bgErr := g.Wait(); backgroundFailed && bgErr != nil {
				return bgErr
			}
			return err
		}
	}

	if pending.Load() > 0 {
		for _, side := range e.sides {
			if side.Background {
				e.observer.WaitingForOpponent(side.Player)
			}
		}
		e.logger.Info("waiting for background placement", "game", e.game.Uuid)
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return e.game.StartCombat()
}

func (e *Engine) placeFleet(ctx context.Context, side *Side) error {
	board := side.Player.Board()
	if err := side.Strategy.PlaceFleet(ctx, board, e.game.Fleet()); err != nil {
		return fmt.Errorf("placing ships of %s: %w", side.Player.Name(), err)
	}

	e.logger.Info("all ships placed", "game", e.game.Uuid, "player", side.Player.Name(), "ships", board.TotalShipsPlaced())
	return nil
}

// Play runs the combat phase to the end. A hit or a sink lets the attacker
// shoot again, a miss passes the turn, and a repeated shot is asked again
// without consuming the turn.
func (e *Engine) Play(ctx context.Context) (Result, error) {
	if e.game.Phase() != mb.PhaseAwaitingTurn {
		return Result{}, cerr.ErrWrongPhase("play", e.game.Phase().String())
	}

	players := e.game.Players()
	e.observer.CombatStarted(players[0], players[1])
	e.logger.Info("combat started", "game", e.game.Uuid, "first", players[0].Name(), "second", players[1].Name())

	for !e.game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		side := e.sideOf(e.game.Attacker())
		defender := e.game.Defender()

		e.observer.ShotRequested(side.Player, defender)
		target, err := side.Strategy.ChooseTarget(ctx, side.Player, defender.Board())
		if err != nil {
			return Result{}, fmt.Errorf("choosing target for %s: %w", side.Player.Name(), err)
		}

		outcome, err := e.game.Resolve(target)
		if err != nil {
			if cerr.IsRetryable(err) {
				e.logger.Warn("shot rejected", "game", e.game.Uuid, "attacker", side.Player.Name(), "target", target, "err", err)
				e.observer.ShotRejected(side.Player, target, err)
				continue
			}
			e.logger.Error("engine defect", "game", e.game.Uuid, "attacker", side.Player.Name(), "target", target, "err", err)
			return Result{}, err
		}

		e.logger.Info("attack resolved", "game", e.game.Uuid, "attacker", side.Player.Name(), "target", target, "outcome", outcome)
		e.observer.AttackResolved(side.Player, defender, target, outcome)

		if outcome == mb.OutcomeAlreadyAttacked || e.game.IsFinished() {
			continue
		}
		if err := pause(ctx, side.ShotDelay); err != nil {
			return Result{}, err
		}
	}

	result := e.result()
	for _, p := range result.Players {
		e.logger.Info("player stats", "game", result.GameID, "player", p.Name, "won", p.Won, "moves", p.Stats.Moves, "longestStreak", p.Stats.LongestStreak)
	}
	e.logger.Info("game over", "game", result.GameID, "winner", result.Winner, "moves", result.TotalMoves())
	e.observer.GameOver(result)
	return result, nil
}

func (e *Engine) result() Result {
	winner, loser := e.game.Winner(), e.game.Loser()

	result := Result{
		GameID:     e.game.Uuid,
		Winner:     winner.Name(),
		Loser:      loser.Name(),
		Players:    make([]PlayerResult, 0, 2),
		FinishedAt: time.Now().UTC(),
	}
	for _, p := range e.game.Players() {
		result.Players = append(result.Players, PlayerResult{
			Name:  p.Name(),
			Won:   p == winner,
			Stats: p.Stats(),
		})
	}
	return result
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
