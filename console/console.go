package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/saeidalz13/battleship-console/engine"
	cerr "github.com/saeidalz13/battleship-console/internal/error"
	"github.com/saeidalz13/battleship-console/internal/i18n"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

// Console talks to the person at the terminal. It is the human side's
// HumanIO and the observer of the whole game.
type Console struct {
	in       *bufio.Scanner
	lines    chan inputLine
	readOnce sync.Once
	out      io.Writer
	catalog  *i18n.Catalog
	logger   mb.Logger
	human    *mb.Player
	opponent *mb.Player

	// last line typed, quoted back when it could not be parsed
	lastInput string
}

type inputLine struct {
	text string
	err  error
}

var (
	_ engine.HumanIO  = (*Console)(nil)
	_ engine.Observer = (*Console)(nil)
)

func New(in io.Reader, out io.Writer, catalog *i18n.Catalog, logger mb.Logger) *Console {
	if logger == nil {
		logger = mb.DiscardLogger()
	}

	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		catalog: catalog,
		logger:  logger,
	}
}

// SetPlayers tells the console which player is the person at the terminal.
func (c *Console) SetPlayers(human, opponent *mb.Player) {
	c.human = human
	c.opponent = opponent
}

func (c *Console) println(key string, args ...interface{}) {
	fmt.Fprintln(c.out, c.catalog.Message(key, args...))
}

func (c *Console) print(key string, args ...interface{}) {
	fmt.Fprint(c.out, c.catalog.Message(key, args...))
}

// scan owns the input for the life of the console. Scan blocks on the
// terminal, so it runs on its own goroutine and readLine selects on it.
func (c *Console) scan() {
	defer close(c.lines)

	for c.in.Scan() {
		c.lines <- inputLine{text: c.in.Text()}
	}
	if err := c.in.Err(); err != nil {
		c.lines <- inputLine{err: fmt.Errorf("%w: %w", cerr.ErrInputClosed, err)}
	}
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	c.readOnce.Do(func() {
		c.lines = make(chan inputLine)
		go c.scan()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", cerr.ErrInputClosed
		}
		if line.err != nil {
			return "", line.err
		}
		c.lastInput = strings.TrimSpace(line.text)
		return c.lastInput, nil
	}
}

func (c *Console) readCoordinate(ctx context.Context, board *mb.Board) (mb.Coordinate, error) {
	line, err := c.readLine(ctx)
	if err != nil {
		return mb.Coordinate{}, err
	}

	width, height := mb.DefaultBoardWidth, mb.DefaultBoardHeight
	if board != nil {
		width, height = board.Width(), board.Height()
	}
	return ParseCoordinate(line, width, height)
}

func (c *Console) Welcome() {
	c.println(i18n.KeyWelcome)
}

func (c *Console) ShowRules() {
	c.println(i18n.KeyRules)
	c.println(i18n.KeyInputFormat)
}

func (c *Console) Goodbye() {
	c.println(i18n.KeyGoodbye)
}

// AskName prompts with key and returns the answer, or current when the
// answer is empty.
func (c *Console) AskName(ctx context.Context, key, current string) (string, error) {
	c.print(key, current)
	name, err := c.readLine(ctx)
	if err != nil {
		return current, err
	}
	if name == "" {
		return current, nil
	}
	return name, nil
}

func (c *Console) ShowBoard(board *mb.Board) {
	RenderBoard(c.out, board)
}

func (c *Console) AskShipEnds(ctx context.Context, length int) (mb.Coordinate, mb.Coordinate, error) {
	var board *mb.Board
	if c.human != nil {
		board = c.human.Board()
	}

	if length == 1 {
		c.print(i18n.KeyAskSingleDeck)
		cell, err := c.readCoordinate(ctx, board)
		return cell, cell, err
	}

	c.print(i18n.KeyAskShipStart, length)
	start, err := c.readCoordinate(ctx, board)
	if err != nil {
		return mb.Coordinate{}, mb.Coordinate{}, err
	}

	c.print(i18n.KeyAskShipEnd, length)
	end, err := c.readCoordinate(ctx, board)
	if err != nil {
		return mb.Coordinate{}, mb.Coordinate{}, err
	}
	return start, end, nil
}

func (c *Console) AskTarget(ctx context.Context) (mb.Coordinate, error) {
	var board *mb.Board
	if c.opponent != nil {
		board = c.opponent.Board()
	}

	c.print(i18n.KeyAskTarget)
	return c.readCoordinate(ctx, board)
}

// Reject explains why the last input or placement was not accepted.
func (c *Console) Reject(err error) {
	if errors.Is(err, cerr.ErrBadCoordinate) {
		c.println(i18n.KeyBadCoordinates, c.lastInput, c.reason(err))
		return
	}
	c.println(i18n.KeyRejected, c.reason(err))
}

func (c *Console) reason(err error) string {
	switch {
	case errors.Is(err, cerr.ErrEmptyLabel):
		return c.catalog.Message(i18n.KeyErrEmpty)
	case errors.Is(err, cerr.ErrLabelFormat):
		return c.catalog.Message(i18n.KeyErrLength)
	case errors.Is(err, cerr.ErrLabelNotNumber):
		return c.catalog.Message(i18n.KeyErrNumber)
	case errors.Is(err, cerr.ErrOutOfRange):
		return c.catalog.Message(i18n.KeyErrRange)
	case errors.Is(err, cerr.ErrInvalidShape), errors.Is(err, cerr.ErrInvalidGeometry):
		return c.catalog.Message(i18n.KeyErrShape)
	case errors.Is(err, cerr.ErrCellNotEmpty):
		return c.catalog.Message(i18n.KeyErrCellNotEmpty)
	case errors.Is(err, cerr.ErrTooClose):
		return c.catalog.Message(i18n.KeyErrTooClose)
	default:
		c.logger.Warn("unexpected error shown to user", "err", err)
		return c.catalog.Message(i18n.KeyAbstractError)
	}
}

func (c *Console) WaitingForOpponent(opponent *mb.Player) {
	c.println(i18n.KeyWaitForOpponent, opponent.Name())
}

func (c *Console) CombatStarted(first, second *mb.Player) {
	c.println(i18n.KeyGameStarted)
}

func (c *Console) drawAll() {
	if c.human == nil || c.opponent == nil {
		return
	}
	c.println(i18n.KeyFieldTitle, c.opponent.Name())
	RenderBoards(c.out, c.human, c.opponent)
}

func (c *Console) ShotRequested(attacker, defender *mb.Player) {
	if attacker == c.human {
		c.drawAll()
	}
}

func (c *Console) ShotRejected(attacker *mb.Player, target mb.Coordinate, err error) {
	if attacker == c.human {
		c.Reject(err)
	}
}

func (c *Console) AttackResolved(attacker, defender *mb.Player, target mb.Coordinate, outcome mb.AttackOutcome) {
	if attacker == c.human {
		switch outcome {
		case mb.OutcomeMiss:
			c.println(i18n.KeyYouMissed)
		case mb.OutcomeHit:
			c.println(i18n.KeyYouHit)
		case mb.OutcomeSunk:
			c.println(i18n.KeyYouSunk)
		case mb.OutcomeAlreadyAttacked:
			c.println(i18n.KeyRepeatedShot, FormatCoordinate(target))
		}
		return
	}

	c.print(i18n.KeyEnemyShoots, attacker.Name(), FormatCoordinate(target))
	switch outcome {
	case mb.OutcomeMiss:
		c.println(i18n.KeyEnemyMissed)
	case mb.OutcomeHit:
		c.println(i18n.KeyEnemyHit)
	case mb.OutcomeSunk:
		c.println(i18n.KeyEnemySunk)
	}
}

func (c *Console) GameOver(result engine.Result) {
	c.drawAll()
	if c.human == nil {
		return
	}

	stats := c.human.Stats()
	if !c.human.IsDefeated() {
		c.println(i18n.KeyYouWon, stats.Moves, stats.LongestStreak)
		return
	}
	c.println(i18n.KeyYouLost, result.Winner, stats.Moves, stats.LongestStreak)
}
