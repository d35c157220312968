package battleship

import (
	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

type Phase uint8

const (
	PhasePlacingShips Phase = iota
	PhaseAwaitingTurn
	PhaseResolving
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlacingShips:
		return "PlacingShips"
	case PhaseAwaitingTurn:
		return "AwaitingTurn"
	case PhaseResolving:
		return "Resolving"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game is the turn-order state machine for two players. The first player
// passed to NewGame shoots first.
type Game struct {
	Uuid     string
	players  [2]*Player
	fleet    Fleet
	phase    Phase
	attacker int
	winner   *Player
}

func NewGame(first, second *Player, fleet Fleet) *Game {
	return &Game{
		Uuid:    uuid.NewString(),
		players: [2]*Player{first, second},
		fleet:   fleet,
		phase:   PhasePlacingShips,
	}
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Fleet() Fleet {
	return g.fleet
}

// returns the players in turn order
func (g *Game) Players() []*Player {
	return []*Player{g.players[0], g.players[1]}
}

func (g *Game) Attacker() *Player {
	return g.players[g.attacker]
}

func (g *Game) Defender() *Player {
	return g.players[1-g.attacker]
}

func (g *Game) Winner() *Player {
	return g.winner
}

func (g *Game) Loser() *Player {
	if g.winner == nil {
		return nil
	}
	if g.winner == g.players[0] {
		return g.players[1]
	}
	return g.players[0]
}

func (g *Game) IsFinished() bool {
	return g.phase == PhaseGameOver
}

// StartCombat leaves the placement phase. Both fleets must be complete and
// both boards consistent.
func (g *Game) StartCombat() error {
	if g.phase != PhasePlacingShips {
		return cerr.ErrWrongPhase("start combat", g.phase.String())
	}

	for _, p := range g.players {
		if placed := p.Board().TotalShipsPlaced(); placed != g.fleet.Size() {
			return cerr.ErrFleetIncomplete(p.Name(), placed, g.fleet.Size())
		}
		if err := p.Board().Validate(); err != nil {
			return err
		}
	}

	g.phase = PhaseAwaitingTurn
	g.attacker = 0
	return nil
}

// Resolve fires the current attacker's shot at c on the defender's board.
// A hit or a sink keeps the turn, a miss passes it, a repeated shot changes
// nothing. The game ends as soon as the defender has no ships left.
func (g *Game) Resolve(c Coordinate) (AttackOutcome, error) {
	if g.phase != PhaseAwaitingTurn {
		return OutcomeNone, cerr.ErrWrongPhase("attack", g.phase.String())
	}
	g.phase = PhaseResolving
	defer func() {
		if g.phase == PhaseResolving {
			g.phase = PhaseAwaitingTurn
		}
	}()

	attacker, defender := g.Attacker(), g.Defender()
	if attacker.HasFiredAt(c) {
		return OutcomeAlreadyAttacked, nil
	}

	outcome, err := defender.Board().Attack(c)
	if err != nil {
		return OutcomeNone, err
	}
	attacker.RecordShot(c, outcome)

	if defender.Board().ShipsRemaining() == 0 {
		g.phase = PhaseGameOver
		g.winner = attacker
		return outcome, nil
	}

	if outcome == OutcomeMiss {
		g.attacker = 1 - g.attacker
	}
	return outcome, nil
}
