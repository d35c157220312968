package battleship

import (
	"slices"

	"github.com/dolthub/swiss"
	"github.com/google/uuid"
)

const (
	DefaultHumanName    = "User"
	DefaultOpponentName = "Computer"
)

// Stats are the counters reported when a game ends. Moves counts resolved
// shots; a repeated shot is not a move and leaves the streak alone.
type Stats struct {
	Moves         int `json:"moves"`
	LongestStreak int `json:"longestStreak"`
	CurrentStreak int `json:"-"`
}

type Player struct {
	Uuid  string
	name  string
	board *Board

	// every cell this player has fired at on the opponent's board
	shots *swiss.Map[Coordinate, AttackOutcome]
	stats Stats
}

func NewPlayer(name string, board *Board) *Player {
	p := &Player{
		Uuid:  uuid.NewString()[:10],
		name:  DefaultHumanName,
		board: board,
		shots: swiss.NewMap[Coordinate, AttackOutcome](uint32(board.Width() * board.Height())),
	}
	p.SetName(name)
	return p
}

func (p *Player) Name() string {
	return p.name
}

// SetName keeps the current name when name is empty.
func (p *Player) SetName(name string) {
	if name != "" {
		p.name = name
	}
}

func (p *Player) Board() *Board {
	return p.board
}

func (p *Player) HasFiredAt(c Coordinate) bool {
	return p.shots.Has(c)
}

func (p *Player) ShotOutcome(c Coordinate) (AttackOutcome, bool) {
	return p.shots.Get(c)
}

func (p *Player) ShotCount() int {
	return p.shots.Count()
}

// Shots returns the fired-at cells ordered by row, then column.
func (p *Player) Shots() []Coordinate {
	out := make([]Coordinate, 0, p.shots.Count())
	p.shots.Iter(func(c Coordinate, _ AttackOutcome) bool {
		out = append(out, c)
		return false
	})

	slices.SortFunc(out, func(a, b Coordinate) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// RecordShot adds a resolved shot to the history and updates the counters.
func (p *Player) RecordShot(c Coordinate, outcome AttackOutcome) {
	if outcome == OutcomeAlreadyAttacked {
		return
	}

	p.shots.Put(c, outcome)
	p.stats.Moves++

	if outcome.GrantsExtraShot() {
		p.stats.CurrentStreak++
		p.stats.LongestStreak = max(p.stats.LongestStreak, p.stats.CurrentStreak)
		return
	}
	p.stats.CurrentStreak = 0
}

func (p *Player) Stats() Stats {
	return p.stats
}

// IsDefeated reports whether every ship this player placed has been sunk.
func (p *Player) IsDefeated() bool {
	return p.board.TotalShipsPlaced() > 0 && p.board.ShipsRemaining() == 0
}
