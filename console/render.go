package console

import (
	"fmt"
	"io"
	"strings"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

const (
	glyphUnknown = '.'
	glyphMiss    = '*'
	glyphShip    = 'O'
	glyphHit     = 'X'
	glyphSunk    = '#'
)

const spaceBetweenBoards = "  "

// glyph decides how one cell is drawn. A nil viewer is the board's owner,
// who sees live ships; otherwise only the viewer's own shots are shown.
func glyph(board *mb.Board, c mb.Coordinate, viewer *mb.Player) rune {
	state, err := board.Cell(c)
	if err != nil {
		return glyphUnknown
	}

	if viewer != nil && !viewer.HasFiredAt(c) {
		return glyphUnknown
	}

	switch state {
	case mb.CellStateMissMark:
		return glyphMiss
	case mb.CellStateShipHit:
		if board.IsSunkCell(c) {
			return glyphSunk
		}
		return glyphHit
	case mb.CellStateShipIntact:
		return glyphShip
	default:
		return glyphUnknown
	}
}

func row(board *mb.Board, y int, viewer *mb.Player) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%2d |", y+1)
	for x := 0; x < board.Width(); x++ {
		sb.WriteString(" ")
		sb.WriteRune(glyph(board, mb.Coordinate{X: x, Y: y}, viewer))
		sb.WriteString(" ")
	}
	sb.WriteString("|")
	return sb.String()
}

func lineSeparator(width int) string {
	return "    " + strings.Repeat("---", width) + " "
}

func columnNames(width int) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < width; x++ {
		sb.WriteString("  ")
		sb.WriteRune(rune('A' + x))
	}
	sb.WriteString("  ")
	return sb.String()
}

// RenderBoard draws a single board as its owner sees it, highest row first.
func RenderBoard(w io.Writer, board *mb.Board) {
	fmt.Fprintln(w, lineSeparator(board.Width()))
	for y := board.Height() - 1; y >= 0; y-- {
		fmt.Fprintln(w, row(board, y, nil))
	}
	fmt.Fprintln(w, lineSeparator(board.Width()))
	fmt.Fprintln(w, columnNames(board.Width()))
}

// RenderBoards draws viewer's own board next to the enemy board, the latter
// showing only the cells viewer has fired at.
func RenderBoards(w io.Writer, viewer *mb.Player, enemy *mb.Player) {
	own, other := viewer.Board(), enemy.Board()

	fmt.Fprintln(w, lineSeparator(own.Width())+spaceBetweenBoards+lineSeparator(other.Width()))
	for y := max(own.Height(), other.Height()) - 1; y >= 0; y-- {
		left := strings.Repeat(" ", len(lineSeparator(own.Width())))
		if y < own.Height() {
			left = row(own, y, nil)
		}
		right := ""
		if y < other.Height() {
			right = row(other, y, viewer)
		}
		fmt.Fprintln(w, left+spaceBetweenBoards+right)
	}
	fmt.Fprintln(w, lineSeparator(own.Width())+spaceBetweenBoards+lineSeparator(other.Width()))
	fmt.Fprintln(w, columnNames(own.Width())+spaceBetweenBoards+columnNames(other.Width()))
}
