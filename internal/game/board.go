package game

import (
	"fmt"
	"strings"
)

// Board is a 3x3 grid of marks. It is a value type: assigning a Board copies
// every cell, which is what search relies on for per-branch boards.
type Board [BoardSize][BoardSize]PlayerMark

// Lines lists the eight winning lines: both diagonals, then rows, then columns.
var Lines = [8][3]Coordinate{
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
}

// Place puts mark at c. The board is left untouched on error.
func (b *Board) Place(c Coordinate, mark PlayerMark) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinate, c)
	}
	if b[c.Row][c.Col] != None {
		return fmt.Errorf("%w: %s holds %s", ErrCellOccupied, c, b[c.Row][c.Col])
	}
	b[c.Row][c.Col] = mark
	return nil
}

// At returns the mark at c, or None when c is off the board.
func (b Board) At(c Coordinate) PlayerMark {
	if !c.Valid() {
		return None
	}
	return b[c.Row][c.Col]
}

// HasWon reports whether mark fills any row, column or diagonal.
func (b Board) HasWon(mark PlayerMark) bool {
	if mark == None {
		return false
	}
	for _, line := range Lines {
		if b.lineFilledBy(line, mark) {
			return true
		}
	}
	return false
}

func (b Board) lineFilledBy(line [3]Coordinate, mark PlayerMark) bool {
	for _, c := range line {
		if b[c.Row][c.Col] != mark {
			return false
		}
	}
	return true
}

// IsBoardFull reports whether no cell is empty.
func (b Board) IsBoardFull() bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] == None {
				return false
			}
		}
	}
	return true
}

// IsTie reports a full board on which neither player has won.
func (b Board) IsTie() bool {
	return b.IsBoardFull() && !b.HasWon(PlayerX) && !b.HasWon(PlayerO)
}

// Winner returns the winning mark, or None. X is reported first on a board
// that was filled out of turn order and holds two winners.
func (b Board) Winner() PlayerMark {
	switch {
	case b.HasWon(PlayerX):
		return PlayerX
	case b.HasWon(PlayerO):
		return PlayerO
	default:
		return None
	}
}

// LegalMoves returns every empty cell in row-major order. It is recomputed on
// each call.
func (b Board) LegalMoves() []Coordinate {
	moves := make([]Coordinate, 0, BoardSize*BoardSize)
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] == None {
				moves = append(moves, Coordinate{Row: r, Col: c})
			}
		}
	}
	return moves
}

// OccupiedCount returns the number of non-empty cells.
func (b Board) OccupiedCount() int {
	n := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] != None {
				n++
			}
		}
	}
	return n
}

// Count returns how many cells hold mark.
func (b Board) Count(mark PlayerMark) int {
	n := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] == mark {
				n++
			}
		}
	}
	return n
}

// String renders the board as three rows of cells joined by "|" with a
// "- + - + -" divider between rows. Empty cells render as a space.
func (b Board) String() string {
	var sb strings.Builder
	for r := range BoardSize {
		cells := make([]string, BoardSize)
		for c := range BoardSize {
			cells[c] = string(b[r][c])
			if b[r][c] == None {
				cells[c] = " "
			}
		}
		sb.WriteString(strings.Join(cells, " | "))
		sb.WriteString("\n")
		if r < BorderMax {
			sb.WriteString("- + - + -\n")
		}
	}
	return sb.String()
}

// ParseBoard builds a board from three row strings such as "XO.", where any
// character other than X or O is an empty cell.
func ParseBoard(rows [BoardSize]string) (Board, error) {
	var b Board
	for r, row := range rows {
		if len(row) != BoardSize {
			return Board{}, fmt.Errorf("row %d: want %d cells, got %d", r, BoardSize, len(row))
		}
		for c, ch := range row {
			switch ch {
			case 'X', 'x':
				b[r][c] = PlayerX
			case 'O', 'o':
				b[r][c] = PlayerO
			}
		}
	}
	return b, nil
}
