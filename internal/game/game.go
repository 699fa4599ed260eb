package game

import (
	"errors"
	"fmt"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Board boundaries
	BorderMin = 0
	BorderMax = 2

	// BoardSize is the number of rows and columns.
	BoardSize = BorderMax - BorderMin + 1
)

var (
	ErrInvalidCoordinate = errors.New("coordinate out of range")
	ErrCellOccupied      = errors.New("cell already occupied")
	ErrGameFinished      = errors.New("game already finished")
)

// Opponent returns the mark that plays against m. None has no opponent.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}

// Coordinate addresses a single cell.
type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Valid reports whether c lies on the board.
func (c Coordinate) Valid() bool {
	return c.Row >= BorderMin && c.Row <= BorderMax && c.Col >= BorderMin && c.Col <= BorderMax
}

// Game is the live game owned by the turn driver. X always moves first.
type Game struct {
	Board       Board
	CurrentTurn PlayerMark
	Winner      PlayerMark
	finished    bool
}

func NewGame() *Game {
	return &Game{
		Board:       Board{},
		CurrentTurn: PlayerX,
		Winner:      None,
	}
}

// Move places the current player's mark at c and hands the turn over.
func (g *Game) Move(c Coordinate) error {
	if g.finished {
		return ErrGameFinished
	}
	if err := g.Board.Place(c, g.CurrentTurn); err != nil {
		return err
	}

	mover := g.CurrentTurn
	g.CurrentTurn = mover.Opponent()

	// A win takes precedence over a full board.
	if g.Board.HasWon(mover) {
		g.Winner = mover
		g.finished = true
	} else if g.Board.IsTie() {
		g.finished = true
	}
	return nil
}

// IsFinished reports whether the game has a winner or ended in a draw.
func (g *Game) IsFinished() bool {
	return g.finished
}

// IsDraw checks if the game is a draw.
func (g *Game) IsDraw() bool {
	return g.finished && g.Winner == None
}
