package bot

import "ctchen222/Tic-Tac-Toe-AI/internal/game"

// Evaluator scores a hypothetical placement by the lines it would shape.
//
// For every line through the placed cell it awards WinBonus when the line would
// hold exactly PieceCount of the mover's pieces and none of the opponent's, and
// BlockBonus when the line would hold two opponent pieces and the mover's one.
type Evaluator struct {
	PieceCount int
	WinBonus   int
	BlockBonus int
}

// Score evaluates placing piece at at. The board itself is never modified.
// Off-board or occupied cells score zero.
func (e Evaluator) Score(board game.Board, at game.Coordinate, piece game.PlayerMark) int {
	if board.At(at) != game.None || !at.Valid() {
		return 0
	}
	board[at.Row][at.Col] = piece
	opponent := piece.Opponent()

	score := 0
	for _, line := range linesThrough(at) {
		own, theirs := countLine(board, line, piece, opponent)
		if own == e.PieceCount && theirs == 0 {
			score += e.WinBonus
		}
		if theirs == 2 && own == 1 {
			score += e.BlockBonus
		}
	}
	return score
}

// linesThrough returns the row, the column and any diagonal that contain at.
func linesThrough(at game.Coordinate) [][3]game.Coordinate {
	lines := make([][3]game.Coordinate, 0, 4)
	for _, line := range game.Lines {
		for _, c := range line {
			if c == at {
				lines = append(lines, line)
				break
			}
		}
	}
	return lines
}

func countLine(board game.Board, line [3]game.Coordinate, piece, opponent game.PlayerMark) (own, theirs int) {
	for _, c := range line {
		switch board.At(c) {
		case piece:
			own++
		case opponent:
			theirs++
		}
	}
	return own, theirs
}
