package bot

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"fmt"
)

// Human asks a Selector to pick one of the enumerated legal moves.
type Human struct {
	piece    game.PlayerMark
	selector Selector
}

func NewHuman(piece game.PlayerMark, selector Selector) *Human {
	return &Human{piece: piece, selector: selector}
}

// MakeMove returns ErrInvalidSelection when the chosen index is out of range;
// the caller is expected to ask again.
func (h *Human) MakeMove(ctx context.Context, board game.Board) (game.Coordinate, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.Coordinate{}, noLegalMove(board)
	}

	idx, err := h.selector.Select(ctx, h.piece, board, moves)
	if err != nil {
		return game.Coordinate{}, fmt.Errorf("select move: %w", err)
	}
	if idx < 0 || idx >= len(moves) {
		return game.Coordinate{}, fmt.Errorf("%w: %d is not in [0, %d)", ErrInvalidSelection, idx, len(moves))
	}
	return moves[idx], nil
}

func (h *Human) Name() string { return KindHuman.Title() }

func (h *Human) Piece() game.PlayerMark { return h.piece }
