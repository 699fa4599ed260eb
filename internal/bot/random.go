package bot

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"math/rand/v2"
)

// Random picks uniformly among the legal moves.
type Random struct {
	piece game.PlayerMark
	rng   *rand.Rand
}

// NewRandom returns a random agent. A nil rng gets a randomly seeded source.
func NewRandom(piece game.PlayerMark, rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Random{piece: piece, rng: rng}
}

func (r *Random) MakeMove(_ context.Context, board game.Board) (game.Coordinate, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.Coordinate{}, noLegalMove(board)
	}
	return moves[r.rng.IntN(len(moves))], nil
}

func (r *Random) Name() string { return KindRandom.Title() }

func (r *Random) Piece() game.PlayerMark { return r.piece }
