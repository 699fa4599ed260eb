package bot

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"log/slog"
	"math"
)

// Weights are the bonuses of the greedy agent's three passes.
type Weights struct {
	Build int `yaml:"build" env-default:"1" validate:"min=0"`
	Win   int `yaml:"win" env-default:"100" validate:"min=0"`
	Block int `yaml:"block" env-default:"50" validate:"min=0"`
}

// DefaultWeights rank winning over blocking over building a pair.
var DefaultWeights = Weights{Build: 1, Win: 100, Block: 50}

func (w Weights) passes() [3]Evaluator {
	return [3]Evaluator{
		{PieceCount: 2, WinBonus: w.Build},
		{PieceCount: 3, WinBonus: w.Win},
		{BlockBonus: w.Block},
	}
}

// Greedy plays the move with the highest one-ply heuristic total.
type Greedy struct {
	piece   game.PlayerMark
	weights Weights
}

func NewGreedy(piece game.PlayerMark, weights Weights) *Greedy {
	return &Greedy{piece: piece, weights: weights}
}

// MakeMove sums the three passes per legal move and keeps the first move with
// the strictly highest total.
func (g *Greedy) MakeMove(ctx context.Context, board game.Board) (game.Coordinate, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.Coordinate{}, noLegalMove(board)
	}

	passes := g.weights.passes()
	best, bestScore := moves[0], math.MinInt
	for _, move := range moves {
		total := 0
		for _, pass := range passes {
			total += pass.Score(board, move, g.piece)
		}
		if total > bestScore {
			best, bestScore = move, total
		}
	}

	slog.DebugContext(ctx, "greedy move chosen", "agent.piece", g.piece, "move.row", best.Row, "move.col", best.Col, "move.score", bestScore)
	return best, nil
}

func (g *Greedy) Name() string { return KindGreedy.Title() }

func (g *Greedy) Piece() game.PlayerMark { return g.piece }
