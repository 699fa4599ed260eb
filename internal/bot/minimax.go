package bot

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// WinScore is the utility of a won position for the searching side; a lost
// position scores -WinScore and a tie scores zero.
const WinScore = 100

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")

	searchNodes    metric.Int64Counter     = noop.Int64Counter{}
	searchDuration metric.Float64Histogram = noop.Float64Histogram{}
)

func init() {
	if c, err := meter.Int64Counter("tictactoe.search.nodes",
		metric.WithDescription("Positions visited by minimax search"),
	); err == nil {
		searchNodes = c
	} else {
		otel.Handle(err)
	}

	if h, err := meter.Float64Histogram("tictactoe.search.duration",
		metric.WithDescription("Wall time of one minimax search"),
		metric.WithUnit("ms"),
	); err == nil {
		searchDuration = h
	} else {
		otel.Handle(err)
	}
}

// SearchResult is the outcome of a search from one position.
type SearchResult struct {
	Move     game.Coordinate
	HasMove  bool
	Utility  int
	Terminal bool
	Nodes    int
	Prunes   int
}

type searcher struct {
	me, opponent game.PlayerMark
	nodes        int
	prunes       int
}

// Search runs a full-depth minimax with alpha-beta pruning for piece, which is
// the side to move. Children are explored in row-major order and only a
// strictly better utility replaces the current best, so equal inputs always
// give the same move.
func Search(board game.Board, piece game.PlayerMark) SearchResult {
	s := &searcher{me: piece, opponent: piece.Opponent()}
	res := s.maximize(board, math.MinInt, math.MaxInt)
	res.Nodes = s.nodes
	res.Prunes = s.prunes
	return res
}

// terminal checks, in order, a win for the searching side, a win for the
// opponent and a tie.
func (s *searcher) terminal(board game.Board) (SearchResult, bool) {
	switch {
	case board.HasWon(s.me):
		return SearchResult{Utility: WinScore, Terminal: true}, true
	case board.HasWon(s.opponent):
		return SearchResult{Utility: -WinScore, Terminal: true}, true
	case board.IsTie():
		return SearchResult{Utility: 0, Terminal: true}, true
	}
	return SearchResult{}, false
}

func (s *searcher) maximize(board game.Board, alpha, beta int) SearchResult {
	s.nodes++
	if res, ok := s.terminal(board); ok {
		return res
	}
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return SearchResult{Terminal: true}
	}

	best := SearchResult{Utility: math.MinInt}
	for _, move := range moves {
		child := board
		child[move.Row][move.Col] = s.me

		reply := s.minimize(child, alpha, beta)
		if reply.Utility > best.Utility {
			best = SearchResult{Move: move, HasMove: true, Utility: reply.Utility}
		}
		if best.Utility >= beta {
			s.prunes++
			break
		}
		alpha = max(alpha, best.Utility)
	}
	return best
}

func (s *searcher) minimize(board game.Board, alpha, beta int) SearchResult {
	s.nodes++
	if res, ok := s.terminal(board); ok {
		return res
	}
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return SearchResult{Terminal: true}
	}

	best := SearchResult{Utility: math.MaxInt}
	for _, move := range moves {
		child := board
		child[move.Row][move.Col] = s.opponent

		reply := s.maximize(child, alpha, beta)
		if reply.Utility < best.Utility {
			best = SearchResult{Move: move, HasMove: true, Utility: reply.Utility}
		}
		if best.Utility <= alpha {
			s.prunes++
			break
		}
		beta = min(beta, best.Utility)
	}
	return best
}

// MinMax plays the move found by Search.
type MinMax struct {
	piece game.PlayerMark
}

func NewMinMax(piece game.PlayerMark) *MinMax {
	return &MinMax{piece: piece}
}

func (m *MinMax) MakeMove(ctx context.Context, board game.Board) (game.Coordinate, error) {
	ctx, span := tracer.Start(ctx, "bot.minimax.Search", trace.WithAttributes(
		attribute.String("agent.piece", string(m.piece)),
		attribute.Int("board.occupied", board.OccupiedCount()),
	))
	defer span.End()

	start := time.Now()
	res := Search(board, m.piece)
	elapsed := time.Since(start)

	pieceAttr := metric.WithAttributes(attribute.String("agent.piece", string(m.piece)))
	searchNodes.Add(ctx, int64(res.Nodes), pieceAttr)
	searchDuration.Record(ctx, float64(elapsed.Microseconds())/1000, pieceAttr)
	span.SetAttributes(
		attribute.Int("search.nodes", res.Nodes),
		attribute.Int("search.prunes", res.Prunes),
		attribute.Int("search.utility", res.Utility),
	)

	if !res.HasMove {
		err := noLegalMove(board)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Search found no move")
		return game.Coordinate{}, err
	}

	slog.DebugContext(ctx, "minimax move chosen",
		"agent.piece", m.piece,
		"move.row", res.Move.Row,
		"move.col", res.Move.Col,
		"search.utility", res.Utility,
		"search.nodes", res.Nodes,
		"search.prunes", res.Prunes,
	)
	return res.Move, nil
}

func (m *MinMax) Name() string { return KindMinMax.Title() }

func (m *MinMax) Piece() game.PlayerMark { return m.piece }
