package match

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrSeating     = errors.New("agent seated with the wrong piece")
	ErrIllegalMove = errors.New("agent returned an illegal move")
)

var (
	tracer = otel.Tracer("match")
	meter  = otel.Meter("match")

	matchesPlayed metric.Int64Counter = noop.Int64Counter{}
)

func init() {
	c, err := meter.Int64Counter("tictactoe.matches",
		metric.WithDescription("Finished matches by outcome"),
	)
	if err != nil {
		otel.Handle(err)
		return
	}
	matchesPlayed = c
}

// Observer is told about each step of a match. Implementations must not
// modify the boards they receive.
type Observer interface {
	MatchStarted(id string, x, o bot.Agent)
	MovePlayed(agent bot.Agent, move game.Coordinate, board game.Board)
	SelectionRejected(agent bot.Agent, err error)
	MatchFinished(result Result, board game.Board)
}

type nopObserver struct{}

func (nopObserver) MatchStarted(string, bot.Agent, bot.Agent) {}
func (nopObserver) MovePlayed(bot.Agent, game.Coordinate, game.Board) {}
func (nopObserver) SelectionRejected(bot.Agent, error) {}
func (nopObserver) MatchFinished(Result, game.Board) {}

// Result describes a finished match.
type Result struct {
	MatchID    string
	Winner     game.PlayerMark
	WinnerName string
	Moves      []game.Coordinate
}

// IsDraw reports a match that ended without a winner.
func (r Result) IsDraw() bool {
	return r.Winner == game.None
}

func (r Result) outcome() string {
	if r.IsDraw() {
		return "draw"
	}
	return string(r.Winner)
}

// Match drives one game between two agents. It owns the live board and is the
// only thing that mutates it.
type Match struct {
	ID       string
	game     *game.Game
	players  map[game.PlayerMark]bot.Agent
	observer Observer
}

// New seats x and o. Their Piece must match the seat.
func New(x, o bot.Agent, observer Observer) (*Match, error) {
	if x.Piece() != game.PlayerX {
		return nil, fmt.Errorf("%w: %s plays %q in seat X", ErrSeating, x.Name(), x.Piece())
	}
	if o.Piece() != game.PlayerO {
		return nil, fmt.Errorf("%w: %s plays %q in seat O", ErrSeating, o.Name(), o.Piece())
	}
	if observer == nil {
		observer = nopObserver{}
	}

	return &Match{
		ID:   uuid.New().String(),
		game: game.NewGame(),
		players: map[game.PlayerMark]bot.Agent{
			game.PlayerX: x,
			game.PlayerO: o,
		},
		observer: observer,
	}, nil
}

// Board returns a copy of the live board.
func (m *Match) Board() game.Board {
	return m.game.Board
}

// Play runs turns until the game is won or drawn. An invalid human selection
// is reported and the same agent is asked again; any other agent error ends
// the match.
func (m *Match) Play(ctx context.Context) (Result, error) {
	x, o := m.players[game.PlayerX], m.players[game.PlayerO]
	ctx, span := tracer.Start(ctx, "match.Play", trace.WithAttributes(
		attribute.String("match.id", m.ID),
		attribute.String("player.x", x.Name()),
		attribute.String("player.o", o.Name()),
	))
	defer span.End()

	slog.InfoContext(ctx, "match started", "match.id", m.ID, "player.x", x.Name(), "player.o", o.Name())
	m.observer.MatchStarted(m.ID, x, o)

	moves := make([]game.Coordinate, 0, game.BoardSize*game.BoardSize)
	for !m.game.IsFinished() {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Match cancelled")
			return Result{}, err
		}

		agent := m.players[m.game.CurrentTurn]
		move, err := agent.MakeMove(ctx, m.game.Board)
		if errors.Is(err, bot.ErrInvalidSelection) {
			slog.WarnContext(ctx, "selection rejected", "match.id", m.ID, "agent.name", agent.Name(), "error", err)
			m.observer.SelectionRejected(agent, err)
			continue
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Agent failed to move")
			return Result{}, fmt.Errorf("%s (%s) failed to move: %w", agent.Name(), agent.Piece(), err)
		}

		if err := m.game.Move(move); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Illegal move")
			return Result{}, fmt.Errorf("%w: %s (%s) played %s: %w", ErrIllegalMove, agent.Name(), agent.Piece(), move, err)
		}
		moves = append(moves, move)

		slog.DebugContext(ctx, "move played", "match.id", m.ID, "agent.name", agent.Name(), "agent.piece", agent.Piece(), "move.row", move.Row, "move.col", move.Col)
		m.observer.MovePlayed(agent, move, m.game.Board)
	}

	result := Result{
		MatchID: m.ID,
		Winner:  m.game.Winner,
		Moves:   moves,
	}
	if !result.IsDraw() {
		result.WinnerName = m.players[result.Winner].Name()
	}

	span.SetAttributes(attribute.String("match.outcome", result.outcome()), attribute.Int("match.moves", len(moves)))
	matchesPlayed.Add(ctx, 1, metric.WithAttributes(attribute.String("match.outcome", result.outcome())))
	slog.InfoContext(ctx, "match finished", "match.id", m.ID, "match.outcome", result.outcome(), "match.moves", len(moves))
	m.observer.MatchFinished(result, m.game.Board)

	return result, nil
}
