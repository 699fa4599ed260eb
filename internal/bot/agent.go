package bot

//go:generate mockgen -source=agent.go -destination=mocks/agent_mock.go -package=mocks

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

var (
	ErrNoLegalMove      = errors.New("no legal move")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrUnknownKind      = errors.New("unknown agent kind")
	ErrMissingSelector  = errors.New("human agent needs a selector")
)

// Agent decides where its piece goes next.
type Agent interface {
	MakeMove(ctx context.Context, board game.Board) (game.Coordinate, error)
	Name() string
	Piece() game.PlayerMark
}

// Selector supplies a human's choice as an index into moves.
type Selector interface {
	Select(ctx context.Context, piece game.PlayerMark, board game.Board, moves []game.Coordinate) (int, error)
}

// Kind names one of the available agent implementations.
type Kind string

const (
	KindRandom Kind = "random"
	KindGreedy Kind = "greedy"
	KindHuman  Kind = "human"
	KindMinMax Kind = "minmax"
)

// Kinds lists every agent kind in menu order.
var Kinds = []Kind{KindRandom, KindGreedy, KindHuman, KindMinMax}

// Title is the display name of the kind.
func (k Kind) Title() string {
	switch k {
	case KindRandom:
		return "Random"
	case KindGreedy:
		return "Greedy"
	case KindHuman:
		return "Human"
	case KindMinMax:
		return "MinMax"
	default:
		return string(k)
	}
}

// ParseKind accepts a kind name (case-insensitive) or its 1-based menu number.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(Kinds) {
			return Kinds[n-1], nil
		}
		return "", fmt.Errorf("%w: %d", ErrUnknownKind, n)
	}
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

type options struct {
	rng      *rand.Rand
	selector Selector
	weights  Weights
}

// Option configures an agent built by New.
type Option func(o *options)

// WithRand sets the random source of the random agent.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithSelector sets where the human agent reads its choices from.
func WithSelector(selector Selector) Option {
	return func(o *options) {
		o.selector = selector
	}
}

// WithWeights sets the greedy agent's pass weights.
func WithWeights(weights Weights) Option {
	return func(o *options) {
		o.weights = weights
	}
}

// New builds the agent of the given kind playing piece.
func New(kind Kind, piece game.PlayerMark, opts ...Option) (Agent, error) {
	o := &options{weights: DefaultWeights}
	for _, opt := range opts {
		opt(o)
	}

	switch kind {
	case KindRandom:
		return NewRandom(piece, o.rng), nil
	case KindGreedy:
		return NewGreedy(piece, o.weights), nil
	case KindHuman:
		if o.selector == nil {
			return nil, ErrMissingSelector
		}
		return NewHuman(piece, o.selector), nil
	case KindMinMax:
		return NewMinMax(piece), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func noLegalMove(board game.Board) error {
	return fmt.Errorf("%w: %d of %d cells occupied", ErrNoLegalMove, board.OccupiedCount(), game.BoardSize*game.BoardSize)
}
