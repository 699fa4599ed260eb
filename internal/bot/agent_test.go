package bot

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSelector int

func (f fixedSelector) Select(_ context.Context, _ game.PlayerMark, _ game.Board, _ []game.Coordinate) (int, error) {
	return int(f), nil
}

func TestNew(t *testing.T) {
	tests := []struct {
		kind     Kind
		opts     []Option
		wantName string
		wantType Agent
	}{
		{kind: KindRandom, wantName: "Random", wantType: &Random{}},
		{kind: KindGreedy, opts: []Option{WithWeights(Weights{Build: 2, Win: 20, Block: 10})}, wantName: "Greedy", wantType: &Greedy{}},
		{kind: KindHuman, opts: []Option{WithSelector(fixedSelector(0))}, wantName: "Human", wantType: &Human{}},
		{kind: KindMinMax, wantName: "MinMax", wantType: &MinMax{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			agent, err := New(tt.kind, game.PlayerO, tt.opts...)

			require.NoError(t, err)
			assert.IsType(t, tt.wantType, agent)
			assert.Equal(t, tt.wantName, agent.Name())
			assert.Equal(t, game.PlayerO, agent.Piece())
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New(KindHuman, game.PlayerX)
	assert.ErrorIs(t, err, ErrMissingSelector)

	_, err = New(Kind("oracle"), game.PlayerX)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestNew_GreedyUsesWeights(t *testing.T) {
	agent, err := New(KindGreedy, game.PlayerX, WithWeights(Weights{Block: 1}))
	require.NoError(t, err)

	assert.Equal(t, Weights{Block: 1}, agent.(*Greedy).weights)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "1", want: KindRandom},
		{in: "2", want: KindGreedy},
		{in: "3", want: KindHuman},
		{in: " 4 ", want: KindMinMax},
		{in: "MinMax", want: KindMinMax},
		{in: "human", want: KindHuman},
		{in: "0", wantErr: true},
		{in: "5", wantErr: true},
		{in: "alphazero", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
