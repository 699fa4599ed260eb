package bot_test

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/bot/mocks"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHuman_MakeMove(t *testing.T) {
	ctx := context.Background()
	board := game.Board{}
	board[1][1] = game.PlayerX
	legal := board.LegalMoves()

	t.Run("Returns the selected legal move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		selector := mocks.NewMockSelector(ctrl)
		selector.EXPECT().Select(gomock.Any(), game.PlayerO, board, legal).Return(4, nil)
		agent := bot.NewHuman(game.PlayerO, selector)

		move, err := agent.MakeMove(ctx, board)

		require.NoError(t, err)
		assert.Equal(t, game.Coordinate{Row: 1, Col: 2}, move)
	})

	t.Run("Index out of range", func(t *testing.T) {
		for _, idx := range []int{-1, len(legal)} {
			ctrl := gomock.NewController(t)
			selector := mocks.NewMockSelector(ctrl)
			selector.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(idx, nil)
			agent := bot.NewHuman(game.PlayerO, selector)

			_, err := agent.MakeMove(ctx, board)

			assert.ErrorIs(t, err, bot.ErrInvalidSelection)
		}
	})

	t.Run("Selector error is propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		selector := mocks.NewMockSelector(ctrl)
		selector.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0, io.EOF)
		agent := bot.NewHuman(game.PlayerO, selector)

		_, err := agent.MakeMove(ctx, board)

		assert.True(t, errors.Is(err, io.EOF))
	})

	t.Run("Full board never asks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		selector := mocks.NewMockSelector(ctrl)
		agent := bot.NewHuman(game.PlayerO, selector)
		full, err := game.ParseBoard([3]string{"XOX", "XOO", "OXX"})
		require.NoError(t, err)

		_, err = agent.MakeMove(ctx, full)

		assert.ErrorIs(t, err, bot.ErrNoLegalMove)
	})
}
