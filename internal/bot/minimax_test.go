package bot

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, r0, r1, r2 string) game.Board {
	t.Helper()
	b, err := game.ParseBoard([3]string{r0, r1, r2})
	require.NoError(t, err)
	return b
}

// exhaustive is minimax without pruning, used as the reference value.
func exhaustive(board game.Board, me, toMove game.PlayerMark) (game.Coordinate, bool, int) {
	switch {
	case board.HasWon(me):
		return game.Coordinate{}, false, WinScore
	case board.HasWon(me.Opponent()):
		return game.Coordinate{}, false, -WinScore
	case board.IsTie():
		return game.Coordinate{}, false, 0
	}

	var best game.Coordinate
	found := false
	bestUtility := 0
	for _, move := range board.LegalMoves() {
		child := board
		child[move.Row][move.Col] = toMove
		_, _, u := exhaustive(child, me, toMove.Opponent())
		better := !found ||
			(toMove == me && u > bestUtility) ||
			(toMove != me && u < bestUtility)
		if better {
			best, found, bestUtility = move, true, u
		}
	}
	return best, found, bestUtility
}

func TestSearch_Terminal(t *testing.T) {
	tests := []struct {
		name        string
		board       game.Board
		piece       game.PlayerMark
		wantUtility int
	}{
		{name: "Searching side has won", board: parse(t, "XXX", "OO.", "..."), piece: game.PlayerX, wantUtility: WinScore},
		{name: "Opponent has won", board: parse(t, "XXX", "OO.", "..."), piece: game.PlayerO, wantUtility: -WinScore},
		{name: "Tie", board: parse(t, "XOX", "XOO", "OXX"), piece: game.PlayerX, wantUtility: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Search(tt.board, tt.piece)

			assert.True(t, res.Terminal)
			assert.False(t, res.HasMove)
			assert.Equal(t, tt.wantUtility, res.Utility)
			assert.Equal(t, 1, res.Nodes)
		})
	}
}

func TestSearch_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		board       game.Board
		piece       game.PlayerMark
		want        game.Coordinate
		wantUtility int
	}{
		{
			name:        "X blocks O's open row in the last empty corner",
			board:       parse(t, ".X.", ".X.", "OO."),
			piece:       game.PlayerX,
			want:        game.Coordinate{Row: 2, Col: 2},
			wantUtility: 0,
		},
		{
			name:        "O blocks X's open row",
			board:       parse(t, "O..", ".XX", "..."),
			piece:       game.PlayerO,
			want:        game.Coordinate{Row: 1, Col: 0},
			wantUtility: 0,
		},
		{
			name:        "X takes the immediate win",
			board:       parse(t, "XX.", "OO.", "..."),
			piece:       game.PlayerX,
			want:        game.Coordinate{Row: 0, Col: 2},
			wantUtility: WinScore,
		},
		{
			name:        "Single empty cell",
			board:       parse(t, "XOX", "XOO", "OX."),
			piece:       game.PlayerX,
			want:        game.Coordinate{Row: 2, Col: 2},
			wantUtility: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Search(tt.board, tt.piece)

			require.True(t, res.HasMove)
			assert.False(t, res.Terminal)
			assert.Equal(t, tt.want, res.Move)
			assert.Equal(t, tt.wantUtility, res.Utility)
		})
	}
}

func TestSearch_EmptyBoardIsADraw(t *testing.T) {
	res := Search(game.Board{}, game.PlayerX)

	require.True(t, res.HasMove)
	assert.Equal(t, 0, res.Utility)
	assert.Positive(t, res.Prunes)

	// Same input, same answer.
	again := Search(game.Board{}, game.PlayerX)
	assert.Equal(t, res, again)
}

func TestSearch_DoesNotModifyBoard(t *testing.T) {
	board := parse(t, "X..", ".O.", "...")
	before := board

	Search(board, game.PlayerX)

	assert.Equal(t, before, board)
}

func TestSearch_AgreesWithExhaustiveMinimax(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 150; i++ {
		// Given: a reachable, undecided position after 2 to 7 random plies
		var board game.Board
		toMove := game.PlayerX
		plies := 2 + rng.IntN(6)
		for p := 0; p < plies && board.Winner() == game.None && !board.IsTie(); p++ {
			moves := board.LegalMoves()
			require.NoError(t, board.Place(moves[rng.IntN(len(moves))], toMove))
			toMove = toMove.Opponent()
		}
		if board.Winner() != game.None || board.IsTie() {
			continue
		}

		// When: both searches run for the side to move
		res := Search(board, toMove)
		wantMove, wantFound, wantUtility := exhaustive(board, toMove, toMove)

		// Then: pruning changes neither the value nor the chosen move
		require.Equal(t, wantFound, res.HasMove, board.String())
		require.Equal(t, wantUtility, res.Utility, board.String())
		require.Equal(t, wantMove, res.Move, board.String())
		require.Contains(t, []int{-WinScore, 0, WinScore}, res.Utility)
	}
}

func TestMinMax_MakeMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Blocks a two-in-a-row", func(t *testing.T) {
		agent := NewMinMax(game.PlayerX)

		move, err := agent.MakeMove(ctx, parse(t, ".X.", ".X.", "OO."))

		require.NoError(t, err)
		assert.Equal(t, game.Coordinate{Row: 2, Col: 2}, move)
	})

	t.Run("No legal move on a full board", func(t *testing.T) {
		agent := NewMinMax(game.PlayerO)

		_, err := agent.MakeMove(ctx, parse(t, "XOX", "XOO", "OXX"))

		assert.ErrorIs(t, err, ErrNoLegalMove)
	})

	t.Run("No legal move on a won board", func(t *testing.T) {
		agent := NewMinMax(game.PlayerO)

		_, err := agent.MakeMove(ctx, parse(t, "XXX", "OO.", "..."))

		assert.ErrorIs(t, err, ErrNoLegalMove)
	})
}

func TestMinMax_SelfPlayAlwaysTies(t *testing.T) {
	ctx := context.Background()
	agents := map[game.PlayerMark]Agent{
		game.PlayerX: NewMinMax(game.PlayerX),
		game.PlayerO: NewMinMax(game.PlayerO),
	}

	g := game.NewGame()
	for !g.IsFinished() {
		move, err := agents[g.CurrentTurn].MakeMove(ctx, g.Board)
		require.NoError(t, err)
		require.NoError(t, g.Move(move))
	}

	assert.True(t, g.IsDraw(), g.Board.String())
}

func TestMinMax_NeverLosesToRandom(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(42, 24))

	for _, minmaxPiece := range []game.PlayerMark{game.PlayerX, game.PlayerO} {
		for i := 0; i < 20; i++ {
			agents := map[game.PlayerMark]Agent{
				minmaxPiece:            NewMinMax(minmaxPiece),
				minmaxPiece.Opponent(): NewRandom(minmaxPiece.Opponent(), rng),
			}

			g := game.NewGame()
			for !g.IsFinished() {
				move, err := agents[g.CurrentTurn].MakeMove(ctx, g.Board)
				require.NoError(t, err)
				require.NoError(t, g.Move(move))
			}

			assert.NotEqual(t, minmaxPiece.Opponent(), g.Winner, g.Board.String())
		}
	}
}
