package match

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"fmt"
)

// Tally counts the outcomes of a series.
type Tally struct {
	XWins int
	OWins int
	Draws int
}

func (t Tally) Total() int {
	return t.XWins + t.OWins + t.Draws
}

// Series plays rounds matches with the same seating and counts the results.
// The tally of the rounds finished so far is returned alongside any error.
func Series(ctx context.Context, x, o bot.Agent, rounds int, observer Observer) (Tally, error) {
	var tally Tally
	for round := 1; round <= rounds; round++ {
		m, err := New(x, o, observer)
		if err != nil {
			return tally, err
		}

		result, err := m.Play(ctx)
		if err != nil {
			return tally, fmt.Errorf("round %d: %w", round, err)
		}

		switch result.Winner {
		case x.Piece():
			tally.XWins++
		case o.Piece():
			tally.OWins++
		default:
			tally.Draws++
		}
	}
	return tally, nil
}
