package console

import (
	"bufio"
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"ctchen222/Tic-Tac-Toe-AI/internal/match"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

var (
	_ match.Observer = (*Console)(nil)
	_ bot.Selector   = (*Console)(nil)
)

type line struct {
	text string
	err  error
}

// Console is the terminal front end: it renders matches, runs the player menu
// and reads human moves. It implements match.Observer and bot.Selector.
type Console struct {
	in    io.Reader
	out   io.Writer
	once  sync.Once
	lines chan line
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

// readLine blocks until a line arrives or ctx is done. Input is read on a
// separate goroutine so that cancellation does not wait for the user.
func (c *Console) readLine(ctx context.Context) (string, error) {
	c.once.Do(func() {
		c.lines = make(chan line)
		go func() {
			defer close(c.lines)
			scanner := bufio.NewScanner(c.in)
			for scanner.Scan() {
				c.lines <- line{text: scanner.Text()}
			}
			if err := scanner.Err(); err != nil {
				c.lines <- line{err: err}
			}
		}()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(l.text), l.err
	}
}

// ChooseKind shows the agent menu for seat until a valid choice is entered.
func (c *Console) ChooseKind(ctx context.Context, seat game.PlayerMark) (bot.Kind, error) {
	for {
		fmt.Fprintf(c.out, "Select player %s:\n", seat)
		for i, k := range bot.Kinds {
			fmt.Fprintf(c.out, "  %d) %s\n", i+1, k.Title())
		}
		fmt.Fprint(c.out, "> ")

		text, err := c.readLine(ctx)
		if err != nil {
			return "", err
		}
		kind, err := bot.ParseKind(text)
		if err == nil {
			return kind, nil
		}
		fmt.Fprintf(c.out, "%v, try again.\n", err)
	}
}

// Select lists the legal moves by index and reads the player's pick.
func (c *Console) Select(ctx context.Context, piece game.PlayerMark, board game.Board, moves []game.Coordinate) (int, error) {
	fmt.Fprintf(c.out, "\n%s\n", board)
	for i, move := range moves {
		fmt.Fprintf(c.out, "  [%d] %s\n", i, move)
	}
	fmt.Fprintf(c.out, "Player %s, choose a move: ", piece)

	text, err := c.readLine(ctx)
	if err != nil {
		return -1, err
	}
	idx, err := strconv.Atoi(text)
	if err != nil {
		return -1, fmt.Errorf("%w: %q is not a number", bot.ErrInvalidSelection, text)
	}
	return idx, nil
}

func (c *Console) MatchStarted(_ string, x, o bot.Agent) {
	fmt.Fprintf(c.out, "%s (X) vs %s (O)\n\n", x.Name(), o.Name())
}

func (c *Console) MovePlayed(agent bot.Agent, move game.Coordinate, board game.Board) {
	fmt.Fprintf(c.out, "%s (%s) plays %s\n%s\n", agent.Name(), agent.Piece(), move, board)
}

func (c *Console) SelectionRejected(_ bot.Agent, err error) {
	fmt.Fprintf(c.out, "%v, try again.\n", err)
}

func (c *Console) MatchFinished(result match.Result, _ game.Board) {
	if result.IsDraw() {
		fmt.Fprintln(c.out, "Game is a tie!")
		return
	}
	fmt.Fprintf(c.out, "%s (%s) won!\n", result.WinnerName, result.Winner)
}

// PrintTally prints the totals of a multi-round series.
func (c *Console) PrintTally(x, o bot.Agent, tally match.Tally) {
	fmt.Fprintf(c.out, "\nAfter %d rounds: %s (X) %d, %s (O) %d, ties %d\n",
		tally.Total(), x.Name(), tally.XWins, o.Name(), tally.OWins, tally.Draws)
}
