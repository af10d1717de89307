// Package console is a line-oriented terminal client for the puzzle.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"svw.info/reversemath/internal/domain"
	"svw.info/reversemath/internal/usecase"
)

const help = `Commands:
  <n>        place tile n on the active step (or type the answer in manual mode)
  h          hint
  n          new puzzle
  d <level>  switch difficulty (easy, medium, hard) and start over
  m          toggle manual calculation for the next puzzle
  r          reveal the chain and start over
  s          show score
  q          quit`

type Client struct {
	UC   *usecase.Service
	in   *bufio.Scanner
	out  io.Writer
	diff domain.Difficulty
}

func New(uc *usecase.Service, in io.Reader, out io.Writer) *Client {
	return &Client{UC: uc, in: bufio.NewScanner(in), out: out}
}

// Run plays until the input ends or the player quits.
func (c *Client) Run(ctx context.Context, d domain.Difficulty) error {
	c.diff = d
	if err := c.newGame(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Work backwards to find the starting number. Type ? for help.")
	c.render()
	for {
		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			return c.in.Err()
		}
		quit, err := c.handle(ctx, strings.Fields(c.in.Text()))
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (c *Client) handle(ctx context.Context, f []string) (bool, error) {
	if len(f) == 0 {
		return false, nil
	}
	switch strings.ToLower(f[0]) {
	case "q", "quit", "exit":
		return true, nil
	case "?", "help":
		fmt.Fprintln(c.out, help)
	case "h", "hint":
		return false, c.hint(ctx)
	case "n", "new":
		return false, c.restart(ctx)
	case "d", "difficulty":
		if len(f) < 2 {
			fmt.Fprintln(c.out, "usage: d easy|medium|hard")
			return false, nil
		}
		d, err := domain.ParseDifficulty(f[1])
		if err != nil {
			fmt.Fprintln(c.out, err)
			return false, nil
		}
		c.diff = d
		fmt.Fprintf(c.out, "Level set to %s\n", d)
		return false, c.restart(ctx)
	case "m", "manual":
		c.UC.SetManual(!c.UC.Manual())
		fmt.Fprintf(c.out, "Manual calculation %s from the next puzzle\n", onOff(c.UC.Manual()))
	case "r", "reveal":
		vals, err := c.UC.Reveal(ctx)
		if err != nil {
			return false, err
		}
		g, _, _ := c.UC.Current()
		fmt.Fprintf(c.out, "The chain was %s\n", chainText(g, vals))
		return false, c.restart(ctx)
	case "s", "score":
		score, err := c.UC.Score(ctx)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(c.out, "Score: %d\n", score)
	default:
		n, err := strconv.Atoi(f[0])
		if err != nil {
			fmt.Fprintf(c.out, "unknown command %q, type ? for help\n", f[0])
			return false, nil
		}
		return false, c.number(ctx, n)
	}
	return false, nil
}

// number is a tile choice, or the typed answer while a step awaits one.
func (c *Client) number(ctx context.Context, n int) error {
	g, p, _ := c.UC.Current()
	if p.Active >= 0 && p.Awaiting[p.Active] {
		out, err := c.UC.Answer(ctx, p.Active, domain.Typed(n))
		if err != nil {
			return err
		}
		return c.report(ctx, out)
	}
	if n < 1 || n > len(g.Tiles) {
		fmt.Fprintf(c.out, "no tile %d\n", n)
		return nil
	}
	if p.Tiles[n-1].Used() {
		fmt.Fprintf(c.out, "tile %d is already placed\n", n)
		return nil
	}
	out, err := c.UC.Submit(ctx, p.Active, n-1)
	if err != nil {
		return err
	}
	if out == domain.Incorrect {
		fmt.Fprintln(c.out, color.Red.Sprint("Not quite. That's not the right operation for this step. Try again!"))
		// the tile goes back to the pool once the player has seen the miss
		c.UC.ResetTile(n - 1)
		return nil
	}
	return c.report(ctx, out)
}

func (c *Client) report(ctx context.Context, out domain.Outcome) error {
	g, p, _ := c.UC.Current()
	switch out {
	case domain.AwaitingAnswer:
		inv := g.InverseOperations[p.Active]
		fmt.Fprintln(c.out, color.Green.Sprintf("Correct operation! Now work out %d %s and type the result.", p.Values[p.Active+1], inv))
	case domain.WrongAnswer:
		inv := g.InverseOperations[p.Active]
		fmt.Fprintln(c.out, color.Red.Sprintf("Check your math. Try %d %s again.", p.Values[p.Active+1], inv))
	case domain.Advanced:
		fmt.Fprintln(c.out, color.Green.Sprint("Correct! Keep working backwards."))
		c.render()
	case domain.Solved:
		score, err := c.UC.Score(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, color.Cyan.Sprintf("Puzzle solved! The starting number was %d. +%d points, score %d.", g.StartNumber, g.Difficulty.Points(), score))
		return c.restart(ctx)
	}
	return nil
}

func (c *Client) hint(ctx context.Context) error {
	h, ok, err := c.UC.Hint(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(c.out, "No hint available.")
		return nil
	}
	if h.Tile >= 0 {
		fmt.Fprintf(c.out, "Hint: %s. Look at tile %d.\n", h.Message, h.Tile+1)
		return nil
	}
	fmt.Fprintf(c.out, "Hint: %s.\n", h.Message)
	return nil
}

func (c *Client) newGame(ctx context.Context) error {
	_, _, err := c.UC.NewGame(ctx, c.diff)
	return err
}

func (c *Client) restart(ctx context.Context) error {
	if err := c.newGame(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "A new puzzle has been generated!")
	c.render()
	return nil
}

func (c *Client) render() {
	g, p, ok := c.UC.Current()
	if !ok {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\n[%s] ", g.Difficulty)
	for i, s := range g.Steps {
		b.WriteString(box(p, i))
		fmt.Fprintf(&b, " --(%s)--> ", s)
	}
	b.WriteString(box(p, len(g.Steps)))
	b.WriteString("\n")
	if p.Active >= 0 {
		fmt.Fprintf(&b, "Undo step %d (%s) to fill the box left of it.\n", p.Active+1, g.Steps[p.Active])
	}
	b.WriteString("Tiles:")
	for i, t := range g.Tiles {
		if p.Tiles[i].Used() {
			fmt.Fprintf(&b, "  %d) [%s]", i+1, t)
			continue
		}
		fmt.Fprintf(&b, "  %d) %s", i+1, t)
	}
	b.WriteString("\n")
	fmt.Fprint(c.out, b.String())
}

func box(p domain.Progress, i int) string {
	if p.Known[i] {
		return fmt.Sprintf("[%d]", p.Values[i])
	}
	return "[?]"
}

func chainText(g *domain.GameState, vals []int) string {
	var b strings.Builder
	for i, s := range g.Steps {
		fmt.Fprintf(&b, "%d --(%s)--> ", vals[i], s)
	}
	fmt.Fprintf(&b, "%d", vals[len(vals)-1])
	return b.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
