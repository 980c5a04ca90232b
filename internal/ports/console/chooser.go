// Package console lets a human pick tokens from a terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"ludo/internal/domain"
	"ludo/internal/ports"
	"ludo/internal/render"
)

// ErrInputClosed means the input ended before a valid token was entered.
var ErrInputClosed = errors.New("console input closed")

// Chooser prompts on out and reads 1-based token numbers from in until one of
// the legal tokens is entered.
type Chooser struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewChooser returns a Chooser reading from in and prompting on out.
// Several seats may share one Chooser; reads are sequential.
func NewChooser(in io.Reader, out io.Writer) *Chooser {
	return &Chooser{in: bufio.NewScanner(in), out: out}
}

func (c *Chooser) Choose(ctx context.Context, view ports.ChoiceView) (int, error) {
	pl := view.Snapshot.Players[view.Player]
	fmt.Fprintf(c.out, "%s rolled a %d. Movable tokens:\n", pl.Name, view.Roll)
	for _, idx := range view.Legal {
		fmt.Fprintf(c.out, "  %d: %s\n", idx+1, render.TokenStatus(pl.Tokens[idx]))
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprintf(c.out, "Select the token to move (1-%d): ", domain.TokensPerPlayer)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return 0, fmt.Errorf("read choice: %w", err)
			}
			return 0, ErrInputClosed
		}

		n, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a number.")
			continue
		}
		if !slices.Contains(view.Legal, n-1) {
			fmt.Fprintln(c.out, "Invalid selection. Choose one of the movable tokens.")
			continue
		}
		return n - 1, nil
	}
}

var _ ports.Chooser = (*Chooser)(nil)
