package player

import (
	"bufio"
	"fmt"
	"io"

	"gamesim/game"
)

const defaultPrompt = "select an action: "

// Interactive asks a human for each action over plain line-buffered text:
// it prints the legal actions and a prompt, blocks until a line arrives,
// and reprompts until the line names a legal action. There is no timeout
// and no cancellation; an input source that never terminates blocks the
// turn indefinitely.
//
// The reader and writer are borrowed for the lifetime of the player,
// typically os.Stdin and os.Stdout.
type Interactive struct {
	in     *bufio.Scanner
	out    io.Writer
	prompt string
}

// NewInteractive creates an interactive player reading lines from in and
// writing prompts to out.
func NewInteractive(in io.Reader, out io.Writer) *Interactive {
	return &Interactive{
		in:     bufio.NewScanner(in),
		out:    out,
		prompt: defaultPrompt,
	}
}

// GetAction blocks until the human enters a legal action. An invalid line
// is recoverable and reprompts; an exhausted input source is not and
// returns an error.
func (p *Interactive) GetAction(possible game.ActionList) (game.Action, error) {
	for {
		fmt.Fprintln(p.out, possible.Display())
		fmt.Fprint(p.out, p.prompt)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", fmt.Errorf("reading action: %w", err)
			}
			return "", fmt.Errorf("reading action: %w", io.EOF)
		}
		act := game.Action(p.in.Text())
		if possible.IsValid(act) {
			return act, nil
		}
		fmt.Fprintf(p.out, "not a valid action: %q\n", act)
	}
}
