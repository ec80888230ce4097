// Package repl is the command-line front end: a blocking read loop that feeds
// each line through the answer pipeline.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Answerer is the one pipeline operation the REPL needs.
type Answerer interface {
	Answer(ctx context.Context, query string) string
}

type REPL struct {
	in       io.Reader
	out      io.Writer
	answerer Answerer

	promptColor *color.Color
	botColor    *color.Color
}

func New(in io.Reader, out io.Writer, answerer Answerer) *REPL {
	return &REPL{
		in:          in,
		out:         out,
		answerer:    answerer,
		promptColor: color.New(color.FgCyan, color.Bold),
		botColor:    color.New(color.FgGreen),
	}
}

// Run blocks until the user types exit/quit (case-insensitive) or input ends.
// Blank lines re-prompt; anything else is treated as a query.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out)
	r.promptColor.Fprintln(r.out, "🎓 University Policy Assistant is ready! Type your question below:")
	fmt.Fprintln(r.out)

	scanner := bufio.NewScanner(r.in)
	for {
		r.promptColor.Fprint(r.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}

		lowered := strings.ToLower(question)
		if lowered == "exit" || lowered == "quit" {
			fmt.Fprintln(r.out, "👋 Goodbye!")
			return nil
		}

		answer := r.answerer.Answer(ctx, question)
		fmt.Fprintln(r.out)
		r.botColor.Fprintln(r.out, answer)
		fmt.Fprintln(r.out)
	}
}
