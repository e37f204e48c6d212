// Package agent implements an interactive AI analyst over the computed
// portfolio analytics. The analyst is seeded with the rendered markdown of
// every report, so it answers questions about the loaded portfolio without
// recomputing anything.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent handles the interactive chat session with the analyst.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Analyst *Expert
}

// New creates an Agent writing to w and reading user input from r.
func New(w io.Writer, r io.Reader, analyst *Expert) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Analyst: analyst,
	}
}

const prompt = "analyst> "

// Run starts the interactive REPL session, flushing any initial prompts
// first. It returns on "bye" or EOF.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.Analyst.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Fixed income analyst ready. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Analyst.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
