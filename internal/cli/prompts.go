package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"dilemma-tactix/internal/payoff"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/peterh/liner"
)

// ErrQuit is returned when the person aborts a prompt with Ctrl-C or EOF.
var ErrQuit = errors.New("quit")

// LineReader is the part of liner.State the prompts use.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// LinePrompter implements player.Prompter on top of a line editor. A quit
// is recorded in Err and cancels the match through the CLI's context.
type LinePrompter struct {
	line   LineReader
	out    io.Writer
	onQuit func()
	Err    error
}

func NewLinePrompter(line LineReader, out io.Writer, onQuit func()) *LinePrompter {
	return &LinePrompter{line: line, out: out, onQuit: onQuit}
}

// PromptChoice asks until the input resolves to a choice. After a quit it
// keeps returning Cooperate without prompting.
func (p *LinePrompter) PromptChoice(playerName string, round int, names payoff.ChoiceNames) payoff.Choice {
	if p.Err != nil {
		return payoff.Cooperate
	}
	for {
		C.Prompt.Fprintf(p.out, "%s, round %d. A: %s  B: %s\n", playerName, round, names.Cooperate, names.Defect)
		input, err := p.promptForString("Your choice: ")
		if err != nil {
			p.Err = err
			if p.onQuit != nil {
				p.onQuit()
			}
			return payoff.Cooperate
		}
		if c, ok := names.Lookup(input); ok {
			return c
		}
		C.Warn.Fprintf(p.out, "Invalid choice '%s'. Enter A, B, %s or %s.\n", input, names.Cooperate, names.Defect)
	}
}

func (p *LinePrompter) promptForString(prompt string) (string, error) {
	for {
		input, err := p.line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return "", ErrQuit
			}
			return "", fmt.Errorf("error reading line: %w", err)
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			p.line.AppendHistory(trimmed)
			return trimmed, nil
		}
	}
}

// --- Usage ---

func printPlayHelp(w io.Writer, names payoff.ChoiceNames) {
	C.Header.Fprintln(w, "\n--- How to play ---")
	fmt.Fprintln(w, "Each round you and your opponent choose at the same time.")

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Input", "Choice"})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{shortcuts(names, payoff.Cooperate), names.Cooperate},
		{shortcuts(names, payoff.Defect), names.Defect},
		{"Ctrl-C / Ctrl-D", "Quit the match"},
	})
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.Render()
}

// shortcuts lists every accepted input for c, the full label last.
func shortcuts(names payoff.ChoiceNames, c payoff.Choice) string {
	var keys []string
	seen := map[string]bool{}
	for _, label := range []string{"A", "B", firstLetter(names.Cooperate), firstLetter(names.Defect)} {
		key := strings.ToUpper(label)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if got, ok := names.Lookup(key); ok && got == c {
			keys = append(keys, key)
		}
	}
	return strings.Join(append(keys, names.Name(c)), " / ")
}

func firstLetter(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
